package survey

import (
	"math"
	"strconv"
	"strings"

	"surveyscope/internal/core/normalize"
	perr "surveyscope/internal/platform/errors"
)

// RawTable is the untyped input: a header row plus text rows
// a nil cell pointer is not needed, an empty string already means absent
type RawTable struct {
	Header []string
	Rows   [][]string
}

// Column describes one required input column and the header spellings recognized for it
type Column struct {
	Field     Field
	Name      string
	Spellings []string
}

// DefaultColumns returns the recognized spellings for each required column
// the first spelling is the canonical header of the poll export
func DefaultColumns() []Column {
	return []Column{
		{Field: FieldAttendance, Name: "Last5Years", Spellings: []string{"Last5Years", "times attended", "attended last 5 years", "attendance"}},
		{Field: FieldIntent, Name: "AttendTRBAM2026", Spellings: []string{"AttendTRBAM2026", "intent", "intention", "attend intent"}},
		{Field: FieldOrganization, Name: "Organization", Spellings: []string{"Organization", "organisation", "org"}},
		{Field: FieldTenure, Name: "HowLong", Spellings: []string{"HowLong", "tenure", "years in transportation"}},
	}
}

// Options tune Normalize
type Options struct {
	Aliases Aliases
	Columns []Column
}

// Option mutates Options
type Option func(*Options)

// WithAliases replaces the organization alias map
func WithAliases(a Aliases) Option { return func(o *Options) { o.Aliases = a } }

// WithColumns replaces the recognized column spellings
func WithColumns(cols []Column) Option { return func(o *Options) { o.Columns = cols } }

// Normalize canonicalizes a raw table into an immutable Table
// the only error is a missing required column; dirty cells become absent values
func Normalize(raw RawTable, opts ...Option) (*Table, error) {
	o := Options{Aliases: DefaultAliases(), Columns: DefaultColumns()}
	for _, fn := range opts {
		fn(&o)
	}

	pos, err := resolveColumns(raw.Header, o.Columns)
	if err != nil {
		return nil, err
	}

	recs := make([]Record, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		recs = append(recs, Record{
			Last5Years:   attendanceOf(cell(row, pos[FieldAttendance])),
			Intent:       IntentOf(rawCell(row, pos[FieldIntent])),
			Organization: organizationOf(cell(row, pos[FieldOrganization]), o.Aliases),
			Tenure:       TenureOf(rawCell(row, pos[FieldTenure])),
		})
		r := &recs[len(recs)-1]
		if org, ok := r.Organization.Get(); ok {
			r.Orgs = o.Aliases.Tokens(Tokenize(org))
		}
	}

	return &Table{
		records: recs,
		choices: orgChoices(recs),
		stats:   statsOf(recs),
	}, nil
}

// resolveColumns maps each field to its header position, first match wins
func resolveColumns(header []string, cols []Column) (map[Field]int, error) {
	keys := make(map[string]int, len(header))
	for i, h := range header {
		k := normalize.Key(h)
		if _, dup := keys[k]; !dup && k != "" {
			keys[k] = i
		}
	}

	pos := make(map[Field]int, len(cols))
	var missing []string
	for _, c := range cols {
		found := false
		for _, sp := range c.Spellings {
			if i, ok := keys[normalize.Key(sp)]; ok {
				pos[c.Field] = i
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, c.Name)
		}
	}
	if len(missing) > 0 {
		err := perr.Newf(perr.ErrorCodeSchema, "missing required column(s): %s", strings.Join(missing, ", "))
		return nil, perr.WithField(err, missing[0])
	}
	return pos, nil
}

// rawCell returns the cell at i untouched, ragged rows read as empty
// intent and tenure must match their domain labels exactly
func rawCell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// cell returns the cleaned cell at i
func cell(row []string, i int) string { return normalize.Cell(rawCell(row, i)) }

// attendanceOf parses a whole number inside the attendance bounds
// exports sometimes carry floats like "2.0", which are accepted when integral
func attendanceOf(s string) Opt[int] {
	if s == "" {
		return None[int]()
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || math.IsNaN(f) || f != math.Trunc(f) {
			return None[int]()
		}
		if f < AttendanceMin || f > AttendanceMax {
			return None[int]()
		}
		n = int(f)
	}
	if n < AttendanceMin || n > AttendanceMax {
		return None[int]()
	}
	return Some(n)
}

func organizationOf(s string, a Aliases) Opt[string] {
	if s == "" {
		return None[string]()
	}
	return Some(a.Canonical(s))
}

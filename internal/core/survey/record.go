package survey

// Record is one normalized survey response
type Record struct {
	Last5Years   Opt[int]    `json:"last5_years"`
	Intent       Opt[string] `json:"intent"`
	Organization Opt[string] `json:"organization"`
	Tenure       Opt[string] `json:"tenure"`

	// Orgs is the canonical token set of Organization, empty when absent
	Orgs Tokens `json:"orgs"`
}

// Stats counts what the normalizer saw while building a Table
type Stats struct {
	Rows         int `json:"rows"`
	NoAttendance int `json:"absent_attendance"`
	NoIntent     int `json:"absent_intent"`
	NoOrgs       int `json:"absent_organization"`
	NoTenure     int `json:"absent_tenure"`
}

// Table is an immutable normalized dataset plus the global organization choices
// build it with Normalize, or NewTable when records are already canonical
type Table struct {
	records []Record
	choices []string
	stats   Stats
}

// NewTable builds a Table from already normalized records
// the slice is copied so later caller writes never leak in
func NewTable(records []Record) *Table {
	recs := append([]Record(nil), records...)
	return &Table{
		records: recs,
		choices: orgChoices(recs),
		stats:   statsOf(recs),
	}
}

// Len returns the number of records
func (t *Table) Len() int { return len(t.records) }

// At returns the record at i
func (t *Table) At(i int) Record { return t.records[i] }

// OrgChoices returns the sorted distinct organization tokens across the whole table
func (t *Table) OrgChoices() []string { return append([]string(nil), t.choices...) }

// Stats returns load statistics
func (t *Table) Stats() Stats { return t.stats }

// All returns a View over every record
func (t *Table) All() View {
	idx := make([]int, len(t.records))
	for i := range idx {
		idx[i] = i
	}
	return View{t: t, idx: idx}
}

// View is an ordered subset of a Table expressed as indices, it never copies records
type View struct {
	t   *Table
	idx []int
}

// Len returns the number of records in the view
func (v View) Len() int { return len(v.idx) }

// At returns the i-th record of the view
func (v View) At(i int) Record { return v.t.records[v.idx[i]] }

// Indices returns the table positions covered by the view, in table order
func (v View) Indices() []int { return append([]int(nil), v.idx...) }

func orgChoices(recs []Record) []string {
	set := make(map[string]struct{})
	for _, r := range recs {
		for _, tok := range r.Orgs {
			set[tok] = struct{}{}
		}
	}
	return sortedKeys(set)
}

func statsOf(recs []Record) Stats {
	s := Stats{Rows: len(recs)}
	for _, r := range recs {
		if r.Last5Years.IsNone() {
			s.NoAttendance++
		}
		if r.Intent.IsNone() {
			s.NoIntent++
		}
		if len(r.Orgs) == 0 {
			s.NoOrgs++
		}
		if r.Tenure.IsNone() {
			s.NoTenure++
		}
	}
	return s
}

// Package survey implements the filter and aggregation pipeline over the attendance poll
//
// Raw cells are normalized once into a Table, a Selection reduces the Table to a View,
// and each View is aggregated into one CountSeries per chart. Every step is a pure
// function over immutable values so one Table can serve any number of concurrent readers
package survey

// Unspecified labels the bucket of records whose field value is absent
const Unspecified = "Unspecified"

// Attendance bounds are inclusive; values outside them are treated as absent
const (
	AttendanceMin = 0
	AttendanceMax = 5
)

// Field names one of the four charted survey fields
type Field string

const (
	// FieldAttendance is the number of meetings attended in the last 5 years
	FieldAttendance Field = "attendance"
	// FieldIntent is the stated intention to attend the next meeting
	FieldIntent Field = "intent"
	// FieldOrganization is the multi-valued organization field
	FieldOrganization Field = "organization"
	// FieldTenure is the years worked in transportation
	FieldTenure Field = "tenure"
)

// Fields lists the charted fields in presentation order
func Fields() []Field {
	return []Field{FieldAttendance, FieldIntent, FieldOrganization, FieldTenure}
}

var (
	intentLevels = []string{
		"Definitely going",
		"Probably going",
		"I don't know",
		"Probably not going",
		"Definitely not going",
	}
	tenureLevels = []string{
		"0 to 5 years",
		"6 to 10 years",
		"11 to 15 years",
		"16 or more years",
	}

	intentRank = rankOf(intentLevels)
	tenureRank = rankOf(tenureLevels)
)

// IntentLevels returns the intent domain in display order
func IntentLevels() []string { return append([]string(nil), intentLevels...) }

// TenureLevels returns the tenure domain in display order
func TenureLevels() []string { return append([]string(nil), tenureLevels...) }

// IntentOf maps a raw cell onto the intent domain by exact match, anything else is absent
func IntentOf(s string) Opt[string] { return levelOf(intentRank, s) }

// TenureOf maps a raw cell onto the tenure domain by exact match, anything else is absent
func TenureOf(s string) Opt[string] { return levelOf(tenureRank, s) }

func levelOf(rank map[string]int, s string) Opt[string] {
	if _, ok := rank[s]; !ok {
		return None[string]()
	}
	return Some(s)
}

func rankOf(levels []string) map[string]int {
	m := make(map[string]int, len(levels))
	for i, l := range levels {
		m[l] = i
	}
	return m
}

package survey

import (
	"sort"

	pstrings "surveyscope/internal/platform/strings"
)

// Bucket is one labeled count in a series
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CountSeries is the ordered data behind one chart
// zero buckets are omitted and Unspecified, when present, is always last
type CountSeries []Bucket

// Total returns the sum of all bucket counts
func (s CountSeries) Total() int {
	n := 0
	for _, b := range s {
		n += b.Count
	}
	return n
}

// Aggregate counts the view by field
// unknown fields yield an empty series
func Aggregate(v View, f Field) CountSeries {
	switch f {
	case FieldAttendance:
		return byDomain(v, attendanceLabels(), func(r Record) (string, bool) {
			n, ok := r.Last5Years.Get()
			if !ok {
				return "", false
			}
			return AttendanceLabel(n), true
		})
	case FieldIntent:
		return byDomain(v, intentLevels, func(r Record) (string, bool) { return r.Intent.Get() })
	case FieldTenure:
		return byDomain(v, tenureLevels, func(r Record) (string, bool) { return r.Tenure.Get() })
	case FieldOrganization:
		return byToken(v)
	default:
		return CountSeries{}
	}
}

// AttendanceLabel formats an attendance count the way the charts show it
func AttendanceLabel(n int) string { return pstrings.Plural(n, "time", "times") }

func attendanceLabels() []string {
	out := make([]string, 0, AttendanceMax-AttendanceMin+1)
	for n := AttendanceMin; n <= AttendanceMax; n++ {
		out = append(out, AttendanceLabel(n))
	}
	return out
}

// byDomain groups a single-valued field and orders buckets by domain
func byDomain(v View, domain []string, value func(Record) (string, bool)) CountSeries {
	counts := make(map[string]int, len(domain))
	absent := 0
	for i := 0; i < v.Len(); i++ {
		label, ok := value(v.At(i))
		if !ok {
			absent++
			continue
		}
		counts[label]++
	}

	out := make(CountSeries, 0, len(domain)+1)
	for _, label := range domain {
		if n := counts[label]; n > 0 {
			out = append(out, Bucket{Label: label, Count: n})
		}
	}
	if absent > 0 {
		out = append(out, Bucket{Label: Unspecified, Count: absent})
	}
	return out
}

// byToken explodes every token set and orders by descending count
// ties are broken by label so output is deterministic
func byToken(v View) CountSeries {
	counts := make(map[string]int)
	for i := 0; i < v.Len(); i++ {
		for _, tok := range v.At(i).Orgs {
			counts[tok]++
		}
	}

	out := make(CountSeries, 0, len(counts))
	for label, n := range counts {
		out = append(out, Bucket{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

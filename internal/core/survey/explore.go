package survey

// Charts is the full answer for one selection
type Charts struct {
	Total        int         `json:"total"`
	Attendance   CountSeries `json:"attendance"`
	Intent       CountSeries `json:"intent"`
	Organization CountSeries `json:"organization"`
	Tenure       CountSeries `json:"tenure"`
}

// Explore filters t once and aggregates the result for every chart
func Explore(t *Table, sel Selection) Charts {
	v := Filter(t, sel)
	return Charts{
		Total:        v.Len(),
		Attendance:   Aggregate(v, FieldAttendance),
		Intent:       Aggregate(v, FieldIntent),
		Organization: Aggregate(v, FieldOrganization),
		Tenure:       Aggregate(v, FieldTenure),
	}
}

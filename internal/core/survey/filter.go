package survey

// Selection is the caller's current filter state
// an empty set means no restriction on that field
type Selection struct {
	YearMin int
	YearMax int
	Intents []string
	Tenures []string
	Orgs    []string
}

// FullSelection selects the whole attendance range and restricts nothing else
func FullSelection() Selection {
	return Selection{YearMin: AttendanceMin, YearMax: AttendanceMax}
}

// Filter returns the records of t kept by sel, in table order
// a record whose value is absent in a field is never excluded by that field's filter
// inverted ranges or unknown labels just narrow the result, they are not errors
func Filter(t *Table, sel Selection) View {
	intents := setOf(sel.Intents)
	tenures := setOf(sel.Tenures)
	orgs := setOf(sel.Orgs)

	idx := make([]int, 0, len(t.records))
	for i, r := range t.records {
		if !inRange(r.Last5Years, sel.YearMin, sel.YearMax) {
			continue
		}
		if !inSet(r.Intent, intents) || !inSet(r.Tenure, tenures) {
			continue
		}
		if len(orgs) > 0 && len(r.Orgs) > 0 && !r.Orgs.Intersects(orgs) {
			continue
		}
		idx = append(idx, i)
	}
	return View{t: t, idx: idx}
}

func inRange(v Opt[int], lo, hi int) bool {
	n, ok := v.Get()
	if !ok {
		return true
	}
	return lo <= n && n <= hi
}

func inSet(v Opt[string], set map[string]struct{}) bool {
	if len(set) == 0 {
		return true
	}
	s, ok := v.Get()
	if !ok {
		return true
	}
	_, in := set[s]
	return in
}

func setOf(items []string) map[string]struct{} {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}

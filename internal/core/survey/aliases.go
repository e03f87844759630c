package survey

// Aliases maps known organization spellings to their canonical name
// keys match exactly and case-sensitively, unknown strings pass through
type Aliases map[string]string

// DefaultAliases returns the built-in spelling variants
func DefaultAliases() Aliases {
	return Aliases{
		"Consultant": "Consulting",
		"consultant": "Consulting",
		"CONSULTANT": "Consulting",
		"software":   "Software",
	}
}

// With returns a copy of a with over applied on top
func (a Aliases) With(over map[string]string) Aliases {
	out := make(Aliases, len(a)+len(over))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// Canonical returns the canonical spelling of s
func (a Aliases) Canonical(s string) string {
	if c, ok := a[s]; ok {
		return c
	}
	return s
}

// Tokens canonicalizes every token of t and returns the resulting set
func (a Aliases) Tokens(t Tokens) Tokens {
	if len(t) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(t))
	for _, tok := range t {
		set[a.Canonical(tok)] = struct{}{}
	}
	return Tokens(sortedKeys(set))
}

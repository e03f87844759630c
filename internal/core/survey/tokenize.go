package survey

import (
	"regexp"
	"sort"
	"strings"
)

// orgDelims matches one delimiter occurrence with the whitespace around it
// the word form needs whitespace on both sides so names like "Anderson" stay whole
var orgDelims = regexp.MustCompile(`\s*(?:,|/|;|\+|\s+and\s+)\s*`)

// bare delimiter fragments are split artifacts, never organizations
var delimTokens = map[string]struct{}{",": {}, "/": {}, ";": {}, "+": {}, "and": {}}

// Tokens is a sorted set of organization names
type Tokens []string

// Tokenize splits an organization cell into its distinct trimmed names
// cells without delimiters come back as a single token
func Tokenize(cell string) Tokens {
	if strings.TrimSpace(cell) == "" {
		return nil
	}
	set := make(map[string]struct{})
	for _, frag := range orgDelims.Split(cell, -1) {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		if _, skip := delimTokens[frag]; skip {
			continue
		}
		set[frag] = struct{}{}
	}
	if len(set) == 0 {
		return nil
	}
	return Tokens(sortedKeys(set))
}

// Contains reports whether tok is in the set
func (t Tokens) Contains(tok string) bool {
	i := sort.SearchStrings(t, tok)
	return i < len(t) && t[i] == tok
}

// Intersects reports whether any token is in sel
func (t Tokens) Intersects(sel map[string]struct{}) bool {
	for _, tok := range t {
		if _, ok := sel[tok]; ok {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

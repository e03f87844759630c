// Package normalize provides deterministic text folding for survey input
// Two projections are offered
// Key folds header cells so column spellings compare equal
// 1 sanitize controls and invalid UTF-8
// 2 Unicode NFKC normalization
// 3 Case folding
// 4 Width fold fullwidth to ASCII
// 5 Drop everything that is not a letter or digit
// Cell cleans data cells without changing their case
// 1 sanitize controls and invalid UTF-8
// 2 Unicode NFC normalization
// 3 Remove format chars (zero-width, BOM)
// 4 Collapse whitespace runs and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pools of fresh transformer chains, transformers are stateful so never share one
var (
	keyPool = sync.Pool{
		New: func() any {
			return transform.Chain(
				norm.NFKC,
				cases.Fold(),
				runes.Remove(runes.In(unicode.Cf)),
				width.Fold,
			)
		},
	}
	cellPool = sync.Pool{
		New: func() any {
			return transform.Chain(
				norm.NFC,
				runes.Remove(runes.In(unicode.Cf)),
			)
		},
	}
)

// Key returns the folded matching key for a header cell
// "Last5Years", "last_5_years" and "ＬＡＳＴ 5 YEARS" all fold to "last5years"
func Key(s string) string {
	s = run(&keyPool, s)
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Cell returns s cleaned for comparison against canonical values
// case and inner punctuation are preserved
func Cell(s string) string {
	return collapseSpaces(run(&cellPool, s))
}

func run(pool *sync.Pool, s string) string {
	if s == "" {
		return ""
	}
	s = Sanitize(s)
	s = strings.ToValidUTF8(s, "")

	tr := pool.Get().(transform.Transformer)
	out, _, _ := transform.String(tr, s)
	tr.Reset()
	pool.Put(tr)
	return out
}

// collapseSpaces converts every whitespace run (newlines included) to one ASCII space and trims
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}

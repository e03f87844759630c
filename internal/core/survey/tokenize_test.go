package survey

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Tokens
	}{
		{name: "comma and word", in: "A, B and C", want: Tokens{"A", "B", "C"}},
		{name: "slash and plus", in: "A/B+C", want: Tokens{"A", "B", "C"}},
		{name: "semicolon and word", in: "A;B and C", want: Tokens{"A", "B", "C"}},
		{name: "single org untouched", in: "State DOT", want: Tokens{"State DOT"}},
		{name: "word inside a name", in: "Anderson Brand", want: Tokens{"Anderson Brand"}},
		{name: "padding trimmed", in: "  DOT  ,   MPO ", want: Tokens{"DOT", "MPO"}},
		{name: "duplicates collapse", in: "DOT, DOT / DOT", want: Tokens{"DOT"}},
		{name: "empty fragments dropped", in: ",,DOT;;", want: Tokens{"DOT"}},
		{name: "bare delimiters only", in: " , / ; + ", want: nil},
		{name: "empty", in: "", want: nil},
		{name: "blank", in: "   ", want: nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.in)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Tokenize(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestTokenize_Idempotent(t *testing.T) {
	for _, tok := range []string{"Consulting", "Software", "State DOT", "University"} {
		got := Tokenize(tok)
		if len(got) != 1 || got[0] != tok {
			t.Fatalf("Tokenize(%q) = %v, want single token", tok, got)
		}
	}
}

func TestTokens_Lookup(t *testing.T) {
	toks := Tokenize("DOT, Consulting")
	if !toks.Contains("DOT") || toks.Contains("MPO") {
		t.Fatalf("Contains wrong for %v", toks)
	}
	if !toks.Intersects(map[string]struct{}{"Consulting": {}}) {
		t.Fatalf("expected intersection with Consulting")
	}
	if toks.Intersects(map[string]struct{}{"MPO": {}}) {
		t.Fatalf("unexpected intersection with MPO")
	}
}

func TestAliases(t *testing.T) {
	a := DefaultAliases()
	for _, in := range []string{"Consultant", "consultant", "CONSULTANT"} {
		if got := a.Canonical(in); got != "Consulting" {
			t.Fatalf("Canonical(%q) = %q, want Consulting", in, got)
		}
	}
	if got := a.Canonical("ConSultant"); got != "ConSultant" {
		t.Fatalf("aliases must match exactly, got %q", got)
	}

	b := a.With(map[string]string{"Univ": "University"})
	if b.Canonical("Univ") != "University" || a.Canonical("Univ") != "Univ" {
		t.Fatalf("With must copy, not mutate")
	}

	got := a.Tokens(Tokens{"Consultant", "Consulting", "software"})
	if diff := cmp.Diff(Tokens{"Consulting", "Software"}, got); diff != "" {
		t.Fatalf("Tokens mismatch (-want +got):\n%s", diff)
	}
}

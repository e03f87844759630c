package config

import (
	"testing"
	"time"

	kit "surveyscope/internal/platform/testkit"

	"github.com/google/go-cmp/cmp"
)

func TestPrefixAndKey(t *testing.T) {
	api := New().Prefix("CORE_").Prefix("API_")
	if got := api.key("SLOW_MS"); got != "CORE_API_SLOW_MS" {
		t.Fatalf("key() = %q", got)
	}
}

func TestMayScalars(t *testing.T) {
	c := New().Prefix("M_")
	t.Setenv("M_NAME", " trb ")
	t.Setenv("M_MIN", " 2 ")
	t.Setenv("M_MIN_BAD", "two")
	t.Setenv("M_SWAGGER", "true")
	t.Setenv("M_SWAGGER_BAD", "sure")
	t.Setenv("M_SLOW", "150ms")
	t.Setenv("M_SLOW_BAD", "soon")

	if c.MayString("NAME", "x") != "trb" || c.MayString("NOPE", "def") != "def" {
		t.Fatalf("MayString mismatch")
	}
	if c.MayInt("MIN", 0) != 2 || c.MayInt("MIN_BAD", 5) != 5 || c.MayInt("NOPE", 1) != 1 {
		t.Fatalf("MayInt mismatch")
	}
	if !c.MayBool("SWAGGER", false) || c.MayBool("SWAGGER_BAD", false) || !c.MayBool("NOPE", true) {
		t.Fatalf("MayBool mismatch")
	}
	if c.MayDuration("SLOW", time.Second) != 150*time.Millisecond || c.MayDuration("SLOW_BAD", time.Minute) != time.Minute {
		t.Fatalf("MayDuration mismatch")
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("REPORT_")
	t.Setenv("REPORT_ORGS", " DOT, Consulting , ,Academia ,, ")
	t.Setenv("REPORT_BLANKS", " , ,  ,")

	if diff := cmp.Diff([]string{"DOT", "Consulting", "Academia"}, c.MayCSV("ORGS", nil)); diff != "" {
		t.Fatalf("MayCSV mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"fallback"}, c.MayCSV("BLANKS", []string{"fallback"})); diff != "" {
		t.Fatalf("MayCSV blanks mismatch (-want +got):\n%s", diff)
	}
	if got := c.MayCSV("MISSING", nil); got != nil {
		t.Fatalf("MayCSV missing = %#v, want nil", got)
	}
}

func TestMayRune(t *testing.T) {
	c := New().Prefix("SURVEY_")
	t.Setenv("SURVEY_SEMI", ";")
	t.Setenv("SURVEY_TAB", `\t`)
	t.Setenv("SURVEY_LONG", ";;")

	if c.MayRune("MISSING", ',') != ',' {
		t.Fatalf("MayRune default mismatch")
	}
	if c.MayRune("SEMI", ',') != ';' || c.MayRune("TAB", ',') != '\t' {
		t.Fatalf("MayRune value mismatch")
	}
	kit.MustPanic(t, func() { _ = c.MayRune("LONG", ',') })
}

package service

import (
	"context"
	"testing"

	"surveyscope/internal/adapters/ingest/csvtable"
	"surveyscope/internal/core/survey"
	perr "surveyscope/internal/platform/errors"
	"surveyscope/internal/platform/store"
	kit "surveyscope/internal/platform/testkit"
	"surveyscope/internal/services/api/explorer/domain"
	"surveyscope/internal/services/api/explorer/repo"

	"github.com/google/go-cmp/cmp"
)

const threeRows = `Last5Years,AttendTRBAM2026,Organization,HowLong
2,Definitely going,DOT,0 to 5 years
,Probably going,"Consultant, DOT",
5,,Software,16 or more years
`

func loaded(t *testing.T, data string) *Service {
	t.Helper()
	st := store.Open(store.Config{Source: csvtable.StringSource{Label: "mem", Data: data}},
		store.WithIDs(func() string { return "snap-1" }))
	if _, err := st.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return New(repo.New(st))
}

func TestCharts_EndToEnd(t *testing.T) {
	s := loaded(t, threeRows)
	out, err := s.Charts(context.Background(), domain.ChartsInput{
		Years:   domain.Years(0, 5),
		Intents: survey.IntentLevels(),
		Tenures: survey.TenureLevels(),
		Orgs:    []string{"DOT"},
	})
	if err != nil {
		t.Fatalf("Charts: %v", err)
	}

	want := domain.ChartsOutput{
		SnapshotID: "snap-1",
		Total:      2,
		Header:     "Charts (update with filters) — 2 responses",
		Attendance: survey.CountSeries{{Label: "2 times", Count: 1}, {Label: survey.Unspecified, Count: 1}},
		Intent:     survey.CountSeries{{Label: "Definitely going", Count: 1}, {Label: "Probably going", Count: 1}},
		Organization: survey.CountSeries{
			{Label: "DOT", Count: 2},
			{Label: "Consulting", Count: 1},
		},
		Tenure: survey.CountSeries{{Label: "0 to 5 years", Count: 1}, {Label: survey.Unspecified, Count: 1}},
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("charts (-want +got)\n%s", diff)
	}
}

func TestCharts_Defaults(t *testing.T) {
	s := loaded(t, threeRows)
	out, err := s.Charts(context.Background(), domain.ChartsInput{})
	if err != nil {
		t.Fatalf("Charts: %v", err)
	}
	if out.Total != 3 {
		t.Fatalf("empty input should select everything, got %d", out.Total)
	}
	if out.Intent.Total() != 3 || out.Tenure.Total() != 3 || out.Attendance.Total() != 3 {
		t.Fatalf("single-valued series must sum to total: %+v", out)
	}
}

func TestCharts_EmptyResults(t *testing.T) {
	s := loaded(t, threeRows)
	cases := []struct {
		name string
		in   domain.ChartsInput
		want int
	}{
		{"inverted range keeps only absent attendance", domain.ChartsInput{Years: domain.Years(4, 1)}, 1},
		{"unknown org keeps nobody with orgs", domain.ChartsInput{Orgs: []string{"NASA"}}, 0},
		{"unknown intent keeps absent intent", domain.ChartsInput{Intents: []string{"maybe"}}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := s.Charts(context.Background(), tc.in)
			if err != nil {
				t.Fatalf("selection issues must not error: %v", err)
			}
			if out.Total != tc.want {
				t.Fatalf("total want %d got %d", tc.want, out.Total)
			}
			if out.Organization == nil || out.Intent == nil {
				t.Fatalf("series must encode as arrays, got nil")
			}
		})
	}
}

func TestHeader(t *testing.T) {
	cases := map[int]string{
		0: "Charts (update with filters) — 0 responses",
		1: "Charts (update with filters) — 1 response",
		7: "Charts (update with filters) — 7 responses",
	}
	for n, want := range cases {
		if got := Header(n); got != want {
			t.Fatalf("Header(%d) want %q got %q", n, want, got)
		}
	}
}

func TestSelection(t *testing.T) {
	got := Selection(domain.ChartsInput{
		Years:   domain.Years(1, 3),
		Intents: []string{" Probably going ", "Probably going", ""},
		Orgs:    []string{"DOT"},
	})
	want := survey.Selection{YearMin: 1, YearMax: 3, Intents: []string{"Probably going"}, Orgs: []string{"DOT"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("selection (-want +got)\n%s", diff)
	}

	full := Selection(domain.ChartsInput{})
	if full.YearMin != survey.AttendanceMin || full.YearMax != survey.AttendanceMax {
		t.Fatalf("omitted range should be full, got %+v", full)
	}

	lo := 2
	half := Selection(domain.ChartsInput{Years: &domain.YearRange{Min: &lo}})
	if half.YearMin != 2 || half.YearMax != survey.AttendanceMax {
		t.Fatalf("missing max should default to the domain edge, got %+v", half)
	}
	hi := 1
	half = Selection(domain.ChartsInput{Years: &domain.YearRange{Max: &hi}})
	if half.YearMin != survey.AttendanceMin || half.YearMax != 1 {
		t.Fatalf("missing min should default to the domain edge, got %+v", half)
	}
}

func TestChoices(t *testing.T) {
	s := loaded(t, threeRows)
	out, err := s.Choices(context.Background())
	if err != nil {
		t.Fatalf("Choices: %v", err)
	}
	if diff := cmp.Diff([]string{"Consulting", "DOT", "Software"}, out.Orgs); diff != "" {
		t.Fatalf("orgs (-want +got)\n%s", diff)
	}
	if out.Years != (domain.Range{Min: 0, Max: 5}) || out.Defaults.Years != out.Years {
		t.Fatalf("unexpected ranges %+v", out)
	}
	if diff := cmp.Diff(survey.IntentLevels(), out.Defaults.Intents); diff != "" {
		t.Fatalf("default intents (-want +got)\n%s", diff)
	}
	if len(out.Defaults.Orgs) != 0 || out.Defaults.Orgs == nil {
		t.Fatalf("default orgs should be an empty list, got %#v", out.Defaults.Orgs)
	}
}

func TestDatasetAndReload(t *testing.T) {
	s := loaded(t, threeRows)
	ds, err := s.Dataset(context.Background())
	if err != nil {
		t.Fatalf("Dataset: %v", err)
	}
	want := survey.Stats{Rows: 3, NoAttendance: 1, NoIntent: 1, NoTenure: 1}
	if diff := cmp.Diff(want, ds.Stats); diff != "" {
		t.Fatalf("stats (-want +got)\n%s", diff)
	}
	if ds.Source != "mem" || ds.OrgChoices != 3 || ds.SnapshotID != "snap-1" {
		t.Fatalf("unexpected dataset %+v", ds)
	}

	re, err := s.Reload(context.Background())
	if err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if re.Stats.Rows != 3 {
		t.Fatalf("reload rows want 3 got %d", re.Stats.Rows)
	}
}

type fakeRepo struct {
	cur    *store.Snapshot
	curErr error
	relErr error
}

func (f fakeRepo) Current(context.Context) (*store.Snapshot, error) { return f.cur, f.curErr }
func (f fakeRepo) Reload(context.Context) (*store.Snapshot, error)  { return nil, f.relErr }

func TestService_NotLoaded(t *testing.T) {
	s := New(fakeRepo{curErr: perr.Unavailablef("survey snapshot not loaded")})
	ctx := context.Background()

	if _, err := s.Choices(ctx); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("Choices want unavailable got %v", err)
	}
	if _, err := s.Charts(ctx, domain.ChartsInput{}); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("Charts want unavailable got %v", err)
	}
	if _, err := s.Dataset(ctx); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("Dataset want unavailable got %v", err)
	}
}

func TestReload_Failure(t *testing.T) {
	s := New(fakeRepo{relErr: perr.Newf(perr.ErrorCodeSchema, "missing required column(s): HowLong")})
	if _, err := s.Reload(context.Background()); !perr.IsCode(err, perr.ErrorCodeSchema) {
		t.Fatalf("want schema error got %v", err)
	}
}

func TestNew_Guards(t *testing.T) {
	kit.MustPanic(t, func() { New(nil) })
	kit.MustPanic(t, func() { repo.New(nil) })
}

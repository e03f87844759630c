package store

import (
	"context"
	"os"
	"strconv"
	"sync"
	"testing"
	"time"

	"surveyscope/internal/adapters/ingest/csvtable"
	"surveyscope/internal/platform/config"
	perr "surveyscope/internal/platform/errors"
	kit "surveyscope/internal/platform/testkit"

	"github.com/google/go-cmp/cmp"
)

const pollCSV = `Last5Years,AttendTRBAM2026,Organization,HowLong
2,Definitely going,DOT,0 to 5 years
0,Probably going,DOT / Consultant,6 to 10 years
5,Definitely not going,University,16 or more years
`

func fixedIDs() func() string {
	n := 0
	return func() string {
		n++
		return "snap-" + strconv.Itoa(n)
	}
}

func openFile(t *testing.T, path string, opts ...Option) *Store {
	t.Helper()
	opts = append([]Option{WithIDs(fixedIDs())}, opts...)
	return Open(Config{Source: csvtable.FileSource{Path: path}}, opts...)
}

func TestLoad_BuildsSnapshot(t *testing.T) {
	p := kit.WriteFile(t, "poll.csv", pollCSV)
	at := time.Date(2026, 1, 11, 9, 0, 0, 0, time.FixedZone("EST", -5*3600))
	s := openFile(t, p, WithClock(func() time.Time { return at }))

	if s.Current() != nil {
		t.Fatalf("expected no snapshot before Load")
	}
	snap, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.ID != "snap-1" || snap.Source != p {
		t.Fatalf("unexpected snapshot identity %+v", snap)
	}
	if !snap.LoadedAt.Equal(at) || snap.LoadedAt.Location() != time.UTC {
		t.Fatalf("LoadedAt want %v in UTC got %v", at, snap.LoadedAt)
	}
	if snap.Table.Len() != 3 {
		t.Fatalf("rows want 3 got %d", snap.Table.Len())
	}
	if diff := cmp.Diff([]string{"Consulting", "DOT", "University"}, snap.Table.OrgChoices()); diff != "" {
		t.Fatalf("org choices (-want +got)\n%s", diff)
	}
	if s.Current() != snap {
		t.Fatalf("Current should return the loaded snapshot")
	}
}

func TestLoad_Idempotent(t *testing.T) {
	s := openFile(t, kit.WriteFile(t, "poll.csv", pollCSV))
	a, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load again: %v", err)
	}
	if a != b {
		t.Fatalf("second Load should return the first snapshot")
	}
}

func TestLoad_ConcurrentCallersShareSnapshot(t *testing.T) {
	s := openFile(t, kit.WriteFile(t, "poll.csv", pollCSV))

	var wg sync.WaitGroup
	ids := make([]string, 8)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			snap, err := s.Load(context.Background())
			if err != nil {
				t.Errorf("Load: %v", err)
				return
			}
			ids[i] = snap.ID
		}(i)
	}
	wg.Wait()
	for _, id := range ids {
		if id != "snap-1" {
			t.Fatalf("expected a single build, got ids %v", ids)
		}
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		path func(t *testing.T) string
		code perr.ErrorCode
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return t.TempDir() + "/nope.csv" },
			code: perr.ErrorCodeSource,
		},
		{
			name: "empty file",
			path: func(t *testing.T) string { return kit.WriteFile(t, "empty.csv", "") },
			code: perr.ErrorCodeSource,
		},
		{
			name: "missing columns",
			path: func(t *testing.T) string {
				return kit.WriteFile(t, "cols.csv", "Last5Years,Organization\n2,DOT\n")
			},
			code: perr.ErrorCodeSchema,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := openFile(t, tc.path(t))
			_, err := s.Load(context.Background())
			if err == nil {
				t.Fatalf("expected error")
			}
			if !perr.IsCode(err, tc.code) {
				t.Fatalf("code want %v got %v (%v)", tc.code, perr.CodeOf(err), err)
			}
			if s.Current() != nil {
				t.Fatalf("failed Load must not publish a snapshot")
			}
			if s.Ping(context.Background()) == nil {
				t.Fatalf("Ping should fail without a snapshot")
			}
		})
	}
}

func TestReload_SwapsAndKeepsPreviousOnFailure(t *testing.T) {
	p := kit.WriteFile(t, "poll.csv", pollCSV)
	s := openFile(t, p)

	first, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	more := pollCSV + "3,I don't know,FHWA,11 to 15 years\n"
	if err := os.WriteFile(p, []byte(more), 0o600); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	second, err := s.Reload(context.Background())
	if err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if second.ID == first.ID || second.Table.Len() != 4 {
		t.Fatalf("expected a fresh 4 row snapshot, got %s with %d rows", second.ID, second.Table.Len())
	}
	if first.Table.Len() != 3 {
		t.Fatalf("old snapshot must stay intact, got %d rows", first.Table.Len())
	}

	if err := os.WriteFile(p, []byte("Organization\nDOT\n"), 0o600); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if _, err := s.Reload(context.Background()); !perr.IsCode(err, perr.ErrorCodeSchema) {
		t.Fatalf("expected schema error, got %v", err)
	}
	if s.Current() != second {
		t.Fatalf("failed Reload must keep the previous snapshot serving")
	}
}

func TestLoad_AliasOverrides(t *testing.T) {
	p := kit.WriteFile(t, "poll.csv", "Last5Years,AttendTRBAM2026,Organization,HowLong\n1,,US DOT,\n1,,software,\n")
	a := kit.WriteFile(t, "aliases.yaml", "aliases:\n  \"US DOT\": DOT\n")
	s := Open(Config{Source: csvtable.FileSource{Path: p}, AliasPath: a})

	snap, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff([]string{"DOT", "Software"}, snap.Table.OrgChoices()); diff != "" {
		t.Fatalf("org choices (-want +got)\n%s", diff)
	}
}

func TestLoad_BadAliasFile(t *testing.T) {
	p := kit.WriteFile(t, "poll.csv", pollCSV)
	s := Open(Config{Source: csvtable.FileSource{Path: p}, AliasPath: t.TempDir() + "/missing.yaml"})
	if _, err := s.Load(context.Background()); !perr.IsCode(err, perr.ErrorCodeSource) {
		t.Fatalf("expected source error, got %v", err)
	}
}

func TestLoad_CustomDelimiter(t *testing.T) {
	src := csvtable.StringSource{Label: "mem", Data: "Last5Years;AttendTRBAM2026;Organization;HowLong\n4;Probably going;DOT;6 to 10 years\n"}
	s := Open(Config{Source: src, CSV: csvtable.Options{Comma: ';'}})
	snap, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.Source != "mem" || snap.Table.Len() != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if v, ok := snap.Table.At(0).Last5Years.Get(); !ok || v != 4 {
		t.Fatalf("attendance want 4 got %v %v", v, ok)
	}
}

func TestLoad_CanceledContext(t *testing.T) {
	s := openFile(t, kit.WriteFile(t, "poll.csv", pollCSV))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Load(ctx); !perr.IsCode(err, perr.ErrorCodeSource) {
		t.Fatalf("expected source error on canceled ctx, got %v", err)
	}
}

func TestPing(t *testing.T) {
	var nilStore *Store
	if err := nilStore.Ping(context.Background()); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("nil store Ping want unavailable got %v", err)
	}
	s := openFile(t, kit.WriteFile(t, "poll.csv", pollCSV))
	if _, err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("Ping after Load: %v", err)
	}
}

func TestFromConfig(t *testing.T) {
	t.Setenv("T_SURVEY_CSV_PATH", "/data/poll.csv")
	t.Setenv("T_SURVEY_ALIASES_PATH", "/data/aliases.yaml")
	t.Setenv("T_SURVEY_DELIMITER", ";")

	cfg := FromConfig(testConf("T_"))
	if fs, ok := cfg.Source.(csvtable.FileSource); !ok || fs.Path != "/data/poll.csv" {
		t.Fatalf("source want /data/poll.csv got %#v", cfg.Source)
	}
	if cfg.AliasPath != "/data/aliases.yaml" || cfg.CSV.Comma != ';' {
		t.Fatalf("unexpected config %+v", cfg)
	}

	def := FromConfig(testConf("UNSET_"))
	if def.Source.Name() != DefaultCSVPath || def.AliasPath != "" || def.CSV.Comma != ',' {
		t.Fatalf("unexpected defaults %+v", def)
	}
	if (Config{}).source().Name() != DefaultCSVPath {
		t.Fatalf("zero Config should fall back to %s", DefaultCSVPath)
	}
}

func testConf(prefix string) config.Conf { return config.New().Prefix(prefix) }

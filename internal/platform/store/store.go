// Package store holds the process-wide survey snapshot
//
// A snapshot is built once from the survey export and swapped atomically on reload.
// Readers never lock; they take the current pointer and work on an immutable Table.
package store

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"surveyscope/internal/adapters/ingest/aliasfile"
	"surveyscope/internal/adapters/ingest/csvtable"
	"surveyscope/internal/core/survey"
	perr "surveyscope/internal/platform/errors"
	"surveyscope/internal/platform/logger"

	"github.com/google/uuid"
)

// Snapshot is one loaded, normalized dataset
type Snapshot struct {
	ID       string
	Source   string
	LoadedAt time.Time
	Table    *survey.Table
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Store owns the current snapshot
// zero value is not usable, build with Open
type Store struct {
	cfg Config
	cur atomic.Pointer[Snapshot]
	mu  sync.Mutex

	newID func() string
	now   func() time.Time
}

// Option customizes a Store
type Option func(*Store)

// WithClock overrides the load timestamp source
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

// WithIDs overrides snapshot id generation
func WithIDs(fn func() string) Option { return func(s *Store) { s.newID = fn } }

// Open returns an empty Store for cfg; nothing is read until Load
func Open(cfg Config, opts ...Option) *Store {
	s := &Store{
		cfg:   cfg,
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load builds the first snapshot; later calls return the current one
func (s *Store) Load(ctx context.Context) (*Snapshot, error) {
	if snap := s.cur.Load(); snap != nil {
		return snap, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap := s.cur.Load(); snap != nil {
		return snap, nil
	}
	return s.build(ctx)
}

// Reload rebuilds from the source and swaps the snapshot in
// on failure the previous snapshot keeps serving
func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.build(ctx)
}

// Current returns the serving snapshot, nil before the first Load
func (s *Store) Current() *Snapshot { return s.cur.Load() }

// Ping reports whether a snapshot is being served
func (s *Store) Ping(context.Context) error {
	if s == nil || s.cur.Load() == nil {
		return perr.Unavailablef("survey snapshot not loaded")
	}
	return nil
}

// build must run with mu held
func (s *Store) build(ctx context.Context) (*Snapshot, error) {
	start := time.Now()
	src := s.cfg.source()

	aliases, err := aliasfile.Load(s.cfg.AliasPath)
	if err != nil {
		return nil, err
	}
	raw, err := csvtable.Read(ctx, src, s.cfg.CSV)
	if err != nil {
		return nil, err
	}
	tbl, err := survey.Normalize(raw, survey.WithAliases(aliases))
	if err != nil {
		return nil, perr.WithOp(err, src.Name())
	}

	snap := &Snapshot{
		ID:       s.newID(),
		Source:   src.Name(),
		LoadedAt: s.now().UTC(),
		Table:    tbl,
	}
	prev := s.cur.Swap(snap)

	st := tbl.Stats()
	evt := logger.C(logger.WithSnapshot(ctx, snap.ID)).Info().
		Str("source", snap.Source).
		Int("rows", st.Rows).
		Int("absent_attendance", st.NoAttendance).
		Int("absent_intent", st.NoIntent).
		Int("absent_organization", st.NoOrgs).
		Int("absent_tenure", st.NoTenure).
		Int("org_choices", len(tbl.OrgChoices())).
		Dur("took", time.Since(start))
	if prev != nil {
		evt = evt.Str("replaced", prev.ID)
	}
	evt.Msg("survey snapshot loaded")
	return snap, nil
}

// Package service implements the explorer API facade
package service

import (
	"context"

	"surveyscope/internal/core/survey"
	perr "surveyscope/internal/platform/errors"
	"surveyscope/internal/platform/logger"
	"surveyscope/internal/platform/store"
	pstrings "surveyscope/internal/platform/strings"
	"surveyscope/internal/services/api/explorer/domain"
	"surveyscope/internal/services/api/explorer/repo"
)

// HeaderPrefix opens the charts header line
const HeaderPrefix = "Charts (update with filters) \u2014 "

// Service is the concrete implementation of domain.ServicePort
type Service struct {
	Repo repo.Snapshots
}

var _ domain.ServicePort = (*Service)(nil)

// New constructs an explorer service
func New(r repo.Snapshots) *Service {
	if r == nil {
		panic("explorer.Service requires a non-nil repo")
	}
	return &Service{Repo: r}
}

// Choices lists selectable values and the initial sidebar state
func (s *Service) Choices(ctx context.Context) (domain.ChoicesOutput, error) {
	snap, err := s.Repo.Current(ctx)
	if err != nil {
		return domain.ChoicesOutput{}, err
	}
	full := domain.Range{Min: survey.AttendanceMin, Max: survey.AttendanceMax}
	return domain.ChoicesOutput{
		SnapshotID: snap.ID,
		Years:      full,
		Intents:    survey.IntentLevels(),
		Tenures:    survey.TenureLevels(),
		Orgs:       nonNil(snap.Table.OrgChoices()),
		Defaults: domain.Defaults{
			Years:   full,
			Intents: survey.IntentLevels(),
			Tenures: survey.TenureLevels(),
			Orgs:    []string{},
		},
	}, nil
}

// Charts filters the snapshot once and aggregates every chart
func (s *Service) Charts(ctx context.Context, in domain.ChartsInput) (domain.ChartsOutput, error) {
	snap, err := s.Repo.Current(ctx)
	if err != nil {
		return domain.ChartsOutput{}, err
	}
	sel := Selection(in)
	ch := survey.Explore(snap.Table, sel)

	logger.C(logger.WithSnapshot(ctx, snap.ID)).Debug().
		Int("year_min", sel.YearMin).
		Int("year_max", sel.YearMax).
		Int("intents", len(sel.Intents)).
		Int("tenures", len(sel.Tenures)).
		Int("orgs", len(sel.Orgs)).
		Int("total", ch.Total).
		Msg("charts computed")

	return domain.ChartsOutput{
		SnapshotID:   snap.ID,
		Total:        ch.Total,
		Header:       Header(ch.Total),
		Attendance:   nonNilSeries(ch.Attendance),
		Intent:       nonNilSeries(ch.Intent),
		Organization: nonNilSeries(ch.Organization),
		Tenure:       nonNilSeries(ch.Tenure),
	}, nil
}

// Reload rebuilds the snapshot and reports on the new one
func (s *Service) Reload(ctx context.Context) (domain.DatasetOutput, error) {
	snap, err := s.Repo.Reload(ctx)
	if err != nil {
		ev := logger.C(ctx).Error().Err(err)
		if e, ok := perr.As(err); ok && e.Op() != "" {
			ev = ev.Str("op", e.Op())
		}
		ev.Msg("survey reload failed, previous snapshot kept")
		return domain.DatasetOutput{}, err
	}
	return datasetOf(snap), nil
}

// Dataset reports on the serving snapshot
func (s *Service) Dataset(ctx context.Context) (domain.DatasetOutput, error) {
	snap, err := s.Repo.Current(ctx)
	if err != nil {
		return domain.DatasetOutput{}, err
	}
	return datasetOf(snap), nil
}

// Selection maps request input onto a filter selection
// list values are trimmed and deduplicated, an omitted range is the full range
func Selection(in domain.ChartsInput) survey.Selection {
	sel := survey.FullSelection()
	if y := in.Years; y != nil {
		if y.Min != nil {
			sel.YearMin = *y.Min
		}
		if y.Max != nil {
			sel.YearMax = *y.Max
		}
	}
	sel.Intents = pstrings.Compact(in.Intents)
	sel.Tenures = pstrings.Compact(in.Tenures)
	sel.Orgs = pstrings.Compact(in.Orgs)
	return sel
}

// Header is the line shown above the charts
func Header(total int) string {
	return HeaderPrefix + pstrings.Plural(total, "response", "responses")
}

func datasetOf(snap *store.Snapshot) domain.DatasetOutput {
	return domain.DatasetOutput{
		SnapshotID: snap.ID,
		Source:     snap.Source,
		LoadedAt:   snap.LoadedAt,
		Stats:      snap.Table.Stats(),
		OrgChoices: len(snap.Table.OrgChoices()),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilSeries(s survey.CountSeries) survey.CountSeries {
	if s == nil {
		return survey.CountSeries{}
	}
	return s
}

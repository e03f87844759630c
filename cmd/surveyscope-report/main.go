// Command surveyscope-report prints the charts for one selection as JSON
//
//	REPORT_YEARS_MIN=1 REPORT_ORGS="DOT,FHWA" surveyscope-report
package main

import (
	"context"
	"encoding/json"
	"os"

	"surveyscope/internal/core/survey"
	"surveyscope/internal/platform/config"
	"surveyscope/internal/platform/logger"
	"surveyscope/internal/platform/store"
	"surveyscope/internal/services/api/explorer/domain"
	"surveyscope/internal/services/api/explorer/repo"
	"surveyscope/internal/services/api/explorer/service"
)

func main() {
	root := config.New()
	l := logger.Named("report")

	st := store.Open(store.FromConfig(root))
	if _, err := st.Load(context.Background()); err != nil {
		l.Panic().Err(err).Msg("survey load failed")
	}

	out, err := service.New(repo.New(st)).Charts(context.Background(), inputFromConfig(root.Prefix("REPORT_")))
	if err != nil {
		l.Panic().Err(err).Msg("charts failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		l.Panic().Err(err).Msg("write report")
	}
}

// inputFromConfig reads YEARS_MIN, YEARS_MAX, INTENTS, TENURES and ORGS
func inputFromConfig(cfg config.Conf) domain.ChartsInput {
	return domain.ChartsInput{
		Years: domain.Years(
			cfg.MayInt("YEARS_MIN", survey.AttendanceMin),
			cfg.MayInt("YEARS_MAX", survey.AttendanceMax),
		),
		Intents: cfg.MayCSV("INTENTS", nil),
		Tenures: cfg.MayCSV("TENURES", nil),
		Orgs:    cfg.MayCSV("ORGS", nil),
	}
}

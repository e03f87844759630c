package store

import (
	"surveyscope/internal/adapters/ingest/csvtable"
	"surveyscope/internal/platform/config"
)

// DefaultCSVPath is the export file name the poll tool produces
const DefaultCSVPath = "trb_simplified.csv"

// Config describes where a snapshot is built from
type Config struct {
	// Source is the survey export; nil means DefaultCSVPath on disk
	Source csvtable.Source

	// CSV tunes the reader
	CSV csvtable.Options

	// AliasPath is an optional YAML alias override file
	AliasPath string
}

// FromConfig reads SURVEY_CSV_PATH, SURVEY_ALIASES_PATH and SURVEY_DELIMITER from cfg
func FromConfig(cfg config.Conf) Config {
	return Config{
		Source:    csvtable.FileSource{Path: cfg.MayString("SURVEY_CSV_PATH", DefaultCSVPath)},
		CSV:       csvtable.Options{Comma: cfg.MayRune("SURVEY_DELIMITER", ',')},
		AliasPath: cfg.MayString("SURVEY_ALIASES_PATH", ""),
	}
}

func (c Config) source() csvtable.Source {
	if c.Source == nil {
		return csvtable.FileSource{Path: DefaultCSVPath}
	}
	return c.Source
}

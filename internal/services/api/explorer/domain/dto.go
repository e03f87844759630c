// Package domain holds DTOs for the explorer HTTP and service contracts
package domain

import (
	"time"

	"surveyscope/internal/core/survey"
)

// Range is an inclusive attendance bound
type Range struct {
	Min int `json:"min" example:"0"`
	Max int `json:"max" example:"5"`
}

// YearRange is a requested attendance bound
// a missing end defaults to the matching edge of the attendance domain
type YearRange struct {
	Min *int `json:"min,omitempty" example:"0"`
	Max *int `json:"max,omitempty" example:"5"`
}

// Years builds a closed YearRange
func Years(lo, hi int) *YearRange { return &YearRange{Min: &lo, Max: &hi} }

// ChartsInput is the sidebar state
// labels are not checked against the domains; unknown values simply match nothing
type ChartsInput struct {
	// Years defaults to the full attendance range when omitted
	Years   *YearRange `json:"years,omitempty"`
	Intents []string   `json:"intents,omitempty" validate:"max=16,dive,notblank,max=200" example:"Definitely going"`
	Tenures []string   `json:"tenures,omitempty" validate:"max=16,dive,notblank,max=200" example:"0 to 5 years"`
	Orgs    []string   `json:"orgs,omitempty"    validate:"max=256,dive,notblank,max=200" example:"DOT"`
}

// Defaults is the initial sidebar state
type Defaults struct {
	Years   Range    `json:"years"`
	Intents []string `json:"intents"`
	Tenures []string `json:"tenures"`
	Orgs    []string `json:"orgs"`
}

// ChoicesOutput lists every selectable value
type ChoicesOutput struct {
	SnapshotID string   `json:"snapshot_id" example:"6f1c2e1a-3b0d-4c55-9d8e-0a7b6c5d4e3f"`
	Years      Range    `json:"years"`
	Intents    []string `json:"intents"`
	Tenures    []string `json:"tenures"`
	Orgs       []string `json:"orgs"`
	Defaults   Defaults `json:"defaults"`
}

// ChartsOutput is the filtered total plus one series per chart
type ChartsOutput struct {
	SnapshotID   string             `json:"snapshot_id"`
	Total        int                `json:"total"  example:"412"`
	Header       string             `json:"header"`
	Attendance   survey.CountSeries `json:"attendance"`
	Intent       survey.CountSeries `json:"intent"`
	Organization survey.CountSeries `json:"organization"`
	Tenure       survey.CountSeries `json:"tenure"`
}

// DatasetOutput describes the serving snapshot
type DatasetOutput struct {
	SnapshotID string       `json:"snapshot_id"`
	Source     string       `json:"source"    example:"trb_simplified.csv"`
	LoadedAt   time.Time    `json:"loaded_at"`
	Stats      survey.Stats `json:"stats"`
	OrgChoices int          `json:"org_choices" example:"37"`
}

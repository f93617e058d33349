// Package predict implements the prediction orchestrator (C9): the
// thirteen-step pipeline that fans out to terrain, wind, biological,
// score-map, points, stand, hunt-window, and hunting-context
// components and assembles the final response.
package predict

import (
	"fmt"
	"time"

	"github.com/greenmtn-data/scent.report/internal/biology"
	"github.com/greenmtn-data/scent.report/internal/errkind"
	"github.com/greenmtn-data/scent.report/internal/geo"
)

// Request is the prediction orchestrator's input.
type Request struct {
	Lat                  float64               `json:"lat"`
	Lon                  float64               `json:"lon"`
	DateTime             time.Time             `json:"date_time"`
	Season               biology.Season        `json:"season"`
	HuntingPressureLevel biology.PressureLevel `json:"hunting_pressure_level,omitempty"`
	FastMode             bool                  `json:"fast_mode,omitempty"`
	StandProfilesRef     string                `json:"stand_profiles_ref,omitempty"`
}

// Validate enforces the caller-visible request invariants: coordinates
// in range, a recognized season. A malformed datetime is caught before
// Validate runs since DateTime is already parsed by the time a Request
// exists.
func (r Request) Validate() error {
	p := geo.Point{Lat: r.Lat, Lon: r.Lon}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %v", errkind.ErrInputInvalid, err)
	}
	switch r.Season {
	case biology.EarlySeason, biology.Rut, biology.LateSeason:
	default:
		return fmt.Errorf("%w: unknown season %q", errkind.ErrInputInvalid, r.Season)
	}
	if r.DateTime.IsZero() {
		return fmt.Errorf("%w: date_time is required", errkind.ErrInputInvalid)
	}
	return nil
}

// NormalizedPressure returns the request's hunting-pressure level,
// defaulting to moderate when unset.
func (r Request) NormalizedPressure() biology.PressureLevel {
	if r.HuntingPressureLevel == "" {
		return biology.PressureModerate
	}
	return r.HuntingPressureLevel
}

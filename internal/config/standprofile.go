package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/greenmtn-data/scent.report/internal/geo"
	"github.com/greenmtn-data/scent.report/internal/monitoring"
)

// PreferredWind is one acceptable wind direction for a stand, expressed
// either as a 16-point compass label or literal degrees, with a
// tolerance band.
type PreferredWind struct {
	CompassLabel string  `json:"compass_label"`
	ToleranceDeg float64 `json:"tolerance_deg"`
}

const defaultToleranceDeg = 25.0

// DirectionDeg resolves CompassLabel to a bearing, accepting either a
// 16-point compass string or a literal numeric degree value.
func (p PreferredWind) DirectionDeg() (geo.Bearing, error) {
	label := strings.ToUpper(strings.TrimSpace(p.CompassLabel))
	if deg, ok := compassLabelDegrees[label]; ok {
		return geo.NewBearing(deg), nil
	}
	var deg float64
	if _, err := fmt.Sscanf(label, "%f", &deg); err == nil {
		return geo.NewBearing(deg), nil
	}
	return 0, fmt.Errorf("preferred wind %q is neither a compass label nor a degree value", p.CompassLabel)
}

var compassLabelDegrees = map[string]float64{
	"N": 0, "NNE": 22.5, "NE": 45, "ENE": 67.5,
	"E": 90, "ESE": 112.5, "SE": 135, "SSE": 157.5,
	"S": 180, "SSW": 202.5, "SW": 225, "WSW": 247.5,
	"W": 270, "WNW": 292.5, "NW": 315, "NNW": 337.5,
}

// StandProfile is a user-configured stand: which winds make it huntable
// and what the hunt-window predictor should tag it with.
type StandProfile struct {
	ID             string          `json:"id"`
	DisplayName    string          `json:"display_name"`
	PreferredWinds []PreferredWind `json:"preferred_winds"`
	MaxGustMPH     *float64        `json:"max_gust_mph,omitempty"`
	StrategyMatch  *string         `json:"strategy_match,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
}

// Validate checks that preferred_winds is non-empty and each entry
// resolves to a bearing; tolerances default to 25 degrees.
func (s *StandProfile) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("stand profile missing id")
	}
	if len(s.PreferredWinds) == 0 {
		return fmt.Errorf("stand profile %q: preferred_winds must be non-empty", s.ID)
	}
	for i := range s.PreferredWinds {
		if s.PreferredWinds[i].ToleranceDeg <= 0 {
			s.PreferredWinds[i].ToleranceDeg = defaultToleranceDeg
		}
		if _, err := s.PreferredWinds[i].DirectionDeg(); err != nil {
			return fmt.Errorf("stand profile %q: %w", s.ID, err)
		}
	}
	return nil
}

// StandProfileStore is the process-wide read-only cache of stand
// profiles: loaded once, swapped atomically on reload, never mutated
// in place while a request holds a reference.
type StandProfileStore struct {
	mu       sync.RWMutex
	snapshot []StandProfile
}

// NewStandProfileStore builds a store from raw records, skipping
// malformed ones with a warning. At least one valid record must
// remain, else the hunt-window pipeline stays disabled for this
// snapshot.
func NewStandProfileStore(raw []StandProfile) *StandProfileStore {
	s := &StandProfileStore{}
	s.swap(raw)
	return s
}

func (s *StandProfileStore) swap(raw []StandProfile) {
	valid := make([]StandProfile, 0, len(raw))
	for i := range raw {
		p := raw[i]
		if err := p.Validate(); err != nil {
			monitoring.Logf("config: skipping malformed stand profile: %v", err)
			continue
		}
		valid = append(valid, p)
	}
	s.mu.Lock()
	s.snapshot = valid
	s.mu.Unlock()
}

// Reload atomically replaces the snapshot with newly loaded records.
// Idempotent: reloading the same input twice yields the same index.
func (s *StandProfileStore) Reload(raw []StandProfile) {
	s.swap(raw)
}

// Snapshot returns the current read-only list of valid stand profiles.
// Callers must not mutate the returned slice.
func (s *StandProfileStore) Snapshot() []StandProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Empty reports whether no valid stand profile survived loading,
// signalling ErrStandProfilesEmpty to the hunt-window pipeline.
func (s *StandProfileStore) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snapshot) == 0
}

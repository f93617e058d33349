// Package huntwindow implements the hunt-window predictor (C7):
// cold-front detection, wind-alignment scoring against stand profiles,
// thermal-stability checks, and the resulting HuntWindow/StandWindStatus
// outputs.
package huntwindow

import (
	"time"

	"github.com/greenmtn-data/scent.report/internal/config"
	"github.com/greenmtn-data/scent.report/internal/geo"
)

// ForecastHour is one hourly forecast reading.
type ForecastHour struct {
	Time         time.Time
	TemperatureF float64
	PressureInHg float64
	WindSpeedMPH float64
	WindGustMPH  float64
	WindFromDeg  geo.Bearing
}

// Snapshot is the full weather input to the predictor.
type Snapshot struct {
	Now      time.Time
	Current  ForecastHour
	Hourly   []ForecastHour
}

// ColdFront is the cold-front detection result.
type ColdFront struct {
	Triggered bool
	EarliestEventTime time.Time
}

// DetectColdFront scans the next 24 hours of s.Hourly for a
// temperature drop of at least 10 F or a pressure rise of at least
// 0.15 inHg versus current conditions.
func DetectColdFront(s Snapshot) ColdFront {
	var cf ColdFront
	cutoff := s.Now.Add(24 * time.Hour)
	for _, h := range s.Hourly {
		if h.Time.After(cutoff) {
			continue
		}
		tempDrop := s.Current.TemperatureF-h.TemperatureF >= 10
		pressureRise := h.PressureInHg-s.Current.PressureInHg >= 0.15
		if tempDrop || pressureRise {
			if !cf.Triggered || h.Time.Before(cf.EarliestEventTime) {
				cf.EarliestEventTime = h.Time
			}
			cf.Triggered = true
		}
	}
	return cf
}

// HuntWindow is a recommended 2-hour hunting window for one stand
// profile, produced per stand per forecast evaluation.
type HuntWindow struct {
	StandID       string    `json:"stand_id"`
	WindowStart   time.Time `json:"window_start"`
	WindowEnd     time.Time `json:"window_end"`
	Alignment0To1 float64   `json:"alignment_0_1"`
	PriorityBoost float64   `json:"priority_boost"`
	Confidence0To1 float64  `json:"confidence_0_1"`

	// DominantWindLabel is the 16-point compass label of the winning
	// hour's wind-from bearing, e.g. "NNW".
	DominantWindLabel string `json:"dominant_wind_label"`

	// TriggerTags names which conditions opened this window:
	// "cold_front" (always, windows only open inside a cold-front
	// scope), "wind_alignment" (always, a zero-alignment hour is never
	// chosen), and "thermal_stability" (always, every candidate hour
	// must pass the thermal-stability check; an active thermal is not
	// required).
	TriggerTags []string `json:"trigger_tags"`

	Notes string `json:"notes"`
}

// StandWindStatus is a profile's go/no-go status for "now".
type StandWindStatus struct {
	ProfileID     string
	GoNow         bool
	Alignment0To1 float64
	PriorityBoost float64
}

// alignmentForHour returns the best alignment score for profile
// against forecast hour h: max over the profile's preferred winds of
// (1 - diff/tolerance) when diff <= tolerance, else 0. Hours whose
// gust exceeds max_gust_mph are skipped entirely (alignment 0).
func alignmentForHour(profile config.StandProfile, h ForecastHour) float64 {
	if profile.MaxGustMPH != nil && h.WindGustMPH > *profile.MaxGustMPH {
		return 0
	}
	best := 0.0
	for _, pw := range profile.PreferredWinds {
		dirDeg, err := pw.DirectionDeg()
		if err != nil {
			continue
		}
		diff := geo.AngularDiff(h.WindFromDeg, dirDeg)
		if diff > pw.ToleranceDeg {
			continue
		}
		score := 1 - diff/pw.ToleranceDeg
		if score > best {
			best = score
		}
	}
	return best
}

// thermalStable reports whether h is a thermally-stable candidate
// hour: low wind, small hour-over-hour temperature change, and within
// a thermal-friendly hour range, optionally confirmed by an active
// strong thermal.
func thermalStable(h, prev ForecastHour, thermalActive bool, thermalStrength0To10 float64) bool {
	if h.WindSpeedMPH > 5 {
		return false
	}
	if absFloat(h.TemperatureF-prev.TemperatureF) > 4 {
		return false
	}
	hour := h.Time.Hour()
	inRange := (hour >= 5 && hour <= 9) || (hour >= 17 && hour <= 21)
	if !inRange {
		return false
	}
	if thermalActive && thermalStrength0To10 >= 4 {
		return true
	}
	return true
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

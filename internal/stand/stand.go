// Package stand implements the wind-aware stand calculator (C3):
// evening, morning, and all-day stand placement relative to a dominant
// bedding zone, under crosswind, thermal, or terrain-dominant wind
// regimes, plus scent-contamination validation.
package stand

import "github.com/greenmtn-data/scent.report/internal/geo"

// WindThreshold is the speed above which crosswind logic overrides
// terrain/thermal logic.
const WindThreshold = 10.0

// StrongWind overrides thermal influence regardless of thermal
// strength.
const StrongWind = 20.0

// distance multipliers relative to a caller-supplied reference
// distance from the bedding anchor.
const (
	eveningDistanceMultiplier = 1.5
	morningDistanceMultiplier = 1.3
	allDayDistanceMultiplier  = 1.0
)

// StrategyTag labels which regime produced a stand's bearing.
type StrategyTag string

const (
	StrategyCrosswind StrategyTag = "crosswind"
	StrategyThermal   StrategyTag = "thermal"
	StrategyTerrain   StrategyTag = "terrain"
	StrategyStrongWind StrategyTag = "strong_wind"
)

// Position is C3's per-stand output.
type Position struct {
	AnchorBedding       geo.Point   `json:"anchor_bedding_point"`
	BearingFromBeddingDeg geo.Bearing `json:"bearing_from_bedding_deg"`
	DistanceM           float64     `json:"distance_m"`
	WindAware           bool        `json:"wind_aware_flag"`
	CrosswindBearingDeg *geo.Bearing `json:"crosswind_bearing_deg,omitempty"`
	StrategyTag         StrategyTag `json:"strategy_tag"`
	PrimaryReason       string      `json:"primary_reason"`
	Adjustments         []string    `json:"adjustments"`
	ScentSafe           bool        `json:"scent_safe_flag"`
}

// Site is C3's terrain/wind input for one bedding anchor.
type Site struct {
	Anchor          geo.Point
	SlopeDeg        float64
	DownhillDeg     geo.Bearing // terrain aspect: where the slope faces
	WindFromDeg     geo.Bearing
	WindSpeedMPH    float64
	ThermalActive   bool
	ThermalDownslopeFamily bool // thermal phase belongs to the evening-downslope family
	ThermalStrength0To1    float64
	ReferenceDistanceM     float64
}

// UphillDeg is the reciprocal of the downhill (aspect) direction.
func (s Site) UphillDeg() geo.Bearing { return s.DownhillDeg.Opposite() }

// crosswindOptions returns the two bearings perpendicular to the wind.
func crosswindOptions(windFrom geo.Bearing) (plus90, minus90 geo.Bearing) {
	return windFrom.Plus(90), windFrom.Plus(-90)
}

// downwindDeg is the direction the wind blows toward.
func downwindDeg(windFrom geo.Bearing) geo.Bearing { return windFrom.Opposite() }

// CalculateEvening implements the evening-stand placement rules:
// bedding-to-feeding travel under crosswind, thermal, or terrain-led
// regimes depending on wind speed and thermal phase.
func CalculateEvening(s Site) Position {
	pos := Position{AnchorBedding: s.Anchor, DistanceM: s.ReferenceDistanceM * eveningDistanceMultiplier}

	switch {
	case s.WindSpeedMPH > WindThreshold:
		plus, minus := crosswindOptions(s.WindFromDeg)
		chosen := nearerTo(plus, minus, s.DownhillDeg)
		pos.BearingFromBeddingDeg = chosen
		pos.CrosswindBearingDeg = &chosen
		pos.WindAware = true
		pos.StrategyTag = StrategyCrosswind
		pos.PrimaryReason = "wind speed exceeds threshold; crosswind approach avoids alerting bedded deer"

	case s.ThermalActive && (s.ThermalDownslopeFamily || s.ThermalStrength0To1 > 0.05) && s.WindSpeedMPH < StrongWind:
		bearing := geo.CombineWeighted(s.ThermalFromBearing(), 0.6, s.DownhillDeg, 0.4)
		weight := thermalBlendWeight(s.WindSpeedMPH)
		pos.BearingFromBeddingDeg = geo.CombineWeighted(bearing, 1-weight, downwindDeg(s.WindFromDeg), weight)
		pos.StrategyTag = StrategyThermal
		pos.PrimaryReason = "evening downslope thermal reinforces travel toward feeding"

	case s.WindSpeedMPH >= StrongWind:
		pos.BearingFromBeddingDeg = geo.CombineWeighted(s.DownhillDeg, 0.4, downwindDeg(s.WindFromDeg), 0.6)
		pos.StrategyTag = StrategyStrongWind
		pos.PrimaryReason = "strong wind overrides thermal influence"

	default:
		windWeight := minFloat(0.4, s.WindSpeedMPH/50)
		pos.BearingFromBeddingDeg = geo.CombineWeighted(s.DownhillDeg, 1-windWeight, downwindDeg(s.WindFromDeg), windWeight)
		pos.StrategyTag = StrategyTerrain
		pos.PrimaryReason = "light wind, terrain-led downhill travel dominates"
	}
	return pos
}

// ThermalFromBearing converts the site's thermal family into a
// from-direction using the downslope-family convention: a stand in the
// evening-downslope family treats the thermal source as blowing from
// the uphill side.
func (s Site) ThermalFromBearing() geo.Bearing {
	if s.ThermalDownslopeFamily {
		return s.UphillDeg()
	}
	return s.DownhillDeg
}

func thermalBlendWeight(windSpeed float64) float64 {
	switch {
	case windSpeed < 5:
		return 0
	case windSpeed < 10:
		return 0.05
	default:
		return 0.15
	}
}

// CalculateMorning implements the morning-stand placement rules: the
// feeding-to-bedding return trip, favoring uphill travel on sloped
// terrain and crosswind positioning above threshold wind speeds.
func CalculateMorning(s Site) Position {
	pos := Position{AnchorBedding: s.Anchor, DistanceM: s.ReferenceDistanceM * morningDistanceMultiplier}

	switch {
	case s.WindSpeedMPH > WindThreshold:
		plus, minus := crosswindOptions(s.WindFromDeg)
		pos.WindAware = true
		pos.StrategyTag = StrategyCrosswind
		if s.SlopeDeg > 5 {
			chosen := nearerTo(plus, minus, s.UphillDeg())
			pos.BearingFromBeddingDeg = chosen
			pos.CrosswindBearingDeg = &chosen
			pos.PrimaryReason = "crosswind option nearer the uphill destination chosen"
		} else {
			pos.BearingFromBeddingDeg = plus
			pos.CrosswindBearingDeg = &plus
			pos.PrimaryReason = "flat terrain: default crosswind option"
		}

	case s.SlopeDeg > 5:
		pos.StrategyTag = StrategyTerrain
		if s.ThermalStrength0To1 > 0.3 {
			pos.BearingFromBeddingDeg = geo.CombineWeighted(s.UphillDeg(), 0.8, s.UphillDeg().Plus(30), 0.2)
			pos.PrimaryReason = "strong morning thermal skews travel off the direct uphill line"
		} else {
			pos.BearingFromBeddingDeg = s.UphillDeg()
			pos.PrimaryReason = "deer return uphill to bed after night feeding"
		}

	default:
		pos.StrategyTag = StrategyTerrain
		pos.BearingFromBeddingDeg = geo.CombineWeighted(downwindDeg(s.WindFromDeg), 0.7, s.WindFromDeg.Plus(90), 0.3)
		pos.PrimaryReason = "flat terrain, light wind: downwind-led placement"
	}
	return pos
}

// CalculateAllDay implements the all-day-stand placement rules, given
// the already-computed morning bearing so the position can be kept
// genuinely distinct from it.
func CalculateAllDay(s Site, morningBearing geo.Bearing) Position {
	pos := Position{AnchorBedding: s.Anchor, DistanceM: s.ReferenceDistanceM * allDayDistanceMultiplier}

	switch {
	case s.WindSpeedMPH > WindThreshold:
		plus, minus := crosswindOptions(s.WindFromDeg)
		pos.WindAware = true
		pos.StrategyTag = StrategyCrosswind
		// Choose whichever crosswind option is further from the morning
		// bearing, to provide a genuinely complementary position.
		if geo.AngularDiff(plus, morningBearing) >= geo.AngularDiff(minus, morningBearing) {
			pos.BearingFromBeddingDeg = plus
			pos.CrosswindBearingDeg = &plus
		} else {
			pos.BearingFromBeddingDeg = minus
			pos.CrosswindBearingDeg = &minus
		}
		pos.PrimaryReason = "crosswind option diverges furthest from the morning stand"

	case s.SlopeDeg > 5:
		pos.StrategyTag = StrategyTerrain
		pos.BearingFromBeddingDeg = s.UphillDeg().Plus(45)
		pos.PrimaryReason = "sloped terrain: offset uphill line for all-day coverage"

	default:
		pos.StrategyTag = StrategyTerrain
		if s.SlopeDeg > 15 {
			pos.BearingFromBeddingDeg = downwindDeg(s.WindFromDeg).Plus(45)
		} else {
			pos.BearingFromBeddingDeg = downwindDeg(s.WindFromDeg)
		}
		pos.PrimaryReason = "flat terrain: downwind-anchored all-day position"
	}
	return pos
}

// nearerTo picks whichever of a, b has the smaller angular difference
// to target, via the same gonum/floats-backed lookup the rest of the
// package uses for angular nearest-match.
func nearerTo(a, b, target geo.Bearing) geo.Bearing {
	if geo.NearestIndex([]geo.Bearing{a, b}, target) == 1 {
		return b
	}
	return a
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

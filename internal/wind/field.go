package wind

import "github.com/greenmtn-data/scent.report/internal/geo"

// Field is C2's per-site output: the fused prevailing/thermal wind and
// everything derived from it.
type Field struct {
	PrevailingFromDeg geo.Bearing `json:"prevailing_from_deg"`
	PrevailingSpeedMPH float64    `json:"prevailing_speed_mph"`

	ThermalActive       bool                `json:"thermal_active_flag"`
	ThermalDirectionTag ThermalDirectionTag `json:"thermal_direction_tag"`
	ThermalStrength     float64             `json:"thermal_strength_0_10"`

	EffectiveFromDeg  geo.Bearing `json:"effective_from_deg"`
	EffectiveSpeedMPH float64     `json:"effective_speed_mph"`

	ScentToDeg           geo.Bearing `json:"scent_to_deg"`
	OptimalApproachFromDeg geo.Bearing `json:"optimal_approach_from_deg"`
	QualityRating0To10   float64     `json:"quality_rating_0_10"`
}

// Prevailing is the raw prevailing wind observation fed into Analyze.
type Prevailing struct {
	FromDeg  geo.Bearing
	SpeedMPH float64
}

// Analyze fuses prevailing with a thermal state at a site whose slope
// faces the given aspect, producing the fused wind field for that site.
// Invariant: ScentToDeg = (EffectiveFromDeg + 180) mod 360, enforced by
// construction since ScentToDeg is always derived via Opposite().
func Analyze(prevailing Prevailing, thermal ThermalState, aspect geo.Bearing) Field {
	f := Field{
		PrevailingFromDeg:   prevailing.FromDeg,
		PrevailingSpeedMPH:  prevailing.SpeedMPH,
		ThermalActive:       thermal.Active,
		ThermalDirectionTag: thermal.DirectionTag,
		ThermalStrength:     thermal.StrengthZeroToTen,
	}

	if !thermal.Significant() {
		f.EffectiveFromDeg = prevailing.FromDeg
		f.EffectiveSpeedMPH = prevailing.SpeedMPH
	} else {
		thermalFrom := thermal.ToBearing(aspect)
		f.EffectiveFromDeg, f.EffectiveSpeedMPH = vectorSum(
			prevailing.FromDeg, prevailing.SpeedMPH,
			thermalFrom, thermal.SpeedMPH(),
		)
	}

	f.ScentToDeg = f.EffectiveFromDeg.Opposite()
	f.OptimalApproachFromDeg = f.EffectiveFromDeg
	f.QualityRating0To10 = qualityRating(f.EffectiveSpeedMPH, prevailing.SpeedMPH, thermal.StrengthZeroToTen, f.EffectiveFromDeg, prevailing.FromDeg)
	return f
}

// vectorSum combines two (from-direction, speed) wind vectors using
// Cartesian sin/cos addition, returning the resultant from-direction
// and magnitude.
func vectorSum(b1 geo.Bearing, s1 float64, b2 geo.Bearing, s2 float64) (geo.Bearing, float64) {
	x1, y1 := components(b1, s1)
	x2, y2 := components(b2, s2)
	x, y := x1+x2, y1+y2
	speed := magnitude(x, y)
	if x == 0 && y == 0 {
		return b1, speed
	}
	return geo.NewBearing(bearingOf(x, y)), speed
}

func qualityRating(effectiveSpeed, prevailingSpeed, thermalStrength float64, effectiveFrom, prevailingFrom geo.Bearing) float64 {
	rating := 5.0
	switch {
	case effectiveSpeed >= 3 && effectiveSpeed <= 12:
		rating += 2.0
	case effectiveSpeed < 5:
		rating -= 1.0
	case effectiveSpeed > 15:
		rating -= 2.0
	}
	if thermalStrength > 5 {
		rating += 1.5
	} else if thermalStrength > 3 {
		rating += 0.5
	}
	if absFloat(effectiveSpeed-prevailingSpeed) < 2 {
		rating += 0.5
	}
	_ = effectiveFrom
	_ = prevailingFrom
	return clamp01to10(rating)
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp01to10(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

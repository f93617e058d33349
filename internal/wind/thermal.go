// Package wind implements the wind/thermal analyzer (C2): fusing a
// prevailing wind field with a terrain-driven thermal field into an
// effective wind vector, scent cone, and per-location-type advantages.
package wind

import "github.com/greenmtn-data/scent.report/internal/geo"

// ThermalDirectionTag classifies slope-driven air movement.
type ThermalDirectionTag string

const (
	Upslope   ThermalDirectionTag = "upslope"
	Downslope ThermalDirectionTag = "downslope"
	Neutral   ThermalDirectionTag = "neutral"
)

// ThermalState is the slope-driven air-movement input to the analyzer,
// derived from terrain aspect and local solar position, or received
// directly from a collaborator.
type ThermalState struct {
	Active       bool
	DirectionTag ThermalDirectionTag
	StrengthZeroToTen float64
}

// thermalSignificanceThreshold is the strength below which thermal
// winds don't materially change the effective wind.
const thermalSignificanceThreshold = 3.0

// maxThermalSpeedMPH caps the thermal-to-speed conversion.
const maxThermalSpeedMPH = 8.0

// ToBearing converts a thermal tag plus terrain aspect into a compass
// bearing: upslope points toward the aspect, downslope points away
// from it, neutral is the aspect itself (direction is irrelevant at
// neutral strength but the value must still be a valid bearing).
func (t ThermalState) ToBearing(aspect geo.Bearing) geo.Bearing {
	switch t.DirectionTag {
	case Downslope:
		return aspect.Opposite()
	default: // Upslope, Neutral
		return aspect
	}
}

// SpeedMPH converts thermal strength (0-10) into an approximate wind
// speed, capped at maxThermalSpeedMPH.
func (t ThermalState) SpeedMPH() float64 {
	speed := t.StrengthZeroToTen * 0.8
	if speed > maxThermalSpeedMPH {
		return maxThermalSpeedMPH
	}
	return speed
}

// Significant reports whether the thermal is strong enough to affect
// the effective wind computation.
func (t ThermalState) Significant() bool {
	return t.Active && t.StrengthZeroToTen >= thermalSignificanceThreshold
}

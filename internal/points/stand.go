package points

import (
	"github.com/greenmtn-data/scent.report/internal/scoremap"
	"github.com/greenmtn-data/scent.report/internal/wind"
)

// standSites selects up to three stand points. A selector whose score
// grid is entirely zero contributes no point for that variant; its
// omission is reported in the returned warnings rather than silently
// falling back to an arbitrary grid cell.
func standSites(in Input) ([]OptimizedPoint, []string) {
	composite := scoremap.Composite(in.Layers, securityMultiplierModerate(in.SecurityScore0To1), in.ThermalActive, in.ThermalStrength0To10)

	var out []OptimizedPoint
	var warnings []string
	anchor := in.Grid.Center

	// 1. Primary multi-activity stand: argmax of the combined composite.
	if pr, pc, ok := argmax(composite); ok {
		primary := in.Grid.Cells[pr][pc]
		anchor = primary.Point
		out = append(out, OptimizedPoint{
			Bucket:      BucketStand,
			Point:       primary.Point,
			Score0To10:  publishedScore(composite[pr][pc]),
			Confidence:  0.9,
			Description: "primary multi-activity stand",
			TimeTag:     optimalTimeTag(in.ThermalDirectionTag),
			DataSources: []DataSourceTag{SourceUSGSTerrain, SourceThermalAnalysis, SourceBehavioralRules},
		})
	} else {
		warnings = append(warnings, "stand_sites: primary composite score grid is entirely zero, point omitted")
	}

	// 2. Thermal-advantage stand: travel layer plus thermal-direction
	// bonus, with the cell nearest the primary zeroed before argmax.
	thermalLayer := thermalAdvantageLayer(in.Layers.Travel, in.ThermalDirectionTag)
	thermalLayer = zeroNear(thermalLayer, in.Grid, anchor, MinSeparationM)
	thermalAnchor := anchor
	if tr, tc, ok := argmax(thermalLayer); ok {
		thermalCell := in.Grid.Cells[tr][tc]
		thermalAnchor = thermalCell.Point
		out = append(out, OptimizedPoint{
			Bucket:      BucketStand,
			Point:       thermalCell.Point,
			Score0To10:  publishedScore(thermalLayer[tr][tc]),
			Confidence:  0.85,
			Description: "thermal-advantage stand",
			TimeTag:     optimalTimeTag(in.ThermalDirectionTag),
			DataSources: []DataSourceTag{SourceUSGSTerrain, SourceThermalAnalysis},
		})
	} else {
		warnings = append(warnings, "stand_sites: thermal-advantage score grid is entirely zero, point omitted")
	}

	// 3. Maximum-security stand: travel layer with a security
	// multiplier and a low-access-pressure boost; road proximity gets
	// no separate boost.
	securityLayer := maxSecurityLayer(in.Layers.Travel, in.SecurityScore0To1, in.AccessPressure0To1)
	securityLayer = zeroNear(securityLayer, in.Grid, anchor, MinSeparationM)
	securityLayer = zeroNear(securityLayer, in.Grid, thermalAnchor, MinSeparationM)
	if sr, sc, ok := argmax(securityLayer); ok {
		securityCell := in.Grid.Cells[sr][sc]
		out = append(out, OptimizedPoint{
			Bucket:      BucketStand,
			Point:       securityCell.Point,
			Score0To10:  publishedScore(securityLayer[sr][sc]),
			Confidence:  0.8,
			Description: "maximum-security stand",
			TimeTag:     "all-day / high-pressure periods",
			DataSources: []DataSourceTag{SourceUSGSTerrain, SourceOSMSecurity},
		})
	} else {
		warnings = append(warnings, "stand_sites: maximum-security score grid is entirely zero, point omitted")
	}

	return out, warnings
}

// optimalTimeTag derives a stand's best-time label from thermal
// direction: downslope thermals favor morning hunts, upslope favor
// evening, neutral favors both.
func optimalTimeTag(tag wind.ThermalDirectionTag) string {
	switch tag {
	case wind.Downslope:
		return "morning"
	case wind.Upslope:
		return "evening"
	default:
		return "dawn+dusk"
	}
}

func thermalAdvantageLayer(travel scoremap.Layer, tag wind.ThermalDirectionTag) scoremap.Layer {
	bonus := 0.0
	switch tag {
	case wind.Downslope, wind.Upslope:
		bonus = 0.8
	}
	var out scoremap.Layer
	for r := range travel {
		for c := range travel[r] {
			out[r][c] = travel[r][c] + bonus
		}
	}
	return out
}

func maxSecurityLayer(travel scoremap.Layer, security, accessPressure float64) scoremap.Layer {
	mult := 1.0 + security*0.5 // up to x1.5 at high security
	var out scoremap.Layer
	for r := range travel {
		for c := range travel[r] {
			v := travel[r][c] * mult
			if accessPressure < 0.3 {
				v += 0.4 // low access-pressure boost
			}
			out[r][c] = v
		}
	}
	return out
}

func securityMultiplierModerate(security float64) float64 {
	return 0.8 + security*0.4 // maps [0,1] -> [0.8,1.2]
}

package wind

import "github.com/greenmtn-data/scent.report/internal/geo"

// LocationType is which hunting-location family a LocationAnalysis
// describes.
type LocationType string

const (
	Bedding LocationType = "bedding"
	Stand   LocationType = "stand"
	Feeding LocationType = "feeding"
)

// LocationAnalysis is C2's per-location-type output: the shared Field
// plus advantages/disadvantages/recommendations specific to how that
// location type is used.
type LocationAnalysis struct {
	LocationType   LocationType `json:"location_type"`
	Field          Field        `json:"field"`
	Advantages     []string     `json:"advantages"`
	Disadvantages  []string     `json:"disadvantages"`
	Recommendations []string   `json:"recommendations"`
}

// AnalyzeLocation runs Analyze for the site and layers on the
// location-specific advantage/disadvantage/recommendation rules.
func AnalyzeLocation(locType LocationType, prevailing Prevailing, thermal ThermalState, slopeAspect geo.Bearing, slopeDeg float64) LocationAnalysis {
	field := Analyze(prevailing, thermal, slopeAspect)

	la := LocationAnalysis{LocationType: locType, Field: field}
	switch locType {
	case Bedding:
		la.Advantages, la.Disadvantages = beddingAdvantages(field, slopeAspect)
	case Stand:
		la.Advantages, la.Disadvantages = standAdvantages(field, slopeAspect)
	case Feeding:
		la.Advantages, la.Disadvantages = feedingAdvantages(field, slopeDeg)
	}
	la.Recommendations = recommendations(field)
	return la
}

func beddingAdvantages(f Field, slopeAspect geo.Bearing) (adv, disadv []string) {
	leewardBearing := f.EffectiveFromDeg.Opposite()
	diff := geo.AngularDiff(slopeAspect, leewardBearing)
	if diff < 90 || diff > 270 {
		adv = append(adv, "leeward slope")
	}
	if f.EffectiveSpeedMPH > 10 {
		disadv = append(disadv, "strong wind (>10 mph) may prevent bedding use")
	}
	return adv, disadv
}

func standAdvantages(f Field, slopeAspect geo.Bearing) (adv, disadv []string) {
	diff := geo.AngularDiff(f.EffectiveFromDeg, slopeAspect)
	if diff < 45 || diff > 315 {
		adv = append(adv, "upwind approach exists")
	}
	if f.EffectiveSpeedMPH >= 5 && f.EffectiveSpeedMPH <= 12 {
		adv = append(adv, "optimal wind speed for scent control")
	}
	if f.EffectiveSpeedMPH < 3 {
		disadv = append(disadv, "light wind caution: scent may settle unpredictably")
	}
	return adv, disadv
}

func feedingAdvantages(f Field, slopeDeg float64) (adv, disadv []string) {
	if slopeDeg > 15 {
		adv = append(adv, "multiple approach bearings (varied aspects)")
	}
	if f.EffectiveSpeedMPH > 12 {
		disadv = append(disadv, "strong wind caution for feeding activity")
	}
	return adv, disadv
}

func recommendations(f Field) []string {
	var out []string
	if f.ThermalActive {
		switch f.ThermalDirectionTag {
		case Downslope:
			out = append(out, "morning approach from upper elevations")
		case Upslope:
			out = append(out, "evening from lower elevations")
		}
		out = append(out, "plan timing around thermal phase shifts")
	}
	out = append(out, "primary upwind direction: "+f.OptimalApproachFromDeg.Compass16())
	if f.EffectiveSpeedMPH < 3 {
		out = append(out, "use scent-elimination treatment in light wind")
	}
	out = append(out, "scent cone travels toward "+f.ScentToDeg.Compass16())
	return out
}

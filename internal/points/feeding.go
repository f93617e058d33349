package points

import "github.com/greenmtn-data/scent.report/internal/scoremap"

// feedingSites selects up to three feeding points. A variant whose
// score grid is entirely zero contributes no point; its omission is
// reported in the returned warnings.
func feedingSites(in Input) ([]OptimizedPoint, []string) {
	primaryLayer := in.Layers.Feeding
	securityLayer := weightedLayer(in.Layers.Feeding, in.Grid, func(f scoremap.Features) float64 {
		if f.RoadDistanceM > 200 {
			return 0.3
		}
		return 0
	})
	eveningLayer := weightedLayer(in.Layers.Feeding, in.Grid, func(f scoremap.Features) float64 {
		if f.IsForestEdge || f.IsAgriculturalEdge {
			return 0.5
		}
		return 0
	})

	var out []OptimizedPoint
	var warnings []string
	anchor := in.Grid.Center

	if pr, pc, ok := argmax(primaryLayer); ok {
		anchor = in.Grid.Cells[pr][pc].Point
		out = append(out, OptimizedPoint{
			Bucket:      BucketFeeding,
			Point:       anchor,
			Score0To10:  publishedScore(primaryLayer[pr][pc]),
			Confidence:  0.85,
			Description: "primary feeding site",
			TimeTag:     "evening",
			DataSources: []DataSourceTag{SourceGEEVegetation, SourceBehavioralRules},
		})
	} else {
		warnings = append(warnings, "feeding_sites: primary feeding score grid is entirely zero, point omitted")
	}

	securityAnchor := anchor
	if sr, sc, ok := argmax(zeroNear(securityLayer, in.Grid, anchor, MinSeparationM)); ok {
		securityAnchor = in.Grid.Cells[sr][sc].Point
		out = append(out, OptimizedPoint{
			Bucket:      BucketFeeding,
			Point:       securityAnchor,
			Score0To10:  publishedScore(securityLayer[sr][sc]),
			Confidence:  0.8,
			Description: "security-focused feeding site",
			TimeTag:     "evening",
			DataSources: []DataSourceTag{SourceGEEVegetation, SourceOSMSecurity},
		})
	} else {
		warnings = append(warnings, "feeding_sites: security-focused score grid is entirely zero, point omitted")
	}

	if er, ec, ok := argmax(zeroNear(zeroNear(eveningLayer, in.Grid, anchor, MinSeparationM), in.Grid, securityAnchor, MinSeparationM)); ok {
		out = append(out, OptimizedPoint{
			Bucket:      BucketFeeding,
			Point:       in.Grid.Cells[er][ec].Point,
			Score0To10:  publishedScore(eveningLayer[er][ec]),
			Confidence:  0.78,
			Description: "evening-activity-weighted feeding site",
			TimeTag:     "evening prime window",
			DataSources: []DataSourceTag{SourceGEEVegetation, SourceBehavioralRules},
		})
	} else {
		warnings = append(warnings, "feeding_sites: evening-activity score grid is entirely zero, point omitted")
	}

	return out, warnings
}

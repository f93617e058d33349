package points

import "github.com/greenmtn-data/scent.report/internal/scoremap"

// cameraPlacements selects up to three camera points. A variant whose
// score grid is entirely zero contributes no point; its omission is
// reported in the returned warnings.
func cameraPlacements(in Input) ([]OptimizedPoint, []string) {
	travelLayer := in.Layers.Travel
	feedingLayer := in.Layers.Feeding
	securityBeddingLayer := weightedLayer(in.Layers.Bedding, in.Grid, func(f scoremap.Features) float64 {
		bonus := 0.0
		if f.RoadDistanceM > 300 {
			bonus += 0.4
		}
		if in.MatureBuckTargeted {
			bonus += 0.2 // mature-buck-confidence bonus
		}
		return bonus
	})

	var out []OptimizedPoint
	var warnings []string
	anchor := in.Grid.Center

	if tr, tc, ok := argmax(travelLayer); ok {
		anchor = in.Grid.Cells[tr][tc].Point
		out = append(out, OptimizedPoint{
			Bucket:      BucketCamera,
			Point:       anchor,
			Score0To10:  publishedScore(travelLayer[tr][tc]),
			Confidence:  0.82,
			Description: "travel-corridor monitoring camera",
			TimeTag:     "all-day",
			DataSources: []DataSourceTag{SourceUSGSTerrain, SourceBehavioralRules},
		})
	} else {
		warnings = append(warnings, "camera_placements: travel-corridor score grid is entirely zero, point omitted")
	}

	feedingAnchor := anchor
	if fr, fc, ok := argmax(zeroNear(feedingLayer, in.Grid, anchor, MinSeparationM)); ok {
		feedingAnchor = in.Grid.Cells[fr][fc].Point
		out = append(out, OptimizedPoint{
			Bucket:      BucketCamera,
			Point:       feedingAnchor,
			Score0To10:  publishedScore(feedingLayer[fr][fc]),
			Confidence:  0.8,
			Description: "food-source monitoring camera",
			TimeTag:     "evening",
			DataSources: []DataSourceTag{SourceGEEVegetation},
		})
	} else {
		warnings = append(warnings, "camera_placements: food-source score grid is entirely zero, point omitted")
	}

	if sr, sc, ok := argmax(zeroNear(zeroNear(securityBeddingLayer, in.Grid, anchor, MinSeparationM), in.Grid, feedingAnchor, MinSeparationM)); ok {
		out = append(out, OptimizedPoint{
			Bucket:      BucketCamera,
			Point:       in.Grid.Cells[sr][sc].Point,
			Score0To10:  publishedScore(securityBeddingLayer[sr][sc]),
			Confidence:  0.78,
			Description: "remote-security monitoring camera",
			TimeTag:     "all-day",
			DataSources: []DataSourceTag{SourceOSMSecurity, SourceGEEVegetation},
		})
	} else {
		warnings = append(warnings, "camera_placements: remote-security score grid is entirely zero, point omitted")
	}

	return out, warnings
}

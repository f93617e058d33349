package points

import "github.com/greenmtn-data/scent.report/internal/scoremap"

// beddingSites selects up to three bedding points. A variant whose
// score grid is entirely zero contributes no point; its omission is
// reported in the returned warnings.
func beddingSites(in Input) ([]OptimizedPoint, []string) {
	securityLayer := weightedLayer(in.Layers.Bedding, in.Grid, func(f scoremap.Features) float64 {
		if f.RoadDistanceM > 200 {
			return 0.4
		}
		return 0
	})
	thermalLayer := weightedLayer(in.Layers.Bedding, in.Grid, func(f scoremap.Features) float64 {
		if southFacingAspect(f.AspectDeg) {
			return 0.4
		}
		return 0
	})
	denseCoverLayer := weightedLayer(in.Layers.Bedding, in.Grid, func(f scoremap.Features) float64 {
		return f.CanopyClosure0To1 * 0.6
	})

	var out []OptimizedPoint
	var warnings []string
	anchor := in.Grid.Center

	if sr, sc, ok := argmax(securityLayer); ok {
		anchor = in.Grid.Cells[sr][sc].Point
		out = append(out, OptimizedPoint{
			Bucket:      BucketBedding,
			Point:       anchor,
			Score0To10:  publishedScore(securityLayer[sr][sc]),
			Confidence:  0.85,
			Description: "security-weighted bedding site",
			TimeTag:     "all-day",
			DataSources: []DataSourceTag{SourceUSGSTerrain, SourceOSMSecurity, SourceGEEVegetation},
		})
	} else {
		warnings = append(warnings, "bedding_sites: security-weighted score grid is entirely zero, point omitted")
	}

	thermalAnchor := anchor
	if tr, tc, ok := argmax(zeroNear(thermalLayer, in.Grid, anchor, MinSeparationM)); ok {
		thermalAnchor = in.Grid.Cells[tr][tc].Point
		out = append(out, OptimizedPoint{
			Bucket:      BucketBedding,
			Point:       thermalAnchor,
			Score0To10:  publishedScore(thermalLayer[tr][tc]),
			Confidence:  0.8,
			Description: "thermal-weighted bedding site",
			TimeTag:     "morning/evening thermal transitions",
			DataSources: []DataSourceTag{SourceUSGSTerrain, SourceThermalAnalysis},
		})
	} else {
		warnings = append(warnings, "bedding_sites: thermal-weighted score grid is entirely zero, point omitted")
	}

	if dr, dc, ok := argmax(zeroNear(zeroNear(denseCoverLayer, in.Grid, anchor, MinSeparationM), in.Grid, thermalAnchor, MinSeparationM)); ok {
		out = append(out, OptimizedPoint{
			Bucket:      BucketBedding,
			Point:       in.Grid.Cells[dr][dc].Point,
			Score0To10:  publishedScore(denseCoverLayer[dr][dc]),
			Confidence:  0.8,
			Description: "dense-cover-weighted bedding site",
			TimeTag:     "all-day",
			DataSources: []DataSourceTag{SourceUSGSTerrain, SourceGEEVegetation},
		})
	} else {
		warnings = append(warnings, "bedding_sites: dense-cover score grid is entirely zero, point omitted")
	}

	return out, warnings
}

func southFacingAspect(aspectDeg float64) bool {
	return aspectDeg >= 135 && aspectDeg <= 225
}

// weightedLayer adds a per-cell feature-driven bonus on top of a base
// layer, used to re-rank the shared bedding layer for each of the
// three bedding-site variants.
func weightedLayer(base scoremap.Layer, g *scoremap.Grid, bonus func(scoremap.Features) float64) scoremap.Layer {
	var out scoremap.Layer
	for r := 0; r < scoremap.GridSide; r++ {
		for c := 0; c < scoremap.GridSide; c++ {
			out[r][c] = base[r][c] + bonus(g.Cells[r][c].Features)
		}
	}
	return out
}

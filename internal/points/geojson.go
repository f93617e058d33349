package points

import "github.com/greenmtn-data/scent.report/internal/geo"

// ToFeatureCollection projects a bucket of OptimizedPoints into a
// GeoJSON FeatureCollection, the wire shape bedding_zones, feeding_areas,
// and travel_corridors publish in the response.
func ToFeatureCollection(pts []OptimizedPoint) geo.FeatureCollection {
	features := make([]geo.Feature, 0, len(pts))
	for _, p := range pts {
		features = append(features, geo.NewPointFeature(p.Point, map[string]any{
			"bucket":       string(p.Bucket),
			"score_0_10":   p.Score0To10,
			"confidence":   p.Confidence,
			"description":  p.Description,
			"time_tag":     p.TimeTag,
			"data_sources": p.DataSources,
		}))
	}
	return geo.NewFeatureCollection(features)
}

package geo

// PointGeometry is a GeoJSON Point geometry. Coordinates are
// [longitude, latitude], per RFC 7946, the reverse of this package's
// own Point{Lat, Lon} field order.
type PointGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// Feature is a single GeoJSON Feature wrapping a point geometry and an
// arbitrary properties bag.
type Feature struct {
	Type       string         `json:"type"`
	Geometry   PointGeometry  `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// FeatureCollection is a GeoJSON FeatureCollection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// NewPointFeature builds a Feature from a Point, carrying properties
// as whatever caller-supplied metadata belongs alongside the geometry.
func NewPointFeature(p Point, properties map[string]any) Feature {
	return Feature{
		Type:       "Feature",
		Geometry:   PointGeometry{Type: "Point", Coordinates: [2]float64{p.Lon, p.Lat}},
		Properties: properties,
	}
}

// NewFeatureCollection wraps features into a FeatureCollection. A nil
// or empty features still marshals to a valid, empty collection.
func NewFeatureCollection(features []Feature) FeatureCollection {
	if features == nil {
		features = []Feature{}
	}
	return FeatureCollection{Type: "FeatureCollection", Features: features}
}

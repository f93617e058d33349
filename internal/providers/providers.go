// Package providers declares the external-collaborator interfaces the
// prediction pipeline consumes: canopy, roads/trails, weather, and
// land-cover. Each has a documented fallback so the orchestrator can
// degrade gracefully instead of failing the request.
package providers

import (
	"context"
	"time"

	"github.com/greenmtn-data/scent.report/internal/geo"
)

// FallbackCanopyFraction is published when the canopy provider is
// unavailable: representative of Vermont forest cover.
const FallbackCanopyFraction = 0.65

// FallbackRoadDistanceM is published when the roads provider is
// unavailable.
const FallbackRoadDistanceM = 500.0

// CanopyProvider answers point queries for tree-cover fraction.
type CanopyProvider interface {
	CanopyFraction(ctx context.Context, p geo.Point) (float64, error)
}

// RoadSegment is a polyline returned by a roads/trails query.
type RoadSegment struct {
	Points []geo.Point
}

// RoadsProvider answers bounding-box queries for nearby roads/trails.
// Distance-to-nearest-road is computed client-side from the returned
// segments.
type RoadsProvider interface {
	NearbyRoads(ctx context.Context, bounds Bounds) ([]RoadSegment, error)
}

// Bounds is a simple lat/lon bounding box used for provider queries.
type Bounds struct {
	MinLat, MinLon, MaxLat, MaxLon float64
}

// HourlyForecast is one hour of a weather forecast.
type HourlyForecast struct {
	Time            time.Time
	TemperatureF    float64
	PressureInHg    float64
	WindSpeedMPH    float64
	WindGustMPH     float64
	WindDirectionDeg geo.Bearing
}

// WeatherSnapshot is current conditions plus an hourly forecast for
// the next 24 hours.
type WeatherSnapshot struct {
	Current HourlyForecast
	Hourly  []HourlyForecast
}

// WeatherProvider answers current-conditions-plus-forecast queries.
type WeatherProvider interface {
	Forecast(ctx context.Context, p geo.Point) (WeatherSnapshot, error)
}

// LandCoverCategory names one of the land-cover mask categories a
// provider can answer per grid cell.
type LandCoverCategory string

const (
	CategoryForestEdge       LandCoverCategory = "forest_edge"
	CategoryAgriculturalEdge LandCoverCategory = "agricultural_edge"
	CategoryCrop             LandCoverCategory = "crop"
	CategorySoftMast         LandCoverCategory = "soft_mast"
	CategoryMast             LandCoverCategory = "mast"
	CategoryWetland          LandCoverCategory = "wetland"
)

// LandCoverProvider answers per-point category membership queries.
type LandCoverProvider interface {
	Categories(ctx context.Context, p geo.Point) (map[LandCoverCategory]bool, error)
}

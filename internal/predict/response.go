package predict

import (
	"github.com/google/uuid"

	"github.com/greenmtn-data/scent.report/internal/biology"
	"github.com/greenmtn-data/scent.report/internal/errkind"
	"github.com/greenmtn-data/scent.report/internal/geo"
	"github.com/greenmtn-data/scent.report/internal/huntcontext"
	"github.com/greenmtn-data/scent.report/internal/huntwindow"
	"github.com/greenmtn-data/scent.report/internal/points"
	"github.com/greenmtn-data/scent.report/internal/stand"
	"github.com/greenmtn-data/scent.report/internal/wind"
)

// TerrainSummary is the response's terrain_features section.
type TerrainSummary struct {
	ElevationM        float64             `json:"elevation_m"`
	MeanSlopeDeg      float64             `json:"mean_slope_deg"`
	DominantAspectDeg float64             `json:"dominant_aspect_deg"`
	CoverageRatio     float64             `json:"coverage_ratio"`
	DataQuality       errkind.DataQuality `json:"data_quality"`
}

// WindAnalysis is the response's wind_analysis section.
type WindAnalysis struct {
	Center     wind.Field             `json:"center"`
	ByLocation []wind.LocationAnalysis `json:"by_location"`
}

// StandRecommendation is one published stand recommendation,
// projected from an OptimizedPoint and optionally refined by C3 and
// boosted by C7.
type StandRecommendation struct {
	Point           points.OptimizedPoint      `json:"point"`
	Refined         *stand.Position            `json:"refined,omitempty"`
	ScentSafe       bool                       `json:"scent_safe_flag"`
	Confidence0To99 float64                    `json:"confidence_0_99"`
	Tags            []string                   `json:"tags,omitempty"`
	WindCredibility *huntwindow.WindCredibility `json:"wind_credibility,omitempty"`
}

// Response is C9's assembled PredictionResponse.
type Response struct {
	RequestID uuid.UUID `json:"request_id"`

	// AllProvidersDegraded is true when every external collaborator
	// call this request made fell back to its published default. The
	// CLI surface uses this to distinguish a normal partial-degradation
	// response from one with no live external data at all.
	AllProvidersDegraded bool `json:"all_providers_degraded"`

	// Provenance lists every bucket/variant the points generator could
	// not fill because its score grid was entirely zero, naming the
	// degradation rather than silently shipping fewer than twelve
	// points.
	Provenance []string `json:"provenance,omitempty"`

	StandRecommendations []StandRecommendation   `json:"stand_recommendations"`
	BeddingZones         geo.FeatureCollection    `json:"bedding_zones"`
	FeedingAreas         geo.FeatureCollection    `json:"feeding_areas"`
	TravelCorridors      geo.FeatureCollection    `json:"travel_corridors"`
	CameraPlacements     []points.OptimizedPoint  `json:"camera_placements"`
	FiveBestStands       []StandRecommendation    `json:"five_best_stands"`

	TerrainFeatures     TerrainSummary    `json:"terrain_features"`
	WindAnalysisSection WindAnalysis      `json:"wind_analysis"`
	BiologicalAnalysis  biology.Notes     `json:"biological_analysis"`
	MatureBuckAnalysis  *MatureBuckAnalysis `json:"mature_buck_analysis,omitempty"`

	HuntSchedule   []huntwindow.HuntWindow `json:"hunt_schedule"`
	HuntingContext huntcontext.Override    `json:"hunting_context"`

	OverallConfidence float64 `json:"overall_confidence"`
}

// MatureBuckAnalysis is the response's mature_buck_analysis section:
// the caution overlay applied to general notes, plus stand suggestions
// specifically favoring mature-buck behavior.
type MatureBuckAnalysis struct {
	GeneralNotes     []string                 `json:"general_notes"`
	StandSuggestions []points.OptimizedPoint  `json:"stand_suggestions"`
}

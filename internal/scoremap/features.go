package scoremap

// Features is everything a single grid cell's score formulas consume,
// combining scalar terrain summaries with land-cover-mask-derived
// estimates. Every field has a documented fallback used when the
// underlying source is unavailable.
type Features struct {
	SlopeDeg     float64
	AspectDeg    float64
	ElevationM   float64

	CanopyClosure0To1      float64
	EscapeCoverDensity0To1 float64
	DrainageDensity0To1    float64
	RidgeConnectivity0To1  float64
	TerrainRoughness0To1   float64
	CoverDiversity0To1     float64
	VisibilityLimitation0To1 float64

	RoadDistanceM     float64
	BuildingDistanceM float64
	TrailDensity0To1  float64
	WetlandDistanceM  float64
	CliffDistanceM    float64

	IsForestEdge      bool
	IsAgriculturalEdge bool
	IsCropCell        bool
	IsSoftMastStand   bool
	IsMastStand       bool
}

// Fallback feature constants, used whenever the corresponding
// land-cover mask is absent for a cell.
const (
	FallbackCanopyClosure      = 0.5
	FallbackEscapeCoverDensity = 0.5
	FallbackDrainageDensity    = 0.3
	FallbackRidgeConnectivity  = 0.3
	FallbackTerrainRoughness   = 0.3
	FallbackCoverDiversity     = 0.4
	FallbackVisibilityLimit    = 0.4
	FallbackRoadDistanceM      = 500.0
	FallbackBuildingDistanceM  = 500.0
	FallbackTrailDensity       = 0.2
	FallbackWetlandDistanceM   = 1000.0
	FallbackCliffDistanceM     = 1000.0
)

// DefaultFeatures returns a Features populated entirely from fallback
// constants, used when no land-cover mask covers a cell.
func DefaultFeatures(slopeDeg, aspectDeg, elevationM float64) Features {
	return Features{
		SlopeDeg:                 slopeDeg,
		AspectDeg:                aspectDeg,
		ElevationM:               elevationM,
		CanopyClosure0To1:        FallbackCanopyClosure,
		EscapeCoverDensity0To1:   FallbackEscapeCoverDensity,
		DrainageDensity0To1:      FallbackDrainageDensity,
		RidgeConnectivity0To1:    FallbackRidgeConnectivity,
		TerrainRoughness0To1:     FallbackTerrainRoughness,
		CoverDiversity0To1:       FallbackCoverDiversity,
		VisibilityLimitation0To1: FallbackVisibilityLimit,
		RoadDistanceM:            FallbackRoadDistanceM,
		BuildingDistanceM:        FallbackBuildingDistanceM,
		TrailDensity0To1:         FallbackTrailDensity,
		WetlandDistanceM:         FallbackWetlandDistanceM,
		CliffDistanceM:           FallbackCliffDistanceM,
	}
}

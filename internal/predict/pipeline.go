package predict

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/greenmtn-data/scent.report/internal/biology"
	"github.com/greenmtn-data/scent.report/internal/config"
	"github.com/greenmtn-data/scent.report/internal/errkind"
	"github.com/greenmtn-data/scent.report/internal/geo"
	"github.com/greenmtn-data/scent.report/internal/huntcontext"
	"github.com/greenmtn-data/scent.report/internal/huntwindow"
	"github.com/greenmtn-data/scent.report/internal/monitoring"
	"github.com/greenmtn-data/scent.report/internal/points"
	"github.com/greenmtn-data/scent.report/internal/providers"
	"github.com/greenmtn-data/scent.report/internal/scoremap"
	"github.com/greenmtn-data/scent.report/internal/stand"
	"github.com/greenmtn-data/scent.report/internal/terrain"
	"github.com/greenmtn-data/scent.report/internal/wind"
)

// referenceDistanceM is the bedding-to-activity reference distance C3
// scales by its evening/morning/all-day multipliers, used whenever the
// request carries no collaborator-supplied travel-distance estimate.
const referenceDistanceM = 200.0

// Pipeline is the prediction orchestrator (C9): it owns every external
// collaborator and runs the full request-to-response sequence.
type Pipeline struct {
	Collab Collaborators
}

// NewPipeline builds a Pipeline from collab. A nil field on collab
// (Canopy, Roads, Weather, LandCover) models that collaborator being
// absent entirely; every stage falls back to its documented default
// without failing the request.
func NewPipeline(collab Collaborators) *Pipeline {
	return &Pipeline{Collab: collab}
}

// Run executes the thirteen-step prediction pipeline for req.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Response, error) {
	// 1. Validate coordinates and datetime.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	center := geo.Point{Lat: req.Lat, Lon: req.Lon}
	requestID := uuid.New()

	// 2. Build the 6x6 coordinate grid.
	grid := scoremap.BuildCoordinates(center)

	// 3. Batch-extract terrain via C1, recording coverage.
	cellPoints := gridPoints(grid)
	terrainResults := p.Collab.Terrain.ExtractBatch(cellPoints, p.sampleRadiusM())
	coverage := terrain.CoverageRatio(terrainResults)
	centerTerrain := terrainResults[terrain.BatchKey(center)]

	// 4. Fetch land-cover masks, road/trail layers, and weather
	// concurrently, then await all before continuing.
	fetched := p.fetchCollaborators(ctx, center, grid)

	applyTerrainAndFeatures(grid, terrainResults, fetched)

	// 5. Derive thermal state from the time of day against the legal
	// window's sunrise/sunset and the prevailing wind speed; no
	// collaborator supplies a thermal reading.
	legalWindow := huntcontext.LegalHuntingWindow(req.DateTime)
	prevailing := wind.Prevailing{
		FromDeg:  fetched.weather.Current.WindDirectionDeg,
		SpeedMPH: fetched.weather.Current.WindSpeedMPH,
	}
	thermalState := deriveThermalState(req.DateTime, legalWindow, prevailing.SpeedMPH)

	// 6. Build travel/bedding/feeding score layers.
	layers := scoremap.BuildLayers(grid)

	// 7. Run the wind/thermal analyzer for the center and each
	// location type.
	centerAspect := geo.NewBearing(centerTerrain.AspectDeg)
	centerField := wind.Analyze(prevailing, thermalState, centerAspect)
	byLocation := []wind.LocationAnalysis{
		wind.AnalyzeLocation(wind.Bedding, prevailing, thermalState, centerAspect, centerTerrain.SlopeDeg),
		wind.AnalyzeLocation(wind.Stand, prevailing, thermalState, centerAspect, centerTerrain.SlopeDeg),
		wind.AnalyzeLocation(wind.Feeding, prevailing, thermalState, centerAspect, centerTerrain.SlopeDeg),
	}

	// 8. Run the biological overlay.
	bioNotes := biology.Analyze(biology.Input{
		Hour:            req.DateTime.Hour(),
		Season:          req.Season,
		HuntingPressure: req.NormalizedPressure(),
		Weather: biology.WeatherSnapshot{
			PressureInHg: fetched.weather.Current.PressureInHg,
			TemperatureF: fetched.weather.Current.TemperatureF,
			WindSpeedMPH: fetched.weather.Current.WindSpeedMPH,
		},
		BaseConfidence:     0.6,
		MatureBuckTargeted: false,
	})

	security, access := deriveSecurityAndAccess(grid)

	// 9. Select the twelve optimized points.
	allPoints, pointWarnings := points.Generate(points.Input{
		Grid:                 grid,
		Layers:               layers,
		SecurityScore0To1:    security,
		AccessPressure0To1:   access,
		ThermalActive:        thermalState.Active,
		ThermalDirectionTag:  thermalState.DirectionTag,
		ThermalStrength0To10: thermalState.StrengthZeroToTen,
		MatureBuckTargeted:   false,
	})
	for _, w := range pointWarnings {
		monitoring.Logf("predict %s: %s", requestID, w)
	}

	grouped := groupByBucket(allPoints)
	dominantBedding := dominantBeddingAnchor(grouped[points.BucketBedding], center)

	// 10. Refine each stand site against the dominant bedding anchor
	// and validate scent.
	standRecs := p.refineStands(grouped[points.BucketStand], dominantBedding, centerTerrain, centerField, thermalState, req.DateTime)

	// 11. Predict hunt windows and couple priority boosts into the
	// refined stand recommendations.
	var huntSchedule []huntwindow.HuntWindow
	if !req.FastMode && fetched.weatherOK && p.Collab.StandProfiles != nil && !p.Collab.StandProfiles.Empty() {
		profiles := p.Collab.StandProfiles.Snapshot()
		snapshot := huntwindow.Snapshot{
			Now: req.DateTime,
			Current: huntwindow.ForecastHour{
				Time:         fetched.weather.Current.Time,
				TemperatureF: fetched.weather.Current.TemperatureF,
				PressureInHg: fetched.weather.Current.PressureInHg,
				WindSpeedMPH: fetched.weather.Current.WindSpeedMPH,
				WindGustMPH:  fetched.weather.Current.WindGustMPH,
				WindFromDeg:  fetched.weather.Current.WindDirectionDeg,
			},
			Hourly: toForecastHours(fetched.weather.Hourly),
		}
		thermalInput := huntwindow.ThermalInput{Active: thermalState.Active, Strength0To10: thermalState.StrengthZeroToTen}
		var statuses []huntwindow.StandWindStatus
		huntSchedule, statuses = huntwindow.Predict(snapshot, profiles, thermalInput)
		applyHuntWindowCoupling(standRecs, profiles, statuses)
	} else if req.FastMode {
		monitoring.Logf("predict %s: fast_mode requested, hunt_schedule disabled", requestID)
	} else if !fetched.weatherOK {
		monitoring.Logf("predict %s: %v, hunt_schedule disabled", requestID, errkind.ErrForecastUnavailable)
	} else {
		monitoring.Logf("predict %s: %v, hunt_schedule disabled", requestID, errkind.ErrStandProfilesEmpty)
	}

	// 12. Classify the hunting context and build the override section.
	classification := huntcontext.Classify(req.DateTime, legalWindow)
	override := huntcontext.BuildOverride(classification)

	fiveBest := topFive(standRecs)

	// 13. Assemble the response.
	allProvidersDegraded := fetched.totalCalls > 0 && fetched.fullCalls == 0
	resp := &Response{
		RequestID:              requestID,
		AllProvidersDegraded:   allProvidersDegraded,
		Provenance:           pointWarnings,
		StandRecommendations: standRecs,
		BeddingZones:         points.ToFeatureCollection(grouped[points.BucketBedding]),
		FeedingAreas:         points.ToFeatureCollection(grouped[points.BucketFeeding]),
		TravelCorridors:      points.ToFeatureCollection(grouped[points.BucketStand]),
		CameraPlacements:     grouped[points.BucketCamera],
		FiveBestStands:       fiveBest,
		TerrainFeatures: TerrainSummary{
			ElevationM:        centerTerrain.ElevationM,
			MeanSlopeDeg:      centerTerrain.SlopeDeg,
			DominantAspectDeg: centerTerrain.AspectDeg,
			CoverageRatio:     coverage,
			DataQuality:       terrainDataQuality(coverage),
		},
		WindAnalysisSection: WindAnalysis{Center: centerField, ByLocation: byLocation},
		BiologicalAnalysis:  bioNotes,
		MatureBuckAnalysis:  buildMatureBuckAnalysis(bioNotes, grouped),
		HuntSchedule:        huntSchedule,
		HuntingContext:      override,
		OverallConfidence:   bioNotes.EnhancedConfidence,
	}
	return resp, nil
}

func (p *Pipeline) sampleRadiusM() float64 {
	if p.Collab.Config != nil {
		return p.Collab.Config.GetDefaultSampleRadiusM()
	}
	return terrain.DefaultSampleRadiusM
}

func gridPoints(g *scoremap.Grid) []geo.Point {
	out := make([]geo.Point, 0, scoremap.GridSide*scoremap.GridSide+1)
	out = append(out, g.Center)
	g.Each(func(c *scoremap.Cell) { out = append(out, c.Point) })
	return out
}

// fetchCollaborators issues the weather, roads, canopy, and land-cover
// requests concurrently and blocks until every one has returned or
// fallen back.
func (p *Pipeline) fetchCollaborators(ctx context.Context, center geo.Point, grid *scoremap.Grid) fetchResult {
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		result fetchResult
	)
	result.canopy = make(map[string]float64)
	result.landCover = make(map[string]map[providers.LandCoverCategory]bool)

	if p.Collab.Weather != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w, q := providers.WithRetryAndFallback(ctx, "weather", p.weatherTimeout(), func(c context.Context) (providers.WeatherSnapshot, error) {
				return p.Collab.Weather.Forecast(c, center)
			}, providers.WeatherSnapshot{})
			mu.Lock()
			result.weather = w
			result.weatherOK = q == errkind.Full || (q == errkind.Degraded && len(w.Hourly) > 0)
			recordQuality(&result, q)
			mu.Unlock()
		}()
	}

	if p.Collab.Roads != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bounds := boundsAround(center)
			segments, q := providers.WithRetryAndFallback(ctx, "roads", p.roadTimeout(), func(c context.Context) ([]providers.RoadSegment, error) {
				return p.Collab.Roads.NearbyRoads(c, bounds)
			}, nil)
			mu.Lock()
			result.roads = segments
			recordQuality(&result, q)
			mu.Unlock()
		}()
	}

	grid.Each(func(cell *scoremap.Cell) {
		cellPoint := cell.Point
		key := terrain.BatchKey(cellPoint)

		if p.Collab.Canopy != nil {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, q := providers.WithRetryAndFallback(ctx, "canopy", p.canopyTimeout(), func(c context.Context) (float64, error) {
					return p.Collab.Canopy.CanopyFraction(c, cellPoint)
				}, providers.FallbackCanopyFraction)
				mu.Lock()
				result.canopy[key] = v
				recordQuality(&result, q)
				mu.Unlock()
			}()
		}

		if p.Collab.LandCover != nil {
			wg.Add(1)
			go func() {
				defer wg.Done()
				cats, q := providers.WithRetryAndFallback(ctx, "land_cover", p.canopyTimeout(), func(c context.Context) (map[providers.LandCoverCategory]bool, error) {
					return p.Collab.LandCover.Categories(c, cellPoint)
				}, nil)
				mu.Lock()
				result.landCover[key] = cats
				recordQuality(&result, q)
				mu.Unlock()
			}()
		}
	})

	wg.Wait()
	return result
}

// recordQuality tallies one collaborator call's outcome. Callers hold
// result's mutex already; this never locks itself.
func recordQuality(result *fetchResult, q errkind.DataQuality) {
	result.totalCalls++
	if q == errkind.Full {
		result.fullCalls++
	}
}

func (p *Pipeline) weatherTimeout() time.Duration {
	if p.Collab.Config != nil {
		return p.Collab.Config.GetWeatherTimeout()
	}
	return 10 * time.Second
}

func (p *Pipeline) canopyTimeout() time.Duration {
	if p.Collab.Config != nil {
		return p.Collab.Config.GetCanopyTimeout()
	}
	return 15 * time.Second
}

func (p *Pipeline) roadTimeout() time.Duration {
	if p.Collab.Config != nil {
		return p.Collab.Config.GetRoadTrailTimeout()
	}
	return 30 * time.Second
}

func boundsAround(center geo.Point) providers.Bounds {
	half := scoremap.SpanDeg / 2
	return providers.Bounds{
		MinLat: center.Lat - half, MaxLat: center.Lat + half,
		MinLon: center.Lon - half, MaxLon: center.Lon + half,
	}
}

// applyTerrainAndFeatures writes terrain, canopy, road-distance, and
// land-cover results into each grid cell's Features, falling back to
// documented defaults wherever a collaborator never reported a value.
func applyTerrainAndFeatures(grid *scoremap.Grid, terrainResults map[string]terrain.TerrainPoint, fetched fetchResult) {
	grid.Each(func(c *scoremap.Cell) {
		key := terrain.BatchKey(c.Point)
		tp := terrainResults[key]

		features := scoremap.DefaultFeatures(tp.SlopeDeg, tp.AspectDeg, tp.ElevationM)
		if canopy, ok := fetched.canopy[key]; ok {
			features.CanopyClosure0To1 = canopy
		}
		if dist, ok := nearestRoadDistanceM(c.Point, fetched.roads); ok {
			features.RoadDistanceM = dist
		}
		if cats, ok := fetched.landCover[key]; ok && cats != nil {
			features.IsForestEdge = cats[providers.CategoryForestEdge]
			features.IsAgriculturalEdge = cats[providers.CategoryAgriculturalEdge]
			features.IsCropCell = cats[providers.CategoryCrop]
			features.IsSoftMastStand = cats[providers.CategorySoftMast]
			features.IsMastStand = cats[providers.CategoryMast]
		}
		c.Features = features
	})
}

func nearestRoadDistanceM(p geo.Point, segments []providers.RoadSegment) (float64, bool) {
	if len(segments) == 0 {
		return 0, false
	}
	best := -1.0
	for _, seg := range segments {
		for _, sp := range seg.Points {
			d := geo.HaversineM(p, sp)
			if best < 0 || d < best {
				best = d
			}
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// deriveSecurityAndAccess summarizes the grid's road distance and
// trail density into the 0-1 security and access-pressure scores C6's
// stand and bedding selectors consume.
func deriveSecurityAndAccess(grid *scoremap.Grid) (security, access float64) {
	var roadSum, trailSum float64
	n := float64(scoremap.GridSide * scoremap.GridSide)
	grid.Each(func(c *scoremap.Cell) {
		roadSum += clamp01Range(c.Features.RoadDistanceM/1000, 0, 1)
		trailSum += c.Features.TrailDensity0To1
	})
	security = roadSum / n
	access = trailSum / n
	return security, access
}

func clamp01Range(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func groupByBucket(all []points.OptimizedPoint) map[points.Bucket][]points.OptimizedPoint {
	out := map[points.Bucket][]points.OptimizedPoint{}
	for _, pt := range all {
		out[pt.Bucket] = append(out[pt.Bucket], pt)
	}
	return out
}

// dominantBeddingAnchor picks the bedding point nearest the request
// center as the anchor C3 refines every stand against; a single
// bedding anchor per request keeps refinement tractable and matches
// how one request center maps to one dominant bedding complex.
func dominantBeddingAnchor(beddingPoints []points.OptimizedPoint, center geo.Point) geo.Point {
	if len(beddingPoints) == 0 {
		return center
	}
	best := beddingPoints[0].Point
	bestDist := geo.HaversineM(center, best)
	for _, bp := range beddingPoints[1:] {
		d := geo.HaversineM(center, bp.Point)
		if d < bestDist {
			best, bestDist = bp.Point, d
		}
	}
	return best
}

func (p *Pipeline) refineStands(standPoints []points.OptimizedPoint, anchor geo.Point, centerTerrain terrain.TerrainPoint, field wind.Field, thermalState wind.ThermalState, now time.Time) []StandRecommendation {
	zones := []geo.Point{anchor}
	out := make([]StandRecommendation, 0, len(standPoints))
	for _, sp := range standPoints {
		site := stand.Site{
			Anchor:                 anchor,
			SlopeDeg:               centerTerrain.SlopeDeg,
			DownhillDeg:            geo.NewBearing(centerTerrain.AspectDeg),
			WindFromDeg:            field.EffectiveFromDeg,
			WindSpeedMPH:           field.EffectiveSpeedMPH,
			ThermalActive:          thermalState.Active,
			ThermalDownslopeFamily: thermalState.DirectionTag == wind.Downslope,
			ThermalStrength0To1:    thermalState.StrengthZeroToTen / 10,
			ReferenceDistanceM:     referenceDistanceM,
		}

		var refined stand.Position
		hour := now.Hour()
		switch {
		case hour < 11:
			refined = stand.CalculateMorning(site)
		case hour >= 15:
			refined = stand.CalculateEvening(site)
		default:
			morning := stand.CalculateMorning(site)
			refined = stand.CalculateAllDay(site, morning.BearingFromBeddingDeg)
		}

		standPoint := geo.Offset(anchor, refined.BearingFromBeddingDeg, refined.DistanceM)
		scentSafe := stand.IsScentSafe(standPoint, field.EffectiveFromDeg, zones)
		refined.ScentSafe = scentSafe

		confidence := sp.Confidence * 99
		if !scentSafe {
			confidence *= 0.7
		}

		out = append(out, StandRecommendation{
			Point:           sp,
			Refined:         &refined,
			ScentSafe:       scentSafe,
			Confidence0To99: confidence,
			Tags:            []string{string(refined.StrategyTag)},
		})
	}
	return out
}

func toForecastHours(hourly []providers.HourlyForecast) []huntwindow.ForecastHour {
	out := make([]huntwindow.ForecastHour, 0, len(hourly))
	for _, h := range hourly {
		out = append(out, huntwindow.ForecastHour{
			Time:         h.Time,
			TemperatureF: h.TemperatureF,
			PressureInHg: h.PressureInHg,
			WindSpeedMPH: h.WindSpeedMPH,
			WindGustMPH:  h.WindGustMPH,
			WindFromDeg:  h.WindDirectionDeg,
		})
	}
	return out
}

// applyHuntWindowCoupling matches each refined stand's strategy tag
// against the stand profile that declares it via strategy_match and
// applies that profile's hunt-window priority boost in place.
func applyHuntWindowCoupling(recs []StandRecommendation, profiles []config.StandProfile, statuses []huntwindow.StandWindStatus) {
	for i := range recs {
		if recs[i].Refined == nil {
			continue
		}
		strategyKey := string(recs[i].Refined.StrategyTag)
		for _, profile := range profiles {
			if profile.StrategyMatch == nil || *profile.StrategyMatch != strategyKey {
				continue
			}
			for _, status := range statuses {
				if status.ProfileID != profile.ID {
					continue
				}
				ref := huntwindow.StandRef{MatchKey: strategyKey, Confidence0To99: recs[i].Confidence0To99}
				if result, ok := huntwindow.ApplyPriorityBoost(ref, strategyKey, status); ok {
					recs[i].Confidence0To99 = result.NewConfidence0To99
					recs[i].Tags = append(recs[i].Tags, result.Tag)
					cred := result.Credibility
					recs[i].WindCredibility = &cred
				}
			}
		}
	}
}

func terrainDataQuality(coverage float64) errkind.DataQuality {
	switch {
	case coverage >= 0.95:
		return errkind.Full
	case coverage > 0:
		return errkind.Degraded
	default:
		return errkind.Unavailable
	}
}

// buildMatureBuckAnalysis applies the caution overlay to the general
// behavioral notes and narrows stand suggestions to the security- and
// cover-favoring variants, reflecting that mature bucks favor thicker
// cover and delay movement under suboptimal conditions.
func buildMatureBuckAnalysis(bio biology.Notes, grouped map[points.Bucket][]points.OptimizedPoint) *MatureBuckAnalysis {
	notes := []string{
		biology.MatureBuckModifier(string(bio.MovementDirection)),
		biology.MatureBuckModifier(bio.Pressure.Note),
	}

	var suggestions []points.OptimizedPoint
	for _, pt := range grouped[points.BucketStand] {
		if pt.Description == "maximum-security stand" {
			suggestions = append(suggestions, pt)
		}
	}
	for _, pt := range grouped[points.BucketBedding] {
		if pt.Description == "security-weighted bedding site" || pt.Description == "dense-cover-weighted bedding site" {
			suggestions = append(suggestions, pt)
		}
	}

	return &MatureBuckAnalysis{GeneralNotes: notes, StandSuggestions: suggestions}
}

func topFive(recs []StandRecommendation) []StandRecommendation {
	sorted := make([]StandRecommendation, len(recs))
	copy(sorted, recs)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].Confidence0To99 > sorted[j-1].Confidence0To99; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	if len(sorted) > 5 {
		sorted = sorted[:5]
	}
	return sorted
}

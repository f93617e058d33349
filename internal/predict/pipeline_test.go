package predict

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenmtn-data/scent.report/internal/biology"
	"github.com/greenmtn-data/scent.report/internal/config"
	"github.com/greenmtn-data/scent.report/internal/geo"
	"github.com/greenmtn-data/scent.report/internal/terrain"
)

func testRequest() Request {
	return Request{
		Lat:      44.2601,
		Lon:      -72.5754,
		DateTime: time.Date(2026, 11, 10, 7, 0, 0, 0, time.UTC),
		Season:   biology.Rut,
	}
}

// bareCollaborators returns a Collaborators with every external
// provider nil and no raster reader, exercising the fully-degraded
// fallback path with no network or filesystem dependency.
func bareCollaborators() Collaborators {
	return Collaborators{
		Terrain: terrain.NewCatalog(nil),
		Config:  config.Defaults(),
	}
}

func TestRun_NoCollaboratorsStillProducesResponse(t *testing.T) {
	p := NewPipeline(bareCollaborators())
	resp, err := p.Run(context.Background(), testRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.StandRecommendations)
	assert.Equal(t, "FeatureCollection", resp.BeddingZones.Type)
	assert.NotEmpty(t, resp.BeddingZones.Features)
	assert.NotEmpty(t, resp.FeedingAreas.Features)
	assert.LessOrEqual(t, len(resp.FiveBestStands), 5)
	assert.Empty(t, resp.HuntSchedule, "no weather collaborator means no hunt schedule")
}

func TestRun_RejectsInvalidRequest(t *testing.T) {
	p := NewPipeline(bareCollaborators())
	req := testRequest()
	req.Lat = 999
	_, err := p.Run(context.Background(), req)
	assert.Error(t, err)
}

func TestRun_RejectsUnknownSeason(t *testing.T) {
	p := NewPipeline(bareCollaborators())
	req := testRequest()
	req.Season = "nonexistent"
	_, err := p.Run(context.Background(), req)
	assert.Error(t, err)
}

func TestRun_FastModeSkipsHuntSchedule(t *testing.T) {
	collab := bareCollaborators()
	collab.StandProfiles = config.NewStandProfileStore([]config.StandProfile{
		{ID: "s1", DisplayName: "North Ridge", PreferredWinds: []config.PreferredWind{{CompassLabel: "N", ToleranceDeg: 20}}},
	})
	p := NewPipeline(collab)
	req := testRequest()
	req.FastMode = true
	resp, err := p.Run(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.HuntSchedule)
}

func TestRun_NoProvidersMeansAllDegradedIsFalse(t *testing.T) {
	// With every collaborator nil, fetchCollaborators never calls
	// WithRetryAndFallback at all, so totalCalls stays 0 and the
	// all-degraded signal must not fire on a request that made no
	// external calls in the first place.
	p := NewPipeline(bareCollaborators())
	resp, err := p.Run(context.Background(), testRequest())
	require.NoError(t, err)
	assert.False(t, resp.AllProvidersDegraded)
}

func TestRun_DeterministicExceptRequestID(t *testing.T) {
	p := NewPipeline(bareCollaborators())
	resp1, err := p.Run(context.Background(), testRequest())
	require.NoError(t, err)
	resp2, err := p.Run(context.Background(), testRequest())
	require.NoError(t, err)
	assert.NotEqual(t, resp1.RequestID, resp2.RequestID, "each request gets its own id")

	// Aside from the per-run request id, two runs over the same request
	// and the same (collaborator-free) inputs must be byte-for-byte
	// identical: nothing in the pipeline consults wall-clock time or
	// randomness beyond uuid.New.
	diff := cmp.Diff(resp1, resp2, cmpopts.IgnoreFields(Response{}, "RequestID"))
	assert.Empty(t, diff, "repeated runs over identical input must match except for request_id")
}

func TestDominantBeddingAnchorFallsBackToCenterWhenEmpty(t *testing.T) {
	center := geo.Point{Lat: 44.2601, Lon: -72.5754}
	anchor := dominantBeddingAnchor(nil, center)
	assert.Equal(t, center, anchor)
}

func TestTopFiveCapsAndSortsDescending(t *testing.T) {
	recs := []StandRecommendation{
		{Confidence0To99: 10},
		{Confidence0To99: 90},
		{Confidence0To99: 50},
		{Confidence0To99: 70},
		{Confidence0To99: 30},
		{Confidence0To99: 20},
	}
	top := topFive(recs)
	require.Len(t, top, 5)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Confidence0To99, top[i].Confidence0To99)
	}
	assert.Equal(t, 90.0, top[0].Confidence0To99)
}

func TestTerrainDataQualityThresholds(t *testing.T) {
	assert.Equal(t, "full", string(terrainDataQuality(1.0)))
	assert.Equal(t, "degraded", string(terrainDataQuality(0.5)))
	assert.Equal(t, "unavailable", string(terrainDataQuality(0)))
}

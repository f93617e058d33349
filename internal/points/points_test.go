package points

import (
	"testing"

	"github.com/greenmtn-data/scent.report/internal/geo"
	"github.com/greenmtn-data/scent.report/internal/scoremap"
	"github.com/greenmtn-data/scent.report/internal/wind"
	"github.com/stretchr/testify/assert"
)

func testGrid() *scoremap.Grid {
	g := scoremap.BuildCoordinates(geo.Point{Lat: 44.0, Lon: -72.5})
	g.Each(func(c *scoremap.Cell) {
		c.Features = scoremap.DefaultFeatures(float64(c.Row+c.Col), float64((c.Row*37+c.Col*11)%360), 400)
	})
	return g
}

func TestGenerateProducesExactlyTwelvePoints(t *testing.T) {
	g := testGrid()
	layers := scoremap.BuildLayers(g)
	out, warnings := Generate(Input{
		Grid:                g,
		Layers:              layers,
		SecurityScore0To1:   0.5,
		AccessPressure0To1:  0.2,
		ThermalActive:       true,
		ThermalDirectionTag: wind.Downslope,
		ThermalStrength0To10: 6,
	})
	assert.Len(t, out, 12)
	assert.Empty(t, warnings)
}

func TestGenerateBucketsHaveThreeEach(t *testing.T) {
	g := testGrid()
	layers := scoremap.BuildLayers(g)
	out, _ := Generate(Input{Grid: g, Layers: layers, SecurityScore0To1: 0.4})
	counts := map[Bucket]int{}
	for _, p := range out {
		counts[p.Bucket]++
	}
	assert.Equal(t, 3, counts[BucketStand])
	assert.Equal(t, 3, counts[BucketBedding])
	assert.Equal(t, 3, counts[BucketFeeding])
	assert.Equal(t, 3, counts[BucketCamera])
}

func TestStandSitesRespectMinimumSeparation(t *testing.T) {
	g := testGrid()
	layers := scoremap.BuildLayers(g)
	sites, warnings := standSites(Input{Grid: g, Layers: layers, SecurityScore0To1: 0.5, ThermalActive: true, ThermalDirectionTag: wind.Upslope, ThermalStrength0To10: 5})
	assert.Empty(t, warnings)
	for i := 0; i < len(sites); i++ {
		for j := i + 1; j < len(sites); j++ {
			assert.GreaterOrEqual(t, geo.HaversineM(sites[i].Point, sites[j].Point), MinSeparationM-1e-6)
		}
	}
}

// TestGenerateReportsEmptyBucketsWhenScoreGridsAreAllZero exercises
// property 14: an entirely zero-valued score grid yields no point for
// that bucket/variant rather than an arbitrary corner cell, and the
// omission is reported in the returned warnings.
func TestGenerateReportsEmptyBucketsWhenScoreGridsAreAllZero(t *testing.T) {
	g := scoremap.BuildCoordinates(geo.Point{Lat: 44.0, Lon: -72.5})
	out, warnings := Generate(Input{
		Grid:               g,
		Layers:             scoremap.Layers{},
		SecurityScore0To1:  0,
		AccessPressure0To1: 0.5,
	})
	assert.Empty(t, out)
	assert.Len(t, warnings, 12)
}

func TestPublishedScoreCapsAtTen(t *testing.T) {
	assert.Equal(t, 10.0, publishedScore(7))
}

func TestOptimalTimeTagMatchesThermalDirection(t *testing.T) {
	assert.Equal(t, "morning", optimalTimeTag(wind.Downslope))
	assert.Equal(t, "evening", optimalTimeTag(wind.Upslope))
	assert.Equal(t, "dawn+dusk", optimalTimeTag(wind.Neutral))
}

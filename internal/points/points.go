// Package points implements the points generator (C6): selecting
// up to twelve OptimizedPoint values in four buckets of three —
// stand sites, bedding sites, feeding sites, and camera placements —
// from the score-map layers and security analysis produced upstream;
// a selector whose score grid is entirely zero contributes no point.
package points

import (
	"github.com/greenmtn-data/scent.report/internal/geo"
	"github.com/greenmtn-data/scent.report/internal/scoremap"
	"github.com/greenmtn-data/scent.report/internal/wind"
)

// MinSeparationM is the minimum haversine distance required between
// any two stand sites.
const MinSeparationM = 100.0

// DataSourceTag attaches provenance metadata to a point for downstream
// auditing.
type DataSourceTag string

const (
	SourceUSGSTerrain    DataSourceTag = "USGS_Terrain"
	SourceOSMSecurity    DataSourceTag = "OSM_Security"
	SourceThermalAnalysis DataSourceTag = "Thermal_Analysis"
	SourceGEEVegetation  DataSourceTag = "GEE_Vegetation"
	SourceBehavioralRules DataSourceTag = "Behavioral_Rules"
)

// Bucket names the four point categories.
type Bucket string

const (
	BucketStand   Bucket = "stand_sites"
	BucketBedding Bucket = "bedding_sites"
	BucketFeeding Bucket = "feeding_sites"
	BucketCamera  Bucket = "camera_placements"
)

// OptimizedPoint is C6's single point output.
type OptimizedPoint struct {
	Bucket      Bucket          `json:"bucket"`
	Point       geo.Point       `json:"point"`
	Score0To10  float64         `json:"score_0_10"`
	Confidence  float64         `json:"confidence"`
	Description string          `json:"description"`
	TimeTag     string          `json:"time_tag,omitempty"`
	DataSources []DataSourceTag `json:"data_sources,omitempty"`
}

// Input bundles everything the selector needs for one request.
type Input struct {
	Grid               *scoremap.Grid
	Layers             scoremap.Layers
	SecurityScore0To1  float64
	AccessPressure0To1 float64
	ThermalActive       bool
	ThermalDirectionTag wind.ThermalDirectionTag
	ThermalStrength0To10 float64
	MatureBuckTargeted bool
}

// Generate produces the full twelve-point set, or fewer when a
// selector's score grid is entirely zero. warnings names each omitted
// point's bucket and variant, the provenance trail for a degraded
// bucket rather than a fabricated corner-cell point.
func Generate(in Input) (points []OptimizedPoint, warnings []string) {
	out := make([]OptimizedPoint, 0, 12)
	add := func(pts []OptimizedPoint, warn []string) {
		out = append(out, pts...)
		warnings = append(warnings, warn...)
	}
	add(standSites(in))
	add(beddingSites(in))
	add(feedingSites(in))
	add(cameraPlacements(in))
	return out, warnings
}

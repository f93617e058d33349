// Package config holds process-wide configuration for the prediction
// pipeline: DEM directories, provider timeouts, the Vermont solar-table
// timezone, and the reloadable stand-profile snapshot. Fields mirror
// the optional-pointer-field JSON shape the rest of the pack uses for
// tuning configs, so partial config files are safe and missing fields
// fall back to documented defaults rather than a zero-value coincidence.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config is the root process configuration, loaded once at startup.
type Config struct {
	// DemDirectories lists directories the terrain extractor scans at
	// startup for LIDAR and fallback DEM raster tiles.
	DemDirectories []string `json:"dem_directories,omitempty"`

	// DefaultSampleRadiusM is the sampling radius used when extracting
	// terrain points, matching the fallback DEM resolution unless
	// overridden.
	DefaultSampleRadiusM *float64 `json:"default_sample_radius_m,omitempty"`

	// StandProfileStorePath is the sqlite database file backing the
	// reloadable stand profile snapshot.
	StandProfileStorePath *string `json:"stand_profile_store_path,omitempty"`

	// DemTileCatalogPath is the sqlite database file backing the
	// persisted DEM tile catalog (path, CRS, bounds, resolution, tag).
	DemTileCatalogPath *string `json:"dem_tile_catalog_path,omitempty"`

	// Timezone is the fixed local timezone for the hunting-context
	// analyzer's solar-table comparisons. This is a configuration
	// input, never a runtime guess.
	Timezone *string `json:"timezone,omitempty"`

	// WeatherTimeoutMS, CanopyTimeoutMS, RoadTrailTimeoutMS are the
	// per-collaborator suspension-point timeouts.
	WeatherTimeoutMS   *int64 `json:"weather_timeout_ms,omitempty"`
	CanopyTimeoutMS    *int64 `json:"canopy_timeout_ms,omitempty"`
	RoadTrailTimeoutMS *int64 `json:"road_trail_timeout_ms,omitempty"`
}

const (
	defaultSampleRadiusM      = 30.0
	defaultTimezone           = "America/New_York"
	defaultWeatherTimeoutMS   = 10_000
	defaultCanopyTimeoutMS    = 15_000
	defaultRoadTrailTimeoutMS = 30_000
)

// Empty returns a Config with every field unset, ready to be filled in
// by JSON unmarshalling.
func Empty() *Config {
	return &Config{}
}

// Load reads and validates a Config from a JSON file. Fields omitted
// from the file retain their documented defaults via the Get* accessors.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Empty()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that any set fields hold sane values.
func (c *Config) Validate() error {
	if c.DefaultSampleRadiusM != nil && *c.DefaultSampleRadiusM <= 0 {
		return fmt.Errorf("default_sample_radius_m must be positive, got %f", *c.DefaultSampleRadiusM)
	}
	if c.Timezone != nil {
		if _, err := time.LoadLocation(*c.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", *c.Timezone, err)
		}
	}
	return nil
}

// GetDefaultSampleRadiusM returns the configured radius or the 30m
// fallback-DEM default.
func (c *Config) GetDefaultSampleRadiusM() float64 {
	if c.DefaultSampleRadiusM == nil {
		return defaultSampleRadiusM
	}
	return *c.DefaultSampleRadiusM
}

// GetTimezone returns the configured IANA timezone name or the Vermont
// default.
func (c *Config) GetTimezone() string {
	if c.Timezone == nil || *c.Timezone == "" {
		return defaultTimezone
	}
	return *c.Timezone
}

// GetWeatherTimeout returns the weather-provider suspension-point timeout.
func (c *Config) GetWeatherTimeout() time.Duration {
	return msOrDefault(c.WeatherTimeoutMS, defaultWeatherTimeoutMS)
}

// GetCanopyTimeout returns the canopy-provider suspension-point timeout.
func (c *Config) GetCanopyTimeout() time.Duration {
	return msOrDefault(c.CanopyTimeoutMS, defaultCanopyTimeoutMS)
}

// GetRoadTrailTimeout returns the road/trail-provider suspension-point timeout.
func (c *Config) GetRoadTrailTimeout() time.Duration {
	return msOrDefault(c.RoadTrailTimeoutMS, defaultRoadTrailTimeoutMS)
}

func msOrDefault(v *int64, def int64) time.Duration {
	if v == nil {
		return time.Duration(def) * time.Millisecond
	}
	return time.Duration(*v) * time.Millisecond
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }
func ptrInt64(v int64) *int64       { return &v }

// Defaults returns a fully populated Config using the documented
// fallback values, suitable as a baseline before merging a partial
// user file on top.
func Defaults() *Config {
	return &Config{
		DefaultSampleRadiusM: ptrFloat64(defaultSampleRadiusM),
		Timezone:             ptrString(defaultTimezone),
		WeatherTimeoutMS:     ptrInt64(defaultWeatherTimeoutMS),
		CanopyTimeoutMS:      ptrInt64(defaultCanopyTimeoutMS),
		RoadTrailTimeoutMS:   ptrInt64(defaultRoadTrailTimeoutMS),
	}
}

package huntwindow

import (
	"testing"
	"time"

	"github.com/greenmtn-data/scent.report/internal/config"
	"github.com/greenmtn-data/scent.report/internal/geo"
	"github.com/stretchr/testify/assert"
)

func mustProfile(id string, label string, tolerance float64) config.StandProfile {
	return config.StandProfile{
		ID:             id,
		PreferredWinds: []config.PreferredWind{{CompassLabel: label, ToleranceDeg: tolerance}},
	}
}

func TestDetectColdFrontOnTemperatureDrop(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	s := Snapshot{
		Now:     now,
		Current: ForecastHour{Time: now, TemperatureF: 55, PressureInHg: 30.0},
		Hourly: []ForecastHour{
			{Time: now.Add(3 * time.Hour), TemperatureF: 44, PressureInHg: 30.0},
		},
	}
	cf := DetectColdFront(s)
	assert.True(t, cf.Triggered)
	assert.Equal(t, now.Add(3*time.Hour), cf.EarliestEventTime)
}

func TestDetectColdFrontOnPressureRise(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	s := Snapshot{
		Now:     now,
		Current: ForecastHour{Time: now, TemperatureF: 50, PressureInHg: 29.8},
		Hourly: []ForecastHour{
			{Time: now.Add(2 * time.Hour), TemperatureF: 50, PressureInHg: 30.0},
		},
	}
	cf := DetectColdFront(s)
	assert.True(t, cf.Triggered)
}

func TestDetectColdFrontIgnoresBeyond24h(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	s := Snapshot{
		Now:     now,
		Current: ForecastHour{Time: now, TemperatureF: 55, PressureInHg: 30.0},
		Hourly: []ForecastHour{
			{Time: now.Add(30 * time.Hour), TemperatureF: 30, PressureInHg: 30.0},
		},
	}
	cf := DetectColdFront(s)
	assert.False(t, cf.Triggered)
}

func TestAlignmentForHourWithinTolerance(t *testing.T) {
	p := mustProfile("s1", "N", 25)
	h := ForecastHour{WindFromDeg: geo.NewBearing(10)}
	align := alignmentForHour(p, h)
	assert.InDelta(t, 1-10.0/25.0, align, 1e-9)
}

func TestAlignmentForHourSkipsOnGust(t *testing.T) {
	maxGust := 15.0
	p := config.StandProfile{ID: "s1", PreferredWinds: []config.PreferredWind{{CompassLabel: "N", ToleranceDeg: 25}}, MaxGustMPH: &maxGust}
	h := ForecastHour{WindFromDeg: geo.NewBearing(0), WindGustMPH: 20}
	assert.Equal(t, 0.0, alignmentForHour(p, h))
}

func TestPredictProducesNoWindowsWithoutColdFront(t *testing.T) {
	now := time.Date(2026, 10, 15, 6, 0, 0, 0, time.UTC)
	profiles := []config.StandProfile{mustProfile("s1", "N", 25)}
	s := Snapshot{
		Now:     now,
		Current: ForecastHour{Time: now, TemperatureF: 50, PressureInHg: 30.0, WindFromDeg: geo.NewBearing(0)},
		Hourly: []ForecastHour{
			{Time: now.Add(1 * time.Hour), TemperatureF: 49, PressureInHg: 30.0, WindFromDeg: geo.NewBearing(0), WindSpeedMPH: 3},
		},
	}
	windows, statuses := Predict(s, profiles, ThermalInput{})
	assert.Empty(t, windows)
	assert.Len(t, statuses, 1)
}

func TestPredictEmitsOneWindowPerMatchingProfile(t *testing.T) {
	now := time.Date(2026, 10, 15, 4, 0, 0, 0, time.UTC)
	profiles := []config.StandProfile{
		{ID: "north-ridge", DisplayName: "North Ridge", PreferredWinds: []config.PreferredWind{{CompassLabel: "N", ToleranceDeg: 20}}},
		{ID: "south-hollow", DisplayName: "South Hollow", PreferredWinds: []config.PreferredWind{{CompassLabel: "S", ToleranceDeg: 20}}},
	}
	s := Snapshot{
		Now:     now,
		Current: ForecastHour{Time: now, TemperatureF: 55, PressureInHg: 30.0, WindFromDeg: geo.NewBearing(0)},
		Hourly: []ForecastHour{
			{Time: now.Add(2 * time.Hour), TemperatureF: 54, PressureInHg: 30.2, WindFromDeg: geo.NewBearing(0), WindSpeedMPH: 2},
			{Time: now.Add(3 * time.Hour), TemperatureF: 54, PressureInHg: 30.2, WindFromDeg: geo.NewBearing(180), WindSpeedMPH: 2},
		},
	}
	windows, _ := Predict(s, profiles, ThermalInput{})
	require := assert.New(t)
	require.Len(windows, 2)

	byStand := make(map[string]HuntWindow, len(windows))
	for _, w := range windows {
		byStand[w.StandID] = w
	}

	north, ok := byStand["north-ridge"]
	require.True(ok)
	require.Equal(now.Add(2*time.Hour), north.WindowStart)
	require.Equal("N", north.DominantWindLabel)
	require.NotEmpty(north.Notes)

	south, ok := byStand["south-hollow"]
	require.True(ok)
	require.Equal(now.Add(3*time.Hour), south.WindowStart)
	require.Equal("S", south.DominantWindLabel)
	require.NotEmpty(south.Notes)
}

func TestApplyPriorityBoostCapsAt99(t *testing.T) {
	stand := StandRef{MatchKey: "ridge-stand", Confidence0To99: 95}
	status := StandWindStatus{ProfileID: "p1", PriorityBoost: 10}
	result, matched := ApplyPriorityBoost(stand, "ridge-stand", status)
	assert.True(t, matched)
	assert.Equal(t, 99.0, result.NewConfidence0To99)
	assert.Equal(t, "hunt_window_priority", result.Tag)
}

func TestApplyPriorityBoostSkipsOnMismatch(t *testing.T) {
	stand := StandRef{MatchKey: "ridge-stand", Confidence0To99: 95}
	status := StandWindStatus{ProfileID: "p1", PriorityBoost: 10}
	_, matched := ApplyPriorityBoost(stand, "other-key", status)
	assert.False(t, matched)
}

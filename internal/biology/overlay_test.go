package biology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovementDirectionMorningReturnIsFeedingToBedding(t *testing.T) {
	for hour := 5; hour <= 8; hour++ {
		assert.Equal(t, FeedingToBedding, MovementForHour(hour), "hour %d", hour)
	}
}

func TestMovementDirectionEveningIsBeddingToFeeding(t *testing.T) {
	assert.Equal(t, BeddingToFeedingPre, MovementForHour(16))
	assert.Equal(t, BeddingToFeedingPrime, MovementForHour(19))
}

func TestActivityCurveMatchesTable(t *testing.T) {
	assert.Equal(t, ActivityHigh, ActivityForHour(7))
	assert.Equal(t, ActivityModerate, ActivityForHour(10))
	assert.Equal(t, ActivityLow, ActivityForHour(13))
	assert.Equal(t, ActivityHigh, ActivityForHour(18))
	assert.Equal(t, ActivityModerate, ActivityForHour(22))
	assert.Equal(t, ActivityModerate, ActivityForHour(2))
}

func TestColdFrontTriggersOnLowPressureAndCold(t *testing.T) {
	trig := ClassifyWeather(WeatherSnapshot{PressureInHg: 29.5, TemperatureF: 40})
	assert.True(t, trig.ColdFront)
	assert.InDelta(t, 0.30, trig.ConfidenceBoost, 1e-9)
}

func TestHighPressureBoost(t *testing.T) {
	trig := ClassifyWeather(WeatherSnapshot{PressureInHg: 30.5, TemperatureF: 50})
	assert.True(t, trig.HighPressure)
	assert.InDelta(t, 0.10, trig.ConfidenceBoost, 1e-9)
}

func TestPressureResponseHighDaytimePenalty(t *testing.T) {
	resp := ClassifyPressure(PressureHigh, 10)
	assert.InDelta(t, 0.20, resp.ConfidencePenalty, 1e-9)
}

func TestPressureResponseModerateDelay(t *testing.T) {
	resp := ClassifyPressure(PressureModerate, 10)
	assert.Equal(t, 30, resp.DelayMinutesMin)
	assert.Equal(t, 60, resp.DelayMinutesMax)
}

func TestEnhancedConfidenceClamped(t *testing.T) {
	n := Analyze(Input{
		Hour:            7,
		Season:          Rut,
		HuntingPressure: PressureLow,
		Weather:         WeatherSnapshot{PressureInHg: 29.0, TemperatureF: 30},
		BaseConfidence:  0.9,
	})
	assert.LessOrEqual(t, n.EnhancedConfidence, 1.0)
}

func TestSeasonalFoodListsAreTagged(t *testing.T) {
	assert.Contains(t, SeasonalFoodSources(EarlySeason), "mast")
	assert.Contains(t, SeasonalFoodSources(Rut), "standing corn")
	assert.Contains(t, SeasonalFoodSources(LateSeason), "corn stubble")
}

func TestMatureBuckModifierAppendsCaveat(t *testing.T) {
	out := MatureBuckModifier("bedding near thick cover")
	assert.Contains(t, out, "mature buck")
}

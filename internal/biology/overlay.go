package biology

// Notes is C4's aggregated output for one request.
type Notes struct {
	ActivityLevel      ActivityLevel     `json:"activity_level"`
	MovementDirection  MovementDirection `json:"movement_direction"`
	Weather            WeatherTrigger    `json:"weather_influence"`
	Pressure           PressureResponse  `json:"pressure_response"`
	SeasonalFood       []string          `json:"seasonal_food"`
	EnhancedConfidence float64           `json:"enhanced_confidence"`
}

// Input bundles everything Analyze needs for one hour/season/pressure
// combination.
type Input struct {
	Hour               int
	Season             Season
	HuntingPressure    PressureLevel
	Weather            WeatherSnapshot
	BaseConfidence     float64
	MatureBuckTargeted bool
}

// Analyze runs the full biological overlay for in, producing the
// activity/movement/weather/pressure notes and the enhanced confidence
// score: clamp(base + weather_boost - pressure_penalty + activity_boost, 0, 1).
func Analyze(in Input) Notes {
	activity := ActivityForHour(in.Hour)
	weather := ClassifyWeather(in.Weather)
	pressure := ClassifyPressure(in.HuntingPressure, in.Hour)

	confidence := in.BaseConfidence + weather.ConfidenceBoost - pressure.ConfidencePenalty + ActivityConfidenceBoost(activity)
	confidence = clamp01(confidence)

	return Notes{
		ActivityLevel:      activity,
		MovementDirection:  MovementForHour(in.Hour),
		Weather:            weather,
		Pressure:           pressure,
		SeasonalFood:       SeasonalFoodSources(in.Season),
		EnhancedConfidence: confidence,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

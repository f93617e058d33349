package biology

import "strings"

// WeatherSnapshot is the subset of a forecast reading the overlay
// reacts to.
type WeatherSnapshot struct {
	PressureInHg float64 `json:"pressure_inhg"`
	TemperatureF float64 `json:"temperature_f"`
	WindSpeedMPH float64 `json:"wind_speed_mph"`
}

// WeatherTrigger is the overlay's read on a weather snapshot.
type WeatherTrigger struct {
	ColdFront        bool    `json:"cold_front_flag"`
	HighPressure     bool    `json:"high_pressure_flag"`
	ReducesOpenArea  bool    `json:"reduces_open_area_flag"`
	GoodScentControl bool    `json:"good_scent_control_flag"`
	ConfidenceBoost  float64 `json:"confidence_boost"`
	Note             string  `json:"note"`
}

// ClassifyWeather evaluates the cold-front, high-pressure, and wind
// rules against w.
func ClassifyWeather(w WeatherSnapshot) WeatherTrigger {
	var t WeatherTrigger
	var notes []string
	if w.PressureInHg < 29.9 && w.TemperatureF < 45 {
		t.ColdFront = true
		t.ConfidenceBoost += 0.30
		notes = append(notes, "falling pressure ahead of a cold front means increased deer movement")
	}
	if w.PressureInHg > 30.2 {
		t.HighPressure = true
		t.ConfidenceBoost += 0.10
		notes = append(notes, "stable high pressure favors normal daytime movement")
	}
	if w.WindSpeedMPH > 15 {
		t.ReducesOpenArea = true
		notes = append(notes, "strong wind pushes deer into sheltered cover")
	}
	if w.WindSpeedMPH < 5 {
		t.GoodScentControl = true
		notes = append(notes, "light wind gives reliable scent control")
	}
	t.Note = strings.Join(notes, "; ")
	return t
}

// PressureLevel is the hunting-pressure context applied to a hunt
// location.
type PressureLevel string

const (
	PressureHigh     PressureLevel = "high"
	PressureModerate PressureLevel = "moderate"
	PressureLow      PressureLevel = "low"
)

// PressureResponse is the overlay's read on hunting pressure at a
// given hour.
type PressureResponse struct {
	Note              string  `json:"note"`
	ConfidencePenalty float64 `json:"confidence_penalty"`
	DelayMinutesMin   int     `json:"delay_minutes_min,omitempty"`
	DelayMinutesMax   int     `json:"delay_minutes_max,omitempty"`
}

// ClassifyPressure evaluates the hunting-pressure rules for level at
// hour (0-23, local clock).
func ClassifyPressure(level PressureLevel, hour int) PressureResponse {
	daytime := hour >= 6 && hour <= 18
	switch level {
	case PressureHigh:
		if daytime {
			return PressureResponse{Note: "reduced daytime activity, shift to nocturnal", ConfidencePenalty: 0.20}
		}
		return PressureResponse{Note: "increased nocturnal activity"}
	case PressureModerate:
		return PressureResponse{Note: "movement delayed 30-60 minutes", ConfidencePenalty: 0.10, DelayMinutesMin: 30, DelayMinutesMax: 60}
	default:
		return PressureResponse{Note: "normal patterns"}
	}
}

package huntwindow

import (
	"fmt"
	"time"

	"github.com/greenmtn-data/scent.report/internal/config"
)

const windowLength = 2 * time.Hour

// ThermalInput is the optional thermal context fed into hour-by-hour
// stability checks.
type ThermalInput struct {
	Active bool
	Strength0To10 float64
}

// Predict runs C7 over the forecast, producing at most one hunt window
// per stand profile and a per-profile go/no-go status for "now".
func Predict(s Snapshot, profiles []config.StandProfile, thermal ThermalInput) ([]HuntWindow, []StandWindStatus) {
	coldFront := DetectColdFront(s)
	windows := buildWindows(s, profiles, coldFront, thermal)
	statuses := buildStatuses(s, profiles)
	return windows, statuses
}

// buildWindows evaluates each stand profile independently against the
// cold-front window, producing at most one HuntWindow per profile: the
// profile's single best-aligned, thermally-stable hour inside the
// front's scope.
func buildWindows(s Snapshot, profiles []config.StandProfile, cf ColdFront, thermal ThermalInput) []HuntWindow {
	if len(s.Hourly) == 0 || len(profiles) == 0 || !cf.Triggered {
		// No cold front detected: the window gate never opens, per the
		// cold-front-scoped construction rule.
		return nil
	}

	windowStart := cf.EarliestEventTime.Add(-6 * time.Hour)
	windowEnd := cf.EarliestEventTime.Add(12 * time.Hour)

	type candidate struct {
		hour      ForecastHour
		alignment float64
	}

	windows := make([]HuntWindow, 0, len(profiles))
	for _, profile := range profiles {
		var best *candidate
		for i, h := range s.Hourly {
			if h.Time.Before(windowStart) || h.Time.After(windowEnd) {
				continue
			}
			prev := s.Current
			if i > 0 {
				prev = s.Hourly[i-1]
			}
			if !thermalStable(h, prev, thermal.Active, thermal.Strength0To10) {
				continue
			}

			alignment := alignmentForHour(profile, h)
			if alignment <= 0 {
				continue
			}

			if best == nil || alignment > best.alignment ||
				(alignment == best.alignment && h.WindSpeedMPH < best.hour.WindSpeedMPH) {
				best = &candidate{hour: h, alignment: alignment}
			}
		}
		if best == nil {
			continue
		}

		windows = append(windows, HuntWindow{
			StandID:           profile.ID,
			WindowStart:       best.hour.Time,
			WindowEnd:         best.hour.Time.Add(windowLength),
			Alignment0To1:     best.alignment,
			PriorityBoost:     8 * best.alignment,
			Confidence0To1:    clampRange(0.55+0.3*best.alignment, 0.65, 0.95),
			DominantWindLabel: best.hour.WindFromDeg.Compass16(),
			TriggerTags:       []string{"cold_front", "wind_alignment", "thermal_stability"},
			Notes:             windowNote(profile, best.hour, best.alignment),
		})
	}
	return windows
}

// windowNote renders a human-readable explanation of why this window
// opened for this profile.
func windowNote(profile config.StandProfile, h ForecastHour, alignment float64) string {
	return fmt.Sprintf("%s favors %s wind at %.0f%% alignment during the cold-front window",
		profile.DisplayName, h.WindFromDeg.Compass16(), alignment*100)
}

func buildStatuses(s Snapshot, profiles []config.StandProfile) []StandWindStatus {
	out := make([]StandWindStatus, 0, len(profiles))
	for _, p := range profiles {
		a := alignmentForHour(p, s.Current)
		out = append(out, StandWindStatus{
			ProfileID:     p.ID,
			GoNow:         a > 0,
			Alignment0To1: a,
			PriorityBoost: 8 * a,
		})
	}
	return out
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

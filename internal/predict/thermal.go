package predict

import (
	"time"

	"github.com/greenmtn-data/scent.report/internal/huntcontext"
	"github.com/greenmtn-data/scent.report/internal/wind"
)

// thermalMorningLead and thermalMorningTail bound the upslope thermal
// window around sunrise; thermalEveningLead/Tail bound the downslope
// window around sunset. Vermont ridge thermals onset roughly an hour
// after direct solar heating begins and decay within the same span
// after it stops.
const (
	thermalMorningLead = 1 * time.Hour
	thermalMorningTail = 3 * time.Hour
	thermalEveningLead = 2 * time.Hour
	thermalEveningTail = 1 * time.Hour

	// thermalSuppressWindMPH is the prevailing speed at or above which solar
	// thermal circulation cannot establish.
	thermalSuppressWindMPH = 12.0
)

// deriveThermalState estimates slope-driven air movement from the time
// of day relative to sunrise/sunset, when no collaborator supplies one
// directly. Morning heating drives upslope flow; evening cooling drives
// downslope flow; strong prevailing wind suppresses both.
func deriveThermalState(now time.Time, window huntcontext.LegalWindow, prevailingSpeedMPH float64) wind.ThermalState {
	if prevailingSpeedMPH >= thermalSuppressWindMPH {
		return wind.ThermalState{Active: false, DirectionTag: wind.Neutral}
	}

	sunrise := window.Start.Add(30 * time.Minute)
	sunset := window.End.Add(-30 * time.Minute)

	morningStart := sunrise.Add(thermalMorningLead)
	morningEnd := sunrise.Add(thermalMorningTail)
	if !now.Before(morningStart) && !now.After(morningEnd) {
		return wind.ThermalState{
			Active:            true,
			DirectionTag:      wind.Upslope,
			StrengthZeroToTen: thermalStrength(now, morningStart, morningEnd),
		}
	}

	eveningStart := sunset.Add(-thermalEveningLead)
	eveningEnd := sunset.Add(thermalEveningTail)
	if !now.Before(eveningStart) && !now.After(eveningEnd) {
		return wind.ThermalState{
			Active:            true,
			DirectionTag:      wind.Downslope,
			StrengthZeroToTen: thermalStrength(now, eveningStart, eveningEnd),
		}
	}

	return wind.ThermalState{Active: false, DirectionTag: wind.Neutral}
}

// thermalStrength peaks at the window midpoint and tapers linearly
// toward 2 at either edge.
func thermalStrength(now, start, end time.Time) float64 {
	total := end.Sub(start)
	if total <= 0 {
		return 2
	}
	mid := start.Add(total / 2)
	distFromMid := now.Sub(mid)
	if distFromMid < 0 {
		distFromMid = -distFromMid
	}
	halfSpan := total / 2
	fraction := 1 - float64(distFromMid)/float64(halfSpan)
	strength := 2 + fraction*6
	if strength < 2 {
		return 2
	}
	if strength > 8 {
		return 8
	}
	return strength
}

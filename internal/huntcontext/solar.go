// Package huntcontext implements the hunting-context analyzer (C8):
// Vermont legal-hunting-hours classification and the action overlay
// used to override generic recommendations near the edges of legal
// light.
package huntcontext

import "time"

// sunriseTimes and sunsetTimes are Vermont (Montpelier) monthly
// sunrise/sunset approximations, hour/minute pairs indexed 1-12.
var sunriseTimes = map[time.Month][2]int{
	time.January: {7, 26}, time.February: {7, 8}, time.March: {6, 27},
	time.April: {6, 31}, time.May: {5, 41}, time.June: {5, 9},
	time.July: {5, 10}, time.August: {5, 38}, time.September: {6, 13},
	time.October: {6, 48}, time.November: {7, 28}, time.December: {7, 6},
}

var sunsetTimes = map[time.Month][2]int{
	time.January: {16, 22}, time.February: {17, 0}, time.March: {17, 39},
	time.April: {19, 18}, time.May: {19, 54}, time.June: {20, 27},
	time.July: {20, 38}, time.August: {20, 14}, time.September: {19, 26},
	time.October: {18, 31}, time.November: {16, 40}, time.December: {16, 13},
}

// LegalWindow is a day's legal-hunting-hours window: sunrise minus 30
// minutes to sunset plus 30 minutes.
type LegalWindow struct {
	Start time.Time
	End   time.Time
}

// LegalHuntingWindow computes the legal window for the calendar date
// of date, in date's own location.
func LegalHuntingWindow(date time.Time) LegalWindow {
	sunrise, ok := sunriseTimes[date.Month()]
	if !ok {
		sunrise = [2]int{6, 30}
	}
	sunset, ok := sunsetTimes[date.Month()]
	if !ok {
		sunset = [2]int{18, 30}
	}

	loc := date.Location()
	year, month, day := date.Date()
	sunriseDT := time.Date(year, month, day, sunrise[0], sunrise[1], 0, 0, loc)
	sunsetDT := time.Date(year, month, day, sunset[0], sunset[1], 0, 0, loc)

	return LegalWindow{
		Start: sunriseDT.Add(-30 * time.Minute),
		End:   sunsetDT.Add(30 * time.Minute),
	}
}

package stand

import "github.com/greenmtn-data/scent.report/internal/geo"

// scentViolationDeg is the angular difference threshold within which a
// bedding zone is considered to sit in the hunter's scent cone.
const scentViolationDeg = 45.0

// ScentViolation names a bedding zone whose occupants would likely wind
// the hunter at this stand.
type ScentViolation struct {
	Zone          geo.Point
	BearingFromStandToZone geo.Bearing
	AngularDiffFromScent   float64
}

// ValidateScent checks a stand location against the wind direction
// and a list of bedding zones,
// returning every zone that falls within scentViolationDeg of the
// scent cone. The stand is scent-safe iff the returned slice is empty.
func ValidateScent(stand geo.Point, windFromDeg geo.Bearing, zones []geo.Point) []ScentViolation {
	scentBearing := windFromDeg.Opposite()
	var violations []ScentViolation
	for _, zone := range zones {
		bearingToZone := geo.BearingTo(stand, zone)
		diff := geo.AngularDiff(bearingToZone, scentBearing)
		if diff <= scentViolationDeg {
			violations = append(violations, ScentViolation{
				Zone:                   zone,
				BearingFromStandToZone: bearingToZone,
				AngularDiffFromScent:   diff,
			})
		}
	}
	return violations
}

// IsScentSafe reports whether stand has zero scent violations against
// zones under the given wind.
func IsScentSafe(stand geo.Point, windFromDeg geo.Bearing, zones []geo.Point) bool {
	return len(ValidateScent(stand, windFromDeg, zones)) == 0
}

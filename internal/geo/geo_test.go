package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRejectsOutOfRange(t *testing.T) {
	assert.Error(t, Point{Lat: 91, Lon: 0}.Validate())
	assert.Error(t, Point{Lat: 0, Lon: 181}.Validate())
	assert.NoError(t, Point{Lat: 43.3, Lon: -73.2}.Validate())
}

func TestHaversineZeroForSamePoint(t *testing.T) {
	p := Point{Lat: 43.3127, Lon: -73.2271}
	assert.InDelta(t, 0.0, HaversineM(p, p), 1e-6)
}

func TestOffsetRoundTripsBearing(t *testing.T) {
	origin := Point{Lat: 43.3127, Lon: -73.2271}
	dest := Offset(origin, NewBearing(90), 500)
	// Walking 500m east should land roughly on the same latitude and a
	// positive bearing back toward due east.
	assert.InDelta(t, origin.Lat, dest.Lat, 0.01)
	assert.Greater(t, dest.Lon, origin.Lon)
	dist := HaversineM(origin, dest)
	assert.InDelta(t, 500, dist, 5)
}

func TestBearingToMatchesOffset(t *testing.T) {
	origin := Point{Lat: 43.3127, Lon: -73.2271}
	for _, deg := range []float64{0, 45, 90, 135, 180, 225, 270, 315} {
		dest := Offset(origin, NewBearing(deg), 1000)
		got := BearingTo(origin, dest)
		assert.InDelta(t, deg, float64(got), 0.5)
	}
}

package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBearingNormalizes(t *testing.T) {
	assert.InDelta(t, 10.0, float64(NewBearing(370)), 1e-9)
	assert.InDelta(t, 350.0, float64(NewBearing(-10)), 1e-9)
	assert.InDelta(t, 0.0, float64(NewBearing(360)), 1e-9)
}

func TestAngularDiffSymmetric(t *testing.T) {
	for _, tc := range [][2]float64{{10, 350}, {0, 180}, {90, 270}, {5, 5}} {
		a, b := NewBearing(tc[0]), NewBearing(tc[1])
		d1 := AngularDiff(a, b)
		d2 := AngularDiff(b, a)
		assert.Equal(t, d1, d2)
		assert.GreaterOrEqual(t, d1, 0.0)
		assert.LessOrEqual(t, d1, 180.0)
	}
}

func TestAngularDiffOppositeIs180(t *testing.T) {
	assert.InDelta(t, 180.0, AngularDiff(NewBearing(0), NewBearing(180)), 1e-9)
}

func TestCombineWeightedRange(t *testing.T) {
	result := CombineWeighted(NewBearing(350), 0.5, NewBearing(10), 0.5)
	f := float64(result)
	inRange := (f >= 340 && f < 360) || (f >= 0 && f < 20)
	assert.True(t, inRange, "combine_bearings(350,10,.5,.5) = %v out of expected wrap range", f)
}

func TestCombineWeightedAlwaysNormalized(t *testing.T) {
	for w1 := 0.0; w1 <= 1.0; w1 += 0.25 {
		r := CombineWeighted(NewBearing(10), w1, NewBearing(300), 1-w1)
		assert.GreaterOrEqual(t, float64(r), 0.0)
		assert.Less(t, float64(r), 360.0)
	}
}

func TestOppositeIsScentBearingIdentity(t *testing.T) {
	for _, from := range []float64{0, 90, 180, 270, 359} {
		b := NewBearing(from)
		assert.InDelta(t, float64(NewBearing(from+180)), float64(b.Opposite()), 1e-9)
	}
}

func TestCompass16Cardinal(t *testing.T) {
	assert.Equal(t, "N", NewBearing(0).Compass16())
	assert.Equal(t, "E", NewBearing(90).Compass16())
	assert.Equal(t, "S", NewBearing(180).Compass16())
	assert.Equal(t, "W", NewBearing(270).Compass16())
}

func TestNearestIndex(t *testing.T) {
	candidates := []Bearing{NewBearing(0), NewBearing(90), NewBearing(180)}
	idx := NearestIndex(candidates, NewBearing(170))
	assert.Equal(t, 2, idx)
}

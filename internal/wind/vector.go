package wind

import (
	"math"

	"github.com/greenmtn-data/scent.report/internal/geo"
)

// components resolves a (from-direction, speed) wind observation into
// Cartesian (x, y), matching the convention used throughout geo.Bearing
// arithmetic: x = sin(bearing), y = cos(bearing).
func components(b geo.Bearing, speed float64) (x, y float64) {
	r := float64(b) * math.Pi / 180
	return speed * math.Sin(r), speed * math.Cos(r)
}

func magnitude(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

func bearingOf(x, y float64) float64 {
	return math.Atan2(x, y) * 180 / math.Pi
}

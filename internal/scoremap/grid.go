// Package scoremap implements the score-map builder (C5): a 6x6
// terrain/land-cover grid around a request point, per-cell feature
// extraction with fallbacks, and the travel/bedding/feeding/composite
// score layers built from it.
package scoremap

import (
	"github.com/greenmtn-data/scent.report/internal/geo"
)

// GridSide is the number of cells along one edge of the score grid.
const GridSide = 6

// SpanDeg is the approximate side length, in degrees, of the square
// window centered on the request point (~750 m cell spacing at
// mid-latitudes).
const SpanDeg = 0.04

// Cell is one grid cell's location and raw features.
type Cell struct {
	Row, Col int
	Point    geo.Point
	Features Features
}

// Grid is the 6x6 array of cells built around a request point.
type Grid struct {
	Center geo.Point
	Cells  [GridSide][GridSide]Cell
}

// BuildCoordinates lays out the GridSide x GridSide cell centers
// around center, spanning SpanDeg on each axis.
func BuildCoordinates(center geo.Point) *Grid {
	g := &Grid{Center: center}
	step := SpanDeg / float64(GridSide-1)
	origin := SpanDeg / 2
	for row := 0; row < GridSide; row++ {
		for col := 0; col < GridSide; col++ {
			lat := center.Lat + origin - float64(row)*step
			lon := center.Lon - origin + float64(col)*step
			g.Cells[row][col] = Cell{Row: row, Col: col, Point: geo.Point{Lat: lat, Lon: lon}}
		}
	}
	return g
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c *Cell)) {
	for row := range g.Cells {
		for col := range g.Cells[row] {
			fn(&g.Cells[row][col])
		}
	}
}

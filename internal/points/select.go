package points

import (
	"gonum.org/v1/gonum/floats"

	"github.com/greenmtn-data/scent.report/internal/geo"
	"github.com/greenmtn-data/scent.report/internal/scoremap"
)

// argmax returns the row/col of the highest-valued cell in l, flattening
// the grid and delegating the search to gonum/floats the same way
// geo.NearestIndex does for bearing lists. ok is false when every cell
// is zero: a selector has nothing to recommend, not an arbitrary corner
// cell, and the caller should omit that candidate rather than fabricate
// one.
func argmax(l scoremap.Layer) (row, col int, ok bool) {
	flat := make([]float64, 0, scoremap.GridSide*scoremap.GridSide)
	for r := 0; r < scoremap.GridSide; r++ {
		flat = append(flat, l[r][:]...)
	}
	idx := floats.MaxIdx(flat)
	if flat[idx] <= 0 {
		return 0, 0, false
	}
	return idx / scoremap.GridSide, idx % scoremap.GridSide, true
}

// zeroNear clears any cell of l within minDistM of center, enforcing
// the minimum-separation rule before the next argmax pass.
func zeroNear(l scoremap.Layer, g *scoremap.Grid, center geo.Point, minDistM float64) scoremap.Layer {
	out := l
	for r := 0; r < scoremap.GridSide; r++ {
		for c := 0; c < scoremap.GridSide; c++ {
			if geo.HaversineM(center, g.Cells[r][c].Point) < minDistM {
				out[r][c] = 0
			}
		}
	}
	return out
}

// publishedScore converts a raw ~0-5 grid value (after multipliers)
// into the published 0-10 scale, capped at 10.
func publishedScore(raw float64) float64 {
	v := raw * 2
	if v > 10 {
		return 10
	}
	if v < 0 {
		return 0
	}
	return v
}

package terrain

import "math"

// Neighborhood3x3 is the row-major 3x3 elevation patch Horn's method
// consumes, labeled a..i with e as the center pixel:
//
//	a b c
//	d e f
//	g h i
type Neighborhood3x3 struct {
	A, B, C float64
	D, E, F float64
	G, H, I float64
}

const aspectFlatEpsilon = 0.001

// HornSlopeAspect computes slope and aspect at the center of a 3x3
// neighborhood using Horn's method, given the raster's horizontal
// resolution in meters. Slope is clamped to [0, 90]; aspect is 0 when
// the surface is flat (undefined), otherwise normalized into [0, 360).
func HornSlopeAspect(n Neighborhood3x3, resolutionM float64) (slopeDeg, aspectDeg float64) {
	dzdx := ((n.C + 2*n.F + n.I) - (n.A + 2*n.D + n.G)) / (8 * resolutionM)
	dzdy := ((n.G + 2*n.H + n.I) - (n.A + 2*n.B + n.C)) / (8 * resolutionM)

	slope := radToDeg(math.Atan(math.Sqrt(dzdx*dzdx + dzdy*dzdy)))
	slope = clamp(slope, 0, 90)

	if math.Abs(dzdx) < aspectFlatEpsilon && math.Abs(dzdy) < aspectFlatEpsilon {
		return slope, 0
	}

	aspectRaw := radToDeg(math.Atan2(-dzdy, dzdx))
	aspect := math.Mod(90-aspectRaw, 360)
	if aspect < 0 {
		aspect += 360
	}
	return slope, aspect
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func radToDeg(r float64) float64 { return r * 180 / math.Pi }

// neighborhoodFrom extracts the literal 3x3 patch centered at
// (centerRow, centerCol) out of a larger window's elevation grid.
// centerRow/centerCol are indices into the window, not the full raster.
func neighborhoodFrom(elev [][]float64, centerRow, centerCol int) Neighborhood3x3 {
	at := func(dr, dc int) float64 { return elev[centerRow+dr][centerCol+dc] }
	return Neighborhood3x3{
		A: at(-1, -1), B: at(-1, 0), C: at(-1, 1),
		D: at(0, -1), E: at(0, 0), F: at(0, 1),
		G: at(1, -1), H: at(1, 0), I: at(1, 1),
	}
}

package geo

import "gonum.org/v1/gonum/floats"

// BatchAngularDiff computes AngularDiff(a[i], reference) for every
// element of a, the shared step behind NearestIndex.
func BatchAngularDiff(a []Bearing, reference Bearing) []float64 {
	out := make([]float64, len(a))
	for i, b := range a {
		out[i] = AngularDiff(b, reference)
	}
	return out
}

// NearestIndex returns the index into candidates whose angular
// difference to reference is smallest, using gonum/floats to locate
// the minimum once the differences are computed. Ties resolve to the
// first (lowest-index) candidate, matching floats.MinIdx semantics.
func NearestIndex(candidates []Bearing, reference Bearing) int {
	if len(candidates) == 0 {
		return -1
	}
	diffs := BatchAngularDiff(candidates, reference)
	return floats.MinIdx(diffs)
}

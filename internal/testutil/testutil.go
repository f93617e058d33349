// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers to reduce code duplication
// across test files and improve test maintainability.
package testutil

import (
	"math"
	"testing"

	"github.com/greenmtn-data/scent.report/internal/geo"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertBearing checks that got is within tolerance degrees of want,
// accounting for the 0/360 wrap.
func AssertBearing(t *testing.T, got, want geo.Bearing, toleranceDeg float64) {
	t.Helper()
	if diff := geo.AngularDiff(got, want); diff > toleranceDeg {
		t.Errorf("bearing = %.2f, want %.2f (diff %.2f > tolerance %.2f)", float64(got), float64(want), diff, toleranceDeg)
	}
}

// AssertGeoPointClose checks that got is within toleranceM meters of
// want, using haversine distance.
func AssertGeoPointClose(t *testing.T, got, want geo.Point, toleranceM float64) {
	t.Helper()
	if dist := geo.HaversineM(got, want); dist > toleranceM {
		t.Errorf("point = %+v, want %+v (distance %.2fm > tolerance %.2fm)", got, want, dist, toleranceM)
	}
}

// AssertScoreGridShape checks that a row-major score grid has exactly
// rows x cols cells and every value falls within [minVal, maxVal].
func AssertScoreGridShape(t *testing.T, grid [][]float64, rows, cols int, minVal, maxVal float64) {
	t.Helper()
	if len(grid) != rows {
		t.Fatalf("grid has %d rows, want %d", len(grid), rows)
	}
	for r, row := range grid {
		if len(row) != cols {
			t.Fatalf("grid row %d has %d cols, want %d", r, len(row), cols)
		}
		for c, v := range row {
			if math.IsNaN(v) || v < minVal || v > maxVal {
				t.Errorf("grid[%d][%d] = %v, want value in [%v, %v]", r, c, v, minVal, maxVal)
			}
		}
	}
}

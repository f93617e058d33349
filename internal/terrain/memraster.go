package terrain

import "fmt"

// Grid is an in-memory elevation raster. It implements both
// RasterReader and RasterHandle directly, so tests and the fallback
// (~30m) DEM path can exercise the exact same extraction code the
// production LIDAR tile path uses without a real GeoTIFF reader.
type Grid struct {
	Elevations  [][]float64
	Meta_       TileMeta
}

// NewGrid builds a Grid with the given elevations and metadata, filling
// in Rows/Cols from the elevation slice.
func NewGrid(elevations [][]float64, meta TileMeta) *Grid {
	meta.Rows = len(elevations)
	if meta.Rows > 0 {
		meta.Cols = len(elevations[0])
	}
	return &Grid{Elevations: elevations, Meta_: meta}
}

// Open implements RasterReader: a Grid opens itself, ignoring path.
func (g *Grid) Open(path string) (RasterHandle, error) {
	return g, nil
}

// Meta implements RasterHandle.
func (g *Grid) Meta() TileMeta { return g.Meta_ }

// Close implements RasterHandle; a Grid owns no OS resources.
func (g *Grid) Close() error { return nil }

// ReadWindow implements RasterHandle, clipping the requested half-width
// window to the grid's actual extent.
func (g *Grid) ReadWindow(row, col, halfWidth int) (*Window, error) {
	rows, cols := g.Meta_.Rows, g.Meta_.Cols
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("terrain: empty grid")
	}
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return nil, fmt.Errorf("terrain: pixel (%d,%d) outside raster %dx%d", row, col, rows, cols)
	}

	top := max0(row - halfWidth)
	left := max0(col - halfWidth)
	bottom := minN(row+halfWidth, rows-1)
	right := minN(col+halfWidth, cols-1)

	out := make([][]float64, bottom-top+1)
	for r := top; r <= bottom; r++ {
		rowCopy := make([]float64, right-left+1)
		copy(rowCopy, g.Elevations[r][left:right+1])
		out[r-top] = rowCopy
	}

	return &Window{
		Elevations: out,
		CenterRow:  row - top,
		CenterCol:  col - left,
		FullRows:   rows,
		FullCols:   cols,
		RasterRow:  row,
		RasterCol:  col,
	}, nil
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func minN(v, n int) int {
	if v > n {
		return n
	}
	return v
}

package fractal

// Grid holds per-pixel scan results for a fixed-resolution canvas, one
// entry per pixel in row-major order. The scanning engine is the only
// writer while a scan is in flight; readers may consume partial results
// at any time, treating Iters[k] == 0 as "not yet scanned". Escaped and
// interior pixels always report at least one iteration, so the sentinel
// is unambiguous.
type Grid struct {
	Cols int
	Rows int

	Iters      []uint32
	Angle      []float64
	Dist       []float64
	Dwell      []float64
	NeedsColor []bool

	// MaxIters is the iteration cap the current scan runs under.
	MaxIters uint32
	// Spacing is the plane distance between horizontally adjacent
	// samples, used by color schemes to normalize distance estimates.
	Spacing float64
}

func NewGrid(cols, rows int) *Grid {
	n := cols * rows
	return &Grid{
		Cols:       cols,
		Rows:       rows,
		Iters:      make([]uint32, n),
		Angle:      make([]float64, n),
		Dist:       make([]float64, n),
		Dwell:      make([]float64, n),
		NeedsColor: make([]bool, n),
	}
}

func (g *Grid) Len() int {
	return g.Cols * g.Rows
}

// Reset zeroes every pixel record and re-flags it for coloring.
func (g *Grid) Reset() {
	for k := range g.Iters {
		g.Iters[k] = 0
		g.Angle[k] = 0
		g.Dist[k] = 0
		g.Dwell[k] = 0
		g.NeedsColor[k] = true
	}
}

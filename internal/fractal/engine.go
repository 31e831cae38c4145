package fractal

import (
	"math"
	"time"

	"github.com/san-kum/mandelscope/internal/view"
)

const defaultBudget = 100 * time.Millisecond

// Engine scans viewports into a fixed-resolution pixel grid. The
// resolution is set at construction and never changes; every scan
// reuses the same backing arrays.
type Engine struct {
	grid   *Grid
	active *Scan

	// Budget is the wall-clock slice one Resume call may spend on rows
	// before yielding back to the host loop.
	Budget time.Duration
}

func NewEngine(cols, rows int) *Engine {
	return &Engine{
		grid:   NewGrid(cols, rows),
		Budget: defaultBudget,
	}
}

func (e *Engine) Grid() *Grid {
	return e.grid
}

// Begin resets the grid and starts a new scan of vp. A limit of 0
// defers to the size-keyed iteration policy. Any scan still in flight is
// marked cancelled so a stray Resume on it cannot write stale rows;
// callers that want its partial results must cancel and drain it first.
func (e *Engine) Begin(vp view.Viewport, limit uint32) *Scan {
	if e.active != nil && !e.active.done {
		e.active.Cancel()
		e.active.finish(Cancelled)
	}

	maxN := limit
	if maxN == 0 {
		maxN = MaxIterations(vp.Width, vp.Height)
	}

	e.grid.Reset()
	e.grid.MaxIters = maxN
	e.grid.Spacing = vp.Width / float64(e.grid.Cols)

	s := &Scan{
		eng:     e,
		vp:      vp,
		maxN:    maxN,
		xmin:    vp.CenterRe - vp.Width/2,
		ymax:    vp.CenterIm + vp.Height/2,
		dx:      vp.Width / float64(e.grid.Cols),
		dy:      vp.Height / float64(e.grid.Rows),
		started: time.Now(),
	}
	e.active = s
	return s
}

// iterate runs the escape-time recurrence for c = (cr, ci) and writes
// the pixel record at index k. The derivative of the map with respect to
// c rides along for the exterior distance estimate and is refreshed from
// the already-updated z.
func (g *Grid) iterate(k int, cr, ci float64, maxN uint32) {
	var zr, zi float64
	var dr, di float64
	var n uint32

	for n < maxN && zr*zr+zi*zi <= 4.0 {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		dr, di = 2*(zr*dr-zi*di)+1, 2*(zr*di+zi*dr)
		n++
	}

	magZ := math.Sqrt(zr*zr + zi*zi)
	magDz := math.Sqrt(dr*dr + di*di)

	g.Iters[k] = n
	g.Angle[k] = math.Atan(zr / zi)
	g.Dist[k] = math.Log(magZ*magZ) * magZ / magDz
	// Smooth dwell n + log2(log2|z|); the textbook -log2(log2 2) term
	// is exactly zero.
	g.Dwell[k] = float64(n) + math.Log2(math.Log2(magZ))
}

package fractal

import (
	"context"
	"time"

	"github.com/san-kum/mandelscope/internal/view"
)

// Outcome says how a scan run ended.
type Outcome int

const (
	// Completed means every row was scanned.
	Completed Outcome = iota
	// Cancelled means the scan stopped at a row boundary on request.
	// Rows written before the stop remain valid partial results.
	Cancelled
)

func (o Outcome) String() string {
	if o == Cancelled {
		return "cancelled"
	}
	return "completed"
}

// Scan is one in-flight sweep of the grid, re-entrant at row boundaries:
// the host calls Resume repeatedly and each call runs whole rows until
// the engine's time budget elapses. One host loop drives one scan; two
// resumptions of the same scan must never overlap.
type Scan struct {
	eng  *Engine
	vp   view.Viewport
	maxN uint32

	xmin, ymax float64
	dx, dy     float64

	row       int
	cancelled bool
	done      bool
	outcome   Outcome

	started time.Time
	elapsed time.Duration
}

// Resume runs whole rows until the time budget elapses, the grid is
// finished, or cancellation is observed. It reports whether the scan is
// still in progress; once it returns false, Outcome says how it ended.
func (s *Scan) Resume() bool {
	if s.done {
		return false
	}

	g := s.eng.grid
	deadline := time.Now().Add(s.eng.Budget)

	for s.row < g.Rows {
		if s.cancelled {
			s.finish(Cancelled)
			return false
		}
		s.scanRow(s.row)
		s.row++
		if s.row < g.Rows && time.Now().After(deadline) {
			return true
		}
	}

	s.finish(Completed)
	return false
}

// Run drives the scan to completion without yielding, checking ctx at
// row boundaries. Context cancellation maps to the Cancelled outcome and
// returns the context's error.
func (s *Scan) Run(ctx context.Context) (Outcome, error) {
	g := s.eng.grid
	for !s.done {
		select {
		case <-ctx.Done():
			s.Cancel()
		default:
		}
		if s.cancelled {
			s.finish(Cancelled)
			return s.outcome, ctx.Err()
		}
		s.scanRow(s.row)
		s.row++
		if s.row == g.Rows {
			s.finish(Completed)
		}
	}
	return s.outcome, nil
}

// Cancel requests a stop at the next row boundary. Safe to call more
// than once; a finished scan ignores it.
func (s *Scan) Cancel() {
	if !s.done {
		s.cancelled = true
	}
}

func (s *Scan) Done() bool {
	return s.done
}

func (s *Scan) Outcome() Outcome {
	return s.outcome
}

func (s *Scan) Viewport() view.Viewport {
	return s.vp
}

func (s *Scan) MaxIters() uint32 {
	return s.maxN
}

// Progress reports the fraction of rows scanned so far, in [0, 1].
func (s *Scan) Progress() float64 {
	return float64(s.row) / float64(s.eng.grid.Rows)
}

func (s *Scan) Elapsed() time.Duration {
	if s.done {
		return s.elapsed
	}
	return time.Since(s.started)
}

func (s *Scan) scanRow(i int) {
	g := s.eng.grid
	ci := s.ymax - float64(i)*s.dy
	base := i * g.Cols
	for j := 0; j < g.Cols; j++ {
		g.iterate(base+j, s.xmin+float64(j)*s.dx, ci, s.maxN)
	}
}

func (s *Scan) finish(o Outcome) {
	s.done = true
	s.outcome = o
	s.elapsed = time.Since(s.started)
	if s.eng.active == s {
		s.eng.active = nil
	}
}

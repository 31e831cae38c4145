package fractal

import "math"

// Summary aggregates the scanned pixels of a grid. Partial grids are
// fine; unscanned pixels are skipped, and dwell moments cover escaped
// pixels with finite dwell only.
type Summary struct {
	Scanned    int
	Interior   int
	Escaped    int
	Iterations uint64
	MinDwell   float64
	MaxDwell   float64
	MeanDwell  float64
}

func Summarize(g *Grid) Summary {
	s := Summary{MinDwell: math.Inf(1), MaxDwell: math.Inf(-1)}
	sum := 0.0
	counted := 0

	for k, n := range g.Iters {
		if n == 0 {
			continue
		}
		s.Scanned++
		s.Iterations += uint64(n)
		if n >= g.MaxIters {
			s.Interior++
			continue
		}
		s.Escaped++
		d := g.Dwell[k]
		if math.IsNaN(d) || math.IsInf(d, 0) {
			continue
		}
		sum += d
		counted++
		if d < s.MinDwell {
			s.MinDwell = d
		}
		if d > s.MaxDwell {
			s.MaxDwell = d
		}
	}

	if counted > 0 {
		s.MeanDwell = sum / float64(counted)
	} else {
		s.MinDwell, s.MaxDwell = 0, 0
	}
	return s
}

// DwellHistogram buckets escaped-pixel dwell values into bins for the
// explorer's sidebar chart. Returns nil until something has escaped.
func DwellHistogram(g *Grid, bins int) []float64 {
	if bins <= 0 {
		return nil
	}
	s := Summarize(g)
	if s.Escaped == 0 || s.MaxDwell <= s.MinDwell {
		return nil
	}

	hist := make([]float64, bins)
	scale := float64(bins) / (s.MaxDwell - s.MinDwell)
	for k, n := range g.Iters {
		if n == 0 || n >= g.MaxIters {
			continue
		}
		d := g.Dwell[k]
		if math.IsNaN(d) || math.IsInf(d, 0) {
			continue
		}
		b := int((d - s.MinDwell) * scale)
		if b < 0 {
			b = 0
		}
		if b >= bins {
			b = bins - 1
		}
		hist[b]++
	}
	return hist
}

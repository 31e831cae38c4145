package raster

import (
	"image"

	"github.com/san-kum/mandelscope/internal/fractal"
	"github.com/san-kum/mandelscope/internal/palette"
)

// Painter incrementally colors a grid into a reusable RGBA buffer. Each
// pass maps only pixels still flagged NeedsColor, so repainting during a
// scan costs little; switching schemes forces one full pass.
//
// Unscanned pixels paint black and keep their flag, so the scan's
// progress shows up on the next pass. Scanned pixels drop the flag once
// mapped; the numeric record itself is never written here.
type Painter struct {
	img    *image.RGBA
	scheme string
}

func NewPainter(cols, rows int) *Painter {
	return &Painter{img: image.NewRGBA(image.Rect(0, 0, cols, rows))}
}

func (p *Painter) Image() *image.RGBA {
	return p.img
}

// Paint maps pending pixels through the scheme and returns the shared
// buffer. Callable at any time, including mid-scan.
func (p *Painter) Paint(g *fractal.Grid, scheme palette.Scheme) *image.RGBA {
	full := p.scheme != scheme.Name()
	p.scheme = scheme.Name()

	k := 0
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			if full || g.NeedsColor[k] {
				p.img.SetRGBA(x, y, scheme.Paint(palette.Sample{
					Iters:    g.Iters[k],
					MaxIters: g.MaxIters,
					Angle:    g.Angle[k],
					Dist:     g.Dist[k],
					Dwell:    g.Dwell[k],
					Spacing:  g.Spacing,
				}))
				if g.Iters[k] != 0 {
					g.NeedsColor[k] = false
				}
			}
			k++
		}
	}
	return p.img
}

// Render colors a whole grid through the scheme into a fresh image. The
// grid may be mid-scan; unscanned pixels come out black.
func Render(g *fractal.Grid, scheme palette.Scheme) *image.RGBA {
	return NewPainter(g.Cols, g.Rows).Paint(g, scheme)
}

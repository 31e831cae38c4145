package view

import "math"

// Viewport is a rectangular window onto the complex plane, described by
// its center point and plane-unit extents. Viewports are values: every
// navigation step replaces the whole window, nothing mutates one in place.
type Viewport struct {
	CenterRe float64
	CenterIm float64
	Width    float64
	Height   float64
}

// Home returns the default view for a canvas with the given width/height
// aspect ratio: the smallest window of that shape that still contains the
// circle of radius 2 about the origin, so the whole set stays visible.
func Home(aspect float64) Viewport {
	return Viewport{Width: 4, Height: 4}.Fit(aspect)
}

func (v Viewport) Valid() bool {
	for _, f := range [4]float64{v.CenterRe, v.CenterIm, v.Width, v.Height} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return v.Width > 0 && v.Height > 0
}

func (v Viewport) MinDim() float64 {
	return math.Min(v.Width, v.Height)
}

// Halve shrinks the window to half its extents about the same center.
func (v Viewport) Halve() Viewport {
	v.Width /= 2
	v.Height /= 2
	return v
}

// Fit grows the shorter side until the window matches the given
// width/height aspect ratio. The center is preserved.
func (v Viewport) Fit(aspect float64) Viewport {
	if aspect <= 0 || math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		return v
	}
	if v.Width < v.Height*aspect {
		v.Width = v.Height * aspect
	} else {
		v.Height = v.Width / aspect
	}
	return v
}

// PointAt maps canvas-fraction coordinates to a plane point: fx runs 0..1
// left to right, fy runs 0..1 top to bottom.
func (v Viewport) PointAt(fx, fy float64) (re, im float64) {
	re = v.CenterRe - v.Width/2 + fx*v.Width
	im = v.CenterIm + v.Height/2 - fy*v.Height
	return re, im
}

// Rect is a pixel-space rectangle on a canvas displaying a viewport.
// Corners may arrive in any order; Canon puts them min-first.
type Rect struct {
	X0, Y0 int
	X1, Y1 int
}

func (r Rect) Canon() Rect {
	if r.X1 < r.X0 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y1 < r.Y0 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

func (r Rect) Clamp(cols, rows int) Rect {
	r = r.Canon()
	r.X0 = clamp(r.X0, 0, cols)
	r.X1 = clamp(r.X1, 0, cols)
	r.Y0 = clamp(r.Y0, 0, rows)
	r.Y1 = clamp(r.Y1, 0, rows)
	return r
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Sub maps a pixel rectangle dragged on a cols×rows canvas showing v into
// the plane region it covers, clamped to the canvas and re-fitted to the
// committed window's own aspect ratio. A degenerate (empty) rectangle
// yields an invalid viewport, which callers reject.
func (v Viewport) Sub(r Rect, cols, rows int) Viewport {
	if cols <= 0 || rows <= 0 {
		return Viewport{}
	}
	r = r.Clamp(cols, rows)
	re, im := v.PointAt(
		float64(r.X0+r.X1)/2/float64(cols),
		float64(r.Y0+r.Y1)/2/float64(rows),
	)
	sub := Viewport{
		CenterRe: re,
		CenterIm: im,
		Width:    v.Width * float64(r.X1-r.X0) / float64(cols),
		Height:   v.Height * float64(r.Y1-r.Y0) / float64(rows),
	}
	return sub.Fit(v.Width / v.Height)
}

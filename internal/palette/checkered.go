package palette

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
)

// Checkered is the distance-shaded checkerboard scheme: hue follows the
// dwell, brightness fades where the set boundary is closer than a pixel,
// and odd dwell bands are dimmed to make the levels countable by eye.
//
// Unscanned pixels (zero iterations) paint black so partial grids stay
// visually distinct from interior white.
type Checkered struct{}

func (Checkered) Name() string { return "checkered" }

func (Checkered) Paint(px Sample) color.RGBA {
	if px.Iters == 0 {
		return black
	}
	if px.Iters >= px.MaxIters {
		return white
	}

	dwellFloor := math.Floor(px.Dwell)
	frac := px.Dwell - dwellFloor
	dscale := math.Log2(px.Dist / px.Spacing)

	var value float64
	switch {
	case dscale > 0:
		value = 1
	case dscale > -10:
		value = (10 + dscale) / 10
	}

	p := math.Log(dwellFloor) / math.Log(1e6)
	var angle, radius float64
	if p < 0.5 {
		p = 1 - 1.5*p
		angle = 1 - p
		radius = math.Sqrt(p)
	} else {
		p = 1.5*p - 0.5
		angle = p
		radius = math.Sqrt(p)
	}

	if int64(dwellFloor)%2 == 1 {
		value *= 0.85
		radius *= 0.667
	}

	// The final angle can be ±Inf or NaN when the last iterate had a
	// zero imaginary part; it is only ever compared against 0, so those
	// values behave like any other and need no special casing.
	if px.Angle > 0 {
		angle += 0.02
	}
	angle += 0.0001 * frac

	hue := fracOf(angle * 10)
	sat := fracOf(radius)

	r, g, b := colorful.Hsv(hue*360, sat, value).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// CheckeredGrayscale applies the checkered mapping and collapses it to
// perceptual luma, for terminals without trustworthy color output.
type CheckeredGrayscale struct{}

func (CheckeredGrayscale) Name() string { return "grayscale" }

func (CheckeredGrayscale) Paint(px Sample) color.RGBA {
	c := Checkered{}.Paint(px)
	y := uint8(math.Round(0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)))
	return color.RGBA{R: y, G: y, B: y, A: 255}
}

func fracOf(x float64) float64 {
	return x - math.Floor(x)
}

package palette

import (
	"math"
	"testing"
)

// escaped is a plausible boundary-adjacent sample: dwell 5.87 on a cap
// of 250, distance estimate just under one pixel.
var escaped = Sample{
	Iters:    5,
	MaxIters: 250,
	Angle:    0.3,
	Dist:     0.01,
	Dwell:    5.87,
	Spacing:  0.015625,
}

func TestCheckered_Sentinels(t *testing.T) {
	var c Checkered

	unscanned := Sample{Iters: 0, MaxIters: 250}
	if got := c.Paint(unscanned); got != black {
		t.Errorf("unscanned pixel = %v, want black", got)
	}

	interior := Sample{Iters: 250, MaxIters: 250}
	if got := c.Paint(interior); got != white {
		t.Errorf("interior pixel = %v, want white", got)
	}
}

func TestCheckered_EscapedPixelHasColor(t *testing.T) {
	got := Checkered{}.Paint(escaped)
	if got == black || got == white {
		t.Errorf("escaped pixel = %v, want a mapped color", got)
	}
	if got.A != 255 {
		t.Errorf("alpha = %d, want opaque", got.A)
	}
}

func TestCheckered_Idempotent(t *testing.T) {
	var c Checkered
	first := c.Paint(escaped)
	second := c.Paint(escaped)
	if first != second {
		t.Errorf("repeated paint differs: %v then %v", first, second)
	}
}

func TestCheckered_OddEvenBanding(t *testing.T) {
	even := escaped
	even.Dwell = 4.5
	odd := escaped
	odd.Dwell = 5.5

	var c Checkered
	if c.Paint(even) == c.Paint(odd) {
		t.Error("adjacent dwell bands painted identically")
	}
}

func TestCheckered_EdgeAngles(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
	}{
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
		{"NaN", math.NaN()},
	}

	var c Checkered
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			px := escaped
			px.Angle = tt.angle
			first := c.Paint(px)
			second := c.Paint(px)
			if first != second {
				t.Errorf("edge angle paint not deterministic: %v then %v", first, second)
			}
			if first == black || first == white {
				t.Errorf("edge angle pixel = %v, want a mapped color", first)
			}
		})
	}
}

func TestCheckeredGrayscale(t *testing.T) {
	gray := CheckeredGrayscale{}.Paint(escaped)
	if gray.R != gray.G || gray.G != gray.B {
		t.Fatalf("grayscale channels differ: %v", gray)
	}

	c := Checkered{}.Paint(escaped)
	want := uint8(math.Round(0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)))
	if gray.R != want {
		t.Errorf("luma = %d, want %d", gray.R, want)
	}
}

func TestCheckeredGrayscale_Sentinels(t *testing.T) {
	var g CheckeredGrayscale

	if got := g.Paint(Sample{Iters: 250, MaxIters: 250}); got != white {
		t.Errorf("interior = %v, want white", got)
	}
	if got := g.Paint(Sample{Iters: 0, MaxIters: 250}); got != black {
		t.Errorf("unscanned = %v, want black", got)
	}
}

func TestForName(t *testing.T) {
	tests := []struct {
		name   string
		scheme string
		ok     bool
	}{
		{"checkered", "checkered", true},
		{"grayscale", "grayscale", true},
		{"unknown", "neon", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ForName(tt.scheme)
			if tt.ok && err != nil {
				t.Fatalf("ForName(%s): %v", tt.scheme, err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatalf("ForName(%s) succeeded, want error", tt.scheme)
				}
				return
			}
			if s.Name() != tt.scheme {
				t.Errorf("Name() = %s, want %s", s.Name(), tt.scheme)
			}
		})
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 2 {
		t.Fatalf("Names() = %v, want two schemes", names)
	}
	if names[0] != "checkered" || names[1] != "grayscale" {
		t.Errorf("Names() = %v, want sorted [checkered grayscale]", names)
	}
}

package tui

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/san-kum/mandelscope/internal/view"
)

func TestCanvas_CellRows(t *testing.T) {
	tests := []struct {
		rows int
		want int
	}{
		{rows: 6, want: 3},
		{rows: 5, want: 3},
		{rows: 1, want: 1},
	}
	for _, tt := range tests {
		if got := NewCanvas(4, tt.rows).CellRows(); got != tt.want {
			t.Errorf("CellRows() with %d pixel rows = %d, want %d", tt.rows, got, tt.want)
		}
	}
}

func TestCanvas_RenderShape(t *testing.T) {
	c := NewCanvas(8, 6)
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))

	lines := strings.Split(c.Render(img, nil), "\n")
	if len(lines) != 3 {
		t.Fatalf("frame has %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if n := strings.Count(line, halfBlock); n != 8 {
			t.Errorf("line %d has %d cells, want 8", i, n)
		}
	}
}

func TestCanvas_RenderOddPixelRows(t *testing.T) {
	// 5 pixel rows pack into 3 cell rows; the bottom half of the last
	// row reads past the image and must not panic.
	c := NewCanvas(4, 5)
	img := image.NewRGBA(image.Rect(0, 0, 4, 5))

	lines := strings.Split(c.Render(img, nil), "\n")
	if len(lines) != 3 {
		t.Fatalf("frame has %d lines, want 3", len(lines))
	}
}

func TestCanvas_SelectionKeepsShape(t *testing.T) {
	c := NewCanvas(8, 8)
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 40, G: 80, B: 120, A: 255})
		}
	}
	sel := view.Rect{X0: 1, Y0: 2, X1: 5, Y1: 6}

	lines := strings.Split(c.Render(img, &sel), "\n")
	if len(lines) != 4 {
		t.Fatalf("frame has %d lines, want 4", len(lines))
	}
	for i, line := range lines {
		if n := strings.Count(line, halfBlock); n != 8 {
			t.Errorf("line %d has %d cells, want 8", i, n)
		}
	}
}

func TestOnBorder(t *testing.T) {
	r := view.Rect{X0: 1, Y0: 1, X1: 4, Y1: 4}
	tests := []struct {
		x, y int
		want bool
	}{
		{1, 1, true},
		{3, 3, true},
		{2, 1, true},
		{1, 2, true},
		{3, 2, true},
		{2, 3, true},
		{2, 2, false},
		{0, 1, false},
		{4, 1, false},
		{1, 4, false},
	}
	for _, tt := range tests {
		if got := onBorder(r, tt.x, tt.y); got != tt.want {
			t.Errorf("onBorder(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

package tui

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/mandelscope/internal/view"
)

// halfBlock shows two vertically stacked pixels per terminal cell: the
// foreground colors the upper half, the background the lower.
const halfBlock = "▀"

const selectionHex = "#00d7ff"

// Canvas composites the painter's RGBA buffer into terminal cells. The
// pixel grid is cols×rows with rows twice the cell height, matching the
// half-block packing.
type Canvas struct {
	cols, rows int
}

func NewCanvas(cols, rows int) *Canvas {
	return &Canvas{cols: cols, rows: rows}
}

func (c *Canvas) Cols() int { return c.cols }
func (c *Canvas) Rows() int { return c.rows }

func (c *Canvas) CellRows() int { return (c.rows + 1) / 2 }

// Render builds the styled frame for img, overlaying the border of the
// selection rectangle when sel is non-nil. Runs of cells with identical
// colors collapse into one styled segment, which keeps the escape-code
// volume per frame manageable on large terminals.
func (c *Canvas) Render(img *image.RGBA, sel *view.Rect) string {
	var b strings.Builder
	for cy := 0; cy < c.CellRows(); cy++ {
		if cy > 0 {
			b.WriteByte('\n')
		}
		runStart := 0
		runTop, runBot := c.cellColors(img, sel, 0, cy)
		for x := 1; x <= c.cols; x++ {
			var top, bot string
			flush := x == c.cols
			if !flush {
				top, bot = c.cellColors(img, sel, x, cy)
				flush = top != runTop || bot != runBot
			}
			if !flush {
				continue
			}
			seg := strings.Repeat(halfBlock, x-runStart)
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(runTop)).
				Background(lipgloss.Color(runBot)).
				Render(seg))
			runStart, runTop, runBot = x, top, bot
		}
	}
	return b.String()
}

func (c *Canvas) cellColors(img *image.RGBA, sel *view.Rect, x, cy int) (top, bot string) {
	return c.pixelHex(img, sel, x, cy*2), c.pixelHex(img, sel, x, cy*2+1)
}

func (c *Canvas) pixelHex(img *image.RGBA, sel *view.Rect, x, y int) string {
	if sel != nil && onBorder(*sel, x, y) {
		return selectionHex
	}
	if y >= c.rows {
		return "#000000"
	}
	px := img.RGBAAt(x, y)
	return fmt.Sprintf("#%02x%02x%02x", px.R, px.G, px.B)
}

// onBorder reports whether pixel (x, y) lies on the one-pixel outline
// of the canonical rectangle r.
func onBorder(r view.Rect, x, y int) bool {
	if x < r.X0 || x >= r.X1 || y < r.Y0 || y >= r.Y1 {
		return false
	}
	return x == r.X0 || x == r.X1-1 || y == r.Y0 || y == r.Y1-1
}

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/mandelscope/internal/config"
	"github.com/san-kum/mandelscope/internal/fractal"
	"github.com/san-kum/mandelscope/internal/nav"
	"github.com/san-kum/mandelscope/internal/palette"
	"github.com/san-kum/mandelscope/internal/raster"
	"github.com/san-kum/mandelscope/internal/storage"
	"github.com/san-kum/mandelscope/internal/view"
)

const (
	sidebarWidth = 34
	minCols      = 16
	minCellRows  = 8
)

type TickMsg time.Time

// notices collects controller events for the status line. It sits
// behind a pointer because bubbletea copies the model on every update
// while the notifier keeps the handlers registered once.
type notices struct {
	status string
}

// dragState tracks an in-progress mouse selection in cell coordinates.
type dragState struct {
	x0, y0 int
	x1, y1 int
}

// pixels maps the dragged cell rectangle onto the pixel grid. Each cell
// is two pixels tall, and the cell under the release point is included.
func (d dragState) pixels() view.Rect {
	r := view.Rect{X0: d.x0, Y0: d.y0, X1: d.x1, Y1: d.y1}.Canon()
	return view.Rect{X0: r.X0, Y0: r.Y0 * 2, X1: r.X1 + 1, Y1: (r.Y1 + 1) * 2}
}

// Model drives the interactive explorer: a half-block canvas on the
// left, a stats sidebar on the right, and a navigation controller
// stepped from the tick loop so scans stay responsive to input.
type Model struct {
	cfg *config.Config

	keys keyMap
	help help.Model
	prog progress.Model
	spin spinner.Model

	engine  *fractal.Engine
	ctrl    *nav.Controller
	painter *raster.Painter
	canvas  *Canvas
	scheme  palette.Scheme
	store   *storage.Store
	events  *notices

	width, height int
	drag          *dragState
}

// NewModel builds the explorer from config. The engine is created on
// the first window size message, since the grid resolution is pinned to
// the terminal it starts in.
func NewModel(cfg *config.Config) Model {
	scheme, err := palette.ForName(cfg.Scheme)
	if err != nil {
		scheme = palette.Checkered{}
	}
	return Model{
		cfg:    cfg,
		keys:   defaultKeyMap(),
		help:   help.New(),
		prog:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(24)),
		spin:   spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(spinnerStyle)),
		scheme: scheme,
		store:  storage.New(cfg.OutDir),
		events: &notices{status: "waiting for terminal size"},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) }),
		m.spin.Tick,
	)
}

// Update handles input events and drives the in-flight scan.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.ctrl != nil {
				m.ctrl.Cancel()
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case m.ctrl == nil:
			// navigation waits for the first resize
		case key.Matches(msg, m.keys.ZoomIn):
			m.ctrl.ZoomIn()
		case key.Matches(msg, m.keys.ZoomOut):
			m.ctrl.ZoomOut()
		case key.Matches(msg, m.keys.Reset):
			m.ctrl.Reset()
		case key.Matches(msg, m.keys.Repaint):
			m.ctrl.Repaint()
		case key.Matches(msg, m.keys.Cancel):
			if m.drag != nil {
				m.drag = nil
			} else {
				m.ctrl.Cancel()
			}
		case key.Matches(msg, m.keys.Scheme):
			m.cycleScheme()
		case key.Matches(msg, m.keys.Snapshot):
			m.snapshot()
		case key.Matches(msg, m.keys.Landmark):
			m.jumpTo(int(msg.String()[0] - '1'))
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case TickMsg:
		if m.ctrl != nil {
			m.ctrl.Step()
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	if m.engine == nil && w > 0 && h > 0 {
		m.initEngine(w, h)
	}
}

// initEngine pins the grid resolution to the first reported terminal
// size: one pixel column per canvas cell, two pixel rows per cell. Later
// resizes only re-wrap the chrome around the same canvas.
func (m *Model) initEngine(w, h int) {
	cw := w - sidebarWidth - 1
	ch := h - 1
	if cw < minCols {
		cw = minCols
	}
	if ch < minCellRows {
		ch = minCellRows
	}

	m.canvas = NewCanvas(cw, ch*2)
	m.engine = fractal.NewEngine(cw, ch*2)
	m.painter = raster.NewPainter(cw, ch*2)

	root := view.Home(float64(cw) / float64(ch*2))
	m.ctrl = nav.NewController(m.engine, root, m.scheme.Name())
	m.ctrl.Limit = uint32(m.cfg.MaxIters)

	ev := m.events
	notify := m.ctrl.Notifier()
	notify.OnScanStarted(func(e nav.Event) {
		if !e.Success {
			ev.status = "selection rejected: degenerate region"
			return
		}
		ev.status = fmt.Sprintf("scanning %.6g%+.6gi", e.Viewport.CenterRe, e.Viewport.CenterIm)
	})
	notify.OnScanEnded(func(e nav.Event) {
		ev.status = "scan " + e.Outcome.String()
	})

	m.ctrl.Reset()
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.ctrl == nil {
		return
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.ctrl.ZoomIn()
		return
	case tea.MouseButtonWheelDown:
		m.ctrl.ZoomOut()
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.onCanvas(msg.X, msg.Y) {
			m.drag = &dragState{x0: msg.X, y0: msg.Y, x1: msg.X, y1: msg.Y}
		}
	case tea.MouseActionMotion:
		if m.drag != nil {
			m.drag.x1, m.drag.y1 = msg.X, msg.Y
		}
	case tea.MouseActionRelease:
		if m.drag == nil {
			return
		}
		d := *m.drag
		d.x1, d.y1 = msg.X, msg.Y
		m.drag = nil
		if d.x0 == d.x1 && d.y0 == d.y1 {
			return
		}
		g := m.engine.Grid()
		_ = m.ctrl.CommitRegion(d.pixels(), g.Cols, g.Rows)
	}
}

func (m *Model) onCanvas(x, y int) bool {
	return x >= 0 && x < m.canvas.Cols() && y >= 0 && y < m.canvas.CellRows()
}

func (m *Model) cycleScheme() {
	names := palette.Names()
	for i, name := range names {
		if name == m.scheme.Name() {
			next, err := palette.ForName(names[(i+1)%len(names)])
			if err == nil {
				m.scheme = next
				m.ctrl.SetScheme(next.Name())
			}
			return
		}
	}
}

func (m *Model) jumpTo(i int) {
	marks := view.Landmarks()
	if i < 0 || i >= len(marks) {
		return
	}
	g := m.engine.Grid()
	aspect := float64(g.Cols) / float64(g.Rows)
	_ = m.ctrl.Commit(marks[i].View.Fit(aspect))
}

// snapshot exports the current frame, scanned or not, with a sidecar
// describing the region it shows.
func (m *Model) snapshot() {
	g := m.engine.Grid()
	img := m.painter.Paint(g, m.scheme)
	vp := m.ctrl.Viewport()
	sum := fractal.Summarize(g)

	snap := storage.Snapshot{
		CenterRe: vp.CenterRe,
		CenterIm: vp.CenterIm,
		SpanRe:   vp.Width,
		SpanIm:   vp.Height,
		Scheme:   m.scheme.Name(),
		MaxIters: g.MaxIters,
		Scanned:  sum.Scanned,
		Cols:     g.Cols,
		Rows:     g.Rows,
	}
	if sc := m.ctrl.Scan(); sc != nil {
		snap.ElapsedMS = sc.Elapsed().Milliseconds()
	}

	id, err := m.store.Save("view", img, snap)
	if err != nil {
		m.events.status = "snapshot failed: " + err.Error()
		return
	}
	m.events.status = "saved " + id
}

// View renders the TUI interface.
func (m Model) View() string {
	if m.ctrl == nil {
		return "starting..."
	}

	img := m.painter.Paint(m.engine.Grid(), m.scheme)
	var sel *view.Rect
	if m.drag != nil {
		r := m.drag.pixels()
		sel = &r
	}
	frame := m.canvas.Render(img, sel)
	side := sidebarStyle.Render(m.sidebar())
	body := lipgloss.JoinHorizontal(lipgloss.Top, frame, side)
	return body + "\n" + m.help.View(m.keys)
}

func (m Model) sidebar() string {
	vp := m.ctrl.Viewport()
	g := m.engine.Grid()
	sum := fractal.Summarize(g)

	var s strings.Builder
	s.WriteString(titleStyle.Render("MANDELSCOPE") + "\n\n")

	if m.ctrl.State() == nav.Scanning {
		s.WriteString(m.spin.View() + " scanning\n")
	} else {
		s.WriteString(statusStyle.Render("idle") + "\n")
	}
	if sc := m.ctrl.Scan(); sc != nil {
		s.WriteString(m.prog.ViewAs(sc.Progress()) + "\n")
	}
	s.WriteString("\n")

	s.WriteString(labelStyle.Render("Re") + valueStyle.Render(fmt.Sprintf("%.12g", vp.CenterRe)) + "\n")
	s.WriteString(labelStyle.Render("Im") + valueStyle.Render(fmt.Sprintf("%.12g", vp.CenterIm)) + "\n")
	s.WriteString(labelStyle.Render("Span") + valueStyle.Render(fmt.Sprintf("%.3g x %.3g", vp.Width, vp.Height)) + "\n")
	s.WriteString(labelStyle.Render("Depth") + valueStyle.Render(fmt.Sprintf("%d", m.ctrl.Depth())) + "\n")
	s.WriteString(labelStyle.Render("Iters") + valueStyle.Render(fmt.Sprintf("%d", g.MaxIters)) + "\n")
	s.WriteString(labelStyle.Render("Scheme") + valueStyle.Render(m.scheme.Name()) + "\n")
	s.WriteString(labelStyle.Render("Scanned") + valueStyle.Render(fmt.Sprintf("%d/%d", sum.Scanned, g.Cols*g.Rows)) + "\n")
	s.WriteString(labelStyle.Render("Interior") + valueStyle.Render(fmt.Sprintf("%d", sum.Interior)) + "\n")
	if sc := m.ctrl.Scan(); sc != nil {
		s.WriteString(labelStyle.Render("Elapsed") + valueStyle.Render(sc.Elapsed().Round(time.Millisecond).String()) + "\n")
	}

	if hist := fractal.DwellHistogram(g, 24); hist != nil {
		chart := asciigraph.Plot(hist, asciigraph.Height(4), asciigraph.Width(24), asciigraph.Caption("Dwell"))
		s.WriteString("\n" + graphStyle.Render(chart) + "\n")
	}

	s.WriteString("\n" + statusStyle.Render(m.events.status))
	return s.String()
}

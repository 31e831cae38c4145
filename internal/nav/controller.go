package nav

import (
	"time"

	"github.com/san-kum/mandelscope/internal/fractal"
	"github.com/san-kum/mandelscope/internal/view"
)

// State is the controller's lifecycle phase.
type State int

const (
	Idle State = iota
	Scanning
)

func (s State) String() string {
	if s == Scanning {
		return "scanning"
	}
	return "idle"
}

// Controller owns the committed viewport, its undo history, and the
// at-most-one-active-scan guarantee: every navigation action cancels and
// drains any in-flight scan before the viewport moves, so a stale scan
// can never write rows that a newer region describes.
//
// Controllers are NOT thread-safe. All methods, and the handlers they
// notify, run on the host's single event loop.
type Controller struct {
	engine  *fractal.Engine
	history *view.History
	notify  Notifier

	scheme string
	scan   *fractal.Scan
	state  State

	// Limit overrides the size-keyed iteration policy when non-zero.
	Limit uint32
}

func NewController(engine *fractal.Engine, root view.Viewport, scheme string) *Controller {
	return &Controller{
		engine:  engine,
		history: view.NewHistory(root),
		scheme:  scheme,
	}
}

func (c *Controller) State() State {
	return c.state
}

// Viewport returns the currently committed region, the top of the
// zoom history.
func (c *Controller) Viewport() view.Viewport {
	return c.history.Current()
}

func (c *Controller) Depth() int {
	return c.history.Depth()
}

func (c *Controller) Scheme() string {
	return c.scheme
}

// SetScheme records the color scheme carried on events and snapshots.
// It does not rescan; callers follow up with Repaint when they want the
// grid rebuilt under the new scheme.
func (c *Controller) SetScheme(name string) {
	c.scheme = name
}

// Scan exposes the most recent scan for progress display. Nil until the
// first navigation action.
func (c *Controller) Scan() *fractal.Scan {
	return c.scan
}

func (c *Controller) Notifier() *Notifier {
	return &c.notify
}

// Step drives the in-flight scan one budget slice and settles the state
// machine when the scan reports an outcome. Hosts call it from their
// tick loop; it does nothing while Idle.
func (c *Controller) Step() {
	if c.state != Scanning {
		return
	}
	if !c.scan.Resume() {
		c.settle()
	}
}

// Reset interrupts any scan, truncates the history to the root view,
// and rescans it.
func (c *Controller) Reset() {
	c.interrupt()
	c.begin(c.history.Reset())
}

// Repaint interrupts any scan and rescans the committed view unchanged,
// for instance after a color scheme change.
func (c *Controller) Repaint() {
	c.interrupt()
	c.begin(c.history.Current())
}

// ZoomIn halves the committed view about its center, pushes it on the
// history, and scans it.
func (c *Controller) ZoomIn() {
	c.interrupt()
	next := c.history.Current().Halve()
	c.history.Push(next)
	c.begin(next)
}

// ZoomOut pops the history and rescans the wider view underneath. With
// only the root left it does nothing at all.
func (c *Controller) ZoomOut() {
	if c.history.Depth() == 1 {
		return
	}
	c.interrupt()
	c.begin(c.history.Pop())
}

// Cancel stops the in-flight scan at its next row boundary and settles
// to Idle; in Idle it does nothing. The committed viewport is unchanged
// and the partial grid remains consumable.
func (c *Controller) Cancel() {
	c.interrupt()
}

// CommitRegion maps a dragged pixel rectangle on a cols×rows canvas
// into the committed view and commits the result.
func (c *Controller) CommitRegion(r view.Rect, cols, rows int) error {
	return c.Commit(c.history.Current().Sub(r, cols, rows))
}

// Commit validates an explicit viewport (a drag result or a landmark
// jump), pushes it, and scans it. An invalid region is rejected before
// any in-flight scan is disturbed: the method emits one ScanStarted
// event with Success false and returns ErrInvalidRegion.
func (c *Controller) Commit(vp view.Viewport) error {
	if !vp.Valid() {
		c.notify.publish(Event{
			Kind:     ScanStarted,
			Viewport: vp,
			Scheme:   c.scheme,
			At:       time.Now(),
		})
		return ErrInvalidRegion
	}
	c.interrupt()
	c.history.Push(vp)
	c.begin(vp)
	return nil
}

// interrupt cancels and drains the in-flight scan, emitting its
// ScanEnded event. The controller is Idle when it returns.
func (c *Controller) interrupt() {
	if c.state != Scanning {
		return
	}
	c.scan.Cancel()
	for c.scan.Resume() {
	}
	c.settle()
}

func (c *Controller) begin(vp view.Viewport) {
	c.scan = c.engine.Begin(vp, c.Limit)
	c.state = Scanning
	c.notify.publish(Event{
		Kind:     ScanStarted,
		Viewport: vp,
		Scheme:   c.scheme,
		Success:  true,
		At:       time.Now(),
	})
}

func (c *Controller) settle() {
	c.state = Idle
	c.notify.publish(Event{
		Kind:     ScanEnded,
		Viewport: c.scan.Viewport(),
		Scheme:   c.scheme,
		Success:  true,
		Outcome:  c.scan.Outcome(),
		At:       time.Now(),
	})
}

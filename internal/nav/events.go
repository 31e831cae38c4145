package nav

import (
	"time"

	"github.com/san-kum/mandelscope/internal/fractal"
	"github.com/san-kum/mandelscope/internal/view"
)

// Kind tags the two notifications the controller emits.
type Kind int

const (
	ScanStarted Kind = iota
	ScanEnded
)

func (k Kind) String() string {
	if k == ScanEnded {
		return "scan-ended"
	}
	return "scan-started"
}

// Event is one scan lifecycle notification. Success is false only when
// a commit was rejected before any scanning began; Outcome is
// meaningful on ScanEnded.
type Event struct {
	Kind     Kind
	Viewport view.Viewport
	Scheme   string
	Success  bool
	Outcome  fractal.Outcome
	At       time.Time
}

// Handler consumes controller notifications.
type Handler func(Event)

// Notifier fans controller events out to subscribed handlers. The event
// set is closed, so subscription is per kind rather than by name.
// Handlers run synchronously in subscription order on the controller's
// loop and must not call back into the controller.
type Notifier struct {
	started []Handler
	ended   []Handler
}

func (n *Notifier) OnScanStarted(h Handler) {
	n.started = append(n.started, h)
}

func (n *Notifier) OnScanEnded(h Handler) {
	n.ended = append(n.ended, h)
}

func (n *Notifier) publish(ev Event) {
	switch ev.Kind {
	case ScanStarted:
		for _, h := range n.started {
			h(ev)
		}
	case ScanEnded:
		for _, h := range n.ended {
			h(ev)
		}
	}
}

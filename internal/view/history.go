package view

// History is the zoom undo stack. The bottom entry is the root view and
// is never removed; the top entry is the currently committed viewport.
type History struct {
	stack []Viewport
}

func NewHistory(root Viewport) *History {
	return &History{stack: []Viewport{root}}
}

func (h *History) Current() Viewport {
	return h.stack[len(h.stack)-1]
}

func (h *History) Depth() int {
	return len(h.stack)
}

func (h *History) Push(v Viewport) {
	h.stack = append(h.stack, v)
}

// Pop drops the top entry and returns the new current view. Popping with
// only the root left is a no-op.
func (h *History) Pop() Viewport {
	if len(h.stack) > 1 {
		h.stack = h.stack[:len(h.stack)-1]
	}
	return h.Current()
}

// Reset truncates the stack back to the root view and returns it.
func (h *History) Reset() Viewport {
	h.stack = h.stack[:1]
	return h.Current()
}

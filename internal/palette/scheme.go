package palette

import (
	"fmt"
	"image/color"
	"sort"
)

// Sample carries one pixel's scan results to a color scheme, together
// with the grid context the banding rules need.
type Sample struct {
	Iters    uint32
	MaxIters uint32
	Angle    float64
	Dist     float64
	Dwell    float64
	Spacing  float64
}

// Scheme turns a scanned sample into a display color. Implementations
// are pure: same sample, same color, no internal state.
type Scheme interface {
	Name() string
	Paint(px Sample) color.RGBA
}

var schemes = map[string]func() Scheme{
	"checkered": func() Scheme { return Checkered{} },
	"grayscale": func() Scheme { return CheckeredGrayscale{} },
}

// ForName returns the scheme registered under name.
func ForName(name string) (Scheme, error) {
	factory, ok := schemes[name]
	if !ok {
		return nil, fmt.Errorf("unknown color scheme: %s", name)
	}
	return factory(), nil
}

// Names lists the registered scheme names in stable order.
func Names() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

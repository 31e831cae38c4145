package view

// Landmark is a named region of interest, reachable from the CLI by name
// and from the explorer's jump keys by index. Extents are not
// aspect-corrected; callers fit them to their canvas.
type Landmark struct {
	Name  string
	Title string
	View  Viewport
}

var landmarks = []Landmark{
	{
		Name: "home", Title: "Home",
		View: Viewport{Width: 4, Height: 4},
	},
	{
		// Dense filaments and repeating seahorse curls.
		Name: "seahorse", Title: "Seahorse Valley",
		View: Viewport{CenterRe: -0.75, CenterIm: 0.10, Width: 0.1, Height: 0.1},
	},
	{
		// Large bulb with trunk-like tendrils.
		Name: "elephant", Title: "Elephant Valley",
		View: Viewport{CenterRe: -1.80, CenterIm: -0.06, Width: 0.1, Height: 0.08},
	},
	{
		// Threefold symmetric spiral structure.
		Name: "triple-spiral", Title: "Triple Spiral",
		View: Viewport{CenterRe: -0.7465, CenterIm: 0.0965, Width: 0.003, Height: 0.003},
	},
	{
		// Small copy of the whole set with tight spiral arms.
		Name: "minibrot", Title: "Spiral Minibrot",
		View: Viewport{CenterRe: -0.74275, CenterIm: 0.13175, Width: 0.0015, Height: 0.0015},
	},
	{
		// Deep, highly detailed spiral filaments.
		Name: "dragon", Title: "Valley of the Dragon",
		View: Viewport{CenterRe: -0.7375, CenterIm: 0.1825, Width: 0.005, Height: 0.005},
	},
}

// Landmarks returns the named regions in display order, home first.
func Landmarks() []Landmark {
	out := make([]Landmark, len(landmarks))
	copy(out, landmarks)
	return out
}

func LandmarkByName(name string) (Landmark, bool) {
	for _, l := range landmarks {
		if l.Name == name {
			return l, true
		}
	}
	return Landmark{}, false
}

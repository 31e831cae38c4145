package fractal

import "math"

// Iteration caps stepped by viewport size. Deeper zooms need more
// iterations to separate boundary points before float64 precision runs
// out; the thresholds are empirical, not derived.
var policySteps = []struct {
	minDim float64
	maxN   uint32
}{
	{0.4, 250},
	{0.04, 1000},
	{0.004, 2500},
	{0.0004, 5000},
	{0.00004, 10000},
	{0.000004, 25000},
}

const deepestCap uint32 = 50000

// MaxIterations returns the iteration cap for a viewport of the given
// plane-unit extents, keyed on the smaller dimension.
func MaxIterations(width, height float64) uint32 {
	minDim := math.Min(width, height)
	for _, step := range policySteps {
		if minDim > step.minDim {
			return step.maxN
		}
	}
	return deepestCap
}

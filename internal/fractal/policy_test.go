package fractal

import "testing"

func TestMaxIterations(t *testing.T) {
	tests := []struct {
		name   string
		width  float64
		height float64
		want   uint32
	}{
		{"home view", 4, 4, 250},
		{"just above first step", 0.41, 0.41, 250},
		{"first step boundary", 0.4, 0.4, 1000},
		{"tenth zoom", 0.1, 0.1, 1000},
		{"hundredth zoom", 0.01, 0.01, 2500},
		{"thousandth zoom", 0.001, 0.001, 5000},
		{"deep", 0.0001, 0.0001, 10000},
		{"deeper", 0.00001, 0.00001, 25000},
		{"deepest", 0.000001, 0.000001, 50000},
		{"keyed on min dimension", 4, 0.01, 2500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxIterations(tt.width, tt.height); got != tt.want {
				t.Errorf("MaxIterations(%v, %v) = %d, want %d", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestMaxIterations_Monotonic(t *testing.T) {
	dims := []float64{1e-8, 1e-7, 1e-6, 1e-5, 1e-4, 1e-3, 1e-2, 1e-1, 1, 10}

	prev := MaxIterations(dims[0], dims[0])
	for _, d := range dims[1:] {
		cur := MaxIterations(d, d)
		if cur > prev {
			t.Errorf("cap grew from %d to %d as region widened to %v", prev, cur, d)
		}
		prev = cur
	}
}

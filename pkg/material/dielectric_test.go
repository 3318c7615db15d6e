package material

import (
	"math"
	"testing"
)

func TestReflectance(t *testing.T) {
	tests := []struct {
		name      string
		cosI      float64
		n1, n2    float64
		expected  float64
		tolerance float64
	}{
		{
			name:      "total internal reflection",
			cosI:      math.Sqrt2 / 2,
			n1:        Glass,
			n2:        Vacuum,
			expected:  1.0,
			tolerance: 1e-9,
		},
		{
			name:      "perpendicular ray leaving glass",
			cosI:      1.0,
			n1:        Glass,
			n2:        Vacuum,
			expected:  0.04,
			tolerance: 1e-5,
		},
		{
			name:      "grazing ray entering glass",
			cosI:      0.14107,
			n1:        Vacuum,
			n2:        Glass,
			expected:  0.48873,
			tolerance: 1e-3,
		},
		{
			name:      "matched indices reflect nothing head on",
			cosI:      1.0,
			n1:        Water,
			n2:        Water,
			expected:  0.0,
			tolerance: 1e-9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflectance(tt.cosI, tt.n1, tt.n2)
			if math.Abs(got-tt.expected) > tt.tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestReflectance_GrowsTowardGrazing(t *testing.T) {
	previous := Reflectance(1.0, Air, Diamond)
	for _, cos := range []float64{0.8, 0.6, 0.4, 0.2, 0.05} {
		r := Reflectance(cos, Air, Diamond)
		if r < previous {
			t.Errorf("Reflectance should not decrease as the angle grows: cos=%v gave %v after %v", cos, r, previous)
		}
		if r < 0 || r > 1 {
			t.Errorf("Reflectance out of [0, 1]: %v", r)
		}
		previous = r
	}
}

package material

import (
	"errors"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// testObject is a stand-in shape with a single transform and no parent
type testObject struct {
	inverse core.Matrix
}

func newTestObject(transform core.Matrix) *testObject {
	inv, err := transform.Inverse()
	if err != nil {
		panic(err)
	}
	return &testObject{inverse: inv}
}

func (o *testObject) WorldToObject(point core.Tuple) core.Tuple {
	return o.inverse.MultiplyTuple(point)
}

func TestStripePattern(t *testing.T) {
	p := Stripes(core.White, core.Black)

	tests := []struct {
		name     string
		point    core.Tuple
		expected core.Color
	}{
		{"constant in y", core.Point(0, 1, 0), core.White},
		{"constant in y higher", core.Point(0, 2, 0), core.White},
		{"constant in z", core.Point(0, 0, 1), core.White},
		{"alternates in x at 0", core.Point(0, 0, 0), core.White},
		{"alternates in x at 0.9", core.Point(0.9, 0, 0), core.White},
		{"alternates in x at 1", core.Point(1, 0, 0), core.Black},
		{"alternates in x at -0.1", core.Point(-0.1, 0, 0), core.Black},
		{"alternates in x at -1", core.Point(-1, 0, 0), core.Black},
		{"alternates in x at -1.1", core.Point(-1.1, 0, 0), core.White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.LocalColorAt(tt.point); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPatternAtShape_Transforms(t *testing.T) {
	tests := []struct {
		name             string
		objectTransform  core.Matrix
		patternTransform core.Matrix
		point            core.Tuple
		expected         core.Color
	}{
		{
			name:             "object transformation",
			objectTransform:  core.Scaling(2, 2, 2),
			patternTransform: core.Identity(),
			point:            core.Point(2, 3, 4),
			expected:         core.NewColor(1, 1.5, 2),
		},
		{
			name:             "pattern transformation",
			objectTransform:  core.Identity(),
			patternTransform: core.Scaling(2, 2, 2),
			point:            core.Point(2, 3, 4),
			expected:         core.NewColor(1, 1.5, 2),
		},
		{
			name:             "object and pattern transformation",
			objectTransform:  core.Scaling(2, 2, 2),
			patternTransform: core.Translation(0.5, 1, 1.5),
			point:            core.Point(2.5, 3, 3.5),
			expected:         core.NewColor(0.75, 0.5, 0.25),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewCoordinatePattern()
			if err := p.SetTransform(tt.patternTransform); err != nil {
				t.Fatalf("SetTransform returned error: %v", err)
			}
			got := PatternAtShape(p, newTestObject(tt.objectTransform), tt.point)
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPattern_SetTransformRejectsSingular(t *testing.T) {
	p := Checkers(core.White, core.Black)
	err := p.SetTransform(core.Scaling(1, 0, 1))
	if !errors.Is(err, core.ErrNotInvertible) {
		t.Errorf("Expected ErrNotInvertible, got %v", err)
	}
	if !p.Transform().Equals(core.Identity()) {
		t.Error("A rejected transform should leave the pattern unchanged")
	}
}

func TestGradientPattern(t *testing.T) {
	p := NewGradientPattern(NewSolidColor(core.White), NewSolidColor(core.Black))

	tests := []struct {
		point    core.Tuple
		expected core.Color
	}{
		{core.Point(0, 0, 0), core.White},
		{core.Point(0.25, 0, 0), core.NewColor(0.75, 0.75, 0.75)},
		{core.Point(0.5, 0, 0), core.NewColor(0.5, 0.5, 0.5)},
		{core.Point(0.75, 0, 0), core.NewColor(0.25, 0.25, 0.25)},
	}

	for _, tt := range tests {
		if got := p.LocalColorAt(tt.point); !got.Equals(tt.expected) {
			t.Errorf("At %v: expected %v, got %v", tt.point, tt.expected, got)
		}
	}
}

func TestRingPattern(t *testing.T) {
	p := NewRingPattern(NewSolidColor(core.White), NewSolidColor(core.Black))

	tests := []struct {
		point    core.Tuple
		expected core.Color
	}{
		{core.Point(0, 0, 0), core.White},
		{core.Point(1, 0, 0), core.Black},
		{core.Point(0, 0, 1), core.Black},
		{core.Point(0.708, 0, 0.708), core.Black},
	}

	for _, tt := range tests {
		if got := p.LocalColorAt(tt.point); !got.Equals(tt.expected) {
			t.Errorf("At %v: expected %v, got %v", tt.point, tt.expected, got)
		}
	}
}

func TestCheckersPattern(t *testing.T) {
	p := Checkers(core.White, core.Black)

	tests := []struct {
		name     string
		point    core.Tuple
		expected core.Color
	}{
		{"repeats in x", core.Point(0.99, 0, 0), core.White},
		{"repeats in x next cell", core.Point(1.01, 0, 0), core.Black},
		{"repeats in y", core.Point(0, 0.99, 0), core.White},
		{"repeats in y next cell", core.Point(0, 1.01, 0), core.Black},
		{"repeats in z", core.Point(0, 0, 0.99), core.White},
		{"repeats in z next cell", core.Point(0, 0, 1.01), core.Black},
		{"negative cell", core.Point(-0.5, 0, 0), core.Black},
		{"negative diagonal", core.Point(-0.5, -0.5, 0), core.White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.LocalColorAt(tt.point); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNestedPatterns(t *testing.T) {
	red := core.NewColor(1, 0, 0)
	green := core.NewColor(0, 1, 0)

	// Inner stripes are half as wide as the outer ones
	inner := Stripes(red, green)
	if err := inner.SetTransform(core.Scaling(0.5, 0.5, 0.5)); err != nil {
		t.Fatal(err)
	}
	outer := NewStripePattern(inner, NewSolidColor(core.Black))

	tests := []struct {
		x        float64
		expected core.Color
	}{
		{0.25, red},
		{0.75, green},
		{1.5, core.Black},
	}
	for _, tt := range tests {
		if got := outer.LocalColorAt(core.Point(tt.x, 0, 0)); !got.Equals(tt.expected) {
			t.Errorf("At x=%v: expected %v, got %v", tt.x, tt.expected, got)
		}
	}

	blended := NewBlendedPattern(Stripes(core.White, core.Black), NewSolidColor(red))
	if got := blended.LocalColorAt(core.Point(0, 0, 0)); !got.Equals(core.NewColor(1, 0.5, 0.5)) {
		t.Errorf("Expected blend of white and red, got %v", got)
	}
	if got := blended.LocalColorAt(core.Point(1, 0, 0)); !got.Equals(core.NewColor(0.5, 0, 0)) {
		t.Errorf("Expected blend of black and red, got %v", got)
	}
}

package core

import (
	"errors"
	"math"
	"testing"
)

func TestTransforms_ApplyToPoints(t *testing.T) {
	tests := []struct {
		name     string
		m        Matrix
		input    Tuple
		expected Tuple
	}{
		{"translation moves a point", Translation(5, -3, 2), Point(-3, 4, 5), Point(2, 1, 7)},
		{"translation ignores vectors", Translation(5, -3, 2), Vector(-3, 4, 5), Vector(-3, 4, 5)},
		{"scaling a point", Scaling(2, 3, 4), Point(-4, 6, 8), Point(-8, 18, 32)},
		{"scaling a vector", Scaling(2, 3, 4), Vector(-4, 6, 8), Vector(-8, 18, 32)},
		{"reflection is negative scaling", Scaling(-1, 1, 1), Point(2, 3, 4), Point(-2, 3, 4)},
		{"half quarter around x", RotationX(math.Pi / 4), Point(0, 1, 0), Point(0, math.Sqrt2/2, math.Sqrt2/2)},
		{"full quarter around x", RotationX(math.Pi / 2), Point(0, 1, 0), Point(0, 0, 1)},
		{"half quarter around y", RotationY(math.Pi / 4), Point(0, 0, 1), Point(math.Sqrt2/2, 0, math.Sqrt2/2)},
		{"full quarter around y", RotationY(math.Pi / 2), Point(0, 0, 1), Point(1, 0, 0)},
		{"half quarter around z", RotationZ(math.Pi / 4), Point(0, 1, 0), Point(-math.Sqrt2/2, math.Sqrt2/2, 0)},
		{"full quarter around z", RotationZ(math.Pi / 2), Point(0, 1, 0), Point(-1, 0, 0)},
		{"shear x by y", Shearing(1, 0, 0, 0, 0, 0), Point(2, 3, 4), Point(5, 3, 4)},
		{"shear x by z", Shearing(0, 1, 0, 0, 0, 0), Point(2, 3, 4), Point(6, 3, 4)},
		{"shear y by x", Shearing(0, 0, 1, 0, 0, 0), Point(2, 3, 4), Point(2, 5, 4)},
		{"shear y by z", Shearing(0, 0, 0, 1, 0, 0), Point(2, 3, 4), Point(2, 7, 4)},
		{"shear z by x", Shearing(0, 0, 0, 0, 1, 0), Point(2, 3, 4), Point(2, 3, 6)},
		{"shear z by y", Shearing(0, 0, 0, 0, 0, 1), Point(2, 3, 4), Point(2, 3, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MultiplyTuple(tt.input); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTransforms_RoundTrip(t *testing.T) {
	transforms := []Matrix{
		Translation(5, -3, 2),
		Scaling(2, 0.5, -4),
		RotationX(0.3),
		RotationY(-1.2),
		RotationZ(2.5),
		Shearing(1, 0.5, 0, 0.2, 0, 1),
		Chain(RotationX(math.Pi/3), Scaling(3, 3, 3), Translation(-1, 2, 7)),
	}
	points := []Tuple{
		Point(0, 0, 0),
		Point(1, -2, 3),
		Point(-7.5, 0.25, 100),
	}

	for i, m := range transforms {
		inv, err := m.Inverse()
		if err != nil {
			t.Fatalf("transform %d: Inverse returned error: %v", i, err)
		}
		for _, p := range points {
			if got := inv.MultiplyTuple(m.MultiplyTuple(p)); !got.Equals(p) {
				t.Errorf("transform %d: round trip of %v gave %v", i, p, got)
			}
		}
	}
}

func TestTransforms_Chain(t *testing.T) {
	p := Point(1, 0, 1)
	a := RotationX(math.Pi / 2)
	b := Scaling(5, 5, 5)
	c := Translation(10, 5, 7)

	// Applied one at a time
	p2 := a.MultiplyTuple(p)
	if !p2.Equals(Point(1, -1, 0)) {
		t.Fatalf("Rotation: expected (1, -1, 0), got %v", p2)
	}
	p3 := b.MultiplyTuple(p2)
	if !p3.Equals(Point(5, -5, 0)) {
		t.Fatalf("Scaling: expected (5, -5, 0), got %v", p3)
	}
	p4 := c.MultiplyTuple(p3)
	if !p4.Equals(Point(15, 0, 7)) {
		t.Fatalf("Translation: expected (15, 0, 7), got %v", p4)
	}

	if got := Chain(a, b, c).MultiplyTuple(p); !got.Equals(Point(15, 0, 7)) {
		t.Errorf("Chain: expected (15, 0, 7), got %v", got)
	}
	if !Chain(a, b, c).Equals(c.Multiply(b).Multiply(a)) {
		t.Error("Chain(a, b, c) should equal c × b × a")
	}
	if !Chain().Equals(Identity()) {
		t.Error("Empty chain should be the identity")
	}
}

func TestViewTransform(t *testing.T) {
	tests := []struct {
		name     string
		from     Tuple
		to       Tuple
		up       Tuple
		expected Matrix
	}{
		{
			name:     "default orientation",
			from:     Point(0, 0, 0),
			to:       Point(0, 0, -1),
			up:       Vector(0, 1, 0),
			expected: Identity(),
		},
		{
			name:     "looking in positive z",
			from:     Point(0, 0, 0),
			to:       Point(0, 0, 1),
			up:       Vector(0, 1, 0),
			expected: Scaling(-1, 1, -1),
		},
		{
			name:     "moves the world",
			from:     Point(0, 0, 8),
			to:       Point(0, 0, 0),
			up:       Vector(0, 1, 0),
			expected: Translation(0, 0, -8),
		},
		{
			name: "arbitrary view",
			from: Point(1, 3, 2),
			to:   Point(4, -2, 8),
			up:   Vector(1, 1, 0),
			expected: NewMatrix(
				[4]float64{-0.50709, 0.50709, 0.67612, -2.36643},
				[4]float64{0.76772, 0.60609, 0.12122, -2.82843},
				[4]float64{-0.35857, 0.59761, -0.71714, 0.00000},
				[4]float64{0.00000, 0.00000, 0.00000, 1.00000},
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ViewTransform(tt.from, tt.to, tt.up)
			if err != nil {
				t.Fatalf("ViewTransform returned error: %v", err)
			}
			if !matrixNear(got, tt.expected, 1e-4) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestViewTransform_Degenerate(t *testing.T) {
	tests := []struct {
		name     string
		from, to Tuple
		up       Tuple
	}{
		{"eye at target", Point(1, 2, 3), Point(1, 2, 3), Vector(0, 1, 0)},
		{"zero up", Point(0, 0, 0), Point(0, 0, -1), Vector(0, 0, 0)},
		{"up parallel to view", Point(0, 0, 0), Point(0, 5, 0), Vector(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ViewTransform(tt.from, tt.to, tt.up)
			if !errors.Is(err, ErrDegenerateVector) {
				t.Errorf("Expected ErrDegenerateVector, got %v", err)
			}
		})
	}
}

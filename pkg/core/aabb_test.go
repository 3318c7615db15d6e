package core

import (
	"math"
	"testing"
)

func TestAABB_FromPointsAndUnion(t *testing.T) {
	box := NewAABBFromPoints(Point(-5, 2, 0), Point(7, 0, -3))
	if !box.Min.Equals(Point(-5, 0, -3)) || !box.Max.Equals(Point(7, 2, 0)) {
		t.Errorf("Expected (-5,0,-3)-(7,2,0), got %v-%v", box.Min, box.Max)
	}

	other := NewAABB(Point(8, -7, -2), Point(14, 4, 8))
	union := box.Union(other)
	if !union.Min.Equals(Point(-5, -7, -3)) || !union.Max.Equals(Point(14, 4, 8)) {
		t.Errorf("Expected union (-5,-7,-3)-(14,4,8), got %v-%v", union.Min, union.Max)
	}

	if EmptyAABB().IsValid() {
		t.Error("Empty box should not be valid")
	}
	if got := EmptyAABB().Union(other); got != other {
		t.Errorf("Empty box union should equal the other box, got %v", got)
	}
}

func TestAABB_Contains(t *testing.T) {
	box := NewAABB(Point(5, -2, 0), Point(11, 4, 7))

	points := []struct {
		p        Tuple
		expected bool
	}{
		{Point(5, -2, 0), true},
		{Point(11, 4, 7), true},
		{Point(8, 1, 3), true},
		{Point(3, 0, 3), false},
		{Point(8, -4, 3), false},
		{Point(8, 1, 8), false},
	}
	for _, tt := range points {
		if got := box.ContainsPoint(tt.p); got != tt.expected {
			t.Errorf("ContainsPoint(%v): expected %v, got %v", tt.p, tt.expected, got)
		}
	}

	if !box.ContainsBox(NewAABB(Point(6, -1, 1), Point(10, 3, 6))) {
		t.Error("Expected inner box to be contained")
	}
	if box.ContainsBox(NewAABB(Point(4, -3, -1), Point(10, 3, 6))) {
		t.Error("Expected overlapping box not to be contained")
	}
}

func TestAABB_Transform(t *testing.T) {
	box := NewAABB(Point(-1, -1, -1), Point(1, 1, 1))
	got := box.Transform(RotationX(math.Pi / 4).Multiply(RotationY(math.Pi / 4)))

	expectedMin := Point(-1.41421, -1.70711, -1.70711)
	expectedMax := Point(1.41421, 1.70711, 1.70711)
	for _, pair := range [][2]Tuple{{got.Min, expectedMin}, {got.Max, expectedMax}} {
		if math.Abs(pair[0].X-pair[1].X) > 1e-4 ||
			math.Abs(pair[0].Y-pair[1].Y) > 1e-4 ||
			math.Abs(pair[0].Z-pair[1].Z) > 1e-4 {
			t.Errorf("Expected %v, got %v", pair[1], pair[0])
		}
	}

	plane := NewAABB(Point(math.Inf(-1), 0, math.Inf(-1)), Point(math.Inf(1), 0, math.Inf(1)))
	if moved := plane.Transform(Translation(0, 5, 0)); !moved.IsInfinite() || !moved.IsValid() {
		t.Errorf("Infinite box should stay infinite and valid, got %v", moved)
	}
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(Point(5, -2, 0), Point(11, 4, 7))

	tests := []struct {
		name     string
		ray      Ray
		expected bool
	}{
		{"from -x", NewRay(Point(15, 1, 2), Vector(-1, 0, 0)), true},
		{"from +y", NewRay(Point(8, 6, 5), Vector(0, -1, 0)), true},
		{"from inside", NewRay(Point(7, 1, 3), Vector(0, 0, 1)), true},
		{"diagonal", NewRay(Point(-2, -9, -6.5), Vector(1, 1, 1).MustNormalize()), true},
		{"parallel outside", NewRay(Point(9, -1, -8), Vector(0, 1, 0)), false},
		{"box behind the ray still overlaps its line", NewRay(Point(18, 1, 2), Vector(1, 0, 0)), true},
		{"misses", NewRay(Point(8, 3, -4), Vector(1, 0, 0)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}

	if EmptyAABB().Hit(NewRay(Point(0, 0, 0), Vector(0, 0, 1))) {
		t.Error("Empty box should never be hit")
	}
}

func TestAABB_Split(t *testing.T) {
	tests := []struct {
		name        string
		box         AABB
		left, right AABB
	}{
		{
			name:  "cube splits along x",
			box:   NewAABB(Point(-1, -4, -5), Point(9, 6, 5)),
			left:  NewAABB(Point(-1, -4, -5), Point(4, 6, 5)),
			right: NewAABB(Point(4, -4, -5), Point(9, 6, 5)),
		},
		{
			name:  "tall box splits along y",
			box:   NewAABB(Point(-1, -2, -3), Point(5, 8, 3)),
			left:  NewAABB(Point(-1, -2, -3), Point(5, 3, 3)),
			right: NewAABB(Point(-1, 3, -3), Point(5, 8, 3)),
		},
		{
			name:  "deep box splits along z",
			box:   NewAABB(Point(-1, -2, -3), Point(5, 3, 7)),
			left:  NewAABB(Point(-1, -2, -3), Point(5, 3, 2)),
			right: NewAABB(Point(-1, -2, 2), Point(5, 3, 7)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := tt.box.Split()
			if left != tt.left || right != tt.right {
				t.Errorf("Expected %v / %v, got %v / %v", tt.left, tt.right, left, right)
			}
		})
	}
}

package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// tupleNear compares tuples with a tolerance suited to values rounded to 4-5 places
func tupleNear(a, b core.Tuple, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance &&
		math.Abs(a.W-b.W) <= tolerance
}

// mustTransform sets a transform that is known to be invertible
func mustTransform(t *testing.T, s Shape, m core.Matrix) {
	t.Helper()
	if err := s.SetTransform(m); err != nil {
		t.Fatalf("SetTransform returned error: %v", err)
	}
}

// ts extracts the t values of xs
func ts(xs Intersections) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x.T
	}
	return out
}

func checkTs(t *testing.T, xs Intersections, expected ...float64) {
	t.Helper()
	if len(xs) != len(expected) {
		t.Fatalf("Expected %d intersections %v, got %d: %v", len(expected), expected, len(xs), ts(xs))
	}
	for i, want := range expected {
		if math.Abs(xs[i].T-want) > 1e-4 {
			t.Errorf("Intersection %d: expected t=%v, got %v", i, want, xs[i].T)
		}
	}
}

func TestShape_Defaults(t *testing.T) {
	s := NewSphere()

	if !s.Transform().Equals(core.Identity()) {
		t.Errorf("Expected identity transform, got %v", s.Transform())
	}
	if s.Material() != material.DefaultMaterial() {
		t.Errorf("Expected default material, got %+v", s.Material())
	}
	if s.Parent() != nil {
		t.Error("Expected no parent")
	}
}

func TestShape_SetTransformRejectsSingular(t *testing.T) {
	s := NewSphere()
	mustTransform(t, s, core.Translation(2, 3, 4))

	err := s.SetTransform(core.Scaling(0, 1, 1))
	if !errors.Is(err, core.ErrNotInvertible) {
		t.Fatalf("Expected ErrNotInvertible, got %v", err)
	}
	if !s.Transform().Equals(core.Translation(2, 3, 4)) {
		t.Error("A rejected transform should leave the shape unchanged")
	}
}

func TestIntersect_TransformedSphere(t *testing.T) {
	r := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))

	scaled := NewSphere()
	mustTransform(t, scaled, core.Scaling(2, 2, 2))
	checkTs(t, Intersect(scaled, r), 3, 7)

	translated := NewSphere()
	mustTransform(t, translated, core.Translation(5, 0, 0))
	checkTs(t, Intersect(translated, r))
}

func TestNormalAt_TransformedSphere(t *testing.T) {
	s := math.Sqrt2 / 2

	translated := NewSphere()
	mustTransform(t, translated, core.Translation(0, 1, 0))
	got := NormalAt(translated, core.Point(0, 1.70711, -0.70711), Intersection{})
	if !tupleNear(got, core.Vector(0, 0.70711, -0.70711), 1e-4) {
		t.Errorf("Translated sphere: expected (0, 0.70711, -0.70711), got %v", got)
	}

	transformed := NewSphere()
	mustTransform(t, transformed, core.Scaling(1, 0.5, 1).Multiply(core.RotationZ(math.Pi/5)))
	got = NormalAt(transformed, core.Point(0, s, -s), Intersection{})
	if !tupleNear(got, core.Vector(0, 0.97014, -0.24254), 1e-4) {
		t.Errorf("Scaled and rotated sphere: expected (0, 0.97014, -0.24254), got %v", got)
	}
	if !got.IsVector() {
		t.Errorf("Normal must be a vector, got w=%v", got.W)
	}
}

// nestedSphere builds a sphere inside two transformed groups
func nestedSphere(t *testing.T) *Sphere {
	g1 := NewGroup()
	mustTransform(t, g1, core.RotationY(math.Pi/2))
	g2 := NewGroup()
	mustTransform(t, g2, core.Scaling(1, 2, 3))
	g1.AddChild(g2)
	s := NewSphere()
	mustTransform(t, s, core.Translation(5, 0, 0))
	g2.AddChild(s)
	return s
}

func TestWorldToObject_ThroughGroups(t *testing.T) {
	g1 := NewGroup()
	mustTransform(t, g1, core.RotationY(math.Pi/2))
	g2 := NewGroup()
	mustTransform(t, g2, core.Scaling(2, 2, 2))
	g1.AddChild(g2)
	s := NewSphere()
	mustTransform(t, s, core.Translation(5, 0, 0))
	g2.AddChild(s)

	got := s.WorldToObject(core.Point(-2, 0, -10))
	if !tupleNear(got, core.Point(0, 0, -1), 1e-4) {
		t.Errorf("Expected (0, 0, -1), got %v", got)
	}
}

func TestNormalToWorld_ThroughGroups(t *testing.T) {
	s := nestedSphere(t)
	third := math.Sqrt(3) / 3

	got := s.NormalToWorld(core.Vector(third, third, third))
	if !tupleNear(got, core.Vector(0.2857, 0.4286, -0.8571), 1e-4) {
		t.Errorf("NormalToWorld: expected (0.2857, 0.4286, -0.8571), got %v", got)
	}

	got = NormalAt(s, core.Point(1.7321, 1.1547, -5.5774), Intersection{})
	if !tupleNear(got, core.Vector(0.2857, 0.4286, -0.8571), 1e-4) {
		t.Errorf("NormalAt: expected (0.2857, 0.4286, -0.8571), got %v", got)
	}
}

func TestIncludes(t *testing.T) {
	a := NewSphere()
	b := NewCube()
	c := NewPlane()
	g := NewGroup()
	g.AddChild(a)
	csg := NewCSG(CSGUnion, g, b)

	tests := []struct {
		name      string
		container Shape
		target    Shape
		expected  bool
	}{
		{"primitive includes itself", a, a, true},
		{"primitive excludes others", a, b, false},
		{"group includes child", g, a, true},
		{"csg includes nested child", csg, a, true},
		{"csg includes right operand", csg, b, true},
		{"csg excludes stranger", csg, c, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Includes(tt.container, tt.target); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNormalAt_ConeApex(t *testing.T) {
	c := NewCone()
	mustTransform(t, c, core.Scaling(2, 1, 2))

	if n := NormalAt(c, core.Point(0, 0, 0), Intersection{}); !n.Equals(core.Vector(0, 0, 0)) {
		t.Errorf("Expected a zero normal at the apex, got %v", n)
	}
}

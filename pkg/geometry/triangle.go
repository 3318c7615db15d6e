package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Triangle represents a single flat triangle defined by three vertices
type Triangle struct {
	base
	P1, P2, P3 core.Tuple // The three vertices
	E1, E2     core.Tuple // Edges P2-P1 and P3-P1
	Normal     core.Tuple // Cached face normal
}

// NewTriangle creates a new triangle from three vertices.
// Collinear vertices have no normal and are rejected.
func NewTriangle(p1, p2, p3 core.Tuple) (*Triangle, error) {
	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)

	normal, err := e2.Cross(e1).Normalize()
	if err != nil {
		return nil, fmt.Errorf("degenerate triangle %v %v %v: %w", p1, p2, p3, err)
	}

	return &Triangle{
		base:   newBase(),
		P1:     p1,
		P2:     p2,
		P3:     p3,
		E1:     e1,
		E2:     e2,
		Normal: normal,
	}, nil
}

// LocalIntersect uses the Möller-Trumbore algorithm and records u and v
func (t *Triangle) LocalIntersect(ray core.Ray) Intersections {
	tt, u, v, ok := mollerTrumbore(ray, t.P1, t.E1, t.E2)
	if !ok {
		return nil
	}
	return Intersections{NewIntersectionWithUV(tt, t, u, v)}
}

// mollerTrumbore returns t and the barycentric u, v of the ray's crossing
func mollerTrumbore(ray core.Ray, p1, e1, e2 core.Tuple) (t, u, v float64, ok bool) {
	dirCrossE2 := ray.Direction.Cross(e2)
	det := e1.Dot(dirCrossE2)

	// Ray lies in the plane of the triangle
	if det > -core.Epsilon && det < core.Epsilon {
		return 0, 0, 0, false
	}

	f := 1.0 / det
	p1ToOrigin := ray.Origin.Subtract(p1)
	u = f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	originCrossE1 := p1ToOrigin.Cross(e1)
	v = f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = f * e2.Dot(originCrossE1)
	return t, u, v, true
}

// LocalNormalAt returns the precomputed face normal
func (t *Triangle) LocalNormalAt(point core.Tuple, hit Intersection) core.Tuple {
	return t.Normal
}

// LocalBounds returns the axis-aligned bounding box for this triangle
func (t *Triangle) LocalBounds() core.AABB {
	return core.NewAABBFromPoints(t.P1, t.P2, t.P3)
}

// SmoothTriangle is a triangle with per-vertex normals interpolated across its face
type SmoothTriangle struct {
	base
	P1, P2, P3 core.Tuple
	N1, N2, N3 core.Tuple // Vertex normals
	E1, E2     core.Tuple
}

// NewSmoothTriangle creates a triangle that interpolates the given vertex normals
func NewSmoothTriangle(p1, p2, p3, n1, n2, n3 core.Tuple) (*SmoothTriangle, error) {
	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)
	if e2.Cross(e1).Magnitude() < core.Epsilon {
		return nil, fmt.Errorf("degenerate smooth triangle %v %v %v: %w", p1, p2, p3, core.ErrDegenerateVector)
	}

	return &SmoothTriangle{
		base: newBase(),
		P1:   p1, P2: p2, P3: p3,
		N1: n1, N2: n2, N3: n3,
		E1: e1, E2: e2,
	}, nil
}

// LocalIntersect implements Shape
func (t *SmoothTriangle) LocalIntersect(ray core.Ray) Intersections {
	tt, u, v, ok := mollerTrumbore(ray, t.P1, t.E1, t.E2)
	if !ok {
		return nil
	}
	return Intersections{NewIntersectionWithUV(tt, t, u, v)}
}

// LocalNormalAt blends the vertex normals using the hit's barycentric coordinates
func (t *SmoothTriangle) LocalNormalAt(point core.Tuple, hit Intersection) core.Tuple {
	return t.N2.Multiply(hit.U).
		Add(t.N3.Multiply(hit.V)).
		Add(t.N1.Multiply(1 - hit.U - hit.V))
}

// LocalBounds implements Shape
func (t *SmoothTriangle) LocalBounds() core.AABB {
	return core.NewAABBFromPoints(t.P1, t.P2, t.P3)
}

package geometry

import "sort"

// Intersection records where a ray crossed a shape
type Intersection struct {
	T      float64 // Parameter t along the ray
	Object Shape   // The primitive that was hit
	U, V   float64 // Barycentric coordinates, set for triangles only
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// NewIntersectionWithUV creates an intersection carrying triangle coordinates
func NewIntersectionWithUV(t float64, object Shape, u, v float64) Intersection {
	return Intersection{T: t, Object: object, U: u, V: v}
}

// Intersections is a list of ray hits
type Intersections []Intersection

// Sort orders the intersections by ascending t, in place
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit returns the visible intersection: the one with the lowest non-negative t
func (xs Intersections) Hit() (Intersection, bool) {
	var hit Intersection
	found := false
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < hit.T {
			hit = x
			found = true
		}
	}
	return hit, found
}

package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere is a unit sphere centered at the object-space origin
type Sphere struct {
	base
}

// NewSphere creates a new unit sphere with the default material
func NewSphere() *Sphere {
	return &Sphere{base: newBase()}
}

// NewGlassSphere creates a unit sphere made of clear glass
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.SetMaterial(material.NewGlass())
	return s
}

// LocalIntersect tests if an object-space ray intersects the sphere.
// A tangent ray yields two intersections with the same t.
func (s *Sphere) LocalIntersect(ray core.Ray) Intersections {
	// Vector from sphere center to ray origin
	sphereToRay := ray.Origin.Subtract(core.Point(0, 0, 0))

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return Intersections{
		NewIntersection(t1, s),
		NewIntersection(t2, s),
	}
}

// LocalNormalAt returns the outward normal, which for a unit sphere is the point itself
func (s *Sphere) LocalNormalAt(point core.Tuple, hit Intersection) core.Tuple {
	return point.Subtract(core.Point(0, 0, 0))
}

// LocalBounds returns the axis-aligned bounding box for this sphere
func (s *Sphere) LocalBounds() core.AABB {
	return core.NewAABB(core.Point(-1, -1, -1), core.Point(1, 1, 1))
}

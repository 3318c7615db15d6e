package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane is the infinite xz plane (y = 0) in object space
type Plane struct {
	base
}

// NewPlane creates a new plane
func NewPlane() *Plane {
	return &Plane{base: newBase()}
}

// LocalIntersect tests if an object-space ray crosses the plane
func (p *Plane) LocalIntersect(ray core.Ray) Intersections {
	// Parallel or coplanar rays never register a hit
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}

	t := -ray.Origin.Y / ray.Direction.Y
	return Intersections{NewIntersection(t, p)}
}

// LocalNormalAt returns the plane normal, which is constant
func (p *Plane) LocalNormalAt(point core.Tuple, hit Intersection) core.Tuple {
	return core.Vector(0, 1, 0)
}

// LocalBounds returns a box unbounded in x and z
func (p *Plane) LocalBounds() core.AABB {
	inf := math.Inf(1)
	return core.NewAABB(core.Point(-inf, 0, -inf), core.Point(inf, 0, inf))
}

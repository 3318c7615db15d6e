package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cube is an axis-aligned box spanning -1 to 1 on every axis in object space
type Cube struct {
	base
}

// NewCube creates a new cube
func NewCube() *Cube {
	return &Cube{base: newBase()}
}

// LocalIntersect tests the ray against the six faces using the slab method
func (c *Cube) LocalIntersect(ray core.Ray) Intersections {
	tMin, tMax, ok := c.LocalBounds().Intersect(ray)
	if !ok {
		return nil
	}
	return Intersections{
		NewIntersection(tMin, c),
		NewIntersection(tMax, c),
	}
}

// LocalNormalAt picks the face whose axis has the largest absolute component
func (c *Cube) LocalNormalAt(point core.Tuple, hit Intersection) core.Tuple {
	absX, absY, absZ := math.Abs(point.X), math.Abs(point.Y), math.Abs(point.Z)
	maxc := math.Max(absX, math.Max(absY, absZ))

	switch maxc {
	case absX:
		return core.Vector(point.X, 0, 0)
	case absY:
		return core.Vector(0, point.Y, 0)
	default:
		return core.Vector(0, 0, point.Z)
	}
}

// LocalBounds returns the cube itself
func (c *Cube) LocalBounds() core.AABB {
	return core.NewAABB(core.Point(-1, -1, -1), core.Point(1, 1, 1))
}

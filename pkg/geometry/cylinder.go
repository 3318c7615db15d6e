package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cylinder is a radius-1 cylinder around the y axis, truncated to
// (Minimum, Maximum) and optionally closed with flat caps
type Cylinder struct {
	base
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an infinitely long, open cylinder
func NewCylinder() *Cylinder {
	return &Cylinder{
		base:    newBase(),
		Minimum: math.Inf(-1),
		Maximum: math.Inf(1),
	}
}

// NewTruncatedCylinder creates a cylinder between minimum and maximum (exclusive)
func NewTruncatedCylinder(minimum, maximum float64, closed bool) (*Cylinder, error) {
	if minimum > maximum {
		return nil, fmt.Errorf("cylinder minimum %g is above maximum %g", minimum, maximum)
	}
	c := NewCylinder()
	c.Minimum = minimum
	c.Maximum = maximum
	c.Closed = closed
	return c, nil
}

// LocalIntersect tests the ray against the lateral surface and, if closed, the caps
func (c *Cylinder) LocalIntersect(ray core.Ray) Intersections {
	var xs Intersections

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z

	// a ≈ 0 means the ray is parallel to the y axis and can only hit the caps
	if math.Abs(a) >= core.Epsilon {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		discriminant := b*b - 4*a*cc
		if discriminant < 0 {
			return nil
		}

		sqrtD := math.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		for _, t := range [2]float64{t0, t1} {
			y := ray.Origin.Y + t*ray.Direction.Y
			if c.Minimum < y && y < c.Maximum {
				xs = append(xs, NewIntersection(t, c))
			}
		}
	}

	return append(xs, c.intersectCaps(ray)...)
}

// intersectCaps checks the two end disks of a closed cylinder
func (c *Cylinder) intersectCaps(ray core.Ray) Intersections {
	if !c.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}

	var xs Intersections
	for _, capY := range [2]float64{c.Minimum, c.Maximum} {
		t := (capY - ray.Origin.Y) / ray.Direction.Y
		if withinCap(ray, t, 1) {
			xs = append(xs, NewIntersection(t, c))
		}
	}
	return xs
}

// withinCap reports whether the ray at t lies inside a disk of the given radius
func withinCap(ray core.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius*radius+core.Epsilon
}

// LocalNormalAt returns the cap normal on the end disks, radial otherwise
func (c *Cylinder) LocalNormalAt(point core.Tuple, hit Intersection) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < 1 && point.Y >= c.Maximum-core.Epsilon {
		return core.Vector(0, 1, 0)
	}
	if dist < 1 && point.Y <= c.Minimum+core.Epsilon {
		return core.Vector(0, -1, 0)
	}
	return core.Vector(point.X, 0, point.Z)
}

// LocalBounds returns the axis-aligned bounding box for this cylinder
func (c *Cylinder) LocalBounds() core.AABB {
	return core.NewAABB(core.Point(-1, c.Minimum, -1), core.Point(1, c.Maximum, 1))
}

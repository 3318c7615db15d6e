package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cone is a double-napped cone around the y axis with its apex at the origin.
// The radius at height y is |y|. It can be truncated and capped like a cylinder.
type Cone struct {
	base
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates an infinite, open double cone
func NewCone() *Cone {
	return &Cone{
		base:    newBase(),
		Minimum: math.Inf(-1),
		Maximum: math.Inf(1),
	}
}

// NewTruncatedCone creates a cone between minimum and maximum
func NewTruncatedCone(minimum, maximum float64, closed bool) (*Cone, error) {
	if minimum > maximum {
		return nil, fmt.Errorf("cone minimum %g is above maximum %g", minimum, maximum)
	}
	c := NewCone()
	c.Minimum = minimum
	c.Maximum = maximum
	c.Closed = closed
	return c, nil
}

// LocalIntersect tests the ray against both nappes and, if closed, the caps
func (c *Cone) LocalIntersect(ray core.Ray) Intersections {
	var xs Intersections

	o, d := ray.Origin, ray.Direction
	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	cc := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	switch {
	case math.Abs(a) < core.Epsilon && math.Abs(b) < core.Epsilon:
		// Ray misses the sides entirely
	case math.Abs(a) < core.Epsilon:
		// Parallel to one of the nappes: a single intersection
		t := -cc / (2 * b)
		xs = c.appendIfInRange(xs, ray, t)
	default:
		discriminant := b*b - 4*a*cc
		if discriminant >= 0 {
			sqrtD := math.Sqrt(discriminant)
			t0 := (-b - sqrtD) / (2 * a)
			t1 := (-b + sqrtD) / (2 * a)
			if t0 > t1 {
				t0, t1 = t1, t0
			}
			xs = c.appendIfInRange(xs, ray, t0)
			xs = c.appendIfInRange(xs, ray, t1)
		}
	}

	return append(xs, c.intersectCaps(ray)...)
}

func (c *Cone) appendIfInRange(xs Intersections, ray core.Ray, t float64) Intersections {
	y := ray.Origin.Y + t*ray.Direction.Y
	if c.Minimum < y && y < c.Maximum {
		return append(xs, NewIntersection(t, c))
	}
	return xs
}

// intersectCaps checks the end disks; each cap's radius equals |y| at that end
func (c *Cone) intersectCaps(ray core.Ray) Intersections {
	if !c.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}

	var xs Intersections
	for _, capY := range [2]float64{c.Minimum, c.Maximum} {
		t := (capY - ray.Origin.Y) / ray.Direction.Y
		if withinCap(ray, t, math.Abs(capY)) {
			xs = append(xs, NewIntersection(t, c))
		}
	}
	return xs
}

// LocalNormalAt returns the cap normal on the end disks, the slanted side normal otherwise
func (c *Cone) LocalNormalAt(point core.Tuple, hit Intersection) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if point.Y >= c.Maximum-core.Epsilon && dist < c.Maximum*c.Maximum {
		return core.Vector(0, 1, 0)
	}
	if point.Y <= c.Minimum+core.Epsilon && dist < c.Minimum*c.Minimum {
		return core.Vector(0, -1, 0)
	}

	y := math.Sqrt(dist)
	if point.Y > 0 {
		y = -y
	}
	return core.Vector(point.X, y, point.Z)
}

// LocalBounds returns the axis-aligned bounding box for this cone
func (c *Cone) LocalBounds() core.AABB {
	limit := math.Max(math.Abs(c.Minimum), math.Abs(c.Maximum))
	return core.NewAABB(core.Point(-limit, c.Minimum, -limit), core.Point(limit, c.Maximum, limit))
}

package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Tuple // Minimum corner
	Max Tuple // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Tuple) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns a box that contains nothing; adding any point makes it valid
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: Point(inf, inf, inf),
		Max: Point(-inf, -inf, -inf),
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Tuple) AABB {
	box := EmptyAABB()
	for _, point := range points {
		box = box.AddPoint(point)
	}
	return box
}

// AddPoint returns the box grown to include point
func (aabb AABB) AddPoint(point Tuple) AABB {
	return AABB{
		Min: Point(math.Min(aabb.Min.X, point.X), math.Min(aabb.Min.Y, point.Y), math.Min(aabb.Min.Z, point.Z)),
		Max: Point(math.Max(aabb.Max.X, point.X), math.Max(aabb.Max.Y, point.Y), math.Max(aabb.Max.Z, point.Z)),
	}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return aabb.AddPoint(other.Min).AddPoint(other.Max)
}

// ContainsPoint reports whether point lies inside the box (inclusive)
func (aabb AABB) ContainsPoint(point Tuple) bool {
	return point.X >= aabb.Min.X && point.X <= aabb.Max.X &&
		point.Y >= aabb.Min.Y && point.Y <= aabb.Max.Y &&
		point.Z >= aabb.Min.Z && point.Z <= aabb.Max.Z
}

// ContainsBox reports whether other lies entirely inside this box
func (aabb AABB) ContainsBox(other AABB) bool {
	return aabb.ContainsPoint(other.Min) && aabb.ContainsPoint(other.Max)
}

// InfiniteAABB returns a box that contains every point
func InfiniteAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: Point(-inf, -inf, -inf),
		Max: Point(inf, inf, inf),
	}
}

// IsInfinite reports whether any bound is unbounded
func (aabb AABB) IsInfinite() bool {
	for _, v := range []float64{aabb.Min.X, aabb.Min.Y, aabb.Min.Z, aabb.Max.X, aabb.Max.Y, aabb.Max.Z} {
		if math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

// Transform returns the axis-aligned box bounding all eight transformed corners.
// Unbounded boxes stay unbounded in every direction.
func (aabb AABB) Transform(m Matrix) AABB {
	if !aabb.IsValid() {
		return aabb
	}
	if aabb.IsInfinite() {
		return InfiniteAABB()
	}

	corners := [8]Tuple{
		aabb.Min,
		Point(aabb.Min.X, aabb.Min.Y, aabb.Max.Z),
		Point(aabb.Min.X, aabb.Max.Y, aabb.Min.Z),
		Point(aabb.Min.X, aabb.Max.Y, aabb.Max.Z),
		Point(aabb.Max.X, aabb.Min.Y, aabb.Min.Z),
		Point(aabb.Max.X, aabb.Min.Y, aabb.Max.Z),
		Point(aabb.Max.X, aabb.Max.Y, aabb.Min.Z),
		aabb.Max,
	}

	box := EmptyAABB()
	for _, corner := range corners {
		box = box.AddPoint(m.MultiplyTuple(corner))
	}
	return box
}

// Hit tests if a ray intersects with this AABB using the slab method
func (aabb AABB) Hit(ray Ray) bool {
	_, _, ok := aabb.Intersect(ray)
	return ok
}

// Intersect returns the entry and exit t of the ray through the box
func (aabb AABB) Intersect(ray Ray) (float64, float64, bool) {
	if !aabb.IsValid() {
		return 0, 0, false
	}

	xMin, xMax := slab(ray.Origin.X, ray.Direction.X, aabb.Min.X, aabb.Max.X)
	yMin, yMax := slab(ray.Origin.Y, ray.Direction.Y, aabb.Min.Y, aabb.Max.Y)
	zMin, zMax := slab(ray.Origin.Z, ray.Direction.Z, aabb.Min.Z, aabb.Max.Z)

	tMin := math.Max(xMin, math.Max(yMin, zMin))
	tMax := math.Min(xMax, math.Min(yMax, zMax))
	if tMin > tMax {
		return 0, 0, false
	}
	return tMin, tMax, true
}

// slab returns the entry and exit t for one axis. Infinite bounds are allowed.
func slab(origin, direction, min, max float64) (float64, float64) {
	if math.Abs(direction) < Epsilon {
		// Parallel to the slab: either always inside or never
		if origin < min || origin > max {
			return math.Inf(1), math.Inf(-1)
		}
		return math.Inf(-1), math.Inf(1)
	}

	t1 := (min - origin) / direction
	t2 := (max - origin) / direction

	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return t1, t2
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Max.Subtract(aabb.Min)
	if size.X >= size.Y && size.X >= size.Z {
		return 0 // X axis
	}
	if size.Y >= size.Z {
		return 1 // Y axis
	}
	return 2 // Z axis
}

// Split divides the box in half along its longest axis
func (aabb AABB) Split() (AABB, AABB) {
	x0, y0, z0 := aabb.Min.X, aabb.Min.Y, aabb.Min.Z
	x1, y1, z1 := aabb.Max.X, aabb.Max.Y, aabb.Max.Z

	switch aabb.LongestAxis() {
	case 0:
		mid := x0 + (x1-x0)/2
		x0, x1 = mid, mid
	case 1:
		mid := y0 + (y1-y0)/2
		y0, y1 = mid, mid
	default:
		mid := z0 + (z1-z0)/2
		z0, z1 = mid, mid
	}

	left := NewAABB(aabb.Min, Point(x1, y1, z1))
	right := NewAABB(Point(x0, y0, z0), aabb.Max)
	return left, right
}

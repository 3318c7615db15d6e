package geometry

import (
	"github.com/samber/lo"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Operation selects how a CSG shape combines its operands
type Operation int

const (
	CSGUnion Operation = iota
	CSGIntersection
	CSGDifference
)

func (op Operation) String() string {
	switch op {
	case CSGUnion:
		return "union"
	case CSGIntersection:
		return "intersection"
	case CSGDifference:
		return "difference"
	default:
		return "unknown"
	}
}

// CSG combines two shapes with a boolean operation
type CSG struct {
	base
	Operation Operation
	left      Shape
	right     Shape
	bounds    core.AABB
}

// NewCSG creates a CSG shape that owns left and right. Operands held by a group
// are moved out of it. Using the same shape twice, or a shape that is already
// a CSG operand, panics.
func NewCSG(op Operation, left, right Shape) *CSG {
	if left == right {
		panic("geometry: CSG operands must be distinct shapes")
	}
	c := &CSG{
		base:      newBase(),
		Operation: op,
		left:      left,
		right:     right,
	}
	for _, operand := range []Shape{left, right} {
		checkAdoptable(c, operand)
	}
	for _, operand := range []Shape{left, right} {
		detach(operand)
		operand.setParent(c)
	}
	c.boundsChanged()
	return c
}

// Left returns the left operand
func (c *CSG) Left() Shape {
	return c.left
}

// Right returns the right operand
func (c *CSG) Right() Shape {
	return c.right
}

func (c *CSG) boundsChanged() {
	c.bounds = ParentSpaceBounds(c.left).Union(ParentSpaceBounds(c.right))
	if c.parent != nil {
		c.parent.boundsChanged()
	}
}

// IntersectionAllowed decides whether a hit on one operand is part of the
// combined surface. lhit is true when the left operand was hit, inl and inr
// say whether the ray is currently inside the left and right operands.
func IntersectionAllowed(op Operation, lhit, inl, inr bool) bool {
	switch op {
	case CSGUnion:
		return (lhit && !inr) || (!lhit && !inl)
	case CSGIntersection:
		return (lhit && inr) || (!lhit && inl)
	case CSGDifference:
		return (lhit && !inr) || (!lhit && inl)
	default:
		return false
	}
}

// filterIntersections keeps the hits that change membership of the combined
// solid. xs must be sorted.
func (c *CSG) filterIntersections(xs Intersections) Intersections {
	inl, inr := false, false

	return lo.Filter(xs, func(x Intersection, _ int) bool {
		lhit := Includes(c.left, x.Object)
		allowed := IntersectionAllowed(c.Operation, lhit, inl, inr)

		if lhit {
			inl = !inl
		} else {
			inr = !inr
		}
		return allowed
	})
}

// LocalIntersect intersects both operands and filters the merged, sorted list
func (c *CSG) LocalIntersect(ray core.Ray) Intersections {
	if !c.bounds.Hit(ray) {
		return nil
	}

	xs := append(Intersect(c.left, ray), Intersect(c.right, ray)...)
	xs.Sort()
	return c.filterIntersections(xs)
}

// LocalNormalAt is never valid: rays only ever hit a CSG's primitives
func (c *CSG) LocalNormalAt(point core.Tuple, hit Intersection) core.Tuple {
	panic("geometry: LocalNormalAt called on a CSG")
}

// LocalBounds returns the union of both operands' bounds
func (c *CSG) LocalBounds() core.AABB {
	return c.bounds
}

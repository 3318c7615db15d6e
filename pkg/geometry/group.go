package geometry

import (
	"github.com/samber/lo"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Group is a collection of shapes transformed as one unit. The group owns its
// children; each child points back at the group only to resolve transforms.
type Group struct {
	base
	children []Shape
	bounds   core.AABB // Union of the children's bounds, in group space
}

// NewGroup creates an empty group
func NewGroup() *Group {
	return &Group{base: newBase(), bounds: core.EmptyAABB()}
}

// Children returns the group's children in insertion order
func (g *Group) Children() []Shape {
	return g.children
}

// AddChild appends shapes to the group and makes the group their parent.
// A shape that already belongs to another group is moved out of it.
// Adding the group to itself or to one of its descendants panics, as does
// adding a shape that is a CSG operand.
func (g *Group) AddChild(children ...Shape) {
	for _, child := range children {
		checkAdoptable(g, child)
	}
	for _, child := range children {
		detach(child)
		child.setParent(g)
		g.children = append(g.children, child)
	}
	g.boundsChanged()
}

// checkAdoptable panics if owner may not take child: a shape can have only one
// owner and can never end up containing itself
func checkAdoptable(owner, child Shape) {
	for s := owner; s != nil; s = s.Parent() {
		if s == child {
			panic("geometry: shape would contain itself")
		}
	}
	if _, ok := child.Parent().(*CSG); ok {
		panic("geometry: shape is already a CSG operand")
	}
}

// detach removes child from the group currently holding it
func detach(child Shape) {
	old, ok := child.Parent().(*Group)
	if !ok {
		return
	}
	child.setParent(nil)

	idx := lo.IndexOf(old.children, child)
	if idx < 0 {
		return
	}
	old.children = append(old.children[:idx:idx], old.children[idx+1:]...)
	old.boundsChanged()
}

// boundsChanged recomputes the cached bounds and notifies the parent.
// It runs only while the scene is being assembled.
func (g *Group) boundsChanged() {
	box := core.EmptyAABB()
	for _, child := range g.children {
		box = box.Union(ParentSpaceBounds(child))
	}
	g.bounds = box

	if g.parent != nil {
		g.parent.boundsChanged()
	}
}

// LocalIntersect intersects every child, skipping all of them when the ray misses
// the group's bounds. The result is not sorted.
func (g *Group) LocalIntersect(ray core.Ray) Intersections {
	if !g.bounds.Hit(ray) {
		return nil
	}

	var xs Intersections
	for _, child := range g.children {
		xs = append(xs, Intersect(child, ray)...)
	}
	return xs
}

// LocalNormalAt is never valid: rays only ever hit a group's primitives
func (g *Group) LocalNormalAt(point core.Tuple, hit Intersection) core.Tuple {
	panic("geometry: LocalNormalAt called on a Group")
}

// LocalBounds returns the union of the children's bounds
func (g *Group) LocalBounds() core.AABB {
	return g.bounds
}

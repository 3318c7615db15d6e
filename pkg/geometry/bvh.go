package geometry

import (
	"github.com/samber/lo"
)

// Divide builds a bounding volume hierarchy inside the group. Children are
// split by the halves of the group's bounds; any child that fits entirely in
// one half moves into a new sub-group for that half. Groups with fewer than
// threshold children are left alone, but their descendants are still divided.
func (g *Group) Divide(threshold int) {
	if threshold <= len(g.children) {
		left, right := g.partitionChildren()
		if len(left) > 0 {
			g.makeSubgroup(left)
		}
		if len(right) > 0 {
			g.makeSubgroup(right)
		}
	}

	for _, child := range g.children {
		if d, ok := child.(Divider); ok {
			d.Divide(threshold)
		}
	}
}

// partitionChildren removes and returns the children that fit in each half of
// the group's bounds. Children straddling the split stay in the group.
func (g *Group) partitionChildren() (left, right []Shape) {
	if g.bounds.IsInfinite() || !g.bounds.IsValid() {
		return nil, nil
	}
	leftBox, rightBox := g.bounds.Split()

	left, rest := lo.FilterReject(g.children, func(child Shape, _ int) bool {
		return leftBox.ContainsBox(ParentSpaceBounds(child))
	})
	right, rest = lo.FilterReject(rest, func(child Shape, _ int) bool {
		return rightBox.ContainsBox(ParentSpaceBounds(child))
	})

	g.children = rest
	return left, right
}

// makeSubgroup wraps shapes in a new child group
func (g *Group) makeSubgroup(shapes []Shape) {
	sub := NewGroup()
	sub.AddChild(shapes...)
	g.AddChild(sub)
}

// Divide divides both operands of the CSG
func (c *CSG) Divide(threshold int) {
	for _, operand := range []Shape{c.left, c.right} {
		if d, ok := operand.(Divider); ok {
			d.Divide(threshold)
		}
	}
}

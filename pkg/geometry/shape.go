package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// base holds the state shared by every shape. The parent pointer is a
// back-reference only; parents own their children, never the reverse.
type base struct {
	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
	material         material.Material
	parent           Shape
}

func newBase() base {
	return base{
		transform:        core.Identity(),
		inverse:          core.Identity(),
		inverseTranspose: core.Identity(),
		material:         material.DefaultMaterial(),
	}
}

// Transform returns the object-to-parent transform
func (b *base) Transform() core.Matrix {
	return b.transform
}

// Inverse returns the cached inverse of the transform
func (b *base) Inverse() core.Matrix {
	return b.inverse
}

// SetTransform replaces the transform. Singular matrices are rejected so the
// shape is never left without a usable inverse.
func (b *base) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("shape transform: %w", err)
	}
	b.transform = m
	b.inverse = inv
	b.inverseTranspose = inv.Transpose()
	if b.parent != nil {
		b.parent.boundsChanged()
	}
	return nil
}

// Material returns the surface material
func (b *base) Material() material.Material {
	return b.material
}

// SetMaterial replaces the surface material
func (b *base) SetMaterial(m material.Material) {
	b.material = m
}

// Parent returns the containing group or CSG, or nil
func (b *base) Parent() Shape {
	return b.parent
}

func (b *base) setParent(parent Shape) {
	b.parent = parent
}

// boundsChanged is a no-op for primitives; composites override it
func (b *base) boundsChanged() {}

// WorldToObject implements Shape
func (b *base) WorldToObject(point core.Tuple) core.Tuple {
	if b.parent != nil {
		point = b.parent.WorldToObject(point)
	}
	return b.inverse.MultiplyTuple(point)
}

// NormalToWorld implements Shape
func (b *base) NormalToWorld(normal core.Tuple) core.Tuple {
	normal = b.inverseTranspose.MultiplyTuple(normal)
	normal.W = 0
	normal, err := normal.Normalize()
	if err != nil {
		// A cone apex has no defined normal; it stays zero
		return core.Vector(0, 0, 0)
	}

	if b.parent != nil {
		normal = b.parent.NormalToWorld(normal)
	}
	return normal
}

// Intersect transforms a world (or parent-space) ray into the shape's space and intersects it
func Intersect(s Shape, ray core.Ray) Intersections {
	return s.LocalIntersect(ray.Transform(s.Inverse()))
}

// NormalAt returns the world-space surface normal at a world-space point
func NormalAt(s Shape, worldPoint core.Tuple, hit Intersection) core.Tuple {
	localPoint := s.WorldToObject(worldPoint)
	localNormal := s.LocalNormalAt(localPoint, hit)
	return s.NormalToWorld(localNormal)
}

// ParentSpaceBounds returns the shape's bounding box in its parent's space
func ParentSpaceBounds(s Shape) core.AABB {
	return s.LocalBounds().Transform(s.Transform())
}

// Includes reports whether target is container itself or one of its descendants
func Includes(container, target Shape) bool {
	switch c := container.(type) {
	case *Group:
		for _, child := range c.children {
			if Includes(child, target) {
				return true
			}
		}
		return false
	case *CSG:
		return Includes(c.left, target) || Includes(c.right, target)
	default:
		return container == target
	}
}

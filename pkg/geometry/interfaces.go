package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Shape is any object a ray can hit. The set of implementations is closed:
// Sphere, Plane, Cube, Cylinder, Cone, Triangle, SmoothTriangle, Group and CSG.
//
// LocalIntersect and LocalNormalAt work in object space; use Intersect and
// NormalAt for world-space queries.
type Shape interface {
	Transform() core.Matrix
	Inverse() core.Matrix
	SetTransform(m core.Matrix) error
	Material() material.Material
	SetMaterial(m material.Material)
	Parent() Shape

	// WorldToObject converts a world point into this shape's space, through all parents
	WorldToObject(point core.Tuple) core.Tuple
	// NormalToWorld converts an object-space normal to world space, through all parents
	NormalToWorld(normal core.Tuple) core.Tuple

	LocalIntersect(ray core.Ray) Intersections
	LocalNormalAt(point core.Tuple, hit Intersection) core.Tuple
	// LocalBounds returns the bounding box in object space
	LocalBounds() core.AABB

	setParent(parent Shape)
	boundsChanged()
}

// Divider is implemented by composite shapes that can be partitioned into a hierarchy
type Divider interface {
	Divide(threshold int)
}

package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates three spheres resting on a checkered, slightly reflective floor
func NewDefaultScene() (*Preset, error) {
	b := newBuilder()

	floor := matte(core.White)
	floor.Pattern = b.pattern(material.Checkers(core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.35, 0.35, 0.4)),
		core.Scaling(0.75, 0.75, 0.75))
	floor.Reflective = 0.15
	b.add(geometry.NewPlane(), core.Identity(), floor)

	// Large center sphere, slightly reflective
	middle := material.DefaultMaterial()
	middle.Color = core.NewColor(0.1, 1, 0.5)
	middle.Diffuse = 0.7
	middle.Specular = 0.3
	middle.Reflective = 0.1
	b.add(geometry.NewSphere(), core.Translation(-0.5, 1, 0.5), middle)

	// Small glass sphere on the right
	b.add(geometry.NewSphere(),
		core.Chain(core.Scaling(0.5, 0.5, 0.5), core.Translation(1.5, 0.5, -0.5)),
		glass(material.Glass))

	// Smallest sphere on the left, striped
	left := material.DefaultMaterial()
	left.Pattern = b.pattern(material.Stripes(core.NewColor(1, 0.8, 0.1), core.NewColor(0.8, 0.3, 0.1)),
		core.Chain(core.Scaling(0.2, 0.2, 0.2), core.RotationZ(math.Pi/4)))
	left.Diffuse = 0.7
	left.Specular = 0.3
	b.add(geometry.NewSphere(),
		core.Chain(core.Scaling(0.33, 0.33, 0.33), core.Translation(-1.5, 0.33, -0.75)),
		left)

	b.world.AddLight(lights.NewPointLight(core.Point(-10, 10, -10), core.White))

	return b.finish(standardView(core.Point(0, 1.5, -5), core.Point(0, 1, 0)))
}

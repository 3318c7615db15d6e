package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewPatternScene shows every pattern type, including patterns nested inside
// other patterns and patterns with their own transforms
func NewPatternScene() (*Preset, error) {
	b := newBuilder()

	// Floor: checkers whose squares are themselves stripes, one set rotated
	floor := matte(core.White)
	floor.Pattern = material.NewCheckersPattern(
		b.pattern(material.Stripes(core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.6, 0.6, 0.6)), core.Scaling(0.25, 0.25, 0.25)),
		b.pattern(material.Stripes(core.NewColor(0.3, 0.5, 0.3), core.NewColor(0.2, 0.3, 0.2)),
			core.Chain(core.Scaling(0.25, 0.25, 0.25), core.RotationY(math.Pi/2))),
	)
	b.add(geometry.NewPlane(), core.Identity(), floor)

	// Blended crossing stripes on the back wall
	wall := matte(core.White)
	wall.Pattern = material.NewBlendedPattern(
		b.pattern(material.Stripes(core.NewColor(0.9, 0.4, 0.4), core.White), core.Scaling(0.5, 0.5, 0.5)),
		b.pattern(material.Stripes(core.NewColor(0.4, 0.4, 0.9), core.White),
			core.Chain(core.Scaling(0.5, 0.5, 0.5), core.RotationY(math.Pi/2))),
	)
	b.add(geometry.NewPlane(), core.Chain(core.RotationX(math.Pi/2), core.Translation(0, 0, 8)), wall)

	// Gradient across a sphere; the pattern spans the sphere's diameter
	gradient := material.DefaultMaterial()
	gradient.Pattern = b.pattern(
		material.NewGradientPattern(material.NewSolidColor(core.NewColor(1, 0.2, 0.2)), material.NewSolidColor(core.NewColor(0.2, 0.2, 1))),
		core.Chain(core.Scaling(2.01, 1, 1), core.Translation(-1.005, 0, 0)))
	b.add(geometry.NewSphere(), core.Translation(-2.2, 1, 0.5), gradient)

	// Rings seen from above on a squat cylinder
	rings := material.DefaultMaterial()
	rings.Pattern = b.pattern(material.NewRingPattern(
		material.NewSolidColor(core.NewColor(0.55, 0.35, 0.15)),
		material.NewSolidColor(core.NewColor(0.8, 0.6, 0.35))),
		core.Scaling(0.15, 0.15, 0.15))
	rings.Specular = 0.2
	trunk, err := geometry.NewTruncatedCylinder(0, 1, true)
	b.check(err)
	if trunk != nil {
		b.add(trunk, core.Translation(0, 0, 1.5), rings)
	}

	// Checkered cube, slightly reflective
	cube := material.DefaultMaterial()
	cube.Pattern = b.pattern(material.Checkers(core.NewColor(0.1, 0.6, 0.3), core.NewColor(0.95, 0.95, 0.8)),
		core.Scaling(0.5, 0.5, 0.5))
	cube.Reflective = 0.2
	b.add(geometry.NewCube(),
		core.Chain(core.Scaling(0.7, 0.7, 0.7), core.RotationY(math.Pi/5), core.Translation(2.2, 0.7, 0.5)), cube)

	b.world.AddLight(lights.NewPointLight(core.Point(-6, 10, -8), core.White))

	return b.finish(standardView(core.Point(0, 3, -6.5), core.Point(0, 0.8, 0.5)))
}

package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewCylinderScene creates capped, open and tilted cylinders on a gray floor
func NewCylinderScene() (*Preset, error) {
	b := newBuilder()
	b.add(geometry.NewPlane(), core.Identity(), matte(core.NewColor(0.5, 0.5, 0.5)))

	// Upright red cylinder on the right, capped
	right, err := geometry.NewTruncatedCylinder(0, 2, true)
	b.check(err)
	if right != nil {
		b.add(right, core.Chain(core.Scaling(0.3, 1, 0.3), core.Translation(1.8, 0, 0)),
			matte(core.NewColor(0.8, 0.2, 0.2)))
	}

	// Blue cylinder lying along x on the left, capped
	left, err := geometry.NewTruncatedCylinder(-0.5, 0.5, true)
	b.check(err)
	if left != nil {
		b.add(left, core.Chain(core.Scaling(0.3, 1, 0.3), core.RotationZ(math.Pi/2), core.Translation(-2, 0.3, 0)),
			matte(core.NewColor(0.2, 0.2, 0.8)))
	}

	// Gold tube running toward the camera, open at both ends
	tube, err := geometry.NewTruncatedCylinder(-1.75, 1.75, false)
	b.check(err)
	if tube != nil {
		gold := mirror(0.6)
		gold.Color = core.NewColor(0.8, 0.6, 0.2)
		gold.Diffuse = 0.5
		b.add(tube,
			core.Chain(core.Scaling(0.25, 1, 0.25), core.RotationX(math.Pi/2), core.RotationY(0.1), core.Translation(-0.15, 1.1, 0.25)),
			gold)
	}

	// Short glass cylinder in front
	short, err := geometry.NewTruncatedCylinder(0, 0.6, true)
	b.check(err)
	if short != nil {
		b.add(short, core.Chain(core.Scaling(0.3, 1, 0.3), core.Translation(0.5, 0, 1)), glass(material.Glass))
	}

	b.world.AddLight(lights.NewPointLight(core.Point(3, 5, 3), core.White))

	return b.finish(standardView(core.Point(0, 1.5, 4), core.Point(0, 1, 0)))
}

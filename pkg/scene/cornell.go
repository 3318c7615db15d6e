package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

const (
	cornellHalfWidth = 2.5
	cornellHeight    = 5.0
	cornellDepth     = 5.0
)

// NewCornellScene creates a room open toward the camera, with a red left wall,
// a green right wall, a mirror sphere and a glass sphere
func NewCornellScene() (*Preset, error) {
	b := newBuilder()

	white := matte(core.NewColor(0.73, 0.73, 0.73))
	red := matte(core.NewColor(0.65, 0.05, 0.05))
	green := matte(core.NewColor(0.12, 0.45, 0.15))

	addCornellWalls(b, white, red, green)

	// Mirror sphere at back left
	b.add(geometry.NewSphere(),
		core.Chain(core.Scaling(0.8, 0.8, 0.8), core.Translation(-1.0, 0.8, 3.0)),
		mirror(0.9))

	// Glass sphere at front right
	b.add(geometry.NewSphere(),
		core.Chain(core.Scaling(0.8, 0.8, 0.8), core.Translation(1.0, 0.8, 1.5)),
		glass(material.Glass))

	// Short box between them
	box := matte(core.NewColor(0.73, 0.73, 0.73))
	box.Specular = 0
	b.add(geometry.NewCube(),
		core.Chain(core.Scaling(0.4, 0.6, 0.4), core.RotationY(math.Pi/9), core.Translation(0.2, 0.6, 4.0)),
		box)

	b.world.AddLight(lights.NewPointLight(core.Point(0, cornellHeight-0.1, 2.5), core.NewColor(0.9, 0.9, 0.9)))

	return b.finish(standardView(core.Point(0, cornellHeight/2, -6), core.Point(0, cornellHeight/2, 0)))
}

// addCornellWalls adds the floor, ceiling, back wall and side walls as planes
func addCornellWalls(b *builder, white, left, right material.Material) {
	b.add(geometry.NewPlane(), core.Identity(), white)
	b.add(geometry.NewPlane(), core.Translation(0, cornellHeight, 0), white)
	b.add(geometry.NewPlane(),
		core.Chain(core.RotationX(math.Pi/2), core.Translation(0, 0, cornellDepth)), white)
	b.add(geometry.NewPlane(),
		core.Chain(core.RotationZ(math.Pi/2), core.Translation(-cornellHalfWidth, 0, 0)), left)
	b.add(geometry.NewPlane(),
		core.Chain(core.RotationZ(math.Pi/2), core.Translation(cornellHalfWidth, 0, 0)), right)
}

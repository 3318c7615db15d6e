package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewGlassScene creates refractive objects in front of a checkered wall: a glass
// sphere holding an air bubble, a biconvex lens and a cube with a spherical hollow
func NewGlassScene() (*Preset, error) {
	b := newBuilder()

	floor := matte(core.White)
	floor.Pattern = b.pattern(material.Checkers(core.NewColor(0.85, 0.85, 0.85), core.NewColor(0.15, 0.15, 0.15)),
		core.Scaling(0.5, 0.5, 0.5))
	b.add(geometry.NewPlane(), core.Identity(), floor)

	wall := matte(core.White)
	wall.Pattern = b.pattern(material.Checkers(core.NewColor(0.9, 0.6, 0.2), core.NewColor(0.2, 0.3, 0.6)),
		core.Scaling(0.4, 0.4, 0.4))
	b.add(geometry.NewPlane(), core.Chain(core.RotationX(math.Pi/2), core.Translation(0, 0, 6)), wall)

	// Glass sphere with a smaller sphere of air inside it
	bubbleCenter := core.Translation(-1.4, 1, 0.5)
	b.add(geometry.NewSphere(), bubbleCenter, glass(material.Glass))
	b.add(geometry.NewSphere(), core.Chain(core.Scaling(0.5, 0.5, 0.5), bubbleCenter), glass(material.Air))

	// Biconvex lens: the overlap of two spheres, turned to face the camera
	front := b.place(geometry.NewSphere(), core.Translation(0, 0, -0.8), glass(material.Glass))
	back := b.place(geometry.NewSphere(), core.Translation(0, 0, 0.8), glass(material.Glass))
	lens := geometry.NewCSG(geometry.CSGIntersection, front, back)
	b.addComposite(lens, core.Chain(core.Scaling(1.2, 1.2, 1.2), core.RotationY(-0.3), core.Translation(1.5, 1, 0)))

	// Reflective cube with a sphere carved out of its top
	cube := b.place(geometry.NewCube(), core.Identity(), mirror(0.4))
	hollow := b.place(geometry.NewSphere(), core.Chain(core.Scaling(0.8, 0.8, 0.8), core.Translation(0, 1, 0)), mirror(0.4))
	carved := geometry.NewCSG(geometry.CSGDifference, cube, hollow)
	b.addComposite(carved, core.Chain(core.Scaling(0.5, 0.5, 0.5), core.RotationY(math.Pi/5), core.Translation(0, 0.5, 2.5)))

	b.world.AddLight(lights.NewPointLight(core.Point(-4, 6, -6), core.NewColor(0.9, 0.9, 0.9)))

	return b.finish(standardView(core.Point(0, 1.5, -5), core.Point(0, 1, 0)))
}

package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// coneSegment returns an upright cone section with its base on y=0 and the
// transform that shapes it. topRadius 0 gives a pointed cone.
func coneSegment(baseRadius, topRadius, height float64, closed bool) (*geometry.Cone, core.Matrix, error) {
	if topRadius < 0 || baseRadius <= topRadius || height <= 0 {
		return nil, core.Matrix{}, fmt.Errorf("invalid cone section (base %g, top %g, height %g)", baseRadius, topRadius, height)
	}

	// The unit cone has radius |y|, so the section below the apex is [-base, -top]
	cone, err := geometry.NewTruncatedCone(-baseRadius, -topRadius, closed)
	if err != nil {
		return nil, core.Matrix{}, err
	}

	s := height / (baseRadius - topRadius)
	return cone, core.Chain(core.Scaling(1, s, 1), core.Translation(0, s*baseRadius, 0)), nil
}

// addConeSegment places a cone section, applying transform after the shaping transform
func (b *builder) addConeSegment(baseRadius, topRadius, height float64, closed bool, transform core.Matrix, m material.Material) {
	cone, shape, err := coneSegment(baseRadius, topRadius, height, closed)
	if err != nil {
		b.check(err)
		return
	}
	b.add(cone, core.Chain(shape, transform), m)
}

// NewConeScene creates cones and frustums, some stacked, some tilted
func NewConeScene() (*Preset, error) {
	b := newBuilder()
	b.add(geometry.NewPlane(), core.Identity(), matte(core.NewColor(0.5, 0.5, 0.5)))

	red := matte(core.NewColor(0.8, 0.2, 0.2))
	blue := matte(core.NewColor(0.2, 0.2, 0.8))
	green := matte(core.NewColor(0.2, 0.8, 0.2))
	gold := mirror(0.5)
	gold.Color = core.NewColor(0.8, 0.6, 0.2)
	gold.Diffuse = 0.5

	// Tall pointed cone in the center
	b.addConeSegment(0.5, 0, 2, true, core.Identity(), red)

	// Wide blue frustum on the right with a glass cone continuing from its top cap
	b.addConeSegment(0.8, 0.5, 0.6, true, core.Translation(2, 0, 0), blue)
	b.addConeSegment(0.5, 0, 1.2, true, core.Translation(2, 0.6, 0), glass(material.Glass))

	// Gold frustum tipped toward the camera so its base cap shows
	b.addConeSegment(0.5, 0.2, 1.2, true,
		core.Chain(core.Translation(0, -0.6, 0), core.RotationX(1.2), core.Translation(-2, 0.6, 0)), gold)

	// Tilted open green frustum at the back
	b.addConeSegment(0.4, 0.15, 1.2, false,
		core.Chain(core.RotationZ(-0.25), core.Translation(-1.3, 0, -0.5)), green)

	// Small glass cone resting on the floor in front
	b.addConeSegment(0.3, 0, 0.8, true, core.Translation(-0.8, 0, 1.2), glass(material.Glass))

	b.world.AddLight(lights.NewPointLight(core.Point(3, 5, 3), core.White))

	return b.finish(standardView(core.Point(0, 1.5, 4), core.Point(0, 1, 0)))
}

package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// gridDivideThreshold is the leaf size used when partitioning the sphere grid
const gridDivideThreshold = 4

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewColor(r, g, blue).Clamp(0, 1)
}

// NewSphereGridScene creates a gridSize x gridSize grid of reflective spheres.
// The spheres live in one group that is divided into a bounding volume hierarchy.
func NewSphereGridScene(gridSize int) (*Preset, error) {
	if gridSize < 1 {
		return nil, fmt.Errorf("grid size must be positive, got %d", gridSize)
	}

	b := newBuilder()
	b.add(geometry.NewPlane(), core.Identity(), matte(core.NewColor(0.5, 0.5, 0.5)))

	// Fit the grid into roughly 9x9 units regardless of size
	targetArea := 9.0
	spacing := targetArea
	if gridSize > 1 {
		spacing = targetArea / float64(gridSize-1)
	}
	radius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25
	steps := math.Max(1, float64(gridSize-1))

	grid := geometry.NewGroup()
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0
			z := float64(j)*spacing - targetArea/2.0

			// Hue varies across X, chroma across Z
			hue := (float64(i) / steps) * 360.0
			chroma := minChroma + (float64(j)/steps)*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			m := mirror(0.25 + 0.1*float64((i+j)%3))
			m.Color = oklchToRGB(lightness, chroma, hue)
			m.Diffuse = 0.6

			grid.AddChild(b.place(geometry.NewSphere(),
				core.Chain(core.Scaling(radius, radius, radius), core.Translation(x, radius, z)), m))
		}
	}
	grid.Divide(gridDivideThreshold)
	b.world.AddShape(grid)

	b.world.AddLight(lights.NewPointLight(core.Point(-10, 15, -10), core.NewColor(1.0, 0.96, 0.9)))

	view := standardView(core.Point(0, 6, -13.5), core.Point(0, 0.8, 0))
	view.FieldOfView = 40 * math.Pi / 180
	return b.finish(view)
}

package scene

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// DefaultMaxDepth is the number of reflection/refraction bounces allowed per camera ray
const DefaultMaxDepth = 5

// World contains the shapes and lights of a scene.
// It must not be modified while a render is in progress.
type World struct {
	Shapes []geometry.Shape
	Lights []lights.PointLight
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		Shapes: make([]geometry.Shape, 0),
		Lights: make([]lights.PointLight, 0),
	}
}

// AddShape adds shapes to the world
func (w *World) AddShape(shapes ...geometry.Shape) {
	w.Shapes = append(w.Shapes, shapes...)
}

// AddLight adds light sources to the world
func (w *World) AddLight(l ...lights.PointLight) {
	w.Lights = append(w.Lights, l...)
}

// Validate checks every material in the scene, including those inside groups
func (w *World) Validate() error {
	all := lo.FlatMap(w.Shapes, func(s geometry.Shape, _ int) []geometry.Shape {
		return primitives(s)
	})
	for i, shape := range all {
		if err := shape.Material().Validate(); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}
	return nil
}

// primitives returns the leaf shapes under s
func primitives(s geometry.Shape) []geometry.Shape {
	switch c := s.(type) {
	case *geometry.Group:
		return lo.FlatMap(c.Children(), func(child geometry.Shape, _ int) []geometry.Shape {
			return primitives(child)
		})
	case *geometry.CSG:
		return append(primitives(c.Left()), primitives(c.Right())...)
	default:
		return []geometry.Shape{s}
	}
}

// Intersect returns every intersection of the ray with the world, sorted by t
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	xs := geometry.Intersections(lo.FlatMap(w.Shapes, func(s geometry.Shape, _ int) []geometry.Intersection {
		return geometry.Intersect(s, ray)
	}))
	xs.Sort()
	return xs
}

// IsShadowed reports whether anything lies between point and the light
func (w *World) IsShadowed(point core.Tuple, light lights.PointLight) bool {
	v := light.Position.Subtract(point)
	distance := v.Magnitude()
	direction, err := v.Normalize()
	if err != nil {
		return false
	}

	hit, ok := w.Intersect(core.NewRay(point, direction)).Hit()
	return ok && hit.T > 0 && hit.T < distance
}

// ShadeHit returns the color at a prepared hit: local illumination from every
// light plus reflected and refracted contributions. remaining bounds recursion.
func (w *World) ShadeHit(comps geometry.Computations, remaining int) core.Color {
	m := comps.Object.Material()

	surface := core.Black
	for _, light := range w.Lights {
		shadowed := w.IsShadowed(comps.OverPoint, light)
		surface = surface.Add(lights.Lighting(m, comps.Object, light,
			comps.OverPoint, comps.EyeV, comps.NormalV, shadowed))
	}

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := comps.Schlick()
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ColorAt traces a ray into the world and returns its color, black on a miss
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black
	}
	comps := geometry.PrepareComputations(hit, ray, xs)
	return w.ShadeHit(comps, remaining)
}

// ReflectedColor traces the mirror bounce, scaled by the material's reflectivity
func (w *World) ReflectedColor(comps geometry.Computations, remaining int) core.Color {
	reflective := comps.Object.Material().Reflective
	if remaining <= 0 || reflective == 0 {
		return core.Black
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectV)
	return w.ColorAt(reflectRay, remaining-1).Multiply(reflective)
}

// RefractedColor traces the transmitted ray bent by Snell's law, scaled by transparency.
// Total internal reflection contributes nothing.
func (w *World) RefractedColor(comps geometry.Computations, remaining int) core.Color {
	transparency := comps.Object.Material().Transparency
	if remaining <= 0 || transparency == 0 {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1.0 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).Subtract(comps.EyeV.Multiply(nRatio))
	refractRay := core.NewRay(comps.UnderPoint, direction)

	return w.ColorAt(refractRay, remaining-1).Multiply(transparency)
}

// DefaultWorld returns a light at (-10, 10, -10) and two concentric spheres at
// the origin: a green-ish outer unit sphere and an inner sphere of radius 0.5
func DefaultWorld() *World {
	w := NewWorld()
	w.AddLight(lights.NewPointLight(core.Point(-10, 10, -10), core.White))

	outer := geometry.NewSphere()
	m := material.DefaultMaterial()
	m.Color = core.NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	outer.SetMaterial(m)

	inner := geometry.NewSphere()
	// Scaling by a non-zero factor is always invertible
	_ = inner.SetTransform(core.Scaling(0.5, 0.5, 0.5))

	w.AddShape(outer, inner)
	return w
}

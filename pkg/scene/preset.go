package scene

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// ErrUnknownScene is returned by NewScene for an unregistered scene ID
var ErrUnknownScene = errors.New("unknown scene")

// View is the suggested camera placement for a preset scene
type View struct {
	From        core.Tuple
	To          core.Tuple
	Up          core.Tuple
	FieldOfView float64 // Radians
}

// Preset is a ready-to-render world together with the view it was composed for
type Preset struct {
	World *World
	View  View
}

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string
	Name        string
	Description string
}

type sceneEntry struct {
	description string
	build       func() (*Preset, error)
}

var builtinScenes = map[string]sceneEntry{
	"default":       {"Three spheres on a checkered floor", NewDefaultScene},
	"cornell-box":   {"Open room with colored walls, a mirror sphere and a glass sphere", NewCornellScene},
	"sphere-grid":   {"Grid of reflective spheres partitioned into a bounding hierarchy", func() (*Preset, error) { return NewSphereGridScene(10) }},
	"cylinders":     {"Capped, open and tilted cylinders", NewCylinderScene},
	"cones":         {"Stacked cones and frustums", NewConeScene},
	"triangle-mesh": {"Flat and smooth-shaded triangle meshes", NewTriangleMeshScene},
	"glass":         {"Glass sphere with an air bubble and a lens built from two spheres", NewGlassScene},
	"patterns":      {"Stripes, rings, gradients and nested checkers", NewPatternScene},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	ids := lo.Keys(builtinScenes)
	sort.Strings(ids)

	return lo.Map(ids, func(id string, _ int) SceneInfo {
		return SceneInfo{
			ID:          id,
			Name:        titleCase(id),
			Description: builtinScenes[id].description,
		}
	})
}

// NewScene builds the built-in scene with the given ID
func NewScene(id string) (*Preset, error) {
	entry, ok := builtinScenes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}

	preset, err := entry.build()
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", id, err)
	}
	return preset, nil
}

// titleCase converts an ID-style string to title case
// e.g., "cornell-box" -> "Cornell Box"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}

// builder assembles a world and keeps the first error it encounters,
// so scene code can place many shapes without checking each transform
type builder struct {
	world *World
	err   error
}

func newBuilder() *builder {
	return &builder{world: NewWorld()}
}

// place sets the transform and material of s and returns it
func (b *builder) place(s geometry.Shape, transform core.Matrix, m material.Material) geometry.Shape {
	if err := s.SetTransform(transform); err != nil && b.err == nil {
		b.err = err
	}
	s.SetMaterial(m)
	return s
}

// add places s and adds it to the world
func (b *builder) add(s geometry.Shape, transform core.Matrix, m material.Material) {
	b.world.AddShape(b.place(s, transform, m))
}

// addComposite sets the transform of a group or CSG and adds it to the world.
// Composites keep the materials of their children.
func (b *builder) addComposite(s geometry.Shape, transform core.Matrix) {
	if err := s.SetTransform(transform); err != nil && b.err == nil {
		b.err = err
	}
	b.world.AddShape(s)
}

// pattern sets a pattern transform
func (b *builder) pattern(p material.Pattern, transform core.Matrix) material.Pattern {
	if err := p.SetTransform(transform); err != nil && b.err == nil {
		b.err = err
	}
	return p
}

// check records a constructor error
func (b *builder) check(err error) {
	if err != nil && b.err == nil {
		b.err = err
	}
}

// finish validates the world and pairs it with a view
func (b *builder) finish(view View) (*Preset, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.world.Validate(); err != nil {
		return nil, err
	}
	return &Preset{World: b.world, View: view}, nil
}

// matte returns an opaque, mostly diffuse material
func matte(c core.Color) material.Material {
	m := material.DefaultMaterial()
	m.Color = c
	m.Specular = 0.1
	return m
}

// mirror returns a dark, highly reflective material
func mirror(reflective float64) material.Material {
	m := material.DefaultMaterial()
	m.Color = core.NewColor(0.1, 0.1, 0.1)
	m.Diffuse = 0.2
	m.Specular = 1.0
	m.Shininess = 300
	m.Reflective = reflective
	return m
}

// glass returns a clear material that both reflects and refracts
func glass(refractiveIndex float64) material.Material {
	m := material.NewGlass()
	m.Color = core.Black
	m.Ambient = 0
	m.Diffuse = 0.1
	m.Specular = 1.0
	m.Shininess = 300
	m.Reflective = 1.0
	m.RefractiveIndex = refractiveIndex
	return m
}

// standardView looks at target from eye with a 60 degree field of view
func standardView(eye, target core.Tuple) View {
	return View{From: eye, To: target, Up: core.Vector(0, 1, 0), FieldOfView: math.Pi / 3}
}

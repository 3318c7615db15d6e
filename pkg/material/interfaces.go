package material

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ObjectSpace converts world-space points into an object's local space.
// Shapes implement it so patterns can be evaluated without importing geometry.
type ObjectSpace interface {
	WorldToObject(point core.Tuple) core.Tuple
}

// Material describes surface appearance for the Phong model
type Material struct {
	Color           core.Color // Flat surface color, ignored when Pattern is set
	Pattern         Pattern    // Optional spatially varying color
	Ambient         float64    // Ambient reflection coefficient
	Diffuse         float64    // Diffuse reflection coefficient
	Specular        float64    // Specular reflection coefficient
	Shininess       float64    // Size of the specular highlight (larger is tighter)
	Reflective      float64    // 0 is matte, 1 is a perfect mirror
	Transparency    float64    // 0 is opaque, 1 is fully transparent
	RefractiveIndex float64    // Index of refraction of the medium inside the surface
}

// DefaultMaterial returns a white, slightly shiny, opaque material
func DefaultMaterial() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		Reflective:      0.0,
		Transparency:    0.0,
		RefractiveIndex: Vacuum,
	}
}

// NewGlass returns a fully transparent material with the refractive index of glass
func NewGlass() Material {
	m := DefaultMaterial()
	m.Transparency = 1.0
	m.RefractiveIndex = Glass
	return m
}

// Validate checks that all coefficients are within their physical ranges
func (m Material) Validate() error {
	if m.Ambient < 0 || m.Diffuse < 0 || m.Specular < 0 {
		return fmt.Errorf("material coefficients must be non-negative (ambient=%g, diffuse=%g, specular=%g)",
			m.Ambient, m.Diffuse, m.Specular)
	}
	if m.Shininess <= 0 {
		return fmt.Errorf("shininess must be positive, got %g", m.Shininess)
	}
	if m.Reflective < 0 || m.Reflective > 1 {
		return fmt.Errorf("reflective must be in [0, 1], got %g", m.Reflective)
	}
	if m.Transparency < 0 || m.Transparency > 1 {
		return fmt.Errorf("transparency must be in [0, 1], got %g", m.Transparency)
	}
	if m.RefractiveIndex <= 0 {
		return fmt.Errorf("refractive index must be positive, got %g", m.RefractiveIndex)
	}
	return nil
}

// ColorAt returns the surface color at a world-space point on object
func (m Material) ColorAt(object ObjectSpace, worldPoint core.Tuple) core.Color {
	if m.Pattern == nil {
		return m.Color
	}
	return PatternAtShape(m.Pattern, object, worldPoint)
}

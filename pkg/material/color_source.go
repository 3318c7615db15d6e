package material

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Pattern provides spatially-varying colors for materials.
// LocalColorAt receives a point already in pattern space.
type Pattern interface {
	Transform() core.Matrix
	Inverse() core.Matrix
	SetTransform(m core.Matrix) error
	LocalColorAt(point core.Tuple) core.Color
}

// patternTransform holds the transform shared by every pattern
type patternTransform struct {
	transform core.Matrix
	inverse   core.Matrix
}

func identityTransform() patternTransform {
	return patternTransform{transform: core.Identity(), inverse: core.Identity()}
}

// Transform returns the pattern's object-to-pattern transform
func (p *patternTransform) Transform() core.Matrix {
	return p.transform
}

// Inverse returns the cached inverse transform
func (p *patternTransform) Inverse() core.Matrix {
	return p.inverse
}

// SetTransform sets the pattern transform; singular matrices are rejected
func (p *patternTransform) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("pattern transform: %w", err)
	}
	p.transform = m
	p.inverse = inv
	return nil
}

// PatternAtShape evaluates a pattern at a world-space point on an object
func PatternAtShape(p Pattern, object ObjectSpace, worldPoint core.Tuple) core.Color {
	return colorAt(p, object.WorldToObject(worldPoint))
}

// colorAt converts an object-space point into p's space and evaluates it
func colorAt(p Pattern, objectPoint core.Tuple) core.Color {
	return p.LocalColorAt(p.Inverse().MultiplyTuple(objectPoint))
}

// SolidColor provides uniform color
type SolidColor struct {
	patternTransform
	Color core.Color
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{patternTransform: identityTransform(), Color: color}
}

// LocalColorAt returns the solid color regardless of position
func (s *SolidColor) LocalColorAt(point core.Tuple) core.Color {
	return s.Color
}

// CoordinatePattern maps the pattern-space point directly to a color.
// Useful for checking that transforms reach the pattern.
type CoordinatePattern struct {
	patternTransform
}

// NewCoordinatePattern creates a pattern whose color is (x, y, z)
func NewCoordinatePattern() *CoordinatePattern {
	return &CoordinatePattern{patternTransform: identityTransform()}
}

// LocalColorAt returns the point's coordinates as a color
func (c *CoordinatePattern) LocalColorAt(point core.Tuple) core.Color {
	return core.NewColor(point.X, point.Y, point.Z)
}

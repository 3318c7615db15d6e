package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// twoTone is shared by patterns that alternate or interpolate between two sub-patterns.
// Each sub-pattern is evaluated in its own space, so patterns can be nested.
type twoTone struct {
	patternTransform
	A, B Pattern
}

func newTwoTone(a, b Pattern) twoTone {
	return twoTone{patternTransform: identityTransform(), A: a, B: b}
}

// pick evaluates A when even is true, otherwise B
func (t *twoTone) pick(even bool, point core.Tuple) core.Color {
	if even {
		return colorAt(t.A, point)
	}
	return colorAt(t.B, point)
}

// isEven reports whether floor(v) is an even integer
func isEven(v float64) bool {
	return math.Mod(math.Floor(v), 2) == 0
}

// StripePattern alternates between A and B along the x axis
type StripePattern struct {
	twoTone
}

// NewStripePattern creates stripes one unit wide
func NewStripePattern(a, b Pattern) *StripePattern {
	return &StripePattern{newTwoTone(a, b)}
}

// LocalColorAt implements Pattern
func (s *StripePattern) LocalColorAt(point core.Tuple) core.Color {
	return s.pick(isEven(point.X), point)
}

// GradientPattern blends linearly from A to B along x, repeating every unit
type GradientPattern struct {
	twoTone
}

// NewGradientPattern creates a new gradient
func NewGradientPattern(a, b Pattern) *GradientPattern {
	return &GradientPattern{newTwoTone(a, b)}
}

// LocalColorAt implements Pattern
func (g *GradientPattern) LocalColorAt(point core.Tuple) core.Color {
	from := colorAt(g.A, point)
	to := colorAt(g.B, point)
	fraction := point.X - math.Floor(point.X)
	return from.Add(to.Subtract(from).Multiply(fraction))
}

// RingPattern alternates concentric rings in the xz plane
type RingPattern struct {
	twoTone
}

// NewRingPattern creates rings one unit wide
func NewRingPattern(a, b Pattern) *RingPattern {
	return &RingPattern{newTwoTone(a, b)}
}

// LocalColorAt implements Pattern
func (r *RingPattern) LocalColorAt(point core.Tuple) core.Color {
	return r.pick(isEven(math.Sqrt(point.X*point.X+point.Z*point.Z)), point)
}

// CheckersPattern alternates unit cubes in three dimensions
type CheckersPattern struct {
	twoTone
}

// NewCheckersPattern creates a 3D checkerboard
func NewCheckersPattern(a, b Pattern) *CheckersPattern {
	return &CheckersPattern{newTwoTone(a, b)}
}

// LocalColorAt implements Pattern
func (c *CheckersPattern) LocalColorAt(point core.Tuple) core.Color {
	sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
	return c.pick(math.Mod(sum, 2) == 0, point)
}

// BlendedPattern averages two patterns
type BlendedPattern struct {
	twoTone
}

// NewBlendedPattern creates a pattern that is the mean of a and b
func NewBlendedPattern(a, b Pattern) *BlendedPattern {
	return &BlendedPattern{newTwoTone(a, b)}
}

// LocalColorAt implements Pattern
func (b *BlendedPattern) LocalColorAt(point core.Tuple) core.Color {
	return colorAt(b.A, point).Add(colorAt(b.B, point)).Multiply(0.5)
}

// Stripes is shorthand for a stripe pattern of two flat colors
func Stripes(a, b core.Color) *StripePattern {
	return NewStripePattern(NewSolidColor(a), NewSolidColor(b))
}

// Checkers is shorthand for a checkerboard of two flat colors
func Checkers(a, b core.Color) *CheckersPattern {
	return NewCheckersPattern(NewSolidColor(a), NewSolidColor(b))
}

package core

import (
	"errors"
	"math"
)

// Epsilon is the tolerance used by every floating point comparison in the tracer
const Epsilon = 1e-5

// ErrDegenerateVector is returned when normalizing a vector with (near) zero length
var ErrDegenerateVector = errors.New("cannot normalize a zero-length vector")

// ApproxEqual reports whether a and b differ by less than Epsilon
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Tuple is a point (W=1) or a vector (W=0) in homogeneous coordinates
type Tuple struct {
	X, Y, Z, W float64
}

// Point creates a new point
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// Vector creates a new vector
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint returns true if the tuple represents a point
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector returns true if the tuple represents a vector
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// Equals compares two tuples component-wise within Epsilon
func (t Tuple) Equals(other Tuple) bool {
	return ApproxEqual(t.X, other.X) &&
		ApproxEqual(t.Y, other.Y) &&
		ApproxEqual(t.Z, other.Z) &&
		ApproxEqual(t.W, other.W)
}

// Add returns the sum of two tuples.
// Point + vector is a point; point + point has no meaning and yields a vector.
func (t Tuple) Add(other Tuple) Tuple {
	w := t.W + other.W
	if w > 1 {
		w = 0
	}
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, w}
}

// Subtract returns the difference of two tuples.
// Point - point is a vector; vector - point has no meaning and yields a vector.
func (t Tuple) Subtract(other Tuple) Tuple {
	w := t.W - other.W
	if w < 0 {
		w = 0
	}
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, w}
}

// Negate returns the tuple with X, Y and Z negated
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, t.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W}
}

// Divide returns the tuple divided by a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W}
}

// Magnitude returns the length of the vector
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z)
}

// Normalize returns a unit vector in the same direction
func (t Tuple) Normalize() (Tuple, error) {
	length := t.Magnitude()
	if length < Epsilon {
		return Tuple{}, ErrDegenerateVector
	}
	return Tuple{t.X / length, t.Y / length, t.Z / length, 0}, nil
}

// MustNormalize is like Normalize but panics on a degenerate vector.
// Use it only where the caller guarantees a non-zero length.
func (t Tuple) MustNormalize() Tuple {
	n, err := t.Normalize()
	if err != nil {
		panic(err)
	}
	return n
}

// Dot returns the dot product of two tuples
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors
func (t Tuple) Cross(other Tuple) Tuple {
	return Vector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect reflects the vector around the normal
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

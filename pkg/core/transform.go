package core

import (
	"fmt"
	"math"
)

// Translation returns a matrix that moves points by (x, y, z). Vectors are unaffected.
func Translation(x, y, z float64) Matrix {
	m := Identity()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// Scaling returns a matrix that scales along each axis
func Scaling(x, y, z float64) Matrix {
	m := Identity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotationX returns a rotation of r radians around the X axis
func RotationX(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return Matrix{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationY returns a rotation of r radians around the Y axis
func RotationY(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return Matrix{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ returns a rotation of r radians around the Z axis
func RotationZ(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return Matrix{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Shearing returns a shear matrix; xy moves x in proportion to y, and so on
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return Matrix{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	}
}

// Chain composes transforms in the order they should be applied to a point.
// Chain(a, b, c) is c × b × a.
func Chain(transforms ...Matrix) Matrix {
	result := Identity()
	for _, t := range transforms {
		result = t.Multiply(result)
	}
	return result
}

// ViewTransform orients the world relative to an eye at from looking at to
func ViewTransform(from, to, up Tuple) (Matrix, error) {
	forward, err := to.Subtract(from).Normalize()
	if err != nil {
		return Matrix{}, fmt.Errorf("view transform: eye and target coincide: %w", err)
	}
	upn, err := up.Normalize()
	if err != nil {
		return Matrix{}, fmt.Errorf("view transform: up vector: %w", err)
	}

	left := forward.Cross(upn)
	if left.Magnitude() < Epsilon {
		return Matrix{}, fmt.Errorf("view transform: up is parallel to view direction: %w", ErrDegenerateVector)
	}
	trueUp := left.Cross(forward)

	orientation := Matrix{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z)), nil
}

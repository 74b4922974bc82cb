package matrix

import (
	"math"

	"github.com/pkg/errors"
)

// Translation returns a 4×4 matrix that moves points by (x, y, z) and leaves vectors unchanged
func Translation(x, y, z float64) Matrix {
	m := Identity(4)
	m.data[3] = x
	m.data[7] = y
	m.data[11] = z
	return m
}

// Scaling returns a 4×4 matrix scaling each axis independently
func Scaling(x, y, z float64) Matrix {
	m := Identity(4)
	m.data[0] = x
	m.data[5] = y
	m.data[10] = z
	return m
}

// RotationX returns a rotation of radians around the x axis
func RotationX(radians float64) Matrix {
	cos, sin := math.Cos(radians), math.Sin(radians)
	return MustFromRows([][]float64{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	})
}

// RotationY returns a rotation of radians around the y axis
func RotationY(radians float64) Matrix {
	cos, sin := math.Cos(radians), math.Sin(radians)
	return MustFromRows([][]float64{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	})
}

// RotationZ returns a rotation of radians around the z axis
func RotationZ(radians float64) Matrix {
	cos, sin := math.Cos(radians), math.Sin(radians)
	return MustFromRows([][]float64{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// Shearing returns a shear where each component moves in proportion to the other two.
// xy is the amount x moves in proportion to y, and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return MustFromRows([][]float64{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	})
}

// Chain composes transforms in application order: Chain(A, B, C) returns C·B·A,
// so A is applied to a point first.
func Chain(transforms ...Matrix) (Matrix, error) {
	result := Identity(4)
	for i, t := range transforms {
		next, err := t.Multiply(result)
		if err != nil {
			return Matrix{}, errors.Wrapf(err, "chain transform %d", i)
		}
		result = next
	}
	return result, nil
}

// The fluent builders below pre-multiply the receiver, so
//
//	Identity(4).Scale(2, 2, 2).Translate(1, 0, 0)
//
// scales first and translates second. The receiver must be 4×4.

// Translate applies a translation after m
func (m Matrix) Translate(x, y, z float64) Matrix {
	return MustMultiply(Translation(x, y, z), m)
}

// Scale applies a scaling after m
func (m Matrix) Scale(x, y, z float64) Matrix {
	return MustMultiply(Scaling(x, y, z), m)
}

// RotateX applies a rotation around x after m
func (m Matrix) RotateX(radians float64) Matrix {
	return MustMultiply(RotationX(radians), m)
}

// RotateY applies a rotation around y after m
func (m Matrix) RotateY(radians float64) Matrix {
	return MustMultiply(RotationY(radians), m)
}

// RotateZ applies a rotation around z after m
func (m Matrix) RotateZ(radians float64) Matrix {
	return MustMultiply(RotationZ(radians), m)
}

// Shear applies a shearing after m
func (m Matrix) Shear(xy, xz, yx, yz, zx, zy float64) Matrix {
	return MustMultiply(Shearing(xy, xz, yx, yz, zx, zy), m)
}

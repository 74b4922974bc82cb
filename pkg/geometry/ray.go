package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/matrix"
)

// Ray represents a ray with an origin point and a direction vector
type Ray struct {
	Origin    core.Tuple
	Direction core.Tuple
}

// NewRay creates a new ray
func NewRay(origin, direction core.Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray
func (r Ray) Position(t float64) core.Tuple {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform returns the ray with m applied to both origin and direction.
// m must be 4×4.
func (r Ray) Transform(m matrix.Matrix) Ray {
	return Ray{
		Origin:    m.MustMultiplyTuple(r.Origin),
		Direction: m.MustMultiplyTuple(r.Direction),
	}
}

package geometry

import (
	"math"

	"github.com/pkg/errors"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/matrix"
)

// Sphere is a unit sphere centered at the object-space origin. Its transform
// places it in the world, so scaled and rotated spheres double as walls and floors.
//
// The zero value is a unit sphere at the world origin with the zero material;
// use NewSphere for the default material.
type Sphere struct {
	transform        matrix.Matrix // object -> world
	inverse          matrix.Matrix // world -> object
	inverseTranspose matrix.Matrix // maps object normals back to world space
	material         material.Material
}

// NewSphere creates a unit sphere with the identity transform and the default material
func NewSphere() *Sphere {
	s := &Sphere{material: material.DefaultMaterial()}
	s.resetTransform()
	return s
}

// NewTransformedSphere creates a sphere with the given transform and material
func NewTransformedSphere(transform matrix.Matrix, m material.Material) (*Sphere, error) {
	s := NewSphere()
	if err := s.SetTransform(transform); err != nil {
		return nil, err
	}
	s.material = m
	return s, nil
}

func (s *Sphere) resetTransform() {
	s.transform = matrix.Identity(4)
	s.inverse = matrix.Identity(4)
	s.inverseTranspose = matrix.Identity(4)
}

// Transform returns the object-to-world transform
func (s *Sphere) Transform() matrix.Matrix {
	if s.transform.Rows() == 0 {
		s.resetTransform()
	}
	return s.transform
}

// SetTransform replaces the object-to-world transform. The transform must be an
// invertible 4×4 matrix; otherwise the sphere is left unchanged and an error is returned.
func (s *Sphere) SetTransform(m matrix.Matrix) error {
	if m.Rows() != 4 || m.Cols() != 4 {
		return errors.Wrapf(matrix.ErrDimensionMismatch, "sphere transform must be 4x4, got %dx%d", m.Rows(), m.Cols())
	}
	inv, err := m.Inverse()
	if err != nil {
		return errors.Wrap(err, "sphere transform must be invertible")
	}
	invT, err := inv.Transpose()
	if err != nil {
		return errors.Wrap(err, "sphere transform")
	}
	s.transform = m.Clone()
	s.inverse = inv
	s.inverseTranspose = invT
	return nil
}

// MustSetTransform is SetTransform for transforms known to be invertible.
// A singular transform is an invariant violation and panics.
func (s *Sphere) MustSetTransform(m matrix.Matrix) *Sphere {
	if err := s.SetTransform(m); err != nil {
		panic(err)
	}
	return s
}

// Material implements Shape
func (s *Sphere) Material() material.Material {
	return s.material
}

// SetMaterial replaces the sphere's material
func (s *Sphere) SetMaterial(m material.Material) *Sphere {
	s.material = m
	return s
}

func (s *Sphere) worldToObject() matrix.Matrix {
	if s.inverse.Rows() == 0 {
		s.resetTransform()
	}
	return s.inverse
}

// Intersect implements Shape. The ray is moved into object space and tested
// against the unit sphere: a=d·d, b=2·d·o, c=o·o-1.
func (s *Sphere) Intersect(ray Ray) []float64 {
	r := ray.Transform(s.worldToObject())

	sphereToRay := r.Origin.Subtract(core.Point(0, 0, 0))
	a := r.Direction.Dot(r.Direction)
	if a == 0 {
		return nil
	}
	b := 2 * r.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	return []float64{
		(-b - sqrtD) / (2 * a),
		(-b + sqrtD) / (2 * a),
	}
}

// NormalAt implements Shape. The object-space normal is mapped back with the
// transpose of the inverse, which keeps it perpendicular under non-uniform scaling.
func (s *Sphere) NormalAt(worldPoint core.Tuple) core.Tuple {
	objectPoint := s.worldToObject().MustMultiplyTuple(worldPoint)
	objectNormal := objectPoint.Subtract(core.Point(0, 0, 0))

	worldNormal := s.inverseTranspose.MustMultiplyTuple(objectNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}

package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Shape is anything a ray can be traced against
type Shape interface {
	// Intersect returns every t at which the world-space ray meets the shape, in ascending order
	Intersect(ray Ray) []float64
	// NormalAt returns the unit world-space normal at a world-space point on the surface
	NormalAt(worldPoint core.Tuple) core.Tuple
	// Material returns the surface material
	Material() material.Material
}

// Compile time check that Sphere implements Shape
var _ Shape = (*Sphere)(nil)

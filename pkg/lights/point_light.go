package lights

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// PointLight is a light source with no size emitting equally in every direction
type PointLight struct {
	Position  core.Tuple // Point in world space
	Intensity core.Color // Color and brightness
}

// NewPointLight creates a new point light
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Lighting evaluates the Phong reflection model at point for a single light.
// eyev and normalv must be unit vectors. The result is not clamped and no
// shadow test is performed.
func Lighting(m material.Material, light PointLight, point, eyev, normalv core.Tuple) core.Color {
	effectiveColor := m.Color.Hadamard(light.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)

	lightv := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightv.Dot(normalv)

	// light is on the other side of the surface
	if lightDotNormal <= 0 {
		return ambient
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectv := lightv.Negate().Reflect(normalv)
	if reflectDotEye := reflectv.Dot(eyev); reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}

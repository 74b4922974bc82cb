package material

import "github.com/df07/go-phong-raytracer/pkg/core"

// Default Phong coefficients
const (
	DefaultAmbient   = 0.1
	DefaultDiffuse   = 0.9
	DefaultSpecular  = 0.9
	DefaultShininess = 200.0
)

// Material describes how a surface responds to Phong illumination
type Material struct {
	Color     core.Color // Surface color, multiplied with the light intensity
	Ambient   float64    // Fraction of light reflected regardless of direction
	Diffuse   float64    // Weight of the Lambertian term
	Specular  float64    // Weight of the highlight term
	Shininess float64    // Highlight exponent; larger is tighter
}

// DefaultMaterial returns a white material with the default coefficients
func DefaultMaterial() Material {
	return Material{
		Color:     core.White,
		Ambient:   DefaultAmbient,
		Diffuse:   DefaultDiffuse,
		Specular:  DefaultSpecular,
		Shininess: DefaultShininess,
	}
}

// NewMaterial creates a default material with the given color
func NewMaterial(color core.Color) Material {
	m := DefaultMaterial()
	m.Color = color
	return m
}

// WithColor returns a copy of m with a different color
func (m Material) WithColor(color core.Color) Material {
	m.Color = color
	return m
}

// Matte returns a copy of m with no specular highlight
func (m Material) Matte() Material {
	m.Specular = 0
	return m
}

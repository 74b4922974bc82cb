package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/matrix"
)

// PlanetFrames is the default length of the planets animation
const PlanetFrames = 100

var (
	wallColor   = core.NewColor(1, 0.9, 0.9)
	blueColor   = core.NewColor(0, 0.5, 1)
	greenColor  = core.NewColor(0.1, 1, 0.5)
	yellowColor = core.NewColor(1, 0.8, 0.1)
)

// glossy returns a material with the diffuse/specular balance used by the demo spheres
func glossy(color core.Color) material.Material {
	m := material.NewMaterial(color)
	m.Diffuse = 0.7
	m.Specular = 0.3
	return m
}

// NewRoomWorld builds a room out of flattened spheres (a floor and two walls
// meeting behind the origin) holding three spheres. lightX moves the light
// along the x axis.
func NewRoomWorld(lightX float64) *World {
	w := NewWorld()
	w.AddLight(lights.NewPointLight(core.Point(lightX, 10, -10), core.White))

	wall := material.NewMaterial(wallColor).Matte()
	flat := matrix.Identity(4).Scale(10, 0.01, 10)

	// floor
	w.AddObject(geometry.NewSphere().MustSetTransform(flat).SetMaterial(wall))

	// left wall
	w.AddObject(geometry.NewSphere().
		MustSetTransform(flat.RotateX(math.Pi/2).RotateY(-math.Pi/4).Translate(0, 0, 5)).
		SetMaterial(wall))

	// right wall
	w.AddObject(geometry.NewSphere().
		MustSetTransform(flat.RotateX(math.Pi/2).RotateY(math.Pi/4).Translate(0, 0, 5)).
		SetMaterial(wall))

	// large sphere in the middle, lifted onto the floor
	w.AddObject(geometry.NewSphere().
		MustSetTransform(matrix.Translation(-0.5, 1, 0.5)).
		SetMaterial(glossy(blueColor)))

	// smaller sphere on the right
	w.AddObject(geometry.NewSphere().
		MustSetTransform(matrix.Identity(4).Scale(0.5, 0.5, 0.5).Translate(1.5, 0.5, -0.5)).
		SetMaterial(glossy(greenColor)))

	// smallest sphere on the left
	w.AddObject(geometry.NewSphere().
		MustSetTransform(matrix.Identity(4).Scale(0.33, 0.33, 0.33).Translate(-1.5, 0.33, -0.75)).
		SetMaterial(glossy(yellowColor)))

	return w
}

// NewPlanetsWorld builds one frame of the planets animation: a blue sphere at
// the origin and a small planet orbiting it at radius 4, placed at angle radians
func NewPlanetsWorld(angle float64) *World {
	w := NewWorld()
	w.AddLight(lights.NewPointLight(core.Point(-10, 10, -10), core.White))

	w.AddObject(geometry.NewSphere().SetMaterial(glossy(blueColor)))

	x, z := math.Cos(angle)*4, math.Sin(angle)*4
	w.AddObject(geometry.NewSphere().
		MustSetTransform(matrix.Identity(4).Scale(0.33, 0.33, 0.33).Translate(x, 0, z)).
		SetMaterial(glossy(yellowColor)))

	return w
}

// PlanetAngle returns the orbit angle for frame out of frames
func PlanetAngle(frame, frames int) float64 {
	if frames <= 0 {
		return 0
	}
	return 2 * math.Pi / float64(frames) * float64(frame)
}

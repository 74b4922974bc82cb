package scene

import (
	"math"
	"slices"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/matrix"
)

// Sketch is a small drawing program that paints a canvas directly without a camera
type Sketch struct {
	Name        string
	Description string
	Draw        func() *canvas.Canvas
}

var sketches = map[string]Sketch{
	"trajectory": {"trajectory", "Path of a projectile under gravity and wind", DrawTrajectory},
	"clock":      {"clock", "A dot for each hour of a clock face", DrawClock},
	"shadow":     {"shadow", "Silhouette of a sphere cast onto a wall", DrawShadow},
	"sphere":     {"sphere", "Phong-lit sphere projected onto a wall", DrawSphere},
}

// LookupSketch returns the sketch called name
func LookupSketch(name string) (Sketch, error) {
	s, ok := sketches[name]
	if !ok {
		return Sketch{}, errors.Wrapf(ErrUnknownScene, "sketch %q", name)
	}
	return s, nil
}

// SketchNames returns the sketch names in sorted order
func SketchNames() []string {
	names := lo.Keys(sketches)
	slices.Sort(names)
	return names
}

// toCanvas maps world x/y to canvas coordinates with y growing downward
func toCanvas(x, y float64, height int) (int, int) {
	return int(x), height - int(y)
}

// DrawTrajectory plots a projectile launched from (0,1) until it falls below the ground
func DrawTrajectory() *canvas.Canvas {
	c := canvas.New(900, 550)

	position := core.Point(0, 1, 0)
	velocity := core.Vector(1, 1.8, 0).Normalize().Multiply(11.25)
	gravity := core.Vector(0, -0.1, 0)
	wind := core.Vector(-0.01, 0, 0)

	for position.Y > 0 {
		position = position.Add(velocity)
		velocity = velocity.Add(gravity).Add(wind)
		x, y := toCanvas(position.X, position.Y, c.Height())
		c.WritePixel(x, y, core.White)
	}
	return c
}

// DrawClock marks the center of a 400x400 canvas and the twelve hour positions around it
func DrawClock() *canvas.Canvas {
	c := canvas.New(400, 400)
	c.WritePixel(200, 200, core.White)

	twelve := core.Point(0, 1, 0)
	for hour := 0; hour < 12; hour++ {
		transform := matrix.Identity(4).
			Scale(0, 100, 0).
			RotateZ(-2 * math.Pi * float64(hour) / 12).
			Translate(200, 200, 0)
		dot := transform.MustMultiplyTuple(twelve)
		x, y := toCanvas(dot.X, dot.Y, c.Height())
		c.WritePixel(x, y, core.White)
	}
	return c
}

// Wall projection shared by the shadow and sphere sketches
const (
	sketchSize     = 300
	sketchWallZ    = 12.0
	sketchWallSize = 7.0
)

// castOntoWall shoots a ray from (0,0,-5) through each pixel of a wall behind
// a unit sphere and paints the pixels shade returns a color for
func castOntoWall(shade func(ray geometry.Ray, hit geometry.Intersection) core.Color, sphere *geometry.Sphere) *canvas.Canvas {
	c := canvas.New(sketchSize, sketchSize)
	origin := core.Point(0, 0, -5)
	pixelSize := sketchWallSize / float64(sketchSize)
	half := sketchWallSize / 2

	for y := 0; y < sketchSize; y++ {
		worldY := half - pixelSize*float64(y)
		for x := 0; x < sketchSize; x++ {
			worldX := -half + pixelSize*float64(x)
			target := core.Point(worldX, worldY, sketchWallZ)
			ray := geometry.NewRay(origin, target.Subtract(origin).Normalize())

			if hit, ok := geometry.Hit(geometry.Intersect(ray, sphere, 0)); ok {
				c.WritePixel(x, y, shade(ray, hit))
			}
		}
	}
	return c
}

// DrawShadow paints the silhouette of a unit sphere in a flat color
func DrawShadow() *canvas.Canvas {
	shadow := core.NewColor(0.4, 0.4, 0.7)
	return castOntoWall(func(geometry.Ray, geometry.Intersection) core.Color {
		return shadow
	}, geometry.NewSphere())
}

// DrawSphere paints a unit sphere shaded with the Phong model
func DrawSphere() *canvas.Canvas {
	sphere := geometry.NewSphere().SetMaterial(material.NewMaterial(blueColor))
	light := lights.NewPointLight(core.Point(-10, 10, -10), core.White)

	return castOntoWall(func(ray geometry.Ray, hit geometry.Intersection) core.Color {
		comps := geometry.PrepareComputations(ray, hit, sphere)
		return lights.Lighting(sphere.Material(), light, comps.Point, comps.EyeV, comps.NormalV)
	}, sphere)
}

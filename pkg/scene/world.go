package scene

import (
	"github.com/samber/lo"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/matrix"
)

// World is the collection of objects and lights a camera renders.
// It is assembled before rendering and must not change while a render runs.
type World struct {
	Objects []geometry.Shape    // Intersections refer to objects by index into this slice
	Lights  []lights.PointLight // Only the first light contributes to shading
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		Objects: make([]geometry.Shape, 0),
		Lights:  make([]lights.PointLight, 0),
	}
}

// AddObject appends a shape and returns its index
func (w *World) AddObject(shape geometry.Shape) int {
	w.Objects = append(w.Objects, shape)
	return len(w.Objects) - 1
}

// AddLight appends a light
func (w *World) AddLight(light lights.PointLight) {
	w.Lights = append(w.Lights, light)
}

// Intersect returns every intersection of ray with the world's objects,
// sorted by ascending t
func (w *World) Intersect(ray geometry.Ray) geometry.Intersections {
	xs := geometry.Intersections(lo.FlatMap(w.Objects, func(obj geometry.Shape, i int) []geometry.Intersection {
		return geometry.Intersect(ray, obj, i)
	}))
	xs.Sort()
	return xs
}

// ShadeHit computes the color at a prepared hit using the first light.
// A world without lights shades everything black.
func (w *World) ShadeHit(comps geometry.Computations) core.Color {
	if len(w.Lights) == 0 {
		return core.Black
	}
	obj := w.Objects[comps.Object]
	return lights.Lighting(obj.Material(), w.Lights[0], comps.Point, comps.EyeV, comps.NormalV)
}

// ColorAt traces ray into the world and returns the shaded color of the
// nearest visible hit, or black on a miss
func (w *World) ColorAt(ray geometry.Ray) core.Color {
	hit, ok := geometry.Hit(w.Intersect(ray))
	if !ok {
		return core.Black
	}
	comps := geometry.PrepareComputations(ray, hit, w.Objects[hit.Object])
	return w.ShadeHit(comps)
}

// DefaultWorld creates the reference two-sphere world: a white light at
// (-10,10,-10), a green-tinted unit sphere and a half-size sphere inside it
func DefaultWorld() *World {
	w := NewWorld()
	w.AddLight(lights.NewPointLight(core.Point(-10, 10, -10), core.White))

	outer := material.NewMaterial(core.NewColor(0.8, 1.0, 0.6))
	outer.Diffuse = 0.7
	outer.Specular = 0.2
	w.AddObject(geometry.NewSphere().SetMaterial(outer))

	w.AddObject(geometry.NewSphere().MustSetTransform(matrix.Scaling(0.5, 0.5, 0.5)))
	return w
}

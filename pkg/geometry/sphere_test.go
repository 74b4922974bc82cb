package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/matrix"
)

func TestSphere_Intersect(t *testing.T) {
	tests := []struct {
		name     string
		origin   core.Tuple
		expected []float64
	}{
		{"two points", core.Point(0, 0, -5), []float64{4, 6}},
		{"tangent", core.Point(0, 1, -5), []float64{5, 5}},
		{"miss", core.Point(0, 2, -5), nil},
		{"ray originates inside", core.Point(0, 0, 0), []float64{-1, 1}},
		{"sphere behind ray", core.Point(0, 0, 5), []float64{-6, -4}},
	}

	sphere := NewSphere()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := NewRay(tt.origin, core.Vector(0, 0, 1))
			got := sphere.Intersect(ray)

			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %d intersections, got %d (%v)", len(tt.expected), len(got), got)
			}
			for i := range got {
				if !core.ApproxEqual(got[i], tt.expected[i]) {
					t.Errorf("Intersection %d: expected t=%f, got t=%f", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestSphere_IntersectTransformed(t *testing.T) {
	ray := NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))

	scaled := NewSphere().MustSetTransform(matrix.Scaling(2, 2, 2))
	got := scaled.Intersect(ray)
	if len(got) != 2 || !core.ApproxEqual(got[0], 3) || !core.ApproxEqual(got[1], 7) {
		t.Errorf("Scaled sphere: expected [3 7], got %v", got)
	}

	translated := NewSphere().MustSetTransform(matrix.Translation(5, 0, 0))
	if got := translated.Intersect(ray); len(got) != 0 {
		t.Errorf("Translated sphere: expected miss, got %v", got)
	}
}

func TestSphere_IntersectDoesNotModifyRay(t *testing.T) {
	ray := NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
	sphere := NewSphere().MustSetTransform(matrix.Scaling(2, 2, 2))

	sphere.Intersect(ray)
	if ray.Origin != core.Point(0, 0, -5) || ray.Direction != core.Vector(0, 0, 1) {
		t.Errorf("Ray should be unchanged, got %v", ray)
	}
}

func TestSphere_DefaultTransformAndMaterial(t *testing.T) {
	s := NewSphere()
	if !s.Transform().Equal(matrix.Identity(4)) {
		t.Errorf("Expected identity transform, got\n%v", s.Transform())
	}
	if s.Material() != material.DefaultMaterial() {
		t.Errorf("Expected default material, got %+v", s.Material())
	}

	m := material.DefaultMaterial()
	m.Ambient = 1
	s.SetMaterial(m)
	if s.Material().Ambient != 1 {
		t.Error("SetMaterial should replace the material")
	}

	var zero Sphere
	if got := zero.Intersect(NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))); len(got) != 2 {
		t.Errorf("Zero value sphere should behave as a unit sphere, got %v", got)
	}
}

func TestSphere_SetTransformRejectsInvalid(t *testing.T) {
	s := NewSphere()
	translation := matrix.Translation(2, 3, 4)
	if err := s.SetTransform(translation); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !s.Transform().Equal(translation) {
		t.Errorf("Expected translation, got\n%v", s.Transform())
	}

	err := s.SetTransform(matrix.Scaling(1, 0, 1))
	if !errors.Is(err, matrix.ErrSingular) {
		t.Errorf("Expected ErrSingular, got %v", err)
	}
	if !s.Transform().Equal(translation) {
		t.Error("A rejected transform should leave the sphere unchanged")
	}

	if err := s.SetTransform(matrix.Identity(3)); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Errorf("Expected ErrDimensionMismatch, got %v", err)
	}

	if _, err := NewTransformedSphere(matrix.New(4, 4), material.DefaultMaterial()); err == nil {
		t.Error("NewTransformedSphere should reject a singular transform")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustSetTransform should panic on a singular transform")
		}
	}()
	NewSphere().MustSetTransform(matrix.Scaling(0, 0, 0))
}

func TestSphere_NormalAt(t *testing.T) {
	third := math.Sqrt(3) / 3

	tests := []struct {
		name      string
		transform matrix.Matrix
		point     core.Tuple
		expected  core.Tuple
	}{
		{"x axis", matrix.Identity(4), core.Point(1, 0, 0), core.Vector(1, 0, 0)},
		{"y axis", matrix.Identity(4), core.Point(0, 1, 0), core.Vector(0, 1, 0)},
		{"z axis", matrix.Identity(4), core.Point(0, 0, 1), core.Vector(0, 0, 1)},
		{"nonaxial", matrix.Identity(4), core.Point(third, third, third), core.Vector(third, third, third)},
		{
			name:      "translated",
			transform: matrix.Translation(0, 1, 0),
			point:     core.Point(0, 1.70711, -0.70711),
			expected:  core.Vector(0, 0.70711, -0.70711),
		},
		{
			name:      "scaled and rotated",
			transform: matrix.Identity(4).RotateZ(math.Pi/5).Scale(1, 0.5, 1),
			point:     core.Point(0, math.Sqrt2/2, -math.Sqrt2/2),
			expected:  core.Vector(0, 0.97014, -0.24254),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSphere().MustSetTransform(tt.transform)
			got := s.NormalAt(tt.point)
			if !got.Equal(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
			if !got.IsVector() {
				t.Errorf("Normal should be a vector, got w=%f", got.W)
			}
			if !core.ApproxEqual(got.Magnitude(), 1) {
				t.Errorf("Normal should be normalized, got length %f", got.Magnitude())
			}
		})
	}
}

func TestSphere_NormalIsUnitLengthOnSurface(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	s := NewSphere()

	for i := 0; i < 500; i++ {
		dir := core.Vector(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1).Normalize()
		if dir.Magnitude() == 0 {
			continue
		}
		p := core.Point(dir.X, dir.Y, dir.Z)
		n := s.NormalAt(p)
		if !core.ApproxEqual(n.Magnitude(), 1) {
			t.Fatalf("Normal at %v should have unit length, got %f", p, n.Magnitude())
		}
		if !n.Equal(dir) {
			t.Fatalf("Normal at %v on a unit sphere should equal the position vector, got %v", p, n)
		}
	}
}

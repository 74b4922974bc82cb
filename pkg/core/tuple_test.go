package core

import (
	"math"
	"testing"
)

func TestTuple_PointAndVector(t *testing.T) {
	p := Point(4.3, -4.2, 3.1)
	if !p.IsPoint() || p.IsVector() {
		t.Errorf("Expected %v to be a point", p)
	}

	v := Vector(4.3, -4.2, 3.1)
	if !v.IsVector() || v.IsPoint() {
		t.Errorf("Expected %v to be a vector", v)
	}

	if p != NewTuple(4.3, -4.2, 3.1, 1) {
		t.Errorf("Point should equal tuple with w=1, got %v", p)
	}
}

func TestTuple_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		got      Tuple
		expected Tuple
	}{
		{
			name:     "point plus vector is a point",
			got:      Point(3, -2, 5).Add(Vector(-2, 3, 1)),
			expected: Point(1, 1, 6),
		},
		{
			name:     "point minus point is a vector",
			got:      Point(3, 2, 1).Subtract(Point(5, 6, 7)),
			expected: Vector(-2, -4, -6),
		},
		{
			name:     "point minus vector is a point",
			got:      Point(3, 2, 1).Subtract(Vector(5, 6, 7)),
			expected: Point(-2, -4, -6),
		},
		{
			name:     "vector minus vector is a vector",
			got:      Vector(3, 2, 1).Subtract(Vector(5, 6, 7)),
			expected: Vector(-2, -4, -6),
		},
		{
			name:     "negate",
			got:      NewTuple(1, -2, 3, -4).Negate(),
			expected: NewTuple(-1, 2, -3, 4),
		},
		{
			name:     "multiply by scalar",
			got:      NewTuple(1, -2, 3, -4).Multiply(3.5),
			expected: NewTuple(3.5, -7, 10.5, -14),
		},
		{
			name:     "multiply by fraction",
			got:      NewTuple(1, -2, 3, -4).Multiply(0.5),
			expected: NewTuple(0.5, -1, 1.5, -2),
		},
		{
			name:     "divide by scalar",
			got:      NewTuple(1, -2, 3, -4).Divide(2),
			expected: NewTuple(0.5, -1, 1.5, -2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestTuple_Magnitude(t *testing.T) {
	tests := []struct {
		vector   Tuple
		expected float64
	}{
		{Vector(1, 0, 0), 1},
		{Vector(0, 1, 0), 1},
		{Vector(0, 0, 1), 1},
		{Vector(1, 2, 3), math.Sqrt(14)},
		{Vector(-1, -2, -3), math.Sqrt(14)},
	}

	for _, tt := range tests {
		if got := tt.vector.Magnitude(); !ApproxEqual(got, tt.expected) {
			t.Errorf("Magnitude of %v: expected %f, got %f", tt.vector, tt.expected, got)
		}
	}
}

func TestTuple_Normalize(t *testing.T) {
	if got := Vector(4, 0, 0).Normalize(); !got.Equal(Vector(1, 0, 0)) {
		t.Errorf("Expected (1,0,0), got %v", got)
	}

	got := Vector(1, 2, 3).Normalize()
	s := math.Sqrt(14)
	if !got.Equal(Vector(1/s, 2/s, 3/s)) {
		t.Errorf("Unexpected normalized vector %v", got)
	}
	if !ApproxEqual(got.Magnitude(), 1) {
		t.Errorf("Normalized vector should have unit length, got %f", got.Magnitude())
	}

	zero := Vector(0, 0, 0)
	if zero.Normalize() != zero {
		t.Errorf("Normalizing the zero vector should return it unchanged")
	}
}

func TestTuple_DotAndCross(t *testing.T) {
	a := Vector(1, 2, 3)
	b := Vector(2, 3, 4)

	if got := a.Dot(b); got != 20 {
		t.Errorf("Expected dot product 20, got %f", got)
	}
	if got := a.Cross(b); !got.Equal(Vector(-1, 2, -1)) {
		t.Errorf("Expected a x b = (-1,2,-1), got %v", got)
	}
	if got := b.Cross(a); !got.Equal(Vector(1, -2, 1)) {
		t.Errorf("Expected b x a = (1,-2,1), got %v", got)
	}
}

func TestTuple_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		vector   Tuple
		normal   Tuple
		expected Tuple
	}{
		{
			name:     "approaching at 45 degrees",
			vector:   Vector(1, -1, 0),
			normal:   Vector(0, 1, 0),
			expected: Vector(1, 1, 0),
		},
		{
			name:     "off a slanted surface",
			vector:   Vector(0, -1, 0),
			normal:   Vector(math.Sqrt2/2, math.Sqrt2/2, 0),
			expected: Vector(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vector.Reflect(tt.normal); !got.Equal(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTuple_EqualTolerance(t *testing.T) {
	a := Point(1, 2, 3)
	if !a.Equal(Point(1+Epsilon/2, 2, 3)) {
		t.Error("Tuples within epsilon should be equal")
	}
	if a.Equal(Point(1+Epsilon*2, 2, 3)) {
		t.Error("Tuples further apart than epsilon should differ")
	}
	if a.Equal(Vector(1, 2, 3)) {
		t.Error("A point should never equal a vector")
	}
}

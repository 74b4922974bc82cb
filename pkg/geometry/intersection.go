package geometry

import (
	"sort"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Intersection records where a ray met a shape. Object is the index of the
// shape in the collection the ray was traced against, not a pointer to it.
type Intersection struct {
	T      float64
	Object int
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object int) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is a list of intersections, usually sorted by T
type Intersections []Intersection

// Intersect traces ray against shape and tags every hit with index
func Intersect(ray Ray, shape Shape, index int) Intersections {
	ts := shape.Intersect(ray)
	if len(ts) == 0 {
		return nil
	}
	xs := make(Intersections, len(ts))
	for i, t := range ts {
		xs[i] = Intersection{T: t, Object: index}
	}
	return xs
}

// Sort orders the intersections by ascending T, keeping equal values in their original order
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}

// Hit returns the intersection with the smallest non-negative T.
// The first occurrence wins ties. ok is false when every T is negative.
func Hit(xs Intersections) (hit Intersection, ok bool) {
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !ok || x.T < hit.T {
			hit = x
			ok = true
		}
	}
	return hit, ok
}

// Computations is the shading state precomputed for a single hit.
// It is only valid while the ray that produced it is being evaluated.
type Computations struct {
	T       float64
	Object  int
	Point   core.Tuple // World-space hit point
	EyeV    core.Tuple // Unit vector back toward the eye
	NormalV core.Tuple // Unit surface normal facing the eye
	Inside  bool       // Whether the hit was seen from inside the shape
}

// PrepareComputations derives the shading state for hit on shape. When the
// normal points away from the eye the hit is inside the shape and the normal
// is flipped.
func PrepareComputations(ray Ray, hit Intersection, shape Shape) Computations {
	point := ray.Position(hit.T)
	comps := Computations{
		T:       hit.T,
		Object:  hit.Object,
		Point:   point,
		EyeV:    ray.Direction.Negate(),
		NormalV: shape.NormalAt(point),
	}

	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}
	return comps
}

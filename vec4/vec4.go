// Package vec4 provides the fixed 4-component vector used throughout the
// cornelius kernel.
//
// The ambient dimension of the kernel is always 4 (see package cornelius):
// positions and normals for the 2D and 3D cases are 4-vectors with the
// unused axes held at a fixed coordinate, rather than 2- or 3-vectors.
// Axes are addressed by runtime index (0..3) rather than by name, since
// which axis is "constant" and which are "free" varies per cell.
package vec4

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Vec is a 4-component vector or point.
type Vec [4]float64

// Add returns v + w.
func (v Vec) Add(w Vec) Vec {
	return Vec{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

// Sub returns v - w.
func (v Vec) Sub(w Vec) Vec {
	return Vec{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Dot returns the dot product of v and w.
func (v Vec) Dot(w Vec) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] + v[3]*w[3]
}

// Length returns the Euclidean norm of v.
func (v Vec) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// ManhattanDistance returns the L1 distance between v and w, used by the
// connectivity checks in Polygon.AddLine and Polyhedron.AddPolygon.
func (v Vec) ManhattanDistance(w Vec) float64 {
	return floats.Distance(v[:], w[:], 1)
}

// Mean returns the component-wise mean of pts. Mean of zero points is the
// zero vector.
func Mean(pts ...Vec) Vec {
	var sum Vec
	for _, p := range pts {
		sum = sum.Add(p)
	}
	if len(pts) == 0 {
		return sum
	}
	return sum.Scale(1 / float64(len(pts)))
}

// FlipToward negates v if it points away from reference, i.e. if their dot
// product is negative. This is the shared orientation tie-break used by
// every geometry element, grounded in the Cornelius reference
// implementation's GeneralGeometryElement::flip_normal_if_needed.
func FlipToward(v, reference Vec) Vec {
	if v.Dot(reference) < 0 {
		return v.Scale(-1)
	}
	return v
}

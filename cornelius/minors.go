package cornelius

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/deadsy/cornelius/vec4"
)

// minor2 returns the 2x2 determinant of the matrix formed by the components
// of a and b at axes p and q, i.e. a[p]*b[q] - a[q]*b[p]. Used by Polygon's
// centroid (triangle area) and normal (triangle cross product) formulas,
// which both reduce to signed 2x2 minors of the free-axis plane.
func minor2(a, b vec4.Vec, p, q int) float64 {
	m := mat.NewDense(2, 2, []float64{a[p], a[q], b[p], b[q]})
	return mat.Det(m)
}

// tetrahedronVolumeNormal computes the 4-vector whose components are the
// four signed 3x3 minors of the 3x4 matrix stacking a, b and c - the
// wedge product of three vectors in 4-space. Its magnitude is the volume of
// the tetrahedron spanned by a, b and c; the vector itself, once oriented
// outward, is the tetrahedron's contribution to a Polyhedron's normal,
// grounded in Polyhedron.cpp's tetrahedron_volume.
func tetrahedronVolumeNormal(a, b, c vec4.Vec) vec4.Vec {
	rows := [3]vec4.Vec{a, b, c}
	var n vec4.Vec
	for drop := 0; drop < 4; drop++ {
		cols := freeAxes(drop)
		data := make([]float64, 9)
		for r := 0; r < 3; r++ {
			for ci, axis := range cols {
				data[r*3+ci] = rows[r][axis]
			}
		}
		m := mat.NewDense(3, 3, data)
		det := mat.Det(m) / 6.0
		if drop%2 == 1 {
			det = -det
		}
		n[drop] = det
	}
	return n
}

func tetrahedronVolume(a, b, c vec4.Vec) float64 {
	return tetrahedronVolumeNormal(a, b, c).Length()
}

func triangleArea(a, b vec4.Vec, x1, x2, x3 int) float64 {
	m23 := minor2(a, b, x2, x3)
	m13 := minor2(a, b, x1, x3)
	m12 := minor2(a, b, x2, x1)
	return 0.5 * math.Sqrt(m23*m23+m13*m13+m12*m12)
}

func triangleNormal(a, b vec4.Vec, x1, x2, x3 int) vec4.Vec {
	var n vec4.Vec
	n[x1] = 0.5 * minor2(a, b, x2, x3)
	n[x2] = -0.5 * minor2(a, b, x1, x3)
	n[x3] = 0.5 * minor2(a, b, x1, x2)
	return n
}

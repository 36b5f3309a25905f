package cornelius

import "github.com/deadsy/cornelius/vec4"

// Line is the 1-dimensional surface element emitted by a Square: a cut
// segment between two of the square's four edges, together with a point
// known to lie outside the surface, used to orient the normal. Line is also
// the building block a Cube threads into Polygons.
type Line struct {
	lazyGeometry
	corners  [2]vec4.Vec // fixed endpoints, never reordered
	start    int         // 0 or 1, swapped by SwapEnds when threaded into a Polygon
	end      int
	out      vec4.Vec
	constAxes [2]int
	x1, x2   int
}

func newLine(corners [2]vec4.Vec, out vec4.Vec, constAxes [2]int) Line {
	free := freeAxes(constAxes[0], constAxes[1])
	return Line{
		corners:   corners,
		start:     0,
		end:       1,
		out:       out,
		constAxes: constAxes,
		x1:        free[0],
		x2:        free[1],
	}
}

// Start returns the line's current start point, honoring any SwapEnds call.
func (l *Line) Start() vec4.Vec { return l.corners[l.start] }

// End returns the line's current end point, honoring any SwapEnds call.
func (l *Line) End() vec4.Vec { return l.corners[l.end] }

// Outside returns the reference point known to lie outside the surface,
// used to orient this line's normal and any polygon/polyhedron built from it.
func (l *Line) Outside() vec4.Vec { return l.out }

// SwapEnds exchanges which corner is considered the start and which the end.
// Polygon.AddLine calls this to keep a threaded chain of lines tail-to-head
// connected; it does not affect Centroid or Normal, which always use the
// fixed underlying corner order.
func (l *Line) SwapEnds() {
	l.start, l.end = l.end, l.start
}

// Centroid returns the line's midpoint.
func (l *Line) Centroid() vec4.Vec {
	return l.getCentroid(func() vec4.Vec {
		return vec4.Mean(l.corners[0], l.corners[1])
	})
}

// Normal returns the line's outward unit-free (i.e. not normalized to unit
// length - its magnitude is the line's measure) perpendicular, the 2D
// (-dy,dx) rotation of the segment within its free-axis plane.
func (l *Line) Normal() vec4.Vec {
	return l.getNormal(func() vec4.Vec {
		c := l.Centroid()
		var n vec4.Vec
		n[l.x1] = -(l.corners[1][l.x2] - l.corners[0][l.x2])
		n[l.x2] = l.corners[1][l.x1] - l.corners[0][l.x1]
		return vec4.FlipToward(n, l.out.Sub(c))
	})
}

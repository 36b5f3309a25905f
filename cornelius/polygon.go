package cornelius

import "github.com/deadsy/cornelius/vec4"

// polygonConnectivityEpsilon bounds the Manhattan distance within which two
// line endpoints are considered the same point when threading lines into a
// Polygon, grounded in Polygon.cpp's add_line and its EPSILON.
const polygonConnectivityEpsilon = 1e-10

// Polygon is the 2-dimensional surface element a Cube assembles from the
// Lines emitted by its 6 constituent Squares: an ordered, closed chain of
// Lines lying in the plane orthogonal to the cube's single constant axis.
type Polygon struct {
	lazyGeometry
	constAxis  int
	x1, x2, x3 int
	lines      []Line
}

func newPolygon(constAxis int) *Polygon {
	free := freeAxes(constAxis)
	return &Polygon{
		constAxis: constAxis,
		x1:        free[0],
		x2:        free[1],
		x3:        free[2],
		lines:     make([]Line, 0, maxLines),
	}
}

func (p *Polygon) Lines() []Line { return p.lines }

// AddLine appends newLine to the polygon. If skipConnectivity is true, or
// the polygon is still empty, the line is appended unconditionally.
// Otherwise it is appended only if one of its endpoints coincides with the
// end point of the polygon's current last line, flipping the new line's
// start/end so the chain stays tail-to-head connected. Returns whether the
// line was added.
func (p *Polygon) AddLine(l Line, skipConnectivity bool) bool {
	if len(p.lines) == 0 || skipConnectivity {
		p.lines = append(p.lines, l)
		return true
	}
	lastEnd := p.lines[len(p.lines)-1].End()
	d1 := l.Start().ManhattanDistance(lastEnd)
	d2 := l.End().ManhattanDistance(lastEnd)
	if d1 < polygonConnectivityEpsilon || d2 < polygonConnectivityEpsilon {
		if d2 < polygonConnectivityEpsilon {
			l.SwapEnds()
		}
		p.lines = append(p.lines, l)
		return true
	}
	return false
}

// Centroid returns the polygon's area-weighted centroid: the mean of all
// line endpoints when the polygon is a bare triangle (3 lines, already
// planar), otherwise a fan-triangulation from that mean point weighted by
// each triangle's area.
func (p *Polygon) Centroid() vec4.Vec {
	return p.getCentroid(func() vec4.Vec {
		var pts []vec4.Vec
		for _, l := range p.lines {
			pts = append(pts, l.Start(), l.End())
		}
		mean := vec4.Mean(pts...)
		if len(p.lines) == 3 {
			return mean
		}

		var sumUp vec4.Vec
		sumDown := 0.0
		for _, l := range p.lines {
			s, e := l.Start(), l.End()
			a := s.Sub(mean)
			b := e.Sub(mean)
			area := triangleArea(a, b, p.x1, p.x2, p.x3)
			triCentroid := s.Add(e).Add(mean).Scale(1.0 / 3.0)
			sumUp = sumUp.Add(triCentroid.Scale(area))
			sumDown += area
		}
		return sumUp.Scale(1 / sumDown)
	})
}

// Normal returns the polygon's outward-oriented normal: for each line, the
// normal of the triangle it forms with the polygon's centroid, flipped
// toward that line's outside reference, then summed.
func (p *Polygon) Normal() vec4.Vec {
	return p.getNormal(func() vec4.Vec {
		c := p.Centroid()
		var sum vec4.Vec
		for _, l := range p.lines {
			a := l.Start().Sub(c)
			b := l.End().Sub(c)
			n := triangleNormal(a, b, p.x1, p.x2, p.x3)
			n[p.constAxis] = 0
			vOut := l.Outside().Sub(c)
			n = vec4.FlipToward(n, vOut)
			sum = sum.Add(n)
		}
		return sum
	})
}

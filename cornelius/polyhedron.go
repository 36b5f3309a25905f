package cornelius

import "github.com/deadsy/cornelius/vec4"

// polyhedronConnectivityEpsilon bounds the Manhattan distance within which
// two line endpoints are considered the same point when threading Polygons
// into a Polyhedron, grounded in Polyhedron.cpp's epsilon.
const polyhedronConnectivityEpsilon = 1e-10

// Polyhedron is the 3-dimensional surface element a Hypercube assembles
// from the Polygons emitted by its 8 constituent Cubes: an unordered set of
// Polygons, each possibly spanning a different constant axis, whose lines
// connect into a closed 3-manifold embedded in the 4D ambient space.
type Polyhedron struct {
	lazyGeometry
	polygons []*Polygon
}

func newPolyhedron() *Polyhedron {
	return &Polyhedron{}
}

func (ph *Polyhedron) Polygons() []*Polygon { return ph.polygons }

// tetrahedronCount is the number of lines across all polygons, i.e. the
// number of (line, polygon) tetrahedra the centroid/normal fan decomposition
// sums over.
func (ph *Polyhedron) tetrahedronCount() int {
	n := 0
	for _, p := range ph.polygons {
		n += len(p.Lines())
	}
	return n
}

// AddPolygon appends newPolygon to the polyhedron. If skipConnectivity is
// true, or the polyhedron is still empty, it is appended unconditionally.
// Otherwise it is appended only if any of its lines shares an endpoint, to
// within polyhedronConnectivityEpsilon, with any line of an already-added
// polygon.
func (ph *Polyhedron) AddPolygon(newPolygon *Polygon, skipConnectivity bool) bool {
	if len(ph.polygons) == 0 || skipConnectivity {
		ph.polygons = append(ph.polygons, newPolygon)
		return true
	}
	for _, existing := range ph.polygons {
		for _, l1 := range newPolygon.Lines() {
			for _, l2 := range existing.Lines() {
				if linesAreConnected(l1, l2) {
					ph.polygons = append(ph.polygons, newPolygon)
					return true
				}
			}
		}
	}
	return false
}

// linesAreConnected reports whether any endpoint of l1 coincides, to within
// polyhedronConnectivityEpsilon Manhattan distance, with any endpoint of l2.
func linesAreConnected(l1, l2 Line) bool {
	s1, e1 := l1.Start(), l1.End()
	s2, e2 := l2.Start(), l2.End()
	return s1.ManhattanDistance(s2) < polyhedronConnectivityEpsilon ||
		s1.ManhattanDistance(e2) < polyhedronConnectivityEpsilon ||
		e1.ManhattanDistance(s2) < polyhedronConnectivityEpsilon ||
		e1.ManhattanDistance(e2) < polyhedronConnectivityEpsilon
}

// Centroid returns the polyhedron's volume-weighted centroid via
// tetrahedral decomposition: every (line, polygon) pair forms a tetrahedron
// with the overall mean point and that polygon's own centroid, and the
// polyhedron centroid is the volume-weighted average of those tetrahedra's
// centers of mass.
func (ph *Polyhedron) Centroid() vec4.Vec {
	return ph.getCentroid(func() vec4.Vec {
		tetraCount := ph.tetrahedronCount()
		var meanSum vec4.Vec
		for _, p := range ph.polygons {
			for _, l := range p.Lines() {
				meanSum = meanSum.Add(l.Start()).Add(l.End())
			}
		}
		mean := meanSum.Scale(1 / (2.0 * float64(tetraCount)))

		var sumUp vec4.Vec
		sumDown := 0.0
		for _, p := range ph.polygons {
			pc := p.Centroid()
			for _, l := range p.Lines() {
				s, e := l.Start(), l.End()
				cm := s.Add(e).Add(pc).Add(mean).Scale(0.25)
				a := s.Sub(mean)
				b := e.Sub(mean)
				c := pc.Sub(mean)
				v := tetrahedronVolume(a, b, c)
				sumUp = sumUp.Add(cm.Scale(v))
				sumDown += v
			}
		}
		return sumUp.Scale(1 / sumDown)
	})
}

// Normal returns the polyhedron's outward-oriented normal: for each (line,
// polygon) tetrahedron, the wedge-product normal of the vectors from the
// polyhedron's own centroid to the line's endpoints and the polygon's
// centroid, flipped toward that line's outside reference (reset per line,
// not accumulated - see DESIGN.md's Open Question log), then summed.
func (ph *Polyhedron) Normal() vec4.Vec {
	return ph.getNormal(func() vec4.Vec {
		c := ph.Centroid()
		var sum vec4.Vec
		for _, p := range ph.polygons {
			pc := p.Centroid()
			for _, l := range p.Lines() {
				a := l.Start().Sub(c)
				b := l.End().Sub(c)
				cc := pc.Sub(c)
				n := tetrahedronVolumeNormal(a, b, cc)
				vOut := l.Outside().Sub(c)
				n = vec4.FlipToward(n, vOut)
				sum = sum.Add(n)
			}
		}
		return sum
	})
}

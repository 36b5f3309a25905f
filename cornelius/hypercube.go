package cornelius

import "github.com/deadsy/cornelius/vec4"

// Hypercube is the top of the dimensional cascade: a 4-dimensional cell with
// 16 corner values arranged in a 2x2x2x2 grid. ConstructPolyhedra splits it
// into its 8 constituent Cubes, collects their Polygons, and threads those
// into 1 or more Polyhedra.
type Hypercube struct {
	vals [2][2][2][2]float64
	dx   vec4.Vec

	cubes     []*Cube
	polygons  []*Polygon
	polyhedra []*Polyhedron
	ambiguous bool
}

func newHypercube(vals [2][2][2][2]float64, dx vec4.Vec) *Hypercube {
	return &Hypercube{vals: vals, dx: dx}
}

func (h *Hypercube) Ambiguous() bool          { return h.ambiguous }
func (h *Hypercube) Polyhedra() []*Polyhedron { return h.polyhedra }

// splitToCubes slices the hypercube's 2x2x2x2 corner grid along each of its
// 4 axes, at each of the 2 levels, producing the hypercube's 8 Cubes in
// axis-major order. It also returns the number of corners below threshold,
// counted once (during the axis-0 pass, since every corner is visited
// exactly once there).
func (h *Hypercube) splitToCubes(threshold float64) int {
	belowThreshold := 0
	h.cubes = make([]*Cube, 0, 8)
	for i := 0; i < 4; i++ {
		for j := 0; j < 2; j++ {
			var cu [2][2][2]float64
			for ci1 := 0; ci1 < 2; ci1++ {
				for ci2 := 0; ci2 < 2; ci2++ {
					for ci3 := 0; ci3 < 2; ci3++ {
						var v float64
						switch i {
						case 0:
							v = h.vals[j][ci1][ci2][ci3]
						case 1:
							v = h.vals[ci1][j][ci2][ci3]
						case 2:
							v = h.vals[ci1][ci2][j][ci3]
						default:
							v = h.vals[ci1][ci2][ci3][j]
						}
						cu[ci1][ci2][ci3] = v
						if i == 0 && h.vals[j][ci1][ci2][ci3] < threshold {
							belowThreshold++
						}
					}
				}
			}
			h.cubes = append(h.cubes, newCube(cu, i, float64(j)*h.dx[i], h.dx))
		}
	}
	return belowThreshold
}

// ConstructPolyhedra splits the hypercube into cubes, gathers their
// polygons, determines whether the resulting surface is ambiguous, and
// threads the polygons into 1 or more Polyhedra.
func (h *Hypercube) ConstructPolyhedra(threshold float64) error {
	belowThreshold := h.splitToCubes(threshold)

	h.polygons = nil
	for _, cube := range h.cubes {
		if err := cube.ConstructPolygons(threshold); err != nil {
			return err
		}
		h.polygons = append(h.polygons, cube.Polygons()...)
	}
	if len(h.polygons) == 0 {
		return nil
	}

	h.checkAmbiguity(belowThreshold)

	if !h.ambiguous {
		ph := newPolyhedron()
		for _, p := range h.polygons {
			ph.AddPolygon(p, true)
		}
		h.polyhedra = []*Polyhedron{ph}
		return nil
	}

	used := make([]bool, len(h.polygons))
	usedCount := 0
	for usedCount < len(h.polygons) {
		ph := newPolyhedron()
		for i := 0; i < len(h.polygons); i++ {
			if !used[i] && ph.AddPolygon(h.polygons[i], false) {
				used[i] = true
				usedCount++
				i = -1
			}
		}
		h.polyhedra = append(h.polyhedra, ph)
	}
	return nil
}

// checkAmbiguity marks the hypercube ambiguous if any of its cubes is, or if
// exactly 24 lines were found in total and the smaller of {corners below
// threshold, corners above threshold} is exactly 2.
func (h *Hypercube) checkAmbiguity(belowThreshold int) {
	for _, cube := range h.cubes {
		if cube.Ambiguous() {
			h.ambiguous = true
			return
		}
	}
	lines := 0
	for _, cube := range h.cubes {
		lines += len(cube.Lines())
	}
	n := belowThreshold
	if n > 8 {
		n = 16 - n
	}
	if lines == 24 && n == 2 {
		h.ambiguous = true
	}
}

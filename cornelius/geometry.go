package cornelius

import "github.com/deadsy/cornelius/vec4"

// lazyGeometry is the shared capability described by the original's
// GeneralGeometryElement: every surface element (Line, Polygon, Polyhedron)
// has a centroid and a normal, each computed once on first use and cached.
// Rather than a base class and virtual dispatch, each concrete type embeds
// this struct and supplies its own compute closure.
type lazyGeometry struct {
	centroid     vec4.Vec
	centroidDone bool
	normal       vec4.Vec
	normalDone   bool
}

func (g *lazyGeometry) getCentroid(compute func() vec4.Vec) vec4.Vec {
	if !g.centroidDone {
		g.centroid = compute()
		g.centroidDone = true
	}
	return g.centroid
}

func (g *lazyGeometry) getNormal(compute func() vec4.Vec) vec4.Vec {
	if !g.normalDone {
		g.normal = compute()
		g.normalDone = true
	}
	return g.normal
}

// freeAxes returns, in ascending order, the axes of the 4-dimensional
// ambient space not listed in excluded. Every component (Square, Line,
// Polygon) that fixes a subset of axes constant derives its remaining
// "free" axes this way, so x1 < x2 < ... always holds.
func freeAxes(excluded ...int) []int {
	var free []int
	for i := 0; i < 4; i++ {
		skip := false
		for _, e := range excluded {
			if e == i {
				skip = true
				break
			}
		}
		if !skip {
			free = append(free, i)
		}
	}
	return free
}

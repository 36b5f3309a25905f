// Package collector indexes the surface elements produced by repeated,
// per-cell Frontend calls so a caller driving a simulation grid can run
// nearest-element queries across a whole run, without the per-cell kernel
// itself knowing about the grid. It is caller-side bookkeeping over
// already-produced elements, not part of the per-cell hot path.
package collector

import (
	"github.com/dhconnelly/rtreego"

	"github.com/deadsy/cornelius/cornelius"
	"github.com/deadsy/cornelius/vec4"
)

const pointTolerance = 1e-9

// entry adapts one surface element to rtreego.Spatial: a tiny rectangle,
// pointTolerance long on each side, at the element's centroid (projected to the 3
// spatial axes; rtreego indexes real-valued Euclidean space, and Cornelius
// cells are embedded in up to 4 dimensions including the time/proper-time
// axis, which the index ignores).
type entry struct {
	cornelius.Element
	cellID int
}

func (e *entry) Bounds() *rtreego.Rect {
	p := rtreego.Point{e.Centroid[1], e.Centroid[2], e.Centroid[3]}
	rect, _ := rtreego.NewRect(p, []float64{pointTolerance, pointTolerance, pointTolerance})
	return rect
}

// Collector accumulates surface elements across many Frontend.FindSurfaceNd
// calls and answers nearest-neighbor queries over their centroids.
type Collector struct {
	tree *rtreego.Rtree
}

// NewCollector returns an empty Collector. minChildren/maxChildren tune the
// underlying R-tree's branching factor (rtreego.NewTree's own parameters);
// 25/50 are reasonable defaults for a few thousand elements per run.
func NewCollector() *Collector {
	return &Collector{tree: rtreego.NewTree(3, 25, 50)}
}

// Add indexes one cell's found elements, storing each with cellID.
// Nearest returns only the elements, not the cellIDs they were added with.
func (c *Collector) Add(cellID int, elements []cornelius.Element) {
	for _, e := range elements {
		c.tree.Insert(&entry{Element: e, cellID: cellID})
	}
}

// Nearest returns the up to k surface elements whose centroids (spatial
// axes only) are closest to p.
func (c *Collector) Nearest(p vec4.Vec, k int) []cornelius.Element {
	query := rtreego.Point{p[1], p[2], p[3]}
	results := c.tree.NearestNeighbors(k, query)
	out := make([]cornelius.Element, 0, len(results))
	for _, r := range results {
		out = append(out, r.(*entry).Element)
	}
	return out
}

// Size returns the number of elements indexed so far.
func (c *Collector) Size() int {
	return c.tree.Size()
}

package cornelius

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deadsy/cornelius/vec4"
)

func trianglePolygon(constAxis int, a, b, c vec4.Vec, out vec4.Vec) *Polygon {
	p := newPolygon(constAxis)
	free := freeAxes(constAxis)
	p.AddLine(newLine([2]vec4.Vec{a, b}, out, [2]int{constAxis, free[2]}), true)
	p.AddLine(newLine([2]vec4.Vec{b, c}, out, [2]int{constAxis, free[2]}), true)
	p.AddLine(newLine([2]vec4.Vec{c, a}, out, [2]int{constAxis, free[2]}), true)
	return p
}

func TestPolyhedronAddPolygonConnectivity(t *testing.T) {
	a := vec4.Vec{0, 0, 0, 0}
	b := vec4.Vec{0, 1, 0, 0}
	c := vec4.Vec{0, 0, 1, 0}
	d := vec4.Vec{0, 1, 1, 1}
	out := vec4.Vec{0, 2, 2, 2}

	p1 := trianglePolygon(0, a, b, c, out)
	p2 := trianglePolygon(0, b, c, d, out) // shares edge b-c with p1
	far := vec4.Vec{5, 5, 5, 5}
	p3 := trianglePolygon(0, far, far.Add(vec4.Vec{0, 1, 0, 0}), far.Add(vec4.Vec{0, 0, 1, 0}), out)

	ph := newPolyhedron()
	require.True(t, ph.AddPolygon(p1, false))
	assert.True(t, ph.AddPolygon(p2, false))
	assert.False(t, ph.AddPolygon(p3, false))
	assert.Len(t, ph.Polygons(), 2)
}

func TestPolyhedronTetrahedronCount(t *testing.T) {
	a := vec4.Vec{0, 0, 0, 0}
	b := vec4.Vec{0, 1, 0, 0}
	c := vec4.Vec{0, 0, 1, 0}
	out := vec4.Vec{0, 2, 2, 0}

	ph := newPolyhedron()
	ph.AddPolygon(trianglePolygon(0, a, b, c, out), true)
	ph.AddPolygon(trianglePolygon(0, a, c, b, out), true)
	assert.Equal(t, 6, ph.tetrahedronCount())
}

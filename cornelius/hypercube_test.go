package cornelius

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deadsy/cornelius/vec4"
)

// TestHypercubeSingleCornerIsUnambiguousTetrahedron mirrors
// TestCubeSingleCornerIsUnambiguousTriangle one dimension up: cutting off one
// corner of a unit hypercube produces a single, non-ambiguous polyhedron
// bounded by 4 triangular faces.
func TestHypercubeSingleCornerIsUnambiguousTetrahedron(t *testing.T) {
	var vals [2][2][2][2]float64
	vals[1][1][1][1] = 1
	h := newHypercube(vals, vec4.Vec{1, 1, 1, 1})
	require.NoError(t, h.ConstructPolyhedra(0.5))

	assert.False(t, h.Ambiguous())
	require.Len(t, h.Polyhedra(), 1)
	ph := h.Polyhedra()[0]
	assert.Len(t, ph.Polygons(), 4)
	for _, p := range ph.Polygons() {
		assert.Len(t, p.Lines(), 3)
	}
}

func TestHypercubeAllBelowThresholdProducesNoPolyhedra(t *testing.T) {
	var vals [2][2][2][2]float64
	h := newHypercube(vals, vec4.Vec{1, 1, 1, 1})
	require.NoError(t, h.ConstructPolyhedra(0.5))
	assert.Empty(t, h.Polyhedra())
	assert.False(t, h.Ambiguous())
}

func TestHypercubeSplitToCubesCountsBelowThreshold(t *testing.T) {
	var vals [2][2][2][2]float64
	vals[1][1][1][1] = 1 // exactly one corner at/above threshold
	h := newHypercube(vals, vec4.Vec{1, 1, 1, 1})
	below := h.splitToCubes(0.5)
	assert.Equal(t, 15, below)
	assert.Len(t, h.cubes, 8)
}

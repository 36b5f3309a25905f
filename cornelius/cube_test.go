package cornelius

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deadsy/cornelius/vec4"
)

func TestCubeSingleCornerIsUnambiguousTriangle(t *testing.T) {
	var vals [2][2][2]float64
	vals[1][1][1] = 1
	cu := newCube(vals, 0, 0, vec4.Vec{1, 1, 1, 1})
	require.NoError(t, cu.ConstructPolygons(0.5))

	assert.False(t, cu.Ambiguous())
	require.Len(t, cu.Lines(), 3)
	require.Len(t, cu.Polygons(), 1)
	assert.Len(t, cu.Polygons()[0].Lines(), 3)
}

// TestCubeOppositeCornersIsAmbiguous exercises checkAmbiguity's 6-line
// "opposite corner" rule: two diagonally opposite corners above threshold,
// the rest below, produces 6 lines that must thread into 2 separate
// triangles rather than one connected loop.
func TestCubeOppositeCornersIsAmbiguous(t *testing.T) {
	var vals [2][2][2]float64
	vals[0][0][0] = 1
	vals[1][1][1] = 1
	cu := newCube(vals, 0, 0, vec4.Vec{1, 1, 1, 1})
	require.NoError(t, cu.ConstructPolygons(0.5))

	assert.True(t, cu.Ambiguous())
	require.Len(t, cu.Lines(), 6)
	require.Len(t, cu.Polygons(), 2)
	for _, p := range cu.Polygons() {
		assert.Len(t, p.Lines(), 3)
	}
}

func TestCubeAllBelowThresholdProducesNoLines(t *testing.T) {
	var vals [2][2][2]float64
	cu := newCube(vals, 0, 0, vec4.Vec{1, 1, 1, 1})
	require.NoError(t, cu.ConstructPolygons(0.5))
	assert.Empty(t, cu.Lines())
	assert.Empty(t, cu.Polygons())
	assert.False(t, cu.Ambiguous())
}

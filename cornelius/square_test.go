package cornelius

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deadsy/cornelius/vec4"
)

func unitDx() vec4.Vec { return vec4.Vec{1, 1, 1, 1} }

func TestSquareNoCuts(t *testing.T) {
	sq := newSquare([2][2]float64{{0, 0}, {0, 0}}, [2]int{0, 1}, [2]float64{0, 0}, unitDx())
	require.NoError(t, sq.ConstructLines(0.5))
	assert.Empty(t, sq.Lines())
	assert.False(t, sq.Ambiguous())

	sq = newSquare([2][2]float64{{1, 1}, {1, 1}}, [2]int{0, 1}, [2]float64{0, 0}, unitDx())
	require.NoError(t, sq.ConstructLines(0.5))
	assert.Empty(t, sq.Lines())
}

func TestSquareTwoCuts(t *testing.T) {
	// bottom row below threshold, top row above: one horizontal cut line.
	sq := newSquare([2][2]float64{{0, 0}, {1, 1}}, [2]int{0, 1}, [2]float64{0, 0}, unitDx())
	require.NoError(t, sq.ConstructLines(0.5))
	require.Len(t, sq.Lines(), 1)
	l := sq.Lines()[0]
	assert.InDelta(t, 0.5, l.Centroid()[2], 1e-12)
	assert.InDelta(t, 0.5, l.Centroid()[3], 1e-12)
	assert.InDelta(t, 1.0, l.Normal().Length(), 1e-9)
}

func TestSquareDegenerateCornerEpsilonOffset(t *testing.T) {
	// corner (0,0) sits exactly on the threshold, (1,0) is below: the cut on
	// edge 1 must be offset by cornerEpsilon away from (0,0), never exactly 0.
	sq := newSquare([2][2]float64{{0.5, 1}, {0.0, 1}}, [2]int{0, 1}, [2]float64{0, 0}, unitDx())
	require.NoError(t, sq.ConstructLines(0.5))
	require.NotEmpty(t, sq.cuts)
	found := false
	for _, c := range sq.cuts {
		if c[1] == 0 { // the edge-1 cut has x2 == 0
			assert.InDelta(t, cornerEpsilon, c[0], 1e-15)
			assert.NotEqual(t, 0.0, c[0])
			found = true
		}
	}
	assert.True(t, found, "expected a degenerate-corner cut on edge 1")
}

func TestSquareFourCutsAmbiguous(t *testing.T) {
	// Checkerboard corners: (0,0) and (1,1) above threshold, (0,1) and (1,0)
	// below - the classic 4-cut ambiguous case.
	sq := newSquare([2][2]float64{{1, 0}, {0, 1}}, [2]int{0, 1}, [2]float64{0, 0}, unitDx())
	require.NoError(t, sq.ConstructLines(0.5))
	assert.True(t, sq.Ambiguous())
	assert.Len(t, sq.Lines(), 2)
}

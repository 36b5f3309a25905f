package vec4

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddSub(t *testing.T) {
	a := Vec{1, 2, 3, 4}
	b := Vec{0.5, 0.5, 0.5, 0.5}
	assert.Equal(t, Vec{1.5, 2.5, 3.5, 4.5}, a.Add(b))
	assert.Equal(t, Vec{0.5, 1.5, 2.5, 3.5}, a.Sub(b))
}

func TestDotAndLength(t *testing.T) {
	a := Vec{3, 4, 0, 0}
	assert.InDelta(t, 25.0, a.Dot(a), 1e-12)
	assert.InDelta(t, 5.0, a.Length(), 1e-12)
}

func TestManhattanDistance(t *testing.T) {
	a := Vec{0, 0, 0, 0}
	b := Vec{1, -2, 3, -4}
	assert.InDelta(t, 10.0, a.ManhattanDistance(b), 1e-12)
}

func TestMean(t *testing.T) {
	assert.Equal(t, Vec{}, Mean())
	a := Vec{0, 0, 0, 0}
	b := Vec{2, 4, 6, 8}
	assert.Equal(t, Vec{1, 2, 3, 4}, Mean(a, b))
}

func TestFlipToward(t *testing.T) {
	n := Vec{1, 0, 0, 0}
	away := Vec{-1, 0, 0, 0}
	toward := Vec{1, 0, 0, 0}
	assert.Equal(t, Vec{-1, 0, 0, 0}, FlipToward(n, away))
	assert.Equal(t, Vec{1, 0, 0, 0}, FlipToward(n, toward))
}

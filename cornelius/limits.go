package cornelius

// Per-cell working-set limits, named after the sizes the original C++
// reference fixes at compile time (Cornelius.h's MAX_ELEMENTS,
// Cube.h's MAX_POLYGONS, Polygon.h's MAX_LINES). Go slices grow on demand
// regardless, so these are only used to size the initial allocation and
// avoid repeated reallocation on the common case - never enforced as a hard
// cap.
const (
	maxElements = 10
	maxPolygons = 8
	maxLines    = 24
)

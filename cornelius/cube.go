package cornelius

import "github.com/deadsy/cornelius/vec4"

// Cube is a 3-dimensional cell cross-section: 8 corner values arranged in a
// 2x2x2 grid over its three free axes (x1, x2, x3), with one axis held
// constant (constAxis/constVal). ConstructPolygons splits the cube into its
// 6 constituent Squares, collects their Lines, and threads those into 1 or
// more Polygons.
type Cube struct {
	vals      [2][2][2]float64
	constAxis int
	constVal  float64
	dx        vec4.Vec
	x1, x2, x3 int

	lines     []Line
	polygons  []*Polygon
	ambiguous bool
}

func newCube(vals [2][2][2]float64, constAxis int, constVal float64, dx vec4.Vec) *Cube {
	free := freeAxes(constAxis)
	return &Cube{
		vals:      vals,
		constAxis: constAxis,
		constVal:  constVal,
		dx:        dx,
		x1:        free[0],
		x2:        free[1],
		x3:        free[2],
	}
}

func (c *Cube) Ambiguous() bool      { return c.ambiguous }
func (c *Cube) Lines() []Line        { return c.lines }
func (c *Cube) Polygons() []*Polygon { return c.polygons }

// splitToSquares slices the cube's 2x2x2 corner grid along each of its 3
// free axes, at each of the 2 levels, producing the cube's 6 Squares in
// axis-major order.
func (c *Cube) splitToSquares() []*Square {
	squares := make([]*Square, 0, 6)
	free := [3]int{c.x1, c.x2, c.x3}
	for _, i := range free {
		for j := 0; j < 2; j++ {
			var sq [2][2]float64
			for ci1 := 0; ci1 < 2; ci1++ {
				for ci2 := 0; ci2 < 2; ci2++ {
					switch i {
					case c.x1:
						sq[ci1][ci2] = c.vals[j][ci1][ci2]
					case c.x2:
						sq[ci1][ci2] = c.vals[ci1][j][ci2]
					default:
						sq[ci1][ci2] = c.vals[ci1][ci2][j]
					}
				}
			}
			constAxes := [2]int{c.constAxis, i}
			constVals := [2]float64{c.constVal, float64(j) * c.dx[i]}
			squares = append(squares, newSquare(sq, constAxes, constVals, c.dx))
		}
	}
	return squares
}

// ConstructPolygons splits the cube into squares, gathers their cut lines,
// determines whether the resulting surface is ambiguous, and threads the
// lines into 1 or more Polygons.
func (c *Cube) ConstructPolygons(threshold float64) error {
	squares := c.splitToSquares()

	c.lines = nil
	for _, sq := range squares {
		if err := sq.ConstructLines(threshold); err != nil {
			return err
		}
		c.lines = append(c.lines, sq.Lines()...)
	}
	if len(c.lines) == 0 {
		return nil
	}

	c.checkAmbiguity(squares)

	if !c.ambiguous {
		poly := newPolygon(c.constAxis)
		for _, l := range c.lines {
			poly.AddLine(l, true)
		}
		c.polygons = []*Polygon{poly}
		return nil
	}

	c.polygons = make([]*Polygon, 0, maxPolygons)
	used := make([]bool, len(c.lines))
	usedCount := 0
	for usedCount < len(c.lines) {
		if len(c.lines)-usedCount < 3 {
			corners := make([]float64, 0, 8)
			for i := 0; i < 2; i++ {
				for j := 0; j < 2; j++ {
					for k := 0; k < 2; k++ {
						corners = append(corners, c.vals[i][j][k])
					}
				}
			}
			return &TopologyError{
				Op:      "Cube.ConstructPolygons",
				Detail:  "cannot construct a polygon from fewer than 3 remaining lines",
				Corners: corners,
			}
		}
		poly := newPolygon(c.constAxis)
		for i := 0; i < len(c.lines); i++ {
			if !used[i] && poly.AddLine(c.lines[i], false) {
				used[i] = true
				usedCount++
				i = -1
			}
		}
		c.polygons = append(c.polygons, poly)
	}
	return nil
}

// checkAmbiguity marks the cube ambiguous if any of its squares is, or if
// exactly 6 lines were found in total - the "opposite corner" configuration
// where the surface elements sit at two diagonally opposite corners.
func (c *Cube) checkAmbiguity(squares []*Square) {
	for _, sq := range squares {
		if sq.Ambiguous() {
			c.ambiguous = true
			return
		}
	}
	if len(c.lines) == 6 {
		c.ambiguous = true
	}
}

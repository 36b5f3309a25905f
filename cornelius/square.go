package cornelius

import "github.com/deadsy/cornelius/vec4"

// cornerEpsilon is the offset applied when a corner value exactly equals the
// threshold: the cut is placed this fraction of the edge length away from
// the equal endpoint, rather than exactly on top of it, so the rest of the
// algorithm never has to reason about a zero-length sub-edge, grounded in
// Square.cpp's ALMOST_ZERO/ALMOST_ONE.
const cornerEpsilon = 1e-9

const almostOne = 1 - cornerEpsilon

// Square is a 2-dimensional cell cross-section: 4 corner values arranged in
// a 2x2 grid over its two free axes (x1, x2), with the remaining two axes
// held at fixed coordinates (constAxes/constVals). ConstructLines locates
// where the threshold crosses the square's 4 edges and emits 0, 1 or 2
// Lines.
type Square struct {
	points    [2][2]float64
	constAxes [2]int
	constVals [2]float64
	dx        vec4.Vec
	x1, x2    int

	cuts      [][2]float64
	outside   [2][2]float64
	lines     []Line
	ambiguous bool
}

func newSquare(points [2][2]float64, constAxes [2]int, constVals [2]float64, dx vec4.Vec) *Square {
	free := freeAxes(constAxes[0], constAxes[1])
	return &Square{
		points:    points,
		constAxes: constAxes,
		constVals: constVals,
		dx:        dx,
		x1:        free[0],
		x2:        free[1],
	}
}

func (s *Square) Ambiguous() bool { return s.ambiguous }
func (s *Square) Lines() []Line   { return s.lines }

// addCut appends one local (x1,x2) cut coordinate.
func (s *Square) addCut(x1, x2 float64) {
	s.cuts = append(s.cuts, [2]float64{x1, x2})
}

// ConstructLines locates the threshold crossing of this square's 4 edges
// and threads the resulting cut points into 0, 1 or 2 Lines.
func (s *Square) ConstructLines(threshold float64) error {
	above := 0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if s.points[i][j] >= threshold {
				above++
			}
		}
	}
	if above == 0 || above == 4 {
		s.lines = nil
		return nil
	}

	if err := s.endsOfEdge(threshold); err != nil {
		return err
	}
	if len(s.cuts) > 0 {
		s.findOutside(threshold)
	}

	for i := 0; i+1 < len(s.cuts); i += 2 {
		var a, b vec4.Vec
		a[s.x1], a[s.x2] = s.cuts[i][0], s.cuts[i][1]
		a[s.constAxes[0]], a[s.constAxes[1]] = s.constVals[0], s.constVals[1]
		b[s.x1], b[s.x2] = s.cuts[i+1][0], s.cuts[i+1][1]
		b[s.constAxes[0]], b[s.constAxes[1]] = s.constVals[0], s.constVals[1]

		o := s.outside[i/2]
		var out vec4.Vec
		out[s.x1], out[s.x2] = o[0], o[1]
		out[s.constAxes[0]], out[s.constAxes[1]] = s.constVals[0], s.constVals[1]

		s.lines = append(s.lines, newLine([2]vec4.Vec{a, b}, out, s.constAxes))
	}
	return nil
}

// endsOfEdge walks the square's 4 fixed edges in order (00-10, 00-01, 10-11,
// 01-11) and records a cut wherever the threshold strictly straddles the
// edge, or one endpoint exactly equals the threshold while the other is
// below it.
func (s *Square) endsOfEdge(threshold float64) error {
	p00 := s.points[0][0] - threshold
	p01 := s.points[0][1] - threshold
	p10 := s.points[1][0] - threshold
	p11 := s.points[1][1] - threshold

	// Edge 1: (0,0)-(1,0), varying x1, x2 fixed at 0.
	switch {
	case p00*p10 < 0:
		s.addCut(p00/(s.points[0][0]-s.points[1][0])*s.dx[s.x1], 0)
	case s.points[0][0] == threshold && s.points[1][0] < threshold:
		s.addCut(cornerEpsilon*s.dx[s.x1], 0)
	case s.points[1][0] == threshold && s.points[0][0] < threshold:
		s.addCut(almostOne*s.dx[s.x1], 0)
	}

	// Edge 2: (0,0)-(0,1), varying x2, x1 fixed at 0.
	switch {
	case p00*p01 < 0:
		s.addCut(0, p00/(s.points[0][0]-s.points[0][1])*s.dx[s.x2])
	case s.points[0][0] == threshold && s.points[0][1] < threshold:
		s.addCut(0, cornerEpsilon*s.dx[s.x2])
	case s.points[0][1] == threshold && s.points[0][0] < threshold:
		s.addCut(0, almostOne*s.dx[s.x2])
	}

	// Edge 3: (1,0)-(1,1), varying x2, x1 fixed at dx[x1].
	switch {
	case p10*p11 < 0:
		s.addCut(s.dx[s.x1], p10/(s.points[1][0]-s.points[1][1])*s.dx[s.x2])
	case s.points[1][0] == threshold && s.points[1][1] < threshold:
		s.addCut(s.dx[s.x1], cornerEpsilon*s.dx[s.x2])
	case s.points[1][1] == threshold && s.points[1][0] < threshold:
		s.addCut(s.dx[s.x1], almostOne*s.dx[s.x2])
	}

	// Edge 4: (0,1)-(1,1), varying x1, x2 fixed at dx[x2].
	switch {
	case p01*p11 < 0:
		s.addCut(p01/(s.points[0][1]-s.points[1][1])*s.dx[s.x1], s.dx[s.x2])
	case s.points[0][1] == threshold && s.points[1][1] < threshold:
		s.addCut(cornerEpsilon*s.dx[s.x1], s.dx[s.x2])
	case s.points[1][1] == threshold && s.points[0][1] < threshold:
		s.addCut(almostOne*s.dx[s.x1], s.dx[s.x2])
	}

	n := len(s.cuts)
	if n != 0 && n != 2 && n != 4 {
		return &TopologyError{
			Op:      "Square.ConstructLines",
			Detail:  "unexpected cut count, must be 0, 2 or 4",
			Corners: []float64{s.points[0][0], s.points[0][1], s.points[1][0], s.points[1][1]},
		}
	}
	return nil
}

// findOutside picks, for each emitted line, a point known to lie outside the
// surface (on the "below threshold" side). With 4 cuts the square is
// ambiguous: the default "\\" pairing of cuts [0,1] and [2,3] is swapped to
// "//" whenever corner (0,0) is on the same side of the threshold as the
// square's center value.
func (s *Square) findOutside(threshold float64) {
	if len(s.cuts) == 4 {
		s.ambiguous = true

		middle := 0.25 * (s.points[0][0] + s.points[0][1] + s.points[1][0] + s.points[1][1])
		if (s.points[0][0] < threshold && middle < threshold) ||
			(s.points[0][0] > threshold && middle > threshold) {
			s.cuts[1], s.cuts[2] = s.cuts[2], s.cuts[1]
		}

		if middle < threshold {
			s.outside[0] = [2]float64{0.5 * s.dx[s.x1], 0.5 * s.dx[s.x2]}
			s.outside[1] = s.outside[0]
		} else if s.points[0][0] < threshold {
			s.outside[0] = [2]float64{0, 0}
			s.outside[1] = [2]float64{s.dx[s.x1], s.dx[s.x2]}
		} else {
			s.outside[0] = [2]float64{s.dx[s.x1], 0}
			s.outside[1] = [2]float64{0, s.dx[s.x2]}
		}
		return
	}

	var out [2]float64
	numberOut := 0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if s.points[i][j] < threshold {
				out[0] += float64(i) * s.dx[s.x1]
				out[1] += float64(j) * s.dx[s.x2]
				numberOut++
			}
		}
	}
	if numberOut > 0 {
		out[0] /= float64(numberOut)
		out[1] /= float64(numberOut)
	}
	s.outside[0] = out
	s.outside[1] = out
}

// Package debug renders the cut geometry produced by the cornelius kernel
// to formats a human can inspect outside of unit test assertions: an SVG
// dump of a single 2D Square's cut points and emitted Lines, and a DXF
// wireframe dump of a 3D Cube's assembled Polygons. Neither is on the
// per-cell hot path; both are opt-in debugging aids, the spiritual
// successors of the original's text-only find_surface_3d_print.
package debug

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/deadsy/cornelius/vec4"
)

// SquareCut describes one cut segment found on a square's boundary, in the
// square's own local (x1, x2) coordinates.
type SquareCut struct {
	Start, End [2]float64
}

// scale converts a local square coordinate to an SVG pixel coordinate within
// a canvas of the given size, leaving a small margin.
func scale(v, dxMax float64, canvas int) int {
	const margin = 20
	usable := float64(canvas - 2*margin)
	if dxMax == 0 {
		return margin
	}
	return margin + int(v/dxMax*usable)
}

// DumpSquareSVG renders a square's 4 corners, its cut points and the Lines
// threaded between them to w, for visually inspecting the ambiguity
// resolution of the 4-cut case.
func DumpSquareSVG(w io.Writer, corners [2][2]float64, threshold, dx1, dx2 float64, cuts []SquareCut, canvas int) {
	s := svg.New(w)
	s.Start(canvas, canvas)
	defer s.End()

	dxMax := dx1
	if dx2 > dxMax {
		dxMax = dx2
	}

	s.Rect(scale(0, dxMax, canvas), scale(0, dxMax, canvas),
		scale(dx1, dxMax, canvas)-scale(0, dxMax, canvas),
		scale(dx2, dxMax, canvas)-scale(0, dxMax, canvas),
		"fill:none;stroke:gray")

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			x := scale(float64(i)*dx1, dxMax, canvas)
			y := scale(float64(j)*dx2, dxMax, canvas)
			style := "fill:blue"
			if corners[i][j] >= threshold {
				style = "fill:red"
			}
			s.Circle(x, y, 3, style)
		}
	}

	for _, c := range cuts {
		x1, y1 := scale(c.Start[0], dxMax, canvas), scale(c.Start[1], dxMax, canvas)
		x2, y2 := scale(c.End[0], dxMax, canvas), scale(c.End[1], dxMax, canvas)
		s.Line(x1, y1, x2, y2, "stroke:black;stroke-width:2")
		s.Circle(x1, y1, 2, "fill:green")
		s.Circle(x2, y2, 2, "fill:green")
	}
}

// SquareCutFromVec is a small helper for callers building SquareCut
// values from vec4.Vec endpoints restricted to two free axes.
func SquareCutFromVec(start, end vec4.Vec, x1, x2 int) SquareCut {
	return SquareCut{
		Start: [2]float64{start[x1], start[x2]},
		End:   [2]float64{end[x1], end[x2]},
	}
}

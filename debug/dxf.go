package debug

import (
	"github.com/yofu/dxf"

	"github.com/deadsy/cornelius/vec4"
)

// PolygonLine is one edge of an assembled polygon, in full 4D ambient
// coordinates, restricted by the caller to the 3 axes to project onto.
type PolygonLine struct {
	Start, End vec4.Vec
}

// DumpPolygonsDXF writes a wireframe of the given polygon edges as 3D LINE
// entities, projected through axes (ax0, ax1, ax2), to filename. This is a
// CAD-consumable sibling of the original's find_surface_3d_print text dump,
// letting a Cube's cut geometry be opened directly in a DXF viewer.
func DumpPolygonsDXF(filename string, lines []PolygonLine, ax0, ax1, ax2 int) error {
	d := dxf.NewDrawing()

	for _, l := range lines {
		d.Line(l.Start[ax0], l.Start[ax1], l.Start[ax2], l.End[ax0], l.End[ax1], l.End[ax2])
	}

	return d.SaveAs(filename)
}

// Package cornelius locates constant-value isosurfaces inside a single 2, 3
// or 4-dimensional grid cell, given the field's value at the cell's 4, 8 or
// 16 corners. It implements the Cornelius algorithm (Huovinen & Holopainen,
// 2012) by recursively splitting the cell along the dimensional cascade
// Hypercube -> Cube -> Square -> Line, locating where the threshold crosses
// each Square's edges, and threading the resulting cut points back up into
// closed Lines, Polygons or Polyhedra with outward-oriented normals.
//
// A Frontend holds the per-cell working state (corner grid, threshold, step
// sizes) for one dimensionality; callers looping over a simulation grid are
// expected to hold one Frontend per goroutine and call it once per cell.
package cornelius

import (
	"fmt"
	"io"
	"os"

	"github.com/deadsy/cornelius/vec4"
)

// Element is one surface element found within a cell: its centroid and its
// outward-oriented normal, both expressed in the full 4-dimensional ambient
// space.
type Element struct {
	Centroid vec4.Vec
	Normal   vec4.Vec
}

// Frontend wraps the three dimensional entry points (2D, 3D, 4D) behind one
// initialized instance, mirroring the original Cornelius class's combination
// of init_cornelius, find_surface_Nd and the accessors.
type Frontend struct {
	dimension   int
	threshold   float64
	dx          vec4.Vec
	initialized bool

	elements []Element

	printSink    io.WriteCloser
	printEnabled bool
}

// Initialize configures the Frontend for cells of the given dimension
// (2, 3 or 4), with surface threshold and per-axis step sizes dx (exactly
// dimension entries, in (dt, dx1, ..., dx[dimension-1]) order). Internally
// dx is left-padded with 1.0 to the full 4-component ambient form, mirroring
// the original's init_cornelius.
func (f *Frontend) Initialize(dimension int, threshold float64, dx []float64) error {
	if dimension < 2 || dimension > 4 {
		return &DimensionError{Op: "Initialize", Got: dimension}
	}
	if len(dx) != dimension {
		return fmt.Errorf("cornelius: Initialize: dx has %d entries, want %d", len(dx), dimension)
	}
	f.dimension = dimension
	f.threshold = threshold
	pad := 4 - dimension
	for i := 0; i < 4; i++ {
		if i < pad {
			f.dx[i] = 1.0
		} else {
			f.dx[i] = dx[i-pad]
		}
	}
	f.initialized = true
	f.elements = make([]Element, 0, maxElements)
	return nil
}

// EnablePrint opens filename and turns on text-form printing of the
// triangles found by FindSurface3DPrint, mirroring init_print_cornelius.
// Call Close when done to flush and release the file.
func (f *Frontend) EnablePrint(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cornelius: EnablePrint: %w", err)
	}
	f.printSink = file
	f.printEnabled = true
	return nil
}

// Close releases the print sink opened by EnablePrint, if any.
func (f *Frontend) Close() error {
	if f.printSink == nil {
		return nil
	}
	err := f.printSink.Close()
	f.printSink = nil
	f.printEnabled = false
	return err
}

func (f *Frontend) requireDimension(op string, want int) error {
	if !f.initialized {
		return &DimensionError{Op: op}
	}
	if f.dimension != want {
		return &DimensionError{Op: op, Expected: f.dimension, Got: want}
	}
	return nil
}

// FindSurface2D finds the surface elements (Lines) of a 2D cell. cu[i][j]
// is the corner value at local position (i*dx1, j*dx2).
func (f *Frontend) FindSurface2D(cu [2][2]float64) error {
	if err := f.requireDimension("FindSurface2D", 2); err != nil {
		return err
	}
	sq := newSquare(cu, [2]int{0, 1}, [2]float64{0, 0}, f.dx)
	if err := sq.ConstructLines(f.threshold); err != nil {
		return err
	}
	f.elements = f.elements[:0]
	for _, l := range sq.Lines() {
		f.elements = append(f.elements, Element{Centroid: l.Centroid(), Normal: l.Normal()})
	}
	return nil
}

// FindSurface3D finds the surface elements (Polygons) of a 3D cell. cu[i][j][k]
// is the corner value at local position (i*dx1, j*dx2, k*dx3).
func (f *Frontend) FindSurface3D(cu [2][2][2]float64) error {
	return f.surface3D(cu, vec4.Vec{}, false)
}

// FindSurface3DPrint behaves as FindSurface3D, additionally writing the
// triangles of every found Polygon, offset by position, to the print sink
// opened by EnablePrint (if printing is enabled).
func (f *Frontend) FindSurface3DPrint(cu [2][2][2]float64, position vec4.Vec) error {
	return f.surface3D(cu, position, true)
}

func (f *Frontend) surface3D(cu [2][2][2]float64, position vec4.Vec, doPrint bool) error {
	if err := f.requireDimension("FindSurface3D", 3); err != nil {
		return err
	}
	above := 0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				if cu[i][j][k] >= f.threshold {
					above++
				}
			}
		}
	}
	f.elements = f.elements[:0]
	if above == 0 || above == 8 {
		return nil
	}

	cube := newCube(cu, 0, 0, f.dx)
	if err := cube.ConstructPolygons(f.threshold); err != nil {
		return err
	}
	for _, p := range cube.Polygons() {
		f.elements = append(f.elements, Element{Centroid: p.Centroid(), Normal: p.Normal()})
		if doPrint && f.printEnabled {
			if err := printPolygon(f.printSink, p, position); err != nil {
				return err
			}
		}
	}
	return nil
}

// FindSurface4D finds the surface elements (Polyhedra) of a 4D cell.
// cu[i][j][k][l] is the corner value at local position
// (i*dx0, j*dx1, k*dx2, l*dx3).
func (f *Frontend) FindSurface4D(cu [2][2][2][2]float64) error {
	if err := f.requireDimension("FindSurface4D", 4); err != nil {
		return err
	}
	above := 0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				for l := 0; l < 2; l++ {
					if cu[i][j][k][l] >= f.threshold {
						above++
					}
				}
			}
		}
	}
	f.elements = f.elements[:0]
	if above == 0 || above == 16 {
		return nil
	}

	hc := newHypercube(cu, f.dx)
	if err := hc.ConstructPolyhedra(f.threshold); err != nil {
		return err
	}
	for _, ph := range hc.Polyhedra() {
		f.elements = append(f.elements, Element{Centroid: ph.Centroid(), Normal: ph.Normal()})
	}
	return nil
}

// ElementCount returns the number of surface elements found by the most
// recent FindSurfaceNd call.
func (f *Frontend) ElementCount() int { return len(f.elements) }

// Centroid returns the axis-th component (0 .. dimension-1) of the
// index-th surface element's centroid, in the cell's own coordinates (the
// ambient leading axes are trimmed off).
func (f *Frontend) Centroid(index, axis int) (float64, error) {
	v, err := f.componentAt(index, axis, "Centroid")
	if err != nil {
		return 0, err
	}
	return v, nil
}

// Normal returns the axis-th component (0 .. dimension-1) of the
// index-th surface element's normal, in the cell's own coordinates.
func (f *Frontend) Normal(index, axis int) (float64, error) {
	if index < 0 || index >= len(f.elements) {
		return 0, &IndexError{Op: "Normal", Index: index, Bound: len(f.elements)}
	}
	if axis < 0 || axis >= f.dimension {
		return 0, &IndexError{Op: "Normal", Index: axis, Bound: f.dimension}
	}
	return f.elements[index].Normal[4-f.dimension+axis], nil
}

func (f *Frontend) componentAt(index, axis int, op string) (float64, error) {
	if index < 0 || index >= len(f.elements) {
		return 0, &IndexError{Op: op, Index: index, Bound: len(f.elements)}
	}
	if axis < 0 || axis >= f.dimension {
		return 0, &IndexError{Op: op, Index: axis, Bound: f.dimension}
	}
	return f.elements[index].Centroid[4-f.dimension+axis], nil
}

// Centroids returns every found element's centroid, trimmed to the cell's
// own dimension.
func (f *Frontend) Centroids() [][]float64 {
	out := make([][]float64, len(f.elements))
	pad := 4 - f.dimension
	for i, e := range f.elements {
		out[i] = append([]float64{}, e.Centroid[pad:]...)
	}
	return out
}

// Normals returns every found element's normal, trimmed to the cell's own
// dimension.
func (f *Frontend) Normals() [][]float64 {
	out := make([][]float64, len(f.elements))
	pad := 4 - f.dimension
	for i, e := range f.elements {
		out[i] = append([]float64{}, e.Normal[pad:]...)
	}
	return out
}

// CentroidsPadded returns every found element's centroid as a full
// 4-component vector, with leading axes zero when dimension < 4.
func (f *Frontend) CentroidsPadded() [][4]float64 {
	out := make([][4]float64, len(f.elements))
	for i, e := range f.elements {
		out[i] = [4]float64(e.Centroid)
	}
	return out
}

// NormalsPadded returns every found element's normal as a full 4-component
// vector, with leading axes zero when dimension < 4.
func (f *Frontend) NormalsPadded() [][4]float64 {
	out := make([][4]float64, len(f.elements))
	for i, e := range f.elements {
		out[i] = [4]float64(e.Normal)
	}
	return out
}

// printPolygon writes one line per triangle (start, end, polygon centroid),
// each offset by position and restricted to the polygon's own free axes -
// the non-constant axes of the enclosing cube - mirroring Polygon::print.
func printPolygon(w io.Writer, p *Polygon, position vec4.Vec) error {
	c := p.Centroid()
	ax := [3]int{p.x1, p.x2, p.x3}
	for _, l := range p.Lines() {
		s, e := l.Start(), l.End()
		_, err := fmt.Fprintf(w, "%g %g %g %g %g %g %g %g %g\n",
			position[ax[0]]+s[ax[0]], position[ax[1]]+s[ax[1]], position[ax[2]]+s[ax[2]],
			position[ax[0]]+e[ax[0]], position[ax[1]]+e[ax[1]], position[ax[2]]+e[ax[2]],
			position[ax[0]]+c[ax[0]], position[ax[1]]+c[ax[1]], position[ax[2]]+c[ax[2]])
		if err != nil {
			return fmt.Errorf("cornelius: printPolygon: %w", err)
		}
	}
	return nil
}

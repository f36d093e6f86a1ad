// Package terrain builds island heightfields by dropping "dirtballs": radial
// impacts that raise every cell within a radius of a random center, strongest
// at the center and weaker by one unit per unit of distance.
package terrain

import (
	"islandgen/internal/core"

	"github.com/chewxy/math32"
)

// MaxElevation is the upper bound of a normalized heightfield.
const MaxElevation = 255

// centerMarker is written to an impact's center before the radial pass.
const centerMarker = 1

// Params holds the values that drive accumulation.
type Params struct {
	Seed        int64
	Radius      int
	PowerRating int
	NumImpacts  int
}

// HeightField owns a grid of accumulated elevation values.
type HeightField struct {
	grid *core.IntGrid
}

// New returns an all-zero heightfield. Non-positive dimensions are rejected
// with core.ErrInvalidSize.
func New(w, h int) (*HeightField, error) {
	g, err := core.NewIntGrid(w, h)
	if err != nil {
		return nil, err
	}
	return &HeightField{grid: g}, nil
}

// Size returns the field dimensions.
func (f *HeightField) Size() core.Size { return f.grid.Size() }

// Cells exposes the row-major elevation values.
func (f *HeightField) Cells() []int { return f.grid.Cells() }

// At returns the elevation at (x, y).
func (f *HeightField) At(x, y int) int { return f.grid.At(x, y) }

// Clone returns an independent copy of the field.
func (f *HeightField) Clone() *HeightField { return &HeightField{grid: f.grid.Clone()} }

// Reset zeroes every cell.
func (f *HeightField) Reset() { f.grid.Clear() }

// Accumulate drops p.NumImpacts dirtballs using a generator seeded with p.Seed.
// The result depends only on p and the field size.
func (f *HeightField) Accumulate(p Params) {
	d := NewDropper(f, p)
	for d.Step() {
	}
}

// Drop applies a single impact centered on (cx, cy).
//
// The center is first reset to the marker value. Every cell whose Euclidean
// distance d from the center is at most radius then gains power - floor(d),
// which may be negative. At the center the distance-zero contribution replaces
// the marker, so the center always ends at exactly power.
func (f *HeightField) Drop(cx, cy, radius, power int) {
	g := f.grid
	if !g.In(cx, cy) {
		return
	}
	g.Set(cx, cy, centerMarker)

	// Cells outside the bounding box are farther than radius and contribute
	// nothing, so the scan is clipped to it.
	x0, x1 := max(cx-radius, 0), min(cx+radius, g.W-1)
	y0, y1 := max(cy-radius, 0), min(cy+radius, g.H-1)
	r := float32(radius)
	for y := y0; y <= y1; y++ {
		row := g.Row(y)
		dy := y - cy
		for x := x0; x <= x1; x++ {
			dx := x - cx
			d := math32.Sqrt(float32(dx*dx + dy*dy))
			if d > r {
				continue
			}
			impact := power - int(math32.Floor(d))
			if dx == 0 && dy == 0 {
				row[x] = impact
				continue
			}
			row[x] += impact
		}
	}
}

// Normalize rescales the field so the highest cell becomes MaxElevation.
// Each cell becomes trunc(cell / max * 255) computed in single precision.
// Negative cells clamp to zero, and a field whose maximum is not positive is
// left all zero instead of dividing by zero.
func (f *HeightField) Normalize() {
	cells := f.grid.Cells()
	highest := cells[0]
	for _, v := range cells[1:] {
		if v > highest {
			highest = v
		}
	}
	if highest <= 0 {
		f.grid.Clear()
		return
	}

	top := float32(highest)
	for i, v := range cells {
		if v <= 0 {
			cells[i] = 0
			continue
		}
		cells[i] = int(float32(v) / top * MaxElevation)
	}
}

package core

import (
	"errors"
	"fmt"
)

// ErrInvalidSize reports a grid dimension that is zero or negative.
var ErrInvalidSize = errors.New("grid dimensions must be positive")

// IntGrid stores a 2D grid of integer cell values in row-major order.
type IntGrid struct {
	W, H int
	data []int
}

// NewIntGrid allocates a zeroed grid with the given dimensions.
func NewIntGrid(w, h int) (*IntGrid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return &IntGrid{W: w, H: h, data: make([]int, w*h)}, nil
}

// Size returns the grid dimensions.
func (g *IntGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *IntGrid) Cells() []int { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *IntGrid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *IntGrid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the value stored at (x, y).
func (g *IntGrid) At(x, y int) int { return g.data[y*g.W+x] }

// Set stores v at (x, y).
func (g *IntGrid) Set(x, y, v int) { g.data[y*g.W+x] = v }

// Row returns the cells of row y as a subslice of the backing buffer.
func (g *IntGrid) Row(y int) []int { return g.data[y*g.W : (y+1)*g.W] }

// Clone returns a deep copy of the grid.
func (g *IntGrid) Clone() *IntGrid {
	return &IntGrid{W: g.W, H: g.H, data: append([]int(nil), g.data...)}
}

// Clear fills the grid with zeros.
func (g *IntGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

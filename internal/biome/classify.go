package biome

import (
	"islandgen/internal/core"
	"islandgen/internal/terrain"
)

// Thresholds holds the band edges derived from a waterline.
type Thresholds struct {
	WaterLine int
	// HalfWater separates deep from shallow water.
	HalfWater int
	// Grass, Forest and Mountain are the lowest elevations of those bands.
	Grass    int
	Forest   int
	Mountain int
}

// NewThresholds derives the band edges for waterLine. The land bands start at
// 15%, 40% and 80% of the way from the waterline to the top of the range,
// each offset truncated to an integer.
func NewThresholds(waterLine int) Thresholds {
	land := float64(terrain.MaxElevation - waterLine)
	return Thresholds{
		WaterLine: waterLine,
		HalfWater: waterLine / 2,
		Grass:     waterLine + int(land*0.15),
		Forest:    waterLine + int(land*0.40),
		Mountain:  waterLine + int(land*0.80),
	}
}

// Classify maps one normalized elevation to its biome.
func (t Thresholds) Classify(v int) Biome {
	switch {
	case v < t.HalfWater:
		return DeepWater
	case v <= t.WaterLine:
		return ShallowWater
	case v < t.Grass:
		return Desert
	case v < t.Forest:
		return Grass
	case v < t.Mountain:
		return Forest
	default:
		return Mountain
	}
}

// Grid is a row-major grid of biome labels matching a heightfield.
type Grid struct {
	W, H   int
	labels []Biome
}

// Classify derives the biome grid for a normalized heightfield.
func Classify(f *terrain.HeightField, waterLine int) *Grid {
	t := NewThresholds(waterLine)
	size := f.Size()
	g := &Grid{W: size.W, H: size.H, labels: make([]Biome, size.Cells())}
	for i, v := range f.Cells() {
		g.labels[i] = t.Classify(v)
	}
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.W, H: g.H} }

// Labels exposes the row-major labels. Callers must not modify them.
func (g *Grid) Labels() []Biome { return g.labels }

// At returns the biome at column x of row y.
func (g *Grid) At(x, y int) Biome { return g.labels[y*g.W+x] }

// Row returns the labels of row y.
func (g *Grid) Row(y int) []Biome { return g.labels[y*g.W : (y+1)*g.W] }

// Counts returns how many cells fall into each biome.
func (g *Grid) Counts() [Count]int {
	var counts [Count]int
	for _, b := range g.labels {
		counts[b]++
	}
	return counts
}

// LandFraction returns the share of cells above the waterline.
func (g *Grid) LandFraction() float64 {
	if len(g.labels) == 0 {
		return 0
	}
	land := 0
	for _, b := range g.labels {
		if !b.Water() {
			land++
		}
	}
	return float64(land) / float64(len(g.labels))
}

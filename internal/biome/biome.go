// Package biome classifies normalized elevations into terrain bands.
package biome

import "image/color"

// Biome enumerates the terrain classes, ordered from lowest to highest.
type Biome uint8

const (
	DeepWater Biome = iota
	ShallowWater
	Desert
	Grass
	Forest
	Mountain
)

// Count is the number of biomes.
const Count = int(Mountain) + 1

var biomeNames = [Count]string{"deep water", "shallow water", "desert", "grass", "forest", "mountain"}

var biomeSymbols = [Count]byte{'#', '~', '.', '-', '*', '^'}

// palette holds the fixed raster colors. Alpha is always zero.
var palette = [Count]color.NRGBA{
	DeepWater:    {R: 89, G: 111, B: 161},
	ShallowWater: {R: 131, G: 182, B: 196},
	Desert:       {R: 228, G: 191, B: 139},
	Grass:        {R: 159, G: 178, B: 101},
	Forest:       {R: 100, G: 137, B: 95},
	Mountain:     {R: 181, G: 186, B: 182},
}

// All lists every biome in ascending order.
func All() []Biome {
	return []Biome{DeepWater, ShallowWater, Desert, Grass, Forest, Mountain}
}

// Valid reports whether b is one of the defined biomes.
func (b Biome) Valid() bool { return int(b) < Count }

// String returns the human readable biome name.
func (b Biome) String() string {
	if !b.Valid() {
		return "unknown"
	}
	return biomeNames[b]
}

// Symbol returns the console glyph for the biome.
func (b Biome) Symbol() byte {
	if !b.Valid() {
		return '?'
	}
	return biomeSymbols[b]
}

// Color returns the raster color for the biome.
func (b Biome) Color() color.NRGBA {
	if !b.Valid() {
		return color.NRGBA{}
	}
	return palette[b]
}

// Water reports whether the biome lies at or below the waterline.
func (b Biome) Water() bool { return b == DeepWater || b == ShallowWater }

// FromSymbol maps a console glyph back to its biome.
func FromSymbol(sym byte) (Biome, bool) {
	for i, s := range biomeSymbols {
		if s == sym {
			return Biome(i), true
		}
	}
	return 0, false
}

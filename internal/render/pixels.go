package render

import (
	"image/color"

	"islandgen/internal/biome"
)

// fillBiomeRGBA converts biome labels into RGBA pixels in buf using the biome
// palette with the given alpha.
func fillBiomeRGBA(buf []byte, labels []biome.Biome, alpha uint8) {
	for i, b := range labels {
		base := i * 4
		col := b.Color()
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = alpha
	}
}

// fillRampRGBA converts normalized elevations into RGBA pixels using ramp,
// which must hold one color per elevation level. Out of range values clamp.
func fillRampRGBA(buf []byte, cells []int, ramp []color.RGBA) {
	last := len(ramp) - 1
	for i, v := range cells {
		idx := min(max(v, 0), last)
		base := i * 4
		col := ramp[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Package render turns generated islands into images and writes them out.
package render

import (
	"image"

	"islandgen/internal/biome"
	"islandgen/internal/terrain"
)

// Raster returns the biome grid as an image where pixel (col, row) holds the
// color of cell (row, col). Alpha is zero for every pixel, as in the classic
// 32-bit bitmap output.
func Raster(g *biome.Grid) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.W, g.H))
	fillBiomeRGBA(img.Pix, g.Labels(), 0)
	return img
}

// Opaque is like Raster but with full alpha, for display and PNG output.
func Opaque(g *biome.Grid) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.W, g.H))
	fillBiomeRGBA(img.Pix, g.Labels(), 0xff)
	return img
}

// Elevation renders a normalized heightfield through the elevation ramp for
// the given waterline.
func Elevation(f *terrain.HeightField, waterLine int) *image.RGBA {
	size := f.Size()
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	fillRampRGBA(img.Pix, f.Cells(), ElevationRamp(waterLine))
	return img
}

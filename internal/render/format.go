package render

import (
	"fmt"
	"image/png"
	"io"

	"islandgen/internal/core"
	"islandgen/internal/island"

	"golang.org/x/image/bmp"
)

// Options tunes exporters that support it.
type Options struct {
	// Scale is the pixel size of one cell in previews.
	Scale int
}

// Exporter writes an island in one output format.
type Exporter struct {
	Ext   string
	Write func(w io.Writer, isl *island.Island, opts Options) error
}

var exporters = core.NewRegistry[Exporter]("export format")

// Register adds an exporter under the provided format name.
func Register(name string, e Exporter) {
	if e.Write == nil {
		return
	}
	exporters.Register(name, e)
}

// Lookup returns the exporter for a format name, suggesting a close match
// when the name is unknown.
func Lookup(name string) (Exporter, error) { return exporters.Lookup(name) }

// Formats lists the registered format names.
func Formats() []string { return exporters.Names() }

// WriteBMP encodes the biome raster as a 32-bit bitmap with zero alpha.
func WriteBMP(w io.Writer, isl *island.Island, _ Options) error {
	return bmp.Encode(w, Raster(isl.Biomes))
}

// WritePNG encodes the opaque biome raster as a PNG.
func WritePNG(w io.Writer, isl *island.Island, _ Options) error {
	return png.Encode(w, Opaque(isl.Biomes))
}

// WritePreview encodes the scaled preview with legend as a PNG.
func WritePreview(w io.Writer, isl *island.Island, opts Options) error {
	return png.Encode(w, Preview(isl.Biomes, opts.Scale))
}

// WriteHeightmap encodes the normalized elevations through the elevation ramp.
func WriteHeightmap(w io.Writer, isl *island.Island, _ Options) error {
	return png.Encode(w, Elevation(isl.Height, isl.Config.Params.WaterLine))
}

func percent(n int, total float64) string {
	if total <= 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(n)/total)
}

func init() {
	Register("bmp", Exporter{Ext: ".bmp", Write: WriteBMP})
	Register("png", Exporter{Ext: ".png", Write: WritePNG})
	Register("preview", Exporter{Ext: ".png", Write: WritePreview})
	Register("heightmap", Exporter{Ext: ".png", Write: WriteHeightmap})
}

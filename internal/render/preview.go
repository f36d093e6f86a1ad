package render

import (
	"image"

	"islandgen/internal/biome"

	"github.com/fogleman/gg"
)

const (
	legendRowHeight = 16
	legendSwatch    = 10
	legendPad       = 4
)

// Preview draws the biome grid scaled up by scale with a legend strip below
// it listing each biome with its share of the map.
func Preview(g *biome.Grid, scale int) image.Image {
	if scale <= 0 {
		scale = 1
	}
	mapW, mapH := g.W*scale, g.H*scale
	width := max(mapW, 160)
	height := mapH + legendRowHeight*biome.Count + legendPad*2

	dc := gg.NewContext(width, height)
	dc.SetRGB(0.1, 0.1, 0.12)
	dc.Clear()

	for y := 0; y < g.H; y++ {
		for x, b := range g.Row(y) {
			setBiomeColor(dc, b)
			dc.DrawRectangle(float64(x*scale), float64(y*scale), float64(scale), float64(scale))
			dc.Fill()
		}
	}

	counts := g.Counts()
	total := float64(g.W * g.H)
	for i, b := range biome.All() {
		top := float64(mapH + legendPad + i*legendRowHeight)
		setBiomeColor(dc, b)
		dc.DrawRectangle(legendPad, top+3, legendSwatch, legendSwatch)
		dc.Fill()

		dc.SetRGB(0.9, 0.9, 0.9)
		label := string(b.Symbol()) + " " + b.String()
		dc.DrawString(label, legendPad*2+legendSwatch, top+legendRowHeight-4)
		dc.DrawStringAnchored(percent(counts[b], total), float64(width-legendPad), top+legendRowHeight-4, 1, 0)
	}
	return dc.Image()
}

func setBiomeColor(dc *gg.Context, b biome.Biome) {
	c := b.Color()
	dc.SetRGB255(int(c.R), int(c.G), int(c.B))
}

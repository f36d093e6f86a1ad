package render

import (
	"image/color"

	"islandgen/internal/terrain"

	"github.com/hsluv/hsluv-go"
)

const (
	waterHue = 250.0
	lowHue   = 130.0
	highHue  = 40.0
)

// ElevationRamp returns one color per normalized elevation level. Levels at or
// below the waterline are blues that lighten toward the shore; land runs from
// green to brown and fades to white at the highest level. Hues are blended in
// HSLuv so equal steps look like equal changes in brightness.
func ElevationRamp(waterLine int) []color.RGBA {
	ramp := make([]color.RGBA, terrain.MaxElevation+1)
	for v := range ramp {
		if v <= waterLine {
			t := 1.0
			if waterLine > 0 {
				t = float64(v) / float64(waterLine)
			}
			ramp[v] = hsluvColor(waterHue, 70, 25+35*t)
			continue
		}
		t := float64(v-waterLine) / float64(terrain.MaxElevation-waterLine)
		ramp[v] = hsluvColor(lowHue+(highHue-lowHue)*t, 60-40*t, 45+50*t)
	}
	return ramp
}

func hsluvColor(h, s, l float64) color.RGBA {
	r, g, b := hsluv.HsluvToRGB(h, s, l)
	return color.RGBA{
		clampUnit(r),
		clampUnit(g),
		clampUnit(b),
		0xff,
	}
}

func clampUnit(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	default:
		return uint8(v * 0xff)
	}
}

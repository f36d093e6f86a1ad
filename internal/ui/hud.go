//go:build ebiten

package ui

import (
	"image/color"

	"islandgen/internal/biome"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	hudLineHeight = 14
	hudPad        = 6
	hudWidth      = 230
	swatchSize    = 9
)

var (
	hudBackground = color.RGBA{R: 0, G: 0, B: 0, A: 170}
	hudText       = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	impactMarker  = color.RGBA{R: 255, G: 60, B: 40, A: 255}
)

// HUD draws the status panel, legend and latest impact marker.
type HUD struct {
	scale  int
	hidden bool
}

// NewHUD constructs a HUD for a map drawn at the given scale.
func NewHUD(scale int) *HUD {
	if scale <= 0 {
		scale = 1
	}
	return &HUD{scale: scale}
}

// Update toggles visibility with the H key.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.hidden = !h.hidden
	}
}

// Draw renders the HUD on top of the map.
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	if s.LastX >= 0 && s.LastY >= 0 && s.Dropped < s.Total {
		sz := float32(max(h.scale, 3))
		cx := float32(s.LastX*h.scale) + float32(h.scale)/2
		cy := float32(s.LastY*h.scale) + float32(h.scale)/2
		vector.DrawFilledRect(screen, cx-sz/2, cy-sz/2, sz, sz, impactMarker, false)
	}
	if h.hidden {
		return
	}

	lines := append(s.Lines(), Help()...)
	entries := biome.All()
	height := hudPad*2 + hudLineHeight*(len(lines)+len(entries))
	vector.DrawFilledRect(screen, 0, 0, hudWidth, float32(height), hudBackground, false)

	y := hudPad + hudLineHeight - 3
	for _, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, hudPad, y, hudText)
		y += hudLineHeight
	}
	for _, b := range entries {
		c := b.Color()
		c.A = 0xff
		vector.DrawFilledRect(screen, hudPad, float32(y-swatchSize), swatchSize, swatchSize, c, false)
		text.Draw(screen, string(b.Symbol())+" "+b.String(), basicfont.Face7x13, hudPad+swatchSize+6, y, hudText)
		y += hudLineHeight
	}
}

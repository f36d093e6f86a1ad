// Package console prints heightfields, biome maps and run summaries as text.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"islandgen/internal/biome"
	"islandgen/internal/core"
	"islandgen/internal/island"
	"islandgen/internal/render"
	"islandgen/internal/terrain"

	"github.com/charmbracelet/lipgloss"
)

// terminal colors per biome, as ANSI color indices. Each symbol is drawn in
// its color on a background of the same color so the map reads as blocks.
var biomeANSI = [biome.Count]string{
	biome.DeepWater:    "4",
	biome.ShallowWater: "12",
	biome.Desert:       "3",
	biome.Grass:        "10",
	biome.Forest:       "2",
	biome.Mountain:     "8",
}

// Printer writes text renderings to an output stream.
type Printer struct {
	w      io.Writer
	color  bool
	styles [biome.Count]lipgloss.Style
	title  lipgloss.Style
}

// NewPrinter returns a Printer for w. When color is set, biome symbols are
// styled for the terminal; lipgloss drops the styling if w is not a terminal.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	p := &Printer{w: w, color: color, title: r.NewStyle().Bold(true)}
	for i, c := range biomeANSI {
		p.styles[i] = r.NewStyle().Foreground(lipgloss.Color(c)).Background(lipgloss.Color(c))
	}
	return p
}

// Raw prints the integer grid, four columns per cell.
func (p *Printer) Raw(f *terrain.HeightField) error {
	bw := bufio.NewWriter(p.w)
	size := f.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			fmt.Fprintf(bw, "%4d", f.At(x, y))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Symbols prints the biome grid, two columns per cell.
func (p *Printer) Symbols(g *biome.Grid) error {
	bw := bufio.NewWriter(p.w)
	for y := 0; y < g.H; y++ {
		for _, b := range g.Row(y) {
			cell := " " + string(b.Symbol())
			if p.color {
				cell = p.styles[b].Render(cell)
			}
			bw.WriteString(cell)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Parameters prints a parameter snapshot grouped by section.
func (p *Printer) Parameters(snap core.ParameterSnapshot) error {
	bw := bufio.NewWriter(p.w)
	for _, g := range snap.Groups {
		bw.WriteString(p.title.Render(g.Name))
		bw.WriteByte('\n')
		for _, param := range g.Params {
			fmt.Fprintf(bw, "  %-20s %s\n", param.Label, param.Value)
		}
	}
	return bw.Flush()
}

// Summary prints elevation statistics and the biome histogram for isl.
func (p *Printer) Summary(isl *island.Island) error {
	bw := bufio.NewWriter(p.w)
	raw := isl.Raw.Stats()
	fmt.Fprintf(bw, "raw elevation: min %d, max %d, mean %.2f, %d/%d cells raised\n",
		raw.Min, raw.Max, raw.Mean, raw.Nonzero, isl.Biomes.Size().Cells())
	fmt.Fprintf(bw, "land: %.1f%%\n", 100*isl.Biomes.LandFraction())

	counts := isl.Biomes.Counts()
	for _, b := range biome.All() {
		sym := " " + string(b.Symbol())
		if p.color {
			sym = p.styles[b].Render(sym)
		}
		fmt.Fprintf(bw, "%s %-14s %d\n", sym, b.String(), counts[b])
	}
	return bw.Flush()
}

// Legend returns a one-line key of symbols and biome names.
func Legend() string {
	parts := make([]string, 0, biome.Count)
	for _, b := range biome.All() {
		parts = append(parts, string(b.Symbol())+" "+b.String())
	}
	return strings.Join(parts, "  ")
}

func init() {
	render.Register("txt", render.Exporter{Ext: ".txt", Write: func(w io.Writer, isl *island.Island, _ render.Options) error {
		return NewPrinter(w, false).Symbols(isl.Biomes)
	}})
}

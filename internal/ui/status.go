// Package ui holds the viewer's heads-up display.
package ui

import (
	"fmt"

	"islandgen/internal/island"
)

// Status is the viewer state shown on the HUD.
type Status struct {
	Config  island.Config
	Dropped int
	Total   int
	// LastX and LastY locate the latest impact; negative before the first.
	LastX, LastY int
	Paused       bool
	Land         float64
}

// Lines returns the HUD text, one entry per line.
func (s Status) Lines() []string {
	p := s.Config.Params
	state := "dropping"
	switch {
	case s.Paused:
		state = "paused"
	case s.Dropped >= s.Total:
		state = "done"
	}
	lines := []string{
		fmt.Sprintf("seed %d  %dx%d", s.Config.Seed, s.Config.Width, s.Config.Height),
		fmt.Sprintf("dirtballs %d/%d (%s)", s.Dropped, s.Total, state),
		fmt.Sprintf("radius %d  power %d", p.Radius, p.PowerRating),
		fmt.Sprintf("waterline %d  land %.1f%%", p.WaterLine, 100*s.Land),
	}
	if s.LastX >= 0 && s.LastY >= 0 {
		lines = append(lines, fmt.Sprintf("last impact (%d,%d)", s.LastX, s.LastY))
	}
	return lines
}

// Help lists the viewer key bindings.
func Help() []string {
	return []string{
		"space pause  n step  f finish",
		"r restart  s new seed",
		"up/down waterline  h hud  q quit",
	}
}

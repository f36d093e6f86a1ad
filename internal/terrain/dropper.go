package terrain

import pcore "islandgen/pkg/core"

// Dropper replays the impact sequence for a set of params one dirtball at a
// time. Stepping a Dropper to completion is exactly Accumulate.
type Dropper struct {
	field   *HeightField
	params  Params
	rng     *pcore.RNG
	dropped int

	lastX, lastY int
}

// NewDropper returns a Dropper with its own generator seeded from p.Seed.
func NewDropper(f *HeightField, p Params) *Dropper {
	return &Dropper{field: f, params: p, rng: pcore.NewRNG(p.Seed), lastX: -1, lastY: -1}
}

// Step drops the next dirtball. It reports false once all impacts are done.
func (d *Dropper) Step() bool {
	if d.dropped >= d.params.NumImpacts {
		return false
	}
	size := d.field.Size()
	cx, cy := d.rng.Point(size.W, size.H)
	d.field.Drop(cx, cy, d.params.Radius, d.params.PowerRating)
	d.lastX, d.lastY = cx, cy
	d.dropped++
	return true
}

// Dropped returns the number of impacts applied so far.
func (d *Dropper) Dropped() int { return d.dropped }

// Remaining returns the number of impacts still to drop.
func (d *Dropper) Remaining() int { return max(d.params.NumImpacts-d.dropped, 0) }

// Last returns the center of the most recent impact, or (-1, -1) before the
// first one.
func (d *Dropper) Last() (int, int) { return d.lastX, d.lastY }

// Field returns the heightfield being accumulated.
func (d *Dropper) Field() *HeightField { return d.field }

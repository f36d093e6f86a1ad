// Package island runs the generation pipeline: dirtball accumulation,
// normalization and biome classification, strictly in that order.
package island

import (
	"islandgen/internal/biome"
	"islandgen/internal/core"
	"islandgen/internal/terrain"
)

var (
	_ core.IntParameterSetter = (*Config)(nil)
	_ core.IntParameterSetter = (*Builder)(nil)
)

// Island is the result of a generation run.
type Island struct {
	Config Config

	// Raw holds the accumulated elevations before normalization.
	Raw *terrain.HeightField
	// Height holds the normalized elevations in [0, 255].
	Height *terrain.HeightField
	Biomes *biome.Grid
}

// Generate builds an island from cfg. It fails only when cfg is invalid.
func Generate(cfg Config) (*Island, error) {
	b, err := NewBuilder(cfg)
	if err != nil {
		return nil, err
	}
	b.Step(b.Remaining())
	return b.Snapshot(), nil
}

// Builder accumulates an island incrementally so front ends can show it
// growing. Finishing a Builder gives the same island as Generate.
type Builder struct {
	cfg     Config
	field   *terrain.HeightField
	dropper *terrain.Dropper
}

// NewBuilder validates cfg and prepares an empty field.
func NewBuilder(cfg Config) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	field, err := terrain.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &Builder{cfg: cfg, field: field, dropper: terrain.NewDropper(field, cfg.Terrain())}, nil
}

// Config returns the configuration currently in use.
func (b *Builder) Config() Config { return b.cfg }

// Step drops up to n dirtballs and returns how many were dropped.
func (b *Builder) Step(n int) int {
	dropped := 0
	for dropped < n && b.dropper.Step() {
		dropped++
	}
	return dropped
}

// Done reports whether every dirtball has been dropped.
func (b *Builder) Done() bool { return b.dropper.Remaining() == 0 }

// Remaining returns the number of dirtballs still to drop.
func (b *Builder) Remaining() int { return b.dropper.Remaining() }

// Progress returns the dropped and total dirtball counts.
func (b *Builder) Progress() (int, int) {
	return b.dropper.Dropped(), b.cfg.Params.NumImpacts
}

// LastImpact returns the most recent impact center, or (-1, -1).
func (b *Builder) LastImpact() (int, int) { return b.dropper.Last() }

// Snapshot normalizes and classifies a copy of the current field. The
// builder can keep stepping afterwards.
func (b *Builder) Snapshot() *Island {
	height := b.field.Clone()
	height.Normalize()
	return &Island{
		Config: b.cfg,
		Raw:    b.field.Clone(),
		Height: height,
		Biomes: biome.Classify(height, b.cfg.Params.WaterLine),
	}
}

// Restart discards the field and starts over with seed.
func (b *Builder) Restart(seed int64) {
	b.cfg.Seed = seed
	b.field.Reset()
	b.dropper = terrain.NewDropper(b.field, b.cfg.Terrain())
}

// SetIntParameter updates a parameter. Waterline changes only affect
// classification; other accepted changes restart accumulation, and size
// changes are refused since the field is already allocated.
func (b *Builder) SetIntParameter(key string, value int) bool {
	if key == "w" || key == "h" {
		return false
	}
	next := b.cfg
	if !next.SetIntParameter(key, value) {
		return false
	}
	b.cfg = next
	if key != "waterline" {
		b.Restart(b.cfg.Seed)
	}
	return true
}

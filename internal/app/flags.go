package app

import (
	"flag"
	"fmt"
	"strings"

	"islandgen/internal/island"
)

// kvList collects repeatable key=value flags.
type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Config represents the command-line parameters for the island tools.
type Config struct {
	Island island.Config

	Out     string
	Formats string
	Scale   int
	Rate    int

	PrintRaw        bool
	PrintNormalized bool
	PrintMap        bool
	Color           bool
	Interactive     bool
	Verbose         bool

	overrides kvList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Island:   island.DefaultConfig(),
		Out:      "island",
		Formats:  "bmp",
		Scale:    4,
		Rate:     120,
		PrintMap: true,
		Color:    true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Island.Seed, "seed", c.Island.Seed, "seed for dirtball placement")
	fs.IntVar(&c.Island.Width, "w", c.Island.Width, "grid width")
	fs.IntVar(&c.Island.Height, "h", c.Island.Height, "grid height")
	fs.IntVar(&c.Island.Params.WaterLine, "waterline", c.Island.Params.WaterLine, "waterline elevation (40 - 200)")
	fs.IntVar(&c.Island.Params.Radius, "radius", c.Island.Params.Radius, "dirtball radius (minimum 2)")
	fs.IntVar(&c.Island.Params.PowerRating, "power", c.Island.Params.PowerRating, "dirtball power rating (minimum = radius)")
	fs.IntVar(&c.Island.Params.NumImpacts, "impacts", c.Island.Params.NumImpacts, "number of dirtballs to drop")
	fs.Var(&c.overrides, "set", "parameter override in key=value form (repeatable)")

	fs.StringVar(&c.Out, "out", c.Out, "output path without extension; empty disables file output")
	fs.StringVar(&c.Formats, "format", c.Formats, "comma separated export formats")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale for previews and the viewer")
	fs.IntVar(&c.Rate, "rate", c.Rate, "dirtballs dropped per second in the viewer")

	fs.BoolVar(&c.PrintRaw, "raw", c.PrintRaw, "print the accumulated grid before normalization")
	fs.BoolVar(&c.PrintNormalized, "normalized", c.PrintNormalized, "print the normalized grid")
	fs.BoolVar(&c.PrintMap, "map", c.PrintMap, "print the biome symbol map")
	fs.BoolVar(&c.Color, "color", c.Color, "color the symbol map on terminals")
	fs.BoolVar(&c.Interactive, "interactive", c.Interactive, "prompt for generation values on stdin")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log parameters and statistics")
}

// Resolve applies -set overrides on top of the flag values and validates the
// resulting island config.
func (c *Config) Resolve() (island.Config, error) {
	cfg := c.Island
	for _, kv := range c.overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return cfg, fmt.Errorf("override %q is not key=value", kv)
		}
		if !cfg.Set(strings.TrimSpace(key), strings.TrimSpace(value)) {
			return cfg, fmt.Errorf("override %q: unknown key or bad value", kv)
		}
	}
	return cfg, cfg.Validate()
}

// FormatList splits the -format flag into names.
func (c *Config) FormatList() []string {
	var names []string
	for _, name := range strings.Split(c.Formats, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

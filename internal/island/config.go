package island

import (
	"errors"
	"fmt"
	"strconv"

	"islandgen/internal/terrain"
)

// ErrInvalidConfig reports a configuration the generator cannot run with.
var ErrInvalidConfig = errors.New("invalid island config")

// Params holds the dirtball and waterline settings for a generation run.
type Params struct {
	WaterLine   int
	Radius      int
	PowerRating int
	NumImpacts  int
}

// Config controls the island dimensions and generation parameters.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  128,
		Height: 128,
		Seed:   1337,
		Params: Params{
			WaterLine:   110,
			Radius:      12,
			PowerRating: 15,
			NumImpacts:  400,
		},
	}
}

// Terrain returns the accumulation parameters for the config.
func (c Config) Terrain() terrain.Params {
	return terrain.Params{
		Seed:        c.Seed,
		Radius:      c.Params.Radius,
		PowerRating: c.Params.PowerRating,
		NumImpacts:  c.Params.NumImpacts,
	}
}

// Validate rejects configurations that cannot produce a grid. Other values,
// such as a radius below two or a waterline outside 40-200, are accepted and
// simply produce degenerate islands.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Params.NumImpacts < 0 {
		return fmt.Errorf("%w: impacts %d must not be negative", ErrInvalidConfig, c.Params.NumImpacts)
	}
	return nil
}

// Set assigns a single value by key. It reports false for unknown keys or
// values that do not parse.
func (c *Config) Set(key, value string) bool {
	if key == "seed" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return false
		}
		c.Seed = parsed
		return true
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return false
	}
	return c.SetIntParameter(key, parsed)
}

// SetIntParameter assigns an integer value by key. Width, height and impact
// counts must stay positive (non-negative for impacts).
func (c *Config) SetIntParameter(key string, value int) bool {
	switch key {
	case "w":
		if value <= 0 {
			return false
		}
		c.Width = value
	case "h":
		if value <= 0 {
			return false
		}
		c.Height = value
	case "seed":
		c.Seed = int64(value)
	case "waterline":
		c.Params.WaterLine = value
	case "radius":
		c.Params.Radius = value
	case "power":
		c.Params.PowerRating = value
	case "impacts":
		if value < 0 {
			return false
		}
		c.Params.NumImpacts = value
	default:
		return false
	}
	return true
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	for key, value := range cfg {
		c.Set(key, value)
	}
	return c
}

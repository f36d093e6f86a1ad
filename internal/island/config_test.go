package island

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"w":         "64",
		"h":         "32",
		"seed":      "-9",
		"waterline": "90",
		"radius":    "4",
		"power":     "6",
		"impacts":   "25",
	})
	assert.Equal(t, Config{
		Width:  64,
		Height: 32,
		Seed:   -9,
		Params: Params{WaterLine: 90, Radius: 4, PowerRating: 6, NumImpacts: 25},
	}, c)
}

func TestFromMapIgnoresBadValues(t *testing.T) {
	c := FromMap(map[string]string{
		"w":       "0",
		"h":       "tall",
		"impacts": "-3",
		"bogus":   "1",
	})
	assert.Equal(t, DefaultConfig(), c)
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	c := DefaultConfig()
	c.Width = 0
	assert.True(t, errors.Is(c.Validate(), ErrInvalidConfig))

	c = DefaultConfig()
	c.Height = -4
	assert.True(t, errors.Is(c.Validate(), ErrInvalidConfig))

	c = DefaultConfig()
	c.Params.NumImpacts = -1
	assert.True(t, errors.Is(c.Validate(), ErrInvalidConfig))

	// Degenerate but allowed.
	c = DefaultConfig()
	c.Params.Radius = 0
	c.Params.WaterLine = 250
	assert.NoError(t, c.Validate())
}

func TestParameters(t *testing.T) {
	c := DefaultConfig()
	c.Params.WaterLine = 100
	snap := c.Parameters()
	require.Len(t, snap.Groups, 3)

	p, ok := snap.Lookup("seed")
	require.True(t, ok)
	assert.Equal(t, "1337", p.Value)

	p, ok = snap.Lookup("mountain_from")
	require.True(t, ok)
	assert.Equal(t, "224", p.Value)
	assert.NotEmpty(t, p.Description)

	_, ok = snap.Lookup("missing")
	assert.False(t, ok)
}

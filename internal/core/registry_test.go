package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry[int]("format")
	r.Register("BMP", 1)
	r.Register("png", 2)
	r.Register("heightmap", 3)
	r.Register("  ", 4)

	assert.Equal(t, []string{"bmp", "heightmap", "png"}, r.Names())

	v, err := r.Lookup(" Png ")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = r.Lookup("heigthmap")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownName))
	assert.Contains(t, err.Error(), `did you mean "heightmap"`)

	_, err = r.Lookup("gif-animation")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "known: bmp, heightmap, png")
}

func TestRegistrySuggest(t *testing.T) {
	r := NewRegistry[string]("format")
	r.Register("bmp", "")
	r.Register("txt", "")
	assert.Equal(t, "bmp", r.Suggest("bnp"))
	assert.Equal(t, "", r.Suggest("jpeg"))
}

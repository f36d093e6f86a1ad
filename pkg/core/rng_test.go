package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(77)
	b := NewRNG(77)
	for i := 0; i < 100; i++ {
		ax, ay := a.Point(31, 17)
		bx, by := b.Point(31, 17)
		assert.Equal(t, ax, bx)
		assert.Equal(t, ay, by)
		assert.True(t, ax >= 0 && ax < 31 && ay >= 0 && ay < 17)
	}
}

func TestPointDrawOrder(t *testing.T) {
	a := NewRNG(5)
	x, y := a.Point(1000, 1000)

	b := NewRNG(5)
	assert.Equal(t, x, b.IntN(1000), "x is drawn first")
	assert.Equal(t, y, b.IntN(1000))
}

func TestIntNNonPositive(t *testing.T) {
	r := NewRNG(1)
	assert.Zero(t, r.IntN(0))
	assert.Zero(t, r.IntN(-3))
}

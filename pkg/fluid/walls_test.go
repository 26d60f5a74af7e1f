package fluid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularBlock(t *testing.T) {
	s := New(10, 8, DefaultConfig())
	s.SetCircularBlock(4, 4, 2)

	assert.True(t, s.IsBlock(4, 4))
	assert.True(t, s.IsBlock(6, 4))
	assert.True(t, s.IsBlock(4, 2))
	assert.False(t, s.IsBlock(6, 6), "corner lies outside the radius")

	s.UnsetCircularBlock(4, 4, 2)
	for x := 1; x < 10; x++ {
		for y := 0; y < 8; y++ {
			assert.False(t, s.IsBlock(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestCircularBlockSkipsOuterRing(t *testing.T) {
	s := New(6, 6, DefaultConfig())
	s.SetCircularBlock(0, 0, 3)
	s.SetCircularBlock(5, 5, 1)

	assert.True(t, s.IsBlock(1, 1))
	assert.False(t, s.IsBlock(1, 0))
	assert.False(t, s.IsBlock(5, 5))

	s.UnsetCircularBlock(0, 2, 2)
	for y := 0; y < 6; y++ {
		assert.True(t, s.IsBlock(0, y), "inlet wall stays closed")
	}
}

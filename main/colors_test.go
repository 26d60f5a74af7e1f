package main

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellColorScale(t *testing.T) {
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, cellColor(0, 0, 0, 1))
	assert.Equal(t, uint8(255), cellColor(0, 1, 0, 1).R)
	assert.Equal(t, cellColor(0, 0.5, 0, 0), cellColor(0, 3, 0, 0), "flat field")
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, cellColor(0, 0.5, 0, 1))
}

func TestCellColorSmoke(t *testing.T) {
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, cellColor(1, 0.3, 0, 1), "clear air is black")
	assert.Equal(t, cellColor(-2, 0.3, 0, 1), cellColor(0, 0.3, 0, 1), "smoke is clamped")

	half := cellColor(0.5, 0, 0, 1)
	assert.Equal(t, color.RGBA{0, 0, 127, 255}, half)
}

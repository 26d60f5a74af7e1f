package main

import (
	"image/color"

	"github.com/chewxy/math32"
)

var blockColor = color.RGBA{R: 0x9c, G: 0x8b, B: 0x7a, A: 0xff}

// cellColor maps pressure onto a blue-cyan-green-yellow-red scale and darkens
// it where the air is clear, so the smoke shows up as the bright part of the
// flow. A flat pressure field lands in the middle of the scale.
func cellColor(smoke, pressure, minP, maxP float32) color.RGBA {
	val := float32(0.5)
	if d := maxP - minP; d > 0 {
		val = (min(max(pressure, minP), maxP-0.0001) - minP) / d
	}
	const m = 0.25
	num := math32.Floor(val / m)
	s := (val - num*m) / m

	var r, g, b float32
	switch num {
	case 0:
		r, g, b = 0, s, 1
	case 1:
		r, g, b = 0, 1, 1-s
	case 2:
		r, g, b = s, 1, 0
	default:
		r, g, b = 1, 1-s, 0
	}

	fade := min(max(smoke, 0), 1)
	return color.RGBA{
		R: uint8(255 * max(r-fade, 0)),
		G: uint8(255 * max(g-fade, 0)),
		B: uint8(255 * max(b-fade, 0)),
		A: 0xff,
	}
}

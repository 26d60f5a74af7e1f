package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TheFellow/windtunnel/pkg/fluid"
)

func TestLayoutFollowsWindow(t *testing.T) {
	g := NewGame(fluid.New(20, 12, fluid.DefaultConfig()), 4)

	w, h := g.Layout(80, 48)
	assert.Equal(t, [2]int{20, 12}, [2]int{w, h})

	w, h = g.Layout(200, 100)
	assert.Equal(t, [2]int{50, 25}, [2]int{w, h})
	assert.Equal(t, [2]int{50, 25}, [2]int{g.wantW, g.wantH})

	w, h = g.Layout(4, 4)
	assert.Equal(t, [2]int{minGridSize, minGridSize}, [2]int{w, h})
}

package fluid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexRoundTrip(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {3, 7}, {7, 3}, {16, 9}} {
		g := newGrid[float32](size[0], size[1])
		seen := make(map[int]bool)
		for x := 0; x < size[0]; x++ {
			for y := 0; y < size[1]; y++ {
				i := g.Index(x, y)
				gx, gy := g.PosFromIndex(i)
				assert.Equal(t, [2]int{x, y}, [2]int{gx, gy})
				assert.False(t, seen[i], "index %d reused", i)
				seen[i] = true
			}
		}
		assert.Len(t, seen, g.Len())
	}
}

func TestIndexWithHeight(t *testing.T) {
	// A renderer packing two rows per terminal line addresses the grid
	// with its own height.
	assert.Equal(t, 0, IndexWithHeight(10, 0, 0))
	assert.Equal(t, 23, IndexWithHeight(10, 2, 3))
	assert.Equal(t, newGrid[bool](4, 10).Index(2, 3), IndexWithHeight(10, 2, 3))
	assert.Equal(t, 2*5+3, IndexWithHeight(5, 2, 3))
}

func TestIsBorder(t *testing.T) {
	g := newGrid[bool](5, 4)
	for x := 0; x < 5; x++ {
		for y := 0; y < 4; y++ {
			want := x == 0 || x == 4 || y == 0 || y == 3
			assert.Equal(t, want, g.IsBorder(g.Index(x, y)), "(%d,%d)", x, y)
		}
	}
}

func TestNeighbors(t *testing.T) {
	g := newGrid[int](5, 5)
	nb := g.Neighbors(2, 3)
	assert.Equal(t, [4]int{
		g.Index(2, 4), // top
		g.Index(3, 3), // right
		g.Index(2, 2), // bottom
		g.Index(1, 3), // left
	}, nb)
}

func TestGridAccess(t *testing.T) {
	g := newGrid[float32](3, 2)
	g.Set(2, 1, 4.5)
	assert.Equal(t, float32(4.5), g.At(2, 1))
	assert.Equal(t, float32(4.5), g.cells[5])

	g.Fill(1)
	for _, v := range g.cells {
		assert.Equal(t, float32(1), v)
	}

	assert.Panics(t, func() { g.At(3, 0) })
	assert.Panics(t, func() { g.At(0, 2) })
	assert.Panics(t, func() { g.Set(-1, 0, 0) })
}

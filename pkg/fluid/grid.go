package fluid

import "fmt"

// Grid is a width x height field stored column-major in a single buffer,
// so cell (x, y) lives at x*height + y.
type Grid[T any] struct {
	width, height int
	cells         []T
}

func newGrid[T any](width, height int) Grid[T] {
	return Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}
}

// IndexWithHeight returns the linear index of (x, y) in a column-major grid
// with the given height. Renderers that draw at a different logical height
// than the simulation use this directly.
func IndexWithHeight(height, x, y int) int {
	return x*height + y
}

func (g Grid[T]) Index(x, y int) int {
	return IndexWithHeight(g.height, x, y)
}

func (g Grid[T]) PosFromIndex(index int) (x, y int) {
	return index / g.height, index % g.height
}

// IsBorder reports whether index lies on the outermost ring of cells.
func (g Grid[T]) IsBorder(index int) bool {
	x, y := g.PosFromIndex(index)
	return x == 0 || x == g.width-1 || y == 0 || y == g.height-1
}

// Neighbors returns the indices around (x, y) ordered top, right, bottom,
// left. Only valid for non-border cells.
func (g Grid[T]) Neighbors(x, y int) [4]int {
	return [4]int{
		g.Index(x, y+1),
		g.Index(x+1, y),
		g.Index(x, y-1),
		g.Index(x-1, y),
	}
}

func (g Grid[T]) Len() int { return len(g.cells) }

func (g Grid[T]) At(x, y int) T {
	g.check(x, y)
	return g.cells[g.Index(x, y)]
}

func (g Grid[T]) Set(x, y int, value T) {
	g.check(x, y)
	g.cells[g.Index(x, y)] = value
}

func (g Grid[T]) Fill(value T) {
	for i := range g.cells {
		g.cells[i] = value
	}
}

func (g Grid[T]) check(x, y int) {
	if x < 0 || x >= g.width {
		panic(fmt.Sprintf("invalid x-index: %d", x))
	}
	if y < 0 || y >= g.height {
		panic(fmt.Sprintf("invalid y-index: %d", y))
	}
}

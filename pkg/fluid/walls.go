package fluid

// SetBlock marks (x, y) as an obstacle. No other field is touched, so it is
// safe to call between steps without disturbing the flow.
func (s *Sim) SetBlock(x, y int) {
	s.b.Set(x, y, true)
}

// UnsetBlock clears the obstacle at (x, y).
func (s *Sim) UnsetBlock(x, y int) {
	s.b.Set(x, y, false)
}

func (s *Sim) IsBlock(x, y int) bool {
	return s.b.At(x, y)
}

// writeWall closes the left column. The inlet flow is injected into the
// column to its right.
func (s *Sim) writeWall() {
	for y := 0; y < s.height; y++ {
		s.b.Set(0, y, true)
	}
}

// frozen reports whether the cell at index is left untouched by the solver.
func (s *Sim) frozen(index int) bool {
	return s.b.cells[index] || s.b.IsBorder(index)
}

// SetCircularBlock marks every interior cell within radius of (cx, cy) as
// an obstacle. The outer ring and cells outside the grid are ignored.
func (s *Sim) SetCircularBlock(cx, cy, radius int) {
	s.fillCircle(cx, cy, radius, true)
}

// UnsetCircularBlock clears the obstacles SetCircularBlock would set.
func (s *Sim) UnsetCircularBlock(cx, cy, radius int) {
	s.fillCircle(cx, cy, radius, false)
}

func (s *Sim) fillCircle(cx, cy, radius int, block bool) {
	for x := max(cx-radius, 1); x <= min(cx+radius, s.width-2); x++ {
		for y := max(cy-radius, 1); y <= min(cy+radius, s.height-2); y++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radius*radius {
				s.b.Set(x, y, block)
			}
		}
	}
}

package fluid

// applyGravity accelerates the vertical velocity of every free cell whose
// lower face opens onto another free cell.
func (s *Sim) applyGravity(dt float32) {
	g := s.config.Gravity * dt
	if g == 0 {
		return
	}
	n := s.height
	parallelColumns(s.Workers, 1, s.width-1, func(x int) {
		for y := 1; y < n-1; y++ {
			cell := x*n + y
			if s.b.cells[cell] || s.frozen(cell-1) {
				continue
			}
			s.v.cells[cell] += g
		}
	})
}

package fluid

// advect moves velocity and smoke along the flow. Every fluid cell traces
// back from its own sample point and reads the previous fields only, so
// columns are computed in parallel into the new buffers which then replace
// the old ones. Border and obstacle cells carry their old values over.
func (s *Sim) advect(dt float32) {
	copy(s.newU.cells, s.u.cells)
	copy(s.newV.cells, s.v.cells)
	copy(s.newS.cells, s.s.cells)

	n := s.height
	u, v := s.u.cells, s.v.cells
	const h2 = 0.5

	parallelColumns(s.Workers, 1, s.width-1, func(x int) {
		for y := 1; y < n-1; y++ {
			cell := x*n + y
			if s.b.cells[cell] {
				continue
			}
			fx, fy := float32(x), float32(y)

			// u sits on the left face
			px := fx - u[cell]*dt
			py := fy + h2 - s.avgV(x, y)*dt
			s.newU.cells[cell] = s.sample(px, py, fieldU)

			// v sits on the bottom face
			px = fx + h2 - s.avgU(x, y)*dt
			py = fy - v[cell]*dt
			s.newV.cells[cell] = s.sample(px, py, fieldV)

			// smoke sits in the center
			cu := (u[cell] + u[cell+n]) * 0.5
			cv := (v[cell] + v[cell+1]) * 0.5
			px = fx + h2 - cu*dt
			py = fy + h2 - cv*dt
			s.newS.cells[cell] = s.sample(px, py, fieldS)
		}
	})

	s.u, s.newU = s.newU, s.u
	s.v, s.newV = s.newV, s.v
	s.s, s.newS = s.newS, s.s
}

// avgV is the vertical velocity interpolated to the left face of (x, y).
func (s *Sim) avgV(x, y int) float32 {
	n := s.height
	v := s.v.cells
	return (v[(x-1)*n+y] + v[(x-1)*n+y+1] + v[x*n+y+1] + v[x*n+y]) * 0.25
}

// avgU is the horizontal velocity interpolated to the bottom face of (x, y).
func (s *Sim) avgU(x, y int) float32 {
	n := s.height
	u := s.u.cells
	return (u[x*n+y-1] + u[(x+1)*n+y-1] + u[(x+1)*n+y] + u[x*n+y]) * 0.25
}

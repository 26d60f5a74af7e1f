package fluid

import (
	"fmt"
	"log"

	"github.com/chewxy/math32"
)

const (
	// Relaxation is the over-relaxation factor of the pressure solve.
	Relaxation float32 = 1.9

	pressureIterations = 50
)

// makeIncompressible removes the divergence of the velocity field with a
// Gauss-Seidel sweep and records the implied pressure. Each cell reads
// faces already corrected earlier in the same sweep, so the scan order is
// part of the result and the sweep must stay on one goroutine.
func (s *Sim) makeIncompressible(dt float32) {
	s.p.Fill(0)
	cp := s.config.Density / dt

	for iter := 0; iter < pressureIterations; iter++ {
		s.pressureSweep(cp)
	}
	s.checkPressure()
}

func (s *Sim) pressureSweep(cp float32) {
	u, v, p, b := s.u.cells, s.v.cells, s.p.cells, s.b.cells
	for x := 1; x < s.width-1; x++ {
		for y := 1; y < s.height-1; y++ {
			cell := s.b.Index(x, y)
			if b[cell] {
				continue
			}
			nb := s.b.Neighbors(x, y)
			top, right, bottom, left := nb[0], nb[1], nb[2], nb[3]
			sTop := open(b[top])
			sRight := open(b[right])
			sBottom := open(b[bottom])
			sLeft := open(b[left])
			n := sTop + sRight + sBottom + sLeft
			if n == 0 {
				continue
			}

			div := u[right] - u[cell] + v[top] - v[cell]
			corr := Relaxation * (-div / n)

			u[cell] -= corr * sLeft
			u[right] += corr * sRight
			v[cell] -= corr * sBottom
			v[top] += corr * sTop
			p[cell] += cp * corr
		}
	}
}

// open is 1 for fluid cells and 0 for obstacles.
func open(block bool) float32 {
	if block {
		return 0
	}
	return 1
}

// checkPressure catches non-finite pressure before it reaches a renderer.
func (s *Sim) checkPressure() {
	bad := 0
	for i, val := range s.p.cells {
		if isFinite(val) {
			continue
		}
		if debugChecks {
			x, y := s.p.PosFromIndex(i)
			panic(fmt.Sprintf("non-finite pressure %v at (%d,%d)", val, x, y))
		}
		s.p.cells[i] = 0
		bad++
	}
	if bad > 0 {
		log.Printf("fluid: cleared %d non-finite pressure cells (density=%v)", bad, s.config.Density)
	}
}

// Divergence returns the net outflow of the fluid cell at (x, y). Border
// and obstacle cells report 0.
func (s *Sim) Divergence(x, y int) float32 {
	cell := s.u.Index(x, y)
	if s.frozen(cell) {
		return 0
	}
	nb := s.u.Neighbors(x, y)
	return s.u.cells[nb[1]] - s.u.cells[cell] + s.v.cells[nb[0]] - s.v.cells[cell]
}

// MaxDivergence returns the largest absolute divergence across fluid cells.
func (s *Sim) MaxDivergence() float32 {
	maxDiv := float32(0)
	for x := 1; x < s.width-1; x++ {
		for y := 1; y < s.height-1; y++ {
			maxDiv = max(maxDiv, math32.Abs(s.Divergence(x, y)))
		}
	}
	return maxDiv
}

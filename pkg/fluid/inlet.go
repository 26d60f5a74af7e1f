package fluid

import "github.com/chewxy/math32"

// writeInlet sets the wind in column 1 and redraws the smoke band in
// column 0, the only cells the config shapes.
func (s *Sim) writeInlet() {
	if s.width > 1 {
		for y := 0; y < s.height; y++ {
			s.u.Set(1, y, s.config.WindSpeed)
		}
	}

	for y := 0; y < s.height; y++ {
		s.s.Set(0, y, 1.0)
	}
	lo, hi := smokeBand(s.height, s.config.SmokeSize)
	for y := lo; y < hi; y++ {
		s.s.Set(0, y, 0.0)
	}
}

// smokeBand returns the rows [lo,hi) of the smoke band: round(height*size)
// rows centered on the middle of the column.
func smokeBand(height int, size float32) (lo, hi int) {
	rows := min(int(math32.Round(float32(height)*size)), height)
	lo = (height - rows) / 2
	return lo, lo + rows
}

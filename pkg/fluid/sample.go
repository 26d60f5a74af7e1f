package fluid

import "github.com/chewxy/math32"

type field int

const (
	fieldU field = iota
	fieldV
	fieldS
)

// offset returns where the samples of fld sit inside their cell.
func (fld field) offset() (dx, dy float32) {
	switch fld {
	case fieldU:
		return 0, 0.5
	case fieldV:
		return 0.5, 0
	default:
		return 0.5, 0.5
	}
}

func (s *Sim) fieldGrid(fld field) []float32 {
	switch fld {
	case fieldU:
		return s.u.cells
	case fieldV:
		return s.v.cells
	default:
		return s.s.cells
	}
}

// sample bilinearly interpolates fld at the position (x, y), measured in
// cells from the bottom left corner. Positions are clamped to [1, size] on
// each axis before the field offset is applied, so a trace leaving the
// inlet column reads the inlet again instead of the wall behind it.
func (s *Sim) sample(x, y float32, fld field) float32 {
	dx, dy := fld.offset()
	values := s.fieldGrid(fld)
	n := s.height

	x0, x1, tx := sampleAxis(x, dx, s.width)
	y0, y1, ty := sampleAxis(y, dy, s.height)
	sx := 1 - tx
	sy := 1 - ty

	return sx*sy*values[x0*n+y0] +
		tx*sy*values[x1*n+y0] +
		tx*ty*values[x1*n+y1] +
		sx*ty*values[x0*n+y1]
}

// sampleAxis clamps pos into [1, size], shifts it by the field offset and
// splits it into the two surrounding sample indices and the weight of the
// upper one.
func sampleAxis(pos, offset float32, size int) (lo, hi int, t float32) {
	pos = min(pos, float32(size))
	if !(pos > 1) { // NaN lands on the first interior sample
		pos = 1
	}
	pos -= offset
	lo = min(int(math32.Floor(pos)), size-1)
	hi = min(lo+1, size-1)
	return lo, hi, pos - float32(lo)
}

package fluid

import (
	"fmt"
)

// ScalarField is a read-only view of one cell-centered field. It shares
// memory with the simulation and is only valid until the next mutating call.
type ScalarField struct {
	numX, numY int
	values     []float32
}

func (s ScalarField) Value(i, j int) (float32, error) {
	if err := checkRange(i, j, s.numX, s.numY); err != nil {
		return 0.0, err
	}
	return s.values[i*s.numY+j], nil
}

// At returns the value at a linear index, as produced by IndexWithHeight.
func (s ScalarField) At(index int) float32 { return s.values[index] }

func (s ScalarField) Len() int { return len(s.values) }

func (s ScalarField) Size() (int, int) { return s.numX, s.numY }

// MinMax scans the field for its extremes. An empty field returns 0, 0.
func (s ScalarField) MinMax() (lo, hi float32) {
	if len(s.values) == 0 {
		return 0, 0
	}
	lo, hi = s.values[0], s.values[0]
	for _, v := range s.values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// BoolField is the read-only counterpart of ScalarField for masks.
type BoolField struct {
	numX, numY int
	values     []bool
}

func (b BoolField) Value(i, j int) (bool, error) {
	if err := checkRange(i, j, b.numX, b.numY); err != nil {
		return false, err
	}
	return b.values[i*b.numY+j], nil
}

func (b BoolField) At(index int) bool { return b.values[index] }

func (b BoolField) Len() int { return len(b.values) }

func (b BoolField) Size() (int, int) { return b.numX, b.numY }

func checkRange(i, j, numX, numY int) error {
	if i < 0 || i >= numX {
		return fmt.Errorf("x index out of range, must be between 0 and %d", numX-1)
	}
	if j < 0 || j >= numY {
		return fmt.Errorf("y index out of range, must be between 0 and %d", numY-1)
	}
	return nil
}

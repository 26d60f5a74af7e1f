package fluid

// VectorField is a snapshot of the staggered velocity. U is stored on the
// left face and V on the bottom face of each cell.
type VectorField struct {
	numX, numY       int
	valuesU, valuesV []float32
}

func (v VectorField) Value(i, j int) (float32, float32, error) {
	if err := checkRange(i, j, v.numX, v.numY); err != nil {
		return 0.0, 0.0, err
	}
	return v.valuesU[i*v.numY+j], v.valuesV[i*v.numY+j], nil
}

// Center averages the faces of cell (i, j) to its center.
func (v VectorField) Center(i, j int) (float32, float32, error) {
	if err := checkRange(i, j, v.numX-1, v.numY-1); err != nil {
		return 0.0, 0.0, err
	}
	n := v.numY
	u := (v.valuesU[i*n+j] + v.valuesU[(i+1)*n+j]) * 0.5
	w := (v.valuesV[i*n+j] + v.valuesV[i*n+j+1]) * 0.5
	return u, w, nil
}

func (v VectorField) Size() (int, int) { return v.numX, v.numY }

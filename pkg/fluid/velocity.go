package fluid

// Velocity returns a copy of the velocity field.
func (s *Sim) Velocity() VectorField {
	return VectorField{
		numX:    s.width,
		numY:    s.height,
		valuesU: append([]float32(nil), s.u.cells...),
		valuesV: append([]float32(nil), s.v.cells...),
	}
}

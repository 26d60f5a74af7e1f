package fluid

// Smoke returns the smoke density: 1 is clear air, 0 is dense smoke.
func (s *Sim) Smoke() ScalarField {
	return ScalarField{numX: s.width, numY: s.height, values: s.s.cells}
}

// Pressure returns the pressure computed by the last step.
func (s *Sim) Pressure() ScalarField {
	return ScalarField{numX: s.width, numY: s.height, values: s.p.cells}
}

// Blocks returns the obstacle mask.
func (s *Sim) Blocks() BoolField {
	return BoolField{numX: s.width, numY: s.height, values: s.b.cells}
}

package fluid

import (
	"fmt"

	"github.com/chewxy/math32"
	"go.uber.org/multierr"
)

// Config holds the physical parameters of the tunnel. WindSpeed and
// SmokeSize shape the inlet written into the grid; Gravity and Density are
// read on every step.
type Config struct {
	Gravity   float32 // m/s², 0 disables gravity
	WindSpeed float32 // inlet velocity, must not be negative
	SmokeSize float32 // fraction of the height covered by the smoke band, [0,1]
	Density   float32
}

func DefaultConfig() Config {
	return Config{
		Gravity:   0.0,
		WindSpeed: 50.0,
		SmokeSize: 0.25,
		Density:   1000.0,
	}
}

// Validate returns every rule the config breaks, combined into one error.
func (c Config) Validate() error {
	var err error
	for _, p := range params {
		if !isFinite(c.Value(p)) {
			err = multierr.Append(err, fmt.Errorf("%s must be finite, got %v", p, c.Value(p)))
		}
	}
	if c.WindSpeed < 0 {
		err = multierr.Append(err, fmt.Errorf("wind speed must not be negative, got %v", c.WindSpeed))
	}
	if c.SmokeSize < 0 || c.SmokeSize > 1 {
		err = multierr.Append(err, fmt.Errorf("smoke size must be between 0 and 1, got %v", c.SmokeSize))
	}
	if c.Density < 0 {
		err = multierr.Append(err, fmt.Errorf("density must not be negative, got %v", c.Density))
	}
	return err
}

// Param selects one tunable field of Config.
type Param int

const (
	ParamGravity Param = iota
	ParamWindSpeed
	ParamSmokeSize
	ParamDensity
)

var params = []Param{ParamGravity, ParamWindSpeed, ParamSmokeSize, ParamDensity}

// Params lists the tunable parameters in display order.
func Params() []Param {
	return append([]Param(nil), params...)
}

func (p Param) String() string {
	switch p {
	case ParamGravity:
		return "gravity"
	case ParamWindSpeed:
		return "wind speed"
	case ParamSmokeSize:
		return "smoke size"
	case ParamDensity:
		return "density"
	}
	return fmt.Sprintf("Param(%d)", int(p))
}

// Step nudges one parameter by its settings increment and returns the
// result, keeping it inside the range Validate accepts.
func (c Config) Step(p Param, up bool) Config {
	sign := float32(-1)
	if up {
		sign = 1
	}
	switch p {
	case ParamGravity:
		c.Gravity += sign * 0.1
	case ParamWindSpeed:
		c.WindSpeed = max(c.WindSpeed+sign*1.0, 0)
	case ParamSmokeSize:
		c.SmokeSize = min(max(c.SmokeSize+sign*0.05, 0), 1)
	case ParamDensity:
		c.Density = max(c.Density+sign*25.0, 0)
	}
	return c
}

// Value returns the current value of p.
func (c Config) Value(p Param) float32 {
	switch p {
	case ParamGravity:
		return c.Gravity
	case ParamWindSpeed:
		return c.WindSpeed
	case ParamSmokeSize:
		return c.SmokeSize
	case ParamDensity:
		return c.Density
	}
	return 0
}

func isFinite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

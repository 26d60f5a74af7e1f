package fluid

import (
	"fmt"
	"time"
)

const (
	// MinDelta is the smallest time step the solver accepts. Shorter
	// (or zero) steps are raised to it so density/delta stays finite.
	MinDelta = time.Microsecond

	// DefaultMaxDelta bounds the step taken after a long pause or on the
	// first frame.
	DefaultMaxDelta = 250 * time.Millisecond
)

// Sim is a wind tunnel: air enters through the left wall at the configured
// wind speed carrying a band of smoke, and flows around obstacles painted
// into the grid. All fields are indexed by x*height + y with the origin in
// the bottom left corner.
type Sim struct {
	width, height int

	u, v, newU, newV Grid[float32] // velocities on left and bottom cell faces
	p                Grid[float32] // pressure, rebuilt every step
	s, newS          Grid[float32] // smoke: 1 clear, 0 full
	b                Grid[bool]    // obstacles

	config Config

	// Workers caps the goroutines used by gravity and advection.
	// 0 uses GOMAXPROCS.
	Workers int

	// MaxDelta clamps the step duration; 0 disables the clamp.
	MaxDelta time.Duration

	now      func() time.Time
	lastTick time.Time
	last     StepStats
}

// StepStats describes the most recent step.
type StepStats struct {
	Delta    time.Duration // simulated time, after clamping
	Duration time.Duration // wall time spent computing the step
}

// New builds a width x height tunnel. Non-positive sizes and invalid
// configs are programming errors and panic.
func New(width, height int, config Config) *Sim {
	if err := config.Validate(); err != nil {
		panic(fmt.Sprintf("invalid config: %v", err))
	}
	s := &Sim{
		config:   config,
		MaxDelta: DefaultMaxDelta,
		now:      time.Now,
	}
	s.Resize(width, height)
	return s
}

// Resize reallocates every field at the new size and reinitializes it from
// the current config. Flow state and painted obstacles are discarded.
func (s *Sim) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid grid size: %dx%d", width, height))
	}
	s.width, s.height = width, height

	s.u = newGrid[float32](width, height)
	s.v = newGrid[float32](width, height)
	s.newU = newGrid[float32](width, height)
	s.newV = newGrid[float32](width, height)
	s.p = newGrid[float32](width, height)
	s.s = newGrid[float32](width, height)
	s.newS = newGrid[float32](width, height)
	s.b = newGrid[bool](width, height)

	s.s.Fill(1.0)
	s.writeInlet()
	s.writeWall()

	s.lastTick = s.now()
	s.last = StepStats{}
}

// Restart throws away the flow and any painted obstacles, keeping the size.
func (s *Sim) Restart() {
	s.Resize(s.width, s.height)
}

// SetConfig rewrites the inlet for the new wind speed and smoke size
// without touching the rest of the flow or any obstacles. Gravity and
// density apply from the next step on.
func (s *Sim) SetConfig(config Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	s.config = config
	s.writeInlet()
	return nil
}

func (s *Sim) Config() Config { return s.config }

func (s *Sim) Size() (width, height int) { return s.width, s.height }

func (s *Sim) LastStep() StepStats { return s.last }

// NextStep advances the simulation by the wall time elapsed since the
// previous step (or since the last resize).
func (s *Sim) NextStep() {
	now := s.now()
	s.StepWithDelta(now.Sub(s.lastTick))
	s.lastTick = now
}

// StepWithDelta advances the simulation by delta: gravity, then pressure
// projection, then advection.
func (s *Sim) StepWithDelta(delta time.Duration) {
	start := time.Now()

	delta = max(delta, MinDelta)
	if s.MaxDelta > 0 {
		delta = min(delta, s.MaxDelta)
	}
	dt := float32(delta.Seconds())

	s.applyGravity(dt)
	s.makeIncompressible(dt)
	s.advect(dt)

	s.last = StepStats{Delta: delta, Duration: time.Since(start)}
}

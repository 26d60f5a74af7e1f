package fluid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarField(t *testing.T) {
	s := New(4, 6, DefaultConfig())
	smoke := s.Smoke()

	w, h := smoke.Size()
	assert.Equal(t, [2]int{4, 6}, [2]int{w, h})

	v, err := smoke.Value(1, 2)
	require.NoError(t, err)
	assert.Equal(t, s.s.At(1, 2), v)
	assert.Equal(t, v, smoke.At(IndexWithHeight(6, 1, 2)))

	_, err = smoke.Value(4, 0)
	assert.Error(t, err)
	_, err = smoke.Value(0, -1)
	assert.Error(t, err)

	lo, hi := smoke.MinMax()
	assert.Equal(t, float32(0), lo)
	assert.Equal(t, float32(1), hi)
	assert.Equal(t, 24, smoke.Len())
}

func TestEmptyScalarFieldMinMax(t *testing.T) {
	lo, hi := ScalarField{}.MinMax()
	assert.Zero(t, lo)
	assert.Zero(t, hi)
}

func TestBoolField(t *testing.T) {
	s := New(5, 5, DefaultConfig())
	s.SetBlock(3, 3)
	blocks := s.Blocks()

	for y := 0; y < 5; y++ {
		wall, err := blocks.Value(0, y)
		require.NoError(t, err)
		assert.True(t, wall)
	}
	assert.True(t, blocks.At(IndexWithHeight(5, 3, 3)))
	assert.False(t, blocks.At(IndexWithHeight(5, 2, 3)))

	_, err := blocks.Value(5, 5)
	assert.Error(t, err)
	assert.Equal(t, 25, blocks.Len())
}

func TestPressureViewTracksSteps(t *testing.T) {
	s := New(10, 8, DefaultConfig())
	pressure := s.Pressure()
	lo, hi := pressure.MinMax()
	assert.Zero(t, lo)
	assert.Zero(t, hi)

	s.StepWithDelta(frame)
	lo, hi = s.Pressure().MinMax()
	assert.Less(t, lo, hi)
}

func TestVelocityIsACopy(t *testing.T) {
	s := New(6, 6, DefaultConfig())
	vel := s.Velocity()

	u, v, err := vel.Value(1, 3)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().WindSpeed, u)
	assert.Zero(t, v)

	cu, _, err := vel.Center(1, 3)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().WindSpeed/2, cu)
	_, _, err = vel.Center(5, 0)
	assert.Error(t, err)

	s.StepWithDelta(frame)
	u2, _, err := vel.Value(2, 3)
	require.NoError(t, err)
	assert.Zero(t, u2, "snapshot changed with the sim")
}

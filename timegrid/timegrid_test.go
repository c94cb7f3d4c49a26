package timegrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jumpdiff/timegrid"
)

// TestNew_Validation verifies the construction contract: at least two
// points, strictly increasing.
func TestNew_Validation(t *testing.T) {
	_, err := timegrid.New(1.0)
	assert.ErrorIs(t, err, timegrid.ErrTooFewTimes, "single point must error")

	_, err = timegrid.New()
	assert.ErrorIs(t, err, timegrid.ErrTooFewTimes, "no points must error")

	_, err = timegrid.New(0, 1, 1)
	assert.ErrorIs(t, err, timegrid.ErrNotIncreasing, "repeated point must error")

	_, err = timegrid.New(0, 2, 1)
	assert.ErrorIs(t, err, timegrid.ErrNotIncreasing, "decreasing point must error")
}

// TestNewUniform verifies counts, spacing and the exact final point.
func TestNewUniform(t *testing.T) {
	grid, err := timegrid.NewUniform(0, 1.0, 4)
	require.NoError(t, err)

	assert.Equal(t, 5, grid.NumberOfTimes())
	assert.Equal(t, 4, grid.NumberOfTimeSteps())

	dt, err := grid.TimeStep(2)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, dt, 1e-15)

	last, err := grid.Time(4)
	require.NoError(t, err)
	assert.Equal(t, 1.0, last, "final point must be exact, not accumulated")

	_, err = timegrid.NewUniform(0, 1, 0)
	assert.ErrorIs(t, err, timegrid.ErrBadStepCount)
	_, err = timegrid.NewUniform(1, 1, 3)
	assert.ErrorIs(t, err, timegrid.ErrNotIncreasing)
}

// TestAccessors_Range verifies index bounds on Time and TimeStep.
func TestAccessors_Range(t *testing.T) {
	grid, err := timegrid.New(0, 0.5, 1.0)
	require.NoError(t, err)

	_, err = grid.Time(3)
	assert.ErrorIs(t, err, timegrid.ErrIndexRange)
	_, err = grid.Time(-1)
	assert.ErrorIs(t, err, timegrid.ErrIndexRange)
	_, err = grid.TimeStep(2)
	assert.ErrorIs(t, err, timegrid.ErrIndexRange, "last point has no outgoing step")
}

// TestTimeIndex_Nearest verifies nearest-point resolution and the
// out-of-range rejection.
func TestTimeIndex_Nearest(t *testing.T) {
	grid, err := timegrid.New(0, 0.5, 1.0, 2.0)
	require.NoError(t, err)

	cases := []struct {
		time float64
		want int
	}{
		{0, 0},
		{0.2, 0},
		{0.3, 1},
		{0.5, 1},
		{0.74, 1},
		{0.76, 2},
		{1.4, 2},
		{1.6, 3},
		{2.0, 3},
	}
	for _, tc := range cases {
		got, err := grid.TimeIndex(tc.time)
		require.NoError(t, err, "time %v", tc.time)
		assert.Equal(t, tc.want, got, "nearest index for time %v", tc.time)
	}

	_, err = grid.TimeIndex(-0.1)
	assert.ErrorIs(t, err, timegrid.ErrTimeRange)
	_, err = grid.TimeIndex(2.1)
	assert.ErrorIs(t, err, timegrid.ErrTimeRange)
}

// TestShifted verifies a shifted copy moves every point by the same
// delta, preserves spacing exactly, and leaves the source untouched.
func TestShifted(t *testing.T) {
	grid, err := timegrid.New(0, 0.25, 1.0)
	require.NoError(t, err)

	shifted := grid.Shifted(0.5)
	assert.Equal(t, []float64{0.5, 0.75, 1.5}, shifted.Times())
	assert.Equal(t, []float64{0, 0.25, 1.0}, grid.Times(), "source grid must not move")

	for i := 0; i < grid.NumberOfTimeSteps(); i++ {
		a, err := grid.TimeStep(i)
		require.NoError(t, err)
		b, err := shifted.TimeStep(i)
		require.NoError(t, err)
		assert.Equal(t, a, b, "step %d spacing must be preserved", i)
	}
}

// TestTimes_Copy verifies Times hands out an owned copy.
func TestTimes_Copy(t *testing.T) {
	grid, err := timegrid.New(0, 1)
	require.NoError(t, err)

	times := grid.Times()
	times[0] = 42
	fresh := grid.Times()
	assert.Equal(t, 0.0, fresh[0], "mutating the returned slice must not affect the grid")
}

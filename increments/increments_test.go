package increments_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jumpdiff/increments"
	"github.com/katalvlaran/jumpdiff/timegrid"
)

// identitySupplier passes the raw uniform through unchanged for every
// (step, factor) pair.
func identitySupplier(int, int) increments.ICDF {
	return func(u float64) float64 { return u }
}

func newTestGrid(t *testing.T) *timegrid.TimeDiscretization {
	t.Helper()
	grid, err := timegrid.NewUniform(0, 1.0, 4)
	require.NoError(t, err)

	return grid
}

// TestNewEngine_Validation verifies the construction contract.
func TestNewEngine_Validation(t *testing.T) {
	grid := newTestGrid(t)

	_, err := increments.NewEngine(nil, 3, 10, 1, identitySupplier)
	assert.ErrorIs(t, err, increments.ErrNilGrid)

	_, err = increments.NewEngine(grid, 0, 10, 1, identitySupplier)
	assert.ErrorIs(t, err, increments.ErrBadFactorCount)

	_, err = increments.NewEngine(grid, 3, 0, 1, identitySupplier)
	assert.ErrorIs(t, err, increments.ErrBadPathCount)

	_, err = increments.NewEngine(grid, 3, 10, 1, nil)
	assert.ErrorIs(t, err, increments.ErrNilSupplier)
}

// TestIncrement_Range verifies out-of-range queries fail fast without
// corrupting the engine.
func TestIncrement_Range(t *testing.T) {
	grid := newTestGrid(t)
	eng, err := increments.NewEngine(grid, 2, 8, 7, identitySupplier)
	require.NoError(t, err)

	_, err = eng.Increment(-1, 0)
	assert.ErrorIs(t, err, increments.ErrStepRange)
	_, err = eng.Increment(4, 0)
	assert.ErrorIs(t, err, increments.ErrStepRange, "grid has 4 steps, index 4 is out")
	_, err = eng.Increment(0, 2)
	assert.ErrorIs(t, err, increments.ErrFactorRange)

	// A valid query still succeeds after the failures.
	_, err = eng.Increment(0, 0)
	assert.NoError(t, err)
}

// TestDeterminism verifies that two independently constructed engines
// with the same seed, grid and path count produce bit-identical
// increments for every (step, factor) pair.
func TestDeterminism(t *testing.T) {
	grid := newTestGrid(t)
	const paths, seed = 64, 12345

	a, err := increments.NewEngine(grid, 3, paths, seed, identitySupplier)
	require.NoError(t, err)
	b, err := increments.NewEngine(grid, 3, paths, seed, identitySupplier)
	require.NoError(t, err)

	for step := 0; step < grid.NumberOfTimeSteps(); step++ {
		for factor := 0; factor < 3; factor++ {
			x, err := a.Increment(step, factor)
			require.NoError(t, err)
			y, err := b.Increment(step, factor)
			require.NoError(t, err)
			assert.Equal(t, x.Values(), y.Values(), "stream (%d,%d) must be bit-identical", step, factor)
		}
	}
}

// TestDeterminism_PrepareMatchesLazy verifies that eager parallel
// generation yields exactly the same streams as lazy access.
func TestDeterminism_PrepareMatchesLazy(t *testing.T) {
	grid := newTestGrid(t)

	eager, err := increments.NewEngine(grid, 3, 32, 99, identitySupplier)
	require.NoError(t, err)
	require.NoError(t, eager.Prepare())

	lazy, err := increments.NewEngine(grid, 3, 32, 99, identitySupplier)
	require.NoError(t, err)

	for step := grid.NumberOfTimeSteps() - 1; step >= 0; step-- { // reversed access order
		for factor := 2; factor >= 0; factor-- {
			x, err := eager.Increment(step, factor)
			require.NoError(t, err)
			y, err := lazy.Increment(step, factor)
			require.NoError(t, err)
			assert.Equal(t, x.Values(), y.Values(), "parallel vs lazy stream (%d,%d)", step, factor)
		}
	}
}

// TestStreamIndependence verifies distinct (step, factor) pairs do not
// replay each other's uniforms.
func TestStreamIndependence(t *testing.T) {
	grid := newTestGrid(t)
	eng, err := increments.NewEngine(grid, 2, 16, 5, identitySupplier)
	require.NoError(t, err)

	a, err := eng.Increment(0, 0)
	require.NoError(t, err)
	b, err := eng.Increment(0, 1)
	require.NoError(t, err)
	c, err := eng.Increment(1, 0)
	require.NoError(t, err)

	assert.NotEqual(t, a.Values(), b.Values(), "factors within a step must differ")
	assert.NotEqual(t, a.Values(), c.Values(), "steps must differ")
}

// TestSeedChangesStreams verifies a different seed reshuffles every
// stream, the contract behind seed-bump cloning.
func TestSeedChangesStreams(t *testing.T) {
	grid := newTestGrid(t)

	a, err := increments.NewEngine(grid, 1, 16, 1, identitySupplier)
	require.NoError(t, err)
	b, err := increments.NewEngine(grid, 1, 16, 2, identitySupplier)
	require.NoError(t, err)

	x, err := a.Increment(0, 0)
	require.NoError(t, err)
	y, err := b.Increment(0, 0)
	require.NoError(t, err)
	assert.NotEqual(t, x.Values(), y.Values(), "different seeds must change the draws")
}

// TestUniformsOpenInterval verifies every raw uniform lies strictly
// inside (0,1); a zero would blow up quantile functions.
func TestUniformsOpenInterval(t *testing.T) {
	grid := newTestGrid(t)
	eng, err := increments.NewEngine(grid, 1, 4096, 11, identitySupplier)
	require.NoError(t, err)

	u, err := eng.Increment(0, 0)
	require.NoError(t, err)
	for _, v := range u.Values() {
		assert.Greater(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

// TestJumpContribution_ZeroCount verifies the composition contract: a
// zero jump count forces a zero contribution regardless of the jump
// size sample.
func TestJumpContribution_ZeroCount(t *testing.T) {
	grid := newTestGrid(t)

	// Factor 1 draws large sizes; factor 2 always counts zero jumps.
	supplier := func(_, factor int) increments.ICDF {
		switch factor {
		case 2:
			return func(float64) float64 { return 0 }
		default:
			return func(u float64) float64 { return 10 * u }
		}
	}

	eng, err := increments.NewEngine(grid, 3, 32, 17, supplier)
	require.NoError(t, err)

	contrib, err := increments.JumpContribution(eng, 0, 1, 2)
	require.NoError(t, err)
	for _, v := range contrib.Values() {
		assert.Zero(t, v, "zero count must yield exactly zero contribution")
	}
}

// TestCompoundJumpSource verifies the decorator answers the size factor
// with Z·√N and passes other factors through untouched.
func TestCompoundJumpSource(t *testing.T) {
	grid := newTestGrid(t)

	// Sizes are the raw uniform; counts are always 4, so the compound
	// increment must equal exactly 2·Z.
	supplier := func(_, factor int) increments.ICDF {
		switch factor {
		case 2:
			return func(float64) float64 { return 4 }
		default:
			return func(u float64) float64 { return u }
		}
	}

	eng, err := increments.NewEngine(grid, 3, 16, 23, supplier)
	require.NoError(t, err)
	src, err := increments.NewCompoundJumpSource(eng, 1, 2)
	require.NoError(t, err)

	z, err := eng.Increment(0, 1)
	require.NoError(t, err)
	compound, err := src.Increment(0, 1)
	require.NoError(t, err)
	assert.Equal(t, z.MultScalar(2).Values(), compound.Values(), "compound must be Z·√4 = 2Z")

	raw, err := src.Increment(0, 0)
	require.NoError(t, err)
	direct, err := eng.Increment(0, 0)
	require.NoError(t, err)
	assert.Equal(t, direct.Values(), raw.Values(), "other factors must pass through")

	_, err = increments.NewCompoundJumpSource(eng, 1, 9)
	assert.ErrorIs(t, err, increments.ErrFactorRange)
}

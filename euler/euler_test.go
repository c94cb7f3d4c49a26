package euler_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jumpdiff/euler"
	"github.com/katalvlaran/jumpdiff/increments"
	"github.com/katalvlaran/jumpdiff/merton"
	"github.com/katalvlaran/jumpdiff/randvar"
	"github.com/katalvlaran/jumpdiff/timegrid"
)

// driftOnlySDE is a two-factor SDE with zero loadings, used to probe the
// scheme mechanics without randomness.
type driftOnlySDE struct {
	factors int
	drift   float64
	x0      float64
}

func (s driftOnlySDE) InitialState(paths int) (*randvar.RandomVariable, error) {
	return randvar.NewFromConstant(paths, s.x0)
}
func (s driftOnlySDE) NumberOfFactors() int { return s.factors }
func (s driftOnlySDE) Drift(int) (float64, error) {
	return s.drift, nil
}
func (s driftOnlySDE) FactorLoading(int, int) (float64, error) {
	return 0, nil
}
func (s driftOnlySDE) Transform(x *randvar.RandomVariable) *randvar.RandomVariable {
	return x.Exp()
}

func newSource(t *testing.T, factors int) *increments.Engine {
	t.Helper()
	grid, err := timegrid.NewUniform(0, 1.0, 5)
	require.NoError(t, err)
	eng, err := increments.NewEngine(grid, factors, 16, 42,
		func(int, int) increments.ICDF {
			return func(u float64) float64 { return u }
		})
	require.NoError(t, err)

	return eng
}

// TestNewScheme_Validation verifies the construction contract.
func TestNewScheme_Validation(t *testing.T) {
	src := newSource(t, 2)

	_, err := euler.NewScheme(nil, driftOnlySDE{factors: 2})
	assert.ErrorIs(t, err, euler.ErrNilSource)

	_, err = euler.NewScheme(src, nil)
	assert.ErrorIs(t, err, euler.ErrNilSDE)

	_, err = euler.NewScheme(src, driftOnlySDE{factors: 3})
	assert.ErrorIs(t, err, euler.ErrFactorMismatch)
}

// TestState_Range verifies time-index bounds.
func TestState_Range(t *testing.T) {
	src := newSource(t, 1)
	scheme, err := euler.NewScheme(src, driftOnlySDE{factors: 1})
	require.NoError(t, err)

	_, err = scheme.State(-1)
	assert.ErrorIs(t, err, euler.ErrIndexRange)
	_, err = scheme.State(6)
	assert.ErrorIs(t, err, euler.ErrIndexRange, "grid has 6 points, index 6 is out")
}

// TestDriftOnlyEvolution verifies the recurrence X_{i+1} = X_i + μΔt in
// the absence of stochastic factors, and the exp transform on query.
func TestDriftOnlyEvolution(t *testing.T) {
	src := newSource(t, 1)
	sde := driftOnlySDE{factors: 1, drift: 0.05, x0: math.Log(100)}
	scheme, err := euler.NewScheme(src, sde)
	require.NoError(t, err)

	grid := scheme.TimeDiscretization()
	for i := 0; i < grid.NumberOfTimes(); i++ {
		ti, err := grid.Time(i)
		require.NoError(t, err)
		s, err := scheme.ProcessValue(i)
		require.NoError(t, err)

		want := 100 * math.Exp(0.05*ti)
		for _, v := range s.Values() {
			assert.InDelta(t, want, v, 1e-9, "index %d: drift-only path must be exponential growth", i)
		}
	}
}

// TestComputeOnce verifies states are materialized once and reused:
// querying the same index twice returns the identical vector.
func TestComputeOnce(t *testing.T) {
	src := newSource(t, 1)
	scheme, err := euler.NewScheme(src, driftOnlySDE{factors: 1, drift: 1})
	require.NoError(t, err)

	a, err := scheme.State(3)
	require.NoError(t, err)
	b, err := scheme.State(3)
	require.NoError(t, err)
	assert.Same(t, a, b, "repeated queries must reuse the finalized state")

	// Querying an earlier index after a later one must not recompute.
	c, err := scheme.State(1)
	require.NoError(t, err)
	d, err := scheme.State(1)
	require.NoError(t, err)
	assert.Same(t, c, d)
}

// TestMertonDegenerateDynamics verifies the full Merton wiring collapses
// to deterministic exponential growth when σ = 0 and λ = 0: the
// effective drift becomes exactly r.
func TestMertonDegenerateDynamics(t *testing.T) {
	grid, err := timegrid.NewUniform(0, 2.0, 8)
	require.NoError(t, err)
	model, err := merton.NewModel(merton.Params{
		InitialValue: 50, RiskFreeRate: 0.03,
	})
	require.NoError(t, err)
	supplier, err := model.InverseCDFs(grid)
	require.NoError(t, err)
	eng, err := increments.NewEngine(grid, merton.NumberOfFactors, 8, 1, supplier)
	require.NoError(t, err)
	src, err := increments.NewCompoundJumpSource(eng, merton.FactorJumpSize, merton.FactorJumpCount)
	require.NoError(t, err)

	scheme, err := euler.NewScheme(src, model)
	require.NoError(t, err)

	s, err := scheme.ProcessValue(grid.NumberOfTimeSteps())
	require.NoError(t, err)
	for _, v := range s.Values() {
		assert.InDelta(t, 50*math.Exp(0.03*2.0), v, 1e-9, "σ=λ=0 must reduce to S0·e^{rT}")
	}
}

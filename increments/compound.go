package increments

import (
	"github.com/katalvlaran/jumpdiff/randvar"
	"github.com/katalvlaran/jumpdiff/timegrid"
)

// CompoundJumpSource decorates an Engine so that queries for the
// jump-size factor are answered with the compound-jump increment
// Z·√N (jump-size draw times square root of the jump-count draw)
// instead of the raw jump-size draw. All other factors pass through
// untouched.
//
// The composition turns a Gaussian jump-size and a Poisson jump-count
// into the single compound jump term of the SDE without drawing a third
// raw source: across N i.i.d. N(0,1) sizes, the summed jump scales like
// √N in distribution. When the count sample is 0, the increment is
// exactly 0 regardless of the size sample: no jump that step.
type CompoundJumpSource struct {
	engine      *Engine
	sizeFactor  int // factor answered with the composition
	countFactor int // factor holding the raw Poisson count
}

// NewCompoundJumpSource wires the combinator over a raw engine.
// sizeFactor and countFactor must lie inside the engine's factor set.
func NewCompoundJumpSource(engine *Engine, sizeFactor, countFactor int) (*CompoundJumpSource, error) {
	if engine == nil {
		return nil, ErrNilSupplier
	}
	if sizeFactor < 0 || sizeFactor >= engine.factors ||
		countFactor < 0 || countFactor >= engine.factors {
		return nil, ErrFactorRange
	}

	return &CompoundJumpSource{engine: engine, sizeFactor: sizeFactor, countFactor: countFactor}, nil
}

// Increment returns the engine's raw increment, except for the
// configured size factor, which yields JumpContribution instead.
func (s *CompoundJumpSource) Increment(stepIndex, factorIndex int) (*randvar.RandomVariable, error) {
	if factorIndex == s.sizeFactor {
		return JumpContribution(s.engine, stepIndex, s.sizeFactor, s.countFactor)
	}

	return s.engine.Increment(stepIndex, factorIndex)
}

// NumberOfFactors returns the wrapped engine's factor count.
func (s *CompoundJumpSource) NumberOfFactors() int { return s.engine.NumberOfFactors() }

// NumberOfPaths returns the wrapped engine's path count.
func (s *CompoundJumpSource) NumberOfPaths() int { return s.engine.NumberOfPaths() }

// TimeDiscretization returns the wrapped engine's grid.
func (s *CompoundJumpSource) TimeDiscretization() *timegrid.TimeDiscretization {
	return s.engine.TimeDiscretization()
}

// JumpContribution composes the raw jump-size sample Z and the raw
// jump-count sample N of one step into the compound increment Z·√N.
// A zero count yields an exact zero on that path (√0 = 0).
func JumpContribution(engine *Engine, stepIndex, sizeFactor, countFactor int) (*randvar.RandomVariable, error) {
	z, err := engine.Increment(stepIndex, sizeFactor)
	if err != nil {
		return nil, err
	}
	n, err := engine.Increment(stepIndex, countFactor)
	if err != nil {
		return nil, err
	}

	return z.Mult(n.Sqrt())
}

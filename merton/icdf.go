package merton

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/jumpdiff/increments"
	"github.com/katalvlaran/jumpdiff/timegrid"
)

// FactorKind enumerates the distribution backing one factor of the
// inverse-CDF table.
type FactorKind int

const (
	// KindDiffusion is a standard normal scaled by √Δt.
	KindDiffusion FactorKind = iota

	// KindJumpSize is a raw standard normal.
	KindJumpSize

	// KindJumpCount is a Poisson count with mean λ·Δt.
	KindJumpCount
)

// FactorSpec is one cell of the inverse-CDF table: the distribution
// kind plus the only two parameters any cell needs. The table is a
// plain value, inspectable and testable in isolation from the engine.
type FactorSpec struct {
	// Kind selects the distribution.
	Kind FactorKind

	// TimeStep is Δt of the cell's step (used by diffusion scaling and
	// the Poisson mean).
	TimeStep float64

	// Intensity is λ (only meaningful for KindJumpCount).
	Intensity float64
}

// Quantile maps a uniform u ∈ (0,1) through the cell's inverse CDF.
func (s FactorSpec) Quantile(u float64) float64 {
	switch s.Kind {
	case KindDiffusion:
		return stdNormal.Quantile(u) * math.Sqrt(s.TimeStep)
	case KindJumpSize:
		return stdNormal.Quantile(u)
	default:
		return poissonQuantile(s.Intensity*s.TimeStep, u)
	}
}

// stdNormal is the shared N(0,1); Quantile needs no random source.
var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// FactorSpecs lays out the full (step × factor) inverse-CDF table for
// this model on the given grid.
func (m *Model) FactorSpecs(grid *timegrid.TimeDiscretization) ([][]FactorSpec, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	steps := grid.NumberOfTimeSteps()
	table := make([][]FactorSpec, steps)
	for i := 0; i < steps; i++ {
		dt, err := grid.TimeStep(i)
		if err != nil {
			return nil, err
		}
		table[i] = []FactorSpec{
			FactorDiffusion: {Kind: KindDiffusion, TimeStep: dt},
			FactorJumpSize:  {Kind: KindJumpSize, TimeStep: dt},
			FactorJumpCount: {Kind: KindJumpCount, TimeStep: dt, Intensity: m.params.JumpIntensity},
		}
	}

	return table, nil
}

// InverseCDFs builds the increments.Supplier over the model's factor
// table. Out-of-range pairs yield nil; the engine rejects them before
// ever calling the supplier.
func (m *Model) InverseCDFs(grid *timegrid.TimeDiscretization) (increments.Supplier, error) {
	table, err := m.FactorSpecs(grid)
	if err != nil {
		return nil, err
	}

	return func(stepIndex, factorIndex int) increments.ICDF {
		if stepIndex < 0 || stepIndex >= len(table) {
			return nil
		}
		if factorIndex < 0 || factorIndex >= NumberOfFactors {
			return nil
		}

		return table[stepIndex][factorIndex].Quantile
	}, nil
}

// poissonQuantile is the smallest k with P(N ≤ k) ≥ u for N ~ Poisson(mean),
// computed by the cumulative pmf recurrence (pmf_{k+1} = pmf_k · mean/(k+1)).
// gonum's distuv.Poisson exposes CDF but not Quantile, hence this local
// inversion; the tests cross-check it against the gonum CDF.
func poissonQuantile(mean, u float64) float64 {
	if mean == 0 {
		return 0
	}
	pmf := math.Exp(-mean)
	cdf := pmf
	k := 0.0
	// The limit bounds the scan for u → 1 after the pmf has underflowed.
	limit := mean + 40*math.Sqrt(mean) + 100
	for cdf < u && k < limit {
		k++
		pmf *= mean / k
		cdf += pmf
	}

	return k
}

package merton

import (
	"math"

	"github.com/katalvlaran/jumpdiff/randvar"
)

// Model holds validated Merton parameters together with the effective
// drift, which is derived exactly once at construction. Model is
// immutable and implements euler.SDE and fourier.CharacteristicModel.
type Model struct {
	params Params
	drift  float64 // μ = r − σ²/2 − (eᵃ − 1)·λ
}

// NewModel validates the parameters and derives the risk-neutral drift.
func NewModel(params Params) (*Model, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	mu := params.RiskFreeRate -
		0.5*params.Volatility*params.Volatility -
		(math.Exp(params.JumpSizeMean)-1)*params.JumpIntensity

	return &Model{params: params, drift: mu}, nil
}

// InitialValue returns S0.
func (m *Model) InitialValue() float64 { return m.params.InitialValue }

// RiskFreeRate returns r.
func (m *Model) RiskFreeRate() float64 { return m.params.RiskFreeRate }

// Volatility returns σ.
func (m *Model) Volatility() float64 { return m.params.Volatility }

// JumpIntensity returns λ.
func (m *Model) JumpIntensity() float64 { return m.params.JumpIntensity }

// JumpSizeMean returns a.
func (m *Model) JumpSizeMean() float64 { return m.params.JumpSizeMean }

// JumpSizeStdDev returns b.
func (m *Model) JumpSizeStdDev() float64 { return m.params.JumpSizeStdDev }

// Params returns a copy of the full parameter set.
func (m *Model) Params() Params { return m.params }

// EffectiveDrift returns μ = r − σ²/2 − (eᵃ − 1)·λ.
func (m *Model) EffectiveDrift() float64 { return m.drift }

// Numeraire returns the money-market account value N(t) = exp(r·t),
// independent of the simulated paths.
func (m *Model) Numeraire(time float64) float64 {
	return math.Exp(m.params.RiskFreeRate * time)
}

// InitialState returns X0 = ln(S0) broadcast over the path count.
// Part of the euler.SDE contract.
func (m *Model) InitialState(numberOfPaths int) (*randvar.RandomVariable, error) {
	return randvar.NewFromConstant(numberOfPaths, math.Log(m.params.InitialValue))
}

// NumberOfFactors returns 3. Part of the euler.SDE contract.
func (m *Model) NumberOfFactors() int { return NumberOfFactors }

// Drift returns μ for any step (the Merton drift is time-homogeneous).
// Part of the euler.SDE contract.
func (m *Model) Drift(stepIndex int) (float64, error) {
	if stepIndex < 0 {
		return 0, ErrStepRange
	}

	return m.drift, nil
}

// FactorLoading returns the coefficient the Euler recurrence applies to
// each factor's increment: σ on the diffusion, b on the compound jump,
// a − b²/2 on the jump count. Part of the euler.SDE contract.
func (m *Model) FactorLoading(stepIndex, factorIndex int) (float64, error) {
	if stepIndex < 0 {
		return 0, ErrStepRange
	}
	switch factorIndex {
	case FactorDiffusion:
		return m.params.Volatility, nil
	case FactorJumpSize:
		return m.params.JumpSizeStdDev, nil
	case FactorJumpCount:
		b := m.params.JumpSizeStdDev

		return m.params.JumpSizeMean - 0.5*b*b, nil
	default:
		return 0, ErrFactorRange
	}
}

// Transform maps the log-price state to the asset value: S = exp(X).
// Part of the euler.SDE contract.
func (m *Model) Transform(state *randvar.RandomVariable) *randvar.RandomVariable {
	return state.Exp()
}

// Package merton defines the model parameters, factor enumeration and
// sentinel errors.
package merton

import "errors"

// Sentinel errors returned by the merton package.
var (
	// ErrBadInitialValue indicates a non-positive spot value S0.
	ErrBadInitialValue = errors.New("merton: initial value must be positive")

	// ErrBadVolatility indicates a negative diffusion volatility σ.
	ErrBadVolatility = errors.New("merton: volatility must be non-negative")

	// ErrBadJumpIntensity indicates a negative jump intensity λ.
	ErrBadJumpIntensity = errors.New("merton: jump intensity must be non-negative")

	// ErrBadJumpSizeStdDev indicates a negative jump-size std. dev. b.
	ErrBadJumpSizeStdDev = errors.New("merton: jump size standard deviation must be non-negative")

	// ErrNilGrid indicates a nil time discretization.
	ErrNilGrid = errors.New("merton: time discretization is nil")

	// ErrStepRange indicates a coefficient query outside the grid steps.
	ErrStepRange = errors.New("merton: step index out of range")

	// ErrFactorRange indicates a factor index outside {0, 1, 2}.
	ErrFactorRange = errors.New("merton: factor index out of range")
)

// Factor indices of the model's three randomness sources per time step.
// The increments engine draws all three raw; the Euler wiring answers
// FactorJumpSize queries with the compound Z·√N combination.
const (
	// FactorDiffusion is the Brownian increment ΔW (pre-scaled by √Δt).
	FactorDiffusion = 0

	// FactorJumpSize is the standard-normal jump-size draw Z; consumed
	// by the scheme as the compound-jump increment Z·√N.
	FactorJumpSize = 1

	// FactorJumpCount is the Poisson jump-count increment ΔN.
	FactorJumpCount = 2

	// NumberOfFactors is the size of the factor set.
	NumberOfFactors = 3
)

// Params is the user-facing Merton parameter set. All fields are read
// once at construction; the model never observes later mutation.
type Params struct {
	// InitialValue is the spot S0 > 0.
	InitialValue float64

	// RiskFreeRate is the continuously compounded rate r.
	RiskFreeRate float64

	// Volatility is the diffusion volatility σ ≥ 0.
	Volatility float64

	// JumpIntensity is the Poisson intensity λ ≥ 0 (jumps per year).
	JumpIntensity float64

	// JumpSizeMean is a, the mean of log Y shifted by b²/2: the per-jump
	// log factor is distributed N(a − b²/2, b²), so E[Y] = eᵃ.
	JumpSizeMean float64

	// JumpSizeStdDev is b ≥ 0, the std. dev. of the per-jump log factor.
	JumpSizeStdDev float64
}

// Validate checks the parameter invariants.
func (p Params) Validate() error {
	if p.InitialValue <= 0 {
		return ErrBadInitialValue
	}
	if p.Volatility < 0 {
		return ErrBadVolatility
	}
	if p.JumpIntensity < 0 {
		return ErrBadJumpIntensity
	}
	if p.JumpSizeStdDev < 0 {
		return ErrBadJumpSizeStdDev
	}

	return nil
}

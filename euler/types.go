// Package euler defines the SDE coefficient contract consumed by the
// discretization scheme and the package's sentinel errors.
package euler

import (
	"errors"

	"github.com/katalvlaran/jumpdiff/randvar"
)

// Sentinel errors returned by the Euler scheme.
var (
	// ErrNilSource indicates a nil increment source was supplied.
	ErrNilSource = errors.New("euler: increment source is nil")

	// ErrNilSDE indicates a nil SDE specification was supplied.
	ErrNilSDE = errors.New("euler: SDE specification is nil")

	// ErrFactorMismatch indicates the increment source and the SDE
	// declare different factor counts.
	ErrFactorMismatch = errors.New("euler: factor count mismatch between source and SDE")

	// ErrIndexRange indicates a time index outside [0, numberOfTimes-1].
	ErrIndexRange = errors.New("euler: time index out of range")
)

// SDE supplies the coefficients of a one-dimensional jump-diffusion in
// state space, plus the map from state to observable value. A model
// binds to exactly one scheme; the scheme holds the model, never the
// other way around, so both are fully resolved at construction with no
// two-phase wiring.
type SDE interface {
	// InitialState returns X_0 broadcast over the given path count.
	InitialState(numberOfPaths int) (*randvar.RandomVariable, error)

	// NumberOfFactors returns the number of increment factors the drift
	// recurrence consumes.
	NumberOfFactors() int

	// Drift returns the state drift rate μ on step stepIndex; the scheme
	// multiplies it by the step size Δt.
	Drift(stepIndex int) (float64, error)

	// FactorLoading returns the coefficient applied to factor
	// factorIndex's increment on step stepIndex.
	FactorLoading(stepIndex, factorIndex int) (float64, error)

	// Transform maps the state X to the observable value (e.g. exp for
	// log-price dynamics).
	Transform(state *randvar.RandomVariable) *randvar.RandomVariable
}

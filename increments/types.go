// Package increments defines the increment-source contract, the
// inverse-CDF supplier shape and the package's sentinel errors.
package increments

import (
	"errors"

	"github.com/katalvlaran/jumpdiff/randvar"
	"github.com/katalvlaran/jumpdiff/timegrid"
)

// Sentinel errors returned by the increments engine.
var (
	// ErrNilGrid indicates a nil time discretization was supplied.
	ErrNilGrid = errors.New("increments: time discretization is nil")

	// ErrNilSupplier indicates a nil inverse-CDF supplier was supplied.
	ErrNilSupplier = errors.New("increments: inverse-CDF supplier is nil")

	// ErrBadFactorCount indicates a non-positive number of factors.
	ErrBadFactorCount = errors.New("increments: number of factors must be positive")

	// ErrBadPathCount indicates a non-positive number of paths.
	ErrBadPathCount = errors.New("increments: number of paths must be positive")

	// ErrStepRange indicates a step index outside [0, numberOfTimeSteps-1].
	ErrStepRange = errors.New("increments: step index out of range")

	// ErrFactorRange indicates a factor index outside the declared factor set.
	ErrFactorRange = errors.New("increments: factor index out of range")

	// ErrNilICDF indicates the supplier returned no inverse CDF for a
	// valid (step, factor) pair.
	ErrNilICDF = errors.New("increments: supplier returned nil inverse CDF")
)

// ICDF maps a uniform variate in (0,1) to a real increment value.
// It is the inverse cumulative distribution function of one factor at
// one time step, with any step-dependent scaling (e.g. √Δt) already
// folded in by the supplier.
type ICDF func(u float64) float64

// Supplier yields the inverse CDF for a given (step, factor) pair.
// Implementations must be pure: the same pair always yields the same
// transformation. Range validation is the engine's job, not the
// supplier's.
type Supplier func(stepIndex, factorIndex int) ICDF

// Source is the increment view consumed by a discretization scheme.
// The raw *Engine implements it; CompoundJumpSource wraps an Engine to
// answer one factor with a derived composition.
type Source interface {
	// Increment returns the path-indexed increment vector for the given
	// (step, factor) pair.
	Increment(stepIndex, factorIndex int) (*randvar.RandomVariable, error)

	// NumberOfFactors returns the declared factor count F.
	NumberOfFactors() int

	// NumberOfPaths returns the path count P.
	NumberOfPaths() int

	// TimeDiscretization returns the grid the increments are drawn on.
	TimeDiscretization() *timegrid.TimeDiscretization
}

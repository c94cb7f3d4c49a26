// Package montecarlo defines the simulation options, override keys and
// sentinel errors.
package montecarlo

import "errors"

// Sentinel errors returned by the simulation facade.
var (
	// ErrNilGrid indicates a nil time discretization.
	ErrNilGrid = errors.New("montecarlo: time discretization is nil")

	// ErrUnsupportedAsset indicates an asset index other than 0; the
	// simulation covers a single asset.
	ErrUnsupportedAsset = errors.New("montecarlo: asset index out of range (single-asset simulation)")

	// ErrBadPathCount indicates a non-positive path count option.
	ErrBadPathCount = errors.New("montecarlo: number of paths must be positive")
)

// Recognized override keys for CloneWithModifiedData. Any other key in
// the override map is ignored, deliberately: callers may pass a shared
// bump map covering several model types.
const (
	// KeyInitialTime shifts the whole time grid to start at the value.
	KeyInitialTime = "initialTime"

	// KeyInitialValue overrides the spot S0.
	KeyInitialValue = "initialValue"

	// KeyRiskFreeRate overrides r.
	KeyRiskFreeRate = "riskFreeRate"

	// KeyVolatility overrides σ.
	KeyVolatility = "volatility"

	// KeyJumpIntensity overrides λ.
	KeyJumpIntensity = "jumpIntensity"

	// KeyJumpSizeMean overrides a.
	KeyJumpSizeMean = "jumpSizeMean"

	// KeyJumpSizeStdDev overrides b.
	KeyJumpSizeStdDev = "jumpSizeStdDev"

	// KeySeed overrides the random seed (value truncated to uint64).
	KeySeed = "seed"
)

// Defaults — single source of truth for option zero-values.
const (
	// DefaultNumberOfPaths is the path count used when no option is given.
	DefaultNumberOfPaths = 10_000

	// DefaultSeed is the random seed used when no option is given.
	DefaultSeed uint64 = 3141
)

// options carries the variable construction knobs; fields are unexported
// and reachable only through Option setters.
type options struct {
	paths int
	seed  uint64
}

// Option is a functional option for New.
type Option func(*options)

// WithNumberOfPaths sets the Monte Carlo path count P.
func WithNumberOfPaths(paths int) Option {
	return func(o *options) {
		o.paths = paths
	}
}

// WithSeed sets the random-number seed.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

func defaultOptions() options {
	return options{paths: DefaultNumberOfPaths, seed: DefaultSeed}
}

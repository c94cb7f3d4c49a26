package increments

import (
	"sync"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/jumpdiff/randvar"
	"github.com/katalvlaran/jumpdiff/timegrid"
)

// Engine produces one independent increment vector per (step, factor)
// pair. Streams are generated lazily and memoized; Prepare() forces all
// of them eagerly in parallel. Engine is safe for concurrent use.
type Engine struct {
	grid     *timegrid.TimeDiscretization
	factors  int
	paths    int
	seed     uint64
	supplier Supplier

	mu      sync.Mutex
	streams [][]*randvar.RandomVariable // [step][factor], nil until generated
}

// NewEngine validates the construction contract and returns an engine
// with no streams generated yet.
func NewEngine(grid *timegrid.TimeDiscretization, numberOfFactors, numberOfPaths int, seed uint64, supplier Supplier) (*Engine, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if numberOfFactors <= 0 {
		return nil, ErrBadFactorCount
	}
	if numberOfPaths <= 0 {
		return nil, ErrBadPathCount
	}
	if supplier == nil {
		return nil, ErrNilSupplier
	}

	steps := grid.NumberOfTimeSteps()
	streams := make([][]*randvar.RandomVariable, steps)
	for i := range streams {
		streams[i] = make([]*randvar.RandomVariable, numberOfFactors)
	}

	return &Engine{
		grid:     grid,
		factors:  numberOfFactors,
		paths:    numberOfPaths,
		seed:     seed,
		supplier: supplier,
		streams:  streams,
	}, nil
}

// NumberOfFactors returns the declared factor count F.
func (e *Engine) NumberOfFactors() int { return e.factors }

// NumberOfPaths returns the path count P.
func (e *Engine) NumberOfPaths() int { return e.paths }

// Seed returns the seed the engine was constructed with.
func (e *Engine) Seed() uint64 { return e.seed }

// TimeDiscretization returns the grid the increments are drawn on.
func (e *Engine) TimeDiscretization() *timegrid.TimeDiscretization { return e.grid }

// Increment returns the raw increment vector for (stepIndex, factorIndex),
// generating and memoizing it on first access.
func (e *Engine) Increment(stepIndex, factorIndex int) (*randvar.RandomVariable, error) {
	if stepIndex < 0 || stepIndex >= e.grid.NumberOfTimeSteps() {
		return nil, ErrStepRange
	}
	if factorIndex < 0 || factorIndex >= e.factors {
		return nil, ErrFactorRange
	}

	e.mu.Lock()
	cached := e.streams[stepIndex][factorIndex]
	e.mu.Unlock()
	if cached != nil {
		return cached, nil
	}

	rv, err := e.generate(stepIndex, factorIndex)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	// Another goroutine may have generated the same stream meanwhile;
	// both results are bit-identical, so either may be kept.
	if e.streams[stepIndex][factorIndex] == nil {
		e.streams[stepIndex][factorIndex] = rv
	}
	rv = e.streams[stepIndex][factorIndex]
	e.mu.Unlock()

	return rv, nil
}

// Prepare eagerly generates every (step, factor) stream, one goroutine
// per stream. Because substream seeds depend only on (seed, step,
// factor), the result is bit-identical to lazy sequential generation.
func (e *Engine) Prepare() error {
	var g errgroup.Group
	for i := 0; i < e.grid.NumberOfTimeSteps(); i++ {
		for j := 0; j < e.factors; j++ {
			g.Go(func() error {
				_, err := e.Increment(i, j)

				return err
			})
		}
	}

	return g.Wait()
}

// generate draws P uniforms from the (step, factor) substream and pushes
// them through the factor's inverse CDF.
func (e *Engine) generate(stepIndex, factorIndex int) (*randvar.RandomVariable, error) {
	icdf := e.supplier(stepIndex, factorIndex)
	if icdf == nil {
		return nil, ErrNilICDF
	}

	rng := rand.New(rand.NewSource(substreamSeed(e.seed, stepIndex, factorIndex)))
	values := make([]float64, e.paths)
	for p := 0; p < e.paths; p++ { // fixed path order 0..P-1
		values[p] = icdf(openUniform(rng))
	}

	return randvar.NewFromValues(values)
}

// openUniform draws a uniform strictly inside (0,1). Float64 yields
// [0,1); a zero would send quantile functions to −Inf, so it is skipped
// deterministically within the stream.
func openUniform(rng *rand.Rand) float64 {
	u := rng.Float64()
	for u == 0 {
		u = rng.Float64()
	}

	return u
}

// substreamSeed maps (seed, step, factor) to an independent stream seed.
// SplitMix64 finalization scatters adjacent pairs across the whole seed
// space, so neighbouring streams share no detectable structure.
func substreamSeed(seed uint64, stepIndex, factorIndex int) uint64 {
	z := seed ^ (uint64(stepIndex)<<32 | uint64(uint32(factorIndex)))
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return z ^ (z >> 31)
}

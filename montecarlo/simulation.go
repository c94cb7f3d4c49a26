package montecarlo

import (
	"github.com/katalvlaran/jumpdiff/euler"
	"github.com/katalvlaran/jumpdiff/increments"
	"github.com/katalvlaran/jumpdiff/merton"
	"github.com/katalvlaran/jumpdiff/randvar"
	"github.com/katalvlaran/jumpdiff/timegrid"
)

// Simulation is the Monte Carlo valuation facade over one Merton model,
// one increments engine and one Euler scheme (one-to-one ownership:
// none of the collaborators is shared with another simulation).
type Simulation struct {
	grid   *timegrid.TimeDiscretization
	model  *merton.Model
	scheme *euler.Scheme
	paths  int
	seed   uint64
}

// New wires the full simulation in one step: model, inverse-CDF table,
// increments engine, compound-jump source and Euler scheme, in that
// order, with every construction error surfacing before any piece is
// reachable.
func New(grid *timegrid.TimeDiscretization, params merton.Params, opts ...Option) (*Simulation, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.paths <= 0 {
		return nil, ErrBadPathCount
	}

	model, err := merton.NewModel(params)
	if err != nil {
		return nil, err
	}
	supplier, err := model.InverseCDFs(grid)
	if err != nil {
		return nil, err
	}
	engine, err := increments.NewEngine(grid, merton.NumberOfFactors, o.paths, o.seed, supplier)
	if err != nil {
		return nil, err
	}
	source, err := increments.NewCompoundJumpSource(engine, merton.FactorJumpSize, merton.FactorJumpCount)
	if err != nil {
		return nil, err
	}
	scheme, err := euler.NewScheme(source, model)
	if err != nil {
		return nil, err
	}

	return &Simulation{grid: grid, model: model, scheme: scheme, paths: o.paths, seed: o.seed}, nil
}

// Model returns the bound Merton model (read-only by construction).
func (s *Simulation) Model() *merton.Model { return s.model }

// NumberOfPaths returns P.
func (s *Simulation) NumberOfPaths() int { return s.paths }

// NumberOfAssets returns 1: this is a single-asset simulation.
func (s *Simulation) NumberOfAssets() int { return 1 }

// Seed returns the seed the simulation was constructed with.
func (s *Simulation) Seed() uint64 { return s.seed }

// TimeDiscretization returns the simulation grid.
func (s *Simulation) TimeDiscretization() *timegrid.TimeDiscretization { return s.grid }

// Time returns t_timeIndex.
func (s *Simulation) Time(timeIndex int) (float64, error) {
	return s.grid.Time(timeIndex)
}

// TimeIndex resolves a real time to the nearest grid index.
func (s *Simulation) TimeIndex(time float64) (int, error) {
	return s.grid.TimeIndex(time)
}

// AssetValue returns the path-indexed asset value S at a grid index.
// Only assetIndex 0 is supported.
func (s *Simulation) AssetValue(timeIndex, assetIndex int) (*randvar.RandomVariable, error) {
	if assetIndex != 0 {
		return nil, ErrUnsupportedAsset
	}

	return s.scheme.ProcessValue(timeIndex)
}

// AssetValueAtTime resolves a real time to the nearest grid index and
// returns the asset value there.
func (s *Simulation) AssetValueAtTime(time float64, assetIndex int) (*randvar.RandomVariable, error) {
	timeIndex, err := s.grid.TimeIndex(time)
	if err != nil {
		return nil, err
	}

	return s.AssetValue(timeIndex, assetIndex)
}

// Numeraire returns the money-market account value at a grid index,
// broadcast over the paths.
func (s *Simulation) Numeraire(timeIndex int) (*randvar.RandomVariable, error) {
	t, err := s.grid.Time(timeIndex)
	if err != nil {
		return nil, err
	}

	return s.NumeraireAtTime(t)
}

// NumeraireAtTime returns N(t) = exp(r·t), path-independent.
func (s *Simulation) NumeraireAtTime(time float64) (*randvar.RandomVariable, error) {
	return randvar.NewFromConstant(s.paths, s.model.Numeraire(time))
}

// MonteCarloWeights returns the per-path weight vector at a grid index:
// uniform 1/P.
func (s *Simulation) MonteCarloWeights(timeIndex int) (*randvar.RandomVariable, error) {
	if _, err := s.grid.Time(timeIndex); err != nil {
		return nil, err
	}

	return randvar.NewFromConstant(s.paths, 1/float64(s.paths))
}

// MonteCarloWeightsAtTime resolves a real time to the nearest grid index
// and returns the weights there.
func (s *Simulation) MonteCarloWeightsAtTime(time float64) (*randvar.RandomVariable, error) {
	timeIndex, err := s.grid.TimeIndex(time)
	if err != nil {
		return nil, err
	}

	return s.MonteCarloWeights(timeIndex)
}

// RandomVariableForConstant broadcasts a scalar over the path count.
func (s *Simulation) RandomVariableForConstant(value float64) (*randvar.RandomVariable, error) {
	return randvar.NewFromConstant(s.paths, value)
}

// ExpectedValue reduces a path-indexed quantity to its Monte Carlo
// expectation using the simulation weights.
func (s *Simulation) ExpectedValue(x *randvar.RandomVariable) (float64, error) {
	weights, err := s.MonteCarloWeights(0)
	if err != nil {
		return 0, err
	}

	return x.WeightedAverage(weights)
}

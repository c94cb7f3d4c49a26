package euler

import (
	"sync"

	"github.com/katalvlaran/jumpdiff/increments"
	"github.com/katalvlaran/jumpdiff/randvar"
	"github.com/katalvlaran/jumpdiff/timegrid"
)

// Scheme is the Euler discretization state machine. States are
// materialized lazily, strictly forward in time, and never mutated once
// finalized. Scheme is safe for concurrent queries.
type Scheme struct {
	source increments.Source
	sde    SDE

	mu      sync.Mutex
	states  []*randvar.RandomVariable // states[i] = X_i; nil until evolved
	evolved int                       // number of finalized states
}

// NewScheme binds an increment source and an SDE specification into a
// scheme positioned at time index 0. Both collaborators are resolved
// here, atomically; no partially wired scheme is ever observable.
func NewScheme(source increments.Source, sde SDE) (*Scheme, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	if sde == nil {
		return nil, ErrNilSDE
	}
	if source.NumberOfFactors() != sde.NumberOfFactors() {
		return nil, ErrFactorMismatch
	}

	initial, err := sde.InitialState(source.NumberOfPaths())
	if err != nil {
		return nil, err
	}

	states := make([]*randvar.RandomVariable, source.TimeDiscretization().NumberOfTimes())
	states[0] = initial

	return &Scheme{source: source, sde: sde, states: states, evolved: 1}, nil
}

// NumberOfPaths returns the path count P.
func (s *Scheme) NumberOfPaths() int { return s.source.NumberOfPaths() }

// TimeDiscretization returns the underlying grid.
func (s *Scheme) TimeDiscretization() *timegrid.TimeDiscretization {
	return s.source.TimeDiscretization()
}

// State returns the raw state vector X_timeIndex, evolving the scheme
// forward as far as needed. Earlier states are reused, never recomputed.
func (s *Scheme) State(timeIndex int) (*randvar.RandomVariable, error) {
	if timeIndex < 0 || timeIndex >= len(s.states) {
		return nil, ErrIndexRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.evolveTo(timeIndex); err != nil {
		return nil, err
	}

	return s.states[timeIndex], nil
}

// ProcessValue returns the transformed state (the observable value, e.g.
// the asset price exp(X)) at timeIndex. The transform is applied on
// demand; only raw states are stored.
func (s *Scheme) ProcessValue(timeIndex int) (*randvar.RandomVariable, error) {
	state, err := s.State(timeIndex)
	if err != nil {
		return nil, err
	}

	return s.sde.Transform(state), nil
}

// evolveTo runs transitions until states[timeIndex] is finalized.
// Caller must hold s.mu. Transitions are strictly ordered: step i+1
// observes step i's completed state.
func (s *Scheme) evolveTo(timeIndex int) error {
	grid := s.source.TimeDiscretization()
	factors := s.sde.NumberOfFactors()

	for i := s.evolved; i <= timeIndex; i++ {
		step := i - 1
		dt, err := grid.TimeStep(step)
		if err != nil {
			return err
		}
		drift, err := s.sde.Drift(step)
		if err != nil {
			return err
		}

		// X_{i} = X_{i-1} + μ·Δt + Σ_f loading_f · ΔF_f
		next := s.states[step].AddScalar(drift * dt)
		for f := 0; f < factors; f++ {
			loading, err := s.sde.FactorLoading(step, f)
			if err != nil {
				return err
			}
			if loading == 0 {
				continue
			}
			inc, err := s.source.Increment(step, f)
			if err != nil {
				return err
			}
			next, err = next.Add(inc.MultScalar(loading))
			if err != nil {
				return err
			}
		}

		s.states[i] = next
		s.evolved = i + 1
	}

	return nil
}

package montecarlo

// CloneWithModifiedData builds a new, fully independent simulation whose
// parameters are the receiver's defaults overridden by any recognized
// keys present in overrides (see the Key* constants). Unrecognized keys
// are ignored. The receiver is never mutated and shares no mutable state
// with the clone; this is the bump-and-revalue primitive.
func (s *Simulation) CloneWithModifiedData(overrides map[string]float64) (*Simulation, error) {
	params := s.model.Params()
	if v, ok := overrides[KeyInitialValue]; ok {
		params.InitialValue = v
	}
	if v, ok := overrides[KeyRiskFreeRate]; ok {
		params.RiskFreeRate = v
	}
	if v, ok := overrides[KeyVolatility]; ok {
		params.Volatility = v
	}
	if v, ok := overrides[KeyJumpIntensity]; ok {
		params.JumpIntensity = v
	}
	if v, ok := overrides[KeyJumpSizeMean]; ok {
		params.JumpSizeMean = v
	}
	if v, ok := overrides[KeyJumpSizeStdDev]; ok {
		params.JumpSizeStdDev = v
	}

	seed := s.seed
	if v, ok := overrides[KeySeed]; ok {
		seed = uint64(v)
	}

	grid := s.grid
	if v, ok := overrides[KeyInitialTime]; ok {
		t0, err := s.grid.Time(0)
		if err != nil {
			return nil, err
		}
		grid = s.grid.Shifted(v - t0)
	}

	return New(grid, params, WithNumberOfPaths(s.paths), WithSeed(seed))
}

// CloneWithModifiedSeed returns an independent simulation with identical
// parameters and grid but a different random seed: the one-key special
// case of CloneWithModifiedData.
func (s *Simulation) CloneWithModifiedSeed(seed uint64) (*Simulation, error) {
	return New(s.grid, s.model.Params(), WithNumberOfPaths(s.paths), WithSeed(seed))
}

// Package montecarlo assembles grid, model, increments engine and Euler
// scheme into a queryable single-asset simulation of the Merton
// jump-diffusion model.
//
// 🚀 What is a Simulation?
//
//	A fully wired Monte Carlo valuation context: asset values and the
//	numeraire at any grid index (or any real time, resolved to the
//	nearest grid point), uniform Monte Carlo weights, and
//	copy-on-override cloning for bump-and-revalue sensitivity analysis.
//	All collaborators are constructed atomically inside New; there is
//	no two-phase wiring and no partially initialized simulation is ever
//	observable.
//
// ✨ Key features:
//   - deterministic: same (seed, grid, paths) ⇒ bit-identical asset
//     vectors at every time index, run after run
//   - CloneWithModifiedData: a fresh, independent simulation with any
//     subset of {initialTime, initialValue, riskFreeRate, volatility,
//     jumpIntensity, jumpSizeMean, jumpSizeStdDev, seed} overridden;
//     unrecognized keys are ignored, the source is never mutated
//   - CloneWithModifiedSeed: the one-key special case of the above
//   - ExpectedValue: weight-averaged path reduction for expectations
//
// ⚙️ Usage:
//
//	grid, _ := timegrid.NewUniform(0, 1.0, 50)
//	sim, err := montecarlo.New(grid, params,
//	  montecarlo.WithNumberOfPaths(100_000),
//	  montecarlo.WithSeed(3141))
//	s, err := sim.AssetValue(grid.NumberOfTimeSteps(), 0)
//	bumped, err := sim.CloneWithModifiedData(map[string]float64{
//	  "volatility": 0.4,
//	})
//
// Errors (sentinel):
//
//	– ErrNilGrid            nil time discretization
//	– ErrUnsupportedAsset   assetIndex ≠ 0 (single-asset simulation)
//	– ErrBadPathCount       non-positive path count option
//	– model parameter violations surface from the merton package unchanged
package montecarlo

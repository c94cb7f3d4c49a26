// Package increments generates the independent random increments that
// drive the Euler discretization: one path-indexed vector per
// (time step, factor) pair, plus an explicit compound-jump combinator.
//
// 🚀 What does the engine do?
//
//	For a grid with n steps, F factors and P paths it materializes, on
//	demand, the increment vector ΔF(step, factor) by pushing P
//	independent uniforms through the factor's inverse cumulative
//	distribution function (supplied per (step, factor) at construction).
//	Every (step, factor) pair owns its own deterministic substream:
//	the uniform consumed by path p never depends on which other streams
//	were generated, in which order, or on how many goroutines ran.
//
// ✨ Key features:
//   - stable substream seeding: seed ⊕ (step, factor) mixed through
//     SplitMix64, then fed to a PCG source (golang.org/x/exp/rand)
//   - inverse-CDF suppliers as a plain two-argument pure function:
//     inspectable and testable in isolation, no hidden captured state
//   - Prepare() pre-generates all streams in parallel (errgroup);
//     lazy generation on first access otherwise
//   - CompoundJumpSource: a named combinator answering the jump-size
//     factor with Z·√N instead of a raw draw: explicit composition,
//     not an inheritance-style override
//
// ⚙️ Usage:
//
//	eng, err := increments.NewEngine(grid, 3, 10_000, seed, supplier)
//	dW, err := eng.Increment(step, 0)            // raw diffusion draw
//	src, err := increments.NewCompoundJumpSource(eng, 1, 2)
//	dJ, err := src.Increment(step, 1)            // Z·√N, zero when N=0
//
// Determinism:
//
//	Same (seed, grid, P) ⇒ bit-identical increments across runs and
//	across any degree of parallelism. This is what makes Monte Carlo
//	results reproducible and seed-bump clones meaningful.
//
// Errors (sentinel):
//
//	– ErrStepRange    step index outside [0, n−1]
//	– ErrFactorRange  factor index outside the declared factor set
//	– ErrNilSupplier / ErrNilGrid / ErrBadFactorCount / ErrBadPathCount
//	  construction-time contract violations
package increments

// Package euler evolves a one-dimensional state variable through an
// Euler discretization of a jump-diffusion SDE, one time step at a time,
// across all Monte Carlo paths at once.
//
// 🚀 What does the scheme compute?
//
//	Given an increment source (diffusion, jump-count and compound-jump
//	vectors per step) and a model's coefficient specification, the
//	scheme applies the recurrence
//
//	  X_{i+1} = X_i + μ·Δt_i + Σ_f  loading_f · ΔF_f(i)
//
//	with X_0 broadcast from the model's initial state. The asset value
//	handed to callers is the model transform of the state, computed on
//	demand (for log-price dynamics: S_i = exp(X_i)).
//
// ✨ Key features:
//   - strict forward evolution: index i+1 is undefined until every
//     earlier transition has executed; states are append-only
//   - lazy compute-once semantics: querying index i materializes
//     states 0..i exactly once, later queries reuse them
//   - no cross-path coupling anywhere: the recurrence is pure
//     elementwise vector arithmetic (randvar), so paths stay
//     independent by construction
//   - non-finite values propagate untouched; a numerical blow-up is a
//     visible simulation failure, never silently clamped
//
// ⚙️ Usage:
//
//	scheme, err := euler.NewScheme(source, model)   // model: euler.SDE
//	s, err := scheme.ProcessValue(timeIndex)        // transformed state
//	x, err := scheme.State(timeIndex)               // raw log-state
//
// Complexity:
//   - Time: O(n·F·P) for a full sweep; each step touches each path once
//     per factor. Space: O(n·P) for the retained states.
//
// Errors (sentinel):
//
//	– ErrNilSource / ErrNilSDE     construction contract violations
//	– ErrFactorMismatch            source and SDE disagree on F
//	– ErrIndexRange                time index outside [0, n]
package euler

// Package jumpdiff prices single-asset European options under the
// Merton jump-diffusion model through two independent valuation routes
// that must agree: Monte Carlo simulation of the log-price path and
// Fourier integration of the model's characteristic function.
//
// 🚀 What is jumpdiff?
//
//	A compact, deterministic pricing library that brings together:
//		• randvar     — path-indexed vectors with elementwise arithmetic
//		• timegrid    — immutable, strictly increasing time discretizations
//		• increments  — independent per-(step, factor) random increments
//		• euler       — Euler discretization of the jump-diffusion SDE
//		• merton      — model coefficients, ICDF table, characteristic function
//		• montecarlo  — the queryable simulation facade with bump-and-revalue clones
//		• fourier     — payoff transform, strip bounds, Simpson pricer
//
// ✨ Why choose jumpdiff?
//
//   - Reproducible – same seed, grid and path count give bit-identical
//     results, under any degree of parallelism
//   - Honest numerics – non-finite values propagate, never clamped
//   - Composed, not inherited – the compound-jump factor is an explicit
//     named combinator, every collaborator is wired atomically
//   - Cross-validated – the Monte Carlo and Fourier routes never call
//     each other, and the test suite holds them to agreement
//
// See each subpackage's doc.go for contracts, complexity and examples.
//
//	go get github.com/katalvlaran/jumpdiff
package jumpdiff

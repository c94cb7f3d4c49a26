// Package randvar provides the path-indexed random variable used by the
// Monte Carlo engine: one scalar per simulated path, manipulated strictly
// elementwise.
//
// 🚀 What is a RandomVariable?
//
//	A realization of a random quantity across P Monte Carlo paths,
//	stored as either
//	  • a deterministic constant (broadcast to every path), or
//	  • a dense vector of P per-path values.
//	All arithmetic is elementwise and allocation-per-op: operations
//	never mutate their receiver, so a value observed once never changes.
//
// ✨ Key features:
//   - constant/vector dual representation with automatic broadcasting
//   - elementwise Add / Sub / Mult / Div with size validation
//   - scalar variants (AddScalar, MultScalar) and transcendental maps
//     (Sqrt, Exp, Log) plus Floor for payoff clipping
//   - reductions: Average, WeightedAverage, Variance
//
// ⚙️ Usage:
//
//	x, _ := randvar.NewFromConstant(10_000, math.Log(100))
//	s := x.Exp()                         // asset value per path
//	payoff := s.AddScalar(-95).Floor(0)  // call payoff max(S-K, 0)
//	price := payoff.Average() * discount
//
// Determinism & Performance:
//   - All loops run in fixed path order 0..P-1; results are
//     bit-identical across runs and independent of parallel callers.
//   - Constant⊕constant stays constant: no vector is materialized
//     until a genuinely stochastic operand appears.
//   - Time: O(P) per elementwise op. Space: O(P) for the result.
//
// Errors (sentinel):
//
//	– ErrEmpty        if a variable is constructed with no paths.
//	– ErrSizeMismatch if two operands disagree on path count.
//	– ErrPathRange    if a per-path read is out of bounds.
package randvar

// Package merton implements the Merton jump-diffusion model for a
// single asset: its SDE coefficients for the Euler scheme, its
// inverse-CDF table for the increments engine, its numeraire, and its
// characteristic function for the Fourier pricing route.
//
// 🚀 The model
//
//	Under the risk-neutral measure the asset follows
//
//	  dS = μS dt + σS dW + S dJ,    S(0) = S0,
//
//	where J is a compound Poisson process with intensity λ whose jump
//	factors Y have log Y ~ N(a − b²/2, b²). Rewritten for the
//	log-price X = ln S:
//
//	  dX = μ dt + σ dW + dJˣ,   μ = r − σ²/2 − (eᵃ − 1)·λ,
//
//	which the Euler scheme consumes through three factors per step:
//	  factor 0 — diffusion ΔW        loading σ
//	  factor 1 — compound jump Z·√N  loading b
//	  factor 2 — jump count ΔN       loading a − b²/2
//
// ✨ Key features:
//   - parameter validation at construction; the effective drift μ is
//     derived once and held fixed (parameters are immutable)
//   - inspectable inverse-CDF table: FactorSpecs lays out, per
//     (step, factor), the distribution kind and the parameters it needs
//   - numeraire N(t) = exp(r·t)
//   - discounted characteristic function φ(u, t) of X_t whose algebraic
//     form matches the simulated dynamics (φ(−i, t) = S0 exactly, the
//     martingale identity)
//
// ⚙️ Usage:
//
//	model, err := merton.NewModel(merton.Params{
//	  InitialValue: 100, RiskFreeRate: 0.05, Volatility: 0.3,
//	  JumpIntensity: 0.4, JumpSizeMean: -0.1, JumpSizeStdDev: 0.2,
//	})
//	supplier, err := model.InverseCDFs(grid)   // feed the engine
//	phi := model.CharacteristicFunction(1.0)   // feed the Fourier route
//
// Errors (sentinel):
//
//	– ErrBadInitialValue   S0 must be positive (X0 = ln S0)
//	– ErrBadVolatility     σ must be non-negative
//	– ErrBadJumpIntensity  λ must be non-negative
//	– ErrBadJumpSizeStdDev b must be non-negative
//	– ErrNilGrid           nil time discretization for the ICDF table
//	– ErrStepRange / ErrFactorRange  coefficient query out of range
package merton

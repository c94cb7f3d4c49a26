// Package fourier prices European options by integrating the model's
// characteristic function against the payoff's Fourier transform along a
// contour inside the payoff's strip of regularity.
//
// 🚀 How does Fourier pricing work?
//
//	For log-price dynamics X with discounted characteristic function
//	φ(u, T), the call price with strike K and maturity T is
//
//	  price = (1/2π) ∫ φ(−(x + iα), T) · ĝ(x + iα) dx
//
//	where ĝ(u) = −K^{1+iu}/(u² − iu) is the transform of the call
//	payoff in log space and the contour level α must stay strictly
//	inside the payoff's admissible strip, here (0.5, 2.5) on the
//	imaginary axis, bracketing the transform's poles. The midpoint
//	α = 1.5 is used by default.
//
// ✨ Key features:
//   - EuropeanOption: stateless payoff transform + strip bounds,
//     total over the admissible domain (poles are the caller's to avoid)
//   - CharacteristicModel: the one-method contract a model fulfils to
//     be priced through this route
//   - composite Simpson quadrature with configurable truncation and
//     resolution (the characteristic function decays like a Gaussian
//     in the real direction, so moderate truncation suffices)
//
// ⚙️ Usage:
//
//	opt, err := fourier.NewEuropeanOption(1.0, 95)   // T=1y, K=95
//	price, err := fourier.Price(model, opt)          // model: merton.Model
//
// This valuation route is independent of the Monte Carlo route and the
// two are expected to agree within sampling error; neither calls the
// other at runtime.
//
// Errors (sentinel):
//
//	– ErrBadMaturity / ErrBadStrike   invalid product parameters
//	– ErrNilModel                     nil characteristic model
//	– ErrBadInterval / ErrBadPoints   invalid integrator configuration
package fourier

package fourier

import "math/cmplx"

// Strip bounds of the European call payoff transform: the contour level
// (imaginary part of the frequency argument) must stay strictly inside
// this interval to avoid the transform's singularities.
const (
	// StripLowerBound is the lower admissible contour level.
	StripLowerBound = 0.5

	// StripUpperBound is the upper admissible contour level.
	StripUpperBound = 2.5
)

// EuropeanOption is the Fourier-transform representation of the call
// payoff max(S(T) − K, 0): an immutable (maturity, strike) pair and a
// stateless complex map. It carries no error states: Apply is total
// over the admissible domain, and behavior at the excluded poles is the
// caller's to avoid by integrating strictly inside the strip.
type EuropeanOption struct {
	maturity float64
	strike   float64
}

// NewEuropeanOption validates and wraps the product parameters.
func NewEuropeanOption(maturity, strike float64) (EuropeanOption, error) {
	if maturity <= 0 {
		return EuropeanOption{}, ErrBadMaturity
	}
	if strike <= 0 {
		return EuropeanOption{}, ErrBadStrike
	}

	return EuropeanOption{maturity: maturity, strike: strike}, nil
}

// Apply evaluates the payoff transform
//
//	ĝ(u) = − K^{1+iu} / (u² − iu)
//
// at the complex frequency u. The poles of ĝ sit where u² = iu; the
// integration strip (StripLowerBound, StripUpperBound) brackets them.
func (o EuropeanOption) Apply(u complex128) complex128 {
	iu := u * 1i
	numerator := cmplx.Pow(complex(o.strike, 0), 1+iu)
	denominator := u*u - iu

	return -numerator / denominator
}

// Maturity returns T, consumed by the integrator for the model's
// time-dependent term (applied externally, not inside Apply).
func (o EuropeanOption) Maturity() float64 { return o.maturity }

// Strike returns K.
func (o EuropeanOption) Strike() float64 { return o.strike }

// Package fourier defines the characteristic-function contracts and the
// package's sentinel errors.
package fourier

import "errors"

// Sentinel errors returned by the fourier package.
var (
	// ErrBadMaturity indicates a non-positive option maturity.
	ErrBadMaturity = errors.New("fourier: maturity must be positive")

	// ErrBadStrike indicates a non-positive option strike.
	ErrBadStrike = errors.New("fourier: strike must be positive")

	// ErrNilModel indicates a nil characteristic model was supplied.
	ErrNilModel = errors.New("fourier: characteristic model is nil")

	// ErrBadInterval indicates integrator bounds with upper <= lower.
	ErrBadInterval = errors.New("fourier: integration upper bound must exceed lower bound")

	// ErrBadPoints indicates an integrator with fewer than three, or an
	// even number of, evaluation points (composite Simpson needs an odd
	// count >= 3).
	ErrBadPoints = errors.New("fourier: number of evaluation points must be odd and at least 3")
)

// CharacteristicFunction maps a complex frequency argument to the
// complex value of a (discounted) characteristic function at a fixed
// time horizon.
type CharacteristicFunction func(argument complex128) complex128

// CharacteristicModel is fulfilled by models that expose the discounted
// characteristic function of their log-price process. The returned
// function must be analytic on the strip used by the product being
// priced.
type CharacteristicModel interface {
	CharacteristicFunction(time float64) CharacteristicFunction
}

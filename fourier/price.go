package fourier

import "math"

// Price values the product under the given model through the Fourier
// route with the default Simpson integrator.
func Price(model CharacteristicModel, product EuropeanOption) (float64, error) {
	integrator, err := NewSimpsonIntegrator(-DefaultTruncation, DefaultTruncation, DefaultPoints)
	if err != nil {
		return 0, err
	}

	return PriceWithIntegrator(model, product, integrator)
}

// PriceWithIntegrator evaluates
//
//	price = (1/2π) ∫ Re[ φ(−(x + iα)) · ĝ(x + iα) ] dx
//
// along the contour level α placed at the midpoint of the product's
// strip of regularity. φ is the model's discounted characteristic
// function at the product maturity; ĝ the payoff transform.
func PriceWithIntegrator(model CharacteristicModel, product EuropeanOption, integrator *SimpsonIntegrator) (float64, error) {
	if model == nil {
		return 0, ErrNilModel
	}
	if integrator == nil {
		return 0, ErrBadInterval
	}

	phi := model.CharacteristicFunction(product.Maturity())
	alpha := 0.5 * (StripLowerBound + StripUpperBound)

	integrand := func(x float64) float64 {
		u := complex(x, alpha)

		return real(phi(-u) * product.Apply(u))
	}

	return integrator.Integrate(integrand) / (2 * math.Pi), nil
}

package merton

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/jumpdiff/fourier"
)

// CharacteristicFunction returns the discounted characteristic function
// of the log-price X_t,
//
//	φ(u, t) = E[e^{iu·X_t}] · e^{−rt}
//	        = exp( c·(ln S0 + μt) + c²σ²t/2
//	               + λt·(exp(c·(a − b²/2) + c²b²/2) − 1) − rt ),  c = iu,
//
// extended analytically to complex u. Its algebraic form matches the
// simulated dynamics exactly: in particular φ(−i, t) = S0, the
// risk-neutral martingale identity, which the tests pin down.
//
// Part of the fourier.CharacteristicModel contract.
func (m *Model) CharacteristicFunction(time float64) fourier.CharacteristicFunction {
	var (
		logS0  = math.Log(m.params.InitialValue)
		mu     = m.drift
		sigma2 = m.params.Volatility * m.params.Volatility
		lambda = m.params.JumpIntensity
		a      = m.params.JumpSizeMean
		b2     = m.params.JumpSizeStdDev * m.params.JumpSizeStdDev
		r      = m.params.RiskFreeRate
	)

	return func(u complex128) complex128 {
		c := u * 1i
		c2 := c * c

		exponent := c*complex(logS0+mu*time, 0) +
			c2*complex(0.5*sigma2*time, 0) +
			complex(lambda*time, 0)*(cmplx.Exp(c*complex(a-0.5*b2, 0)+c2*complex(0.5*b2, 0))-1) -
			complex(r*time, 0)

		return cmplx.Exp(exponent)
	}
}

// SPDX-License-Identifier: MIT

package randvar

import "math"

// NewFromConstant returns a deterministic RandomVariable broadcasting
// value over size paths.
func NewFromConstant(size int, value float64) (*RandomVariable, error) {
	if size <= 0 {
		return nil, ErrEmpty
	}

	return &RandomVariable{size: size, constant: value}, nil
}

// NewFromValues returns a stochastic RandomVariable holding a copy of the
// supplied per-path realizations.
func NewFromValues(values []float64) (*RandomVariable, error) {
	if len(values) == 0 {
		return nil, ErrEmpty
	}
	v := make([]float64, len(values))
	copy(v, values)

	return &RandomVariable{size: len(values), values: v}, nil
}

// Size returns the number of Monte Carlo paths.
func (x *RandomVariable) Size() int { return x.size }

// IsDeterministic reports whether x is a constant broadcast (no per-path
// storage).
func (x *RandomVariable) IsDeterministic() bool { return x.values == nil }

// Get returns the realization on the given path.
func (x *RandomVariable) Get(path int) (float64, error) {
	if path < 0 || path >= x.size {
		return 0, ErrPathRange
	}
	if x.values == nil {
		return x.constant, nil
	}

	return x.values[path], nil
}

// Values materializes a fresh per-path slice (constants are expanded).
// The returned slice is owned by the caller.
func (x *RandomVariable) Values() []float64 {
	out := make([]float64, x.size)
	if x.values == nil {
		for i := 0; i < x.size; i++ {
			out[i] = x.constant
		}

		return out
	}
	copy(out, x.values)

	return out
}

// apply maps f over x elementwise. Constants stay constant: no vector is
// materialized for a deterministic receiver.
func (x *RandomVariable) apply(f func(float64) float64) *RandomVariable {
	if x.values == nil {
		return &RandomVariable{size: x.size, constant: f(x.constant)}
	}
	out := make([]float64, x.size)
	for i := 0; i < x.size; i++ { // fixed path order 0..P-1
		out[i] = f(x.values[i])
	}

	return &RandomVariable{size: x.size, values: out}
}

// combine merges x and y elementwise via f, broadcasting constants.
func (x *RandomVariable) combine(y *RandomVariable, f func(a, b float64) float64) (*RandomVariable, error) {
	if x.size != y.size {
		return nil, ErrSizeMismatch
	}
	// Constant ⊕ constant stays constant.
	if x.values == nil && y.values == nil {
		return &RandomVariable{size: x.size, constant: f(x.constant, y.constant)}, nil
	}
	out := make([]float64, x.size)
	for i := 0; i < x.size; i++ { // fixed path order 0..P-1
		a := x.constant
		if x.values != nil {
			a = x.values[i]
		}
		b := y.constant
		if y.values != nil {
			b = y.values[i]
		}
		out[i] = f(a, b)
	}

	return &RandomVariable{size: x.size, values: out}, nil
}

// Add returns x + y elementwise.
func (x *RandomVariable) Add(y *RandomVariable) (*RandomVariable, error) {
	return x.combine(y, func(a, b float64) float64 { return a + b })
}

// Sub returns x − y elementwise.
func (x *RandomVariable) Sub(y *RandomVariable) (*RandomVariable, error) {
	return x.combine(y, func(a, b float64) float64 { return a - b })
}

// Mult returns x · y elementwise.
func (x *RandomVariable) Mult(y *RandomVariable) (*RandomVariable, error) {
	return x.combine(y, func(a, b float64) float64 { return a * b })
}

// Div returns x / y elementwise. Division by zero follows IEEE-754
// (±Inf/NaN propagate; see the numerical-degeneracy policy in doc.go).
func (x *RandomVariable) Div(y *RandomVariable) (*RandomVariable, error) {
	return x.combine(y, func(a, b float64) float64 { return a / b })
}

// AddScalar returns x + s elementwise.
func (x *RandomVariable) AddScalar(s float64) *RandomVariable {
	return x.apply(func(a float64) float64 { return a + s })
}

// MultScalar returns x · s elementwise.
func (x *RandomVariable) MultScalar(s float64) *RandomVariable {
	return x.apply(func(a float64) float64 { return a * s })
}

// Sqrt returns √x elementwise. Negative inputs yield NaN, which is
// deliberately propagated, never masked.
func (x *RandomVariable) Sqrt() *RandomVariable {
	return x.apply(math.Sqrt)
}

// Exp returns e^x elementwise.
func (x *RandomVariable) Exp() *RandomVariable {
	return x.apply(math.Exp)
}

// Log returns ln(x) elementwise.
func (x *RandomVariable) Log() *RandomVariable {
	return x.apply(math.Log)
}

// Floor returns max(x, floor) elementwise; the usual payoff clip.
func (x *RandomVariable) Floor(floor float64) *RandomVariable {
	return x.apply(func(a float64) float64 { return math.Max(a, floor) })
}

// Average returns the equally weighted path mean.
func (x *RandomVariable) Average() float64 {
	if x.values == nil {
		return x.constant
	}
	sum := 0.0
	for i := 0; i < x.size; i++ {
		sum += x.values[i]
	}

	return sum / float64(x.size)
}

// WeightedAverage returns Σ weights[i]·x[i]. Weights are expected to sum
// to one (the facade hands out uniform 1/P weights); no normalization is
// applied here.
func (x *RandomVariable) WeightedAverage(weights *RandomVariable) (float64, error) {
	prod, err := x.Mult(weights)
	if err != nil {
		return 0, err
	}

	return prod.Average() * float64(x.size), nil
}

// Variance returns the population variance of the path realizations.
func (x *RandomVariable) Variance() float64 {
	if x.values == nil {
		return 0
	}
	mean := x.Average()
	sum := 0.0
	for i := 0; i < x.size; i++ {
		d := x.values[i] - mean
		sum += d * d
	}

	return sum / float64(x.size)
}

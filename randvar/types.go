// SPDX-License-Identifier: MIT

// Package randvar defines the path-indexed vector type and its sentinel
// errors.
package randvar

import "errors"

// Sentinel errors returned by randvar operations.
var (
	// ErrEmpty indicates a RandomVariable was requested with zero paths.
	ErrEmpty = errors.New("randvar: number of paths must be positive")

	// ErrSizeMismatch indicates two operands carry different path counts.
	ErrSizeMismatch = errors.New("randvar: operands have different path counts")

	// ErrPathRange indicates a per-path read outside [0, Size()-1].
	ErrPathRange = errors.New("randvar: path index out of range")
)

// RandomVariable is an immutable path-indexed value: either a
// deterministic constant broadcast over size paths, or a dense vector of
// size per-path realizations.
//
// The zero value is not usable; construct via NewFromConstant or
// NewFromValues. Operations return fresh values and never mutate the
// receiver, which is what makes path states append-only by time index in
// the discretization scheme built on top.
type RandomVariable struct {
	size     int       // number of Monte Carlo paths
	constant float64   // broadcast value when values == nil
	values   []float64 // per-path realizations; nil for deterministic
}

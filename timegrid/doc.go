// Package timegrid provides the immutable time discretization shared by
// the increments engine and the Euler scheme.
//
// 🚀 What is a TimeDiscretization?
//
//	An ordered sequence of simulation times t0 < t1 < ... < tn, fixed
//	at construction. All stochastic machinery indexes into this grid:
//	increments are drawn per step [t_i, t_{i+1}), path states live at
//	the grid points themselves.
//
// ✨ Key features:
//   - strict validation: at least two points, strictly increasing
//   - derived step sizes: TimeStep(i) = t[i+1] − t[i]
//   - nearest-index resolution for real-valued times (TimeIndex)
//   - time-shifted copies for bump-and-revalue (Shifted)
//
// ⚙️ Usage:
//
//	grid, err := timegrid.NewUniform(0, 1.0, 50)   // 50 steps on [0,1]
//	dt, _ := grid.TimeStep(0)                      // 0.02
//	i, _ := grid.TimeIndex(0.500001)               // 25 (nearest point)
//
// Complexity:
//   - Construction: O(n) validation. TimeIndex: O(log n) binary search.
//   - Shifted: O(n) copy; the source grid is never mutated.
//
// Errors (sentinel):
//
//	– ErrTooFewTimes   if fewer than two points are supplied.
//	– ErrNotIncreasing if the points are not strictly increasing.
//	– ErrIndexRange    if a time/step index is outside the grid.
//	– ErrTimeRange     if a real time lies outside [t0, tn].
package timegrid

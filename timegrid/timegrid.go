package timegrid

import (
	"errors"
	"sort"
)

// Sentinel errors returned by timegrid constructors and accessors.
var (
	// ErrTooFewTimes indicates fewer than two grid points were supplied.
	ErrTooFewTimes = errors.New("timegrid: at least two time points required")

	// ErrNotIncreasing indicates the supplied points are not strictly increasing.
	ErrNotIncreasing = errors.New("timegrid: time points must be strictly increasing")

	// ErrIndexRange indicates a time or step index outside the grid bounds.
	ErrIndexRange = errors.New("timegrid: index out of range")

	// ErrTimeRange indicates a real-valued time outside [t0, tn].
	ErrTimeRange = errors.New("timegrid: time outside discretization range")

	// ErrBadStepCount indicates a non-positive step count for a uniform grid.
	ErrBadStepCount = errors.New("timegrid: number of steps must be positive")
)

// TimeDiscretization is an immutable, strictly increasing sequence of
// simulation times t0 < t1 < ... < tn.
type TimeDiscretization struct {
	times []float64
}

// New validates and copies the supplied time points.
func New(times ...float64) (*TimeDiscretization, error) {
	if len(times) < 2 {
		return nil, ErrTooFewTimes
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return nil, ErrNotIncreasing
		}
	}
	t := make([]float64, len(times))
	copy(t, times)

	return &TimeDiscretization{times: t}, nil
}

// NewUniform builds an equidistant grid of steps intervals on
// [initial, final].
func NewUniform(initial, final float64, steps int) (*TimeDiscretization, error) {
	if steps <= 0 {
		return nil, ErrBadStepCount
	}
	if final <= initial {
		return nil, ErrNotIncreasing
	}
	dt := (final - initial) / float64(steps)
	times := make([]float64, steps+1)
	for i := 0; i <= steps; i++ {
		times[i] = initial + float64(i)*dt
	}
	times[steps] = final // avoid accumulated rounding on the last point

	return &TimeDiscretization{times: times}, nil
}

// NumberOfTimes returns n+1, the count of grid points.
func (d *TimeDiscretization) NumberOfTimes() int { return len(d.times) }

// NumberOfTimeSteps returns n, the count of intervals [t_i, t_{i+1}).
func (d *TimeDiscretization) NumberOfTimeSteps() int { return len(d.times) - 1 }

// Time returns t_index.
func (d *TimeDiscretization) Time(index int) (float64, error) {
	if index < 0 || index >= len(d.times) {
		return 0, ErrIndexRange
	}

	return d.times[index], nil
}

// TimeStep returns t[index+1] − t[index].
func (d *TimeDiscretization) TimeStep(index int) (float64, error) {
	if index < 0 || index >= len(d.times)-1 {
		return 0, ErrIndexRange
	}

	return d.times[index+1] - d.times[index], nil
}

// TimeIndex resolves a real-valued time to the nearest grid index.
// Times outside [t0, tn] are rejected with ErrTimeRange.
func (d *TimeDiscretization) TimeIndex(time float64) (int, error) {
	n := len(d.times)
	if time < d.times[0] || time > d.times[n-1] {
		return 0, ErrTimeRange
	}
	// First index with t >= time.
	i := sort.SearchFloat64s(d.times, time)
	if i == 0 {
		return 0, nil
	}
	if i == n {
		return n - 1, nil
	}
	// Round to the nearer of the two neighbors.
	if time-d.times[i-1] < d.times[i]-time {
		return i - 1, nil
	}

	return i, nil
}

// Times returns a copy of the grid points.
func (d *TimeDiscretization) Times() []float64 {
	out := make([]float64, len(d.times))
	copy(out, d.times)

	return out
}

// Shifted returns a new discretization with every point offset by delta.
// Step sizes are preserved exactly; the receiver is not mutated.
func (d *TimeDiscretization) Shifted(delta float64) *TimeDiscretization {
	times := make([]float64, len(d.times))
	for i, t := range d.times {
		times[i] = t + delta
	}

	return &TimeDiscretization{times: times}
}

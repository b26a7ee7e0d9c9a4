package core

import "math"

// Interval is a closed range of real numbers [Min, Max]
type Interval struct {
	Min, Max float64
}

var (
	// EmptyInterval contains nothing. It is the identity for Union.
	EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	// UniverseInterval contains every real number
	UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
)

// NewInterval creates an interval from its bounds
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// NewIntervalFromIntervals returns the tightest interval enclosing both a and b
func NewIntervalFromIntervals(a, b Interval) Interval {
	return Interval{
		Min: math.Min(a.Min, b.Min),
		Max: math.Max(a.Max, b.Max),
	}
}

// Union returns the tightest interval enclosing both intervals
func (i Interval) Union(other Interval) Interval {
	return NewIntervalFromIntervals(i, other)
}

// Size returns the length of the interval (negative when empty)
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether x lies in the interval, bounds included
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies strictly inside the interval
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp saturates x to the interval bounds
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// IsEmpty reports whether the interval contains no values.
// Intervals with a NaN bound are treated as empty.
func (i Interval) IsEmpty() bool {
	return !(i.Min <= i.Max)
}

package core

import "math"

// Interval is a closed range of real numbers [Min, Max].
// Every non-empty interval satisfies Min <= Max.
type Interval struct {
	Min, Max float64
}

var (
	// EmptyInterval contains nothing; it is the identity for Union
	EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	// UniverseInterval contains every real number
	UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
)

// NewInterval creates an interval from two bounds in either order
func NewInterval(a, b float64) Interval {
	if a > b {
		a, b = b, a
	}
	return Interval{Min: a, Max: b}
}

// Size returns Max - Min
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// IsEmpty reports whether the interval contains no values
func (i Interval) IsEmpty() bool {
	return i.Min > i.Max
}

// Contains reports whether x lies in [Min, Max]
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies in (Min, Max)
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp limits x to the interval
func (i Interval) Clamp(x float64) float64 {
	return clamp(x, i.Min, i.Max)
}

// Expand returns the interval grown by delta/2 on each side
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}

// Union returns the smallest interval enclosing both intervals
func (i Interval) Union(other Interval) Interval {
	return Interval{Min: math.Min(i.Min, other.Min), Max: math.Max(i.Max, other.Max)}
}

// Shift returns the interval translated by offset
func (i Interval) Shift(offset float64) Interval {
	return Interval{Min: i.Min + offset, Max: i.Max + offset}
}

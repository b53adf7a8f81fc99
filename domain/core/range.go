package core

import "math"

// Default bounds for generated values. 2^31-1 keeps the default range
// safe on 32-bit hosts; hosts with wider integers may pass wider
// bounds explicitly.
const (
	DefaultMin int64 = 0
	DefaultMax int64 = math.MaxInt32
)

// Range is an inclusive [Min, Max] interval of integers.
type Range struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// DefaultRange returns the platform-safe default interval.
func DefaultRange() Range {
	return Range{Min: DefaultMin, Max: DefaultMax}
}

// Validate rejects inverted ranges and spans that would overflow the
// host's sampling capacity. Validation is eager: callers check at
// construction time, never at draw time.
func (r Range) Validate() error {
	if r.Min >= r.Max {
		return NewInvalidRangeError(r.Min, r.Max)
	}
	// Span is Max-Min+1; it must fit a positive int64 for uniform draws.
	width := uint64(r.Max) - uint64(r.Min)
	if width >= math.MaxInt64 {
		return NewRangeOverflowError(r.Min, r.Max)
	}
	return nil
}

// Span returns the count of representable integers, Max - Min + 1.
// Only meaningful on a validated range.
func (r Range) Span() int64 {
	return int64(uint64(r.Max)-uint64(r.Min)) + 1
}

// Contains reports whether v lies within the interval.
func (r Range) Contains(v int64) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp pins v to the nearest bound when it falls outside the interval.
func (r Range) Clamp(v int64) int64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized validation error kinds
var (
	ErrEmptyInput         = errors.New("input string cannot be empty")
	ErrTypeMismatch       = errors.New("input is not valid text")
	ErrInvalidRange       = errors.New("invalid range")
	ErrRangeOverflow      = errors.New("range span overflows the sampling capacity")
	ErrInvalidCount       = errors.New("invalid count")
	ErrInvalidStrataCount = errors.New("invalid strata count")
	ErrInvalidSampleCount = errors.New("invalid sample count")
)

// Error constructors with context - every message carries the offending
// value and the bound it violated so callers can self-correct.
func NewInvalidRangeError(min, max int64) error {
	return fmt.Errorf("%w: min_value (%d) must be less than max_value (%d)", ErrInvalidRange, min, max)
}

func NewRangeOverflowError(min, max int64) error {
	return fmt.Errorf("%w: span of [%d, %d] exceeds max int64", ErrRangeOverflow, min, max)
}

func NewInvalidCountError(count int) error {
	return fmt.Errorf("%w: count must be a positive integer, got %d", ErrInvalidCount, count)
}

func NewInvalidStrataCountError(nStrata int, span int64) error {
	return fmt.Errorf("%w: %d strata cannot partition a span of %d", ErrInvalidStrataCount, nStrata, span)
}

func NewInvalidSampleCountError(nSamples int, span int64) error {
	return fmt.Errorf("%w: %d samples cannot be spaced across a span of %d", ErrInvalidSampleCount, nSamples, span)
}

// Error checking helpers
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrTypeMismatch) ||
		errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrRangeOverflow) ||
		errors.Is(err, ErrInvalidCount) ||
		errors.Is(err, ErrInvalidStrataCount) ||
		errors.Is(err, ErrInvalidSampleCount)
}

package common

import "github.com/chewxy/math32"

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// FiniteOr returns v when it is a finite number, otherwise fallback.
// NaN and both infinities are rejected.
//
// Parameters:
//   - v: the candidate value
//   - fallback: the value returned when v is not finite
//
// Returns:
//   - float32: v or fallback
func FiniteOr(v, fallback float32) float32 {
	if math32.IsNaN(v) || math32.IsInf(v, 0) {
		return fallback
	}
	return v
}

// Clamp limits v to the closed range [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float32: the clamped value
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

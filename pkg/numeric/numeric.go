// Package numeric defines the generic number constraint shared by the
// progression, prime and quadratic packages, along with helpers that treat
// integer and floating-point instantiations uniformly.
package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of built-in types supporting arithmetic and ordering.
type Number interface {
	constraints.Integer | constraints.Float
}

// IsIntegerType reports whether T is an integer type.
// Integer division truncates, floating-point division does not.
func IsIntegerType[T Number]() bool {
	var one T = 1
	return one/2 == 0
}

// IsIntegral reports whether v has no fractional part.
// NaN and the infinities are not integral.
func IsIntegral[T Number](v T) bool {
	if IsIntegerType[T]() {
		return true
	}
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return f == math.Trunc(f)
}

// Floor returns the greatest integral value less than or equal to v.
func Floor[T Number](v T) T {
	if IsIntegerType[T]() {
		return v
	}
	return T(math.Floor(float64(v)))
}

// Ceil returns the least integral value greater than or equal to v.
func Ceil[T Number](v T) T {
	if IsIntegerType[T]() {
		return v
	}
	return T(math.Ceil(float64(v)))
}

// IsNaN reports whether v is a floating-point NaN. It is always false for
// integer types.
func IsNaN[T Number](v T) bool {
	return v != v
}

// IsNegative reports whether v < 0. It is always false for unsigned types.
func IsNegative[T Number](v T) bool {
	return v < 0
}

// maxUint64Float is 2^64, the first float64 that does not fit in a uint64.
const maxUint64Float = float64(1 << 64)

// ToUint64 converts an integral, non-negative v to uint64.
// The boolean is false when v is negative, fractional, not finite, or
// beyond the uint64 range.
func ToUint64[T Number](v T) (uint64, bool) {
	if v < 0 {
		return 0, false
	}
	if IsIntegerType[T]() {
		return uint64(v), true
	}
	f := float64(v)
	if !IsIntegral(v) || f >= maxUint64Float {
		return 0, false
	}
	return uint64(f), true
}

// Sqrt returns floor(sqrt(n)) computed exactly for every uint64.
func Sqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	// float64 rounding can be off by one in either direction near 2^64.
	for r > 0 && r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}

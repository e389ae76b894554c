// Package prime provides primality testing and prime enumeration over any
// built-in numeric type.
//
// Floating-point arguments are accepted: a value with a fractional part is
// never prime, and range bounds are rounded inward (ceil of the lower bound,
// floor of the upper bound). Internally every integral value is handled as a
// uint64.
package prime

import (
	"math"

	apperrors "github.com/agbru/computil/internal/errors"
	"github.com/agbru/computil/pkg/numeric"
)

// Error kinds returned by this package, for use with errors.Is.
var (
	ErrDomain     = apperrors.ErrDomain
	ErrOutOfRange = apperrors.ErrOutOfRange
)

// InRangeLimit is the largest upper bound accepted by InRange. The plain
// sieve allocates one byte per integer up to the bound; use a Sieve for
// larger ranges.
const InRangeLimit uint64 = 1 << 26

// IsPrime reports whether num is a prime number.
//
// Values <= 1 and values with a fractional part are not prime. Otherwise
// num is trial-divided by every integer from 2 to floor(sqrt(num)).
// Floating-point values beyond the uint64 range are always even and are
// reported as not prime.
func IsPrime[T numeric.Number](num T) bool {
	if num <= 1 {
		return false
	}
	v, ok := numeric.ToUint64(num)
	if !ok {
		return false
	}
	return isPrime(v)
}

// isPrime is trial division by every i in [2, floor(sqrt(v))].
func isPrime(v uint64) bool {
	if v < 2 {
		return false
	}
	for i := uint64(2); i <= v/i; i++ {
		if v%i == 0 {
			return false
		}
	}
	return true
}

// Nearest returns the greatest prime less than or equal to floor(num).
//
// Values below 2 (and NaN) yield 2. The downward scan stops at 2, which is
// prime, so it always terminates. Floating-point inputs beyond the uint64
// range scan down from math.MaxUint64, and results above 2^53 are rounded
// to the nearest representable T.
func Nearest[T numeric.Number](num T) T {
	f := numeric.Floor(num)
	if !(f >= 2) {
		return 2
	}
	v, ok := numeric.ToUint64(f)
	if !ok {
		v = math.MaxUint64
	}
	return T(nearest(v))
}

// nearest scans down from v to the first prime. v must be >= 2.
func nearest(v uint64) uint64 {
	if v > 2 && v%2 == 0 {
		v--
	}
	for p := v; p > 2; p -= 2 {
		if isPrime(p) {
			return p
		}
	}
	return 2
}

// Next returns the smallest prime strictly greater than num.
//
// It fails with ErrOutOfRange when that prime cannot be represented
// exactly in T, or when num is not finite.
func Next[T numeric.Number](num T) (T, error) {
	const op = "prime.Next"
	f := numeric.Floor(num)
	if !(f >= 2) {
		if numeric.IsNaN(f) {
			return 0, apperrors.Domain(op, "argument is NaN")
		}
		return 2, nil
	}
	v, ok := numeric.ToUint64(f)
	if !ok {
		return 0, apperrors.OutOfRange(op, "%v exceeds the supported range", num)
	}
	for p := v + 1; p != 0; p++ {
		if !isPrime(p) {
			continue
		}
		if back, ok := numeric.ToUint64(T(p)); !ok || back != p {
			return 0, apperrors.OutOfRange(op, "next prime %d after %v does not fit in %T", p, num, num)
		}
		return T(p), nil
	}
	return 0, apperrors.OutOfRange(op, "no prime above %v fits in uint64", num)
}

// InRange returns every prime p with ceil(lower) <= p <= floor(upper), in
// ascending order, using a sieve of Eratosthenes up to floor(upper).
//
// It fails with ErrOutOfRange if either bound is negative, if upper is
// below lower, or if floor(upper) exceeds InRangeLimit, and with ErrDomain
// if a bound is NaN. An empty range yields an empty, non-nil slice.
func InRange[T numeric.Number](lower, upper T) ([]T, error) {
	const op = "prime.InRange"
	if numeric.IsNaN(lower) || numeric.IsNaN(upper) {
		return nil, apperrors.Domain(op, "bounds must not be NaN")
	}
	if numeric.IsNegative(lower) || numeric.IsNegative(upper) {
		return nil, apperrors.OutOfRange(op, "range [%v, %v] cannot be negative", lower, upper)
	}
	if upper < lower {
		return nil, apperrors.OutOfRange(op, "upper bound %v is below lower bound %v", upper, lower)
	}
	hi, ok := numeric.ToUint64(numeric.Floor(upper))
	if !ok || hi > InRangeLimit {
		return nil, apperrors.OutOfRange(op, "upper bound %v exceeds the sieve limit %d", upper, InRangeLimit)
	}
	lo, _ := numeric.ToUint64(numeric.Ceil(lower))

	composite := sieve(hi)
	primes := make([]T, 0)
	for p := max(lo, 2); p <= hi; p++ {
		if !composite[p] {
			primes = append(primes, T(p))
		}
	}
	return primes, nil
}

// sieve marks composite[i] for every composite i <= n. Entries 0 and 1 are
// left false and must be skipped by callers.
func sieve(n uint64) []bool {
	composite := make([]bool, n+1)
	for i := uint64(2); i <= n/i; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= n; j += i {
			composite[j] = true
		}
	}
	return composite
}

// primesUpTo lists the primes <= n in ascending order.
func primesUpTo(n uint64) []uint64 {
	if n < 2 {
		return nil
	}
	composite := sieve(n)
	primes := make([]uint64, 0, estimateCount(n))
	for p := uint64(2); p <= n; p++ {
		if !composite[p] {
			primes = append(primes, p)
		}
	}
	return primes
}

// estimateCount approximates pi(n) from above with 1.25506·n/ln(n).
func estimateCount(n uint64) int {
	if n < 17 {
		return 7
	}
	f := float64(n)
	return int(1.25506*f/math.Log(f)) + 1
}

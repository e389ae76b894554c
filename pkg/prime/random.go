package prime

import (
	"math/rand/v2"

	apperrors "github.com/agbru/computil/internal/errors"
)

// MaxRandomDigits is the largest digit count RandomPrime accepts; every
// 18-digit number fits in a uint64 with room for the upward scan.
const MaxRandomDigits = 18

// RandomPrime returns a prime with exactly digits decimal digits.
//
// A candidate is drawn uniformly from [10^(digits-1), 10^digits) and made
// odd (for more than one digit). The result is the first prime at or above
// the candidate that still has digits digits, or failing that the nearest
// prime below it. Primes that follow long gaps are therefore more likely
// than others; the result is not uniform over the primes of that length.
//
// A nil r draws from the package-level math/rand/v2 source. digits outside
// [1, MaxRandomDigits] fails with ErrDomain.
func RandomPrime(r *rand.Rand, digits int) (uint64, error) {
	if digits < 1 || digits > MaxRandomDigits {
		return 0, apperrors.Domain("prime.RandomPrime", "digit count %d must be between 1 and %d", digits, MaxRandomDigits)
	}
	lo := pow10(digits - 1)
	hi := pow10(digits)

	var x uint64
	if r == nil {
		x = lo + rand.Uint64N(hi-lo)
	} else {
		x = lo + r.Uint64N(hi-lo)
	}
	if digits > 1 {
		x |= 1
	}

	for p := x; p < hi; p++ {
		if isPrime(p) {
			return p, nil
		}
	}
	return nearest(x), nil
}

func pow10(n int) uint64 {
	v := uint64(1)
	for range n {
		v *= 10
	}
	return v
}

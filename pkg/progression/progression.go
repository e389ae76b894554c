// Package progression implements finite arithmetic progressions over any
// built-in numeric type.
//
// An AP is defined by its first term a, common difference d and term count
// n; its terms are a + i·d for i in [0, n). Term queries are 1-based and
// report invalid indices as errors rather than returning a fallback value.
package progression

import (
	"fmt"
	"iter"

	apperrors "github.com/agbru/computil/internal/errors"
	"github.com/agbru/computil/pkg/numeric"
)

// Error kinds returned by this package, for use with errors.Is.
var (
	ErrDomain     = apperrors.ErrDomain
	ErrOutOfRange = apperrors.ErrOutOfRange
)

// AP is a finite arithmetic progression.
//
// The zero value is an empty progression (no terms, sum 0). An AP is not
// safe for concurrent mutation; concurrent read-only use is fine.
type AP[T numeric.Number] struct {
	first T
	diff  T
	count uint
}

// New creates an AP with the given first term, common difference and
// number of terms. No validation is performed.
func New[T numeric.Number](first, diff T, count uint) *AP[T] {
	return &AP[T]{first: first, diff: diff, count: count}
}

// CommonDifference returns d.
func (p *AP[T]) CommonDifference() T { return p.diff }

// FirstTerm returns a.
func (p *AP[T]) FirstTerm() T { return p.first }

// TermCount returns n.
func (p *AP[T]) TermCount() uint { return p.count }

// SetCommonDifference replaces d in place.
func (p *AP[T]) SetCommonDifference(d T) { p.diff = d }

// SetFirstTerm replaces a in place.
func (p *AP[T]) SetFirstTerm(a T) { p.first = a }

// SetTermCount replaces n in place.
func (p *AP[T]) SetTermCount(n uint) { p.count = n }

// checkIndex validates a 1-based term index against the term count.
func (p *AP[T]) checkIndex(op string, n int) error {
	if n <= 0 {
		return apperrors.Domain(op, "term index %d must be positive", n)
	}
	if uint(n) > p.count {
		return apperrors.OutOfRange(op, "term index %d exceeds term count %d", n, p.count)
	}
	return nil
}

// term returns a + i·d for a 0-based index.
func (p *AP[T]) term(i uint) T {
	return p.first + T(i)*p.diff
}

// NthTerm returns the n-th term (1-based), a + (n-1)·d.
//
// Returns an error matching ErrDomain when n <= 0 and ErrOutOfRange when n
// exceeds the term count.
func (p *AP[T]) NthTerm(n int) (T, error) {
	if err := p.checkIndex("progression.NthTerm", n); err != nil {
		return 0, err
	}
	return p.term(uint(n - 1)), nil
}

// NthTermFromLast returns the n-th term counting from the end (1-based),
// computed as the last term minus (n-1)·d. It fails under the same
// conditions as NthTerm.
func (p *AP[T]) NthTermFromLast(n int) (T, error) {
	if err := p.checkIndex("progression.NthTermFromLast", n); err != nil {
		return 0, err
	}
	return p.term(p.count-1) - T(uint(n-1))*p.diff, nil
}

// LastTerm returns the final term. It fails with ErrOutOfRange on an empty
// progression.
func (p *AP[T]) LastTerm() (T, error) {
	if p.count == 0 {
		return 0, apperrors.OutOfRange("progression.LastTerm", "progression has no terms")
	}
	return p.term(p.count - 1), nil
}

// Sum returns the sum of all terms using the closed form
// n·(2a + (n-1)·d) / 2.
//
// For integer T the halving is applied to whichever factor is even, so the
// computation uses only multiplication and addition. Wrap-around in
// intermediate values then cancels out and the result is exact whenever the
// sum itself fits in T.
func (p *AP[T]) Sum() T {
	if p.count == 0 {
		return 0
	}
	if !numeric.IsIntegerType[T]() {
		return T(p.count) / 2 * (2*p.first + T(p.count-1)*p.diff)
	}
	if p.count%2 == 0 {
		return T(p.count/2) * (2*p.first + T(p.count-1)*p.diff)
	}
	return T(p.count) * (p.first + T((p.count-1)/2)*p.diff)
}

// SumOf returns the sum of an AP from its first term, last term and term
// count, n·(first+last)/2, independently of any AP value. With integer T an
// odd product truncates toward zero; the result is exact whenever it fits
// in T, even if n·(first+last) does not.
func SumOf[T numeric.Number](first, last T, n uint) T {
	if !numeric.IsIntegerType[T]() {
		return T(n) / 2 * (first + last)
	}
	if n%2 == 0 {
		return T(n/2) * (first + last)
	}
	// n = 2m+1, so the sum is m·s + s/2 with s = first+last. Both parts
	// share the sign of s, so truncating s/2 alone truncates the sum. s/2
	// is taken per operand: s = 2·h + r with r in [-2, 2].
	h, r := first/2+last/2, first%2+last%2
	h += r / 2
	switch {
	case r%2 == 0:
	case r > 0 && h < 0:
		h++
	case r < 0 && h > 0:
		h--
	}
	return T(n/2)*(first+last) + h
}

// Terms returns every term in index order. The slice has exactly
// TermCount elements; values descend when d is negative.
func (p *AP[T]) Terms() []T {
	terms := make([]T, p.count)
	for i := range terms {
		terms[i] = p.term(uint(i))
	}
	return terms
}

// All returns an iterator over (0-based index, term) pairs.
func (p *AP[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := uint(0); i < p.count; i++ {
			if !yield(int(i), p.term(i)) {
				return
			}
		}
	}
}

// String renders the defining parameters.
func (p *AP[T]) String() string {
	return fmt.Sprintf("AP{first=%v, diff=%v, count=%d}", p.first, p.diff, p.count)
}

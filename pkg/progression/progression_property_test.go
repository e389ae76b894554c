package progression

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestPairedTerms_PropertyBased verifies the pairing symmetry of an AP:
// the n-th term from the start and the n-th term from the end always add
// up to first + last, and counting count-n+1 from the end lands back on
// the n-th term.
func TestPairedTerms_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("a(n) + a'(n) = a(1) + a(count)", prop.ForAll(
		func(first, diff int64, count uint, n int) bool {
			if n > int(count) {
				n = int(count)
			}
			ap := New(first, diff, count)
			head, err := ap.NthTerm(n)
			if err != nil {
				return false
			}
			tail, err := ap.NthTermFromLast(n)
			if err != nil {
				return false
			}
			a1, _ := ap.NthTerm(1)
			an, _ := ap.NthTerm(int(count))
			return head+tail == a1+an
		},
		gen.Int64Range(-1_000_000, 1_000_000),
		gen.Int64Range(-1_000, 1_000),
		gen.UIntRange(1, 500),
		gen.IntRange(1, 500),
	))

	properties.Property("a'(count-n+1) = a(n)", prop.ForAll(
		func(first, diff int64, count uint, n int) bool {
			if n > int(count) {
				n = int(count)
			}
			ap := New(first, diff, count)
			head, err := ap.NthTerm(n)
			if err != nil {
				return false
			}
			mirrored, err := ap.NthTermFromLast(int(count) - n + 1)
			return err == nil && mirrored == head
		},
		gen.Int64Range(-1_000_000, 1_000_000),
		gen.Int64Range(-1_000, 1_000),
		gen.UIntRange(1, 500),
		gen.IntRange(1, 500),
	))

	properties.TestingRun(t)
}

// TestTermsAndSum_PropertyBased checks that Terms has exactly TermCount
// elements, each equal to first + i·diff, and that Sum equals their
// arithmetic sum.
func TestTermsAndSum_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("terms follow the closed form", prop.ForAll(
		func(first, diff int64, count uint) bool {
			terms := New(first, diff, count).Terms()
			if uint(len(terms)) != count {
				return false
			}
			for i, v := range terms {
				if v != first+int64(i)*diff {
					return false
				}
			}
			return true
		},
		gen.Int64Range(-1_000_000, 1_000_000),
		gen.Int64Range(-1_000, 1_000),
		gen.UIntRange(0, 1_000),
	))

	properties.Property("Sum equals the sum of Terms", prop.ForAll(
		func(first, diff int64, count uint) bool {
			ap := New(first, diff, count)
			var total int64
			for _, v := range ap.Terms() {
				total += v
			}
			return ap.Sum() == total && SumOf(first, first+int64(count-1)*diff, count) == total
		},
		gen.Int64Range(-1_000_000, 1_000_000),
		gen.Int64Range(-1_000, 1_000),
		gen.UIntRange(1, 1_000),
	))

	properties.TestingRun(t)
}

// TestNarrowIntegerSum_PropertyBased checks Sum and SumOf on int16 and
// int32, where n·(2a + (n-1)·d) routinely overflows even though the sum
// itself fits.
func TestNarrowIntegerSum_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("int16 Sum equals the exact sum when it fits", prop.ForAll(
		func(first, diff int16, count uint) bool {
			var exact int64
			for i := range int64(count) {
				exact += int64(first) + i*int64(diff)
			}
			if exact < math.MinInt16 || exact > math.MaxInt16 {
				return true
			}
			return int64(New(first, diff, count).Sum()) == exact
		},
		gen.Int16Range(-4_000, 4_000),
		gen.Int16Range(-300, 300),
		gen.UIntRange(0, 30),
	))

	properties.Property("int16 Sum equals the sum of Terms", prop.ForAll(
		func(first, diff int16, count uint) bool {
			ap := New(first, diff, count)
			var total int16
			for _, v := range ap.Terms() {
				total += v
			}
			return ap.Sum() == total
		},
		gen.Int16Range(math.MinInt16, math.MaxInt16),
		gen.Int16Range(math.MinInt16, math.MaxInt16),
		gen.UIntRange(0, 200),
	))

	properties.Property("int32 Sum equals the exact sum when it fits", prop.ForAll(
		func(first, diff int32, count uint) bool {
			exact := int64(count) * (2*int64(first) + int64(count-1)*int64(diff)) / 2
			if exact < math.MinInt32 || exact > math.MaxInt32 {
				return true
			}
			return int64(New(first, diff, count).Sum()) == exact
		},
		gen.Int32Range(-300_000_000, 300_000_000),
		gen.Int32Range(-10_000_000, 10_000_000),
		gen.UIntRange(1, 12),
	))

	properties.Property("int16 SumOf truncates like the exact quotient", prop.ForAll(
		func(first, last int16, n uint) bool {
			exact := int64(n) * (int64(first) + int64(last)) / 2
			if exact < math.MinInt16 || exact > math.MaxInt16 {
				return true
			}
			return int64(SumOf(first, last, n)) == exact
		},
		gen.Int16Range(math.MinInt16, math.MaxInt16),
		gen.Int16Range(math.MinInt16, math.MaxInt16),
		gen.UIntRange(0, 4),
	))

	properties.TestingRun(t)
}

package progression

import (
	"errors"
	"testing"
)

// FuzzNthTerm verifies that NthTerm either returns the closed-form value or
// a typed error for every index, and never a fallback value.
func FuzzNthTerm(f *testing.F) {
	f.Add(int64(1), int64(1), uint16(5), 0)
	f.Add(int64(1), int64(1), uint16(5), 1)
	f.Add(int64(1), int64(1), uint16(5), 5)
	f.Add(int64(1), int64(1), uint16(5), 6)
	f.Add(int64(-3), int64(-7), uint16(0), 1)
	f.Add(int64(100), int64(0), uint16(1000), -1)

	f.Fuzz(func(t *testing.T, first, diff int64, count uint16, n int) {
		ap := New(first, diff, uint(count))
		got, err := ap.NthTerm(n)

		switch {
		case n <= 0:
			if !errors.Is(err, ErrDomain) {
				t.Fatalf("NthTerm(%d) with count %d: got err %v, want ErrDomain", n, count, err)
			}
		case n > int(count):
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("NthTerm(%d) with count %d: got err %v, want ErrOutOfRange", n, count, err)
			}
		default:
			if err != nil {
				t.Fatalf("NthTerm(%d) with count %d: unexpected error %v", n, count, err)
			}
			if want := first + int64(n-1)*diff; got != want {
				t.Fatalf("NthTerm(%d) = %d, want %d", n, got, want)
			}
		}
	})
}

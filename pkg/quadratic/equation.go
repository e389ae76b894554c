// Package quadratic solves a·x² + b·x + c = 0 over any built-in numeric
// type.
package quadratic

import (
	"fmt"
	"math"

	apperrors "github.com/agbru/computil/internal/errors"
	"github.com/agbru/computil/pkg/numeric"
)

// Error kinds returned by this package, for use with errors.Is.
var (
	ErrDivisionByZero  = apperrors.ErrDivisionByZero
	ErrUndefinedResult = apperrors.ErrUndefinedResult
)

// Nature classifies the roots of an equation by the sign of its
// discriminant.
type Nature int

const (
	// RealDistinct means two different real roots (D > 0).
	RealDistinct Nature = iota
	// RealRepeated means one real root of multiplicity two (D == 0).
	RealRepeated
	// ComplexConjugate means a pair of complex conjugate roots (D < 0).
	ComplexConjugate
)

func (n Nature) String() string {
	switch n {
	case RealDistinct:
		return "real-distinct"
	case RealRepeated:
		return "real-repeated"
	case ComplexConjugate:
		return "complex-conjugate"
	default:
		return fmt.Sprintf("Nature(%d)", int(n))
	}
}

// Equation is the quadratic a·x² + b·x + c. It is immutable and safe for
// concurrent use. An equation with a == 0 can be built, but every
// operation that divides by a reports ErrDivisionByZero.
type Equation[T numeric.Number] struct {
	a, b, c T
}

// New returns the equation a·x² + b·x + c = 0.
func New[T numeric.Number](a, b, c T) Equation[T] {
	return Equation[T]{a: a, b: b, c: c}
}

// A returns the quadratic coefficient.
func (e Equation[T]) A() T { return e.a }

// B returns the linear coefficient.
func (e Equation[T]) B() T { return e.b }

// C returns the constant term.
func (e Equation[T]) C() T { return e.c }

// Discriminant returns b² - 4ac, computed in T. For narrow integer types
// the value can wrap; Nature and the root methods do not depend on it.
func (e Equation[T]) Discriminant() T {
	return e.b*e.b - 4*e.a*e.c
}

// Nature classifies the roots by the sign of the discriminant, evaluated
// in float64 like RealRoots and ComplexRoots so that all three agree.
func (e Equation[T]) Nature() Nature {
	switch d := e.discriminant(); {
	case d > 0:
		return RealDistinct
	case d == 0:
		return RealRepeated
	default:
		return ComplexConjugate
	}
}

// SumOfRoots returns -b/a. For integer T the quotient truncates toward zero.
func (e Equation[T]) SumOfRoots() (T, error) {
	if e.a == 0 {
		return 0, apperrors.DivisionByZero("quadratic.SumOfRoots", "coefficient a is zero")
	}
	return -e.b / e.a, nil
}

// ProductOfRoots returns c/a. For integer T the quotient truncates toward
// zero.
func (e Equation[T]) ProductOfRoots() (T, error) {
	if e.a == 0 {
		return 0, apperrors.DivisionByZero("quadratic.ProductOfRoots", "coefficient a is zero")
	}
	return e.c / e.a, nil
}

// RealRoots returns (-b+√D)/(2a) and (-b-√D)/(2a), computed in float64 and
// converted to T. It fails with ErrUndefinedResult when the roots are not
// real.
func (e Equation[T]) RealRoots() (T, T, error) {
	const op = "quadratic.RealRoots"
	if e.a == 0 {
		return 0, 0, apperrors.DivisionByZero(op, "coefficient a is zero")
	}
	d := e.discriminant()
	if d < 0 {
		return 0, 0, apperrors.UndefinedResult(op, "discriminant %v is negative", d)
	}
	a, b := float64(e.a), float64(e.b)
	sq := math.Sqrt(d)
	return T((-b + sq) / (2 * a)), T((-b - sq) / (2 * a)), nil
}

// ComplexRoots returns both roots as complex numbers. A non-negative
// discriminant yields the real pair with zero imaginary parts; otherwise
// the roots are -b/2a ± i·√|D|/2a.
func (e Equation[T]) ComplexRoots() (complex128, complex128, error) {
	if e.a == 0 {
		return 0, 0, apperrors.DivisionByZero("quadratic.ComplexRoots", "coefficient a is zero")
	}
	a, b := float64(e.a), float64(e.b)
	d := e.discriminant()
	if d >= 0 {
		sq := math.Sqrt(d)
		return complex((-b+sq)/(2*a), 0), complex((-b-sq)/(2*a), 0), nil
	}
	re := -b / (2 * a)
	im := math.Sqrt(-d) / (2 * a)
	return complex(re, im), complex(re, -im), nil
}

// Evaluate returns a·x² + b·x + c at x.
func (e Equation[T]) Evaluate(x float64) float64 {
	return (float64(e.a)*x+float64(e.b))*x + float64(e.c)
}

func (e Equation[T]) String() string {
	return fmt.Sprintf("%v·x² + %v·x + %v", e.a, e.b, e.c)
}

// discriminant evaluates b² - 4ac in float64 so that the root formulas are
// not subject to overflow in narrow integer types.
func (e Equation[T]) discriminant() float64 {
	a, b, c := float64(e.a), float64(e.b), float64(e.c)
	return b*b - 4*a*c
}

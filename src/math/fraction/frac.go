// Package fraction implements an exact rational value type over bounded
// machine integers.
//
// A Frac holds a signed numerator, a non-zero denominator, and an optional
// whole part kept only for mixed display: the value is whole + num/den.
// Arithmetic lifts both operands through the improper view (w*d + n)/d,
// checks every intermediate product against overflow before computing it,
// and returns unreduced results; reduction is opt-in through Simplify and
// Simplified.
//
// The package inherits two behaviors from the contract it reimplements and
// keeps them deliberately: parsing a lone integer literal "N" stores N as
// both numerator and denominator, and dividing by an integer produces the
// reciprocal of the quotient. Both are called out on the functions involved.
package fraction

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Frac is an immutable-by-convention fraction value. Operations return new
// values; the compound-assignment methods mutate their receiver but commit
// only after every check has passed. The zero Frac is not valid; obtain
// values from Zero, New, NewMixed, FromInt, FromFloat32, or Parse.
type Frac struct {
	whole int
	num   int
	den   int
}

// Zero returns the canonical zero fraction 0/1.
func Zero() Frac { return Frac{den: 1} }

// FromInt returns n/1.
func FromInt(n int) Frac { return Frac{num: n, den: 1} }

// New returns n/d stored exactly as given, without reducing. Callers
// wanting canonical form follow up with Simplified.
func New(n, d int) (Frac, error) {
	if d == 0 {
		return Frac{}, ErrZeroDivisor
	}
	return Frac{num: n, den: d}, nil
}

// NewMixed returns the mixed fraction w n/d, stored as given.
func NewMixed(w, n, d int) (Frac, error) {
	if d == 0 {
		return Frac{}, ErrZeroDivisor
	}
	return Frac{whole: w, num: n, den: d}, nil
}

// Must unwraps a (Frac, error) pair, panicking on error. It is intended
// for literals known to be valid, as in Must(New(1, 2)).
func Must(f Frac, err error) Frac {
	if err != nil {
		panic(err)
	}
	return f
}

// FromFloat32 derives a fraction from the shortest decimal rendering of x
// and simplifies the result. The path is approximate by contract: its
// accuracy is bounded by the decimal rendering, not by the true binary
// value of x.
func FromFloat32(x float32) (Frac, error) {
	if f64 := float64(x); math.IsNaN(f64) || math.IsInf(f64, 0) {
		return Frac{}, ErrInvalidFormat
	}

	d := decimal.NewFromFloat32(x)
	sign := 1
	if d.Sign() < 0 {
		sign = -1
		d = d.Abs()
	}

	// The decimal coefficient already has trailing zeros stripped, so a
	// negative exponent is exactly the count of digits after the point.
	coef := d.Coefficient()
	if !coef.IsInt64() || coef.Int64() > int64(maxInt) {
		return Frac{}, ErrOverflow
	}
	num := int(coef.Int64())
	den := 1
	for exp := int(d.Exponent()); exp > 0; exp-- {
		if MulOverflows(num, 10) {
			return Frac{}, ErrOverflow
		}
		num *= 10
	}
	for exp := int(d.Exponent()); exp < 0; exp++ {
		if MulOverflows(den, 10) {
			return Frac{}, ErrOverflow
		}
		den *= 10
	}
	if den == 0 {
		return Frac{}, ErrZeroDivisor
	}

	f := Frac{num: sign * num, den: den}
	f.Simplify()
	return f, nil
}

// Whole returns the mixed display part.
func (f Frac) Whole() int { return f.whole }

// Num returns the numerator of the fractional part.
func (f Frac) Num() int { return f.num }

// Den returns the denominator.
func (f Frac) Den() int { return f.den }

// Improper returns f with the whole part folded into the numerator:
// (w*d + n)/d. The result is not simplified.
func (f Frac) Improper() Frac {
	return Frac{num: f.whole*f.den + f.num, den: f.den}
}

// Reciprocal returns d/n. The whole part is not preserved: a caller
// holding a mixed value must convert with Improper first, otherwise the
// whole part is silently dropped. This matches the inherited contract and
// is kept loudly documented rather than silently redefined.
func (f Frac) Reciprocal() (Frac, error) {
	if f.num == 0 {
		return Frac{}, ErrZeroDivisor
	}
	return Frac{num: f.den, den: f.num}, nil
}

// Float32 evaluates (w*d + n)/d in single precision.
func (f Frac) Float32() float32 {
	n := f.whole*f.den + f.num
	return float32(n) / float32(f.den)
}

// Float64 evaluates (w*d + n)/d in double precision.
func (f Frac) Float64() float64 {
	n := f.whole*f.den + f.num
	return float64(n) / float64(f.den)
}

// String renders "W N/D" when the whole part is nonzero and "N/D"
// otherwise. Fields are printed as they are: no reduction, no sign
// reconciliation beyond what the simplifier left.
func (f Frac) String() string {
	if f.whole != 0 {
		return strconv.Itoa(f.whole) + " " + strconv.Itoa(f.num) + "/" + strconv.Itoa(f.den)
	}
	return strconv.Itoa(f.num) + "/" + strconv.Itoa(f.den)
}

// Set overwrites f with other.
func (f *Frac) Set(other Frac) { *f = other }

// SetFloat32 overwrites f with the fraction derived from x. On failure f
// is unchanged.
func (f *Frac) SetFloat32(x float32) error {
	v, err := FromFloat32(x)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// SetString overwrites f with the parsed fraction. On failure f is
// unchanged.
func (f *Frac) SetString(s string) error {
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// improperNum flattens f to its improper numerator w*d + n with both
// intermediate steps overflow-checked. Every arithmetic path lifts its
// operands through this single chokepoint.
func (f Frac) improperNum() (int, error) {
	if f.whole == 0 {
		return f.num, nil
	}
	if MulOverflows(f.whole, f.den) {
		return 0, ErrOverflow
	}
	wd := f.whole * f.den
	if AddOverflows(wd, f.num) {
		return 0, ErrOverflow
	}
	return wd + f.num, nil
}

package fraction

import "golang.org/x/exp/constraints"

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// gcd runs a subtract-free Euclidean loop: the larger operand is reduced
// modulo the smaller until one side reaches zero, and the survivor is the
// gcd. gcd(0, n) = |n|, which keeps the simplifier well defined when the
// improper fold leaves the numerator at zero.
func gcd[T constraints.Signed](a, b T) T {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Simplify reduces f in place to canonical form: the improper part is
// folded into the whole, signs are re-aligned so the whole carries the
// sign, the gcd is divided out, and the denominator ends positive.
func (f *Frac) Simplify() {
	if f.den == 0 {
		// Callers reject zero denominators before this point.
		return
	}
	if f.num == 0 {
		// Canonicalize the fractional part to 0/1. The whole survives:
		// it may hold the result of a previous fold, as in 5/1 -> 5 0/1.
		f.den = 1
		return
	}

	// Normalize the denominator first so the realign step below sees a
	// positive modulus.
	if f.den < 0 {
		f.num = -f.num
		f.den = -f.den
	}

	// Fold the improper part into the whole. Machine division truncates
	// toward zero, so the remainder keeps the numerator's sign.
	f.whole += f.num / f.den
	f.num %= f.den

	if f.num < 0 && f.whole != 0 {
		f.num += f.den
		if f.num > 0 {
			f.whole--
		}
	}

	g := gcd(f.num, f.den)
	f.num /= g
	f.den /= g
}

// Simplified returns the canonical form of f, leaving f untouched.
func (f Frac) Simplified() Frac {
	f.Simplify()
	return f
}

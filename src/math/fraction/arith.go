package fraction

// Binary arithmetic operates on the improper view of both operands: each
// side is flattened to (w*d + n)/d before the cross products are formed.
// Results carry a zero whole part and are not reduced; callers wanting
// canonical output invoke Simplified explicitly, which lets longer
// expressions skip repeated gcd work. Every intermediate product or sum is
// overflow-checked before it is computed, so a failing operation never
// commits partial state.

// Add returns f + other: (an*bd + bn*ad) / (ad*bd).
func (f Frac) Add(other Frac) (Frac, error) {
	an, err := f.improperNum()
	if err != nil {
		return Frac{}, err
	}
	bn, err := other.improperNum()
	if err != nil {
		return Frac{}, err
	}
	if MulOverflows(an, other.den) || MulOverflows(bn, f.den) || MulOverflows(f.den, other.den) {
		return Frac{}, ErrOverflow
	}
	if AddOverflows(an*other.den, bn*f.den) {
		return Frac{}, ErrOverflow
	}
	return Frac{num: an*other.den + bn*f.den, den: f.den * other.den}, nil
}

// Sub returns f - other: (an*bd - bn*ad) / (ad*bd).
func (f Frac) Sub(other Frac) (Frac, error) {
	an, err := f.improperNum()
	if err != nil {
		return Frac{}, err
	}
	bn, err := other.improperNum()
	if err != nil {
		return Frac{}, err
	}
	if MulOverflows(an, other.den) || MulOverflows(bn, f.den) || MulOverflows(f.den, other.den) {
		return Frac{}, ErrOverflow
	}
	if SubOverflows(an*other.den, bn*f.den) {
		return Frac{}, ErrOverflow
	}
	return Frac{num: an*other.den - bn*f.den, den: f.den * other.den}, nil
}

// Mul returns f * other: (an*bn) / (ad*bd).
func (f Frac) Mul(other Frac) (Frac, error) {
	an, err := f.improperNum()
	if err != nil {
		return Frac{}, err
	}
	bn, err := other.improperNum()
	if err != nil {
		return Frac{}, err
	}
	if MulOverflows(an, bn) || MulOverflows(f.den, other.den) {
		return Frac{}, ErrOverflow
	}
	return Frac{num: an * bn, den: f.den * other.den}, nil
}

// Div returns f / other by multiplying with the reciprocal of other:
// (an*bd) / (ad*bn). A divisor whose improper numerator is zero is a zero
// divisor.
func (f Frac) Div(other Frac) (Frac, error) {
	an, err := f.improperNum()
	if err != nil {
		return Frac{}, err
	}
	bn, err := other.improperNum()
	if err != nil {
		return Frac{}, err
	}
	if bn == 0 {
		return Frac{}, ErrZeroDivisor
	}
	if MulOverflows(an, other.den) || MulOverflows(f.den, bn) {
		return Frac{}, ErrOverflow
	}
	return Frac{num: an * other.den, den: f.den * bn}, nil
}

// AddInt returns f + k using the shortcut (an + d*k)/d.
func (f Frac) AddInt(k int) (Frac, error) {
	an, err := f.improperNum()
	if err != nil {
		return Frac{}, err
	}
	if MulOverflows(f.den, k) {
		return Frac{}, ErrOverflow
	}
	if AddOverflows(an, f.den*k) {
		return Frac{}, ErrOverflow
	}
	return Frac{num: an + f.den*k, den: f.den}, nil
}

// SubInt returns f - k using the shortcut (an - d*k)/d.
func (f Frac) SubInt(k int) (Frac, error) {
	an, err := f.improperNum()
	if err != nil {
		return Frac{}, err
	}
	if MulOverflows(f.den, k) {
		return Frac{}, ErrOverflow
	}
	if SubOverflows(an, f.den*k) {
		return Frac{}, ErrOverflow
	}
	return Frac{num: an - f.den*k, den: f.den}, nil
}

// MulInt returns f * k: (an*k)/d.
func (f Frac) MulInt(k int) (Frac, error) {
	an, err := f.improperNum()
	if err != nil {
		return Frac{}, err
	}
	if MulOverflows(an, k) {
		return Frac{}, ErrOverflow
	}
	return Frac{num: an * k, den: f.den}, nil
}

// DivInt computes (d*k)/an, which is the reciprocal k/f rather than the
// quotient f/k. The behavior is inherited contract, kept intact and
// documented; callers wanting the mathematical quotient can multiply by
// the reciprocal of FromInt(k).
func (f Frac) DivInt(k int) (Frac, error) {
	an, err := f.improperNum()
	if err != nil {
		return Frac{}, err
	}
	if an == 0 {
		return Frac{}, ErrZeroDivisor
	}
	if MulOverflows(f.den, k) {
		return Frac{}, ErrOverflow
	}
	return Frac{num: f.den * k, den: an}, nil
}

// AddFloat32 converts x and delegates to Add.
func (f Frac) AddFloat32(x float32) (Frac, error) {
	v, err := FromFloat32(x)
	if err != nil {
		return Frac{}, err
	}
	return f.Add(v)
}

// SubFloat32 converts x and delegates to Sub.
func (f Frac) SubFloat32(x float32) (Frac, error) {
	v, err := FromFloat32(x)
	if err != nil {
		return Frac{}, err
	}
	return f.Sub(v)
}

// MulFloat32 converts x and delegates to Mul.
func (f Frac) MulFloat32(x float32) (Frac, error) {
	v, err := FromFloat32(x)
	if err != nil {
		return Frac{}, err
	}
	return f.Mul(v)
}

// DivFloat32 converts x and delegates to Div.
func (f Frac) DivFloat32(x float32) (Frac, error) {
	v, err := FromFloat32(x)
	if err != nil {
		return Frac{}, err
	}
	return f.Div(v)
}

// AddString parses s and delegates to Add.
func (f Frac) AddString(s string) (Frac, error) {
	v, err := Parse(s)
	if err != nil {
		return Frac{}, err
	}
	return f.Add(v)
}

// SubString parses s and delegates to Sub.
func (f Frac) SubString(s string) (Frac, error) {
	v, err := Parse(s)
	if err != nil {
		return Frac{}, err
	}
	return f.Sub(v)
}

// MulString parses s and delegates to Mul.
func (f Frac) MulString(s string) (Frac, error) {
	v, err := Parse(s)
	if err != nil {
		return Frac{}, err
	}
	return f.Mul(v)
}

// DivString parses s and delegates to Div.
func (f Frac) DivString(s string) (Frac, error) {
	v, err := Parse(s)
	if err != nil {
		return Frac{}, err
	}
	return f.Div(v)
}

// IntAdd returns k + f.
func IntAdd(k int, f Frac) (Frac, error) { return f.AddInt(k) }

// IntSub computes f - k, not k - f: the reversed form inherits the forward
// operand order from the original contract and is kept as observed.
func IntSub(k int, f Frac) (Frac, error) { return f.SubInt(k) }

// IntMul returns k * f.
func IntMul(k int, f Frac) (Frac, error) { return f.MulInt(k) }

// IntDiv returns k / f: (k*d)/an. Because DivInt also lands in reciprocal
// position, both division directions against an integer agree.
func IntDiv(k int, f Frac) (Frac, error) {
	an, err := f.improperNum()
	if err != nil {
		return Frac{}, err
	}
	if an == 0 {
		return Frac{}, ErrZeroDivisor
	}
	if MulOverflows(k, f.den) {
		return Frac{}, ErrOverflow
	}
	return Frac{num: k * f.den, den: an}, nil
}

// Compound assignment stages the binary result and commits it only on
// success, so a failing operation leaves the receiver untouched.

// AddAssign adds other into f.
func (f *Frac) AddAssign(other Frac) error {
	v, err := f.Add(other)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// SubAssign subtracts other from f.
func (f *Frac) SubAssign(other Frac) error {
	v, err := f.Sub(other)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MulAssign multiplies f by other.
func (f *Frac) MulAssign(other Frac) error {
	v, err := f.Mul(other)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// DivAssign divides f by other.
func (f *Frac) DivAssign(other Frac) error {
	v, err := f.Div(other)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// AddAssignInt adds the integer k into f.
func (f *Frac) AddAssignInt(k int) error {
	v, err := f.AddInt(k)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// SubAssignInt subtracts the integer k from f.
func (f *Frac) SubAssignInt(k int) error {
	v, err := f.SubInt(k)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MulAssignInt multiplies f by the integer k.
func (f *Frac) MulAssignInt(k int) error {
	v, err := f.MulInt(k)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// DivAssignInt keeps DivInt's reciprocal contract. Both fields are staged
// before assignment, so the denominator is never read back after the
// numerator has been overwritten.
func (f *Frac) DivAssignInt(k int) error {
	v, err := f.DivInt(k)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// AddAssignFloat32 converts x and delegates to AddAssign.
func (f *Frac) AddAssignFloat32(x float32) error {
	v, err := FromFloat32(x)
	if err != nil {
		return err
	}
	return f.AddAssign(v)
}

// SubAssignFloat32 converts x and delegates to SubAssign.
func (f *Frac) SubAssignFloat32(x float32) error {
	v, err := FromFloat32(x)
	if err != nil {
		return err
	}
	return f.SubAssign(v)
}

// MulAssignFloat32 converts x and delegates to MulAssign.
func (f *Frac) MulAssignFloat32(x float32) error {
	v, err := FromFloat32(x)
	if err != nil {
		return err
	}
	return f.MulAssign(v)
}

// DivAssignFloat32 converts x and delegates to DivAssign.
func (f *Frac) DivAssignFloat32(x float32) error {
	v, err := FromFloat32(x)
	if err != nil {
		return err
	}
	return f.DivAssign(v)
}

// AddAssignString parses s and delegates to AddAssign.
func (f *Frac) AddAssignString(s string) error {
	v, err := Parse(s)
	if err != nil {
		return err
	}
	return f.AddAssign(v)
}

// SubAssignString parses s and delegates to SubAssign.
func (f *Frac) SubAssignString(s string) error {
	v, err := Parse(s)
	if err != nil {
		return err
	}
	return f.SubAssign(v)
}

// MulAssignString parses s and delegates to MulAssign.
func (f *Frac) MulAssignString(s string) error {
	v, err := Parse(s)
	if err != nil {
		return err
	}
	return f.MulAssign(v)
}

// DivAssignString parses s and delegates to DivAssign.
func (f *Frac) DivAssignString(s string) error {
	v, err := Parse(s)
	if err != nil {
		return err
	}
	return f.DivAssign(v)
}

// step adjusts the value of f by delta (+1 or -1). A mixed receiver is
// carried through the improper form and re-split into mixed afterwards; a
// receiver without a whole part adjusts the numerator directly, changing
// the value by delta/den rather than delta. That asymmetry is inherited
// contract.
func (f *Frac) step(delta int) error {
	if f.whole != 0 {
		n, err := f.improperNum()
		if err != nil {
			return err
		}
		if AddOverflows(n, delta) {
			return ErrOverflow
		}
		n += delta
		w := n / f.den
		n %= f.den
		d := f.den
		if d < 0 {
			n = -n
			d = -d
		}
		f.whole, f.num, f.den = w, n, d
		return nil
	}
	if AddOverflows(f.num, delta) {
		return ErrOverflow
	}
	f.num += delta
	return nil
}

// Inc adds one to the value in place, as the prefix form does.
func (f *Frac) Inc() error { return f.step(1) }

// Dec subtracts one from the value in place, as the prefix form does.
func (f *Frac) Dec() error { return f.step(-1) }

// PostInc increments f and returns the value it held before the change.
func (f *Frac) PostInc() (Frac, error) {
	prev := *f
	if err := f.step(1); err != nil {
		return Frac{}, err
	}
	return prev, nil
}

// PostDec decrements f and returns the value it held before the change.
func (f *Frac) PostDec() (Frac, error) {
	prev := *f
	if err := f.step(-1); err != nil {
		return Frac{}, err
	}
	return prev, nil
}

// Neg flips the sign of the whole part when present, otherwise of the
// numerator. The denominator is never negated on this path.
func (f Frac) Neg() Frac {
	if f.whole != 0 {
		return Frac{whole: -f.whole, num: f.num, den: f.den}
	}
	return Frac{num: -f.num, den: f.den}
}

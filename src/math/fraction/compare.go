package fraction

// Cmp orders f against other. Both operands are flattened to improper
// numerators and cross-multiplied, an*bd against bn*ad, so neither side
// needs to be in canonical form and no reduction happens. Cross products
// of values near the representable range can wrap; the comparison is exact
// only while both products stay in the signed int range.
func (f Frac) Cmp(other Frac) int {
	an := f.whole*f.den + f.num
	bn := other.whole*other.den + other.num
	lhs := an * other.den
	rhs := bn * f.den
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	}
	return 0
}

// Equal reports value equality under the cross-multiplication rule: 1/2,
// 2/4 and the mixed 0 1/2 all compare equal.
func (f Frac) Equal(other Frac) bool { return f.Cmp(other) == 0 }

// CmpFloat32 converts x and delegates to Cmp.
func (f Frac) CmpFloat32(x float32) (int, error) {
	v, err := FromFloat32(x)
	if err != nil {
		return 0, err
	}
	return f.Cmp(v), nil
}

// CmpString parses s and delegates to Cmp.
func (f Frac) CmpString(s string) (int, error) {
	v, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return f.Cmp(v), nil
}

// EqualFloat32 converts x and delegates to Equal.
func (f Frac) EqualFloat32(x float32) (bool, error) {
	v, err := FromFloat32(x)
	if err != nil {
		return false, err
	}
	return f.Equal(v), nil
}

// EqualString parses s and delegates to Equal.
func (f Frac) EqualString(s string) (bool, error) {
	v, err := Parse(s)
	if err != nil {
		return false, err
	}
	return f.Equal(v), nil
}

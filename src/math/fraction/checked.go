package fraction

const (
	intSize = 32 << (^uint(0) >> 63)

	maxInt = 1<<(intSize-1) - 1
	minInt = -1 << (intSize - 1)
)

// MulOverflows reports whether a*b would escape the signed int range. The
// zero cases short-circuit so there is never a false positive, and the
// minInt*-1 pair is handled up front: that single product is the one
// overflow the divide-back test cannot see.
func MulOverflows(a, b int) bool {
	if a == 0 || b == 0 {
		return false
	}
	if a == -1 && b == minInt {
		return true
	}
	if b == -1 && a == minInt {
		return true
	}
	r := a * b
	return r/b != a
}

// AddOverflows reports whether a+b would escape the signed int range,
// tested against maxInt-b and minInt-b so the add itself never wraps.
func AddOverflows(a, b int) bool {
	if b > 0 && a > maxInt-b {
		return true
	}
	if b < 0 && a < minInt-b {
		return true
	}
	return false
}

// SubOverflows is the symmetric form of AddOverflows for a-b.
func SubOverflows(a, b int) bool {
	if b < 0 && a > maxInt+b {
		return true
	}
	if b > 0 && a < minInt+b {
		return true
	}
	return false
}

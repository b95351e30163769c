package fraction

import "errors"

// The diagnostic strings below are part of the public contract: consumers
// may match them verbatim or branch with errors.Is against the sentinels.
var (
	// ErrZeroDivisor reports a denominator, divisor, or reciprocal that
	// would be zero.
	ErrZeroDivisor = errors.New("Division by zero not allowed. Denominator cannot be zero.")

	// ErrOverflow reports that a checked-arithmetic predicate fired on an
	// intermediate sum or product.
	ErrOverflow = errors.New("Integer overflow detected.")

	// ErrInvalidFormat reports input the fraction scanner rejected.
	ErrInvalidFormat = errors.New(`Improper format. Accepted fraction form: (ie "1/2" or "25" or  "3 1/2").`)

	// ErrStreamFormat reports a line the stream adapter rejected outright.
	ErrStreamFormat = errors.New("Invalid format: use decimal (0.5, 1.2) or string fractions (1/2, 2 1/2).")
)

package planar

import "errors"

// Sentinel errors returned by the planar core.
var (
	// ErrDivideByZero is returned when a Decimal division or a ScaledFloat
	// reciprocal is asked for a zero divisor. Every divisor inside this
	// package is derived from a nonzero world range, so hitting this error
	// indicates a precondition violation at the call site (for example a
	// zero-width world window reaching a coordinate mapping).
	ErrDivideByZero = errors.New("planar: division by zero")

	// ErrInvalidGesture is returned by Controller update/complete calls that
	// arrive with no matching active gesture. UI event races are expected;
	// the call is logged and becomes a no-op, committed state is untouched.
	ErrInvalidGesture = errors.New("planar: gesture event with no matching active gesture")

	// ErrNonPositiveFactor is returned when a zoom update carries a factor
	// that is zero or negative. Mapping a control value to a positive factor
	// is the caller's responsibility.
	ErrNonPositiveFactor = errors.New("planar: zoom factor must be positive")
)

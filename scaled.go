package planar

import "math"

// Double-precision decimal exponent limits. An exponent above maxDoubleExp10
// cannot be represented as a float64 at all; one below minDoubleExp10 rounds
// to zero even in the subnormal range.
const (
	maxDoubleExp10 = 308
	minDoubleExp10 = -323
)

// ScaledFloat represents Mantissa × 10^Exponent.
//
// It exists because every pixels-per-world-unit computation divides a
// screen-sized double by a world-sized quantity that may be astronomically
// small; doing that directly in double arithmetic silently produces Inf, 0
// or garbage. ScaledFloat keeps the order of magnitude in the integer
// exponent and defers the final double conversion to the last possible
// moment, reporting overflow and out-of-bound results explicitly through
// BoundedFloat instead of returning a wrong number.
//
// Invariant: a nonzero value has 1.0 <= |Mantissa| < 10.0; the zero value is
// {0, 0}.
type ScaledFloat struct {
	Mantissa float64
	Exponent int
}

// NewScaledFloat normalizes a finite float64 into ScaledFloat form.
func NewScaledFloat(v float64) ScaledFloat {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return ScaledFloat{}
	}
	exp := int(math.Floor(math.Log10(math.Abs(v))))
	mant := v / math.Pow(10, float64(exp))
	// Log10 rounding can leave the mantissa one digit off on either side.
	for math.Abs(mant) >= 10 {
		mant /= 10
		exp++
	}
	for math.Abs(mant) < 1 {
		mant *= 10
		exp--
	}
	return ScaledFloat{Mantissa: mant, Exponent: exp}
}

// ScaledFromParts wraps an already-normalized mantissa and exponent without
// re-normalizing. Use it only when the parts are known to satisfy the
// invariant, for example right after combining two normalized values.
func ScaledFromParts(mantissa float64, exponent int) ScaledFloat {
	if mantissa == 0 {
		return ScaledFloat{}
	}
	return ScaledFloat{Mantissa: mantissa, Exponent: exponent}
}

// MulScaled returns s × t. The product of two normalized mantissas lies in
// [1, 100), so at most one digit shift restores the invariant.
func (s ScaledFloat) MulScaled(t ScaledFloat) ScaledFloat {
	m := s.Mantissa * t.Mantissa
	if m == 0 {
		return ScaledFloat{}
	}
	e := s.Exponent + t.Exponent
	if m <= -10 || m >= 10 {
		m /= 10
		e++
	}
	return ScaledFromParts(m, e)
}

// DivScaled returns s / t, or ErrDivideByZero if t is zero. The quotient of
// two normalized mantissas lies in (0.1, 10), so at most one digit shift
// restores the invariant.
func (s ScaledFloat) DivScaled(t ScaledFloat) (ScaledFloat, error) {
	if t.Mantissa == 0 {
		return ScaledFloat{}, ErrDivideByZero
	}
	m := s.Mantissa / t.Mantissa
	if m == 0 {
		return ScaledFloat{}, nil
	}
	e := s.Exponent - t.Exponent
	if m > -1 && m < 1 {
		m *= 10
		e--
	}
	return ScaledFromParts(m, e), nil
}

// Reciprocal returns 1/s, or ErrDivideByZero if s is zero.
func (s ScaledFloat) Reciprocal() (ScaledFloat, error) {
	if s.Mantissa == 0 {
		return ScaledFloat{}, ErrDivideByZero
	}
	m := 1 / s.Mantissa // in (0.1, 1]
	e := -s.Exponent
	if m > -1 && m < 1 {
		m *= 10
		e--
	}
	return ScaledFromParts(m, e), nil
}

// AddFloat returns s + x. Only valid when the sum is expected to stay within
// double range; it is used for the base-offset portion of screen math where
// both terms are screen-sized.
func (s ScaledFloat) AddFloat(x float64) ScaledFloat {
	return NewScaledFloat(s.Float() + x)
}

// Float expands s to a plain float64 without any range check. Values beyond
// double range degrade to ±Inf or 0; use BoundedFloat when that matters.
func (s ScaledFloat) Float() float64 {
	return s.Mantissa * math.Pow(10, float64(s.Exponent))
}

// BoundedFloat converts s to a float64 constrained to [min, max].
//
// The second return value is false when the exponent overflows double range
// or the converted value falls outside the bound — a valid "not drawable"
// outcome, not an error. An exponent small enough that the value rounds to
// zero yields (0, true): underflow-to-zero is a legitimate result.
func (s ScaledFloat) BoundedFloat(min, max float64) (float64, bool) {
	if s.Mantissa == 0 {
		return 0, true
	}
	if s.Exponent > maxDoubleExp10 {
		return 0, false
	}
	if s.Exponent < minDoubleExp10 {
		return 0, true
	}
	v := s.Float()
	if math.IsInf(v, 0) || v < min || v > max {
		return 0, false
	}
	return v, true
}

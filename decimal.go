package planar

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/db47h/decimal"
)

// DefaultPrecision is the working precision, in decimal digits, used by the
// Decimal factories. It is sized so that a viewport zoomed hundreds of
// orders of magnitude past the unit scale still resolves distinct window
// edges with digits to spare.
const DefaultPrecision = 1200

// Decimal is an immutable arbitrary-precision decimal value.
//
// All operations are value-producing; no method mutates its receiver or its
// operands. Precision loss occurs only at the explicit Quantize and Float64
// call sites, every other operation preserves the full working precision of
// its operands. The zero value is the number 0 at DefaultPrecision.
//
// Precision is threaded through the factories (New, NewInt, Parse,
// NewWithPrec) rather than through any package-global setting; a result
// carries the larger precision of its operands.
type Decimal struct {
	v *decimal.Decimal
}

// New returns a Decimal holding the exact value of x at DefaultPrecision.
func New(x float64) Decimal {
	return NewWithPrec(x, DefaultPrecision)
}

// NewWithPrec returns a Decimal holding the exact value of x at the given
// precision in decimal digits.
func NewWithPrec(x float64, prec uint) Decimal {
	return Decimal{v: new(decimal.Decimal).SetPrec(prec).SetFloat64(x)}
}

// NewInt returns a Decimal holding the integer n at DefaultPrecision.
func NewInt(n int64) Decimal {
	return Decimal{v: new(decimal.Decimal).SetPrec(DefaultPrecision).SetInt64(n)}
}

// Parse converts a decimal string ("-12.375", "4e-320", ...) to a Decimal at
// DefaultPrecision.
func Parse(s string) (Decimal, error) {
	v, ok := new(decimal.Decimal).SetPrec(DefaultPrecision).SetString(s)
	if !ok {
		return Decimal{}, fmt.Errorf("planar: invalid decimal literal %q", s)
	}
	return Decimal{v: v}, nil
}

// MustParse is like Parse but panics on a malformed literal.
// Intended for constants and tests.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// big returns the backing value, substituting a canonical zero for the
// Decimal zero value so that methods work on uninitialized Decimals.
func (d Decimal) big() *decimal.Decimal {
	if d.v == nil {
		return new(decimal.Decimal).SetPrec(DefaultPrecision)
	}
	return d.v
}

func (d Decimal) prec() uint {
	if d.v == nil || d.v.Prec() == 0 {
		return DefaultPrecision
	}
	return d.v.Prec()
}

func resultPrec(a, b Decimal) uint {
	pa, pb := a.prec(), b.prec()
	if pb > pa {
		return pb
	}
	return pa
}

// Add returns d + e.
func (d Decimal) Add(e Decimal) Decimal {
	z := new(decimal.Decimal).SetPrec(resultPrec(d, e))
	return Decimal{v: z.Add(d.big(), e.big())}
}

// Sub returns d - e.
func (d Decimal) Sub(e Decimal) Decimal {
	z := new(decimal.Decimal).SetPrec(resultPrec(d, e))
	return Decimal{v: z.Sub(d.big(), e.big())}
}

// Mul returns d * e.
func (d Decimal) Mul(e Decimal) Decimal {
	z := new(decimal.Decimal).SetPrec(resultPrec(d, e))
	return Decimal{v: z.Mul(d.big(), e.big())}
}

// Div returns d / e, or ErrDivideByZero if e is zero.
func (d Decimal) Div(e Decimal) (Decimal, error) {
	eb := e.big()
	if eb.Sign() == 0 {
		return Decimal{}, ErrDivideByZero
	}
	z := new(decimal.Decimal).SetPrec(resultPrec(d, e))
	return Decimal{v: z.Quo(d.big(), eb)}, nil
}

// PowInt returns d raised to the integer power n, computed by binary
// exponentiation. For n < 0 the result is 1/d^(-n); a zero base with a
// negative exponent returns zero (the caller error is reported where the
// offending divisor originates).
func (d Decimal) PowInt(n int) Decimal {
	if n == 0 {
		return Decimal{v: new(decimal.Decimal).SetPrec(d.prec()).SetInt64(1)}
	}
	neg := n < 0
	if neg {
		n = -n
	}
	acc := new(decimal.Decimal).SetPrec(d.prec()).SetInt64(1)
	base := new(decimal.Decimal).SetPrec(d.prec()).Set(d.big())
	for n > 0 {
		if n&1 == 1 {
			acc.Mul(acc, base)
		}
		n >>= 1
		if n > 0 {
			base.Mul(base, base)
		}
	}
	if neg {
		if acc.Sign() == 0 {
			return Decimal{}
		}
		one := new(decimal.Decimal).SetPrec(d.prec()).SetInt64(1)
		acc = new(decimal.Decimal).SetPrec(d.prec()).Quo(one, acc)
	}
	return Decimal{v: acc}
}

// Floor returns the largest integer value not greater than d.
func (d Decimal) Floor() Decimal {
	x := d.big()
	i, _ := x.Int(nil)
	z := new(decimal.Decimal).SetPrec(d.prec()).SetInt(i)
	if x.Sign() < 0 && x.Cmp(z) != 0 {
		z.Sub(z, oneAt(d.prec()))
	}
	return Decimal{v: z}
}

// Ceil returns the smallest integer value not less than d.
func (d Decimal) Ceil() Decimal {
	x := d.big()
	i, _ := x.Int(nil)
	z := new(decimal.Decimal).SetPrec(d.prec()).SetInt(i)
	if x.Sign() > 0 && x.Cmp(z) != 0 {
		z.Add(z, oneAt(d.prec()))
	}
	return Decimal{v: z}
}

func oneAt(prec uint) *decimal.Decimal {
	return new(decimal.Decimal).SetPrec(prec).SetInt64(1)
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	return Decimal{v: new(decimal.Decimal).SetPrec(d.prec()).Abs(d.big())}
}

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	return Decimal{v: new(decimal.Decimal).SetPrec(d.prec()).Neg(d.big())}
}

// Cmp compares d and e and returns -1, 0 or +1.
func (d Decimal) Cmp(e Decimal) int { return d.big().Cmp(e.big()) }

// Sign returns -1, 0 or +1 depending on the sign of d.
func (d Decimal) Sign() int { return d.big().Sign() }

// Gte reports whether d >= e.
func (d Decimal) Gte(e Decimal) bool { return d.Cmp(e) >= 0 }

// Lte reports whether d <= e.
func (d Decimal) Lte(e Decimal) bool { return d.Cmp(e) <= 0 }

// IsWithinInterval reports whether min <= d <= max, inclusive on both ends.
func (d Decimal) IsWithinInterval(min, max Decimal) bool {
	return d.Gte(min) && d.Lte(max)
}

// Quantize rounds d half away from zero to the given number of decimal
// places. A negative places rounds to the nearest 10^(-places): places of -2
// rounds to the nearest hundred. This and Float64 are the only operations
// that lose precision.
func (d Decimal) Quantize(places int) Decimal {
	mult := NewWithPrec(10, d.prec()).PowInt(places)
	shifted := d.Mul(mult)
	half := NewWithPrec(0.5, d.prec())
	if shifted.Sign() < 0 {
		shifted = shifted.Sub(half)
	} else {
		shifted = shifted.Add(half)
	}
	i, _ := shifted.big().Int(nil)
	z := Decimal{v: new(decimal.Decimal).SetPrec(d.prec()).SetInt(i)}
	q, _ := z.Div(mult) // mult is a power of ten, never zero
	return q
}

// Float64 returns the nearest double-precision approximation of d.
// Values beyond double range come back as ±Inf, values below it as 0.
func (d Decimal) Float64() float64 {
	f, _ := d.big().Float64()
	return f
}

// ScaledFloat converts d to its overflow-safe mantissa×10^exponent form.
// The decimal exponent is read directly off the digit representation via
// MantExp, never through a float64, so magnitudes far outside double range
// survive the conversion intact.
func (d Decimal) ScaledFloat() ScaledFloat {
	x := d.big()
	if x.Sign() == 0 {
		return ScaledFloat{}
	}
	mant := new(decimal.Decimal)
	exp := x.MantExp(mant) // x = mant × 10^exp with 0.1 <= |mant| < 1
	mf, _ := mant.Float64()
	m, e := mf*10, exp-1
	if m <= -10 || m >= 10 {
		// mant can round up to exactly 1.0 in double precision
		m /= 10
		e++
	}
	return ScaledFromParts(m, e)
}

// Text renders d exactly, with the minimum number of digits that uniquely
// represents the value.
func (d Decimal) Text() string {
	return d.big().Text('f', -1)
}

// PaddedText renders d exactly and then appends non-significant pad runes
// until at least minPlaces characters follow the decimal point. The
// underlying value is untouched; this exists for stable-width display, not
// for rounding.
func (d Decimal) PaddedText(minPlaces int, pad rune) string {
	s := d.Text()
	frac := 0
	if i := strings.IndexByte(s, '.'); i >= 0 {
		frac = len(s) - i - 1
	} else if minPlaces > 0 {
		s += "."
	}
	if frac >= minPlaces {
		return s
	}
	var b strings.Builder
	b.WriteString(s)
	for ; frac < minPlaces; frac++ {
		b.WriteRune(pad)
	}
	return b.String()
}

// String implements fmt.Stringer.
func (d Decimal) String() string { return d.Text() }

// Int returns the truncated integer part of d.
func (d Decimal) Int() *big.Int {
	i, _ := d.big().Int(nil)
	return i
}

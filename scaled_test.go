package planar

import (
	"errors"
	"math"
	"testing"
)

func TestNewScaledFloatNormalization(t *testing.T) {
	tests := []struct {
		name string
		in   float64
	}{
		{"unit", 1},
		{"negative unit", -1},
		{"small", 0.00042},
		{"large", 98765.4321},
		{"negative large", -3.2e17},
		{"near double max", 1.7e308},
		{"tiny", 4e-300},
		{"just below ten", 9.999999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScaledFloat(tt.in)
			abs := math.Abs(s.Mantissa)
			if abs < 1 || abs >= 10 {
				t.Fatalf("NewScaledFloat(%g) mantissa %g out of [1,10)", tt.in, s.Mantissa)
			}
			got := s.Float()
			if rel := math.Abs(got-tt.in) / math.Abs(tt.in); rel > 1e-12 {
				t.Errorf("NewScaledFloat(%g).Float() = %g (relative error %g)", tt.in, got, rel)
			}
		})
	}
}

func TestNewScaledFloatZero(t *testing.T) {
	s := NewScaledFloat(0)
	if s.Mantissa != 0 || s.Exponent != 0 {
		t.Fatalf("NewScaledFloat(0) = %+v, want {0 0}", s)
	}
}

func TestScaledFloatMulScaled(t *testing.T) {
	tests := []struct {
		name         string
		a, b         ScaledFloat
		wantMantissa float64
		wantExponent int
	}{
		{"no carry", ScaledFromParts(2, 3), ScaledFromParts(3, 2), 6, 5},
		{"carry one digit", ScaledFromParts(5, 3), ScaledFromParts(4, 2), 2, 6},
		{"extreme exponents", ScaledFromParts(2, 300), ScaledFromParts(3, 290), 6, 590},
		{"negative mantissa carry", ScaledFromParts(-5, 0), ScaledFromParts(5, 0), -2.5, 1},
		{"zero", ScaledFromParts(2, 3), ScaledFloat{}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.MulScaled(tt.b)
			if got.Exponent != tt.wantExponent || math.Abs(got.Mantissa-tt.wantMantissa) > 1e-12 {
				t.Errorf("MulScaled = %+v, want {%g %d}", got, tt.wantMantissa, tt.wantExponent)
			}
			if got.Mantissa != 0 && (math.Abs(got.Mantissa) < 1 || math.Abs(got.Mantissa) >= 10) {
				t.Errorf("MulScaled mantissa %g broke normalization", got.Mantissa)
			}
		})
	}
}

func TestScaledFloatDivScaled(t *testing.T) {
	tests := []struct {
		name         string
		a, b         ScaledFloat
		wantMantissa float64
		wantExponent int
	}{
		{"exact", ScaledFromParts(8, 2), ScaledFromParts(8, 0), 1, 2},
		{"borrow one digit", ScaledFromParts(2, 2), ScaledFromParts(8, 0), 2.5, 1},
		{"extreme", ScaledFromParts(8, 2), ScaledFromParts(1, -300), 8, 302},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.DivScaled(tt.b)
			if err != nil {
				t.Fatalf("DivScaled error: %v", err)
			}
			if got.Exponent != tt.wantExponent || math.Abs(got.Mantissa-tt.wantMantissa) > 1e-12 {
				t.Errorf("DivScaled = %+v, want {%g %d}", got, tt.wantMantissa, tt.wantExponent)
			}
		})
	}

	if _, err := ScaledFromParts(1, 0).DivScaled(ScaledFloat{}); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("DivScaled by zero: got %v, want ErrDivideByZero", err)
	}
}

func TestScaledFloatReciprocal(t *testing.T) {
	tests := []struct {
		name         string
		in           ScaledFloat
		wantMantissa float64
		wantExponent int
	}{
		{"unit", ScaledFromParts(1, 0), 1, 0},
		{"borrows a digit", ScaledFromParts(4, 0), 2.5, -1},
		{"extreme exponent", ScaledFromParts(2, 300), 5, -301},
		{"negative", ScaledFromParts(-8, -5), -1.25, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Reciprocal()
			if err != nil {
				t.Fatalf("Reciprocal error: %v", err)
			}
			if got.Exponent != tt.wantExponent || math.Abs(got.Mantissa-tt.wantMantissa) > 1e-12 {
				t.Errorf("Reciprocal = %+v, want {%g %d}", got, tt.wantMantissa, tt.wantExponent)
			}
		})
	}

	if _, err := (ScaledFloat{}).Reciprocal(); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("Reciprocal of zero: got %v, want ErrDivideByZero", err)
	}
}

func TestScaledFloatBoundedFloat(t *testing.T) {
	tests := []struct {
		name    string
		in      ScaledFloat
		min     float64
		max     float64
		want    float64
		wantOK  bool
		comment string
	}{
		{"in range", ScaledFromParts(4, 2), -1e10, 1e10, 400, true, ""},
		{"zero", ScaledFloat{}, -1e10, 1e10, 0, true, ""},
		{"exponent overflow", ScaledFromParts(1, 400), -1e10, 1e10, 0, false, "overflow is not drawable"},
		{"underflow to zero", ScaledFromParts(1, -400), -1e10, 1e10, 0, true, "underflow is a valid zero"},
		{"outside bound", ScaledFromParts(2, 11), -1e10, 1e10, 0, false, "finite but off-screen"},
		{"negative outside bound", ScaledFromParts(-2, 11), -1e10, 1e10, 0, false, ""},
		{"at representability edge", ScaledFromParts(9.9, 308), -math.MaxFloat64, math.MaxFloat64, 0, false, "rounds to +Inf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.in.BoundedFloat(tt.min, tt.max)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("BoundedFloat(%+v) = (%g, %v), want (%g, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestScaledFloatAddFloat(t *testing.T) {
	got := ScaledFromParts(4, 2).AddFloat(25)
	if v := got.Float(); math.Abs(v-425) > 1e-9 {
		t.Errorf("AddFloat(400, 25) = %g, want 425", v)
	}
}

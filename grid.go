package planar

import "math"

const (
	// MinLineSeparation is the smallest on-screen spacing, in pixels, at
	// which a precision level is still legible.
	MinLineSeparation = 5.0

	// MaxPrecisionLevel and MinPrecisionLevel clamp the display precision.
	MaxPrecisionLevel = 1000
	MinPrecisionLevel = -1

	// activeLevels is how many precision levels are displayed at once.
	activeLevels = 3
)

// GridLine is one classified grid line along an axis.
type GridLine struct {
	// Position is the exact world coordinate of the line.
	Position Decimal

	// PrecisionLevel is the decimal precision level the line belongs to;
	// lines at level p sit on multiples of 10^(-p).
	PrecisionLevel int

	// Thickness ranks the line 1 (finest) to 3 (coarsest). It drives both
	// draw order and label selection.
	Thickness int

	// Labeled marks lines that carry a coordinate label.
	Labeled bool
}

// MaxGridPrecision picks the finest decimal precision level whose grid
// spacing is still at least MinLineSeparation pixels, clamped to
// [MinPrecisionLevel, MaxPrecisionLevel].
//
// Only the X axis feeds the decision so that both axes stay visually
// consistent regardless of aspect ratio. The level is read straight off the
// ScaledFloat exponent of the pixels-per-unit ÷ separation ratio, never off
// a double: a zoom deep enough to push that ratio past double range must
// still land on its true level, or the clamp would kick in hundreds of
// levels early and the per-level line count would no longer be bounded by
// the screen size.
func MaxGridPrecision(m CoordinateMapping) int {
	ratio, err := m.X.PixelsPerUnitScaled().DivScaled(NewScaledFloat(MinLineSeparation))
	if err != nil || ratio.Mantissa <= 0 {
		return MinPrecisionLevel
	}
	// 1 <= Mantissa < 10 makes the mantissa term 0, but deriving it keeps
	// the result right for denormalized inputs too.
	p := ratio.Exponent + int(math.Floor(math.Log10(ratio.Mantissa)))
	if p > MaxPrecisionLevel {
		p = MaxPrecisionLevel
	}
	if p < MinPrecisionLevel {
		p = MinPrecisionLevel
	}
	return p
}

// GridLinesForAxis generates the classified grid lines for one axis at the
// given maximum precision. Shared by the vertical (X) and horizontal (Y)
// line sets.
//
// At most activeLevels precision levels, max(0, maxPrecision-2) through
// maxPrecision, are generated. Index bounds are computed with Decimal floor
// and ceil — never native floats — so they stay correct at any zoom depth,
// and the per-level line count is bounded by ScreenRange/MinLineSeparation+2
// regardless of how deep the zoom goes.
//
// The finest (thinnest, most frequent) level is emitted first so a caller
// painting in slice order has thicker lines drawn over thinner intersecting
// ones.
func GridLinesForAxis(a AxisMapping, maxPrecision int) []GridLine {
	lines := []GridLine{}
	low := maxPrecision - (activeLevels - 1)
	if low < 0 {
		low = 0
	}
	one := NewInt(1)
	for p := maxPrecision; p >= low; p-- {
		multiplier := NewInt(10).PowInt(p)
		start := a.MinWorld.Mul(multiplier).Floor()
		end := a.MaxWorld.Mul(multiplier).Ceil()
		thickness := maxPrecision - p + 1
		if thickness > activeLevels {
			thickness = activeLevels
		}
		for idx := start; idx.Lte(end); idx = idx.Add(one) {
			position, _ := idx.Div(multiplier) // powers of ten are never zero
			if !position.IsWithinInterval(a.MinWorld, a.MaxWorld) {
				continue
			}
			lines = append(lines, GridLine{
				Position:       position,
				PrecisionLevel: p,
				Thickness:      thickness,
				Labeled:        thickness > 1,
			})
		}
	}
	return lines
}

// GridLines generates the vertical and horizontal grid line sets for a full
// mapping, both classified against the shared X-axis display precision.
func GridLines(m CoordinateMapping) (vertical, horizontal []GridLine) {
	maxPrecision := MaxGridPrecision(m)
	return GridLinesForAxis(m.X, maxPrecision), GridLinesForAxis(m.Y, maxPrecision)
}

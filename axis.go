package planar

// offscreenBound caps the screen positions WorldToScreen will produce. Any
// world position whose projection falls outside ±1e10 pixels is reported as
// 0, which callers treat as "far off-screen", never as a crash.
const offscreenBound = 1e10

// AxisMapping maps one world axis onto one screen axis.
//
// It is a pure function of its fields: mappings are recomputed, never
// patched, whenever the viewport size, world window or extension changes,
// so identity and sharing are irrelevant to correctness.
type AxisMapping struct {
	// MinWorld and MaxWorld bound the visible world range; MinWorld < MaxWorld.
	MinWorld, MaxWorld Decimal

	// ScreenBase is the screen coordinate MinWorld maps to; ScreenRange is
	// the pixel span of the axis.
	ScreenBase, ScreenRange float64

	// Direction is +1 when world and screen coordinates grow the same way,
	// -1 when they oppose (the screen Y axis).
	Direction int

	// Extension is the pre-rendered margin on each edge, as a fraction of
	// the window range.
	Extension float64

	windowRange Decimal
}

// NewAxisMapping builds an axis mapping. The world range must be nonempty;
// a zero-width range is a caller error that surfaces as ErrDivideByZero
// from the operations that need to divide by it.
func NewAxisMapping(minWorld, maxWorld Decimal, screenBase, screenRange float64, direction int, extension float64) AxisMapping {
	return AxisMapping{
		MinWorld:    minWorld,
		MaxWorld:    maxWorld,
		ScreenBase:  screenBase,
		ScreenRange: screenRange,
		Direction:   direction,
		Extension:   extension,
		windowRange: maxWorld.Sub(minWorld),
	}
}

// WindowRange returns MaxWorld - MinWorld.
func (a AxisMapping) WindowRange() Decimal {
	if a.windowRange.v == nil {
		return a.MaxWorld.Sub(a.MinWorld)
	}
	return a.windowRange
}

// ScreenToWorld converts a screen coordinate to a world coordinate.
//
// The screen-space ratio is formed in plain double precision (screen
// coordinates never need more), but the final combination runs in Decimal
// arithmetic so the world result carries full precision at any zoom depth.
func (a AxisMapping) ScreenToWorld(screenPos float64) Decimal {
	ratio := (screenPos - a.ScreenBase) / a.ScreenRange
	if a.Direction < 0 {
		ratio = -ratio
	}
	return a.MinWorld.Add(a.WindowRange().Mul(New(ratio)))
}

// WorldToScreen converts a world coordinate to a screen coordinate.
//
// The pixel offset is computed entirely in ScaledFloat form — exponents and
// mantissas combined directly, never through a plain double division — so
// the result stays meaningful when the window range is hundreds of orders
// of magnitude away from the screen size. Positions whose projection is not
// representable collapse to ScreenBase, i.e. "off representable range".
func (a AxisMapping) WorldToScreen(worldPos Decimal) float64 {
	offset := worldPos.Sub(a.MinWorld).ScaledFloat()
	pixels := a.PixelsPerUnitScaled().MulScaled(offset)
	v, ok := pixels.BoundedFloat(-offscreenBound, offscreenBound)
	if !ok {
		v = 0
	}
	return a.ScreenBase + float64(a.Direction)*v
}

// PixelsPerUnitScaled returns screen-range ÷ window-range in overflow-safe
// form, valid at any zoom depth.
func (a AxisMapping) PixelsPerUnitScaled() ScaledFloat {
	r, err := NewScaledFloat(a.ScreenRange).DivScaled(a.WindowRange().ScaledFloat())
	if err != nil {
		// Zero-width window: a precondition violation upstream. Fatal to
		// this operation only; report and yield an unusable scale.
		Logger().Error("planar: pixels-per-unit over zero-width window", "err", err)
		return ScaledFloat{}
	}
	return r
}

// PixelsPerUnit is the convenience double form of PixelsPerUnitScaled for
// contexts that tolerate rounding; it degrades to 0 or +Inf outside double
// range.
func (a AxisMapping) PixelsPerUnit() float64 {
	return a.PixelsPerUnitScaled().Float()
}

// ExtendedRange widens the world range by Extension × WindowRange on each
// edge. Geometry computed for the extended range lets small pans and zooms
// be shown with cheap visual transforms before an exact recomputation.
func (a AxisMapping) ExtendedRange() (min, max Decimal) {
	pad := a.WindowRange().Mul(New(a.Extension))
	return a.MinWorld.Sub(pad), a.MaxWorld.Add(pad)
}

package planar

// WorldWindow is the rectangular world-coordinate region currently mapped
// onto the viewport. A committed window always satisfies
// BottomLeft.X < TopRight.X and BottomLeft.Y < TopRight.Y; handing a
// zero-width or inverted window to a mapping is a caller error.
//
// Windows are replaced wholesale on every committed pan, zoom or drag end;
// nothing in this package mutates one in place.
type WorldWindow struct {
	BottomLeft, TopRight Point
}

// NewWorldWindow builds a window from its bottom-left and top-right corners.
func NewWorldWindow(bottomLeft, topRight Point) WorldWindow {
	return WorldWindow{BottomLeft: bottomLeft, TopRight: topRight}
}

// WindowFromFloats builds a window from double-precision corner coordinates.
func WindowFromFloats(minX, minY, maxX, maxY float64) WorldWindow {
	return WorldWindow{
		BottomLeft: PtFloat(minX, minY),
		TopRight:   PtFloat(maxX, maxY),
	}
}

// Width returns the horizontal extent of the window.
func (w WorldWindow) Width() Decimal {
	return w.TopRight.X.Sub(w.BottomLeft.X)
}

// Height returns the vertical extent of the window.
func (w WorldWindow) Height() Decimal {
	return w.TopRight.Y.Sub(w.BottomLeft.Y)
}

// Center returns the midpoint of the window.
func (w WorldWindow) Center() Point {
	two := NewInt(2)
	cx, _ := w.BottomLeft.X.Add(w.TopRight.X).Div(two)
	cy, _ := w.BottomLeft.Y.Add(w.TopRight.Y).Div(two)
	return Point{X: cx, Y: cy}
}

// Translate returns the window shifted by (dx, dy) in world units.
func (w WorldWindow) Translate(dx, dy Decimal) WorldWindow {
	return WorldWindow{
		BottomLeft: w.BottomLeft.Translate(dx, dy),
		TopRight:   w.TopRight.Translate(dx, dy),
	}
}

// ZoomAround returns the window scaled around the given world anchor by a
// positive factor: a factor of 2 halves the window extent (zooms in), 0.5
// doubles it. Each corner moves to anchor + (corner-anchor)/factor.
func (w WorldWindow) ZoomAround(anchor Point, factor Decimal) (WorldWindow, error) {
	scale := func(v, a Decimal) (Decimal, error) {
		d, err := v.Sub(a).Div(factor)
		if err != nil {
			return Decimal{}, err
		}
		return a.Add(d), nil
	}
	blx, err := scale(w.BottomLeft.X, anchor.X)
	if err != nil {
		return WorldWindow{}, err
	}
	bly, err := scale(w.BottomLeft.Y, anchor.Y)
	if err != nil {
		return WorldWindow{}, err
	}
	trx, err := scale(w.TopRight.X, anchor.X)
	if err != nil {
		return WorldWindow{}, err
	}
	try, err := scale(w.TopRight.Y, anchor.Y)
	if err != nil {
		return WorldWindow{}, err
	}
	return WorldWindow{BottomLeft: Pt(blx, bly), TopRight: Pt(trx, try)}, nil
}

// Quantize rounds all four window boundaries to the given number of decimal
// places.
func (w WorldWindow) Quantize(places int) WorldWindow {
	return WorldWindow{
		BottomLeft: w.BottomLeft.Quantize(places),
		TopRight:   w.TopRight.Quantize(places),
	}
}

// Eq reports whether two windows hold the same corner values.
func (w WorldWindow) Eq(v WorldWindow) bool {
	return w.BottomLeft.Eq(v.BottomLeft) && w.TopRight.Eq(v.TopRight)
}

// ScreenViewport is the pixel size of the rendering surface.
type ScreenViewport struct {
	Width, Height float64
}

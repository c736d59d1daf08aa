package planar

// CoordinateMapping is the bidirectional world↔screen mapping for a full
// viewport: an X axis mapping with direction +1 anchored at screen 0, and a
// Y axis mapping with direction -1 anchored at the viewport height, because
// world Y grows upward while screen Y grows downward.
type CoordinateMapping struct {
	X, Y      AxisMapping
	Viewport  ScreenViewport
	Window    WorldWindow
	Extension float64
}

// NewCoordinateMapping derives the mapping for a viewport, world window and
// pre-rendered margin. The mapping is a pure value; recompute it whenever
// any of the three inputs changes.
func NewCoordinateMapping(vp ScreenViewport, w WorldWindow, extension float64) CoordinateMapping {
	return CoordinateMapping{
		X:         NewAxisMapping(w.BottomLeft.X, w.TopRight.X, 0, vp.Width, +1, extension),
		Y:         NewAxisMapping(w.BottomLeft.Y, w.TopRight.Y, vp.Height, vp.Height, -1, extension),
		Viewport:  vp,
		Window:    w,
		Extension: extension,
	}
}

// ScreenToWorld converts a screen pixel position to a world point.
func (m CoordinateMapping) ScreenToWorld(screenX, screenY float64) Point {
	return Point{
		X: m.X.ScreenToWorld(screenX),
		Y: m.Y.ScreenToWorld(screenY),
	}
}

// WorldToScreen converts a world point to a screen pixel position.
// Unrepresentable projections collapse to the axis base, which callers
// treat as far off-screen.
func (m CoordinateMapping) WorldToScreen(p Point) (screenX, screenY float64) {
	return m.X.WorldToScreen(p.X), m.Y.WorldToScreen(p.Y)
}

// PixelsPerUnit returns the X-axis scale as a plain double. The X axis is
// used for both axes' display decisions so the grid stays visually
// consistent regardless of aspect ratio.
func (m CoordinateMapping) PixelsPerUnit() float64 {
	return m.X.PixelsPerUnit()
}

// ExtendedWindow enlarges the world window by the mapping's extension on
// every edge.
func (m CoordinateMapping) ExtendedWindow() WorldWindow {
	minX, maxX := m.X.ExtendedRange()
	minY, maxY := m.Y.ExtendedRange()
	return WorldWindow{
		BottomLeft: Pt(minX, minY),
		TopRight:   Pt(maxX, maxY),
	}
}

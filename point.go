package planar

// Point is a position on the world plane, held at full precision.
type Point struct {
	X, Y Decimal
}

// Pt is a convenience function to create a Point.
func Pt(x, y Decimal) Point {
	return Point{X: x, Y: y}
}

// PtFloat creates a Point from double-precision coordinates.
func PtFloat(x, y float64) Point {
	return Point{X: New(x), Y: New(y)}
}

// Add returns the componentwise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X.Add(q.X), Y: p.Y.Add(q.Y)}
}

// Sub returns the componentwise difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X.Sub(q.X), Y: p.Y.Sub(q.Y)}
}

// Translate returns the point shifted by (dx, dy).
func (p Point) Translate(dx, dy Decimal) Point {
	return Point{X: p.X.Add(dx), Y: p.Y.Add(dy)}
}

// Quantize rounds both coordinates to the given number of decimal places.
func (p Point) Quantize(places int) Point {
	return Point{X: p.X.Quantize(places), Y: p.Y.Quantize(places)}
}

// Eq reports whether two points hold the same value.
func (p Point) Eq(q Point) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Package planar lets an interactive surface explore the real-number plane
// at arbitrary zoom depth — from a whole-number overview down to digits 300+
// places past the decimal point — without overflow, underflow or visible
// jitter.
//
// # Overview
//
// planar keeps world coordinates exact and unbounded while driving a
// bounded-precision pixel surface. Four layers build on each other:
//
//   - Decimal: immutable arbitrary-precision decimal arithmetic.
//   - ScaledFloat: an overflow-safe mantissa×10^exponent magnitude used
//     wherever a ratio of extreme magnitudes must approach double precision.
//   - CoordinateMapping: the bidirectional world↔screen mapping per axis.
//   - GridLines / Controller: the displayed precision levels and the
//     pan/zoom/drag gesture state machine with its incremental-commit
//     policy.
//
// # Quick Start
//
//	vp := planar.ScreenViewport{Width: 800, Height: 600}
//	c := planar.NewController(vp)
//
//	// Feed a drag gesture from the UI event loop:
//	c.StartDrag(planar.DragWindow)
//	c.UpdateDrag(planar.DragWindow, 120, 0) // totals since start
//	c.CompleteDrag(planar.DragWindow, 125, 0)
//
//	// Read geometry back out:
//	vertical, horizontal := c.Grid()
//	window := c.Window()
//
// # Interaction Model
//
// While a gesture is in flight the controller publishes two things on every
// update: an exact preview window (a pure function of the gesture baseline
// and the total delta) and a cheap PreviewTransform covering only the
// uncommitted remainder. When the remainder exceeds a threshold the
// controller folds it into the committed state through the exact Decimal
// pipeline and the transform resets to identity, bounding how far the cheap
// visual path can drift from true geometry.
//
// # Coordinate System
//
// World coordinates grow rightward and upward; screen coordinates grow
// rightward and downward with the origin at the top-left. The Y axis
// mapping carries direction -1 to reconcile the two.
package planar

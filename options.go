package planar

// Defaults for a freshly created Controller. The initial window and point
// are configuration constants, not persisted state.
const (
	// DefaultExtension is the pre-rendered margin beyond each visible edge,
	// as a fraction of the window range per axis.
	DefaultExtension = 0.5

	// DefaultDragCommitFraction is the share of the pre-rendered margin a
	// drag's uncommitted remainder may cover before an incremental commit
	// re-runs the exact geometry.
	DefaultDragCommitFraction = 0.5

	// DefaultZoomCommitThreshold is the relative deviation from factor 1.0
	// a zoom's uncommitted remainder may reach before an incremental
	// commit. Tuned empirically for perceived smoothness; adjust per
	// display technology.
	DefaultZoomCommitThreshold = 0.05
)

// ControllerOption configures a Controller during creation.
//
// Example:
//
//	// Default [-5,5]×[-5,5] window, point at the origin:
//	c := planar.NewController(planar.ScreenViewport{Width: 800, Height: 600})
//
//	// Start over a custom region with a tighter commit policy:
//	c := planar.NewController(vp,
//	    planar.WithWindow(planar.WindowFromFloats(-4, -3, 4, 3)),
//	    planar.WithZoomCommitThreshold(0.02),
//	)
type ControllerOption func(*controllerOptions)

type controllerOptions struct {
	window              WorldWindow
	point               Point
	extension           float64
	dragCommitFraction  float64
	zoomCommitThreshold float64
}

func defaultControllerOptions() controllerOptions {
	return controllerOptions{
		window:              WindowFromFloats(-5, -5, 5, 5),
		point:               PtFloat(0, 0),
		extension:           DefaultExtension,
		dragCommitFraction:  DefaultDragCommitFraction,
		zoomCommitThreshold: DefaultZoomCommitThreshold,
	}
}

// WithWindow sets the initial committed world window.
func WithWindow(w WorldWindow) ControllerOption {
	return func(o *controllerOptions) {
		o.window = w
	}
}

// WithMarkedPoint sets the initial committed marked point.
func WithMarkedPoint(p Point) ControllerOption {
	return func(o *controllerOptions) {
		o.point = p
	}
}

// WithExtension sets the pre-rendered margin fraction per axis.
func WithExtension(extension float64) ControllerOption {
	return func(o *controllerOptions) {
		if extension >= 0 {
			o.extension = extension
		}
	}
}

// WithDragCommitFraction sets the fraction of the pre-rendered margin a
// drag may drift from exact geometry before an incremental commit.
func WithDragCommitFraction(fraction float64) ControllerOption {
	return func(o *controllerOptions) {
		if fraction > 0 {
			o.dragCommitFraction = fraction
		}
	}
}

// WithZoomCommitThreshold sets the relative factor deviation a zoom may
// drift from exact geometry before an incremental commit.
func WithZoomCommitThreshold(threshold float64) ControllerOption {
	return func(o *controllerOptions) {
		if threshold > 0 {
			o.zoomCommitThreshold = threshold
		}
	}
}

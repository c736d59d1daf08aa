package render

import (
	"image/color"
	"testing"

	"github.com/planarkit/planar"
)

func testController() *planar.Controller {
	return planar.NewController(
		planar.ScreenViewport{Width: 800, Height: 600},
		planar.WithWindow(planar.WindowFromFloats(-4, -3, 4, 3)),
	)
}

func TestSnapshotDimensions(t *testing.T) {
	img := Snapshot(testController())
	if got := img.Bounds(); got.Dx() != 800 || got.Dy() != 600 {
		t.Fatalf("snapshot bounds = %v, want 800×600", got)
	}
}

func TestSnapshotDrawsGridAndPoint(t *testing.T) {
	bg := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	img := Snapshot(testController(), WithBackground(bg), WithLabels(false))

	// The x=0 grid line is a thickness-2 line through screen x=400.
	if got := img.RGBAAt(400, 10); got == bg {
		t.Errorf("pixel on the x=0 grid line is background-colored: %v", got)
	}
	// The y=0 line runs through screen y=300.
	if got := img.RGBAAt(10, 300); got == bg {
		t.Errorf("pixel on the y=0 grid line is background-colored: %v", got)
	}
	// The marked point sits at (400, 300).
	want := defaultOptions().point
	if got := img.RGBAAt(400, 300); got != want {
		t.Errorf("marked point pixel = %v, want %v", got, want)
	}
	// Space between grid lines stays background: the finest spacing is
	// 0.1 world units = 10 px, so (405, 155) is between lines both ways.
	if got := img.RGBAAt(405, 155); got != bg {
		t.Errorf("pixel between grid lines = %v, want background", got)
	}
}

func TestImageEmptyViewport(t *testing.T) {
	m := planar.NewCoordinateMapping(planar.ScreenViewport{}, planar.WindowFromFloats(-1, -1, 1, 1), 0)
	img := Image(m, nil, nil, planar.PtFloat(0, 0))
	if !img.Bounds().Empty() {
		t.Errorf("empty viewport produced bounds %v", img.Bounds())
	}
}

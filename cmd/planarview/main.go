// Command planarview is an interactive viewer for the planar core: an
// ebiten window whose mouse gestures drive the pan/zoom/drag state machine.
//
//	left drag   pan the world window
//	right drag  move the marked point
//	wheel       zoom around the cursor
//	R           recenter the marked point on the view center
package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/planarkit/planar"
	"github.com/planarkit/planar/render"
)

const (
	screenWidth  = 800
	screenHeight = 600

	// wheelStep is the zoom factor applied per wheel notch.
	wheelStep = 1.1

	// wheelSettleTicks is how many update ticks without wheel input end the
	// zoom gesture.
	wheelSettleTicks = 15
)

type game struct {
	ctrl  *planar.Controller
	frame *ebiten.Image

	dragging bool
	dragKind planar.DragKind
	dragBtn  ebiten.MouseButton
	startX   int
	startY   int

	zooming     bool
	wheelFactor float64
	wheelIdle   int

	rendered planar.WorldWindow
	dirty    bool
}

func newGame() *game {
	return &game{
		ctrl:  planar.NewController(planar.ScreenViewport{Width: screenWidth, Height: screenHeight}),
		dirty: true,
	}
}

func (g *game) Update() error {
	cx, cy := ebiten.CursorPosition()

	if !g.dragging {
		switch {
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
			g.beginDrag(planar.DragWindow, ebiten.MouseButtonLeft, cx, cy)
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
			g.beginDrag(planar.DragPoint, ebiten.MouseButtonRight, cx, cy)
		}
	} else {
		dx, dy := float64(cx-g.startX), float64(cy-g.startY)
		if ebiten.IsMouseButtonPressed(g.dragBtn) {
			g.ctrl.UpdateDrag(g.dragKind, dx, dy)
		} else {
			g.ctrl.CompleteDrag(g.dragKind, dx, dy)
			g.dragging = false
		}
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		if !g.zooming {
			g.ctrl.StartZoom(planar.ZoomWheel, float64(cx), float64(cy))
			g.zooming = true
			g.wheelFactor = 1
		}
		g.wheelFactor *= math.Pow(wheelStep, wy)
		g.ctrl.UpdateZoom(planar.ZoomWheel, g.wheelFactor)
		g.wheelIdle = 0
	} else if g.zooming {
		g.wheelIdle++
		if g.wheelIdle > wheelSettleTicks {
			g.ctrl.CompleteZoom(planar.ZoomWheel, g.wheelFactor)
			g.zooming = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Recenter(g.ctrl.Window().Center())
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	// Exact frames are re-rendered only when the committed window moves:
	// at gesture start, incremental commits, and completion. Everything in
	// between reuses the last frame under the cheap preview transform.
	if g.frame == nil || g.dirty || !g.ctrl.Window().Eq(g.rendered) {
		g.frame = ebiten.NewImageFromImage(render.Snapshot(g.ctrl))
		g.rendered = g.ctrl.Window()
		g.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	if tr := g.ctrl.PreviewTransform(); !tr.IsIdentity() {
		op.GeoM.Translate(-tr.PivotX, -tr.PivotY)
		op.GeoM.Scale(tr.Scale, tr.Scale)
		op.GeoM.Translate(tr.PivotX+tr.TranslateX, tr.PivotY+tr.TranslateY)
	}
	screen.DrawImage(g.frame, op)

	center := g.ctrl.Window().Center()
	digits := g.ctrl.DisplayPrecision() + 3
	hud := fmt.Sprintf("precision %d | %.4g px/unit | center (%s, %s)",
		g.ctrl.DisplayPrecision(),
		g.ctrl.PixelsPerUnit(),
		center.X.Quantize(digits).Text(),
		center.Y.Quantize(digits).Text(),
	)
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func (g *game) beginDrag(kind planar.DragKind, btn ebiten.MouseButton, cx, cy int) {
	g.ctrl.StartDrag(kind)
	g.dragging = true
	g.dragKind = kind
	g.dragBtn = btn
	g.startX, g.startY = cx, cy
}

func main() {
	planar.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ebiten.SetWindowTitle("planarview")
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(newGame()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

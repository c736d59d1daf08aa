package planar

import "math"

// DragKind distinguishes what a drag gesture moves.
type DragKind int

const (
	// DragWindow pans the world window.
	DragWindow DragKind = iota
	// DragPoint moves the marked point.
	DragPoint
)

// ZoomSource identifies the input device driving a zoom gesture. A zoom
// event is matched against the active gesture's source; a mismatch is a UI
// race and is dropped.
type ZoomSource int

const (
	ZoomWheel ZoomSource = iota
	ZoomPinch
	ZoomSlider
)

type gesturePhase int

const (
	phaseIdle gesturePhase = iota
	phaseDragging
	phaseZooming
)

// PreviewTransform is the cheap visual-only adjustment a rendering surface
// should apply to its last exact frame while a gesture is in flight. It
// describes only the uncommitted remainder of the gesture: right after a
// commit (incremental or final) it is the identity.
type PreviewTransform struct {
	// TranslateX and TranslateY shift the frame, in pixels.
	TranslateX, TranslateY float64

	// Scale magnifies the frame around the pivot; 1 means no scaling.
	Scale          float64
	PivotX, PivotY float64
}

func identityTransform() PreviewTransform {
	return PreviewTransform{Scale: 1}
}

// IsIdentity reports whether applying t would change nothing.
func (t PreviewTransform) IsIdentity() bool {
	return t.TranslateX == 0 && t.TranslateY == 0 && t.Scale == 1
}

// Controller owns one viewport's interaction state: the committed world
// window and marked point, the derived coordinate mapping, and the in-flight
// gesture with its incremental-commit policy.
//
// The cheap path (UpdateDrag/UpdateZoom between commits) touches no Decimal
// arithmetic beyond the preview window it must publish; the exact path —
// full Decimal recomputation and mapping regeneration — runs only at gesture
// start, at commit thresholds, and at completion.
//
// A Controller is single-threaded by design: it is fed from one UI event
// loop and shares no mutable state with other controllers.
type Controller struct {
	viewport            ScreenViewport
	extension           float64
	dragCommitFraction  float64
	zoomCommitThreshold float64

	window  WorldWindow
	point   Point
	mapping CoordinateMapping

	phase      gesturePhase
	dragKind   DragKind
	zoomSource ZoomSource

	baselineWindow  WorldWindow
	baselinePoint   Point
	baselineMapping CoordinateMapping

	// Drag bookkeeping, all in screen pixels relative to the gesture start.
	appliedDX, appliedDY float64 // already committed exactly
	lastDX, lastDY       float64 // last requested totals

	// Zoom bookkeeping, factors relative to the gesture baseline.
	appliedFactor float64
	lastFactor    float64
	zoomCenterX   float64
	zoomCenterY   float64
	zoomAnchor    Point // world point under the zoom center at baseline

	previewWindow WorldWindow
	previewPoint  Point
	transform     PreviewTransform
}

// NewController creates a controller for a viewport. Without options the
// committed state is a [-5,5]×[-5,5] window with the marked point at the
// origin.
func NewController(vp ScreenViewport, opts ...ControllerOption) *Controller {
	o := defaultControllerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Controller{
		viewport:            vp,
		extension:           o.extension,
		dragCommitFraction:  o.dragCommitFraction,
		zoomCommitThreshold: o.zoomCommitThreshold,
		window:              o.window,
		point:               o.point,
		transform:           identityTransform(),
	}
	c.mapping = NewCoordinateMapping(vp, c.window, c.extension)
	c.previewWindow = c.window
	c.previewPoint = c.point
	return c
}

// Window returns the committed world window.
func (c *Controller) Window() WorldWindow { return c.window }

// MarkedPoint returns the committed marked point.
func (c *Controller) MarkedPoint() Point { return c.point }

// Mapping returns the coordinate mapping of the committed window.
func (c *Controller) Mapping() CoordinateMapping { return c.mapping }

// Viewport returns the screen viewport.
func (c *Controller) Viewport() ScreenViewport { return c.viewport }

// SetViewport resizes the screen surface. An active gesture is
// force-completed first so its deltas are interpreted against a single
// viewport size.
func (c *Controller) SetViewport(vp ScreenViewport) {
	c.forceComplete()
	c.viewport = vp
	c.setWindow(c.window)
}

// Active reports whether a gesture is in flight.
func (c *Controller) Active() bool { return c.phase != phaseIdle }

// PreviewWindow returns the world window to display right now: the gesture
// preview while one is active, the committed window otherwise.
func (c *Controller) PreviewWindow() WorldWindow {
	if c.phase == phaseIdle {
		return c.window
	}
	return c.previewWindow
}

// PreviewPoint returns the marked point to display right now.
func (c *Controller) PreviewPoint() Point {
	if c.phase == phaseIdle {
		return c.point
	}
	return c.previewPoint
}

// PreviewTransform returns the visual-only transform covering the
// uncommitted remainder of the active gesture; identity when idle or right
// after a commit.
func (c *Controller) PreviewTransform() PreviewTransform { return c.transform }

// DisplayPrecision returns the grid precision level of the committed
// mapping.
func (c *Controller) DisplayPrecision() int { return MaxGridPrecision(c.mapping) }

// PixelsPerUnit returns the committed X-axis scale as a plain double.
func (c *Controller) PixelsPerUnit() float64 { return c.mapping.PixelsPerUnit() }

// Grid returns the vertical and horizontal grid line sets for the committed
// mapping.
func (c *Controller) Grid() (vertical, horizontal []GridLine) {
	return GridLines(c.mapping)
}

// StartDrag begins a drag gesture. A gesture already in flight is
// force-completed first — its pending delta commits, nothing is dropped.
func (c *Controller) StartDrag(kind DragKind) {
	c.forceComplete()
	c.phase = phaseDragging
	c.dragKind = kind
	c.snapshotBaseline()
	c.appliedDX, c.appliedDY = 0, 0
	c.lastDX, c.lastDY = 0, 0
}

// UpdateDrag applies the drag's total screen delta since StartDrag. It
// recomputes the preview as a pure function of the baseline plus the total,
// publishes the uncommitted remainder as a visual transform, and performs an
// exact incremental commit when the remainder exceeds the configured share
// of the pre-rendered margin.
//
// A call with no active drag of the same kind is logged and ignored.
func (c *Controller) UpdateDrag(kind DragKind, totalDX, totalDY float64) error {
	if c.phase != phaseDragging || kind != c.dragKind {
		Logger().Warn("planar: drag update without matching gesture", "kind", int(kind))
		return ErrInvalidGesture
	}
	c.lastDX, c.lastDY = totalDX, totalDY
	remX := totalDX - c.appliedDX
	remY := totalDY - c.appliedDY

	switch c.dragKind {
	case DragWindow:
		c.previewWindow = c.panWindow(c.baselineWindow, totalDX, totalDY)
		c.transform = PreviewTransform{TranslateX: remX, TranslateY: remY, Scale: 1}
	case DragPoint:
		c.previewPoint = c.pointAtOffset(totalDX, totalDY)
		c.transform = PreviewTransform{TranslateX: remX, TranslateY: remY, Scale: 1}
	}
	if math.Hypot(remX, remY) > c.dragCommitLimit() {
		c.commitDragRemainder()
	}
	return nil
}

// CompleteDrag commits whatever remainder of the final total has not been
// applied yet and returns the controller to idle. For a point drag the
// committed point is quantized — the one moment an explicit reposition
// re-quantizes it.
func (c *Controller) CompleteDrag(kind DragKind, totalDX, totalDY float64) error {
	if c.phase != phaseDragging || kind != c.dragKind {
		Logger().Warn("planar: drag completion without matching gesture", "kind", int(kind))
		return ErrInvalidGesture
	}
	c.lastDX, c.lastDY = totalDX, totalDY
	c.finishDrag()
	return nil
}

// StartZoom begins a zoom gesture centered at a screen position. The world
// anchor under the center is resolved once, exactly, at the baseline. An
// active gesture is force-completed first.
func (c *Controller) StartZoom(source ZoomSource, centerX, centerY float64) {
	c.forceComplete()
	c.phase = phaseZooming
	c.zoomSource = source
	c.zoomCenterX, c.zoomCenterY = centerX, centerY
	c.snapshotBaseline()
	c.zoomAnchor = c.baselineMapping.ScreenToWorld(centerX, centerY)
	c.appliedFactor, c.lastFactor = 1, 1
}

// UpdateZoom applies the zoom's total factor since StartZoom. Factors above
// 1 zoom in. The preview is a pure function of the baseline plus the total;
// the uncommitted remainder is published as a scale-around-pivot transform,
// and an exact incremental commit runs when the remainder deviates from 1
// by more than the configured threshold.
//
// A call with no active zoom from the same source is logged and ignored, as
// is a non-positive factor.
func (c *Controller) UpdateZoom(source ZoomSource, totalFactor float64) error {
	if c.phase != phaseZooming || source != c.zoomSource {
		Logger().Warn("planar: zoom update without matching gesture", "source", int(source))
		return ErrInvalidGesture
	}
	if !(totalFactor > 0) || math.IsInf(totalFactor, 0) {
		Logger().Warn("planar: dropping non-positive zoom factor", "factor", totalFactor)
		return ErrNonPositiveFactor
	}
	c.lastFactor = totalFactor
	c.previewWindow = c.zoomedWindow(c.baselineWindow, totalFactor)
	rem := totalFactor / c.appliedFactor
	c.transform = PreviewTransform{
		Scale:  rem,
		PivotX: c.zoomCenterX,
		PivotY: c.zoomCenterY,
	}
	if math.Abs(rem-1) > c.zoomCommitThreshold {
		c.commitZoomRemainder()
	}
	return nil
}

// CompleteZoom commits the unapplied remainder of the final factor and
// returns the controller to idle.
func (c *Controller) CompleteZoom(source ZoomSource, totalFactor float64) error {
	if c.phase != phaseZooming || source != c.zoomSource {
		Logger().Warn("planar: zoom completion without matching gesture", "source", int(source))
		return ErrInvalidGesture
	}
	if totalFactor > 0 && !math.IsInf(totalFactor, 0) {
		c.lastFactor = totalFactor
	}
	c.finishZoom()
	return nil
}

// Cancel force-completes whatever gesture is active using its last known
// totals. An externally interrupted gesture never loses visually-confirmed
// motion; with no active gesture Cancel is a no-op.
func (c *Controller) Cancel() {
	c.forceComplete()
}

// Recenter explicitly repositions the marked point, quantized to one place
// finer than the window precision.
func (c *Controller) Recenter(p Point) {
	c.forceComplete()
	c.point = c.quantizePoint(p)
	c.previewPoint = c.point
}

func (c *Controller) snapshotBaseline() {
	c.baselineWindow = c.window
	c.baselinePoint = c.point
	c.baselineMapping = c.mapping
	c.previewWindow = c.window
	c.previewPoint = c.point
	c.transform = identityTransform()
}

func (c *Controller) forceComplete() {
	switch c.phase {
	case phaseDragging:
		c.finishDrag()
	case phaseZooming:
		c.finishZoom()
	}
}

func (c *Controller) finishDrag() {
	remX := c.lastDX - c.appliedDX
	remY := c.lastDY - c.appliedDY
	switch c.dragKind {
	case DragWindow:
		if remX != 0 || remY != 0 {
			c.setWindow(c.quantizeWindow(c.panWindow(c.window, remX, remY)))
		}
	case DragPoint:
		c.point = c.quantizePoint(c.pointAtOffset(c.lastDX, c.lastDY))
	}
	c.toIdle()
}

func (c *Controller) finishZoom() {
	rem := c.lastFactor / c.appliedFactor
	if rem != 1 {
		w, err := c.window.ZoomAround(c.zoomAnchor, New(rem))
		if err == nil {
			c.setWindow(c.quantizeWindow(w))
		}
	}
	c.toIdle()
}

func (c *Controller) toIdle() {
	c.phase = phaseIdle
	c.previewWindow = c.window
	c.previewPoint = c.point
	c.transform = identityTransform()
	c.appliedDX, c.appliedDY = 0, 0
	c.lastDX, c.lastDY = 0, 0
	c.appliedFactor, c.lastFactor = 1, 1
}

// commitDragRemainder folds the uncommitted drag remainder into the exact
// committed state and resets the visual transform to zero remainder.
// Commits are monotonic: an already-committed increment is never re-applied,
// and a repeated identical update finds a zero remainder and does nothing.
func (c *Controller) commitDragRemainder() {
	remX := c.lastDX - c.appliedDX
	remY := c.lastDY - c.appliedDY
	switch c.dragKind {
	case DragWindow:
		c.setWindow(c.quantizeWindow(c.panWindow(c.window, remX, remY)))
	case DragPoint:
		// Mid-gesture commits move the point without quantizing; only the
		// explicit reposition at drag end snaps it.
		c.point = c.pointAtOffset(c.lastDX, c.lastDY)
	}
	c.appliedDX, c.appliedDY = c.lastDX, c.lastDY
	c.transform = identityTransform()
	Logger().Debug("planar: incremental drag commit", "dx", remX, "dy", remY)
}

func (c *Controller) commitZoomRemainder() {
	rem := c.lastFactor / c.appliedFactor
	w, err := c.window.ZoomAround(c.zoomAnchor, New(rem))
	if err != nil {
		Logger().Error("planar: zoom commit failed", "err", err)
		return
	}
	c.setWindow(c.quantizeWindow(w))
	c.appliedFactor = c.lastFactor
	c.transform = identityTransform()
	Logger().Debug("planar: incremental zoom commit", "factor", rem)
}

// panWindow shifts a window by a screen-pixel delta through the exact
// Decimal pipeline. Panning preserves the window extent, so the world size
// of one pixel is constant across incremental commits and folding the
// remainder into the committed window equals panning the baseline by the
// total.
func (c *Controller) panWindow(w WorldWindow, dx, dy float64) WorldWindow {
	shiftX := w.Width().Mul(New(-dx / c.viewport.Width))
	shiftY := w.Height().Mul(New(dy / c.viewport.Height))
	return w.Translate(shiftX, shiftY)
}

// zoomedWindow scales a window around the gesture's world anchor.
func (c *Controller) zoomedWindow(w WorldWindow, factor float64) WorldWindow {
	z, err := w.ZoomAround(c.zoomAnchor, New(factor))
	if err != nil {
		return w
	}
	return z
}

// pointAtOffset moves the baseline point by a screen delta: project to the
// baseline screen position, offset, and map back to world coordinates.
func (c *Controller) pointAtOffset(dx, dy float64) Point {
	sx, sy := c.baselineMapping.WorldToScreen(c.baselinePoint)
	return c.baselineMapping.ScreenToWorld(sx+dx, sy+dy)
}

// dragCommitLimit is the screen distance, in pixels, the uncommitted drag
// remainder may cover before the cheap visual transform drifts out of the
// pre-rendered margin.
func (c *Controller) dragCommitLimit() float64 {
	side := math.Min(c.viewport.Width, c.viewport.Height)
	return c.dragCommitFraction * c.extension * side
}

// setWindow replaces the committed window wholesale and recomputes the
// mapping.
func (c *Controller) setWindow(w WorldWindow) {
	c.window = w
	c.mapping = NewCoordinateMapping(c.viewport, w, c.extension)
}

// quantizeWindow snaps window boundaries to max(15, windowPrecision+5)
// decimal places — deliberately much finer than the display grid so window
// edges never visibly snap to grid lines, while keeping committed
// coordinates from accumulating unbounded digits.
func (c *Controller) quantizeWindow(w WorldWindow) WorldWindow {
	m := NewCoordinateMapping(c.viewport, w, c.extension)
	places := MaxGridPrecision(m) + 5
	if places < 15 {
		places = 15
	}
	return w.Quantize(places)
}

// quantizePoint snaps a point to one place finer than the window precision.
// Applied only on explicit repositioning; pans and zooms never re-quantize
// an unmoved point.
func (c *Controller) quantizePoint(p Point) Point {
	return p.Quantize(c.DisplayPrecision() + 1)
}

// Package render produces CPU raster snapshots of a planar viewport: the
// classified grid lines, coordinate labels and the marked point, drawn into
// a plain image.RGBA.
//
// The core package deliberately stays free of pixel concerns; render is the
// reference surface that exercises the whole mapping/grid pipeline and backs
// the planarview demo.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/planarkit/planar"
)

// Option configures a snapshot.
type Option func(*options)

type options struct {
	background color.RGBA
	line       color.RGBA
	label      color.RGBA
	point      color.RGBA
	labels     bool
}

func defaultOptions() options {
	return options{
		background: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		line:       color.RGBA{R: 0x50, G: 0x64, B: 0x78, A: 0xFF},
		label:      color.RGBA{R: 0x28, G: 0x28, B: 0x28, A: 0xFF},
		point:      color.RGBA{R: 0xD0, G: 0x30, B: 0x30, A: 0xFF},
		labels:     true,
	}
}

// WithBackground sets the background fill.
func WithBackground(c color.RGBA) Option {
	return func(o *options) { o.background = c }
}

// WithLineColor sets the grid line color.
func WithLineColor(c color.RGBA) Option {
	return func(o *options) { o.line = c }
}

// WithPointColor sets the marked point color.
func WithPointColor(c color.RGBA) Option {
	return func(o *options) { o.point = c }
}

// WithLabels enables or disables coordinate labels on thick lines.
func WithLabels(enabled bool) Option {
	return func(o *options) { o.labels = enabled }
}

// Snapshot renders the committed state of a controller.
func Snapshot(c *planar.Controller, opts ...Option) *image.RGBA {
	vertical, horizontal := c.Grid()
	return Image(c.Mapping(), vertical, horizontal, c.MarkedPoint(), opts...)
}

// Image renders a mapping with its grid line sets and a marked point.
// Lines arrive thinnest level first, so painting in slice order lets the
// thicker levels overdraw intersections.
func Image(m planar.CoordinateMapping, vertical, horizontal []planar.GridLine, marked planar.Point, opts ...Option) *image.RGBA {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := int(m.Viewport.Width + 0.5)
	h := int(m.Viewport.Height + 0.5)
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(o.background), image.Point{}, draw.Src)

	fw, fh := float64(w), float64(h)
	lines := vector.NewRasterizer(w, h)
	for _, l := range vertical {
		x := m.X.WorldToScreen(l.Position)
		if x < -1 || x > fw+1 {
			continue
		}
		t := float64(l.Thickness)
		fillRect(lines, x-t/2, 0, t, fh)
	}
	for _, l := range horizontal {
		y := m.Y.WorldToScreen(l.Position)
		if y < -1 || y > fh+1 {
			continue
		}
		t := float64(l.Thickness)
		fillRect(lines, 0, y-t/2, fw, t)
	}
	lines.Draw(img, img.Bounds(), image.NewUniform(o.line), image.Point{})

	if o.labels {
		drawLabels(img, m, vertical, horizontal, o.label)
	}

	drawMarkedPoint(img, m, marked, o.point)
	return img
}

// fillRect adds an axis-aligned rectangle to the rasterizer's pending path.
func fillRect(r *vector.Rasterizer, x, y, w, h float64) {
	r.MoveTo(float32(x), float32(y))
	r.LineTo(float32(x+w), float32(y))
	r.LineTo(float32(x+w), float32(y+h))
	r.LineTo(float32(x), float32(y+h))
	r.ClosePath()
}

func drawLabels(img *image.RGBA, m planar.CoordinateMapping, vertical, horizontal []planar.GridLine, c color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
	}
	h := int(m.Viewport.Height + 0.5)
	for _, l := range vertical {
		if !l.Labeled {
			continue
		}
		x := m.X.WorldToScreen(l.Position)
		d.Dot = fixed.P(int(x)+3, h-4)
		d.DrawString(l.Position.Text())
	}
	for _, l := range horizontal {
		if !l.Labeled {
			continue
		}
		y := m.Y.WorldToScreen(l.Position)
		d.Dot = fixed.P(4, int(y)-3)
		d.DrawString(l.Position.Text())
	}
}

// drawMarkedPoint paints a small diamond at the point's projection. A point
// whose projection collapsed to the axis base still lands somewhere sane,
// it is simply off the visible grid.
func drawMarkedPoint(img *image.RGBA, m planar.CoordinateMapping, p planar.Point, c color.RGBA) {
	x, y := m.WorldToScreen(p)
	b := img.Bounds()
	if x < float64(b.Min.X)-6 || x > float64(b.Max.X)+6 || y < float64(b.Min.Y)-6 || y > float64(b.Max.Y)+6 {
		return
	}
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	const radius = 5
	r.MoveTo(float32(x), float32(y-radius))
	r.LineTo(float32(x+radius), float32(y))
	r.LineTo(float32(x), float32(y+radius))
	r.LineTo(float32(x-radius), float32(y))
	r.ClosePath()
	r.Draw(img, b, image.NewUniform(c), image.Point{})
}

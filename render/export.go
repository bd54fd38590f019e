package render

import (
	"bytes"
	"io"

	"github.com/scottkirkwood/blobposter"
	"github.com/scottkirkwood/blobposter/scene"
)

// DefaultPadding is the border left around the cropped poster, in inches.
const DefaultPadding = 0.05

// ExportOption configures ExportPNG.
type ExportOption func(*exporter)

type exporter struct {
	padding float64
}

// WithPadding sets the border around the crop in inches.
func WithPadding(inches float64) ExportOption {
	return func(e *exporter) { e.padding = inches }
}

// Layout is the physical size of an export, in inches.
type Layout struct {
	W, H    float64
	Padding float64
	scale   float64 // inches per scene unit
	view    blobposter.Bounds
}

// ExportLayout fits the view into the figure, then crops the figure down to
// the view plus padding.
func ExportLayout(s scene.Scene, padding float64) Layout {
	view := ViewBounds(s)
	t := fit(view, s.Size.W, s.Size.H, false)
	return Layout{
		W:       view.Dx()*t.scale + 2*padding,
		H:       view.Dy()*t.scale + 2*padding,
		Padding: padding,
		scale:   t.scale,
		view:    view,
	}
}

// ExportPNG draws s on the vector canvas and writes it as a PNG at
// blobposter.ExportDPI.
func ExportPNG(w io.Writer, s scene.Scene, opts ...ExportOption) error {
	e := exporter{padding: DefaultPadding}
	for _, opt := range opts {
		opt(&e)
	}
	l := ExportLayout(s, e.padding)
	const mm = blobposter.MMPerInch

	ctx := blobposter.NewContext(l.W*mm, l.H*mm)
	ctx.SetFillColor(s.Background)
	ctx.FillRect(0, 0, l.W*mm, l.H*mm)

	project := func(p blobposter.Point) blobposter.Point {
		return blobposter.Point{
			X: (l.Padding + (p.X-l.view.Min.X)*l.scale) * mm,
			Y: (l.Padding + (p.Y-l.view.Min.Y)*l.scale) * mm,
		}
	}
	for _, layer := range s.Layers() {
		sh := layer.Shape
		if layer.Stroke {
			ctx.SetStrokeColor(sh.Outline.Color)
			ctx.SetStrokeWidth(sh.Outline.Width * blobposter.PointMM)
			ctx.StrokePolygon(sh.Poly, project)
			continue
		}
		ctx.SetFillColor(sh.Fill.WithAlpha(sh.Alpha))
		ctx.FillPolygon(sh.Poly, project)
	}
	return ctx.WritePNG(w)
}

// PNG is ExportPNG into memory.
func PNG(s scene.Scene, opts ...ExportOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := ExportPNG(&buf, s, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package render

import (
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/scottkirkwood/blobposter/scene"
)

// PreviewOption configures Preview.
type PreviewOption func(*previewer)

type previewer struct {
	dpi        float64
	maxW, maxH int
}

// WithDPI sets the preview pixel density (default PreviewDPI).
func WithDPI(dpi float64) PreviewOption {
	return func(p *previewer) { p.dpi = dpi }
}

// WithMaxSize lowers the density until the preview fits in w x h pixels.
func WithMaxSize(w, h int) PreviewOption {
	return func(p *previewer) { p.maxW, p.maxH = w, h }
}

// Preview rasterizes s onto a figure-sized image for the screen.
func Preview(s scene.Scene, opts ...PreviewOption) image.Image {
	p := previewer{dpi: PreviewDPI}
	for _, opt := range opts {
		opt(&p)
	}
	dpi := p.dpi
	if p.maxW > 0 && p.maxH > 0 {
		dpi = math.Min(dpi, math.Min(float64(p.maxW)/s.Size.W, float64(p.maxH)/s.Size.H))
	}
	w := max(1, int(math.Round(s.Size.W*dpi)))
	h := max(1, int(math.Round(s.Size.H*dpi)))

	dc := gg.NewContext(w, h)
	dc.SetColor(s.Background)
	dc.Clear()

	t := fit(ViewBounds(s), float64(w), float64(h), true)
	for _, l := range s.Layers() {
		poly := l.Shape.Poly
		if len(poly) < 2 {
			continue
		}
		first := t.apply(poly[0])
		dc.MoveTo(first.X, first.Y)
		for _, pt := range poly[1:] {
			q := t.apply(pt)
			dc.LineTo(q.X, q.Y)
		}
		dc.ClosePath()
		if l.Stroke {
			dc.SetColor(l.Shape.Outline.Color)
			dc.SetLineWidth(l.Shape.Outline.Width * dpi / 72)
			dc.Stroke()
		} else {
			dc.SetColor(l.Shape.Fill.WithAlpha(l.Shape.Alpha))
			dc.Fill()
		}
	}
	return dc.Image()
}

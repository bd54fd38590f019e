package render

import (
	"math"

	"github.com/scottkirkwood/blobposter"
	"github.com/scottkirkwood/blobposter/scene"
)

const (
	// DefaultFilename is what downloads are saved as.
	DefaultFilename = "poster.png"

	// PreviewDPI is the pixel density of on-screen previews.
	PreviewDPI = 100

	// viewMargin is added to each side of the data bounds, as a share of their extent.
	viewMargin = 0.05
)

// ViewBounds is the region of scene space that gets drawn: the data bounds
// plus a small margin. An empty scene shows the unit square around the origin.
func ViewBounds(s scene.Scene) blobposter.Bounds {
	b := s.Bounds()
	if b.Empty() {
		return blobposter.Polygon{{X: -1, Y: -1}, {X: 1, Y: 1}}.Bounds()
	}
	m := viewMargin * math.Max(b.Dx(), b.Dy())
	if m == 0 {
		m = 1
	}
	return b.Pad(m)
}

// transform maps scene units into a w x h target, keeping the aspect ratio
// and centering the view.
type transform struct {
	scale      float64
	view       blobposter.Bounds
	offX, offY float64
	h          float64
	flipY      bool
}

func fit(view blobposter.Bounds, w, h float64, flipY bool) transform {
	scale := math.Min(w/view.Dx(), h/view.Dy())
	return transform{
		scale: scale,
		view:  view,
		offX:  (w - view.Dx()*scale) / 2,
		offY:  (h - view.Dy()*scale) / 2,
		h:     h,
		flipY: flipY,
	}
}

func (t transform) apply(p blobposter.Point) blobposter.Point {
	x := t.offX + (p.X-t.view.Min.X)*t.scale
	y := t.offY + (p.Y-t.view.Min.Y)*t.scale
	if t.flipY {
		y = t.h - y
	}
	return blobposter.Point{X: x, Y: y}
}

// Report describes geometry problems found in a scene.
type Report struct {
	Blobs            int
	Hearts           int
	SelfIntersecting int // blobs whose outline crosses itself
}

// Diagnose counts shapes and self-crossing blob outlines. Crossings show up
// when the wobble and jitter push the radius through zero.
func Diagnose(s scene.Scene) Report {
	var r Report
	for _, sh := range s.Shapes {
		switch sh.Kind {
		case scene.KindBlob:
			r.Blobs++
			if sh.Poly.SelfIntersections() > 0 {
				r.SelfIntersecting++
			}
		case scene.KindHeart:
			r.Hearts++
		}
	}
	return r
}

package scene

import (
	"sort"

	"github.com/scottkirkwood/blobposter"
)

// Kind tells blobs from hearts.
type Kind int

const (
	KindBlob Kind = iota
	KindHeart
)

func (k Kind) String() string {
	if k == KindHeart {
		return "heart"
	}
	return "blob"
}

// Outline is a stroke drawn around a shape at its own stacking key.
type Outline struct {
	Color Color
	Width float64 // points
	Key   float64
}

// Shape is one filled polygon of a scene. Alpha replaces Fill's own alpha
// when drawing. Higher keys are drawn on top.
type Shape struct {
	Kind    Kind
	Poly    blobposter.Polygon
	Fill    Color
	Alpha   float64
	Outline *Outline
	Key     float64

	// Radius is the nominal radius of a blob, zero for hearts.
	Radius float64
}

// Scene is one generated poster. Shapes hold blobs in increasing radius order
// followed by hearts.
type Scene struct {
	Style      Style
	Size       Size
	Background Color
	Shapes     []Shape
}

// Blobs returns the blob shapes in order.
func (s Scene) Blobs() []Shape {
	return s.filter(KindBlob)
}

// Hearts returns the heart shapes in order.
func (s Scene) Hearts() []Shape {
	return s.filter(KindHeart)
}

func (s Scene) filter(k Kind) []Shape {
	out := make([]Shape, 0, len(s.Shapes))
	for _, sh := range s.Shapes {
		if sh.Kind == k {
			out = append(out, sh)
		}
	}
	return out
}

// Bounds covers every point of every shape.
func (s Scene) Bounds() blobposter.Bounds {
	var b blobposter.Bounds
	for _, sh := range s.Shapes {
		b = b.Union(sh.Poly.Bounds())
	}
	return b
}

// Layer is a single draw operation: the fill or the outline of a shape.
type Layer struct {
	Key    float64
	Shape  *Shape
	Stroke bool
}

// Layers lists every fill and outline sorted by key. Equal keys keep the
// order of Shapes.
func (s Scene) Layers() []Layer {
	layers := make([]Layer, 0, len(s.Shapes)*2)
	for i := range s.Shapes {
		sh := &s.Shapes[i]
		layers = append(layers, Layer{Key: sh.Key, Shape: sh})
		if sh.Outline != nil {
			layers = append(layers, Layer{Key: sh.Outline.Key, Shape: sh, Stroke: true})
		}
	}
	sort.SliceStable(layers, func(i, j int) bool {
		return layers[i].Key < layers[j].Key
	})
	return layers
}

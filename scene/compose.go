package scene

import (
	"math"

	"github.com/scottkirkwood/blobposter"
)

const (
	// minHeartKey puts hearts above the outlines of up to twenty blobs.
	minHeartKey = 20

	heartScaleLow  = 0.05
	heartScaleHigh = 0.15
	fillAlphaLow   = 0.5
	fillAlphaHigh  = 0.8
	heartAlphaLow  = 0.6
	heartAlphaHigh = 0.9
	outlineWidth   = 1 // points
)

// styleA harmonics
var harmonicsA = []int{2, 3, 5, 7}

// Generator is one poster style.
type Generator interface {
	Style() Style
	// GenerateBlob makes one blob from the given streams.
	GenerateBlob(spec BlobSpec, rs blobposter.Streams) blobposter.Polygon
	// Compose builds the whole scene. See the package level Compose.
	Compose(p Params, rs blobposter.Streams) Scene
}

// For returns the generator for style.
func For(style Style) Generator {
	if style == StyleB {
		return styleB{}
	}
	return styleA{}
}

// NewStreams makes fresh streams for p: seeded when p.Seed is set, time
// based otherwise.
func NewStreams(p Params) blobposter.Streams {
	if p.Seed != nil {
		return blobposter.NewStreams(*p.Seed)
	}
	return blobposter.Unseeded().Streams()
}

// Compose generates the poster described by p and returns it with its
// figure size. A seeded p rewinds rs first, which makes the scene a pure
// function of p. Zero value streams are replaced by NewStreams(p).
func Compose(p Params, rs blobposter.Streams) (Scene, Size) {
	if rs.General == nil || rs.Jitter == nil {
		rs = NewStreams(p)
	}
	s := For(p.Style).Compose(p, rs)
	return s, s.Size
}

func begin(p Params, rs blobposter.Streams) Scene {
	if p.Seed != nil {
		rs.Reseed(*p.Seed)
	}
	size := p.FigSize
	if size.W <= 0 || size.H <= 0 {
		size = DefaultSize
	}
	return Scene{
		Style:      p.Style,
		Size:       size,
		Background: Background(p.Style),
		Shapes:     make([]Shape, 0, max(p.NBlobs, 0)+max(p.NHearts, 0)),
	}
}

// heartKey is above every blob key, whatever the blob count.
func heartKey(nBlobs int) float64 {
	return math.Max(minHeartKey, float64(nBlobs))
}

// addHearts appends p.NHearts hearts. Each heart draws, in order, its scale,
// x and y offset in [-spread, spread], colour and alpha from the general stream.
func addHearts(s *Scene, p Params, rs blobposter.Streams, spread float64) {
	palette := HeartPalette(p.Style)
	key := heartKey(p.NBlobs)
	for i := 0; i < p.NHearts; i++ {
		scale := blobposter.Uniform(rs.General, heartScaleLow, heartScaleHigh)
		offset := blobposter.Point{
			X: blobposter.Uniform(rs.General, -spread, spread),
			Y: blobposter.Uniform(rs.General, -spread, spread),
		}
		poly := Heart(DefaultHeartPoints, scale, offset)
		s.Shapes = append(s.Shapes, Shape{
			Kind:  KindHeart,
			Poly:  poly,
			Fill:  Choose(palette, rs.General),
			Alpha: blobposter.Uniform(rs.General, heartAlphaLow, heartAlphaHigh),
			Key:   key,
		})
	}
}

type styleA struct{}

func (styleA) Style() Style { return StyleA }

func (styleA) GenerateBlob(spec BlobSpec, rs blobposter.Streams) blobposter.Polygon {
	return MakeBlobA(spec, rs.Jitter)
}

// Compose for style A: the palette is shuffled once, then every blob picks a
// harmonic from {2, 3, 5, 7} and scales the wobble by U(0.5, 1.5).
func (g styleA) Compose(p Params, rs blobposter.Streams) Scene {
	s := begin(p, rs)
	colors := FixedPalette(p.NBlobs, rs.General)
	radii := blobposter.Linspace(p.MinRadius, p.MaxRadius, p.NBlobs, true)
	for i, r := range radii {
		harmonic := harmonicsA[rs.General.Intn(len(harmonicsA))]
		wob := p.Wobble * blobposter.Uniform(rs.General, 0.5, 1.5)
		poly := g.GenerateBlob(BlobSpec{
			NPoints:  p.NPoints,
			Radius:   r,
			Wobble:   wob,
			Harmonic: harmonic,
		}, rs)
		s.Shapes = append(s.Shapes, Shape{
			Kind:  KindBlob,
			Poly:  poly,
			Fill:  colors[i],
			Alpha: blobposter.Uniform(rs.General, fillAlphaLow, fillAlphaHigh),
			Outline: &Outline{
				Color: outlineColor,
				Width: outlineWidth,
				Key:   float64(i) + 0.5,
			},
			Key:    float64(i),
			Radius: r,
		})
	}
	addHearts(&s, p, rs, 3.5)
	return s
}

type styleB struct{}

func (styleB) Style() Style { return StyleB }

func (styleB) GenerateBlob(spec BlobSpec, rs blobposter.Streams) blobposter.Polygon {
	return MakeBlobB(spec, rs.General, rs.Jitter)
}

// Compose for style B: each blob draws its wobble from [WobbleLow, WobbleHigh)
// and its colour independently, so colours may repeat.
func (g styleB) Compose(p Params, rs blobposter.Streams) Scene {
	s := begin(p, rs)
	palette := BlobPalette()
	radii := blobposter.Linspace(p.MinRadius, p.MaxRadius, p.NBlobs, true)
	for i, r := range radii {
		spec := DefaultBlobB()
		spec.Radius = r
		spec.Wobble = blobposter.Uniform(rs.General, p.WobbleLow, p.WobbleHigh)
		spec.Irregularity = p.Irregularity
		poly := g.GenerateBlob(spec, rs)
		s.Shapes = append(s.Shapes, Shape{
			Kind:   KindBlob,
			Poly:   poly,
			Fill:   Choose(palette, rs.General),
			Alpha:  blobposter.Uniform(rs.General, fillAlphaLow, fillAlphaHigh),
			Key:    float64(i),
			Radius: r,
		})
	}
	addHearts(&s, p, rs, 3.2)
	return s
}

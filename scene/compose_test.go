package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottkirkwood/blobposter"
)

func scenarioA() Params {
	return Params{
		Style:     StyleA,
		NBlobs:    10,
		NPoints:   300,
		MinRadius: 0.5,
		MaxRadius: 2.5,
		Wobble:    0.35,
		NHearts:   10,
		Seed:      SeedOf(42),
		FigSize:   Size{8, 8},
	}
}

func scenarioB() Params {
	return Params{
		Style:        StyleB,
		NBlobs:       9,
		NHearts:      12,
		MinRadius:    0.7,
		MaxRadius:    2.5,
		WobbleLow:    0.25,
		WobbleHigh:   0.5,
		Irregularity: 0.15,
		Seed:         SeedOf(123),
		FigSize:      Size{8, 8},
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	for _, p := range []Params{scenarioA(), scenarioB()} {
		t.Run(p.Style.String(), func(t *testing.T) {
			first, size := Compose(p, blobposter.Streams{})
			second, _ := Compose(p, blobposter.Streams{})
			assert.Equal(t, first, second)
			assert.Equal(t, p.FigSize, size)
		})
	}
}

func TestSeededComposeRewindsCallerStreams(t *testing.T) {
	for _, p := range []Params{scenarioA(), scenarioB()} {
		t.Run(p.Style.String(), func(t *testing.T) {
			rs := blobposter.NewStreams(7)
			rs.General.Float64()
			rs.Jitter.NormFloat64()
			used, _ := Compose(p, rs)
			fresh, _ := Compose(p, blobposter.NewStreams(*p.Seed+1))
			assert.Equal(t, fresh, used)
		})
	}
}

func TestUnseededComposeUsesCallerStreams(t *testing.T) {
	p := scenarioB()
	p.Seed = nil
	a, _ := Compose(p, blobposter.NewStreams(5))
	b, _ := Compose(p, blobposter.NewStreams(5))
	c, _ := Compose(p, blobposter.NewStreams(6))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestScenarioCounts(t *testing.T) {
	a, _ := Compose(scenarioA(), blobposter.Streams{})
	require.Len(t, a.Blobs(), 10)
	require.Len(t, a.Hearts(), 10)
	for _, b := range a.Blobs() {
		assert.Len(t, b.Poly, 300)
		require.NotNil(t, b.Outline)
		assert.Equal(t, b.Key+0.5, b.Outline.Key)
		assert.True(t, b.Alpha >= fillAlphaLow && b.Alpha < fillAlphaHigh)
	}

	b, _ := Compose(scenarioB(), blobposter.Streams{})
	require.Len(t, b.Blobs(), 9)
	require.Len(t, b.Hearts(), 12)
	for _, bl := range b.Blobs() {
		assert.Len(t, bl.Poly, DefaultBlobB().NPoints)
		assert.Nil(t, bl.Outline)
	}
	for _, h := range b.Hearts() {
		assert.Len(t, h.Poly, DefaultHeartPoints)
		assert.True(t, h.Alpha >= heartAlphaLow && h.Alpha < heartAlphaHigh)
	}
}

func TestBlobsComeFirst(t *testing.T) {
	s, _ := Compose(scenarioA(), blobposter.Streams{})
	for i, sh := range s.Shapes {
		want := KindBlob
		if i >= 10 {
			want = KindHeart
		}
		assert.Equal(t, want, sh.Kind, "shape %d", i)
	}
}

func TestHeartsAboveBlobs(t *testing.T) {
	for _, n := range []int{0, 1, 10, 20, 25, 60} {
		p := scenarioA()
		p.NBlobs = n
		p.NPoints = 20
		s, _ := Compose(p, blobposter.Streams{})
		top := -1.0
		for _, b := range s.Blobs() {
			top = max(top, b.Key, b.Outline.Key)
		}
		for _, h := range s.Hearts() {
			assert.Greater(t, h.Key, top, "%d blobs", n)
		}
	}
}

func TestRadiiIncrease(t *testing.T) {
	for _, p := range []Params{scenarioA(), scenarioB()} {
		s, _ := Compose(p, blobposter.Streams{})
		blobs := s.Blobs()
		assert.InDelta(t, p.MinRadius, blobs[0].Radius, 1e-12)
		assert.InDelta(t, p.MaxRadius, blobs[len(blobs)-1].Radius, 1e-12)
		for i := 1; i < len(blobs); i++ {
			assert.GreaterOrEqual(t, blobs[i].Radius, blobs[i-1].Radius)
			assert.Greater(t, blobs[i].Key, blobs[i-1].Key)
		}
	}
}

func TestDegenerateCounts(t *testing.T) {
	for _, p := range []Params{scenarioA(), scenarioB()} {
		p.NBlobs = 0
		s, _ := Compose(p, blobposter.Streams{})
		assert.Empty(t, s.Blobs())
		assert.Len(t, s.Hearts(), p.NHearts)

		p.NHearts = 0
		s, _ = Compose(p, blobposter.Streams{})
		assert.Empty(t, s.Shapes)
		assert.True(t, s.Bounds().Empty())
	}
	p := scenarioA()
	p.NPoints = 0
	s, _ := Compose(p, blobposter.Streams{})
	require.Len(t, s.Blobs(), 10)
	for _, b := range s.Blobs() {
		assert.Empty(t, b.Poly)
	}
}

func TestStyleAPaletteCyclesColors(t *testing.T) {
	s, _ := Compose(scenarioA(), blobposter.Streams{})
	counts := map[Color]int{}
	for _, b := range s.Blobs() {
		counts[b.Fill]++
	}
	require.Len(t, counts, 5)
	for c, n := range counts {
		assert.Equal(t, 2, n, "colour %v", c)
	}
}

func TestColorsComeFromPalettes(t *testing.T) {
	s, _ := Compose(scenarioB(), blobposter.Streams{})
	assert.Subset(t, BlobPalette(), colorsOf(s.Blobs()))
	assert.Subset(t, HeartPalette(StyleB), colorsOf(s.Hearts()))
	assert.Equal(t, Background(StyleB), s.Background)
}

func TestHeartOffsetsStayInRange(t *testing.T) {
	for _, tt := range []struct {
		p      Params
		spread float64
	}{{scenarioA(), 3.5}, {scenarioB(), 3.2}} {
		tt.p.NHearts = 40
		s, _ := Compose(tt.p, blobposter.Streams{})
		for _, h := range s.Hearts() {
			c := h.Poly.Bounds()
			// the heart reaches 16·scale sideways from its offset
			assert.LessOrEqual(t, c.Max.X, tt.spread+16*heartScaleHigh)
			assert.GreaterOrEqual(t, c.Min.X, -tt.spread-16*heartScaleHigh)
		}
	}
}

func TestGeneratorFor(t *testing.T) {
	assert.Equal(t, StyleA, For(StyleA).Style())
	assert.Equal(t, StyleB, For(StyleB).Style())
}

func TestLayersOrder(t *testing.T) {
	s, _ := Compose(scenarioA(), blobposter.Streams{})
	layers := s.Layers()
	require.Len(t, layers, 10*2+10)
	for i := 1; i < len(layers); i++ {
		assert.LessOrEqual(t, layers[i-1].Key, layers[i].Key)
	}
	assert.False(t, layers[0].Stroke)
	assert.True(t, layers[1].Stroke)
	assert.Same(t, layers[0].Shape, layers[1].Shape)
	for _, l := range layers[20:] {
		assert.Equal(t, KindHeart, l.Shape.Kind)
	}
}

func TestMissingFigSizeFallsBack(t *testing.T) {
	p := scenarioA()
	p.FigSize = Size{}
	_, size := Compose(p, blobposter.Streams{})
	assert.Equal(t, DefaultSize, size)
}

func colorsOf(shapes []Shape) []Color {
	out := make([]Color, len(shapes))
	for i, s := range shapes {
		out[i] = s.Fill
	}
	return out
}

package main

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottkirkwood/blobposter"
)

func TestFitImage(t *testing.T) {
	tests := []struct {
		name string
		img  image.Point
		win  image.Point
		want image.Point
	}{
		{"fits", image.Pt(100, 50), image.Pt(200, 200), image.Pt(100, 50)},
		{"too wide", image.Pt(400, 100), image.Pt(200, 200), image.Pt(200, 50)},
		{"too tall", image.Pt(100, 400), image.Pt(200, 200), image.Pt(50, 200)},
		{"both", image.Pt(2400, 2400), image.Pt(1000, 800), image.Pt(800, 800)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rectangle{Max: tt.img})
			got := fitImage(img, tt.win)
			assert.Equal(t, tt.want, got.Bounds().Size())
		})
	}
}

func TestGalleryStepWraps(t *testing.T) {
	g := &gallery{posters: []blobposter.Poster{
		{Name: "a", Img: image.NewRGBA(image.Rect(0, 0, 1, 1))},
		{Name: "b", Img: image.NewRGBA(image.Rect(0, 0, 2, 2))},
		{Name: "c", Img: image.NewRGBA(image.Rect(0, 0, 3, 3))},
	}}
	g.Step(-1)
	assert.Equal(t, 2, g.i)
	g.Step(1)
	assert.Equal(t, 0, g.i)
	g.Step(4)
	assert.Equal(t, 1, g.i)
	assert.Equal(t, 2, g.Image().Bounds().Dx())
}

func TestLivePosterStep(t *testing.T) {
	lp := newLivePoster(quietContext(), smallParams())
	require.NotNil(t, lp.Image())
	first := lp.Image()

	lp.Step(1)
	require.NotNil(t, lp.p.Seed)
	assert.Equal(t, int64(43), *lp.p.Seed)
	assert.NotEqual(t, first, lp.Image())

	lp.Step(-1)
	assert.Equal(t, int64(42), lp.seed.GetSeed())
}

package blobposter

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, fname string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	f, err := os.Create(fname)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestDecodeImagesSkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "a.png")
	bad := filepath.Join(dir, "b.png")
	writeTestPNG(t, good, 4, 3)
	require.NoError(t, os.WriteFile(bad, []byte("not a png"), 0o644))

	logger := log.New(io.Discard)
	posters := DecodeImages(logger, []string{good, bad, filepath.Join(dir, "missing.png")})
	require.Len(t, posters, 1)
	assert.Equal(t, "a.png", posters[0].Name)
	assert.Equal(t, 4, posters[0].Img.Bounds().Dx())
}

func TestVpCenter(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	assert.Equal(t, image.Point{50, 25}, VpCenter(img, 200, 100))
	assert.Equal(t, image.Point{0, 0}, VpCenter(img, 80, 40))
	assert.Equal(t, image.Point{0, 0}, VpCenter(img, 100, 50))
}

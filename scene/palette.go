package scene

import (
	"image/color"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/scottkirkwood/blobposter"
)

// Color is a colour with straight (non premultiplied) alpha, every channel in [0, 1].
type Color struct {
	colorful.Color
	A float64
}

// RGB builds an opaque colour.
func RGB(r, g, b float64) Color {
	return Color{colorful.Color{R: r, G: g, B: b}, 1}
}

// WithAlpha replaces the alpha channel.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// NRGBA quantizes to 8 bits per channel.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(blobposter.Clamp(c.A, 0, 1)*255 + 0.5)}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

var (
	green  = RGB(0.6, 1.0, 0.6)
	blue   = RGB(0.6, 0.8, 1.0)
	pink   = RGB(1.0, 0.6, 0.8)
	yellow = RGB(1.0, 1.0, 0.6)
	white  = RGB(1.0, 1.0, 1.0)

	blobColors = []Color{green, blue, pink, yellow, white}

	heartColorsA = []Color{
		RGB(1.0, 0.4, 0.7), // bright pink
		RGB(1.0, 0.2, 0.5), // hot pink
		RGB(0.9, 0.3, 0.9), // magenta
		RGB(1.0, 0.8, 0.3), // golden yellow
		RGB(0.6, 0.9, 1.0), // sky blue
		green,
		white,
	}
	// same as A but a warmer gold
	heartColorsB = []Color{
		heartColorsA[0], heartColorsA[1], heartColorsA[2],
		RGB(1.0, 0.85, 0.3),
		heartColorsA[4], heartColorsA[5], heartColorsA[6],
	}

	backgroundA = RGB(0.05, 0.05, 0.07)
	backgroundB = RGB(0.07, 0.06, 0.08)

	outlineColor = Color{colorful.Color{}, 0.2}
)

// FixedPalette cycles the five blob colours up to n entries and shuffles them,
// so every colour appears a fixed number of times in random order.
func FixedPalette(n int, r *rand.Rand) []Color {
	if n <= 0 {
		return []Color{}
	}
	colors := make([]Color, n)
	for i := range colors {
		colors[i] = blobColors[i%len(blobColors)]
	}
	r.Shuffle(len(colors), func(i, j int) {
		colors[i], colors[j] = colors[j], colors[i]
	})
	return colors
}

// BlobPalette is the five blob colours in their fixed order.
func BlobPalette() []Color {
	return append([]Color(nil), blobColors...)
}

// HeartPalette is the seven heart colours for style.
func HeartPalette(style Style) []Color {
	if style == StyleB {
		return append([]Color(nil), heartColorsB...)
	}
	return append([]Color(nil), heartColorsA...)
}

// Background is the backdrop colour for style.
func Background(style Style) Color {
	if style == StyleB {
		return backgroundB
	}
	return backgroundA
}

// Choose picks one colour uniformly. colors must not be empty.
func Choose(colors []Color, r *rand.Rand) Color {
	return colors[r.Intn(len(colors))]
}

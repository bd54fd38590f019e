// Package config reads poster parameters from YAML or TOML files and checks
// them against the ranges the poster controls allow.
package config

import (
	"embed"
	"errors"
	"fmt"

	"github.com/scottkirkwood/blobposter/scene"
)

//go:embed defaults/*.yaml
var defaultFiles embed.FS

// ErrInvalidParams is wrapped by every range violation.
var ErrInvalidParams = errors.New("invalid poster parameters")

// File is the on-disk form of scene.Params. Pointer fields distinguish
// "not set" from zero, so a file only overrides what it names.
type File struct {
	Style        *scene.Style `yaml:"style" toml:"style"`
	Blobs        *int         `yaml:"blobs" toml:"blobs"`
	Hearts       *int         `yaml:"hearts" toml:"hearts"`
	Points       *int         `yaml:"points" toml:"points"`
	MinRadius    *float64     `yaml:"min_radius" toml:"min_radius"`
	MaxRadius    *float64     `yaml:"max_radius" toml:"max_radius"`
	Wobble       *float64     `yaml:"wobble" toml:"wobble"`
	WobbleLow    *float64     `yaml:"wobble_low" toml:"wobble_low"`
	WobbleHigh   *float64     `yaml:"wobble_high" toml:"wobble_high"`
	Irregularity *float64     `yaml:"irregularity" toml:"irregularity"`
	Seed         *int64       `yaml:"seed" toml:"seed"`
	NoSeed       bool         `yaml:"no_seed" toml:"no_seed"`
	FigWidth     *float64     `yaml:"fig_width" toml:"fig_width"`
	FigHeight    *float64     `yaml:"fig_height" toml:"fig_height"`
}

// Params lays the file over the defaults of its own style, or of fallback
// when the file names none.
func (f File) Params(fallback scene.Style) scene.Params {
	style := fallback
	if f.Style != nil {
		style = *f.Style
	}
	p := Defaults(style)
	f.Apply(&p)
	return p
}

// Apply copies every set field onto p. It does not swap in the defaults of
// a newly named style; Params does.
func (f File) Apply(p *scene.Params) {
	if f.Style != nil {
		p.Style = *f.Style
	}
	setInt(&p.NBlobs, f.Blobs)
	setInt(&p.NHearts, f.Hearts)
	setInt(&p.NPoints, f.Points)
	setFloat(&p.MinRadius, f.MinRadius)
	setFloat(&p.MaxRadius, f.MaxRadius)
	setFloat(&p.Wobble, f.Wobble)
	setFloat(&p.WobbleLow, f.WobbleLow)
	setFloat(&p.WobbleHigh, f.WobbleHigh)
	setFloat(&p.Irregularity, f.Irregularity)
	setFloat(&p.FigSize.W, f.FigWidth)
	setFloat(&p.FigSize.H, f.FigHeight)
	if f.Seed != nil {
		p.Seed = scene.SeedOf(*f.Seed)
	}
	if f.NoSeed {
		p.Seed = nil
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// Defaults returns the embedded defaults for style.
func Defaults(style scene.Style) scene.Params {
	p := scene.DefaultParams(style)
	data, err := defaultFiles.ReadFile(defaultName(style))
	if err != nil {
		return p
	}
	f, err := decode(data, ".yaml")
	if err != nil {
		return p
	}
	f.Apply(&p)
	return p
}

func defaultName(style scene.Style) string {
	if style == scene.StyleB {
		return "defaults/b.yaml"
	}
	return "defaults/a.yaml"
}

type span struct {
	name   string
	v      float64
	lo, hi float64
}

// Validate checks p against the poster control ranges. Fields that the
// style ignores are not checked. min_radius above max_radius is allowed:
// the blobs then shrink outwards instead of growing.
func Validate(p scene.Params) error {
	spans := []span{
		{"blobs", float64(p.NBlobs), 1, 20},
		{"hearts", float64(p.NHearts), 0, 40},
		{"min_radius", p.MinRadius, 0.1, 3.0},
		{"max_radius", p.MaxRadius, 0.5, 5.0},
		{"fig_width", p.FigSize.W, 4, 20},
		{"fig_height", p.FigSize.H, 4, 20},
	}
	switch p.Style {
	case scene.StyleA:
		spans = append(spans,
			span{"points", float64(p.NPoints), 50, 800},
			span{"wobble", p.Wobble, 0, 1},
		)
	case scene.StyleB:
		spans = append(spans,
			span{"wobble_low", p.WobbleLow, 0, 1},
			span{"wobble_high", p.WobbleHigh, 0, 1.5},
			span{"irregularity", p.Irregularity, 0, 1},
		)
	default:
		return fmt.Errorf("%w: unknown style %v", ErrInvalidParams, p.Style)
	}
	for _, s := range spans {
		if !(s.v >= s.lo && s.v <= s.hi) { // catches NaN too
			return fmt.Errorf("%w: %s = %v, want %v..%v", ErrInvalidParams, s.name, s.v, s.lo, s.hi)
		}
	}
	return nil
}

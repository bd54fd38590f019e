package server

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/scottkirkwood/blobposter"
	"github.com/scottkirkwood/blobposter/config"
	"github.com/scottkirkwood/blobposter/scene"
)

// ParseQuery reads poster parameters from a query string. Missing values
// take the style's defaults; seed=none asks for an unseeded poster.
// Every error wraps config.ErrInvalidParams.
func ParseQuery(q url.Values) (scene.Params, error) {
	style := scene.StyleA
	if v := q.Get("style"); v != "" {
		s, err := scene.ParseStyle(v)
		if err != nil {
			return scene.Params{}, fmt.Errorf("%w: %v", config.ErrInvalidParams, err)
		}
		style = s
	}
	p := config.Defaults(style)

	ints := map[string]*int{
		"blobs":  &p.NBlobs,
		"hearts": &p.NHearts,
		"points": &p.NPoints,
	}
	for key, dst := range ints {
		if v := q.Get(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return p, fmt.Errorf("%w: %s: %v", config.ErrInvalidParams, key, err)
			}
			*dst = n
		}
	}
	floats := map[string]*float64{
		"min_radius":   &p.MinRadius,
		"max_radius":   &p.MaxRadius,
		"wobble":       &p.Wobble,
		"wobble_low":   &p.WobbleLow,
		"wobble_high":  &p.WobbleHigh,
		"irregularity": &p.Irregularity,
		"fig_width":    &p.FigSize.W,
		"fig_height":   &p.FigSize.H,
	}
	for key, dst := range floats {
		if v := q.Get(key); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return p, fmt.Errorf("%w: %s: %v", config.ErrInvalidParams, key, err)
			}
			*dst = f
		}
	}
	switch v := q.Get("seed"); v {
	case "":
	case "none":
		p.Seed = nil
	default:
		seed, err := blobposter.Init(v)
		if err != nil {
			return p, fmt.Errorf("%w: %v", config.ErrInvalidParams, err)
		}
		p.Seed = scene.SeedOf(seed.GetSeed())
	}
	if err := config.Validate(p); err != nil {
		return p, err
	}
	return p, nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scottkirkwood/blobposter"
	"github.com/scottkirkwood/blobposter/config"
	"github.com/scottkirkwood/blobposter/scene"
)

// posterFlags are the poster parameters every command accepts. A flag only
// overrides the config file when it was given on the command line.
type posterFlags struct {
	config string
	style  string
	seed   string

	blobs, hearts, points int

	minRadius, maxRadius  float64
	wobble                float64
	wobbleLow, wobbleHigh float64
	irregularity          float64
	width, height         float64
}

func (f *posterFlags) register(cmd *cobra.Command) {
	a, b := scene.DefaultParams(scene.StyleA), scene.DefaultParams(scene.StyleB)
	fs := cmd.Flags()
	fs.StringVarP(&f.config, "config", "c", "", "parameter file (.yaml or .toml)")
	fs.StringVarP(&f.style, "style", "s", "A", "generator style: A (harmonic blobs) or B (ripple blobs)")
	fs.StringVar(&f.seed, "seed", "", `integer seed (decimal or 0x hex), or "none" for a different poster every run`)
	fs.IntVar(&f.blobs, "blobs", a.NBlobs, "number of blobs")
	fs.IntVar(&f.hearts, "hearts", a.NHearts, "number of hearts")
	fs.IntVar(&f.points, "points", a.NPoints, "points per blob (style A)")
	fs.Float64Var(&f.minRadius, "min-radius", a.MinRadius, "radius of the smallest blob")
	fs.Float64Var(&f.maxRadius, "max-radius", a.MaxRadius, "radius of the largest blob")
	fs.Float64Var(&f.wobble, "wobble", a.Wobble, "wobble amplitude (style A)")
	fs.Float64Var(&f.wobbleLow, "wobble-low", b.WobbleLow, "lowest wobble (style B)")
	fs.Float64Var(&f.wobbleHigh, "wobble-high", b.WobbleHigh, "highest wobble (style B)")
	fs.Float64Var(&f.irregularity, "irregularity", b.Irregularity, "per point jitter (style B)")
	fs.Float64Var(&f.width, "width", scene.DefaultSize.W, "figure width in inches")
	fs.Float64Var(&f.height, "height", scene.DefaultSize.H, "figure height in inches")
}

// params merges defaults, the config file and explicit flags, then validates.
func (f *posterFlags) params(cmd *cobra.Command) (scene.Params, error) {
	style, err := scene.ParseStyle(f.style)
	if err != nil {
		return scene.Params{}, err
	}
	fs := cmd.Flags()
	load := config.Load
	if fs.Changed("style") {
		load = config.LoadAs
	}
	p, err := load(f.config, style)
	if err != nil {
		return p, err
	}
	ints := map[string]struct {
		dst *int
		v   int
	}{
		"blobs":  {&p.NBlobs, f.blobs},
		"hearts": {&p.NHearts, f.hearts},
		"points": {&p.NPoints, f.points},
	}
	for name, iv := range ints {
		if fs.Changed(name) {
			*iv.dst = iv.v
		}
	}
	floats := map[string]struct {
		dst *float64
		v   float64
	}{
		"min-radius":   {&p.MinRadius, f.minRadius},
		"max-radius":   {&p.MaxRadius, f.maxRadius},
		"wobble":       {&p.Wobble, f.wobble},
		"wobble-low":   {&p.WobbleLow, f.wobbleLow},
		"wobble-high":  {&p.WobbleHigh, f.wobbleHigh},
		"irregularity": {&p.Irregularity, f.irregularity},
		"width":        {&p.FigSize.W, f.width},
		"height":       {&p.FigSize.H, f.height},
	}
	for name, fv := range floats {
		if fs.Changed(name) {
			*fv.dst = fv.v
		}
	}
	switch {
	case f.seed == "none":
		p.Seed = nil
	case f.seed != "":
		s, err := blobposter.Init(f.seed)
		if err != nil {
			return p, err
		}
		p.Seed = scene.SeedOf(s.GetSeed())
	}
	if err := config.Validate(p); err != nil {
		return p, err
	}
	return p, nil
}

// seedFor picks the seed a poster is drawn from. Unseeded posters still get a
// concrete (time based) value so the stamped filename can reproduce them.
func seedFor(p scene.Params) blobposter.Seed {
	if p.Seed != nil {
		return blobposter.Fixed(*p.Seed)
	}
	return blobposter.Unseeded()
}

// compose draws the scene from seed's streams.
func compose(p scene.Params, seed blobposter.Seed) scene.Scene {
	s, _ := scene.Compose(p, seed.Streams())
	return s
}

func describe(p scene.Params) string {
	seed := "none"
	if p.Seed != nil {
		seed = fmt.Sprint(*p.Seed)
	}
	return fmt.Sprintf("style %v, %d blobs, %d hearts, seed %s", p.Style, p.NBlobs, p.NHearts, seed)
}

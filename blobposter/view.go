package main

import (
	"context"
	"errors"
	"image"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/draw"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/scottkirkwood/blobposter"
	"github.com/scottkirkwood/blobposter/render"
	"github.com/scottkirkwood/blobposter/scene"
)

const (
	maxWinW = 1000 // pixels
	maxWinH = 800
)

func newViewCmd() *cobra.Command {
	var flags posterFlags
	cmd := &cobra.Command{
		Use:   "view [poster.png ...]",
		Short: "Show posters in a window",
		Long: `Without arguments, view previews a generated poster: Left/Right step the seed,
S saves a stamped 300 DPI export, Q or Esc quits.
With PNG files as arguments it shows those instead; Left/Right flip between them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			if len(args) > 0 {
				posters := blobposter.DecodeImages(logger, args)
				if len(posters) == 0 {
					return errors.New("none of the files could be shown")
				}
				runViewer(logger, &gallery{posters: posters})
				return nil
			}
			p, err := flags.params(cmd)
			if err != nil {
				return err
			}
			runViewer(logger, newLivePoster(ctx, p))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

// frames is what the viewer window shows.
type frames interface {
	Image() image.Image
	Step(delta int)
	Save()
}

// gallery flips through decoded files.
type gallery struct {
	posters []blobposter.Poster
	i       int
}

func (g *gallery) Image() image.Image { return g.posters[g.i].Img }

func (g *gallery) Step(delta int) {
	n := len(g.posters)
	g.i = ((g.i+delta)%n + n) % n
}

func (g *gallery) Save() {}

// livePoster regenerates the preview whenever the seed moves.
type livePoster struct {
	ctx  context.Context
	p    scene.Params
	seed blobposter.Seed
	img  image.Image
}

func newLivePoster(ctx context.Context, p scene.Params) *livePoster {
	lp := &livePoster{ctx: ctx, p: p, seed: seedFor(p)}
	lp.redraw()
	return lp
}

func (lp *livePoster) redraw() {
	s := compose(lp.p, lp.seed)
	lp.img = render.Preview(s, render.WithMaxSize(maxWinW, maxWinH))
	loggerFromContext(lp.ctx).Info("Showing", "poster", describe(lp.p))
}

func (lp *livePoster) Image() image.Image { return lp.img }

func (lp *livePoster) Step(delta int) {
	lp.seed = blobposter.Fixed(lp.seed.GetSeed() + int64(delta))
	lp.p.Seed = scene.SeedOf(lp.seed.GetSeed())
	lp.redraw()
}

func (lp *livePoster) Save() {
	p := lp.p
	p.Seed = scene.SeedOf(lp.seed.GetSeed())
	runRender(lp.ctx, p, "", true)
}

func runViewer(logger *log.Logger, f frames) {
	driver.Main(func(s screen.Screen) {
		rect := f.Image().Bounds()
		winSize := image.Point{min(rect.Dx(), maxWinW), min(rect.Dy(), maxWinH)}

		w, err := s.NewWindow(&screen.NewWindowOptions{
			Width:  winSize.X,
			Height: winSize.Y,
		})
		if err != nil {
			logger.Error("Cannot open window", "err", err)
			return
		}
		defer w.Release()

		var sz size.Event
		for {
			switch e := w.NextEvent().(type) {
			case key.Event:
				if e.Direction != key.DirPress {
					continue
				}
				switch e.Code {
				case key.CodeEscape, key.CodeQ:
					return
				case key.CodeRightArrow:
					f.Step(1)
					w.Send(paint.Event{})
				case key.CodeLeftArrow:
					f.Step(-1)
					w.Send(paint.Event{})
				case key.CodeS:
					f.Save()
				}

			case paint.Event:
				if err := paintFrame(s, w, f.Image(), sz); err != nil {
					logger.Error("Paint", "err", err)
					return
				}

			case size.Event:
				sz = e

			case lifecycle.Event:
				if e.To == lifecycle.StageDead {
					return
				}

			case error:
				logger.Error("Screen", "err", e)
				return
			}
		}
	})
}

func paintFrame(s screen.Screen, w screen.Window, img image.Image, sz size.Event) error {
	win := sz.Size()
	if win.X <= 0 || win.Y <= 0 {
		return nil
	}
	fitted := fitImage(img, win)
	b, err := s.NewBuffer(fitted.Bounds().Size())
	if err != nil {
		return err
	}
	defer b.Release()

	draw.Draw(b.RGBA(), b.Bounds(), fitted, fitted.Bounds().Min, draw.Src)
	w.Fill(sz.Bounds(), color.Black, draw.Src)
	w.Upload(blobposter.VpCenter(fitted, win.X, win.Y), b, b.Bounds())
	w.Publish()
	return nil
}

// fitImage scales img down, keeping its aspect ratio, until it fits in win.
func fitImage(img image.Image, win image.Point) image.Image {
	r := img.Bounds()
	if r.Dx() <= win.X && r.Dy() <= win.Y {
		return img
	}
	scale := min(float64(win.X)/float64(r.Dx()), float64(win.Y)/float64(r.Dy()))
	dst := image.NewRGBA(image.Rect(0, 0,
		max(1, int(float64(r.Dx())*scale)),
		max(1, int(float64(r.Dy())*scale))))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, r, draw.Src, nil)
	return dst
}

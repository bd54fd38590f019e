package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/scottkirkwood/blobposter"
	"github.com/scottkirkwood/blobposter/render"
	"github.com/scottkirkwood/blobposter/scene"
)

type renderOpts struct {
	poster  posterFlags
	output  string
	stamp   bool
	padding float64
}

func newRenderCmd() *cobra.Command {
	var opts renderOpts
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a poster to a 300 DPI PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.padding < 0 {
				return fmt.Errorf("padding must not be negative, got %v", opts.padding)
			}
			p, err := opts.poster.params(cmd)
			if err != nil {
				return err
			}
			_, err = runRender(cmd.Context(), p, opts.output, opts.stamp, render.WithPadding(opts.padding))
			return err
		},
	}
	opts.poster.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", render.DefaultFilename, "output file")
	cmd.Flags().BoolVar(&opts.stamp, "stamp", false, "name the file poster-<git hash>-<0x seed>.png instead")
	cmd.Flags().Float64Var(&opts.padding, "padding", render.DefaultPadding, "border around the cropped poster, in inches")
	return cmd
}

// runRender composes p, exports it and returns the file written.
func runRender(ctx context.Context, p scene.Params, output string, stamp bool, opts ...render.ExportOption) (string, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	seed := seedFor(p)
	s := compose(p, seed)
	report := render.Diagnose(s)
	logger.Debug("Composed scene", "blobs", report.Blobs, "hearts", report.Hearts, "self_intersecting", report.SelfIntersecting)
	if !seed.IsFixed() {
		logger.Info("Unseeded poster", "reproduce_with", seed.GetSeed())
	}

	write := func(w io.Writer) error { return render.ExportPNG(w, s, opts...) }
	var err error
	if stamp {
		output, err = seed.SafeWrite("poster-", ".png", write)
	} else {
		err = blobposter.SafeWrite(output, write)
	}
	if err != nil {
		logger.Error("Problem saving", "file", output, "err", err)
		return output, err
	}
	prog.done("Saved "+output, "poster", describe(p))
	return output, nil
}

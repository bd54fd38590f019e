package main

import (
	"errors"
	"hash/crc64"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/scottkirkwood/blobposter/render"
)

func newWatchCmd() *cobra.Command {
	var opts renderOpts
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render the poster whenever the config file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.poster.config == "" {
				return errors.New("watch needs --config")
			}
			return runWatch(cmd, &opts)
		},
	}
	opts.poster.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", render.DefaultFilename, "output file")
	cmd.Flags().BoolVar(&opts.stamp, "stamp", false, "keep every version as poster-<git hash>-<0x seed>.png")
	return cmd
}

func runWatch(cmd *cobra.Command, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	target, err := filepath.Abs(opts.poster.config)
	if err != nil {
		return err
	}
	// watch the folder, editors often replace the file rather than write it
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}
	logger.Info("Watching", "file", target)

	w := &fileWatch{crc: fileChecksum(target)}
	rerender(cmd, opts)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !w.changed(target) {
				logger.Debug("File unchanged", "file", target)
				continue
			}
			rerender(cmd, opts)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher", "err", err)
		}
	}
}

// rerender logs failures instead of returning them so a typo in the file
// does not stop the watch.
func rerender(cmd *cobra.Command, opts *renderOpts) {
	logger := loggerFromContext(cmd.Context())
	p, err := opts.poster.params(cmd)
	if err != nil {
		logger.Error("Bad parameters", "err", err)
		return
	}
	runRender(cmd.Context(), p, opts.output, opts.stamp)
}

type fileWatch struct {
	crc uint64
}

func (w *fileWatch) changed(fname string) bool {
	sum := fileChecksum(fname)
	if sum == w.crc {
		return false
	}
	w.crc = sum
	return true
}

func fileChecksum(fname string) uint64 {
	data, err := os.ReadFile(fname)
	if err != nil {
		return 0
	}
	return crc64.Checksum(data, crc64.MakeTable(crc64.ECMA))
}

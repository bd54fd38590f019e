// blobposter draws posters of wobbly blobs and small hearts.
//
// Usage:
//
//	blobposter render [-o poster.png] [--stamp]   - write a 300 DPI PNG
//	blobposter serve [--addr :8080]               - serve posters over HTTP
//	blobposter watch --config poster.yaml         - re-render when the file changes
//	blobposter view [poster.png ...]              - show a preview window
//
// Poster flags (all commands): --style A|B, --config file, --seed N|none,
// --blobs, --hearts, --points, --min-radius, --max-radius, --wobble,
// --wobble-low, --wobble-high, --irregularity, --width, --height.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "blobposter",
		Short:        "Blob & heart poster generator",
		Long:         "blobposter generates decorative posters of radially wobbled blobs with small hearts on top, in two styles: A (harmonic blobs) and B (ripple blobs).",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newWatchCmd())
	root.AddCommand(newViewCmd())
	return root
}

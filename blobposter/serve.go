package main

import (
	"context"
	"errors"
	"net/http"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/scottkirkwood/blobposter/server"
)

func newServeCmd() *cobra.Command {
	var (
		addr    string
		renders int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve posters over HTTP",
		Long:  "Serve /poster.png (download) and /preview.png (inline). Query parameters use the config file keys, e.g. /poster.png?style=b&seed=123&blobs=9.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr, server.WithRenderLimit(renders, 4*renders))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().IntVar(&renders, "renders", runtime.NumCPU(), "posters rendered at once; more requests queue, then get 429")
	return cmd
}

func runServe(ctx context.Context, addr string, opts ...server.Option) error {
	logger := loggerFromContext(ctx)
	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(logger, opts...).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("Listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("Stopped")
	return nil
}

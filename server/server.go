// Package server exposes poster generation over HTTP. Every request carries
// its full parameter set in the query string; nothing is kept between requests.
//
//	GET /poster.png   300 DPI export, served as a poster.png download
//	GET /preview.png  screen preview, shown inline
//	GET /healthz
package server

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/scottkirkwood/blobposter/config"
	"github.com/scottkirkwood/blobposter/render"
	"github.com/scottkirkwood/blobposter/scene"
)

// Server holds the logger shared by all handlers.
type Server struct {
	logger *log.Logger

	// renders run at once; up to backlog more wait, the rest get 429
	renders, backlog int
}

// Option configures a Server.
type Option func(*Server)

// WithRenderLimit caps concurrent poster renders at n with up to backlog
// requests queued behind them.
func WithRenderLimit(n, backlog int) Option {
	return func(s *Server) {
		s.renders = max(1, n)
		s.backlog = max(0, backlog)
	}
}

// New returns a Server that logs to logger. By default one render runs per
// CPU and four times as many may wait.
func New(logger *log.Logger, opts ...Option) *Server {
	s := &Server{
		logger:  logger,
		renders: runtime.NumCPU(),
		backlog: 4 * runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})
	r.Group(func(r chi.Router) {
		r.Use(s.throttle)
		r.Get("/poster.png", s.poster)
		r.Get("/preview.png", s.preview)
	})
	return r
}

// throttle bounds how many renders run at once.
func (s *Server) throttle(next http.Handler) http.Handler {
	return middleware.ThrottleBacklog(s.renders, s.backlog, 30*time.Second)(next)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("HTTP",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"took", time.Since(start).Round(time.Millisecond))
	})
}

func (s *Server) compose(w http.ResponseWriter, r *http.Request) (scene.Scene, bool) {
	p, err := ParseQuery(r.URL.Query())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, config.ErrInvalidParams) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return scene.Scene{}, false
	}
	sc, _ := scene.Compose(p, scene.NewStreams(p))
	s.logger.Debug("Composed scene", "style", p.Style, "blobs", p.NBlobs, "hearts", p.NHearts)
	return sc, true
}

func (s *Server) poster(w http.ResponseWriter, r *http.Request) {
	sc, ok := s.compose(w, r)
	if !ok {
		return
	}
	data, err := render.PNG(sc)
	if err != nil {
		s.logger.Error("Export failed", "err", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", render.DefaultFilename))
	w.Write(data)
}

func (s *Server) preview(w http.ResponseWriter, r *http.Request) {
	sc, ok := s.compose(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, render.Preview(sc)); err != nil {
		s.logger.Error("Preview failed", "err", err)
		http.Error(w, "preview failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

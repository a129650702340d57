// Package server exposes the pattern pipeline over HTTP.
//
// The API is a small JSON surface over the same Runner the CLI uses:
// compile-and-save, list, fetch, written instructions, and the SVG chart.
// Errors carry machine-readable codes that map onto HTTP statuses.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/sunnyyao/crocheo-blog/pkg/pipeline"
	"github.com/sunnyyao/crocheo-blog/pkg/store"
)

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Config configures the HTTP server.
type Config struct {
	Addr   string
	Logger *log.Logger
	Store  store.Store
	Runner *pipeline.Runner
}

// Server is the crocheo HTTP API.
type Server struct {
	cfg    Config
	logger *log.Logger
	store  store.Store
	runner *pipeline.Runner
	router chi.Router
}

// New creates a server with its routes mounted.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Runner == nil {
		cfg.Runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}
	if cfg.Store == nil {
		cfg.Store = store.NewMemoryStore()
	}

	s := &Server{
		cfg:    cfg,
		logger: cfg.Logger,
		store:  cfg.Store,
		runner: cfg.Runner,
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(s.logger))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1/patterns", func(r chi.Router) {
		r.Post("/", s.handleCreatePattern)
		r.Get("/", s.handleListPatterns)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetPattern)
			r.Get("/instructions", s.handleGetInstructions)
			r.Get("/chart.svg", s.handleGetChart)
		})
	})
	s.router = r

	return s
}

// Router returns the HTTP handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

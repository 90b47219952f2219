// Package server exposes the figure pipeline over HTTP.
//
// The server is the module's display surface: figures are rendered by the
// pipeline, recorded in a gallery store, and viewed in a browser. Artifact
// bytes are served straight from the render cache, so repeated views of the
// same figure never re-render.
//
// # Architecture
//
//	Config   - wiring: runner, gallery store, cache, logger
//	Server   - chi router + http.Server lifecycle
//	handlers - JSON API under /api, artifact bytes under /figures
//
// # Routes
//
//	GET    /healthz              - liveness
//	GET    /api/scenarios        - builtin scenario catalog
//	POST   /api/figures          - run the pipeline, store a gallery record
//	GET    /api/figures          - gallery listing (?limit=N)
//	GET    /api/figures/{id}     - one gallery record
//	DELETE /api/figures/{id}     - remove a record and its cached artifacts
//	GET    /figures/{id}.{format} - artifact bytes with the right content type
//	GET    /                     - HTML gallery page
//
// # Usage
//
//	srv := server.New(server.Config{
//		Addr:   ":8080",
//		Runner: pipeline.NewRunner(fileCache, nil, logger),
//		Store:  gallery.NewMemoryStore(),
//		Logger: logger,
//	})
//	if err := srv.ListenAndServe(ctx); err != nil {
//		// Handle startup or shutdown error
//	}
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/colplot/pkg/cache"
	"github.com/matzehuels/colplot/pkg/gallery"
	"github.com/matzehuels/colplot/pkg/pipeline"
)

const (
	// DefaultAddr is the default listen address.
	DefaultAddr = ":8080"

	// DefaultTimeout is the default per-request timeout.
	DefaultTimeout = 30 * time.Second

	// shutdownTimeout bounds graceful shutdown on context cancellation.
	shutdownTimeout = 5 * time.Second

	// maxRequestBody caps JSON request bodies at 1 MiB.
	maxRequestBody = 1 << 20
)

// Config configures a preview server.
type Config struct {
	Addr    string           // listen address (default ":8080")
	Runner  *pipeline.Runner // pipeline runner (default: null cache)
	Store   gallery.Store    // gallery store (default: in-memory)
	Cache   cache.Cache      // artifact cache for deletes (default: the runner's)
	Logger  *log.Logger      // structured logger (default: log.Default())
	Timeout time.Duration    // per-request timeout (default 30s)
}

// Server serves rendered figures over HTTP.
type Server struct {
	cfg    Config
	router chi.Router
}

// New creates a server with the given configuration. Zero-value fields are
// filled with working defaults so tests can construct a server from just a
// runner.
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Runner == nil {
		cfg.Runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}
	if cfg.Store == nil {
		cfg.Store = gallery.NewMemoryStore()
	}
	if cfg.Cache == nil {
		cfg.Cache = cfg.Runner.Cache
	}

	s := &Server{cfg: cfg}
	s.router = s.routes()
	return s
}

// routes builds the chi router with middleware and all endpoints.
func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.cfg.Logger))
	r.Use(middleware.Timeout(s.cfg.Timeout))

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/scenarios", s.handleScenarios)

	r.Route("/api/figures", func(r chi.Router) {
		r.Post("/", s.handleCreateFigure)
		r.Get("/", s.handleListFigures)
		r.Get("/{id}", s.handleGetFigure)
		r.Delete("/{id}", s.handleDeleteFigure)
	})

	r.Get("/figures/{id}.{format}", s.handleArtifact)
	r.Get("/", s.handleIndex)

	return r
}

// Handler returns the server's HTTP handler, for embedding and tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server until the context is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	s.cfg.Logger.Info("server listening", "addr", s.cfg.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		s.cfg.Logger.Info("server stopped")
		return nil
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
		}
		return nil
	}
}

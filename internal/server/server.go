// Package server exposes the grid engine over HTTP for the browser
// client. The API is session-scoped: each client carries an opaque
// session id in the X-Moodgrid-Session header, and the server keeps the
// active preset and swap ledger for that session in a session.Store.
package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/brandsmith/moodgrid/pkg/board"
	"github.com/brandsmith/moodgrid/pkg/cache"
	"github.com/brandsmith/moodgrid/pkg/catalog"
	"github.com/brandsmith/moodgrid/pkg/session"
)

// SessionHeader carries the client's session id on every API call.
const SessionHeader = "X-Moodgrid-Session"

// artifactTTL bounds how long rendered boards stay cached. Rendering is
// deterministic, so the TTL only limits disk growth.
const artifactTTL = 24 * time.Hour

// Config holds server settings.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// Server wires the catalog, tile registry, session store and artifact
// cache behind a chi router.
type Server struct {
	catalog  *catalog.Catalog
	registry *board.Registry
	sessions session.Store
	cache    cache.Cache
	logger   *log.Logger
	cfg      Config
}

// New creates a server. A nil cache disables artifact caching.
func New(cfg Config, cat *catalog.Catalog, reg *board.Registry, sessions session.Store, artifacts cache.Cache, logger *log.Logger) *Server {
	if artifacts == nil {
		artifacts = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	return &Server{
		catalog:  cat,
		registry: reg,
		sessions: sessions,
		cache:    artifacts,
		logger:   logger,
		cfg:      cfg,
	}
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route("/api", func(r chi.Router) {
		r.Get("/presets", s.handlePresets)
		r.Get("/board", s.handleBoard)
		r.Get("/board.svg", s.handleBoardSVG)
		r.Post("/swap", s.handleSwap)
		r.Post("/preset", s.handlePreset)
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}

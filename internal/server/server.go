// Package server exposes the gateway over HTTP: the REST routes, the
// problem+json error surface, request middleware, and the health and
// metrics endpoints.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vietddude/audition/internal/core/config"
	"github.com/vietddude/audition/internal/infra/resilience"
	"github.com/vietddude/audition/internal/infra/upstream"
)

// Server wraps the HTTP listener serving the REST API.
type Server struct {
	http *http.Server
	log  *slog.Logger
}

// New wires the router: API routes under /api/v1, plus health and
// Prometheus metrics endpoints.
func New(cfg *config.AppConfig, gateway *upstream.Gateway, breaker *resilience.Breaker, log *slog.Logger) *Server {
	h := &Handler{
		gateway:  gateway,
		breaker:  breaker,
		problems: NewProblemWriter(cfg.RateLimit),
		log:      log,
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(RequestID)
	r.Use(RequestLogger(log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/posts", h.GetPosts)
		r.Get("/posts/{id}", h.GetPostByID)
		r.Get("/posts/{postId}/comments", h.GetCommentsForPost)
		r.Get("/comments", h.GetComments)
	})
	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	return &Server{
		http: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:      r,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		log: log,
	}
}

// Start begins serving. It blocks until the listener fails or Stop is
// called.
func (s *Server) Start() error {
	s.log.Info("http server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Stop drains in-flight requests and shuts the listener down.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("http server shutting down")
	return s.http.Shutdown(ctx)
}

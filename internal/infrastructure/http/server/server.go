// Package server wires the chi router and owns the HTTP listener
// lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/mrunal1324/FOMO---Food-Mood/internal/infrastructure/config"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/infrastructure/http/handlers"
)

// Server is the HTTP server.
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
	server *http.Server
}

// NewServer builds the router and the underlying http.Server.
func NewServer(cfg *config.Config, logger *zap.Logger, api *handlers.APIHandlers) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger.Named("http"),
	}

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.router(api),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return s
}

func (s *Server) router(api *handlers.APIHandlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", api.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/recommendations", api.Recommend)
		r.Post("/audit", api.LogRequest)

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", api.GetProfile)
			r.Put("/location", api.UpdateLocation)
			r.Post("/preferences", api.UpdatePreference)
			r.Post("/weather/toggle", api.ToggleWeather)
		})
	})

	return r
}

// requestLogger logs one line per request with status and latency.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// Start begins serving. It blocks until the listener stops.
func (s *Server) Start() error {
	s.logger.Info("server starting", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server stopping")
	return s.server.Shutdown(ctx)
}

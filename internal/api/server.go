package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/hexstaking/hex-staking-indexer/internal/config"
	"github.com/hexstaking/hex-staking-indexer/internal/observability/tracing"
	"github.com/hexstaking/hex-staking-indexer/internal/services"
)

type Server struct {
	httpServer *http.Server
	handler    *Handler
}

func New(cfg *config.ApiConfig, service *services.Service) *Server {
	handler := NewHandler(service)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(tracing.Middleware)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	handler.Routes(r)

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      r,
			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: cfg.RequestTimeout,
			IdleTimeout:  2 * cfg.RequestTimeout,
		},
		handler: handler,
	}
}

// Start blocks until the server is shut down.
func (s *Server) Start() error {
	log.Info().Msgf("Starting api server on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/naka-gawa/github-insights/internal/config"
	"github.com/rs/cors"
)

// Server represents the API web server.
type Server struct {
	Logger  *log.Logger
	Config  config.Config
	handler *Handler
	server  *http.Server
}

// NewServer creates a new API server.
func NewServer(logger *log.Logger, cfg config.Config, handler *Handler) *Server {
	return &Server{
		Logger:  logger,
		Config:  cfg,
		handler: handler,
	}
}

// Routes returns the HTTP handler with CORS restricted to the configured origin.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	s.handler.RegisterRoutes(mux)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{s.Config.AllowedOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(mux)
}

// Start initializes and starts the HTTP server. It blocks until the server stops.
// No write timeout is set: an analysis lasts as long as its upstream calls.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.Config.Port),
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	s.Logger.Printf("Starting API server on port %d (allowed origin %s)", s.Config.Port, s.Config.AllowedOrigin)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Stop gracefully stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		s.Logger.Println("Shutting down API server")
		return s.server.Shutdown(ctx)
	}
	return nil
}

package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"cc-lostfound-service/internal/config"
	"cc-lostfound-service/internal/ports/inbound"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

type Server struct {
	handler    *ItemHandler
	httpServer *http.Server
	config     *config.Config
	logger     zerolog.Logger
}

type ServerParams struct {
	Config      *config.Config
	ItemService inbound.ItemService
	Logger      zerolog.Logger
}

func NewServer(params ServerParams) *Server {
	handler := NewItemHandler(ItemHandlerParams{
		ItemService:  params.ItemService,
		MaxBodyBytes: params.Config.HTTP.MaxBodyBytes,
		Logger:       params.Logger,
	})

	router := chi.NewRouter()
	router.Use(requestLogger(params.Logger))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	router.Get("/", handler.Root)
	router.Route("/items", func(r chi.Router) {
		r.Post("/", handler.Create)
		r.Get("/", handler.Search)
		r.Post("/{id}/claim", handler.Claim)
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", params.Config.Server.Host, params.Config.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		handler:    handler,
		httpServer: httpServer,
		config:     params.Config,
		logger:     params.Logger.With().Str("component", "rest_server").Logger(),
	}
}

// Handler returns the server's root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info().Str("port", s.config.Server.Port).Msg("Starting HTTP server")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info().Msg("Stopping HTTP server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info().Msg("HTTP server stopped")
	return nil
}

// requestLogger logs each request with its method, path, status and duration.
func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", sw.status).
				Dur("duration", time.Since(start)).
				Msg("Request handled")
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

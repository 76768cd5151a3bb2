// Package api - Thin HTTP layer over the tariff engine
// The API is ONLY responsible for: input ingestion, engine calls, output serialization.
// The API NEVER prices or ranks anything itself.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"tariff-compare/core/engine"
	"tariff-compare/internal/errors"
	"tariff-compare/internal/logging"
)

// Server is the API server
type Server struct {
	engine   *engine.Engine
	router   chi.Router
	version  string
	currency string
	logger   *zap.Logger
}

// Option configures a Server
type Option func(*Server)

// WithLogger sets the request logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithCurrency sets the currency reported with rankings
func WithCurrency(code string) Option {
	return func(s *Server) { s.currency = code }
}

// NewServer creates a new API server
func NewServer(version string, eng *engine.Engine, opts ...Option) *Server {
	s := &Server{
		engine:   eng,
		router:   chi.NewRouter(),
		version:  version,
		currency: "EUR",
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.OrNop(s.logger)

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	r := s.router
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)

	r.Get("/vendors", s.handleVendors)
	r.Route("/vendors/custom", func(r chi.Router) {
		r.Get("/", s.handleCustomVendors)
		r.Post("/", s.handleAddVendor)
		r.Put("/{index}", s.handleReplaceVendor)
		r.Delete("/{index}", s.handleRemoveVendor)
	})

	r.Get("/rank", s.handleRank)
	r.Get("/ladder", s.handleLadder)
	r.Post("/import", s.handleImport)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "tariff-compare",
		"api_version": "v1",
	}, http.StatusOK)
}

// writeJSON encodes data before touching the response so an encoding
// failure still reaches the client as a 500 error envelope.
func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	body, err := json.Marshal(data)
	if err != nil {
		s.logger.Error("encode response", zap.Error(err))
		e := errors.Internal("encode response", err)
		body, _ = json.Marshal(ErrorResponse{Code: string(e.Type), Message: e.Message})
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		s.logger.Warn("write response", zap.Error(err))
	}
}

// writeError maps domain errors onto status codes
func (s *Server) writeError(w http.ResponseWriter, err error) {
	resp := ErrorResponse{Code: string(errors.TypeInternal), Message: err.Error()}
	status := http.StatusInternalServerError

	if e, ok := errors.As(err); ok {
		resp.Code = string(e.Type)
		resp.Message = e.Message
		resp.Context = e.Context
		switch e.Type {
		case errors.TypeFormat, errors.TypeInput:
			status = http.StatusBadRequest
		case errors.TypeNotFound:
			status = http.StatusNotFound
		}
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	s.writeJSON(w, resp, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

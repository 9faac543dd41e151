package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/dshills/archon/internal/config"
	"github.com/dshills/archon/internal/review"
)

// Reviewer runs the review pipeline for one document.
type Reviewer interface {
	Review(ctx context.Context, in review.ArchitectureInput, opts review.Options) (review.ArchitectureReview, error)
}

// Store reads stored reviews.
type Store interface {
	FindByID(id string) (review.ArchitectureReview, bool)
	FindAll() []review.ArchitectureReview
}

// Server serves the review API over HTTP/1.1 and cleartext HTTP/2.
type Server struct {
	httpServer *http.Server
	reviewer   Reviewer
	reviews    Store
	logger     *slog.Logger
	origin     string
}

// New returns a server listening on cfg.Addr. A nil logger uses slog.Default.
func New(cfg config.ServerConfig, reviewer Reviewer, reviews Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		reviewer: reviewer,
		reviews:  reviews,
		logger:   logger,
		origin:   cfg.FrontendURL,
	}
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2c.NewHandler(s.Handler(), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the routed API with CORS and request logging applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/reviews", s.handleCreateReview)
	mux.HandleFunc("GET /api/reviews", s.handleListReviews)
	mux.HandleFunc("GET /api/reviews/{id}", s.handleGetReview)
	mux.HandleFunc("GET /health", s.handleHealth)
	return requestLog(s.logger, cors(s.origin, mux))
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.httpServer.Addr }

// Start listens until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("starting API server", "addr", s.httpServer.Addr, "frontend", s.origin)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones until ctx
// is done.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

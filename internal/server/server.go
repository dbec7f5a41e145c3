// Package server exposes the advisor over HTTP.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-advisor/internal/logger"
	"github.com/rxtech-lab/argo-advisor/internal/types"
)

// LivenessMessage is the body of GET /.
const LivenessMessage = `Crypto Analysis API is running! Use POST /analyze with {"ticker": "BTC"}`

// VersionHeader carries the advisor version on every response.
const VersionHeader = "X-Advisor-Version"

// Analyzer produces a recommendation for a ticker.
type Analyzer interface {
	Analyze(ctx context.Context, ticker string) (types.ScoreResult, error)
}

// Server serves the advisor HTTP API.
type Server struct {
	analyzer        Analyzer
	logger          *logger.Logger
	version         string
	validate        *validator.Validate
	shutdownTimeout time.Duration

	httpServer *http.Server
	listener   net.Listener
}

// NewServer creates a server. Call Start to begin listening.
func NewServer(analyzer Analyzer, log *logger.Logger, version string, shutdownTimeout time.Duration) *Server {
	if log == nil {
		log = logger.NewNop()
	}

	return &Server{
		analyzer:        analyzer,
		logger:          log,
		version:         version,
		validate:        validator.New(),
		shutdownTimeout: shutdownTimeout,
		httpServer:      nil,
		listener:        nil,
	}
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/", s.handleLiveness).Methods(http.MethodGet)
	router.HandleFunc("/analyze", s.handleAnalyze).Methods(http.MethodPost)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return s.withRequestContext(router)
}

// Start listens on address and serves in the background. An empty address
// picks a free port.
func (s *Server) Start(address string) error {
	if address == "" {
		address = ":0"
	}

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}

	s.listener = listener
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	s.logger.Info("Advisor listening", zap.String("address", listener.Addr().String()), zap.String("version", s.version))

	return nil
}

// Stop waits for in-flight requests up to the shutdown timeout.
func (s *Server) Stop() error {
	if s.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down advisor")

	return s.httpServer.Shutdown(ctx)
}

// Address returns the listening address.
func (s *Server) Address() string {
	if s.listener == nil {
		return ""
	}

	return s.listener.Addr().String()
}

// BaseURL returns the HTTP base URL of the running server.
func (s *Server) BaseURL() string {
	return "http://" + s.Address()
}

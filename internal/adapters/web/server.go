// Package web serves the broker chat demo page and its JSON API.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/mikey/broker-monitor/internal/config"
	"github.com/mikey/broker-monitor/internal/core"
	"github.com/mikey/broker-monitor/internal/simulator"
	"github.com/mikey/broker-monitor/internal/utils"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

//go:embed static/index.html
var staticFiles embed.FS

// Processor runs a chat message through the monitoring pipeline
type Processor interface {
	Process(ctx context.Context, msg core.Message) (*core.ProcessResult, error)
}

// Server is the HTTP front end of the broker chat demo
type Server struct {
	cfg              config.ServerConfig
	maxMessageLength int
	metricsEnabled   bool
	processor        Processor
	generator        *simulator.Generator
	textProcessor    *utils.TextProcessor
	aiStatus         core.GenerativeStatus
	logger           *zap.Logger
	now              func() time.Time

	mu         sync.Mutex
	httpServer *http.Server
	listener   net.Listener
}

// NewServer creates a new HTTP front end
func NewServer(
	cfg config.ServerConfig,
	monitorCfg config.MonitorConfig,
	metricsEnabled bool,
	processor Processor,
	generator *simulator.Generator,
	textProcessor *utils.TextProcessor,
	aiStatus core.GenerativeStatus,
	logger *zap.Logger,
) *Server {
	return &Server{
		cfg:              cfg,
		maxMessageLength: monitorCfg.MaxMessageLength,
		metricsEnabled:   metricsEnabled,
		processor:        processor,
		generator:        generator,
		textProcessor:    textProcessor,
		aiStatus:         aiStatus,
		logger:           logger,
		now:              time.Now,
	}
}

// Handler returns the routed and instrumented HTTP handler
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /{$}", s.instrument("/", http.HandlerFunc(s.handleIndex)))
	mux.Handle("POST /process", s.instrument("/process", http.HandlerFunc(s.handleProcess)))
	mux.Handle("GET /simulate", s.instrument("/simulate", http.HandlerFunc(s.handleSimulate)))
	mux.Handle("GET /health", s.instrument("/health", http.HandlerFunc(s.handleHealth)))
	if s.metricsEnabled {
		mux.Handle("GET /metrics", promhttp.Handler())
	}
	return mux
}

// Start binds the listener and serves in the background
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.httpServer != nil {
		return errors.New("server already started")
	}

	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr(), err)
	}

	s.listener = ln
	s.httpServer = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	s.logger.Info("Starting broker chat server",
		zap.String("address", ln.Addr().String()),
		zap.Bool("metrics", s.metricsEnabled),
		zap.Bool("google_ai", s.aiStatus.Available()))

	srv := s.httpServer
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server stopped unexpectedly", zap.Error(err))
		}
	}()

	return nil
}

// Stop gracefully shuts the server down
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.logger.Info("Stopping broker chat server")
	err := s.httpServer.Shutdown(ctx)
	s.httpServer = nil
	s.listener = nil
	if err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	return nil
}

// Addr returns the bound address, or nil before Start
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

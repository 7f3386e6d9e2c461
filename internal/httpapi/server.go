// Package httpapi exposes the planning services over JSON/HTTP.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/alexanderramin/workplan/internal/service"
	"github.com/google/uuid"
)

// DefaultMaxBodyBytes bounds request bodies. Plans are small; exports are the
// largest payload.
const DefaultMaxBodyBytes int64 = 4 << 20

// Settings controls the listener and transport policy.
type Settings struct {
	Addr           string
	AllowedOrigins []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxBodyBytes   int64
}

// DefaultSettings mirrors the origins the browser client is served from.
func DefaultSettings() Settings {
	return Settings{
		Addr: "127.0.0.1:8000",
		AllowedOrigins: []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"https://workplanmvp.onrender.com",
		},
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}

// Services is the use-case graph the handlers call into.
type Services struct {
	Chat    service.ChatService
	Suggest service.SuggestService
	Export  service.ExportService
}

// Server owns the HTTP listener and routes.
type Server struct {
	settings Settings
	services Services
	logger   *slog.Logger
	newID    func() string

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
}

// Option customizes server construction.
type Option func(*Server)

// WithLogger overrides the default discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRequestIDs replaces the uuid request id generator.
func WithRequestIDs(gen func() string) Option {
	return func(s *Server) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// NewServer prepares a server; call Start to listen or Handler to mount it.
func NewServer(settings Settings, services Services, opts ...Option) *Server {
	if settings.MaxBodyBytes <= 0 {
		settings.MaxBodyBytes = DefaultMaxBodyBytes
	}
	s := &Server{
		settings: settings,
		services: services,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Handler returns the routed handler with CORS, request ids and access
// logging applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ai/generate-milestones", s.handleGenerateMilestones)
	mux.HandleFunc("/ai/generate-tasks", s.handleGenerateTasks)
	mux.HandleFunc("/ai/chat", s.handleChat)
	mux.HandleFunc("/export/excel", s.handleExport)
	mux.HandleFunc("/voice/transcribe", s.handleVoice)

	return s.withRequestID(s.withAccessLog(s.withCORS(mux)))
}

// Start binds the listener and serves in the background.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return fmt.Errorf("httpapi: server already started")
	}
	listener, err := net.Listen("tcp", s.settings.Addr)
	if err != nil {
		return fmt.Errorf("httpapi: listen %s: %w", s.settings.Addr, err)
	}
	server := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.settings.ReadTimeout,
		WriteTimeout: s.settings.WriteTimeout,
		IdleTimeout:  s.settings.IdleTimeout,
	}
	if ctx != nil {
		server.BaseContext = func(net.Listener) context.Context { return ctx }
	}
	s.listener = listener
	s.server = server
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("serve failed", "error", err)
		}
	}()
	s.logger.Info("listening", "addr", listener.Addr().String())
	return nil
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.server == nil {
		return nil
	}
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.listener = nil
	s.server = nil
	return nil
}

// Addr returns the bound address once started.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// BaseURL returns scheme and host:port of the running server.
func (s *Server) BaseURL() string {
	addr := s.Addr()
	if addr == "" {
		return ""
	}
	return "http://" + addr
}

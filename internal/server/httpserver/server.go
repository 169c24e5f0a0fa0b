package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fleetdesk/fleetdesk-go/internal/telemetry/logger"
)

// Config holds the server listener settings.
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server wraps http.Server with lifecycle management.
type Server struct {
	httpServer *http.Server
	log        logger.Logger
}

// New creates a Server serving the given handler.
func New(cfg Config, h http.Handler, log logger.Logger) *Server {
	if log == nil {
		log = logger.Default()
	}

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Addr,
			Handler:      h,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		log: log,
	}
}

// Start begins serving and blocks until the listener stops. A graceful
// shutdown is not reported as an error.
func (s *Server) Start() error {
	s.log.Info("http server starting", "addr", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server, waiting for in-flight requests
// up to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("http server shutting down")
	return s.httpServer.Shutdown(ctx)
}

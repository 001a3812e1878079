package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Server wraps one listener's http.Server so the process can start and stop
// all its listeners uniformly.
type Server struct {
	name       string
	httpServer *http.Server
	logger     *logrus.Logger
}

func NewServer(name string, port int, handler http.Handler, logger *logrus.Logger) *Server {
	return &Server{
		name: name,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      handler,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		logger: logger,
	}
}

// Name identifies the listener in logs and errors.
func (s *Server) Name() string { return s.name }

// Addr returns the configured bind address.
func (s *Server) Addr() string { return s.httpServer.Addr }

// Start blocks in ListenAndServe until Shutdown is called or the listener
// fails. A closed-server return is not an error.
func (s *Server) Start() error {
	s.logger.WithFields(logrus.Fields{
		"listener": s.name,
		"addr":     s.httpServer.Addr,
	}).Info("starting HTTP listener")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s listener: %w", s.name, err)
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.WithField("listener", s.name).Info("shutting down HTTP listener")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s listener shutdown: %w", s.name, err)
	}
	return nil
}

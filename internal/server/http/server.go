// Package http serves the onboarding REST API with fiber.
package http

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/dmitrijs2005/gophgate/internal/logging"
	"github.com/dmitrijs2005/gophgate/internal/server/metrics"
	"github.com/dmitrijs2005/gophgate/internal/server/services"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address  string
	app      *fiber.App
	users    *services.UserService
	logger   logging.Logger
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
}

// NewHTTPServer builds the fiber app and registers all routes. gatherer
// backs GET /metrics and may be nil to leave the route out.
func NewHTTPServer(address string, l logging.Logger, us *services.UserService, m *metrics.Metrics,
	gatherer prometheus.Gatherer) *HTTPServer {

	s := &HTTPServer{
		address:  address,
		users:    us,
		logger:   l.With("module", "http_server"),
		metrics:  m,
		gatherer: gatherer,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "gophgate",
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})
	s.setupRoutes()

	return s
}

// App exposes the fiber app, mainly for app.Test in tests.
func (s *HTTPServer) App() *fiber.App {
	return s.app
}

// Run listens on the configured address until ctx is cancelled, then
// shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve is Run on an existing listener.
func (s *HTTPServer) Serve(ctx context.Context, listen net.Listener) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
		case <-done:
			return
		}
		s.logger.Info(ctx, "Stopping HTTP server...")
		if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			s.logger.Error(ctx, "HTTP shutdown failed", "error", err)
		}
		// Shutdown only closes listeners fiber has started serving.
		_ = listen.Close()
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := s.app.Listener(listen); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}

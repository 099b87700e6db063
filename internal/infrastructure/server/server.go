package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/rios0rios0/repograde/internal/domain/entities"
)

const readHeaderTimeout = 10 * time.Second

// Server serves the API over HTTP/1.1 and cleartext HTTP/2.
type Server struct {
	handler         http.Handler
	shutdownTimeout time.Duration
}

// NewServer creates a server around the API router.
func NewServer(router *Router, settings *entities.Settings) *Server {
	return &Server{
		handler:         router,
		shutdownTimeout: settings.Server.ShutdownTimeout,
	}
}

// Run listens on addr and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled, then drains
// in-flight requests for at most the shutdown timeout.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	//nolint:exhaustruct // Minimal Server initialization with required fields only
	httpServer := &http.Server{
		Handler:           h2c.NewHandler(s.handler, &http2.Server{}),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Infof("Starting API server on %s", listener.Addr())
		serveErr <- httpServer.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Infof("Shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down API server: %w", err)
	}
	return nil
}

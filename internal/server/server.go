// Package server exposes the truthtable library over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/woozymasta/truthtable/internal/config"
)

// Server wraps an echo instance with the API routes installed.
type Server struct {
	Echo *echo.Echo

	cfg    config.ServerConfig
	table  config.TableConfig
	logger *slog.Logger
}

// New builds a Server from cfg. A nil logger uses slog.Default.
func New(cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.DisableHTTP2 = !cfg.Server.UseHTTP2

	s := &Server{
		Echo:   e,
		cfg:    cfg.Server,
		table:  cfg.Table,
		logger: logger,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares installs recovery, request IDs, logging, CORS and
// the body limit.
func (s *Server) setupMiddlewares() {
	s.Echo.Use(middleware.Recover())
	s.Echo.Use(RequestID())
	s.Echo.Use(Logger(s.logger))
	s.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.cfg.CorsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))
	if s.cfg.BodyLimit != "" {
		s.Echo.Use(middleware.BodyLimit(s.cfg.BodyLimit))
	}
}

// setupRoutes registers the health check and the /v1 API.
func (s *Server) setupRoutes() {
	s.Echo.GET("/health", s.health)

	v1 := s.Echo.Group("/v1")
	v1.POST("/tokens", s.tokens)
	v1.POST("/ast", s.ast)
	v1.POST("/eval", s.eval)
	v1.POST("/table", s.truthTable)
	v1.POST("/check", s.check)
}

// Start serves until ctx is canceled or the process receives SIGINT or
// SIGTERM, then shuts down within the configured timeout.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + s.cfg.Port
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", addr)
		if err := s.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down the server", "timeout", s.cfg.ShutdownTimeout.Duration)
	sctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout.Duration)
	defer cancel()

	if err := s.Echo.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	return nil
}

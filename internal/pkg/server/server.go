package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pradipta/paystream/internal/pkg/logger"
	"github.com/sirupsen/logrus"
)

// GracefulServer wraps Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.AppLogger
	port            int
	shutdownTimeout time.Duration
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, appLogger *logger.AppLogger, port int, shutdownTimeout time.Duration) *GracefulServer {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	return &GracefulServer{
		echo:            e,
		logger:          appLogger,
		port:            port,
		shutdownTimeout: shutdownTimeout,
	}
}

// Start starts the server and blocks until a shutdown signal is received
func (s *GracefulServer) Start() error {
	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.WithFields(logrus.Fields{"address": addr}).Info("starting HTTP server")

		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			s.logger.WithFields(logrus.Fields{"error": err.Error()}).Fatal("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	// Kill signal sent from terminal (Ctrl+C)
	// SIGTERM signal sent from Kubernetes or Docker
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Block until signal is received
	sig := <-quit
	s.logger.WithFields(logrus.Fields{"signal": sig.String()}).Info("received shutdown signal")

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.WithFields(logrus.Fields{"error": err.Error()}).Error("server forced to shutdown")
		return err
	}

	s.logger.Info("server shutdown completed")
	return nil
}

// ShutdownManager provides a way to register cleanup functions
type ShutdownManager struct {
	logger    *logger.AppLogger
	functions []func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(appLogger *logger.AppLogger) *ShutdownManager {
	return &ShutdownManager{
		logger:    appLogger,
		functions: make([]func(context.Context) error, 0),
	}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(fn func(context.Context) error) {
	sm.functions = append(sm.functions, fn)
}

// Shutdown executes all registered cleanup functions
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	sm.logger.WithFields(logrus.Fields{"components": len(sm.functions)}).Info("starting graceful shutdown of components")

	for i, fn := range sm.functions {
		if err := fn(ctx); err != nil {
			sm.logger.WithFields(logrus.Fields{
				"component": i,
				"error":     err.Error(),
			}).Error("error during component shutdown")
			// Continue with other components even if one fails
		}
	}

	sm.logger.Info("all components shutdown completed")
	return nil
}

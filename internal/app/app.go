package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amaumene/reviewer/internal/config"
	"github.com/amaumene/reviewer/internal/handler"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const (
	shutdownTimeout = 10 * time.Second
	readTimeout     = 30 * time.Second
	writeTimeout    = 30 * time.Second
)

type App struct {
	cfg    config.Config
	addr   string
	server *fiber.App
}

func New(cfg config.Config, addr string) *App {
	server := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
		ReadTimeout:           readTimeout,
		WriteTimeout:          writeTimeout,
	})
	handler.NewHTTPHandler(cfg).RegisterRoutes(server)

	return &App{
		cfg:    cfg,
		addr:   addr,
		server: server,
	}
}

// Handler exposes the underlying fiber app, mainly for tests.
func (a *App) Handler() *fiber.App {
	return a.server
}

// Run serves until ctx is cancelled or a shutdown signal arrives. Run owns
// the listener and closes it on return, even if serving never started.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ln, err := net.Listen("tcp", a.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", a.addr, err)
	}
	defer ln.Close()

	errChan := make(chan error, 1)
	go a.startServer(ln, errChan)

	return a.waitForShutdown(ctx, errChan)
}

func (a *App) startServer(ln net.Listener, errChan chan<- error) {
	log.WithFields(log.Fields{
		"component": "server",
		"app":       a.cfg.App.Name,
		"address":   ln.Addr().String(),
	}).Info("http server listening")

	if err := a.server.Listener(ln); err != nil && !errors.Is(err, net.ErrClosed) {
		errChan <- fmt.Errorf("serving on %s: %w", ln.Addr(), err)
	}
}

func (a *App) waitForShutdown(ctx context.Context, errChan <-chan error) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		log.WithField("reason", "context_cancelled").Info("initiating graceful shutdown")
	case sig := <-sigChan:
		log.WithField("signal", sig).Info("received shutdown signal")
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	log.Info("graceful shutdown started")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.ShutdownWithContext(shutdownCtx); err != nil {
		log.WithFields(log.Fields{
			"component": "server",
			"error":     err,
		}).Error("http server shutdown failed")
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("graceful shutdown completed")
	return nil
}

package server

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"FinSignal/internal/usecase"
	"FinSignal/pkg/config"
	xhttp "FinSignal/pkg/http"
	applogger "FinSignal/pkg/logger"
)

// NotificationWaiter blocks until in-flight change notifications finish.
type NotificationWaiter interface {
	Wait()
}

// PushCloser closes connected push clients.
type PushCloser interface {
	Close(ctx context.Context) error
}

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	httpServer *xhttp.Server
	dashboard  NotificationWaiter
	watcher    *usecase.Watcher
	hub        PushCloser
}

// New creates a new App instance with all dependencies. watcher may be nil.
func New(
	cfg *config.Config,
	logger *applogger.Logger,
	httpServer *xhttp.Server,
	dashboard NotificationWaiter,
	watcher *usecase.Watcher,
	hub PushCloser,
) *App {
	return &App{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
		dashboard:  dashboard,
		watcher:    watcher,
		hub:        hub,
	}
}

// Run starts the application and blocks until interrupted or the HTTP
// listener fails.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.RunContext(ctx)
}

// RunContext is Run with caller-controlled cancellation.
func (a *App) RunContext(ctx context.Context) error {
	errCh := a.httpServer.Start()

	if a.watcher != nil {
		a.watcher.Start(ctx)
	}

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err, ok := <-errCh:
		if ok && err != nil {
			a.logger.Error("http server error", applogger.Error(err))
			runErr = err
		}
	}

	return errors.Join(runErr, a.shutdown())
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	a.logger.Info("shutting down...")

	if a.watcher != nil {
		a.watcher.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout())
	defer cancel()

	var errs []error
	if err := a.httpServer.Stop(ctx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		errs = append(errs, err)
	}

	// let in-flight notifications reach their sinks before clients close
	done := make(chan struct{})
	go func() {
		if a.dashboard != nil {
			a.dashboard.Wait()
		}
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		a.logger.Warn("notifications still in flight at shutdown")
	}

	if a.hub != nil {
		_ = a.hub.Close(ctx)
	}

	a.logger.Info("shutdown complete")
	return errors.Join(errs...)
}

func (a *App) shutdownTimeout() time.Duration {
	if a.cfg != nil && a.cfg.Server.ShutdownTimeout > 0 {
		return a.cfg.Server.ShutdownTimeout
	}
	return 10 * time.Second
}

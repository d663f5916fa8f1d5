package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/phrazzld/tasks-api/internal/config"
)

// runServer opens the pool, optionally migrates, and serves HTTP until
// SIGINT or SIGTERM. Shutdown drains in-flight requests, then closes the pool.
func runServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, migrate bool) error {
	db, err := openDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}

	if migrate {
		if err := applyMigrations(ctx, db, logger, "up"); err != nil {
			_ = db.Close()
			return err
		}
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		_ = db.Close()
		return err
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           app.setupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Bind before serving so an unavailable port fails the command.
	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		_ = app.cleanup()
		return fmt.Errorf("failed to listen on %s: %w", server.Addr, err)
	}

	return serve(ctx, server, listener, app, logger,
		time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
}

// serve runs server on listener until a signal arrives, ctx is done, or
// Serve itself fails. A Serve failure still drains the shutdown operations
// and is returned so the command exits non-zero.
func serve(
	ctx context.Context,
	server *http.Server,
	listener net.Listener,
	app *application,
	logger *slog.Logger,
	timeout time.Duration,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", listener.Addr().String())
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			serveErr <- err
			cancel()
		}
	}()

	wait := gfshutdown.GracefulShutdown(ctx, timeout, map[string]gfshutdown.Operation{
		"http-server": func(ctx context.Context) error {
			logger.Info("shutting down server")
			if err := server.Shutdown(ctx); err != nil {
				return err
			}
			return app.cleanup()
		},
	})

	exitCode := <-wait

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	default:
	}

	if exitCode != 0 {
		return fmt.Errorf("shutdown completed with exit code %d", exitCode)
	}
	logger.Info("server shutdown completed")
	return nil
}

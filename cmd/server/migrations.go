package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/postgres"
)

// migrationTimeout bounds a single migrate invocation.
const migrationTimeout = 2 * time.Minute

// runMigrations opens a dedicated connection and runs one goose command.
func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger, command string) error {
	db, err := openDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("failed to close database connection", "error", closeErr)
		}
	}()

	return applyMigrations(ctx, db, logger, command)
}

// applyMigrations runs command on an already open pool. Each run is tagged
// with a run_id so its goose output can be told apart in aggregated logs.
func applyMigrations(ctx context.Context, db *sql.DB, logger *slog.Logger, command string) error {
	log := logger.With(slog.String("run_id", uuid.NewString()))

	ctx, cancel := context.WithTimeout(ctx, migrationTimeout)
	defer cancel()

	start := time.Now()
	log.Info("running migrations", "command", command)

	if err := postgres.Migrate(ctx, db, command, log); err != nil {
		log.Error("migrations failed", "command", command, "error", err)
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	log.Info("migrations finished", "command", command, "duration", time.Since(start))
	return nil
}

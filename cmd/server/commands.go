package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/platform/postgres"
	"github.com/phrazzld/tasks-api/internal/service/auth"
	"github.com/spf13/cobra"
)

// configPath is set by the persistent --config flag.
var configPath string

var rootCmd = &cobra.Command{
	Use:   "tasks-api",
	Short: "Personal task management API",
	Long: `tasks-api serves a JSON API for creating, listing, editing, and deleting
personal to-do items. Every task belongs to exactly one user identity, taken
from a bearer token issued by an external authentication provider.

Configuration is read from tasks.yaml (optional) and TASKS_* environment
variables. DATABASE_URL is required.`,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		migrate, _ := cmd.Flags().GetBool("migrate")

		cfg, log, err := loadConfigAndLogger()
		if err != nil {
			return err
		}
		return runServer(cmd.Context(), cfg, log, migrate)
	},
}

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status|version|reset]",
	Short:     "Run database migrations",
	Long:      "Run a goose migration command against DATABASE_URL using the migrations embedded in the binary.",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: postgres.MigrationCommands,
	RunE: func(cmd *cobra.Command, args []string) error {
		command := "up"
		if len(args) == 1 {
			command = args[0]
		}

		cfg, log, err := loadConfigAndLogger()
		if err != nil {
			return err
		}
		return runMigrations(cmd.Context(), cfg, log, command)
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a signed identity token for local development",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")

		cfg, err := config.LoadFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		token, err := issueToken(cmd.Context(), cfg.Auth, userID)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (default: ./tasks.yaml if present)")

	serveCmd.Flags().Bool("migrate", false, "apply pending migrations before serving")

	tokenCmd.Flags().String("user", "", "user identity to place in the token subject")
	_ = tokenCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(serveCmd, migrateCmd, tokenCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

// loadConfigAndLogger loads configuration and installs the JSON logger.
func loadConfigAndLogger() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", maskDatabaseURL(cfg.Database.URL))
	return cfg, log, nil
}

// issueToken signs a token for userID with the configured secret.
func issueToken(ctx context.Context, cfg config.AuthConfig, userID string) (string, error) {
	jwtService, err := auth.NewJWTService(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	token, err := jwtService.GenerateToken(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

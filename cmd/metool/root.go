package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/me-tool/internal/config"
	"github.com/spec-kit/me-tool/internal/observability"
	"github.com/spec-kit/me-tool/internal/persistence"
)

// Version is set at build time via ldflags: -ldflags "-X main.Version=1.0.0"
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:           "metool",
	Short:         "M&E record keeping service",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, createUserCmd)
}

// runtimeDeps are shared by every subcommand.
type runtimeDeps struct {
	cfg    *config.Config
	logger *zap.Logger
	pg     *persistence.Postgres
}

func (d *runtimeDeps) Close() {
	d.pg.Close()
	_ = d.logger.Sync()
}

// bootstrap loads configuration, builds the logger and connects to Postgres.
func bootstrap(ctx context.Context) (*runtimeDeps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.App.Version == "dev" {
		cfg.App.Version = Version
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	if cfg.Session.UsingDefaultSecret {
		logger.Warn("No SESSION_SECRET set. This is okay in development, but must be set in production.")
	}

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return &runtimeDeps{cfg: cfg, logger: logger, pg: pg}, nil
}

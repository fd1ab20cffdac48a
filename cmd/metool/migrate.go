package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/spec-kit/me-tool/internal/persistence"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		deps, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer deps.Close()
		return persistence.RunMigrations(ctx, deps.pg.PoolHandle(), deps.logger)
	},
}

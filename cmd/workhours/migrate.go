package main

import (
	"workhours/config"
	logs "workhours/internal/infra/log"
	"workhours/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New()
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}

			logger, err := logs.NewWithWriter(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			db, err := postgres.Open(cfg, logger)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			if err := postgres.Migrate(cmd.Context(), db); err != nil {
				return err
			}

			logger.Info("Database schema is up to date", "driver", cfg.Database.Driver)

			return nil
		},
	}
}

package main

import (
	"workhours/config"
	"workhours/internal/domain/clocktime"
	"workhours/internal/infra/export"
	logs "workhours/internal/infra/log"
	"workhours/internal/infra/persistence/postgres"
	"workhours/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type exportOptions struct {
	owner string
	from  string
	to    string
}

func newExportCmd() *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write an owner's CSV work report for a date range to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ownerID, err := uuid.Parse(opts.owner)
			if err != nil {
				return errors.Wrap(err, "--owner must be a uuid")
			}
			from, err := clocktime.ParseDate(opts.from)
			if err != nil {
				return errors.Wrap(err, "--from")
			}
			to, err := clocktime.ParseDate(opts.to)
			if err != nil {
				return errors.Wrap(err, "--to")
			}

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

			reports := impl.NewReportService(impl.ReportServiceParams{
				TxManager: postgres.NewTransactionManager(db),
				Exporter:  export.NewCSVExporter(),
				Config:    cfg,
				Logger:    logger,
			})

			file, err := reports.Export(cmd.Context(), ownerID, from, to)
			if err != nil {
				return err
			}

			if _, err := cmd.OutOrStdout().Write(file.Content); err != nil {
				return errors.Wrap(err, "failed to write report")
			}

			logger.Info("Report exported", "filename", file.Filename, "rows", file.Rows)

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.owner, "owner", "", "Owner id")
	cmd.Flags().StringVar(&opts.from, "from", "", "First day, YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.to, "to", "", "Last day, YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

package main

import (
	"context"

	"workhours/config"
	"workhours/internal/delivery/worker"
	workerhandler "workhours/internal/delivery/worker/handler"
	logs "workhours/internal/infra/log"
	"workhours/internal/infra/persistence/postgres"
	"workhours/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newWorkerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Consume clock session events pushed by Pub/Sub",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			app := newWorkerApp()
			if err := app.Err(); err != nil {
				return errors.Wrap(err, "failed to build worker")
			}
			app.Run()

			return nil
		},
	}
}

func newWorkerApp() *fx.App {
	return fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewTransactionManager,
			impl.NewSessionEventService,
			workerhandler.NewPushHandler,
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(startServer),
	)
}

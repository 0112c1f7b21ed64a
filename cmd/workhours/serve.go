package main

import (
	"context"
	"log/slog"
	"os"

	"workhours/config"
	"workhours/internal/delivery"
	"workhours/internal/delivery/api"
	"workhours/internal/delivery/api/middleware"
	"workhours/internal/delivery/api/router/handler"
	"workhours/internal/infra/auth"
	"workhours/internal/infra/export"
	"workhours/internal/infra/ical"
	logs "workhours/internal/infra/log"
	"workhours/internal/infra/persistence/postgres"
	"workhours/internal/infra/pubsub"
	"workhours/internal/infra/qrcode"
	"workhours/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func newServeCmd() *cobra.Command {
	var autoMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and calendar feed",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			app := newApp(autoMigrate)
			if err := app.Err(); err != nil {
				return errors.Wrap(err, "failed to build application")
			}
			app.Run()

			return nil
		},
	}

	cmd.Flags().BoolVar(&autoMigrate, "migrate", false, "Apply the schema before serving")

	return cmd
}

func newApp(autoMigrate bool) *fx.App {
	invokes := []any{startServer}
	if autoMigrate {
		invokes = append([]any{migrateOnStart}, invokes...)
	}

	return fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(invokes...),
	)
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewRandomTokenGenerator,
			qrcode.NewQRCodeServiceFromConfig,
			ical.NewRenderer,
			export.NewCSVExporter,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewWorkLogService,
			impl.NewClockService,
			impl.NewProfileService,
			impl.NewCalendarService,
			impl.NewReportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewWorkLogHandler,
			handler.NewClockHandler,
			handler.NewProfileHandler,
			handler.NewCalendarHandler,
			handler.NewReportHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func migrateOnStart(lc fx.Lifecycle, db *gorm.DB, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Applying database schema")

			return postgres.Migrate(ctx, db)
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

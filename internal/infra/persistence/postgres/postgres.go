package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"workhours/config"
	"workhours/internal/domain/constants"
	"workhours/internal/domain/lifecycle"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the database selected by config.database.driver and ties it to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping database")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects without lifecycle hooks, for CLI commands that manage the handle themselves.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case constants.DatabaseDriverSQLite:
		return OpenSQLite(cfg.Database.SQLitePath, newQueryLogger(logger, cfg))
	case constants.DatabaseDriverPostgres, "":
		if cfg.Postgres == nil {
			return nil, errors.New("postgres configuration is required for the postgres driver")
		}

		db, err := pgLib.New(cfg.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create PostgreSQL client")
		}

		return db.Session(&gorm.Session{
			// Disable GORM's per-statement implicit transaction.
			// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
			SkipDefaultTransaction: true,
			Logger:                 newQueryLogger(logger, cfg),
		}), nil
	default:
		return nil, errors.Errorf("unknown database driver: %s", cfg.Database.Driver)
	}
}

// monitorDBPool reports connection pool contention. Clock-in bursts at shift start are the
// usual cause; sustained waits mean postgres.maxOpenConns is too low.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if level, attrs, waited := poolWaitReport(prev, cur); waited {
				logger.LogAttrs(ctx, level, "Database pool wait", attrs...)
			}
			prev = cur
		}
	}
}

// poolWaitReport compares two snapshots. It reports false when no caller waited for a
// connection in between.
func poolWaitReport(prev, cur sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return slog.LevelDebug, nil, false
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= dbPoolWarnDurationThreshold {
		level = slog.LevelWarn
	}

	return level, []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	}, true
}

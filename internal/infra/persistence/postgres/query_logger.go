package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"workhours/config"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// queryLogger routes gorm output into slog. Lookups that find nothing and inserts rejected
// by a unique index are normal outcomes here (an owner without a profile, a second clock-in
// racing the first), so they are logged at DEBUG instead of ERROR.
type queryLogger struct {
	logger        *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func newQueryLogger(baseLogger *slog.Logger, cfg *config.Config) gormlogger.Interface {
	ql := &queryLogger{
		logger: baseLogger,
		level:  gormlogger.Warn,
	}
	if cfg != nil {
		if cfg.Env.Debug {
			ql.level = gormlogger.Info
		}
		ql.slowThreshold = cfg.Database.SlowQueryThreshold
	}

	return ql
}

func (l *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, args...)
}

func (l *queryLogger) printf(ctx context.Context, enabledAt gormlogger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.logger == nil || l.level < enabledAt {
		return
	}

	l.logger.LogAttrs(ctx, level, "GORM "+level.String(), slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs one finished statement. The SQL is only rendered when a line is written.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && isExpectedQueryError(err):
		if l.logger.Enabled(ctx, slog.LevelDebug) {
			l.logger.LogAttrs(ctx, slog.LevelDebug, "GORM query rejected",
				append(queryAttrs(sqlAndRowsFn, elapsed), slog.String("reason", err.Error()))...)
		}
	case err != nil && l.level >= gormlogger.Error:
		l.logger.LogAttrs(ctx, slog.LevelError, "GORM query failed",
			append(queryAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		l.logger.LogAttrs(ctx, slog.LevelWarn, "GORM slow query",
			append(queryAttrs(sqlAndRowsFn, elapsed), slog.Duration("threshold", l.slowThreshold))...)
	case l.level >= gormlogger.Info:
		l.logger.LogAttrs(ctx, slog.LevelInfo, "GORM query", queryAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func queryAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}

// isExpectedQueryError reports errors that repositories translate into domain results.
func isExpectedQueryError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || isUniqueConstraintViolation(err)
}

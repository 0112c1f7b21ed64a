package middleware

import (
	"log/slog"
	"time"

	"workhours/config"
	deliverycontext "workhours/internal/delivery/context"
	domainerrors "workhours/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoggerMiddleware writes one line per request. Failures are always logged; successful
// requests only in debug mode, since calendar clients poll the feed every few minutes.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			// The centralized error handler has not run yet; use the status it will write.
			status = statusOf(err, status)
		}

		if c.Path() == "/health" || (status < 400 && !m.debug) {
			return err
		}

		m.logRequest(c, start, status, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	// Feed URLs carry the token in the path and QR URLs in the query, so only the route
	// pattern is logged and a query string is reduced to its presence.
	route := c.Path()
	if route == "" {
		route = "unmatched"
	}

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", route),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.Bool("has_query", true))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	// The request logger already carries request_id and, once authenticated, owner_id.
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), level, "HTTP Request", attrs...)
}

func statusOf(err error, fallback int) int {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}
	if fallback < 400 {
		return 500
	}

	return fallback
}

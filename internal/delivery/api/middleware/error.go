package middleware

import (
	"log/slog"
	"net/http"

	"workhours/internal/delivery/api/response"
	deliverycontext "workhours/internal/delivery/context"
	domainerrors "workhours/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware turns errors returned by handlers into the JSON error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. Domain errors keep their code,
// echo errors (404 route, 405, body limit) become HTTP_ERROR, and anything else is a 500
// whose cause is logged but never returned.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logFailure(c, "Request failed", err)
		}
		_ = response.HandleAppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	m.logFailure(c, "Unhandled error", err)
	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}

// logFailure names the route pattern, not the URL: feed paths embed the calendar token.
func (m *ErrorMiddleware) logFailure(c echo.Context, msg string, err error) {
	req := c.Request()
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).ErrorContext(req.Context(), msg,
		slog.Any("error", err),
		slog.String("route", c.Path()),
		slog.String("method", req.Method),
	)
}

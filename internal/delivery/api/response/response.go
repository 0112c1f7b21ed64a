// Package response writes the API's JSON envelope and its two binary shapes: file downloads
// (CSV reports, QR codes) and the revalidated calendar feed.
package response

import (
	"net/http"
	"strings"

	deliverycontext "workhours/internal/delivery/context"
	domainerrors "workhours/internal/domain/errors"
	"workhours/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse wraps every JSON payload
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse wraps every JSON error
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo describes one failure
type ErrorInfo struct {
	Code    string `json:"code"`              // e.g. "ALREADY_CLOCKED_IN"
	Message string `json:"message"`           // Shown to the user
	Details any    `json:"details,omitempty"` // Field-level context, 4xx only
}

// MetaInfo carries the request id so users can quote it
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success writes data inside the envelope
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error writes an error envelope. Details are dropped for 5xx and for 401/403, where they
// could tell a caller which part of a credential was wrong.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

// BadRequest writes a 400
func BadRequest(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError writes a 400 for a body or query that could not be decoded
func BindingError(c echo.Context, errorCode, message string) error {
	return BadRequest(c, errorCode, message)
}

// Unauthorized writes a 401
func Unauthorized(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// InternalServerError writes a 500
func InternalServerError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError writes domain errors directly and hands anything else to the centralized
// error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	var details any
	if appErr.Details() != "" {
		details = appErr.Details()
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// Attachment sends body as a download named filename.
func Attachment(c echo.Context, contentType, filename string, body []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, contentDisposition(filename))

	return c.Blob(http.StatusOK, contentType, body)
}

// Private sends body with caching disabled. Used for images that embed a secret.
func Private(c echo.Context, contentType string, body []byte) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, contentType, body)
}

// Revalidated sends body as a download that clients must revalidate on every poll. The
// ETag is a digest of body; a matching If-None-Match gets 304 with no body.
func Revalidated(c echo.Context, contentType, filename string, body []byte) error {
	etag := `"` + util.Checksum(body) + `"`

	header := c.Response().Header()
	header.Set(echo.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	header.Set("Pragma", "no-cache")
	header.Set("Expires", "0")
	header.Set("ETag", etag)

	if matchesETag(c.Request().Header.Get("If-None-Match"), etag) {
		return c.NoContent(http.StatusNotModified)
	}

	return Attachment(c, contentType, filename, body)
}

func matchesETag(ifNoneMatch, etag string) bool {
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == etag || candidate == "*" {
			return true
		}
	}

	return false
}

func contentDisposition(filename string) string {
	filename = strings.NewReplacer(`"`, "", "\r", "", "\n", "").Replace(filename)

	return `attachment; filename="` + filename + `"`
}

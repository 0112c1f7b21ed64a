package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/clock/status", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestSetOwnerID_TagsRequestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	c := newEchoContext()
	base := slog.New(slog.NewJSONHandler(buf, nil)).With(slog.String("request_id", "req-1"))
	c.SetRequest(c.Request().WithContext(WithLogger(c.Request().Context(), base)))
	ownerID := uuid.New()

	SetOwnerID(c, ownerID)

	got, ok := GetOwnerID(c)
	require.True(t, ok)
	assert.Equal(t, ownerID, got)

	ctx := c.Request().Context()
	fromCtx, ok := GetOwnerIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, ownerID, fromCtx)

	GetLoggerOrDefault(ctx, slog.Default()).Info("clocked in")
	assert.Contains(t, buf.String(), `"owner_id":"`+ownerID.String()+`"`)
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
}

func TestSetOwnerID_WithoutRequestLogger(t *testing.T) {
	c := newEchoContext()
	SetOwnerID(c, uuid.New())

	assert.Nil(t, GetLogger(c.Request().Context()))
}

func TestGetOwnerID_Unauthenticated(t *testing.T) {
	c := newEchoContext()

	_, ok := GetOwnerID(c)
	assert.False(t, ok)

	c.Set(echoOwnerIDKey, uuid.Nil)
	_, ok = GetOwnerID(c)
	assert.False(t, ok)

	_, ok = GetOwnerIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()
	generated := GetRequestID(c)
	assert.NotEmpty(t, generated)
	assert.NotEqual(t, generated, GetRequestID(c))

	SetRequestID(c, "req-42")
	assert.Equal(t, "req-42", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	scoped := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

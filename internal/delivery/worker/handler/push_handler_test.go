package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "workhours/internal/delivery/context"
	domainerrors "workhours/internal/domain/errors"
	"workhours/internal/domain/service"
	mockUC "workhours/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockSessionEventUsecase) {
	uc := mockUC.NewMockSessionEventUsecase(t)

	return &PushHandler{
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessionEventUC: uc,
		verifier:       func(*http.Request) error { return nil },
	}, uc
}

func pushBody(t *testing.T, event *service.SessionEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "1"
	msg.Subscription = "projects/local/subscriptions/session-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/pubsub/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

func openedEvent() *service.SessionEvent {
	return &service.SessionEvent{
		Type:        service.EventSessionOpened,
		SessionID:   uuid.NewString(),
		OwnerID:     uuid.NewString(),
		ClockInTime: time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
		RequestID:   "event-request",
	}
}

func TestHandlePush_Success(t *testing.T) {
	h, uc := newTestPushHandler(t)
	event := openedEvent()

	uc.EXPECT().
		HandleSessionEvent(mock.Anything, mock.MatchedBy(func(e *service.SessionEvent) bool {
			return e.SessionID == event.SessionID && e.Type == service.EventSessionOpened
		})).
		RunAndReturn(func(ctx context.Context, _ *service.SessionEvent) error {
			assert.Equal(t, "attr-request", deliverycontext.GetRequestIDFromContext(ctx))

			return nil
		})

	rec := servePush(h, pushBody(t, event, map[string]string{"request_id": "attr-request"}))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_RequestIDFallsBackToEvent(t *testing.T) {
	h, uc := newTestPushHandler(t)

	uc.EXPECT().HandleSessionEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.SessionEvent) error {
			assert.Equal(t, "event-request", deliverycontext.GetRequestIDFromContext(ctx))

			return nil
		})

	rec := servePush(h, pushBody(t, openedEvent(), nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_ErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"malformed event is acknowledged", domainerrors.NewValidationError("owner_id: expected a uuid"), http.StatusOK},
		{"missing work log is retried", errors.Wrap(domainerrors.ErrWorkLogNotFound, "not visible yet"), http.StatusServiceUnavailable},
		{"store failure is retried", errors.New("connection refused"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newTestPushHandler(t)
			uc.EXPECT().HandleSessionEvent(mock.Anything, mock.Anything).Return(tt.err)

			rec := servePush(h, pushBody(t, openedEvent(), nil))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandlePush_BadPayloads(t *testing.T) {
	h, _ := newTestPushHandler(t)

	assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":{"data":"%%%"}}`).Code)

	notJSON := base64.StdEncoding.EncodeToString([]byte("not json"))
	assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":{"data":"`+notJSON+`"}}`).Code)
}

func TestHandlePush_VerifiesToken(t *testing.T) {
	h, _ := newTestPushHandler(t)
	h.verifyPushAuth = true
	h.verifier = func(*http.Request) error { return errors.New("bad token") }

	rec := servePush(h, pushBody(t, openedEvent(), nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyPubSubToken_RejectsMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/pubsub/push", nil)
	assert.ErrorContains(t, verifyPubSubToken(req), "missing authorization header")

	req.Header.Set("Authorization", "Basic abc")
	assert.ErrorContains(t, verifyPubSubToken(req), "invalid authorization header format")
}

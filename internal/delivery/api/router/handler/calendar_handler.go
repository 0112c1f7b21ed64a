package handler

import (
	"log/slog"
	"net/http"

	"workhours/internal/delivery/api/middleware"
	"workhours/internal/delivery/api/response"
	domainerrors "workhours/internal/domain/errors"
	"workhours/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const feedFilename = "work-hours.ics"

// CalendarHandlerParams holds dependencies for CalendarHandler, injected by Fx.
type CalendarHandlerParams struct {
	fx.In

	CalendarUC usecase.CalendarUsecase
	Logger     *slog.Logger
}

// CalendarHandler serves feed tokens and the public calendar feed
type CalendarHandler struct {
	calendarUC usecase.CalendarUsecase
	logger     *slog.Logger
}

// NewCalendarHandler is the constructor for CalendarHandler
func NewCalendarHandler(params CalendarHandlerParams) *CalendarHandler {
	return &CalendarHandler{
		calendarUC: params.CalendarUC,
		logger:     params.Logger,
	}
}

// GenerateToken handles creating or rotating the feed token
func (h *CalendarHandler) GenerateToken(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	result, err := h.calendarUC.GenerateToken(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// TokenStatus handles reporting whether the feed is enabled
func (h *CalendarHandler) TokenStatus(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	status, err := h.calendarUC.TokenStatus(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// RevokeToken handles disabling the feed
func (h *CalendarHandler) RevokeToken(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.calendarUC.RevokeToken(c.Request().Context(), ownerID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Calendar feed disabled"})
}

// TokenQR handles rendering the subscription URL of ?token= as a PNG
func (h *CalendarHandler) TokenQR(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	png, err := h.calendarUC.SubscriptionQR(c.Request().Context(), ownerID, c.QueryParam("token"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Private(c, "image/png", png)
}

// Feed serves the public iCalendar document. Every token failure answers the same 401.
func (h *CalendarHandler) Feed(c echo.Context) error {
	ownerID, err := uuid.Parse(c.Param("ownerId"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrNotFound)
	}

	feed, err := h.calendarUC.BuildFeed(c.Request().Context(), ownerID, c.Param("token"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Revalidated(c, feed.ContentType, feedFilename, feed.Body)
}

package handler

import (
	"log/slog"
	"net/http"

	"workhours/internal/delivery/api/middleware"
	"workhours/internal/delivery/api/response"
	"workhours/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ClockHandlerParams holds dependencies for ClockHandler, injected by Fx.
type ClockHandlerParams struct {
	fx.In

	ClockUC usecase.ClockUsecase
	Logger  *slog.Logger
}

// ClockHandler exposes the clock-in/clock-out state machine
type ClockHandler struct {
	clockUC usecase.ClockUsecase
	logger  *slog.Logger
}

// NewClockHandler is the constructor for ClockHandler
func NewClockHandler(params ClockHandlerParams) *ClockHandler {
	return &ClockHandler{
		clockUC: params.ClockUC,
		logger:  params.Logger,
	}
}

// ClockIn handles opening a session
func (h *ClockHandler) ClockIn(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	session, err := h.clockUC.ClockIn(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, session)
}

// ClockOut handles closing the open session
func (h *ClockHandler) ClockOut(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	result, err := h.clockUC.ClockOut(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Status handles reporting the current clock state
func (h *ClockHandler) Status(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	status, err := h.clockUC.CurrentStatus(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// Sessions handles listing session history
func (h *ClockHandler) Sessions(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, err := queryLimit(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	sessions, err := h.clockUC.ListSessions(c.Request().Context(), ownerID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sessions)
}

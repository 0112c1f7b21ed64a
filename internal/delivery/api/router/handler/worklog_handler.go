package handler

import (
	"log/slog"
	"net/http"

	"workhours/internal/delivery/api/middleware"
	"workhours/internal/delivery/api/response"
	"workhours/internal/domain/clocktime"
	"workhours/internal/domain/entity"
	domainerrors "workhours/internal/domain/errors"
	"workhours/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WorkLogHandlerParams holds dependencies for WorkLogHandler, injected by Fx.
type WorkLogHandlerParams struct {
	fx.In

	WorkLogUC usecase.WorkLogUsecase
	Logger    *slog.Logger
}

// WorkLogHandler holds dependencies for work log handlers
type WorkLogHandler struct {
	workLogUC usecase.WorkLogUsecase
	logger    *slog.Logger
}

// NewWorkLogHandler is the constructor for WorkLogHandler
func NewWorkLogHandler(params WorkLogHandlerParams) *WorkLogHandler {
	return &WorkLogHandler{
		workLogUC: params.WorkLogUC,
		logger:    params.Logger,
	}
}

// SetPaidRequest represents the request body for toggling the paid flag
type SetPaidRequest struct {
	Paid *bool `json:"paid" validate:"required"`
}

// MarkPaidRequest represents the request body for marking a date range
type MarkPaidRequest struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
	Paid *bool  `json:"paid" validate:"required"`
}

// ListWorkLogs handles listing logs, newest first
func (h *WorkLogHandler) ListWorkLogs(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	filter := entity.WorkLogFilter{}
	var err error
	if filter.From, err = queryDate(c, "from"); err != nil {
		return response.HandleAppError(c, err)
	}
	if filter.To, err = queryDate(c, "to"); err != nil {
		return response.HandleAppError(c, err)
	}
	if filter.Paid, err = queryBool(c, "paid"); err != nil {
		return response.HandleAppError(c, err)
	}
	if filter.Limit, err = queryLimit(c); err != nil {
		return response.HandleAppError(c, err)
	}

	logs, err := h.workLogUC.ListWorkLogs(c.Request().Context(), ownerID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs)
}

// CreateWorkLog handles manual log entry
func (h *WorkLogHandler) CreateWorkLog(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.WorkLogInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid work log input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	log, err := h.workLogUC.CreateWorkLog(c.Request().Context(), ownerID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, log)
}

// GetWorkLog handles fetching one log
func (h *WorkLogHandler) GetWorkLog(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	log, err := h.workLogUC.GetWorkLog(c.Request().Context(), ownerID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, log)
}

// UpdateWorkLog handles replacing the editable fields of a log
func (h *WorkLogHandler) UpdateWorkLog(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.WorkLogInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid work log input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	log, err := h.workLogUC.UpdateWorkLog(c.Request().Context(), ownerID, id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, log)
}

// DeleteWorkLog handles log deletion
func (h *WorkLogHandler) DeleteWorkLog(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.workLogUC.DeleteWorkLog(c.Request().Context(), ownerID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Work log deleted successfully"})
}

// SetPaid handles toggling the paid flag of one log
func (h *WorkLogHandler) SetPaid(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SetPaidRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid paid input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	log, err := h.workLogUC.SetPaid(c.Request().Context(), ownerID, id, *req.Paid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, log)
}

// MarkPaid handles setting the paid flag for every log in a date range
func (h *WorkLogHandler) MarkPaid(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req MarkPaidRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mark-paid input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	from, err := clocktime.ParseDate(req.From)
	if err != nil {
		return response.HandleAppError(c, domainerrors.NewValidationError("from: expected YYYY-MM-DD"))
	}
	to, err := clocktime.ParseDate(req.To)
	if err != nil {
		return response.HandleAppError(c, domainerrors.NewValidationError("to: expected YYYY-MM-DD"))
	}

	updated, err := h.workLogUC.MarkPaidInRange(c.Request().Context(), ownerID, from, to, *req.Paid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"updated": updated})
}

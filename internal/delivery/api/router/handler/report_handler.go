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

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// ReportHandler serves reports and the dashboard
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// Summary handles the aggregate report for ?from&to
func (h *ReportHandler) Summary(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	from, to, err := queryDateRange(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.reportUC.Summary(c.Request().Context(), ownerID, from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// Export handles downloading the CSV report for ?from&to
func (h *ReportHandler) Export(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	from, to, err := queryDateRange(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	file, err := h.reportUC.Export(c.Request().Context(), ownerID, from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Attachment(c, file.ContentType, file.Filename, file.Content)
}

// Dashboard handles the landing page overview for ?month=YYYY-MM
func (h *ReportHandler) Dashboard(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	month, err := queryMonth(c, "month")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	dashboard, err := h.reportUC.Dashboard(c.Request().Context(), ownerID, month)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dashboard)
}

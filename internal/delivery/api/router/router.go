// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"workhours/internal/delivery/api/middleware"
	"workhours/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	WorkLogHandler  *handler.WorkLogHandler
	ClockHandler    *handler.ClockHandler
	ProfileHandler  *handler.ProfileHandler
	CalendarHandler *handler.CalendarHandler
	ReportHandler   *handler.ReportHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	workLogHandler  *handler.WorkLogHandler
	clockHandler    *handler.ClockHandler
	profileHandler  *handler.ProfileHandler
	calendarHandler *handler.CalendarHandler
	reportHandler   *handler.ReportHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		workLogHandler:  params.WorkLogHandler,
		clockHandler:    params.ClockHandler,
		profileHandler:  params.ProfileHandler,
		calendarHandler: params.CalendarHandler,
		reportHandler:   params.ReportHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public calendar feed, authorised by the token in the path
	e.GET("/calendar-feed/:ownerId/:token", r.calendarHandler.Feed)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	profileGroup := apiV1.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
		profileGroup.POST("/onboarding", r.profileHandler.CompleteOnboarding)
	}

	workLogsGroup := apiV1.Group("/work-logs")
	{
		workLogsGroup.GET("", r.workLogHandler.ListWorkLogs)
		workLogsGroup.POST("", r.workLogHandler.CreateWorkLog)
		workLogsGroup.POST("/mark-paid", r.workLogHandler.MarkPaid)
		workLogsGroup.GET("/:id", r.workLogHandler.GetWorkLog)
		workLogsGroup.PUT("/:id", r.workLogHandler.UpdateWorkLog)
		workLogsGroup.DELETE("/:id", r.workLogHandler.DeleteWorkLog)
		workLogsGroup.PATCH("/:id/paid", r.workLogHandler.SetPaid)
	}

	clockGroup := apiV1.Group("/clock")
	{
		clockGroup.POST("/in", r.clockHandler.ClockIn)
		clockGroup.POST("/out", r.clockHandler.ClockOut)
		clockGroup.GET("/status", r.clockHandler.Status)
		clockGroup.GET("/sessions", r.clockHandler.Sessions)
	}

	apiV1.GET("/dashboard", r.reportHandler.Dashboard)

	reportsGroup := apiV1.Group("/reports")
	{
		reportsGroup.GET("/summary", r.reportHandler.Summary)
		reportsGroup.GET("/export.csv", r.reportHandler.Export)
	}

	calendarGroup := apiV1.Group("/calendar")
	{
		calendarGroup.POST("/token", r.calendarHandler.GenerateToken)
		calendarGroup.GET("/token", r.calendarHandler.TokenStatus)
		calendarGroup.DELETE("/token", r.calendarHandler.RevokeToken)
		calendarGroup.GET("/token/qr", r.calendarHandler.TokenQR)
	}
}

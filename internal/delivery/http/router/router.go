// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"skillconnect/internal/delivery/http/middleware"
	"skillconnect/internal/delivery/http/router/handler"
	"skillconnect/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	JobHandler         *handler.JobHandler
	ApplicationHandler *handler.ApplicationHandler
	AdminHandler       *handler.AdminHandler
	DashboardHandler   *handler.DashboardHandler

	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	CSRFMiddleware      *middleware.CSRFMiddleware
	SessionGuard        *middleware.SessionGuard
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler        *handler.UserHandler
	jobHandler         *handler.JobHandler
	applicationHandler *handler.ApplicationHandler
	adminHandler       *handler.AdminHandler
	dashboardHandler   *handler.DashboardHandler

	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	csrfMiddleware      *middleware.CSRFMiddleware
	sessionGuard        *middleware.SessionGuard
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		jobHandler:          params.JobHandler,
		applicationHandler:  params.ApplicationHandler,
		adminHandler:        params.AdminHandler,
		dashboardHandler:    params.DashboardHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		csrfMiddleware:      params.CSRFMiddleware,
		sessionGuard:        params.SessionGuard,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The rate limiter is registered before the CSRF guard so that rejected
// cross-site requests still consume the caller's request budget.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	admission := []echo.MiddlewareFunc{
		r.rateLimitMiddleware.Handle,
		r.csrfMiddleware.Handle,
	}

	// Auth routes
	authGroup := e.Group("/auth", admission...)
	{
		authGroup.POST("/register/seeker", r.userHandler.RegisterSeeker)
		authGroup.POST("/register/employer", r.userHandler.RegisterEmployer)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/login/google", r.userHandler.GoogleLogin)
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Public job browsing
	jobsGroup := e.Group("/jobs", admission...)
	{
		jobsGroup.GET("", r.jobHandler.ListJobs)
		jobsGroup.GET("/:id", r.jobHandler.GetJob)
		jobsGroup.GET("/:id/qr", r.jobHandler.ShareQR)
	}

	// Profile routes that require authentication
	userGroup := e.Group("/user", admission...)
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PUT("/profile/seeker", r.userHandler.UpdateSeekerProfile)
		userGroup.PUT("/profile/employer", r.userHandler.UpdateEmployerProfile)
	}

	// Employer routes: posting management and applicant review
	employerGroup := e.Group("/employer", admission...)
	employerGroup.Use(r.authMiddleware.Authenticate)
	employerGroup.Use(r.authMiddleware.RequireRole("employer"))
	{
		employerGroup.POST("/jobs", r.jobHandler.CreateJob)
		employerGroup.GET("/jobs", r.jobHandler.ListMyJobs)
		employerGroup.PUT("/jobs/:id", r.jobHandler.UpdateJob)
		employerGroup.DELETE("/jobs/:id", r.jobHandler.DeleteJob)
		employerGroup.GET("/jobs/:id/applications", r.applicationHandler.ListForJob)
		employerGroup.PATCH("/applications/:id", r.applicationHandler.UpdateStatus)
	}

	// Seeker routes: applying and tracking applications
	seekerGroup := e.Group("/seeker", admission...)
	seekerGroup.Use(r.authMiddleware.Authenticate)
	seekerGroup.Use(r.authMiddleware.RequireRole("seeker"))
	{
		seekerGroup.POST("/jobs/:id/applications", r.applicationHandler.Apply)
		seekerGroup.GET("/applications", r.applicationHandler.ListMine)
	}

	// Admin routes: platform moderation
	adminGroup := e.Group("/admin", admission...)
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.POST("/users/:id/suspend", r.adminHandler.SuspendUser)
		adminGroup.POST("/jobs/:id/close", r.adminHandler.CloseJob)
	}

	// Dashboard routes guarded by the cookie session, one per role.
	// A signed-in user of another role is redirected to their own dashboard.
	e.GET(entity.SeekerDashboardPath, r.dashboardHandler.SeekerDashboard,
		append(admission, r.sessionGuard.Require(entity.RoleSeeker))...)
	e.GET(entity.EmployerDashboardPath, r.dashboardHandler.EmployerDashboard,
		append(admission, r.sessionGuard.Require(entity.RoleEmployer))...)
	e.GET(entity.AdminDashboardPath, r.dashboardHandler.AdminDashboard,
		append(admission, r.sessionGuard.Require(entity.RoleAdmin))...)
}

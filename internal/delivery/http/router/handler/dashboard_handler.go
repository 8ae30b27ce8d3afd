package handler

import (
	"net/http"

	"skillconnect/internal/delivery/http/middleware"
	"skillconnect/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the per-role dashboard endpoints. The session guard
// in front of each route guarantees the signed-in role matches.
type DashboardHandler struct{}

// NewDashboardHandler is the constructor for DashboardHandler.
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// SeekerDashboard serves the seeker's dashboard view.
func (h *DashboardHandler) SeekerDashboard(c echo.Context) error {
	return dashboard(c, "seeker")
}

// EmployerDashboard serves the employer's dashboard view.
func (h *DashboardHandler) EmployerDashboard(c echo.Context) error {
	return dashboard(c, "employer")
}

// AdminDashboard serves the administrator's dashboard view.
func (h *DashboardHandler) AdminDashboard(c echo.Context) error {
	return dashboard(c, "admin")
}

func dashboard(c echo.Context, role string) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"dashboard": role,
		"userId":    c.Get(middleware.ContextKeySessionUserID),
	}, "Dashboard retrieved successfully")
}

package handler

import (
	"log/slog"
	"net/http"

	"skillconnect/internal/delivery/http/response"
	"skillconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for platform moderation handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, logger: logger}
}

// ListUsers pages through registered users for moderation.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context(), &usecase.ListUsersInput{
		Offset: queryInt(c, "offset"),
		Limit:  queryInt(c, "limit"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// SuspendUser marks an account suspended and revokes its sessions.
func (h *AdminHandler) SuspendUser(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.SuspendUser(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": userID.String()}, "User suspended successfully")
}

// CloseJob forcibly closes a posting.
func (h *AdminHandler) CloseJob(c echo.Context) error {
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	job, err := h.uc.CloseJob(c.Request().Context(), jobID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, job, "Job closed successfully")
}

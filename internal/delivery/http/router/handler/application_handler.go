package handler

import (
	"log/slog"
	"net/http"

	"skillconnect/internal/delivery/http/response"
	"skillconnect/internal/domain/entity"
	"skillconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ApplicationHandler holds dependencies for job application handlers.
type ApplicationHandler struct {
	uc     usecase.ApplicationUsecase
	logger *slog.Logger
}

// NewApplicationHandler is the constructor for ApplicationHandler, injected by Fx.
func NewApplicationHandler(uc usecase.ApplicationUsecase, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, logger: logger}
}

type applyRequest struct {
	CoverLetter string `json:"coverLetter"`
}

type updateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewed accepted rejected"`
}

// Apply submits the authenticated seeker's application to a posting.
func (h *ApplicationHandler) Apply(c echo.Context) error {
	seekerID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid application input")
	}

	application, err := h.uc.Apply(c.Request().Context(), &usecase.ApplyInput{
		JobID:       jobID,
		SeekerID:    seekerID,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, application, "Application submitted successfully")
}

// ListForJob returns a posting's applications to its owning employer.
func (h *ApplicationHandler) ListForJob(c echo.Context) error {
	employerID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	applications, err := h.uc.ListForJob(c.Request().Context(), jobID, employerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, applications, "Applications retrieved successfully")
}

// ListMine returns every application the authenticated seeker has submitted.
func (h *ApplicationHandler) ListMine(c echo.Context) error {
	seekerID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	applications, err := h.uc.ListForSeeker(c.Request().Context(), seekerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, applications, "Applications retrieved successfully")
}

// UpdateStatus transitions an application's review state.
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	employerID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	applicationID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateApplicationStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	application, err := h.uc.UpdateStatus(c.Request().Context(), &usecase.UpdateApplicationStatusInput{
		ApplicationID: applicationID,
		EmployerID:    employerID,
		Status:        entity.ApplicationStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, application, "Application status updated successfully")
}

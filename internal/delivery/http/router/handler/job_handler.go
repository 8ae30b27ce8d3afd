package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"skillconnect/internal/delivery/http/response"
	"skillconnect/internal/domain/entity"
	"skillconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// JobHandler holds dependencies for job posting handlers.
type JobHandler struct {
	uc     usecase.JobUsecase
	logger *slog.Logger
}

// NewJobHandler is the constructor for JobHandler, injected by Fx.
func NewJobHandler(uc usecase.JobUsecase, logger *slog.Logger) *JobHandler {
	return &JobHandler{uc: uc, logger: logger}
}

type createJobRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location" validate:"required"`
	SalaryMin   int    `json:"salaryMin" validate:"gte=0"`
	SalaryMax   int    `json:"salaryMax" validate:"gte=0"`
}

type updateJobRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location" validate:"required"`
	SalaryMin   int    `json:"salaryMin" validate:"gte=0"`
	SalaryMax   int    `json:"salaryMax" validate:"gte=0"`
	Status      string `json:"status" validate:"omitempty,oneof=open closed"`
}

// CreateJob handles job posting creation by the authenticated employer.
func (h *JobHandler) CreateJob(c echo.Context) error {
	employerID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid job input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	job, err := h.uc.CreateJob(c.Request().Context(), &usecase.CreateJobInput{
		EmployerID:  employerID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, job, "Job created successfully")
}

// UpdateJob handles edits to an existing posting.
func (h *JobHandler) UpdateJob(c echo.Context) error {
	employerID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid job input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	job, err := h.uc.UpdateJob(c.Request().Context(), &usecase.UpdateJobInput{
		JobID:       jobID,
		EmployerID:  employerID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
		Status:      entity.JobStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, job, "Job updated successfully")
}

// DeleteJob removes a posting owned by the authenticated employer.
func (h *JobHandler) DeleteJob(c echo.Context) error {
	employerID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteJob(c.Request().Context(), jobID, employerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": jobID.String()}, "Job deleted successfully")
}

// GetJob returns a single public posting.
func (h *JobHandler) GetJob(c echo.Context) error {
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	job, err := h.uc.GetJob(c.Request().Context(), jobID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, job, "Job retrieved successfully")
}

// ListJobs returns the public job listing, filtered by query parameters.
func (h *JobHandler) ListJobs(c echo.Context) error {
	input := &usecase.ListJobsInput{
		Location: c.QueryParam("location"),
		Status:   entity.JobStatus(c.QueryParam("status")),
		Search:   c.QueryParam("search"),
		Offset:   queryInt(c, "offset"),
		Limit:    queryInt(c, "limit"),
	}

	jobs, err := h.uc.ListJobs(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, jobs, "Jobs retrieved successfully")
}

// ListMyJobs returns every posting owned by the authenticated employer.
func (h *JobHandler) ListMyJobs(c echo.Context) error {
	employerID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	jobs, err := h.uc.ListEmployerJobs(c.Request().Context(), employerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, jobs, "Jobs retrieved successfully")
}

// ShareQR streams a PNG QR code that links to the posting's public page.
func (h *JobHandler) ShareQR(c echo.Context) error {
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.uc.GenerateShareQR(c.Request().Context(), jobID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// pathUUID parses a UUID path parameter or responds with 400.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, response.BadRequest(c, "INVALID_ID", "Invalid identifier in URL")
	}

	return id, nil
}

// queryInt parses a non-negative integer query parameter, defaulting to zero.
func queryInt(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || value < 0 {
		return 0
	}

	return value
}

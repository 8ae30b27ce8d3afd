package impl

import (
	"context"
	"log/slog"

	deliverycontext "skillconnect/internal/delivery/context"
	"skillconnect/internal/domain/entity"
	domainerrors "skillconnect/internal/domain/errors"
	"skillconnect/internal/domain/repository"
	"skillconnect/internal/domain/service"
	"skillconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// jobService implements the JobUsecase interface.
type jobService struct {
	txManager repository.TransactionManager
	qrService service.QRCodeService
	logger    *slog.Logger
}

// JobServiceParams holds dependencies for JobService, injected by Fx.
type JobServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewJobService is the constructor for jobService.
func NewJobService(params JobServiceParams) usecase.JobUsecase {
	return &jobService{
		txManager: params.TxManager,
		qrService: params.QRService,
		logger:    params.Logger,
	}
}

func (srv *jobService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateJob creates a new open posting owned by the employer.
func (srv *jobService) CreateJob(ctx context.Context, input *usecase.CreateJobInput) (*entity.Job, error) {
	if input.SalaryMin > 0 && input.SalaryMax > 0 && input.SalaryMin > input.SalaryMax {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("salary minimum exceeds maximum")
	}

	job := &entity.Job{
		EmployerID:  input.EmployerID,
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		SalaryMin:   input.SalaryMin,
		SalaryMax:   input.SalaryMax,
		Status:      entity.JobStatusOpen,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.JobRepo().Create(ctx, job); err != nil {
			return errors.Wrap(err, "failed to create job")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create job", slog.Any("employerID", input.EmployerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Job created", slog.Any("jobID", job.ID), slog.Any("employerID", input.EmployerID))

	return job, nil
}

// UpdateJob modifies a posting after verifying the caller owns it.
func (srv *jobService) UpdateJob(ctx context.Context, input *usecase.UpdateJobInput) (*entity.Job, error) {
	if input.Status != "" && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid job status")
	}
	if input.SalaryMin > 0 && input.SalaryMax > 0 && input.SalaryMin > input.SalaryMax {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("salary minimum exceeds maximum")
	}

	var job *entity.Job
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		jobRepo := repoFactory.JobRepo()

		found, err := srv.loadOwnedJob(ctx, jobRepo, input.JobID, input.EmployerID)
		if err != nil {
			return err
		}

		found.Title = input.Title
		found.Description = input.Description
		found.Location = input.Location
		found.SalaryMin = input.SalaryMin
		found.SalaryMax = input.SalaryMax
		if input.Status != "" {
			found.Status = input.Status
		}

		if err := jobRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update job")
		}
		job = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update job", slog.Any("jobID", input.JobID), slog.Any("error", err))

		return nil, err
	}

	return job, nil
}

// DeleteJob removes a posting after verifying the caller owns it.
func (srv *jobService) DeleteJob(ctx context.Context, jobID, employerID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		jobRepo := repoFactory.JobRepo()

		if _, err := srv.loadOwnedJob(ctx, jobRepo, jobID, employerID); err != nil {
			return err
		}

		if err := jobRepo.Delete(ctx, jobID); err != nil {
			return errors.Wrap(err, "failed to delete job")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete job", slog.Any("jobID", jobID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Job deleted", slog.Any("jobID", jobID), slog.Any("employerID", employerID))

	return nil
}

// GetJob retrieves a single posting.
func (srv *jobService) GetJob(ctx context.Context, jobID uuid.UUID) (*entity.Job, error) {
	var job *entity.Job
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.JobRepo().FindByID(ctx, jobID)
		if err != nil {
			if errors.Is(err, repository.ErrJobNotFound) {
				return errors.Wrap(domainerrors.ErrJobNotFound, "job not found")
			}

			return errors.Wrap(err, "failed to find job")
		}
		job = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return job, nil
}

// ListJobs retrieves the public job listing, newest first.
func (srv *jobService) ListJobs(ctx context.Context, input *usecase.ListJobsInput) ([]*entity.Job, error) {
	if input.Status != "" && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid job status")
	}

	var jobs []*entity.Job
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.JobRepo().List(ctx, repository.JobFilter{
			Location: input.Location,
			Status:   input.Status,
			Search:   input.Search,
			Offset:   input.Offset,
			Limit:    input.Limit,
		})
		if err != nil {
			return errors.Wrap(err, "failed to list jobs")
		}
		jobs = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return jobs, nil
}

// ListEmployerJobs retrieves every posting owned by the employer.
func (srv *jobService) ListEmployerJobs(ctx context.Context, employerID uuid.UUID) ([]*entity.Job, error) {
	var jobs []*entity.Job
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.JobRepo().FindByEmployerID(ctx, employerID)
		if err != nil {
			return errors.Wrap(err, "failed to list employer jobs")
		}
		jobs = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return jobs, nil
}

// GenerateShareQR renders a PNG QR code linking to the posting's public page.
func (srv *jobService) GenerateShareQR(ctx context.Context, jobID uuid.UUID) ([]byte, error) {
	// Only existing postings get a share code.
	if _, err := srv.GetJob(ctx, jobID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateJobShareQR(jobID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate share QR", slog.Any("jobID", jobID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate share QR")
	}

	return png, nil
}

// loadOwnedJob fetches the posting and enforces employer ownership.
func (srv *jobService) loadOwnedJob(ctx context.Context, jobRepo repository.JobRepository, jobID, employerID uuid.UUID) (*entity.Job, error) {
	found, err := jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, errors.Wrap(domainerrors.ErrJobNotFound, "job not found")
		}

		return nil, errors.Wrap(err, "failed to find job")
	}
	if found.EmployerID != employerID {
		return nil, errors.Wrap(domainerrors.ErrJobOwnershipViolation, "job belongs to another employer")
	}

	return found, nil
}

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

// applicationService implements the ApplicationUsecase interface.
type applicationService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// ApplicationServiceParams holds dependencies for ApplicationService, injected by Fx.
type ApplicationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewApplicationService is the constructor for applicationService.
func NewApplicationService(params ApplicationServiceParams) usecase.ApplicationUsecase {
	return &applicationService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *applicationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Apply submits a seeker's application to an open posting and queues the
// employer notification.
func (srv *applicationService) Apply(ctx context.Context, input *usecase.ApplyInput) (*entity.Application, error) {
	var (
		application *entity.Application
		event       *service.ApplicationEvent
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		jobRepo := repoFactory.JobRepo()
		appRepo := repoFactory.ApplicationRepo()
		userRepo := repoFactory.UserRepo()

		job, err := jobRepo.FindByID(ctx, input.JobID)
		if err != nil {
			if errors.Is(err, repository.ErrJobNotFound) {
				return errors.Wrap(domainerrors.ErrJobNotFound, "job not found")
			}

			return errors.Wrap(err, "failed to find job")
		}
		if !job.AcceptsApplications() {
			return errors.Wrap(domainerrors.ErrJobClosed, "posting is closed")
		}

		newApplication := &entity.Application{
			JobID:       input.JobID,
			SeekerID:    input.SeekerID,
			CoverLetter: input.CoverLetter,
			Status:      entity.ApplicationStatusPending,
		}
		if err := appRepo.Create(ctx, newApplication); err != nil {
			if errors.Is(err, repository.ErrDuplicateApplication) {
				return errors.Wrap(domainerrors.ErrDuplicateApplication, "duplicate application")
			}

			return errors.Wrap(err, "failed to create application")
		}

		// Load both parties while still inside the transaction so the
		// notification carries consistent contact details.
		seeker, err := userRepo.FindByID(ctx, input.SeekerID)
		if err != nil {
			return errors.Wrap(err, "failed to load seeker for notification")
		}
		employer, err := userRepo.FindByID(ctx, job.EmployerID)
		if err != nil {
			return errors.Wrap(err, "failed to load employer for notification")
		}

		application = newApplication
		event = &service.ApplicationEvent{
			RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
			Type:          service.EventApplicationCreated,
			ApplicationID: newApplication.ID.String(),
			JobID:         job.ID.String(),
			JobTitle:      job.Title,
			SeekerID:      seeker.ID.String(),
			SeekerEmail:   seeker.Email,
			SeekerName:    seeker.FullName(),
			EmployerEmail: employer.Email,
			Status:        string(newApplication.Status),
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to submit application", slog.Any("jobID", input.JobID), slog.Any("seekerID", input.SeekerID), slog.Any("error", err))

		return nil, err
	}

	srv.publishEvent(ctx, event)

	return application, nil
}

// ListForJob retrieves a posting's applications for its owning employer.
func (srv *applicationService) ListForJob(ctx context.Context, jobID, employerID uuid.UUID) ([]*entity.Application, error) {
	var applications []*entity.Application
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		job, err := repoFactory.JobRepo().FindByID(ctx, jobID)
		if err != nil {
			if errors.Is(err, repository.ErrJobNotFound) {
				return errors.Wrap(domainerrors.ErrJobNotFound, "job not found")
			}

			return errors.Wrap(err, "failed to find job")
		}
		if job.EmployerID != employerID {
			return errors.Wrap(domainerrors.ErrJobOwnershipViolation, "job belongs to another employer")
		}

		found, err := repoFactory.ApplicationRepo().FindByJobID(ctx, jobID)
		if err != nil {
			return errors.Wrap(err, "failed to list applications")
		}
		applications = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return applications, nil
}

// ListForSeeker retrieves every application the seeker has submitted.
func (srv *applicationService) ListForSeeker(ctx context.Context, seekerID uuid.UUID) ([]*entity.Application, error) {
	var applications []*entity.Application
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ApplicationRepo().FindBySeekerID(ctx, seekerID)
		if err != nil {
			return errors.Wrap(err, "failed to list seeker applications")
		}
		applications = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return applications, nil
}

// UpdateStatus transitions an application's review state on behalf of the
// employer owning the posting, then queues the seeker notification.
func (srv *applicationService) UpdateStatus(ctx context.Context, input *usecase.UpdateApplicationStatusInput) (*entity.Application, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrInvalidApplicationStatus.WrapMessage("unknown status value")
	}

	var (
		application *entity.Application
		event       *service.ApplicationEvent
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		appRepo := repoFactory.ApplicationRepo()
		jobRepo := repoFactory.JobRepo()
		userRepo := repoFactory.UserRepo()

		found, err := appRepo.FindByID(ctx, input.ApplicationID)
		if err != nil {
			if errors.Is(err, repository.ErrApplicationNotFound) {
				return errors.Wrap(domainerrors.ErrApplicationNotFound, "application not found")
			}

			return errors.Wrap(err, "failed to find application")
		}

		job, err := jobRepo.FindByID(ctx, found.JobID)
		if err != nil {
			return errors.Wrap(err, "failed to find job for application")
		}
		if job.EmployerID != input.EmployerID {
			return errors.Wrap(domainerrors.ErrJobOwnershipViolation, "job belongs to another employer")
		}

		if err := appRepo.UpdateStatus(ctx, found.ID, input.Status); err != nil {
			return errors.Wrap(err, "failed to update application status")
		}
		found.Status = input.Status

		seeker, err := userRepo.FindByID(ctx, found.SeekerID)
		if err != nil {
			return errors.Wrap(err, "failed to load seeker for notification")
		}

		application = found
		event = &service.ApplicationEvent{
			RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
			Type:          service.EventApplicationStatusChanged,
			ApplicationID: found.ID.String(),
			JobID:         job.ID.String(),
			JobTitle:      job.Title,
			SeekerID:      seeker.ID.String(),
			SeekerEmail:   seeker.Email,
			SeekerName:    seeker.FullName(),
			Status:        string(input.Status),
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update application status", slog.Any("applicationID", input.ApplicationID), slog.Any("error", err))

		return nil, err
	}

	srv.publishEvent(ctx, event)

	return application, nil
}

// publishEvent publishes after commit. A publish failure never fails the
// request; the state change already happened.
func (srv *applicationService) publishEvent(ctx context.Context, event *service.ApplicationEvent) {
	if event == nil {
		return
	}
	if err := srv.publisher.PublishApplicationEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish application event",
			slog.String("type", event.Type),
			slog.String("applicationID", event.ApplicationID),
			slog.Any("error", err))
	}
}

package impl

import (
	"context"
	"log/slog"

	deliverycontext "skillconnect/internal/delivery/context"
	"skillconnect/internal/domain/entity"
	domainerrors "skillconnect/internal/domain/errors"
	"skillconnect/internal/domain/repository"
	"skillconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultAdminPageSize = 50

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers pages through registered users, newest first.
func (srv *adminService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) ([]*entity.User, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultAdminPageSize
	}

	var users []*entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().List(ctx, input.Offset, limit)
		if err != nil {
			return errors.Wrap(err, "failed to list users")
		}
		users = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

// SuspendUser marks the account suspended and ends all of its sessions.
func (srv *adminService) SuspendUser(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		user.Suspended = true
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to suspend user")
		}

		// Force sign-out everywhere.
		if err := repoFactory.RefreshTokenRepo().DeleteRefreshTokensByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions for suspended user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to suspend user", slog.Any("userID", userID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("User suspended", slog.Any("userID", userID))

	return nil
}

// CloseJob forcibly closes a posting, regardless of its owner.
func (srv *adminService) CloseJob(ctx context.Context, jobID uuid.UUID) (*entity.Job, error) {
	var job *entity.Job
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		jobRepo := repoFactory.JobRepo()

		found, err := jobRepo.FindByID(ctx, jobID)
		if err != nil {
			if errors.Is(err, repository.ErrJobNotFound) {
				return errors.Wrap(domainerrors.ErrJobNotFound, "job not found")
			}

			return errors.Wrap(err, "failed to find job")
		}

		found.Status = entity.JobStatusClosed
		if err := jobRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to close job")
		}
		job = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to close job", slog.Any("jobID", jobID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Job closed by admin", slog.Any("jobID", jobID))

	return job, nil
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"skillconnect/internal/domain/entity"
	domainerrors "skillconnect/internal/domain/errors"
	"skillconnect/internal/domain/repository"
	mockRepo "skillconnect/internal/mocks/repository"
	"skillconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service   usecase.AdminUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAdminService(AdminServiceParams{
		TxManager: txManager,
		Logger:    logger,
	})

	return adminServiceFixtures{service: svc, txManager: txManager}
}

func (fx adminServiceFixtures) onExecute(t *testing.T, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			setup(mockFactory)

			return fn(mockFactory)
		})
}

func TestAdminService_ListUsers_DefaultsPageSize(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	expected := []*entity.User{{ID: uuid.New(), Email: "one@example.com"}}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().List(ctx, 0, defaultAdminPageSize).Return(expected, nil)
	})

	users, err := fx.service.ListUsers(ctx, &usecase.ListUsersInput{})

	require.NoError(t, err)
	assert.Equal(t, expected, users)
}

func TestAdminService_SuspendUser_RevokesSessions(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockUserRepo.EXPECT().
			FindByID(ctx, userID).
			Return(&entity.User{ID: userID, Email: "target@example.com"}, nil)
		mockUserRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				assert.True(t, user.Suspended)
			}).
			Return(nil)
		mockRefreshRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)
	})

	err := fx.service.SuspendUser(ctx, userID)

	require.NoError(t, err)
}

func TestAdminService_SuspendUser_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	err := fx.service.SuspendUser(ctx, userID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAdminService_CloseJob_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	jobID := uuid.New()

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockJobRepo := mockRepo.NewMockJobRepository(t)
		factory.EXPECT().JobRepo().Return(mockJobRepo)

		mockJobRepo.EXPECT().
			FindByID(ctx, jobID).
			Return(&entity.Job{ID: jobID, Status: entity.JobStatusOpen}, nil)
		mockJobRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Job")).
			Run(func(ctx context.Context, job *entity.Job) {
				assert.Equal(t, entity.JobStatusClosed, job.Status)
			}).
			Return(nil)
	})

	job, err := fx.service.CloseJob(ctx, jobID)

	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusClosed, job.Status)
}

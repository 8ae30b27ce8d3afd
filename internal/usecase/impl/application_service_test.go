package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"skillconnect/internal/domain/entity"
	domainerrors "skillconnect/internal/domain/errors"
	"skillconnect/internal/domain/repository"
	"skillconnect/internal/domain/service"
	mockRepo "skillconnect/internal/mocks/repository"
	mockSvc "skillconnect/internal/mocks/service"
	"skillconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type applicationServiceFixtures struct {
	service   usecase.ApplicationUsecase
	txManager *mockRepo.MockTransactionManager
	publisher *mockSvc.MockEventPublisher
}

func createTestApplicationService(t *testing.T) applicationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewApplicationService(ApplicationServiceParams{
		TxManager: txManager,
		Publisher: publisher,
		Logger:    logger,
	})

	return applicationServiceFixtures{service: svc, txManager: txManager, publisher: publisher}
}

func (fx applicationServiceFixtures) onExecute(t *testing.T, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			setup(mockFactory)

			return fn(mockFactory)
		})
}

func TestApplicationService_Apply_Success(t *testing.T) {
	fx := createTestApplicationService(t)

	ctx := context.Background()
	jobID := uuid.New()
	seekerID := uuid.New()
	employerID := uuid.New()

	job := &entity.Job{ID: jobID, EmployerID: employerID, Title: "Welder", Status: entity.JobStatusOpen}
	seeker := &entity.User{ID: seekerID, Email: "seeker@example.com", FirstName: "Wanjiru", LastName: "Kamau"}
	employer := &entity.User{ID: employerID, Email: "employer@example.com"}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockJobRepo := mockRepo.NewMockJobRepository(t)
		mockAppRepo := mockRepo.NewMockApplicationRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().JobRepo().Return(mockJobRepo)
		factory.EXPECT().ApplicationRepo().Return(mockAppRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockJobRepo.EXPECT().FindByID(ctx, jobID).Return(job, nil)
		mockAppRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Application")).
			Run(func(ctx context.Context, application *entity.Application) {
				application.ID = uuid.New()
				assert.Equal(t, entity.ApplicationStatusPending, application.Status)
			}).
			Return(nil)
		mockUserRepo.EXPECT().FindByID(ctx, seekerID).Return(seeker, nil)
		mockUserRepo.EXPECT().FindByID(ctx, employerID).Return(employer, nil)
	})

	fx.publisher.EXPECT().
		PublishApplicationEvent(ctx, mock.AnythingOfType("*service.ApplicationEvent")).
		Run(func(ctx context.Context, event *service.ApplicationEvent) {
			assert.Equal(t, service.EventApplicationCreated, event.Type)
			assert.Equal(t, "employer@example.com", event.EmployerEmail)
			assert.Equal(t, "Wanjiru Kamau", event.SeekerName)
			assert.Equal(t, "Welder", event.JobTitle)
		}).
		Return(nil)

	application, err := fx.service.Apply(ctx, &usecase.ApplyInput{
		JobID:       jobID,
		SeekerID:    seekerID,
		CoverLetter: "I have five years of experience.",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationStatusPending, application.Status)
}

func TestApplicationService_Apply_ClosedJob(t *testing.T) {
	fx := createTestApplicationService(t)

	ctx := context.Background()
	jobID := uuid.New()

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockJobRepo := mockRepo.NewMockJobRepository(t)
		mockAppRepo := mockRepo.NewMockApplicationRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().JobRepo().Return(mockJobRepo)
		factory.EXPECT().ApplicationRepo().Return(mockAppRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockJobRepo.EXPECT().
			FindByID(ctx, jobID).
			Return(&entity.Job{ID: jobID, Status: entity.JobStatusClosed}, nil)
	})

	application, err := fx.service.Apply(ctx, &usecase.ApplyInput{JobID: jobID, SeekerID: uuid.New()})

	assert.Error(t, err)
	assert.Nil(t, application)
	assert.True(t, errors.Is(err, domainerrors.ErrJobClosed))
}

func TestApplicationService_Apply_Duplicate(t *testing.T) {
	fx := createTestApplicationService(t)

	ctx := context.Background()
	jobID := uuid.New()
	seekerID := uuid.New()

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockJobRepo := mockRepo.NewMockJobRepository(t)
		mockAppRepo := mockRepo.NewMockApplicationRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().JobRepo().Return(mockJobRepo)
		factory.EXPECT().ApplicationRepo().Return(mockAppRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockJobRepo.EXPECT().
			FindByID(ctx, jobID).
			Return(&entity.Job{ID: jobID, Status: entity.JobStatusOpen}, nil)
		mockAppRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Application")).
			Return(repository.ErrDuplicateApplication)
	})

	application, err := fx.service.Apply(ctx, &usecase.ApplyInput{JobID: jobID, SeekerID: seekerID})

	assert.Error(t, err)
	assert.Nil(t, application)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateApplication))
}

func TestApplicationService_Apply_PublishFailureDoesNotFailRequest(t *testing.T) {
	fx := createTestApplicationService(t)

	ctx := context.Background()
	jobID := uuid.New()
	seekerID := uuid.New()
	employerID := uuid.New()

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockJobRepo := mockRepo.NewMockJobRepository(t)
		mockAppRepo := mockRepo.NewMockApplicationRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().JobRepo().Return(mockJobRepo)
		factory.EXPECT().ApplicationRepo().Return(mockAppRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockJobRepo.EXPECT().
			FindByID(ctx, jobID).
			Return(&entity.Job{ID: jobID, EmployerID: employerID, Status: entity.JobStatusOpen}, nil)
		mockAppRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Application")).
			Return(nil)
		mockUserRepo.EXPECT().FindByID(ctx, seekerID).Return(&entity.User{ID: seekerID}, nil)
		mockUserRepo.EXPECT().FindByID(ctx, employerID).Return(&entity.User{ID: employerID}, nil)
	})

	fx.publisher.EXPECT().
		PublishApplicationEvent(ctx, mock.AnythingOfType("*service.ApplicationEvent")).
		Return(errors.New("broker unavailable"))

	application, err := fx.service.Apply(ctx, &usecase.ApplyInput{JobID: jobID, SeekerID: seekerID})

	require.NoError(t, err)
	assert.NotNil(t, application)
}

func TestApplicationService_ListForJob_OwnershipEnforced(t *testing.T) {
	fx := createTestApplicationService(t)

	ctx := context.Background()
	jobID := uuid.New()

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockJobRepo := mockRepo.NewMockJobRepository(t)
		factory.EXPECT().JobRepo().Return(mockJobRepo)

		mockJobRepo.EXPECT().
			FindByID(ctx, jobID).
			Return(&entity.Job{ID: jobID, EmployerID: uuid.New()}, nil)
	})

	applications, err := fx.service.ListForJob(ctx, jobID, uuid.New())

	assert.Error(t, err)
	assert.Nil(t, applications)
	assert.True(t, errors.Is(err, domainerrors.ErrJobOwnershipViolation))
}

func TestApplicationService_UpdateStatus_Success(t *testing.T) {
	fx := createTestApplicationService(t)

	ctx := context.Background()
	applicationID := uuid.New()
	jobID := uuid.New()
	seekerID := uuid.New()
	employerID := uuid.New()

	existing := &entity.Application{
		ID:       applicationID,
		JobID:    jobID,
		SeekerID: seekerID,
		Status:   entity.ApplicationStatusPending,
	}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockJobRepo := mockRepo.NewMockJobRepository(t)
		mockAppRepo := mockRepo.NewMockApplicationRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().ApplicationRepo().Return(mockAppRepo)
		factory.EXPECT().JobRepo().Return(mockJobRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockAppRepo.EXPECT().FindByID(ctx, applicationID).Return(existing, nil)
		mockJobRepo.EXPECT().
			FindByID(ctx, jobID).
			Return(&entity.Job{ID: jobID, EmployerID: employerID, Title: "Welder"}, nil)
		mockAppRepo.EXPECT().
			UpdateStatus(ctx, applicationID, entity.ApplicationStatusAccepted).
			Return(nil)
		mockUserRepo.EXPECT().
			FindByID(ctx, seekerID).
			Return(&entity.User{ID: seekerID, Email: "seeker@example.com"}, nil)
	})

	fx.publisher.EXPECT().
		PublishApplicationEvent(ctx, mock.AnythingOfType("*service.ApplicationEvent")).
		Run(func(ctx context.Context, event *service.ApplicationEvent) {
			assert.Equal(t, service.EventApplicationStatusChanged, event.Type)
			assert.Equal(t, "accepted", event.Status)
			assert.Equal(t, "seeker@example.com", event.SeekerEmail)
		}).
		Return(nil)

	application, err := fx.service.UpdateStatus(ctx, &usecase.UpdateApplicationStatusInput{
		ApplicationID: applicationID,
		EmployerID:    employerID,
		Status:        entity.ApplicationStatusAccepted,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationStatusAccepted, application.Status)
}

func TestApplicationService_UpdateStatus_InvalidStatus(t *testing.T) {
	fx := createTestApplicationService(t)

	application, err := fx.service.UpdateStatus(context.Background(), &usecase.UpdateApplicationStatusInput{
		ApplicationID: uuid.New(),
		EmployerID:    uuid.New(),
		Status:        entity.ApplicationStatus("archived"),
	})

	assert.Error(t, err)
	assert.Nil(t, application)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidApplicationStatus))
}

func TestApplicationService_UpdateStatus_OwnershipViolation(t *testing.T) {
	fx := createTestApplicationService(t)

	ctx := context.Background()
	applicationID := uuid.New()
	jobID := uuid.New()

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockJobRepo := mockRepo.NewMockJobRepository(t)
		mockAppRepo := mockRepo.NewMockApplicationRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().ApplicationRepo().Return(mockAppRepo)
		factory.EXPECT().JobRepo().Return(mockJobRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockAppRepo.EXPECT().
			FindByID(ctx, applicationID).
			Return(&entity.Application{ID: applicationID, JobID: jobID}, nil)
		mockJobRepo.EXPECT().
			FindByID(ctx, jobID).
			Return(&entity.Job{ID: jobID, EmployerID: uuid.New()}, nil)
	})

	application, err := fx.service.UpdateStatus(ctx, &usecase.UpdateApplicationStatusInput{
		ApplicationID: applicationID,
		EmployerID:    uuid.New(),
		Status:        entity.ApplicationStatusRejected,
	})

	assert.Error(t, err)
	assert.Nil(t, application)
	assert.True(t, errors.Is(err, domainerrors.ErrJobOwnershipViolation))
}

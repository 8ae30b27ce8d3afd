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
	mockSvc "skillconnect/internal/mocks/service"
	"skillconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type jobServiceFixtures struct {
	service   usecase.JobUsecase
	txManager *mockRepo.MockTransactionManager
	qrService *mockSvc.MockQRCodeService
}

func createTestJobService(t *testing.T) jobServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewJobService(JobServiceParams{
		TxManager: txManager,
		QRService: qrService,
		Logger:    logger,
	})

	return jobServiceFixtures{service: svc, txManager: txManager, qrService: qrService}
}

func (fx jobServiceFixtures) onExecute(t *testing.T, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			setup(mockFactory)

			return fn(mockFactory)
		})
}

func TestJobService_CreateJob_Success(t *testing.T) {
	fx := createTestJobService(t)

	ctx := context.Background()
	employerID := uuid.New()
	input := &usecase.CreateJobInput{
		EmployerID:  employerID,
		Title:       "Electrician — Nairobi West",
		Description: "Wiring for a residential estate",
		Location:    "Nairobi",
		SalaryMin:   40000,
		SalaryMax:   70000,
	}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockJobRepo := mockRepo.NewMockJobRepository(t)
		factory.EXPECT().JobRepo().Return(mockJobRepo)

		mockJobRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Job")).
			Run(func(ctx context.Context, job *entity.Job) {
				job.ID = uuid.New()
			}).
			Return(nil)
	})

	job, err := fx.service.CreateJob(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, employerID, job.EmployerID)
	assert.Equal(t, entity.JobStatusOpen, job.Status)
}

func TestJobService_CreateJob_InvertedSalaryRange(t *testing.T) {
	fx := createTestJobService(t)

	job, err := fx.service.CreateJob(context.Background(), &usecase.CreateJobInput{
		EmployerID: uuid.New(),
		Title:      "Mason",
		SalaryMin:  80000,
		SalaryMax:  50000,
	})

	assert.Error(t, err)
	assert.Nil(t, job)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestJobService_UpdateJob_OwnershipViolation(t *testing.T) {
	fx := createTestJobService(t)

	ctx := context.Background()
	jobID := uuid.New()
	owner := uuid.New()
	intruder := uuid.New()

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockJobRepo := mockRepo.NewMockJobRepository(t)
		factory.EXPECT().JobRepo().Return(mockJobRepo)

		mockJobRepo.EXPECT().
			FindByID(ctx, jobID).
			Return(&entity.Job{ID: jobID, EmployerID: owner, Status: entity.JobStatusOpen}, nil)
	})

	job, err := fx.service.UpdateJob(ctx, &usecase.UpdateJobInput{
		JobID:      jobID,
		EmployerID: intruder,
		Title:      "Hijacked",
	})

	assert.Error(t, err)
	assert.Nil(t, job)
	assert.True(t, errors.Is(err, domainerrors.ErrJobOwnershipViolation))
}

func TestJobService_UpdateJob_CanClosePosting(t *testing.T) {
	fx := createTestJobService(t)

	ctx := context.Background()
	jobID := uuid.New()
	owner := uuid.New()

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockJobRepo := mockRepo.NewMockJobRepository(t)
		factory.EXPECT().JobRepo().Return(mockJobRepo)

		mockJobRepo.EXPECT().
			FindByID(ctx, jobID).
			Return(&entity.Job{ID: jobID, EmployerID: owner, Title: "Mason", Status: entity.JobStatusOpen}, nil)
		mockJobRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Job")).
			Run(func(ctx context.Context, job *entity.Job) {
				assert.Equal(t, entity.JobStatusClosed, job.Status)
			}).
			Return(nil)
	})

	job, err := fx.service.UpdateJob(ctx, &usecase.UpdateJobInput{
		JobID:      jobID,
		EmployerID: owner,
		Title:      "Mason",
		Status:     entity.JobStatusClosed,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusClosed, job.Status)
}

func TestJobService_DeleteJob_NotFound(t *testing.T) {
	fx := createTestJobService(t)

	ctx := context.Background()
	jobID := uuid.New()

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockJobRepo := mockRepo.NewMockJobRepository(t)
		factory.EXPECT().JobRepo().Return(mockJobRepo)

		mockJobRepo.EXPECT().FindByID(ctx, jobID).Return(nil, repository.ErrJobNotFound)
	})

	err := fx.service.DeleteJob(ctx, jobID, uuid.New())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrJobNotFound))
}

func TestJobService_ListJobs_PassesFilter(t *testing.T) {
	fx := createTestJobService(t)

	ctx := context.Background()
	expected := []*entity.Job{{ID: uuid.New(), Title: "Welder", Location: "Eldoret"}}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockJobRepo := mockRepo.NewMockJobRepository(t)
		factory.EXPECT().JobRepo().Return(mockJobRepo)

		mockJobRepo.EXPECT().
			List(ctx, repository.JobFilter{
				Location: "Eldoret",
				Status:   entity.JobStatusOpen,
				Search:   "weld",
				Limit:    10,
			}).
			Return(expected, nil)
	})

	jobs, err := fx.service.ListJobs(ctx, &usecase.ListJobsInput{
		Location: "Eldoret",
		Status:   entity.JobStatusOpen,
		Search:   "weld",
		Limit:    10,
	})

	require.NoError(t, err)
	assert.Equal(t, expected, jobs)
}

func TestJobService_GenerateShareQR_Success(t *testing.T) {
	fx := createTestJobService(t)

	ctx := context.Background()
	jobID := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockJobRepo := mockRepo.NewMockJobRepository(t)
		factory.EXPECT().JobRepo().Return(mockJobRepo)

		mockJobRepo.EXPECT().
			FindByID(ctx, jobID).
			Return(&entity.Job{ID: jobID, Status: entity.JobStatusOpen}, nil)
	})

	fx.qrService.EXPECT().GenerateJobShareQR(jobID).Return(png, nil)

	data, err := fx.service.GenerateShareQR(ctx, jobID)

	require.NoError(t, err)
	assert.Equal(t, png, data)
}

func TestJobService_GenerateShareQR_UnknownJob(t *testing.T) {
	fx := createTestJobService(t)

	ctx := context.Background()
	jobID := uuid.New()

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockJobRepo := mockRepo.NewMockJobRepository(t)
		factory.EXPECT().JobRepo().Return(mockJobRepo)

		mockJobRepo.EXPECT().FindByID(ctx, jobID).Return(nil, repository.ErrJobNotFound)
	})

	data, err := fx.service.GenerateShareQR(ctx, jobID)

	assert.Error(t, err)
	assert.Nil(t, data)
	assert.True(t, errors.Is(err, domainerrors.ErrJobNotFound))
}

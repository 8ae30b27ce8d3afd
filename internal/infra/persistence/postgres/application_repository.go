// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"skillconnect/internal/domain/entity"
	domainerrors "skillconnect/internal/domain/errors"
	"skillconnect/internal/domain/repository"
	"skillconnect/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// applicationRepository implements the domain.ApplicationRepository interface using GORM.
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository is the constructor for applicationRepository.
func NewApplicationRepository(db *gorm.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

// FindByID retrieves a single application by its unique ID.
func (repo *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Application, error) {
	var appM model.ApplicationModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&appM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find application by id")
	}

	return toApplicationDomain(&appM), nil
}

// FindByJobID retrieves all applications submitted against a posting, newest first.
func (repo *applicationRepository) FindByJobID(ctx context.Context, jobID uuid.UUID) ([]*entity.Application, error) {
	var appMs []model.ApplicationModel
	err := repo.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&appMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find applications by job id")
	}

	return toApplicationDomainSlice(appMs), nil
}

// FindBySeekerID retrieves all applications a seeker has submitted, newest first.
func (repo *applicationRepository) FindBySeekerID(ctx context.Context, seekerID uuid.UUID) ([]*entity.Application, error) {
	var appMs []model.ApplicationModel
	err := repo.db.WithContext(ctx).
		Where("seeker_id = ?", seekerID).
		Order("created_at DESC").
		Find(&appMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find applications by seeker id")
	}

	return toApplicationDomainSlice(appMs), nil
}

// FindByJobAndSeeker retrieves the application a seeker holds against a posting, if any.
func (repo *applicationRepository) FindByJobAndSeeker(ctx context.Context, jobID, seekerID uuid.UUID) (*entity.Application, error) {
	var appM model.ApplicationModel
	err := repo.db.WithContext(ctx).
		Where("job_id = ? AND seeker_id = ?", jobID, seekerID).
		First(&appM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find application by job and seeker")
	}

	return toApplicationDomain(&appM), nil
}

// Create persists a new application. The unique index on (job_id, seeker_id)
// enforces the one-application-per-posting rule at the database level.
func (repo *applicationRepository) Create(ctx context.Context, application *entity.Application) error {
	appM := fromApplicationDomain(application)

	if err := repo.db.WithContext(ctx).Create(appM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateApplication
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrJobNotFound.WrapMessage("invalid job or seeker reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required application information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create application")
	}

	application.ID = appM.ID
	application.CreatedAt = appM.CreatedAt
	application.UpdatedAt = appM.UpdatedAt

	return nil
}

// UpdateStatus transitions an application to a new review state.
func (repo *applicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ApplicationModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update application status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrApplicationNotFound
	}

	return nil
}

// toApplicationDomain converts a GORM ApplicationModel to a domain Application entity.
func toApplicationDomain(data *model.ApplicationModel) *entity.Application {
	if data == nil {
		return nil
	}

	return &entity.Application{
		ID:          data.ID,
		JobID:       data.JobID,
		SeekerID:    data.SeekerID,
		CoverLetter: data.CoverLetter,
		Status:      entity.ApplicationStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toApplicationDomainSlice(data []model.ApplicationModel) []*entity.Application {
	applications := make([]*entity.Application, 0, len(data))
	for i := range data {
		applications = append(applications, toApplicationDomain(&data[i]))
	}

	return applications
}

// fromApplicationDomain converts a domain Application entity to a GORM model for persistence.
func fromApplicationDomain(data *entity.Application) *model.ApplicationModel {
	if data == nil {
		return nil
	}

	return &model.ApplicationModel{
		ID:          data.ID,
		JobID:       data.JobID,
		SeekerID:    data.SeekerID,
		CoverLetter: data.CoverLetter,
		Status:      string(data.Status),
	}
}

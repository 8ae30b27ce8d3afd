// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"skillconnect/internal/domain/entity"
	domainerrors "skillconnect/internal/domain/errors"
	"skillconnect/internal/domain/repository"
	"skillconnect/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultJobListLimit = 20

// jobRepository implements the domain.JobRepository interface using GORM.
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository is the constructor for jobRepository.
func NewJobRepository(db *gorm.DB) repository.JobRepository {
	return &jobRepository{db: db}
}

// FindByID retrieves a single posting by its unique ID.
func (repo *jobRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	var jobM model.JobModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&jobM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job by id")
	}

	return toJobDomain(&jobM), nil
}

// FindByEmployerID retrieves all postings owned by an employer, newest first.
func (repo *jobRepository) FindByEmployerID(ctx context.Context, employerID uuid.UUID) ([]*entity.Job, error) {
	var jobMs []model.JobModel
	err := repo.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find jobs by employer id")
	}

	return toJobDomainSlice(jobMs), nil
}

// List retrieves postings matching the filter, newest first.
func (repo *jobRepository) List(ctx context.Context, filter repository.JobFilter) ([]*entity.Job, error) {
	query := repo.db.WithContext(ctx).Model(&model.JobModel{})

	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Search != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultJobListLimit
	}

	var jobMs []model.JobModel
	err := query.
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(limit).
		Find(&jobMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list jobs")
	}

	return toJobDomainSlice(jobMs), nil
}

// Create persists a new posting.
func (repo *jobRepository) Create(ctx context.Context, job *entity.Job) error {
	jobM := fromJobDomain(job)

	if err := repo.db.WithContext(ctx).Create(jobM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrJobNotFound.WrapMessage("invalid employer reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required job information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create job")
	}

	job.ID = jobM.ID
	job.CreatedAt = jobM.CreatedAt
	job.UpdatedAt = jobM.UpdatedAt

	return nil
}

// Update modifies an existing posting.
func (repo *jobRepository) Update(ctx context.Context, job *entity.Job) error {
	jobM := fromJobDomain(job)

	if err := repo.db.WithContext(ctx).Save(jobM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required job information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update job")
	}

	job.UpdatedAt = jobM.UpdatedAt

	return nil
}

// Delete removes a posting.
func (repo *jobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.JobModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete job")
	}
	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

// toJobDomain converts a GORM JobModel to a domain Job entity.
func toJobDomain(data *model.JobModel) *entity.Job {
	if data == nil {
		return nil
	}

	return &entity.Job{
		ID:          data.ID,
		EmployerID:  data.EmployerID,
		Title:       data.Title,
		Description: data.Description,
		Location:    data.Location,
		SalaryMin:   data.SalaryMin,
		SalaryMax:   data.SalaryMax,
		Status:      entity.JobStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toJobDomainSlice(data []model.JobModel) []*entity.Job {
	jobs := make([]*entity.Job, 0, len(data))
	for i := range data {
		jobs = append(jobs, toJobDomain(&data[i]))
	}

	return jobs
}

// fromJobDomain converts a domain Job entity to a GORM JobModel for persistence.
func fromJobDomain(data *entity.Job) *model.JobModel {
	if data == nil {
		return nil
	}

	return &model.JobModel{
		ID:          data.ID,
		EmployerID:  data.EmployerID,
		Title:       data.Title,
		Description: data.Description,
		Location:    data.Location,
		SalaryMin:   data.SalaryMin,
		SalaryMax:   data.SalaryMax,
		Status:      string(data.Status),
	}
}

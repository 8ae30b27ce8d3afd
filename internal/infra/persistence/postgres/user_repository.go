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

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading their role profiles.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("SeekerProfile").
		Preload("EmployerProfile").
		Where("id = ?", id).
		First(&userM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address, preloading role profiles.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("SeekerProfile").
		Preload("EmployerProfile").
		Where("email = ?", email).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// List retrieves users ordered by creation time, newest first.
func (repo *userRepository) List(ctx context.Context, offset, limit int) ([]*entity.User, error) {
	var userMs []model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("SeekerProfile").
		Preload("EmployerProfile").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&userMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		users = append(users, toUserDomain(&userMs[i]))
	}

	return users, nil
}

// Create persists a new user entity, including its associated profiles, to the database.
// GORM's Create with associations will insert into users, seeker_profiles and/or
// employer_profiles within a single statement batch.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	// Map the pure domain entity to a GORM persistence model.
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid foreign key reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	if user.SeekerProfile != nil && userM.SeekerProfile != nil {
		user.SeekerProfile.UserID = userM.SeekerProfile.UserID
		user.SeekerProfile.UpdatedAt = userM.SeekerProfile.UpdatedAt
	}
	if user.EmployerProfile != nil && userM.EmployerProfile != nil {
		user.EmployerProfile.UserID = userM.EmployerProfile.UserID
		user.EmployerProfile.UpdatedAt = userM.EmployerProfile.UpdatedAt
	}

	return nil
}

// Update modifies an existing user entity, including its associated profiles, in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	// Use Session with FullSaveAssociations to update nested associations
	err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(userM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("invalid foreign key reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt
	if user.SeekerProfile != nil && userM.SeekerProfile != nil {
		user.SeekerProfile.UpdatedAt = userM.SeekerProfile.UpdatedAt
	}
	if user.EmployerProfile != nil && userM.EmployerProfile != nil {
		user.EmployerProfile.UpdatedAt = userM.EmployerProfile.UpdatedAt
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:              data.ID,
		Email:           data.Email,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Suspended:       data.Suspended,
		SeekerProfile:   toSeekerProfileDomain(data.SeekerProfile),
		EmployerProfile: toEmployerProfileDomain(data.EmployerProfile),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:              data.ID,
		Email:           data.Email,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Suspended:       data.Suspended,
		SeekerProfile:   fromSeekerProfileDomain(data.SeekerProfile),
		EmployerProfile: fromEmployerProfileDomain(data.EmployerProfile),
	}
}

func toSeekerProfileDomain(data *model.SeekerProfileModel) *entity.SeekerProfile {
	if data == nil {
		return nil
	}

	return &entity.SeekerProfile{
		UserID:          data.UserID,
		Skills:          data.Skills,
		ExperienceYears: data.ExperienceYears,
		Location:        data.Location,
		Bio:             data.Bio,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromSeekerProfileDomain(data *entity.SeekerProfile) *model.SeekerProfileModel {
	if data == nil {
		return nil
	}

	return &model.SeekerProfileModel{
		UserID:          data.UserID,
		Skills:          data.Skills,
		ExperienceYears: data.ExperienceYears,
		Location:        data.Location,
		Bio:             data.Bio,
	}
}

func toEmployerProfileDomain(data *model.EmployerProfileModel) *entity.EmployerProfile {
	if data == nil {
		return nil
	}

	return &entity.EmployerProfile{
		UserID:      data.UserID,
		CompanyName: data.CompanyName,
		CompanySize: data.CompanySize,
		Industry:    data.Industry,
		Location:    data.Location,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromEmployerProfileDomain(data *entity.EmployerProfile) *model.EmployerProfileModel {
	if data == nil {
		return nil
	}

	return &model.EmployerProfileModel{
		UserID:      data.UserID,
		CompanyName: data.CompanyName,
		CompanySize: data.CompanySize,
		Industry:    data.Industry,
		Location:    data.Location,
	}
}

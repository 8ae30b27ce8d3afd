package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	FirstName string    `gorm:"type:varchar(100);not null"`
	LastName  string    `gorm:"type:varchar(100);not null"`
	Suspended bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`

	SeekerProfile   *SeekerProfileModel   `gorm:"foreignKey:UserID"`
	EmployerProfile *EmployerProfileModel `gorm:"foreignKey:UserID"`
	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// SeekerProfileModel mirrors the 'seeker_profiles' table. UserID references users.id (UUID).
type SeekerProfileModel struct {
	UserID          uuid.UUID `gorm:"primaryKey"`
	Skills          []string  `gorm:"type:jsonb;serializer:json"`
	ExperienceYears int       `gorm:"not null;default:0"`
	Location        string    `gorm:"type:varchar(100)"`
	Bio             string    `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SeekerProfileModel) TableName() string {
	return "seeker_profiles"
}

// EmployerProfileModel mirrors the 'employer_profiles' table. UserID references users.id (UUID).
type EmployerProfileModel struct {
	UserID      uuid.UUID `gorm:"primaryKey"`
	CompanyName string    `gorm:"type:varchar(100);not null"`
	CompanySize string    `gorm:"type:varchar(50)"`
	Industry    string    `gorm:"type:varchar(100)"`
	Location    string    `gorm:"type:varchar(100)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmployerProfileModel) TableName() string {
	return "employer_profiles"
}

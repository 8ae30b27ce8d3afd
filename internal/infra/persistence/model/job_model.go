package model

import (
	"time"

	"github.com/google/uuid"
)

// JobModel mirrors the 'jobs' table. Salary bounds are stored in Kenyan Shillings.
type JobModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EmployerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text;not null"`
	Location    string    `gorm:"type:varchar(100);index"`
	SalaryMin   int       `gorm:"not null;default:0"`
	SalaryMax   int       `gorm:"not null;default:0"`
	Status      string    `gorm:"type:varchar(20);not null;default:'open';index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Applications []ApplicationModel `gorm:"foreignKey:JobID"`
}

// TableName explicitly sets the table name for GORM.
func (JobModel) TableName() string {
	return "jobs"
}

// ApplicationModel mirrors the 'applications' table. A seeker may apply to a job once.
type ApplicationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	JobID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_seeker"`
	SeekerID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_seeker"`
	CoverLetter string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ApplicationModel) TableName() string {
	return "applications"
}

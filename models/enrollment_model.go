package models

import (
	"time"
)

type Enrollment struct {
	ID                 string           `gorm:"size:20;primaryKey" json:"id"`
	StudentID          string           `gorm:"size:20;not null" json:"student_id"`
	CourseID           string           `gorm:"size:20;not null" json:"course_id"`
	Status             EnrollmentStatus `gorm:"size:20;not null" json:"status"`
	ProgressPercentage int              `gorm:"default:0" json:"progress_percentage"`
	LessonsCompleted   int              `gorm:"default:0" json:"lessons_completed"`
	CompletedAt        *time.Time       `json:"completed_at,omitempty"`
	Score              *float64         `gorm:"type:numeric(5,2)" json:"score,omitempty"`

	// Denormalized: the enrollment carries the generated course itself, not
	// just its id.
	Course *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Enrollment) IsCompleted() bool {
	return e.Status == EnrollmentCompleted
}

// QualifiesForCertificate reports whether the enrollment is completed with a
// recorded passing score.
func (e *Enrollment) QualifiesForCertificate() bool {
	return e.Status == EnrollmentCompleted && e.Score != nil && *e.Score >= PassingScore
}

// PassingScore is the minimum final score that earns a certificate.
const PassingScore = 70.0

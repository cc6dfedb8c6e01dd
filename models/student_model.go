package models

import (
	"time"
)

type Student struct {
	ID           string          `gorm:"size:20;primaryKey" json:"id"`
	FirstName    string          `gorm:"size:100;not null" json:"first_name"`
	LastName     string          `gorm:"size:100;not null" json:"last_name"`
	Email        string          `gorm:"size:255;not null;unique" json:"email"`
	DateOfBirth  time.Time       `json:"date_of_birth"`
	Level        ExperienceLevel `gorm:"size:30;not null" json:"level"`
	IsActive     bool            `gorm:"default:true" json:"is_active"`
	AverageScore *float64        `gorm:"type:numeric(5,2)" json:"average_score"`
	PasswordHash string          `gorm:"size:255" json:"-"`

	Enrollments []*Enrollment `gorm:"foreignKey:StudentID" json:"enrollments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// AddEnrollment appends to the student's owned enrollment list. Entries are
// never removed.
func (s *Student) AddEnrollment(e *Enrollment) {
	s.Enrollments = append(s.Enrollments, e)
}

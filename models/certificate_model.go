package models

import (
	"time"
)

type Certificate struct {
	ID                string     `gorm:"size:20;primaryKey" json:"id"`
	StudentID         string     `gorm:"size:20;not null" json:"student_id"`
	CourseID          string     `gorm:"size:20;not null" json:"course_id"`
	StudentName       string     `gorm:"size:200" json:"student_name"`
	CourseTitle       string     `gorm:"size:255" json:"course_title"`
	InstructorName    string     `gorm:"size:200" json:"instructor_name"`
	CertificateNumber string     `gorm:"size:64;unique;not null" json:"certificate_number"`
	FinalScore        float64    `gorm:"type:numeric(5,2)" json:"final_score"`
	IssuedAt          time.Time  `gorm:"not null" json:"issued_at"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
	VerificationURL   *string    `gorm:"size:255" json:"verification_url,omitempty"`
}

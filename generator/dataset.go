package generator

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/eduforge/coursegen/models"
)

var validate = validator.New()

// DatasetConfig sets how many entities of each independent kind to generate.
// Certificates are derived from the completed enrollments and have no count.
type DatasetConfig struct {
	Students    int `json:"students" validate:"min=0,max=100000"`
	Instructors int `json:"instructors" validate:"min=1,max=10000"`
	Courses     int `json:"courses" validate:"min=1,max=50000"`
	Enrollments int `json:"enrollments" validate:"min=0,max=500000"`
	Payments    int `json:"payments" validate:"min=0,max=500000"`
	Reviews     int `json:"reviews" validate:"min=0,max=500000"`
}

// DefaultConfig is a dataset sized for local demos.
func DefaultConfig() DatasetConfig {
	return DatasetConfig{
		Students:    50,
		Instructors: 10,
		Courses:     20,
		Enrollments: 120,
		Payments:    80,
		Reviews:     60,
	}
}

// Dataset is the closed entity graph one full generation run produces.
type Dataset struct {
	Students     []*models.Student     `json:"students"`
	Instructors  []*models.Instructor  `json:"instructors"`
	Courses      []*models.Course      `json:"courses"`
	Enrollments  []*models.Enrollment  `json:"enrollments"`
	Payments     []*models.Payment     `json:"payments"`
	Reviews      []*models.Review      `json:"reviews"`
	Certificates []*models.Certificate `json:"certificates"`
	GeneratedAt  time.Time             `json:"generated_at"`
}

// DatasetStats summarizes a dataset for the preview API.
type DatasetStats struct {
	Students     int       `json:"students"`
	Instructors  int       `json:"instructors"`
	Courses      int       `json:"courses"`
	Lessons      int       `json:"lessons"`
	Enrollments  int       `json:"enrollments"`
	Payments     int       `json:"payments"`
	Reviews      int       `json:"reviews"`
	Certificates int       `json:"certificates"`
	GeneratedAt  time.Time `json:"generated_at"`
}

func (d *Dataset) Stats() DatasetStats {
	lessons := 0
	for _, course := range d.Courses {
		lessons += len(course.Lessons)
	}
	return DatasetStats{
		Students:     len(d.Students),
		Instructors:  len(d.Instructors),
		Courses:      len(d.Courses),
		Lessons:      lessons,
		Enrollments:  len(d.Enrollments),
		Payments:     len(d.Payments),
		Reviews:      len(d.Reviews),
		Certificates: len(d.Certificates),
		GeneratedAt:  d.GeneratedAt,
	}
}

// FindCertificate returns the certificate with the given id, or nil.
func (d *Dataset) FindCertificate(id string) *models.Certificate {
	for _, cert := range d.Certificates {
		if cert.ID == id {
			return cert
		}
	}
	return nil
}

// GenerateDataset runs the full feed-forward generation pipeline in
// dependency order: students and instructors first, then courses (with
// lessons), then enrollments, payments and reviews, and finally the
// certificates derived from completed enrollments.
func (g *Generator) GenerateDataset(cfg DatasetConfig) (*Dataset, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid dataset config: %w", err)
	}

	students := g.GenerateStudents(cfg.Students)
	instructors := g.GenerateInstructors(cfg.Instructors)

	courses, err := g.GenerateCourses(cfg.Courses, instructors)
	if err != nil {
		return nil, err
	}

	enrollments, err := g.GenerateEnrollments(students, courses, cfg.Enrollments)
	if err != nil {
		return nil, err
	}

	payments, err := g.GeneratePayments(students, courses, cfg.Payments)
	if err != nil {
		return nil, err
	}

	reviews, err := g.GenerateReviews(students, courses, cfg.Reviews)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		Students:     students,
		Instructors:  instructors,
		Courses:      courses,
		Enrollments:  enrollments,
		Payments:     payments,
		Reviews:      reviews,
		Certificates: g.GenerateCertificates(enrollments),
		GeneratedAt:  time.Now(),
	}, nil
}

package generator

import (
	"fmt"

	"github.com/eduforge/coursegen/models"
)

// GenerateEnrollments produces count enrollments, each pairing a student and
// a course picked independently and uniformly at random (with replacement;
// duplicate pairs are expected). Completed enrollments are forced to 100%
// progress and get a past completion timestamp plus a score. Every
// enrollment is appended to its student's owned enrollment list.
func (g *Generator) GenerateEnrollments(students []*models.Student, courses []*models.Course, count int) ([]*models.Enrollment, error) {
	if len(students) == 0 {
		return nil, fmt.Errorf("generate enrollments: %w: students", ErrEmptyParents)
	}
	if len(courses) == 0 {
		return nil, fmt.Errorf("generate enrollments: %w: courses", ErrEmptyParents)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	enrollments := make([]*models.Enrollment, 0, count)
	for i := 0; i < count; i++ {
		id := g.nextID(&g.enrollmentSeq, "ENR")

		student := students[g.rng.Intn(len(students))]
		course := courses[g.rng.Intn(len(courses))]
		status := models.AllEnrollmentStatuses[g.rng.Intn(len(models.AllEnrollmentStatuses))]

		enrollment := &models.Enrollment{
			ID:                 id,
			StudentID:          student.ID,
			CourseID:           course.ID,
			Course:             course,
			Status:             status,
			ProgressPercentage: g.rng.Intn(101),
			LessonsCompleted:   g.rng.Intn(len(course.Lessons) + 1),
		}

		if status == models.EnrollmentCompleted {
			enrollment.ProgressPercentage = 100
			completedAt := g.daysAgo(100)
			enrollment.CompletedAt = &completedAt
			score := g.floatBetween(60, 100)
			enrollment.Score = &score
		}

		student.AddEnrollment(enrollment)
		enrollments = append(enrollments, enrollment)
	}
	return enrollments, nil
}

package generator

import (
	"testing"
	"time"

	"github.com/eduforge/coursegen/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildParents(t *testing.T, g *Generator, studentCount, courseCount int) ([]*models.Student, []*models.Course) {
	t.Helper()
	students := g.GenerateStudents(studentCount)
	instructors := g.GenerateInstructors(3)
	courses, err := g.GenerateCourses(courseCount, instructors)
	require.NoError(t, err)
	return students, courses
}

func TestGenerateEnrollmentsEmptyParents(t *testing.T) {
	g := New(42)
	students, courses := buildParents(t, g, 5, 5)

	_, err := g.GenerateEnrollments(nil, courses, 3)
	require.ErrorIs(t, err, ErrEmptyParents)

	_, err = g.GenerateEnrollments(students, nil, 3)
	require.ErrorIs(t, err, ErrEmptyParents)
}

func TestEnrollmentReferentialIntegrity(t *testing.T) {
	g := New(42)
	students, courses := buildParents(t, g, 10, 8)

	enrollments, err := g.GenerateEnrollments(students, courses, 100)
	require.NoError(t, err)
	require.Len(t, enrollments, 100)

	courseByID := make(map[string]*models.Course)
	for _, c := range courses {
		courseByID[c.ID] = c
	}
	studentByID := make(map[string]*models.Student)
	for _, s := range students {
		studentByID[s.ID] = s
	}

	for _, enrollment := range enrollments {
		require.NotNil(t, enrollment.Course)
		// The embedded course must be one of the supplied course values.
		assert.Same(t, courseByID[enrollment.CourseID], enrollment.Course)

		// Ownership: the originating student's roster holds this enrollment.
		student := studentByID[enrollment.StudentID]
		require.NotNil(t, student)
		assert.Contains(t, student.Enrollments, enrollment)
	}
}

func TestEnrollmentInvariants(t *testing.T) {
	g := New(42)
	students, courses := buildParents(t, g, 10, 8)

	enrollments, err := g.GenerateEnrollments(students, courses, 300)
	require.NoError(t, err)

	completed := 0
	for _, enrollment := range enrollments {
		assert.GreaterOrEqual(t, enrollment.ProgressPercentage, 0)
		assert.LessOrEqual(t, enrollment.ProgressPercentage, 100)
		assert.LessOrEqual(t, enrollment.LessonsCompleted, len(enrollment.Course.Lessons))

		if enrollment.Status == models.EnrollmentCompleted {
			completed++
			assert.Equal(t, 100, enrollment.ProgressPercentage)

			require.NotNil(t, enrollment.Score)
			assert.GreaterOrEqual(t, *enrollment.Score, 60.0)
			assert.Less(t, *enrollment.Score, 100.0)

			require.NotNil(t, enrollment.CompletedAt)
			assert.True(t, enrollment.CompletedAt.Before(time.Now().Add(time.Second)))
			assert.True(t, enrollment.CompletedAt.After(time.Now().AddDate(0, 0, -101)))
		} else {
			assert.Nil(t, enrollment.Score)
			assert.Nil(t, enrollment.CompletedAt)
		}
	}
	assert.Greater(t, completed, 0, "no completed enrollments over 300 draws")
}

func TestEnrollmentZeroCount(t *testing.T) {
	g := New(42)
	students, courses := buildParents(t, g, 3, 3)

	enrollments, err := g.GenerateEnrollments(students, courses, 0)
	require.NoError(t, err)
	assert.Empty(t, enrollments)
}

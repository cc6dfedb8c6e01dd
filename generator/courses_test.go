package generator

import (
	"strings"
	"testing"

	"github.com/eduforge/coursegen/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCoursesEmptyInstructors(t *testing.T) {
	g := New(42)

	courses, err := g.GenerateCourses(5, nil)
	require.ErrorIs(t, err, ErrEmptyParents)
	assert.Nil(t, courses)
}

func TestCourseInstructorWiring(t *testing.T) {
	g := New(42)

	instructors := g.GenerateInstructors(4)
	courses, err := g.GenerateCourses(30, instructors)
	require.NoError(t, err)
	require.Len(t, courses, 30)

	known := make(map[string]*models.Instructor)
	for _, ins := range instructors {
		known[ins.ID] = ins
	}

	for _, course := range courses {
		require.NotNil(t, course.Instructor)
		assert.Contains(t, known, course.Instructor.ID)
		assert.Equal(t, course.InstructorID, course.Instructor.ID)

		// Bidirectional: the instructor's roster must list this course.
		found := false
		for _, c := range course.Instructor.Courses {
			if c.ID == course.ID {
				found = true
			}
		}
		assert.True(t, found, "instructor %s does not list course %s", course.InstructorID, course.ID)
	}
}

func TestCoursePriceBoundsAndFreeTag(t *testing.T) {
	g := New(42)

	instructors := g.GenerateInstructors(3)
	courses, err := g.GenerateCourses(200, instructors)
	require.NoError(t, err)

	free := 0
	for _, course := range courses {
		if course.IsFree() {
			free++
			assert.True(t, course.HasTag("free"), "free course %s missing free tag", course.ID)
		} else {
			assert.GreaterOrEqual(t, course.Price, 19.99)
			assert.Less(t, course.Price, 299.99)
			assert.False(t, course.HasTag("free"), "paid course %s has free tag", course.ID)
		}

		assert.True(t, course.HasTag(course.Category.Display()))
		assert.True(t, course.HasTag(strings.ToLower(string(course.Difficulty))))

		assert.GreaterOrEqual(t, course.Rating, 3.0)
		assert.Less(t, course.Rating, 5.0)
		assert.GreaterOrEqual(t, course.DurationHours, 10)
		assert.Less(t, course.DurationHours, 110)
		assert.Less(t, course.EnrollmentCount, 10000)
	}
	// With CourseFreeProbability at 0.2 both branches must occur over 200 draws.
	assert.Greater(t, free, 0)
	assert.Less(t, free, 200)
}

func TestCourseLessons(t *testing.T) {
	g := New(42)

	instructors := g.GenerateInstructors(2)
	courses, err := g.GenerateCourses(50, instructors)
	require.NoError(t, err)

	for _, course := range courses {
		assert.GreaterOrEqual(t, len(course.Lessons), 5)
		assert.Less(t, len(course.Lessons), 25)

		for i, lesson := range course.Lessons {
			assert.Equal(t, course.ID, lesson.CourseID)
			assert.Equal(t, i, lesson.OrderIndex)
			assert.GreaterOrEqual(t, lesson.DurationMinutes, 5)
			assert.Less(t, lesson.DurationMinutes, 65)

			if lesson.Type == models.LessonVideo {
				require.NotNil(t, lesson.VideoURL)
				assert.Contains(t, *lesson.VideoURL, course.ID)
			} else {
				assert.Nil(t, lesson.VideoURL)
			}
		}
	}
}

func TestLessonFreePreviewBoundary(t *testing.T) {
	g := New(42)

	previews := 0
	for i := 0; i < 400; i++ {
		orderIndex := i % 5
		lesson := g.GenerateLesson("CRS-3000", orderIndex)

		if orderIndex >= 2 {
			assert.False(t, lesson.IsFreePreview, "lesson at order index %d marked free preview", orderIndex)
		} else if lesson.IsFreePreview {
			previews++
		}
	}
	assert.Greater(t, previews, 0, "no free previews at order index 0 or 1 over 400 draws")
}

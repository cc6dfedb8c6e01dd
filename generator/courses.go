package generator

import (
	"fmt"
	"strings"

	"github.com/eduforge/coursegen/models"
)

var courseTitlePrefixes = []string{
	"Complete Guide to",
	"Mastering",
	"Introduction to",
	"Advanced",
	"Practical",
	"The Ultimate",
	"Hands-On",
}

var lessonTitlePrefixes = []string{
	"Getting Started with",
	"Deep Dive into",
	"Understanding",
	"Working with",
	"Exploring",
	"Building",
}

var lessonTitleTopics = []string{
	"the Fundamentals",
	"Core Concepts",
	"Real-World Examples",
	"Best Practices",
	"Common Pitfalls",
	"Project Setup",
	"Advanced Techniques",
	"the Final Project",
}

// GenerateCourses produces count courses, each assigned to an instructor
// picked uniformly at random from the supplied collection. The link is
// bidirectional: the course stores the instructor and the instructor's
// roster gains the course. Each course gets a randomized set of lessons.
func (g *Generator) GenerateCourses(count int, instructors []*models.Instructor) ([]*models.Course, error) {
	if len(instructors) == 0 {
		return nil, fmt.Errorf("generate courses: %w: instructors", ErrEmptyParents)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	courses := make([]*models.Course, 0, count)
	for i := 0; i < count; i++ {
		id := g.nextID(&g.courseSeq, "CRS")

		instructor := instructors[g.rng.Intn(len(instructors))]
		category := models.AllCategories[g.rng.Intn(len(models.AllCategories))]
		difficulty := models.AllDifficulties[g.rng.Intn(len(models.AllDifficulties))]

		price := 0.0
		if !g.chance(CourseFreeProbability) {
			price = g.floatBetween(19.99, 299.99)
		}

		course := &models.Course{
			ID:              id,
			Title:           fmt.Sprintf("%s %s", courseTitlePrefixes[g.rng.Intn(len(courseTitlePrefixes))], category.Display()),
			Description:     g.faker.Sentence(12),
			Category:        category,
			Difficulty:      difficulty,
			Price:           price,
			DurationHours:   g.intBetween(10, 110),
			InstructorID:    instructor.ID,
			Instructor:      instructor,
			IsPublished:     g.chance(CoursePublishedProbability),
			Rating:          g.floatBetween(3.0, 5.0),
			EnrollmentCount: g.rng.Intn(10000),
		}

		tags := []string{category.Display(), strings.ToLower(string(difficulty))}
		if course.IsFree() {
			tags = append(tags, "free")
		}
		course.Tags = tags

		lessonCount := g.intBetween(5, 25)
		for j := 0; j < lessonCount; j++ {
			course.Lessons = append(course.Lessons, g.generateLesson(course.ID, j))
		}

		instructor.AddCourse(course)
		courses = append(courses, course)
	}
	return courses, nil
}

// GenerateLesson produces a single lesson for the given course id at the
// given zero-based order index.
func (g *Generator) GenerateLesson(courseID string, orderIndex int) *models.Lesson {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generateLesson(courseID, orderIndex)
}

// generateLesson is the unlocked worker; callers must hold g.mu. The
// free-preview flag can only ever be set for the first two order positions,
// and a video URL is only present for video lessons.
func (g *Generator) generateLesson(courseID string, orderIndex int) *models.Lesson {
	id := g.nextID(&g.lessonSeq, "LSN")

	lessonType := models.AllLessonTypes[g.rng.Intn(len(models.AllLessonTypes))]

	lesson := &models.Lesson{
		ID:              id,
		CourseID:        courseID,
		Title:           fmt.Sprintf("%s %s", lessonTitlePrefixes[g.rng.Intn(len(lessonTitlePrefixes))], lessonTitleTopics[g.rng.Intn(len(lessonTitleTopics))]),
		Content:         g.faker.Paragraph(1, 3, 12, " "),
		Type:            lessonType,
		OrderIndex:      orderIndex,
		DurationMinutes: g.intBetween(5, 65),
		IsFreePreview:   orderIndex < 2 && g.chance(LessonFreePreviewProbability),
	}

	if lessonType == models.LessonVideo {
		url := fmt.Sprintf("https://videos.coursegen.dev/%s/lesson-%d.mp4", courseID, orderIndex)
		lesson.VideoURL = &url
	}
	return lesson
}

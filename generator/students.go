package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/eduforge/coursegen/models"
)

// GenerateStudents produces count students with fresh ids, random names,
// emails and birthdates, an activity flag biased toward active, and an
// average score that is absent for roughly half of them ("not yet graded").
// A zero count returns an empty slice.
func (g *Generator) GenerateStudents(count int) []*models.Student {
	g.mu.Lock()
	defer g.mu.Unlock()

	students := make([]*models.Student, 0, count)
	for i := 0; i < count; i++ {
		seq := g.studentSeq
		id := g.nextID(&g.studentSeq, "STU")

		firstName := g.faker.FirstName()
		lastName := g.faker.LastName()

		student := &models.Student{
			ID:          id,
			FirstName:   firstName,
			LastName:    lastName,
			Email:       studentEmail(firstName, lastName, seq),
			DateOfBirth: time.Now().AddDate(-g.intBetween(18, 46), 0, -g.rng.Intn(365)),
			Level:       models.AllExperienceLevels[g.rng.Intn(len(models.AllExperienceLevels))],
			IsActive:    g.chance(0.5) || g.chance(studentActiveFallback),
		}

		if g.chance(StudentScorePresentProbability) {
			score := g.floatBetween(50, 100)
			student.AverageScore = &score
		}

		g.studentNames[student.ID] = student.FullName()
		students = append(students, student)
	}
	return students
}

func studentEmail(first, last string, seq int) string {
	return strings.ToLower(fmt.Sprintf("%s.%s%d@learnmail.dev", first, last, seq))
}

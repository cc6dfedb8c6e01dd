package generator

import (
	"fmt"
	"strings"

	"github.com/eduforge/coursegen/models"
)

// GenerateInstructors produces count instructors. Verification is biased
// toward verified, ratings fall in [3.0, 5.0) and the bio is templated from
// the specialization and a random years-of-experience figure.
func (g *Generator) GenerateInstructors(count int) []*models.Instructor {
	g.mu.Lock()
	defer g.mu.Unlock()

	instructors := make([]*models.Instructor, 0, count)
	for i := 0; i < count; i++ {
		seq := g.instructorSeq
		id := g.nextID(&g.instructorSeq, "INS")

		firstName := g.faker.FirstName()
		lastName := g.faker.LastName()
		specialization := models.AllCategories[g.rng.Intn(len(models.AllCategories))].Display()
		years := g.intBetween(5, 20)

		instructor := &models.Instructor{
			ID:             id,
			FirstName:      firstName,
			LastName:       lastName,
			Email:          strings.ToLower(fmt.Sprintf("%s.%s%d@coursegen.dev", firstName, lastName, seq)),
			Specialization: specialization,
			IsVerified:     g.chance(InstructorVerifiedProbability),
			Rating:         g.floatBetween(3.0, 5.0),
			TotalStudents:  g.rng.Intn(5000),
			Bio:            fmt.Sprintf("%s instructor with %d years of hands-on industry experience.", specialization, years),
		}
		instructors = append(instructors, instructor)
	}
	return instructors
}

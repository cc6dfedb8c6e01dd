package generator

import (
	"fmt"

	"github.com/eduforge/coursegen/models"
)

var reviewTitles = []string{
	"Great course!",
	"Worth every penny",
	"Solid content",
	"Exceeded my expectations",
	"Good but not perfect",
	"Honest review",
}

// Canned comment texts, picked by rating tier.
const (
	reviewCommentPositive = "Really enjoyed this course. The instructor explains everything clearly, the pacing is great and the exercises reinforce the material. Highly recommended."
	reviewCommentNeutral  = "Decent course overall. Some sections are strong while others feel rushed. You will get value out of it, but manage your expectations."
	reviewCommentNegative = "Disappointed with this one. The content is outdated in places and the examples do not always work as shown. Would not recommend at full price."
)

// GenerateReviews produces count reviews, each pairing a random student and
// course. The comment text is chosen by rating tier: 4 and above positive,
// exactly 3 neutral, 2 and below negative.
func (g *Generator) GenerateReviews(students []*models.Student, courses []*models.Course, count int) ([]*models.Review, error) {
	if len(students) == 0 {
		return nil, fmt.Errorf("generate reviews: %w: students", ErrEmptyParents)
	}
	if len(courses) == 0 {
		return nil, fmt.Errorf("generate reviews: %w: courses", ErrEmptyParents)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	reviews := make([]*models.Review, 0, count)
	for i := 0; i < count; i++ {
		id := g.nextID(&g.reviewSeq, "REV")

		student := students[g.rng.Intn(len(students))]
		course := courses[g.rng.Intn(len(courses))]

		review := &models.Review{
			ID:                 id,
			StudentID:          student.ID,
			CourseID:           course.ID,
			StudentName:        student.FullName(),
			Title:              reviewTitles[g.rng.Intn(len(reviewTitles))],
			HelpfulCount:       g.rng.Intn(100),
			IsVerifiedPurchase: g.chance(ReviewVerifiedProbability),
		}
		review.SetRating(g.intBetween(1, 6))
		review.Comment = commentForRating(review.Rating)

		reviews = append(reviews, review)
	}
	return reviews, nil
}

func commentForRating(rating int) string {
	switch {
	case rating >= 4:
		return reviewCommentPositive
	case rating == 3:
		return reviewCommentNeutral
	default:
		return reviewCommentNegative
	}
}

package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReviewsEmptyParents(t *testing.T) {
	g := New(42)
	students, courses := buildParents(t, g, 5, 5)

	_, err := g.GenerateReviews(nil, courses, 3)
	require.ErrorIs(t, err, ErrEmptyParents)

	_, err = g.GenerateReviews(students, nil, 3)
	require.ErrorIs(t, err, ErrEmptyParents)
}

func TestReviewRatingAndCommentTier(t *testing.T) {
	g := New(42)
	students, courses := buildParents(t, g, 10, 8)

	studentByID := make(map[string]string)
	for _, s := range students {
		studentByID[s.ID] = s.FullName()
	}

	reviews, err := g.GenerateReviews(students, courses, 300)
	require.NoError(t, err)

	for _, review := range reviews {
		assert.GreaterOrEqual(t, review.Rating, 1)
		assert.LessOrEqual(t, review.Rating, 5)

		switch {
		case review.Rating >= 4:
			assert.Equal(t, reviewCommentPositive, review.Comment)
		case review.Rating == 3:
			assert.Equal(t, reviewCommentNeutral, review.Comment)
		default:
			assert.Equal(t, reviewCommentNegative, review.Comment)
		}

		assert.Equal(t, studentByID[review.StudentID], review.StudentName)
		assert.Contains(t, reviewTitles, review.Title)
		assert.GreaterOrEqual(t, review.HelpfulCount, 0)
		assert.Less(t, review.HelpfulCount, 100)
	}
}

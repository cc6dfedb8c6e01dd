package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewSetRatingClamps(t *testing.T) {
	var r Review

	r.SetRating(0)
	assert.Equal(t, 1, r.Rating)

	r.SetRating(9)
	assert.Equal(t, 5, r.Rating)

	r.SetRating(3)
	assert.Equal(t, 3, r.Rating)
}

func TestEnrollmentQualifiesForCertificate(t *testing.T) {
	passing := 85.0
	failing := 60.0

	e := Enrollment{Status: EnrollmentCompleted, Score: &passing}
	assert.True(t, e.QualifiesForCertificate())

	e = Enrollment{Status: EnrollmentCompleted, Score: &failing}
	assert.False(t, e.QualifiesForCertificate())

	e = Enrollment{Status: EnrollmentCompleted}
	assert.False(t, e.QualifiesForCertificate())

	e = Enrollment{Status: EnrollmentActive, Score: &passing}
	assert.False(t, e.QualifiesForCertificate())
}

func TestCourseIsFreeAndTags(t *testing.T) {
	c := Course{Price: 0, Tags: []string{"Programming", "beginner", "free"}}
	assert.True(t, c.IsFree())
	assert.True(t, c.HasTag("free"))

	c = Course{Price: 49.99, Tags: []string{"Design", "advanced"}}
	assert.False(t, c.IsFree())
	assert.False(t, c.HasTag("free"))
}

func TestPaymentMethodFeeRates(t *testing.T) {
	for _, method := range AllPaymentMethods {
		assert.Greater(t, method.FeeRate(), 0.0, "method %s has no fee rate", method)
		assert.Less(t, method.FeeRate(), 0.05)
	}
	assert.Zero(t, PaymentMethod("carrier_pigeon").FeeRate())
}

func TestCategoryDisplayNames(t *testing.T) {
	for _, category := range AllCategories {
		assert.NotEmpty(t, category.Display())
		assert.NotEqual(t, string(category), "")
	}
	assert.Equal(t, "Data Science", CategoryDataScience.Display())
}

package generator

import (
	"math"
	"testing"

	"github.com/eduforge/coursegen/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePaymentsEmptyParents(t *testing.T) {
	g := New(42)
	students, courses := buildParents(t, g, 5, 5)

	_, err := g.GeneratePayments(nil, courses, 3)
	require.ErrorIs(t, err, ErrEmptyParents)

	_, err = g.GeneratePayments(students, nil, 3)
	require.ErrorIs(t, err, ErrEmptyParents)
}

func TestPaymentAmounts(t *testing.T) {
	g := New(42)
	students, courses := buildParents(t, g, 10, 8)

	courseByID := make(map[string]*models.Course)
	for _, c := range courses {
		courseByID[c.ID] = c
	}

	payments, err := g.GeneratePayments(students, courses, 300)
	require.NoError(t, err)

	discounted := 0
	for _, payment := range payments {
		course := courseByID[payment.CourseID]
		require.NotNil(t, course)

		assert.Equal(t, course.Price, payment.Amount)
		assert.Equal(t, "USD", payment.Currency)
		assert.InDelta(t, payment.Amount-payment.Discount, payment.FinalAmount, 1e-9)

		if payment.Discount > 0 {
			discounted++
			assert.GreaterOrEqual(t, payment.Discount, payment.Amount*0.10-1e-9)
			assert.Less(t, payment.Discount, payment.Amount*0.40)
		}
		assert.False(t, math.Signbit(payment.FinalAmount))
	}
	assert.Greater(t, discounted, 0, "no discounted payments over 300 draws")
}

func TestPaymentStatusFields(t *testing.T) {
	g := New(42)
	students, courses := buildParents(t, g, 10, 8)

	payments, err := g.GeneratePayments(students, courses, 300)
	require.NoError(t, err)

	completed, failed := 0, 0
	for _, payment := range payments {
		switch payment.Status {
		case models.PaymentCompleted:
			completed++
			require.NotNil(t, payment.TransactionID)
			assert.Contains(t, *payment.TransactionID, "TXN-")
			require.NotNil(t, payment.ProcessedAt)
			assert.True(t, payment.ProcessedAt.After(payment.CreatedAt))
			assert.Nil(t, payment.FailureReason)
		case models.PaymentFailed:
			failed++
			require.NotNil(t, payment.FailureReason)
			assert.Nil(t, payment.TransactionID)
			assert.Nil(t, payment.ProcessedAt)
		default:
			assert.Nil(t, payment.TransactionID)
			assert.Nil(t, payment.FailureReason)
			assert.Nil(t, payment.ProcessedAt)
		}
	}
	assert.Greater(t, completed, 0)
	assert.Greater(t, failed, 0)
}

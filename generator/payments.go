package generator

import (
	"fmt"
	"time"

	"github.com/eduforge/coursegen/models"
	"github.com/eduforge/coursegen/utils"
)

const paymentCurrency = "USD"

const paymentFailureReason = "Insufficient funds"

// GeneratePayments produces count payments, each pairing a random student
// and course. The amount mirrors the course price; a discount is applied to
// roughly a third of payments. Completed payments get a processed timestamp
// and a transaction id, failed ones a canned failure reason.
func (g *Generator) GeneratePayments(students []*models.Student, courses []*models.Course, count int) ([]*models.Payment, error) {
	if len(students) == 0 {
		return nil, fmt.Errorf("generate payments: %w: students", ErrEmptyParents)
	}
	if len(courses) == 0 {
		return nil, fmt.Errorf("generate payments: %w: courses", ErrEmptyParents)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	payments := make([]*models.Payment, 0, count)
	for i := 0; i < count; i++ {
		id := g.nextID(&g.paymentSeq, "PAY")

		student := students[g.rng.Intn(len(students))]
		course := courses[g.rng.Intn(len(courses))]
		status := models.AllPaymentStatuses[g.rng.Intn(len(models.AllPaymentStatuses))]

		amount := course.Price
		discount := 0.0
		if g.chance(PaymentDiscountProbability) {
			discount = amount * g.floatBetween(0.10, 0.40)
		}

		createdAt := g.daysAgo(60)

		payment := &models.Payment{
			ID:          id,
			StudentID:   student.ID,
			CourseID:    course.ID,
			Amount:      amount,
			Discount:    discount,
			FinalAmount: amount - discount,
			Currency:    paymentCurrency,
			Method:      models.AllPaymentMethods[g.rng.Intn(len(models.AllPaymentMethods))],
			Status:      status,
			CreatedAt:   createdAt,
		}

		switch status {
		case models.PaymentCompleted:
			processedAt := createdAt.Add(time.Duration(g.intBetween(1, 48)) * time.Hour)
			payment.ProcessedAt = &processedAt
			txn := fmt.Sprintf("TXN-%d-%s", time.Now().Unix(), utils.TransactionCode(g.rng))
			payment.TransactionID = &txn
		case models.PaymentFailed:
			reason := paymentFailureReason
			payment.FailureReason = &reason
		}

		payments = append(payments, payment)
	}
	return payments, nil
}

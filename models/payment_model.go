package models

import (
	"time"
)

type Payment struct {
	ID            string        `gorm:"size:20;primaryKey"`
	StudentID     string        `gorm:"size:20;not null"`
	CourseID      string        `gorm:"size:20;not null"`
	Amount        float64       `gorm:"type:numeric(10,2);not null"`
	Discount      float64       `gorm:"type:numeric(10,2);default:0"`
	FinalAmount   float64       `gorm:"type:numeric(10,2);not null"`
	Currency      string        `gorm:"size:3;not null"`
	Method        PaymentMethod `gorm:"size:20;not null"`
	Status        PaymentStatus `gorm:"size:20;not null"`
	TransactionID *string       `gorm:"size:64;unique"`
	FailureReason *string       `gorm:"type:text"`
	ProcessedAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

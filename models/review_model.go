package models

import (
	"time"
)

type Review struct {
	ID                 string `gorm:"size:20;primaryKey" json:"id"`
	StudentID          string `gorm:"size:20;not null" json:"student_id"`
	CourseID           string `gorm:"size:20;not null" json:"course_id"`
	StudentName        string `gorm:"size:200" json:"student_name"`
	Rating             int    `gorm:"not null" json:"rating"`
	Title              string `gorm:"size:255" json:"title"`
	Comment            string `gorm:"type:text" json:"comment"`
	HelpfulCount       int    `gorm:"default:0" json:"helpful_count"`
	IsVerifiedPurchase bool   `gorm:"default:false" json:"is_verified_purchase"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SetRating clamps the rating into the 1..5 range before storing it.
func (r *Review) SetRating(v int) {
	if v < 1 {
		v = 1
	}
	if v > 5 {
		v = 5
	}
	r.Rating = v
}

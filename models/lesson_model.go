package models

import (
	"time"
)

type Lesson struct {
	ID              string     `gorm:"size:20;primaryKey" json:"id"`
	CourseID        string     `gorm:"size:20;not null" json:"course_id"`
	Title           string     `gorm:"size:255;not null" json:"title"`
	Content         string     `gorm:"type:text" json:"content"`
	Type            LessonType `gorm:"size:20;not null" json:"type"`
	OrderIndex      int        `gorm:"not null" json:"order_index"`
	DurationMinutes int        `json:"duration_minutes"`
	VideoURL        *string    `gorm:"size:255" json:"video_url,omitempty"`
	IsFreePreview   bool       `gorm:"default:false" json:"is_free_preview"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

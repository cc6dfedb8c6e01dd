package models

import (
	"time"

	"gorm.io/datatypes"
)

type Course struct {
	ID              string         `gorm:"size:20;primaryKey" json:"id"`
	Title           string         `gorm:"size:255;not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	Category        CourseCategory `gorm:"size:30;not null" json:"category"`
	Difficulty      Difficulty     `gorm:"size:30;not null" json:"difficulty"`
	Price           float64        `gorm:"type:numeric(10,2);not null" json:"price"`
	DurationHours   int            `json:"duration_hours"`
	InstructorID    string         `gorm:"size:20;not null" json:"instructor_id"`
	IsPublished     bool           `gorm:"default:false" json:"is_published"`
	Rating          float64        `gorm:"type:numeric(3,2)" json:"rating"`
	EnrollmentCount int            `gorm:"default:0" json:"enrollment_count"`

	// Shared back-reference: the instructor the course was generated with also
	// lists this course in its own roster.
	Instructor *Instructor `gorm:"foreignKey:InstructorID" json:"-"`

	Lessons []*Lesson                   `gorm:"foreignKey:CourseID" json:"lessons,omitempty"`
	Tags    datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsFree reports whether the course costs nothing.
func (c *Course) IsFree() bool {
	return c.Price == 0
}

func (c *Course) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

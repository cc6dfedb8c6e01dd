package models

import (
	"time"
)

type Instructor struct {
	ID             string  `gorm:"size:20;primaryKey" json:"id"`
	FirstName      string  `gorm:"size:100;not null" json:"first_name"`
	LastName       string  `gorm:"size:100;not null" json:"last_name"`
	Email          string  `gorm:"size:255;not null;unique" json:"email"`
	Specialization string  `gorm:"size:100" json:"specialization"`
	IsVerified     bool    `gorm:"default:false" json:"is_verified"`
	Rating         float64 `gorm:"type:numeric(3,2)" json:"rating"`
	TotalStudents  int     `gorm:"default:0" json:"total_students"`
	Bio            string  `gorm:"type:text" json:"bio"`

	Courses []*Course `gorm:"foreignKey:InstructorID" json:"courses,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *Instructor) FullName() string {
	return i.FirstName + " " + i.LastName
}

func (i *Instructor) AddCourse(c *Course) {
	i.Courses = append(i.Courses, c)
}

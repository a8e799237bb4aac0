package model

import (
	"time"

	"gorm.io/gorm"
)

// Classroom is one teacher's roster context. UserID is the subject issued by
// the external identity provider; ownership filtering is row-level only.
type Classroom struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UserID      string         `json:"user_id" gorm:"index"`
	SchoolName  string         `json:"school_name" gorm:"not null"`
	Grade       int            `json:"grade" gorm:"not null"`
	ClassNumber int            `json:"class_number" gorm:"not null"`
	TeacherName string         `json:"teacher_name"`
	Students    []Student      `json:"students,omitempty" gorm:"foreignKey:ClassroomID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

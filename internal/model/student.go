package model

import (
	"time"

	"gorm.io/gorm"
)

type Student struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	ClassroomID   uint           `json:"classroom_id" gorm:"not null;index"`
	Name          string         `json:"name" gorm:"not null"`
	PhotoURL      *string        `json:"photo_url,omitempty"`
	StudentNumber *int           `json:"student_number,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

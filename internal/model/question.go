package model

import (
	"time"

	"gorm.io/gorm"
)

// Question is a survey prompt. Default questions are seeded and shared by all
// teachers; custom questions carry the owning teacher's UserID and are
// reusable by them in later surveys.
type Question struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	QuestionText string         `json:"question_text" gorm:"type:text;not null"`
	IsDefault    bool           `json:"is_default" gorm:"not null;default:false"`
	UserID       *string        `json:"user_id,omitempty" gorm:"index"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

package model

import (
	"time"

	"gorm.io/gorm"
)

// Survey is one distributed questionnaire instance for a classroom. Token is
// the opaque capability embedded in the QR code; it grants students access for
// a fixed window measured from TokenCreatedAt.
type Survey struct {
	ID             uint             `gorm:"primarykey" json:"id"`
	ClassroomID    uint             `json:"classroom_id" gorm:"not null;index"`
	Classroom      Classroom        `json:"classroom,omitempty" gorm:"foreignKey:ClassroomID"`
	Title          string           `json:"title" gorm:"not null"`
	IsActive       bool             `json:"is_active" gorm:"not null;default:true"`
	Token          *string          `json:"token,omitempty" gorm:"uniqueIndex"`
	TokenCreatedAt *time.Time       `json:"token_created_at,omitempty"`
	Questions      []SurveyQuestion `json:"questions,omitempty" gorm:"foreignKey:SurveyID"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `gorm:"index" json:"-"`
}

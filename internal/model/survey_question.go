package model

import "time"

// SurveyQuestion is a question's inclusion in one survey. Weight is signed:
// negative weight marks an unfavorable prompt, positive a favorable one.
// Rows are immutable once the survey is created.
type SurveyQuestion struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	SurveyID   uint      `json:"survey_id" gorm:"not null;index"`
	QuestionID uint      `json:"question_id" gorm:"not null;index"`
	Question   Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	OrderNum   int       `json:"order_num" gorm:"not null"`
	Weight     int       `json:"weight" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}

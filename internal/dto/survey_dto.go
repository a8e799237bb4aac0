package dto

import "time"

// SurveyQuestionInputDTO is one question selection in a survey composition.
// Exactly one of QuestionID (default or previously used custom question) or
// QuestionText (newly authored) must be set.
type SurveyQuestionInputDTO struct {
	QuestionID   *uint   `json:"question_id"`
	QuestionText *string `json:"question_text"`
	Weight       int     `json:"weight"`
}

type SurveyCreateDTO struct {
	UserID      string                   `json:"user_id" binding:"required"`
	ClassroomID uint                     `json:"classroom_id" binding:"required"`
	Title       string                   `json:"title" binding:"required"`
	Questions   []SurveyQuestionInputDTO `json:"questions" binding:"required,min=1,dive"`
}

type SurveyQuestionDTO struct {
	ID           uint   `json:"id"`
	QuestionID   uint   `json:"question_id"`
	QuestionText string `json:"question_text"`
	OrderNum     int    `json:"order_num"`
	Weight       int    `json:"weight"`
}

type SurveyResponseDTO struct {
	ID          uint                `json:"id"`
	ClassroomID uint                `json:"classroom_id"`
	Title       string              `json:"title"`
	IsActive    bool                `json:"is_active"`
	Token       *string             `json:"token,omitempty"`
	Questions   []SurveyQuestionDTO `json:"questions"`
	CreatedAt   time.Time           `json:"created_at"`
}

type QuestionDTO struct {
	ID           uint   `json:"id"`
	QuestionText string `json:"question_text"`
	IsDefault    bool   `json:"is_default"`
}

type TokenResponseDTO struct {
	Token string `json:"token"`
}

// SurveyLinkDTO is the JSON companion of the QR endpoint: the URL the QR code
// encodes, plus the raw token.
type SurveyLinkDTO struct {
	SurveyID uint   `json:"survey_id"`
	Token    string `json:"token"`
	URL      string `json:"url"`
}

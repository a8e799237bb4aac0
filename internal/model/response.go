package model

import "time"

// RelationshipResponse is one student's answer event for one survey question.
type RelationshipResponse struct {
	ID               uint                         `gorm:"primarykey" json:"id"`
	SurveyID         uint                         `json:"survey_id" gorm:"not null;index"`
	RespondentID     uint                         `json:"respondent_id" gorm:"not null;index"`
	SurveyQuestionID uint                         `json:"survey_question_id" gorm:"not null;index"`
	Targets          []RelationshipResponseTarget `json:"targets,omitempty" gorm:"foreignKey:ResponseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt        time.Time                    `json:"created_at"`
}

// RelationshipResponseTarget is one nominated peer for a response. The flow
// currently collects exactly one target per question; the schema allows more.
type RelationshipResponseTarget struct {
	ID         uint `gorm:"primarykey" json:"id"`
	ResponseID uint `json:"response_id" gorm:"not null;index"`
	TargetID   uint `json:"target_id" gorm:"not null;index"`
	ExtraValue int  `json:"extra_value"`
}

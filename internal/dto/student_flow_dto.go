package dto

// Token-gated student-facing payloads. The token travels in the JSON body on
// every call; each handler re-verifies it independently.

type TokenRequestDTO struct {
	Token string `json:"token" binding:"required"`
}

type VerifyResponseDTO struct {
	Valid    bool  `json:"valid"`
	SurveyID *uint `json:"survey_id,omitempty"`
}

type StudentListDTO struct {
	SurveyID  uint                   `json:"survey_id"`
	Classroom ClassroomDescriptorDTO `json:"classroom"`
	Students  []StudentDTO           `json:"students"`
}

type SurveyDataDTO struct {
	SurveyID  uint                   `json:"survey_id"`
	Classroom ClassroomDescriptorDTO `json:"classroom"`
	Questions []SurveyQuestionDTO    `json:"questions"`
	Students  []StudentDTO           `json:"students"`
}

// AnswerInputDTO is one answered question with the nominated peer(s).
type AnswerInputDTO struct {
	SurveyQuestionID uint   `json:"survey_question_id" binding:"required"`
	TargetIDs        []uint `json:"target_ids" binding:"required,min=1"`
}

type SubmitResponsesDTO struct {
	Token        string           `json:"token" binding:"required"`
	RespondentID uint             `json:"respondent_id" binding:"required"`
	Responses    []AnswerInputDTO `json:"responses" binding:"required,min=1,dive"`
}

type SubmitResultDTO struct {
	Success bool `json:"success"`
}

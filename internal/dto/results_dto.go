package dto

// AnswerCellDTO is one cell in the results matrix: a survey question and the
// peer the selected respondent nominated for it. Target is nil when the
// respondent has no response for that question.
type AnswerCellDTO struct {
	SurveyQuestionID uint        `json:"survey_question_id"`
	QuestionText     string      `json:"question_text"`
	OrderNum         int         `json:"order_num"`
	Weight           int         `json:"weight"`
	Target           *StudentDTO `json:"target,omitempty"`
}

type StudentResultDTO struct {
	Student StudentDTO      `json:"student"`
	Answers []AnswerCellDTO `json:"answers"`
}

type ResultsDTO struct {
	SurveyID  uint                   `json:"survey_id"`
	Classroom ClassroomDescriptorDTO `json:"classroom"`
	Questions []SurveyQuestionDTO    `json:"questions"`
	Students  []StudentDTO           `json:"students"`
	Results   []StudentResultDTO     `json:"results"`
}

type SummaryRequestDTO struct {
	SurveyID  uint `json:"survey_id" binding:"required"`
	StudentID uint `json:"student_id" binding:"required"`
}

type SummaryResponseDTO struct {
	Summary string `json:"summary"`
}

// SummaryPayloadDTO is the JSON document POSTed to the summary webhook (or
// fed to the direct LLM prompt) for one student's nominations.
type SummaryPayloadDTO struct {
	Student   StudentDTO             `json:"student"`
	Classroom ClassroomDescriptorDTO `json:"classroom"`
	Responses []SummaryResponseItem  `json:"responses"`
}

type SummaryResponseItem struct {
	QuestionText  string     `json:"question_text"`
	Weight        int        `json:"weight"`
	TargetStudent StudentDTO `json:"target_student"`
}

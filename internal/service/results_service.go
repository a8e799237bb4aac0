package service

import (
	"errors"
	"fmt"

	"github.com/teacher-kiwi/sociogram/internal/dto"
	"github.com/teacher-kiwi/sociogram/internal/repository"
	"gorm.io/gorm"
)

// ResultsService builds the teacher-facing results matrix: for every student
// in the classroom, the peer they nominated per survey question.
type ResultsService interface {
	GetSurveyResults(surveyID uint) (*dto.ResultsDTO, error)
	// BuildSummaryPayload packages one student's nominations for the AI
	// summary call.
	BuildSummaryPayload(surveyID, studentID uint) (*dto.SummaryPayloadDTO, error)
}

type resultsService struct {
	surveyRepo    repository.SurveyRepository
	classroomRepo repository.ClassroomRepository
	studentRepo   repository.StudentRepository
	responseRepo  repository.ResponseRepository
}

func NewResultsService(
	surveyRepo repository.SurveyRepository,
	classroomRepo repository.ClassroomRepository,
	studentRepo repository.StudentRepository,
	responseRepo repository.ResponseRepository,
) ResultsService {
	return &resultsService{
		surveyRepo:    surveyRepo,
		classroomRepo: classroomRepo,
		studentRepo:   studentRepo,
		responseRepo:  responseRepo,
	}
}

func (s *resultsService) GetSurveyResults(surveyID uint) (*dto.ResultsDTO, error) {
	survey, err := s.surveyRepo.FindByID(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("survey %d: %w", surveyID, ErrNotFound)
		}
		return nil, fmt.Errorf("fetching survey %d: %w", surveyID, err)
	}

	classroom, err := s.classroomRepo.FindByID(survey.ClassroomID)
	if err != nil {
		return nil, fmt.Errorf("fetching classroom %d: %w", survey.ClassroomID, err)
	}
	students, err := s.studentRepo.FindByClassroomID(survey.ClassroomID)
	if err != nil {
		return nil, fmt.Errorf("fetching students for classroom %d: %w", survey.ClassroomID, err)
	}
	questions, err := s.surveyRepo.FindQuestions(surveyID)
	if err != nil {
		return nil, fmt.Errorf("fetching questions for survey %d: %w", surveyID, err)
	}
	responses, err := s.responseRepo.FindBySurveyID(surveyID)
	if err != nil {
		return nil, fmt.Errorf("fetching responses for survey %d: %w", surveyID, err)
	}

	studentByID := make(map[uint]dto.StudentDTO, len(students))
	for _, st := range students {
		studentByID[st.ID] = dto.StudentDTO{
			ID:            st.ID,
			Name:          st.Name,
			PhotoURL:      st.PhotoURL,
			StudentNumber: st.StudentNumber,
		}
	}

	// nominated[respondent][surveyQuestion] = first nominated peer. The flow
	// collects one target per question; a re-take overwrites the display.
	nominated := make(map[uint]map[uint]uint)
	for _, resp := range responses {
		if len(resp.Targets) == 0 {
			continue
		}
		perQuestion, ok := nominated[resp.RespondentID]
		if !ok {
			perQuestion = make(map[uint]uint)
			nominated[resp.RespondentID] = perQuestion
		}
		perQuestion[resp.SurveyQuestionID] = resp.Targets[0].TargetID
	}

	results := make([]dto.StudentResultDTO, 0, len(students))
	for _, st := range students {
		answers := make([]dto.AnswerCellDTO, 0, len(questions))
		for _, sq := range questions {
			cell := dto.AnswerCellDTO{
				SurveyQuestionID: sq.ID,
				QuestionText:     sq.Question.QuestionText,
				OrderNum:         sq.OrderNum,
				Weight:           sq.Weight,
			}
			if targetID, ok := nominated[st.ID][sq.ID]; ok {
				if target, found := studentByID[targetID]; found {
					cell.Target = &target
				}
			}
			answers = append(answers, cell)
		}
		results = append(results, dto.StudentResultDTO{
			Student: studentByID[st.ID],
			Answers: answers,
		})
	}

	return &dto.ResultsDTO{
		SurveyID:  surveyID,
		Classroom: classroomDescriptor(classroom),
		Questions: surveyQuestionsToDTO(questions),
		Students:  studentsToDTO(students),
		Results:   results,
	}, nil
}

func (s *resultsService) BuildSummaryPayload(surveyID, studentID uint) (*dto.SummaryPayloadDTO, error) {
	matrix, err := s.GetSurveyResults(surveyID)
	if err != nil {
		return nil, err
	}

	for _, result := range matrix.Results {
		if result.Student.ID != studentID {
			continue
		}
		payload := dto.SummaryPayloadDTO{
			Student:   result.Student,
			Classroom: matrix.Classroom,
			Responses: []dto.SummaryResponseItem{},
		}
		for _, cell := range result.Answers {
			if cell.Target == nil {
				continue
			}
			payload.Responses = append(payload.Responses, dto.SummaryResponseItem{
				QuestionText:  cell.QuestionText,
				Weight:        cell.Weight,
				TargetStudent: *cell.Target,
			})
		}
		return &payload, nil
	}
	return nil, fmt.Errorf("student %d in survey %d: %w", studentID, surveyID, ErrNotFound)
}

package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/teacher-kiwi/sociogram/internal/dto"
	"github.com/teacher-kiwi/sociogram/internal/model"
	"github.com/teacher-kiwi/sociogram/internal/repository"
	"gorm.io/gorm"
)

// SurveyBuilderService composes surveys from default questions, previously
// used custom questions, and newly authored text, each with a signed weight.
type SurveyBuilderService interface {
	CreateSurvey(req dto.SurveyCreateDTO) (*dto.SurveyResponseDTO, error)
	GetSurvey(id uint) (*dto.SurveyResponseDTO, error)
	GetSurveysByClassroom(classroomID uint) ([]dto.SurveyResponseDTO, error)
	ListQuestions(userID string) ([]dto.QuestionDTO, error)
}

type surveyBuilderService struct {
	surveyRepo    repository.SurveyRepository
	questionRepo  repository.QuestionRepository
	classroomRepo repository.ClassroomRepository
	tokenSvc      TokenService
}

func NewSurveyBuilderService(
	surveyRepo repository.SurveyRepository,
	questionRepo repository.QuestionRepository,
	classroomRepo repository.ClassroomRepository,
	tokenSvc TokenService,
) SurveyBuilderService {
	return &surveyBuilderService{
		surveyRepo:    surveyRepo,
		questionRepo:  questionRepo,
		classroomRepo: classroomRepo,
		tokenSvc:      tokenSvc,
	}
}

func (s *surveyBuilderService) CreateSurvey(req dto.SurveyCreateDTO) (*dto.SurveyResponseDTO, error) {
	if len(req.Questions) == 0 {
		return nil, fmt.Errorf("a survey needs at least one question: %w", ErrInvalidInput)
	}
	for i, q := range req.Questions {
		hasID := q.QuestionID != nil
		hasText := q.QuestionText != nil && *q.QuestionText != ""
		if hasID == hasText {
			return nil, fmt.Errorf("question %d must set exactly one of question_id or question_text: %w", i+1, ErrInvalidInput)
		}
	}

	if _, err := s.classroomRepo.FindByID(req.ClassroomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("classroom %d: %w", req.ClassroomID, ErrNotFound)
		}
		return nil, fmt.Errorf("fetching classroom %d: %w", req.ClassroomID, err)
	}

	// Newly authored texts become custom question rows first, so we have ids
	// for the survey_questions rows.
	var newQuestions []*model.Question
	for _, q := range req.Questions {
		if q.QuestionID == nil {
			userID := req.UserID
			newQuestions = append(newQuestions, &model.Question{
				QuestionText: *q.QuestionText,
				IsDefault:    false,
				UserID:       &userID,
			})
		}
	}
	if err := s.questionRepo.CreateBatch(newQuestions); err != nil {
		log.Error().Err(err).Msg("CreateSurvey: failed to create custom questions")
		return nil, fmt.Errorf("creating custom questions: %w", err)
	}

	// Referenced question ids must exist.
	var refIDs []uint
	for _, q := range req.Questions {
		if q.QuestionID != nil {
			refIDs = append(refIDs, *q.QuestionID)
		}
	}
	existing, err := s.questionRepo.FindByIDs(refIDs)
	if err != nil {
		return nil, fmt.Errorf("fetching selected questions: %w", err)
	}
	if len(existing) != len(uniqueIDs(refIDs)) {
		return nil, fmt.Errorf("one or more selected questions do not exist: %w", ErrNotFound)
	}

	survey := model.Survey{
		ClassroomID: req.ClassroomID,
		Title:       req.Title,
		IsActive:    true,
	}
	newIdx := 0
	for i, q := range req.Questions {
		questionID := uint(0)
		if q.QuestionID != nil {
			questionID = *q.QuestionID
		} else {
			questionID = newQuestions[newIdx].ID
			newIdx++
		}
		survey.Questions = append(survey.Questions, model.SurveyQuestion{
			QuestionID: questionID,
			OrderNum:   i + 1,
			Weight:     q.Weight,
		})
	}

	if err := s.surveyRepo.Create(&survey); err != nil {
		log.Error().Err(err).Uint("classroomID", req.ClassroomID).Msg("CreateSurvey: database error")
		return nil, fmt.Errorf("creating survey: %w", err)
	}

	if _, err := s.tokenSvc.Issue(survey.ID); err != nil {
		// The survey exists; the teacher can reissue from the QR screen.
		log.Warn().Err(err).Uint("surveyID", survey.ID).Msg("CreateSurvey: initial token issue failed")
	}

	log.Info().Uint("surveyID", survey.ID).Int("questions", len(survey.Questions)).Msg("Survey created")
	return s.GetSurvey(survey.ID)
}

func (s *surveyBuilderService) GetSurvey(id uint) (*dto.SurveyResponseDTO, error) {
	survey, err := s.surveyRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("survey %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("fetching survey %d: %w", id, err)
	}
	questions, err := s.surveyRepo.FindQuestions(id)
	if err != nil {
		return nil, fmt.Errorf("fetching questions for survey %d: %w", id, err)
	}
	return surveyToDTO(survey, questions), nil
}

func (s *surveyBuilderService) GetSurveysByClassroom(classroomID uint) ([]dto.SurveyResponseDTO, error) {
	surveys, err := s.surveyRepo.FindAllByClassroom(classroomID)
	if err != nil {
		return nil, fmt.Errorf("fetching surveys for classroom %d: %w", classroomID, err)
	}
	dtos := make([]dto.SurveyResponseDTO, 0, len(surveys))
	for i := range surveys {
		questions, err := s.surveyRepo.FindQuestions(surveys[i].ID)
		if err != nil {
			return nil, fmt.Errorf("fetching questions for survey %d: %w", surveys[i].ID, err)
		}
		dtos = append(dtos, *surveyToDTO(&surveys[i], questions))
	}
	return dtos, nil
}

func (s *surveyBuilderService) ListQuestions(userID string) ([]dto.QuestionDTO, error) {
	questions, err := s.questionRepo.FindAvailableForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("fetching questions: %w", err)
	}
	dtos := make([]dto.QuestionDTO, 0, len(questions))
	for _, q := range questions {
		dtos = append(dtos, dto.QuestionDTO{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			IsDefault:    q.IsDefault,
		})
	}
	return dtos, nil
}

func surveyToDTO(survey *model.Survey, questions []model.SurveyQuestion) *dto.SurveyResponseDTO {
	resp := dto.SurveyResponseDTO{
		ID:          survey.ID,
		ClassroomID: survey.ClassroomID,
		Title:       survey.Title,
		IsActive:    survey.IsActive,
		Token:       survey.Token,
		Questions:   surveyQuestionsToDTO(questions),
		CreatedAt:   survey.CreatedAt,
	}
	return &resp
}

func surveyQuestionsToDTO(questions []model.SurveyQuestion) []dto.SurveyQuestionDTO {
	dtos := make([]dto.SurveyQuestionDTO, 0, len(questions))
	for _, sq := range questions {
		dtos = append(dtos, dto.SurveyQuestionDTO{
			ID:           sq.ID,
			QuestionID:   sq.QuestionID,
			QuestionText: sq.Question.QuestionText,
			OrderNum:     sq.OrderNum,
			Weight:       sq.Weight,
		})
	}
	return dtos
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	var out []uint
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

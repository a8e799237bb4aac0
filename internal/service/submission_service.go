package service

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/teacher-kiwi/sociogram/internal/dto"
	"github.com/teacher-kiwi/sociogram/internal/model"
	"github.com/teacher-kiwi/sociogram/internal/repository"
)

// SubmissionService persists one student's buffered answers. The whole
// submission is written in a single transaction: one response row per
// answered question, one target row per nomination, all or nothing.
type SubmissionService interface {
	Submit(req dto.SubmitResponsesDTO) error
}

type submissionService struct {
	tokenSvc     TokenService
	surveyRepo   repository.SurveyRepository
	studentRepo  repository.StudentRepository
	responseRepo repository.ResponseRepository
}

func NewSubmissionService(
	tokenSvc TokenService,
	surveyRepo repository.SurveyRepository,
	studentRepo repository.StudentRepository,
	responseRepo repository.ResponseRepository,
) SubmissionService {
	return &submissionService{
		tokenSvc:     tokenSvc,
		surveyRepo:   surveyRepo,
		studentRepo:  studentRepo,
		responseRepo: responseRepo,
	}
}

func (s *submissionService) Submit(req dto.SubmitResponsesDTO) error {
	access, err := s.tokenSvc.Authorize(req.Token, req.RespondentID)
	if err != nil {
		return err
	}
	if len(req.Responses) == 0 {
		return fmt.Errorf("submission must contain at least one answer: %w", ErrInvalidInput)
	}

	questions, err := s.surveyRepo.FindQuestions(access.SurveyID)
	if err != nil {
		return fmt.Errorf("fetching questions for survey %d: %w", access.SurveyID, err)
	}
	validQuestion := make(map[uint]bool, len(questions))
	for _, sq := range questions {
		validQuestion[sq.ID] = true
	}

	roster, err := s.studentRepo.FindByClassroomID(access.ClassroomID)
	if err != nil {
		return fmt.Errorf("fetching students for classroom %d: %w", access.ClassroomID, err)
	}
	inClassroom := make(map[uint]bool, len(roster))
	for _, st := range roster {
		inClassroom[st.ID] = true
	}

	responses := make([]model.RelationshipResponse, 0, len(req.Responses))
	for _, answer := range req.Responses {
		if !validQuestion[answer.SurveyQuestionID] {
			return fmt.Errorf("survey question %d is not part of this survey: %w", answer.SurveyQuestionID, ErrInvalidInput)
		}
		targets := make([]model.RelationshipResponseTarget, 0, len(answer.TargetIDs))
		for _, targetID := range answer.TargetIDs {
			if targetID == req.RespondentID {
				return fmt.Errorf("respondent cannot nominate themselves: %w", ErrInvalidInput)
			}
			if !inClassroom[targetID] {
				return fmt.Errorf("target student %d is not in this classroom: %w", targetID, ErrInvalidInput)
			}
			targets = append(targets, model.RelationshipResponseTarget{TargetID: targetID})
		}
		responses = append(responses, model.RelationshipResponse{
			SurveyID:         access.SurveyID,
			RespondentID:     req.RespondentID,
			SurveyQuestionID: answer.SurveyQuestionID,
			Targets:          targets,
		})
	}

	if err := s.responseRepo.CreateSubmission(responses); err != nil {
		log.Error().Err(err).Uint("surveyID", access.SurveyID).Uint("respondentID", req.RespondentID).
			Msg("Submit: failed to persist submission")
		return fmt.Errorf("saving submission: %w", err)
	}

	log.Info().Uint("surveyID", access.SurveyID).Uint("respondentID", req.RespondentID).
		Int("answers", len(responses)).Msg("Submission saved")
	return nil
}

package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/teacher-kiwi/sociogram/internal/repository"
	"gorm.io/gorm"
)

// TokenWindow is how long an issued token grants access, and also the reuse
// window: reissuing inside it returns the same token unchanged.
const TokenWindow = 30 * time.Minute

// Access is the authorization result every token-gated operation works from.
type Access struct {
	SurveyID    uint
	ClassroomID uint
}

// TokenService owns the survey token lifecycle. Verify is the single
// authorization predicate: every student-facing operation calls it (or
// Authorize) independently, nothing caches validity.
type TokenService interface {
	Issue(surveyID uint) (string, error)
	Verify(token string) (*Access, error)
	// Authorize is Verify plus the respondent-membership check used before
	// any mutating operation.
	Authorize(token string, respondentID uint) (*Access, error)
}

type tokenService struct {
	surveyRepo  repository.SurveyRepository
	studentRepo repository.StudentRepository
	now         func() time.Time
}

func NewTokenService(surveyRepo repository.SurveyRepository, studentRepo repository.StudentRepository) TokenService {
	return &tokenService{
		surveyRepo:  surveyRepo,
		studentRepo: studentRepo,
		now:         time.Now,
	}
}

func (s *tokenService) Issue(surveyID uint) (string, error) {
	survey, err := s.surveyRepo.FindByID(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("survey %d: %w", surveyID, ErrNotFound)
		}
		return "", fmt.Errorf("fetching survey %d: %w", surveyID, err)
	}

	now := s.now()
	if survey.Token != nil && survey.TokenCreatedAt != nil && now.Sub(*survey.TokenCreatedAt) < TokenWindow {
		return *survey.Token, nil
	}

	token := newToken()
	if err := s.surveyRepo.UpdateToken(survey.ID, token, now); err != nil {
		log.Error().Err(err).Uint("surveyID", survey.ID).Msg("Issue: failed to persist new token")
		return "", fmt.Errorf("persisting token for survey %d: %w", survey.ID, err)
	}
	log.Info().Uint("surveyID", survey.ID).Msg("Issued new survey token")
	return token, nil
}

func (s *tokenService) Verify(token string) (*Access, error) {
	if token == "" {
		return nil, ErrTokenInvalid
	}
	survey, err := s.surveyRepo.FindByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, fmt.Errorf("looking up token: %w", err)
	}
	if survey.TokenCreatedAt == nil || s.now().Sub(*survey.TokenCreatedAt) >= TokenWindow {
		return nil, ErrTokenInvalid
	}
	return &Access{SurveyID: survey.ID, ClassroomID: survey.ClassroomID}, nil
}

func (s *tokenService) Authorize(token string, respondentID uint) (*Access, error) {
	access, err := s.Verify(token)
	if err != nil {
		return nil, err
	}
	respondent, err := s.studentRepo.FindByID(respondentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWrongClassroom
		}
		return nil, fmt.Errorf("looking up respondent %d: %w", respondentID, err)
	}
	if respondent.ClassroomID != access.ClassroomID {
		return nil, ErrWrongClassroom
	}
	return access, nil
}

// newToken produces a 32-character URL-safe hex token.
func newToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

package repository

import (
	"time"

	"github.com/teacher-kiwi/sociogram/internal/model"
	"gorm.io/gorm"
)

type SurveyRepository interface {
	Create(survey *model.Survey) error
	FindByID(id uint) (*model.Survey, error)
	FindByToken(token string) (*model.Survey, error)
	FindAllByClassroom(classroomID uint) ([]model.Survey, error)
	UpdateToken(surveyID uint, token string, createdAt time.Time) error
	// FindQuestions returns the survey's questions ordered by order number,
	// each with its Question row preloaded.
	FindQuestions(surveyID uint) ([]model.SurveyQuestion, error)
}

type surveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) Create(survey *model.Survey) error {
	// GORM creates the associated SurveyQuestions in the same transaction
	// when survey.Questions is populated.
	return r.db.Create(survey).Error
}

func (r *surveyRepository) FindByID(id uint) (*model.Survey, error) {
	var survey model.Survey
	if err := r.db.First(&survey, id).Error; err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepository) FindByToken(token string) (*model.Survey, error) {
	var survey model.Survey
	if err := r.db.Where("token = ?", token).First(&survey).Error; err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepository) FindAllByClassroom(classroomID uint) ([]model.Survey, error) {
	var surveys []model.Survey
	err := r.db.Where("classroom_id = ?", classroomID).Order("created_at DESC").Find(&surveys).Error
	if err != nil {
		return nil, err
	}
	return surveys, nil
}

func (r *surveyRepository) UpdateToken(surveyID uint, token string, createdAt time.Time) error {
	return r.db.Model(&model.Survey{}).Where("id = ?", surveyID).
		Updates(map[string]interface{}{
			"token":            token,
			"token_created_at": createdAt,
		}).Error
}

func (r *surveyRepository) FindQuestions(surveyID uint) ([]model.SurveyQuestion, error) {
	var questions []model.SurveyQuestion
	err := r.db.Preload("Question").
		Where("survey_id = ?", surveyID).
		Order("order_num ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

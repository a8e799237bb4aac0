package repository

import (
	"github.com/teacher-kiwi/sociogram/internal/model"
	"gorm.io/gorm"
)

type ResponseRepository interface {
	// CreateSubmission persists one submission as a single transaction: all
	// response rows with their target rows, or nothing.
	CreateSubmission(responses []model.RelationshipResponse) error
	FindBySurveyID(surveyID uint) ([]model.RelationshipResponse, error)
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) CreateSubmission(responses []model.RelationshipResponse) error {
	if len(responses) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Create row by row so each response's Targets pick up the freshly
		// assigned response id.
		for i := range responses {
			if err := tx.Create(&responses[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *responseRepository) FindBySurveyID(surveyID uint) ([]model.RelationshipResponse, error) {
	var responses []model.RelationshipResponse
	err := r.db.Preload("Targets").
		Where("survey_id = ?", surveyID).
		Order("created_at ASC").
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}

package repository

import (
	"github.com/teacher-kiwi/sociogram/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	CreateBatch(questions []*model.Question) error
	FindByIDs(ids []uint) ([]model.Question, error)
	// FindAvailableForUser returns the shared default questions plus the
	// custom questions this teacher has authored before.
	FindAvailableForUser(userID string) ([]model.Question, error)
	CountDefaults() (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) CreateBatch(questions []*model.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.Create(questions).Error
}

func (r *questionRepository) FindByIDs(ids []uint) ([]model.Question, error) {
	var questions []model.Question
	if len(ids) == 0 {
		return questions, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindAvailableForUser(userID string) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Where("is_default = ? OR user_id = ?", true, userID).
		Order("is_default DESC, created_at ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) CountDefaults() (int64, error) {
	var count int64
	err := r.db.Model(&model.Question{}).Where("is_default = ?", true).Count(&count).Error
	return count, err
}

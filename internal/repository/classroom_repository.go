package repository

import (
	"github.com/teacher-kiwi/sociogram/internal/model"
	"gorm.io/gorm"
)

type ClassroomRepository interface {
	Create(classroom *model.Classroom) error
	FindByID(id uint) (*model.Classroom, error)
	FindByIDWithStudents(id uint) (*model.Classroom, error)
	FindAllByUser(userID string) ([]model.Classroom, error)
	Update(classroom *model.Classroom) error
}

type classroomRepository struct {
	db *gorm.DB
}

func NewClassroomRepository(db *gorm.DB) ClassroomRepository {
	return &classroomRepository{db: db}
}

func (r *classroomRepository) Create(classroom *model.Classroom) error {
	// GORM creates associated Students in the same transaction when
	// classroom.Students is populated.
	return r.db.Create(classroom).Error
}

func (r *classroomRepository) FindByID(id uint) (*model.Classroom, error) {
	var classroom model.Classroom
	if err := r.db.First(&classroom, id).Error; err != nil {
		return nil, err
	}
	return &classroom, nil
}

func (r *classroomRepository) FindByIDWithStudents(id uint) (*model.Classroom, error) {
	var classroom model.Classroom
	err := r.db.Preload("Students", func(db *gorm.DB) *gorm.DB {
		return db.Order("students.student_number ASC NULLS LAST")
	}).First(&classroom, id).Error
	if err != nil {
		return nil, err
	}
	return &classroom, nil
}

func (r *classroomRepository) FindAllByUser(userID string) ([]model.Classroom, error) {
	var classrooms []model.Classroom
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&classrooms).Error; err != nil {
		return nil, err
	}
	return classrooms, nil
}

func (r *classroomRepository) Update(classroom *model.Classroom) error {
	// Save without touching the Students association; roster changes go
	// through StudentRepository.ApplyRosterDiff.
	return r.db.Omit("Students").Save(classroom).Error
}

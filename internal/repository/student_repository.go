package repository

import (
	"github.com/teacher-kiwi/sociogram/internal/model"
	"gorm.io/gorm"
)

type StudentRepository interface {
	FindByID(id uint) (*model.Student, error)
	FindByClassroomID(classroomID uint) ([]model.Student, error)
	// ApplyRosterDiff runs one roster save as a single transaction: removed
	// students are deleted together with every response row where they are
	// the respondent and every target row that names them.
	ApplyRosterDiff(inserts []model.Student, updates []model.Student, deleteIDs []uint) error
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) FindByID(id uint) (*model.Student, error) {
	var student model.Student
	if err := r.db.First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindByClassroomID(classroomID uint) ([]model.Student, error) {
	var students []model.Student
	err := r.db.Where("classroom_id = ?", classroomID).
		Order("student_number ASC NULLS LAST").
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) ApplyRosterDiff(inserts []model.Student, updates []model.Student, deleteIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(deleteIDs) > 0 {
			if err := deleteStudentsCascade(tx, deleteIDs); err != nil {
				return err
			}
		}
		for i := range updates {
			if err := tx.Save(&updates[i]).Error; err != nil {
				return err
			}
		}
		if len(inserts) > 0 {
			if err := tx.Create(&inserts).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// deleteStudentsCascade removes the students plus their answer history:
// targets attached to their own responses, targets nominating them, and
// finally the response rows where they are the respondent.
func deleteStudentsCascade(tx *gorm.DB, studentIDs []uint) error {
	var responseIDs []uint
	if err := tx.Model(&model.RelationshipResponse{}).
		Where("respondent_id IN ?", studentIDs).
		Pluck("id", &responseIDs).Error; err != nil {
		return err
	}

	if len(responseIDs) > 0 {
		if err := tx.Where("response_id IN ?", responseIDs).
			Delete(&model.RelationshipResponseTarget{}).Error; err != nil {
			return err
		}
	}
	if err := tx.Where("target_id IN ?", studentIDs).
		Delete(&model.RelationshipResponseTarget{}).Error; err != nil {
		return err
	}
	if err := tx.Where("respondent_id IN ?", studentIDs).
		Delete(&model.RelationshipResponse{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Student{}, studentIDs).Error
}

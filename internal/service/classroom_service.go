package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/teacher-kiwi/sociogram/internal/dto"
	"github.com/teacher-kiwi/sociogram/internal/model"
	"github.com/teacher-kiwi/sociogram/internal/repository"
	"gorm.io/gorm"
)

type ClassroomService interface {
	CreateClassroom(req dto.ClassroomCreateDTO) (*dto.ClassroomResponseDTO, error)
	GetClassroom(id uint) (*dto.ClassroomResponseDTO, error)
	GetClassroomsByUser(userID string) ([]dto.ClassroomResponseDTO, error)
	UpdateClassroom(id uint, req dto.ClassroomUpdateDTO) (*dto.ClassroomResponseDTO, error)
}

type classroomService struct {
	classroomRepo repository.ClassroomRepository
	studentRepo   repository.StudentRepository
}

func NewClassroomService(classroomRepo repository.ClassroomRepository, studentRepo repository.StudentRepository) ClassroomService {
	return &classroomService{classroomRepo: classroomRepo, studentRepo: studentRepo}
}

func (s *classroomService) CreateClassroom(req dto.ClassroomCreateDTO) (*dto.ClassroomResponseDTO, error) {
	classroom := model.Classroom{
		UserID:      req.UserID,
		SchoolName:  req.SchoolName,
		Grade:       req.Grade,
		ClassNumber: req.ClassNumber,
		TeacherName: req.TeacherName,
	}
	for _, st := range req.Students {
		classroom.Students = append(classroom.Students, model.Student{
			Name:          st.Name,
			PhotoURL:      st.PhotoURL,
			StudentNumber: st.StudentNumber,
		})
	}

	if err := s.classroomRepo.Create(&classroom); err != nil {
		log.Error().Err(err).Str("userID", req.UserID).Msg("CreateClassroom: database error")
		return nil, fmt.Errorf("creating classroom: %w", err)
	}
	return s.GetClassroom(classroom.ID)
}

func (s *classroomService) GetClassroom(id uint) (*dto.ClassroomResponseDTO, error) {
	classroom, err := s.classroomRepo.FindByIDWithStudents(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("classroom %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("fetching classroom %d: %w", id, err)
	}
	return classroomToDTO(classroom), nil
}

func (s *classroomService) GetClassroomsByUser(userID string) ([]dto.ClassroomResponseDTO, error) {
	classrooms, err := s.classroomRepo.FindAllByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("fetching classrooms for user: %w", err)
	}
	dtos := make([]dto.ClassroomResponseDTO, 0, len(classrooms))
	for i := range classrooms {
		dtos = append(dtos, *classroomToDTO(&classrooms[i]))
	}
	return dtos, nil
}

// UpdateClassroom saves classroom fields and diffs the submitted roster
// against the stored one: removed students are deleted (cascading their
// responses), new entries inserted, changed entries updated.
func (s *classroomService) UpdateClassroom(id uint, req dto.ClassroomUpdateDTO) (*dto.ClassroomResponseDTO, error) {
	classroom, err := s.classroomRepo.FindByIDWithStudents(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("classroom %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("fetching classroom %d: %w", id, err)
	}

	classroom.SchoolName = req.SchoolName
	classroom.Grade = req.Grade
	classroom.ClassNumber = req.ClassNumber
	classroom.TeacherName = req.TeacherName
	if err := s.classroomRepo.Update(classroom); err != nil {
		log.Error().Err(err).Uint("classroomID", id).Msg("UpdateClassroom: failed to save classroom fields")
		return nil, fmt.Errorf("updating classroom %d: %w", id, err)
	}

	inserts, updates, deleteIDs := diffRoster(classroom.ID, classroom.Students, req.Students)
	if len(inserts) > 0 || len(updates) > 0 || len(deleteIDs) > 0 {
		if err := s.studentRepo.ApplyRosterDiff(inserts, updates, deleteIDs); err != nil {
			log.Error().Err(err).Uint("classroomID", id).Msg("UpdateClassroom: roster diff failed")
			return nil, fmt.Errorf("saving roster for classroom %d: %w", id, err)
		}
	}
	log.Info().Uint("classroomID", id).
		Int("inserted", len(inserts)).Int("updated", len(updates)).Int("deleted", len(deleteIDs)).
		Msg("Roster saved")

	return s.GetClassroom(id)
}

// diffRoster classifies the submitted roster against the stored one. Entries
// with an ID matching a stored student are updates (only when a field
// changed); entries without an ID are inserts; stored students absent from
// the submission are deletes.
func diffRoster(classroomID uint, existing []model.Student, incoming []dto.StudentInputDTO) (inserts, updates []model.Student, deleteIDs []uint) {
	current := make(map[uint]model.Student, len(existing))
	for _, st := range existing {
		current[st.ID] = st
	}

	seen := make(map[uint]bool, len(incoming))
	for _, in := range incoming {
		if in.ID == nil {
			inserts = append(inserts, model.Student{
				ClassroomID:   classroomID,
				Name:          in.Name,
				PhotoURL:      in.PhotoURL,
				StudentNumber: in.StudentNumber,
			})
			continue
		}
		stored, ok := current[*in.ID]
		if !ok {
			// Unknown id: treat as a fresh insert rather than dropping it.
			inserts = append(inserts, model.Student{
				ClassroomID:   classroomID,
				Name:          in.Name,
				PhotoURL:      in.PhotoURL,
				StudentNumber: in.StudentNumber,
			})
			continue
		}
		seen[*in.ID] = true
		if studentChanged(stored, in) {
			stored.Name = in.Name
			stored.PhotoURL = in.PhotoURL
			stored.StudentNumber = in.StudentNumber
			updates = append(updates, stored)
		}
	}

	for _, st := range existing {
		if !seen[st.ID] {
			deleteIDs = append(deleteIDs, st.ID)
		}
	}
	return inserts, updates, deleteIDs
}

func studentChanged(stored model.Student, in dto.StudentInputDTO) bool {
	if stored.Name != in.Name {
		return true
	}
	if !equalStrPtr(stored.PhotoURL, in.PhotoURL) {
		return true
	}
	return !equalIntPtr(stored.StudentNumber, in.StudentNumber)
}

func equalStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func classroomToDTO(classroom *model.Classroom) *dto.ClassroomResponseDTO {
	var resp dto.ClassroomResponseDTO
	if err := copier.Copy(&resp, classroom); err != nil {
		log.Error().Err(err).Uint("classroomID", classroom.ID).Msg("Failed to copy classroom to DTO")
	}
	if resp.Students == nil {
		resp.Students = []dto.StudentDTO{}
	}
	return &resp
}

package service

import (
	"fmt"

	"github.com/teacher-kiwi/sociogram/internal/dto"
	"github.com/teacher-kiwi/sociogram/internal/model"
	"github.com/teacher-kiwi/sociogram/internal/repository"
)

// SurveyAccessService serves the token-gated reads of the student flow.
// Every method re-verifies the token; empty rosters and question lists come
// back as zero-length slices, never nil.
type SurveyAccessService interface {
	ListStudents(token string) (*dto.StudentListDTO, error)
	LoadSurveyData(token string) (*dto.SurveyDataDTO, error)
}

type surveyAccessService struct {
	tokenSvc      TokenService
	surveyRepo    repository.SurveyRepository
	studentRepo   repository.StudentRepository
	classroomRepo repository.ClassroomRepository
}

func NewSurveyAccessService(
	tokenSvc TokenService,
	surveyRepo repository.SurveyRepository,
	studentRepo repository.StudentRepository,
	classroomRepo repository.ClassroomRepository,
) SurveyAccessService {
	return &surveyAccessService{
		tokenSvc:      tokenSvc,
		surveyRepo:    surveyRepo,
		studentRepo:   studentRepo,
		classroomRepo: classroomRepo,
	}
}

func (s *surveyAccessService) ListStudents(token string) (*dto.StudentListDTO, error) {
	access, err := s.tokenSvc.Verify(token)
	if err != nil {
		return nil, err
	}

	classroom, err := s.classroomRepo.FindByID(access.ClassroomID)
	if err != nil {
		return nil, fmt.Errorf("fetching classroom %d: %w", access.ClassroomID, err)
	}
	students, err := s.studentRepo.FindByClassroomID(access.ClassroomID)
	if err != nil {
		return nil, fmt.Errorf("fetching students for classroom %d: %w", access.ClassroomID, err)
	}

	return &dto.StudentListDTO{
		SurveyID:  access.SurveyID,
		Classroom: classroomDescriptor(classroom),
		Students:  studentsToDTO(students),
	}, nil
}

func (s *surveyAccessService) LoadSurveyData(token string) (*dto.SurveyDataDTO, error) {
	access, err := s.tokenSvc.Verify(token)
	if err != nil {
		return nil, err
	}

	classroom, err := s.classroomRepo.FindByID(access.ClassroomID)
	if err != nil {
		return nil, fmt.Errorf("fetching classroom %d: %w", access.ClassroomID, err)
	}
	questions, err := s.surveyRepo.FindQuestions(access.SurveyID)
	if err != nil {
		return nil, fmt.Errorf("fetching questions for survey %d: %w", access.SurveyID, err)
	}
	students, err := s.studentRepo.FindByClassroomID(access.ClassroomID)
	if err != nil {
		return nil, fmt.Errorf("fetching students for classroom %d: %w", access.ClassroomID, err)
	}

	return &dto.SurveyDataDTO{
		SurveyID:  access.SurveyID,
		Classroom: classroomDescriptor(classroom),
		Questions: surveyQuestionsToDTO(questions),
		Students:  studentsToDTO(students),
	}, nil
}

func classroomDescriptor(classroom *model.Classroom) dto.ClassroomDescriptorDTO {
	return dto.ClassroomDescriptorDTO{
		ID:          classroom.ID,
		SchoolName:  classroom.SchoolName,
		Grade:       classroom.Grade,
		ClassNumber: classroom.ClassNumber,
		TeacherName: classroom.TeacherName,
	}
}

func studentsToDTO(students []model.Student) []dto.StudentDTO {
	dtos := make([]dto.StudentDTO, 0, len(students))
	for _, st := range students {
		dtos = append(dtos, dto.StudentDTO{
			ID:            st.ID,
			Name:          st.Name,
			PhotoURL:      st.PhotoURL,
			StudentNumber: st.StudentNumber,
		})
	}
	return dtos
}

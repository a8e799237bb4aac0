package service

import (
	"errors"
	"testing"
	"time"

	"github.com/teacher-kiwi/sociogram/internal/dto"
	"github.com/teacher-kiwi/sociogram/internal/model"
)

func newBuilderFixture() (*stubSurveyRepo, *stubQuestionRepo, SurveyBuilderService) {
	surveyRepo := newStubSurveyRepo()
	questionRepo := newStubQuestionRepo(
		model.Question{ID: 1, QuestionText: "Who would you like to sit next to?", IsDefault: true},
		model.Question{ID: 2, QuestionText: "Who do you play with at recess?", IsDefault: true},
		model.Question{ID: 3, QuestionText: "Who helps classmates who are struggling?", IsDefault: true},
	)
	classroomRepo := newStubClassroomRepo(model.Classroom{
		ID: 5, UserID: "user-1", SchoolName: "Maple Elementary", Grade: 3, ClassNumber: 2,
	})
	studentRepo := newStubStudentRepo()

	tokenSvc := NewTokenService(surveyRepo, studentRepo).(*tokenService)
	tokenSvc.now = func() time.Time { return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC) }

	return surveyRepo, questionRepo, NewSurveyBuilderService(surveyRepo, questionRepo, classroomRepo, tokenSvc)
}

func TestCreateSurveyMixedQuestions(t *testing.T) {
	_, questionRepo, svc := newBuilderFixture()

	resp, err := svc.CreateSurvey(dto.SurveyCreateDTO{
		UserID:      "user-1",
		ClassroomID: 5,
		Title:       "March check-in",
		Questions: []dto.SurveyQuestionInputDTO{
			{QuestionID: uintPtr(1), Weight: 2},
			{QuestionText: strPtr("Who cheers you up on a bad day?"), Weight: 1},
			{QuestionID: uintPtr(2), Weight: -1},
		},
	})
	if err != nil {
		t.Fatalf("CreateSurvey: %v", err)
	}

	if len(resp.Questions) != 3 {
		t.Fatalf("expected 3 survey questions, got %d", len(resp.Questions))
	}
	for i, q := range resp.Questions {
		if q.OrderNum != i+1 {
			t.Errorf("question %d: expected order %d, got %d", i, i+1, q.OrderNum)
		}
	}
	if resp.Questions[2].Weight != -1 {
		t.Errorf("expected signed weight to survive, got %d", resp.Questions[2].Weight)
	}
	if !resp.IsActive {
		t.Error("expected new survey to be active")
	}
	if resp.Token == nil || len(*resp.Token) != 32 {
		t.Errorf("expected a token issued at creation, got %v", resp.Token)
	}

	// The authored text became a reusable custom question.
	customs, err := questionRepo.FindAvailableForUser("user-1")
	if err != nil {
		t.Fatalf("FindAvailableForUser: %v", err)
	}
	found := false
	for _, q := range customs {
		if q.QuestionText == "Who cheers you up on a bad day?" && !q.IsDefault {
			found = true
			if q.UserID == nil || *q.UserID != "user-1" {
				t.Errorf("custom question not owned by author: %+v", q)
			}
		}
	}
	if !found {
		t.Error("expected the authored text to be saved as a custom question")
	}
}

func TestCreateSurveyValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.SurveyCreateDTO
		wantErr error
	}{
		{
			"no questions",
			dto.SurveyCreateDTO{UserID: "user-1", ClassroomID: 5, Title: "Empty"},
			ErrInvalidInput,
		},
		{
			"both id and text set",
			dto.SurveyCreateDTO{UserID: "user-1", ClassroomID: 5, Title: "Bad", Questions: []dto.SurveyQuestionInputDTO{
				{QuestionID: uintPtr(1), QuestionText: strPtr("extra"), Weight: 1},
			}},
			ErrInvalidInput,
		},
		{
			"neither id nor text",
			dto.SurveyCreateDTO{UserID: "user-1", ClassroomID: 5, Title: "Bad", Questions: []dto.SurveyQuestionInputDTO{
				{Weight: 1},
			}},
			ErrInvalidInput,
		},
		{
			"unknown classroom",
			dto.SurveyCreateDTO{UserID: "user-1", ClassroomID: 42, Title: "Lost", Questions: []dto.SurveyQuestionInputDTO{
				{QuestionID: uintPtr(1), Weight: 1},
			}},
			ErrNotFound,
		},
		{
			"unknown question id",
			dto.SurveyCreateDTO{UserID: "user-1", ClassroomID: 5, Title: "Lost", Questions: []dto.SurveyQuestionInputDTO{
				{QuestionID: uintPtr(99), Weight: 1},
			}},
			ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surveyRepo, _, svc := newBuilderFixture()

			_, err := svc.CreateSurvey(tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if len(surveyRepo.surveys) != 0 {
				t.Errorf("rejected composition must not create a survey")
			}
		})
	}
}

func TestListQuestionsScopedToUser(t *testing.T) {
	_, questionRepo, svc := newBuilderFixture()
	mine := "user-1"
	other := "user-2"
	questionRepo.Create(&model.Question{QuestionText: "Who shares snacks?", UserID: &mine})
	questionRepo.Create(&model.Question{QuestionText: "Private question", UserID: &other})

	questions, err := svc.ListQuestions("user-1")
	if err != nil {
		t.Fatalf("ListQuestions: %v", err)
	}
	if len(questions) != 4 {
		t.Fatalf("expected 3 defaults + 1 own custom, got %d", len(questions))
	}
	for _, q := range questions {
		if q.QuestionText == "Private question" {
			t.Error("another teacher's custom question must not appear")
		}
	}
}

func TestGetSurveysByClassroom(t *testing.T) {
	surveyRepo, _, svc := newBuilderFixture()
	surveyRepo.Create(&model.Survey{ClassroomID: 5, Title: "First", IsActive: true})
	surveyRepo.Create(&model.Survey{ClassroomID: 5, Title: "Second", IsActive: true})
	surveyRepo.Create(&model.Survey{ClassroomID: 6, Title: "Elsewhere", IsActive: true})

	surveys, err := svc.GetSurveysByClassroom(5)
	if err != nil {
		t.Fatalf("GetSurveysByClassroom: %v", err)
	}
	if len(surveys) != 2 {
		t.Fatalf("expected 2 surveys, got %d", len(surveys))
	}
}

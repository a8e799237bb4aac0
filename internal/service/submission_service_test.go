package service

import (
	"errors"
	"testing"
	"time"

	"github.com/teacher-kiwi/sociogram/internal/dto"
	"github.com/teacher-kiwi/sociogram/internal/model"
)

// Fixture: survey 1 in classroom 5 with questions 101 and 102, roster Ana,
// Ben, Cho. Dan sits in classroom 6.
func newSubmissionFixture(t *testing.T) (*stubResponseRepo, SubmissionService) {
	t.Helper()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	token := "tok1"
	createdAt := now.Add(-5 * time.Minute)

	surveyRepo := newStubSurveyRepo()
	surveyRepo.surveys[1] = &model.Survey{
		ID: 1, ClassroomID: 5, Title: "March check-in", IsActive: true,
		Token: &token, TokenCreatedAt: &createdAt,
	}
	surveyRepo.questions[1] = []model.SurveyQuestion{
		{ID: 101, SurveyID: 1, QuestionID: 1, OrderNum: 1, Weight: 1},
		{ID: 102, SurveyID: 1, QuestionID: 2, OrderNum: 2, Weight: -1},
	}

	studentRepo := newStubStudentRepo(
		model.Student{ID: 11, ClassroomID: 5, Name: "Ana"},
		model.Student{ID: 12, ClassroomID: 5, Name: "Ben"},
		model.Student{ID: 13, ClassroomID: 5, Name: "Cho"},
		model.Student{ID: 21, ClassroomID: 6, Name: "Dan"},
	)

	tokenSvc := NewTokenService(surveyRepo, studentRepo).(*tokenService)
	tokenSvc.now = func() time.Time { return now }

	responseRepo := &stubResponseRepo{}
	return responseRepo, NewSubmissionService(tokenSvc, surveyRepo, studentRepo, responseRepo)
}

func TestSubmitPersistsOneRowPerAnswer(t *testing.T) {
	responseRepo, svc := newSubmissionFixture(t)

	err := svc.Submit(dto.SubmitResponsesDTO{
		Token:        "tok1",
		RespondentID: 11,
		Responses: []dto.AnswerInputDTO{
			{SurveyQuestionID: 101, TargetIDs: []uint{12}},
			{SurveyQuestionID: 102, TargetIDs: []uint{13}},
		},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if len(responseRepo.submissions) != 1 {
		t.Fatalf("expected one transactional write, got %d", len(responseRepo.submissions))
	}
	rows := responseRepo.submissions[0]
	if len(rows) != 2 {
		t.Fatalf("expected 2 response rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row.SurveyID != 1 || row.RespondentID != 11 {
			t.Errorf("unexpected response row %+v", row)
		}
		if len(row.Targets) != 1 {
			t.Errorf("expected 1 target row for question %d, got %d", row.SurveyQuestionID, len(row.Targets))
		}
	}
	if rows[0].Targets[0].TargetID != 12 || rows[1].Targets[0].TargetID != 13 {
		t.Errorf("unexpected targets: %+v / %+v", rows[0].Targets, rows[1].Targets)
	}
}

func TestSubmitRejections(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.SubmitResponsesDTO
		wantErr error
	}{
		{
			"respondent from another classroom",
			dto.SubmitResponsesDTO{Token: "tok1", RespondentID: 21, Responses: []dto.AnswerInputDTO{
				{SurveyQuestionID: 101, TargetIDs: []uint{12}},
			}},
			ErrWrongClassroom,
		},
		{
			"invalid token",
			dto.SubmitResponsesDTO{Token: "bogus", RespondentID: 11, Responses: []dto.AnswerInputDTO{
				{SurveyQuestionID: 101, TargetIDs: []uint{12}},
			}},
			ErrTokenInvalid,
		},
		{
			"question not in survey",
			dto.SubmitResponsesDTO{Token: "tok1", RespondentID: 11, Responses: []dto.AnswerInputDTO{
				{SurveyQuestionID: 999, TargetIDs: []uint{12}},
			}},
			ErrInvalidInput,
		},
		{
			"self nomination",
			dto.SubmitResponsesDTO{Token: "tok1", RespondentID: 11, Responses: []dto.AnswerInputDTO{
				{SurveyQuestionID: 101, TargetIDs: []uint{11}},
			}},
			ErrInvalidInput,
		},
		{
			"target outside classroom",
			dto.SubmitResponsesDTO{Token: "tok1", RespondentID: 11, Responses: []dto.AnswerInputDTO{
				{SurveyQuestionID: 101, TargetIDs: []uint{21}},
			}},
			ErrInvalidInput,
		},
		{
			"no answers",
			dto.SubmitResponsesDTO{Token: "tok1", RespondentID: 11},
			ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			responseRepo, svc := newSubmissionFixture(t)

			err := svc.Submit(tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if len(responseRepo.submissions) != 0 {
				t.Errorf("rejected submission must write nothing, got %d writes", len(responseRepo.submissions))
			}
		})
	}
}

func TestSubmitAllowsRetake(t *testing.T) {
	responseRepo, svc := newSubmissionFixture(t)

	req := dto.SubmitResponsesDTO{
		Token:        "tok1",
		RespondentID: 11,
		Responses: []dto.AnswerInputDTO{
			{SurveyQuestionID: 101, TargetIDs: []uint{12}},
		},
	}
	if err := svc.Submit(req); err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	req.Responses[0].TargetIDs = []uint{13}
	if err := svc.Submit(req); err != nil {
		t.Fatalf("second Submit: %v", err)
	}

	// Both submissions are kept as independent rows.
	if len(responseRepo.stored) != 2 {
		t.Errorf("expected 2 stored response rows after a re-take, got %d", len(responseRepo.stored))
	}
}

package service

import (
	"errors"
	"testing"
	"time"

	"github.com/teacher-kiwi/sociogram/internal/model"
)

func newTokenFixture(token string, age time.Duration) (*stubSurveyRepo, *stubStudentRepo, *tokenService) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	createdAt := now.Add(-age)

	surveyRepo := newStubSurveyRepo()
	survey := &model.Survey{ID: 1, ClassroomID: 5, Title: "March check-in", IsActive: true}
	if token != "" {
		survey.Token = &token
		survey.TokenCreatedAt = &createdAt
	}
	surveyRepo.surveys[1] = survey
	surveyRepo.nextID = 2

	studentRepo := newStubStudentRepo(
		model.Student{ID: 11, ClassroomID: 5, Name: "Ana"},
		model.Student{ID: 12, ClassroomID: 5, Name: "Ben"},
		model.Student{ID: 21, ClassroomID: 6, Name: "Caleb"},
	)

	svc := NewTokenService(surveyRepo, studentRepo).(*tokenService)
	svc.now = func() time.Time { return now }
	return surveyRepo, studentRepo, svc
}

func TestIssueReusesTokenInsideWindow(t *testing.T) {
	surveyRepo, _, svc := newTokenFixture("aaaa1111bbbb2222cccc3333dddd4444", 29*time.Minute)

	token, err := svc.Issue(1)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token != "aaaa1111bbbb2222cccc3333dddd4444" {
		t.Errorf("expected existing token to be reused, got %q", token)
	}
	if surveyRepo.tokenUpdates != 0 {
		t.Errorf("expected no token write, got %d", surveyRepo.tokenUpdates)
	}
}

func TestIssueRotatesTokenAfterWindow(t *testing.T) {
	surveyRepo, _, svc := newTokenFixture("aaaa1111bbbb2222cccc3333dddd4444", 31*time.Minute)

	token, err := svc.Issue(1)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "aaaa1111bbbb2222cccc3333dddd4444" {
		t.Error("expected a fresh token after the window elapsed")
	}
	if len(token) != 32 {
		t.Errorf("expected 32-character token, got %d characters", len(token))
	}
	if surveyRepo.tokenUpdates != 1 {
		t.Errorf("expected one token write, got %d", surveyRepo.tokenUpdates)
	}
}

func TestIssueFirstToken(t *testing.T) {
	surveyRepo, _, svc := newTokenFixture("", 0)

	token, err := svc.Issue(1)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if len(token) != 32 {
		t.Errorf("expected 32-character token, got %q", token)
	}
	if surveyRepo.tokenUpdates != 1 {
		t.Errorf("expected one token write, got %d", surveyRepo.tokenUpdates)
	}
}

func TestIssueUnknownSurvey(t *testing.T) {
	_, _, svc := newTokenFixture("", 0)

	if _, err := svc.Issue(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		age     time.Duration
		lookup  string
		wantErr error
	}{
		{"valid inside window", "tok1", 29 * time.Minute, "tok1", nil},
		{"expired at boundary", "tok1", 30 * time.Minute, "tok1", ErrTokenInvalid},
		{"expired past window", "tok1", 31 * time.Minute, "tok1", ErrTokenInvalid},
		{"unknown token", "tok1", 5 * time.Minute, "other", ErrTokenInvalid},
		{"empty token", "tok1", 5 * time.Minute, "", ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, svc := newTokenFixture(tt.token, tt.age)

			access, err := svc.Verify(tt.lookup)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Verify: %v", err)
			}
			if access.SurveyID != 1 || access.ClassroomID != 5 {
				t.Errorf("unexpected access %+v", access)
			}
		})
	}
}

func TestVerifyStableInsideWindow(t *testing.T) {
	_, _, svc := newTokenFixture("tok1", 10*time.Minute)

	for i := 0; i < 3; i++ {
		if _, err := svc.Verify("tok1"); err != nil {
			t.Fatalf("Verify call %d: %v", i+1, err)
		}
	}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name         string
		respondentID uint
		wantErr      error
	}{
		{"respondent in classroom", 11, nil},
		{"respondent in another classroom", 21, ErrWrongClassroom},
		{"unknown respondent", 99, ErrWrongClassroom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, svc := newTokenFixture("tok1", 5*time.Minute)

			access, err := svc.Authorize("tok1", tt.respondentID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Authorize: %v", err)
			}
			if access.ClassroomID != 5 {
				t.Errorf("unexpected access %+v", access)
			}
		})
	}
}

func TestAuthorizeExpiredTokenBeatsMembership(t *testing.T) {
	_, _, svc := newTokenFixture("tok1", 31*time.Minute)

	if _, err := svc.Authorize("tok1", 11); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

package repository

import (
	"errors"
	"testing"

	"github.com/teacher-kiwi/sociogram/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.Classroom{},
		&model.Student{},
		&model.Question{},
		&model.Survey{},
		&model.SurveyQuestion{},
		&model.RelationshipResponse{},
		&model.RelationshipResponseTarget{},
	)
	if err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, value any) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("create %T: %v", value, err)
	}
}

func seedResponse(t *testing.T, db *gorm.DB, surveyID, respondentID, surveyQuestionID, targetID uint) {
	t.Helper()
	resp := model.RelationshipResponse{
		SurveyID:         surveyID,
		RespondentID:     respondentID,
		SurveyQuestionID: surveyQuestionID,
		Targets:          []model.RelationshipResponseTarget{{TargetID: targetID}},
	}
	mustCreate(t, db, &resp)
}

func countWhere(t *testing.T, db *gorm.DB, mdl any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(mdl).Where(query, args...).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestApplyRosterDiffDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewStudentRepository(db)

	classroom := model.Classroom{UserID: "user-1", SchoolName: "Maple", Grade: 3, ClassNumber: 2}
	mustCreate(t, db, &classroom)

	ana := model.Student{ClassroomID: classroom.ID, Name: "Ana"}
	ben := model.Student{ClassroomID: classroom.ID, Name: "Ben"}
	cho := model.Student{ClassroomID: classroom.ID, Name: "Cho"}
	mustCreate(t, db, &ana)
	mustCreate(t, db, &ben)
	mustCreate(t, db, &cho)

	survey := model.Survey{ClassroomID: classroom.ID, Title: "March check-in"}
	mustCreate(t, db, &survey)
	question := model.Question{QuestionText: "Who would you like to sit next to?", IsDefault: true}
	mustCreate(t, db, &question)
	sq1 := model.SurveyQuestion{SurveyID: survey.ID, QuestionID: question.ID, OrderNum: 1, Weight: 1}
	sq2 := model.SurveyQuestion{SurveyID: survey.ID, QuestionID: question.ID, OrderNum: 2, Weight: -1}
	sq3 := model.SurveyQuestion{SurveyID: survey.ID, QuestionID: question.ID, OrderNum: 3, Weight: 1}
	mustCreate(t, db, &sq1)
	mustCreate(t, db, &sq2)
	mustCreate(t, db, &sq3)

	// Ben answered all three questions and is nominated once by Ana.
	seedResponse(t, db, survey.ID, ben.ID, sq1.ID, ana.ID)
	seedResponse(t, db, survey.ID, ben.ID, sq2.ID, cho.ID)
	seedResponse(t, db, survey.ID, ben.ID, sq3.ID, ana.ID)
	seedResponse(t, db, survey.ID, ana.ID, sq1.ID, ben.ID)
	seedResponse(t, db, survey.ID, ana.ID, sq2.ID, cho.ID)

	if err := repo.ApplyRosterDiff(nil, nil, []uint{ben.ID}); err != nil {
		t.Fatalf("ApplyRosterDiff: %v", err)
	}

	if n := countWhere(t, db, &model.RelationshipResponse{}, "respondent_id = ?", ben.ID); n != 0 {
		t.Errorf("expected Ben's responses removed, %d remain", n)
	}
	if n := countWhere(t, db, &model.RelationshipResponseTarget{}, "target_id = ?", ben.ID); n != 0 {
		t.Errorf("expected target rows naming Ben removed, %d remain", n)
	}
	if n := countWhere(t, db, &model.RelationshipResponse{}, "respondent_id = ?", ana.ID); n != 2 {
		t.Errorf("expected Ana's 2 responses untouched, got %d", n)
	}
	if n := countWhere(t, db, &model.RelationshipResponseTarget{}, "target_id = ?", cho.ID); n != 1 {
		t.Errorf("expected Ana's nomination of Cho to survive, got %d target rows", n)
	}

	if _, err := repo.FindByID(ben.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected Ben gone from roster, got %v", err)
	}
	for _, kept := range []uint{ana.ID, cho.ID} {
		if _, err := repo.FindByID(kept); err != nil {
			t.Errorf("expected student %d still present, got %v", kept, err)
		}
	}
}

func TestApplyRosterDiffInsertsAndUpdates(t *testing.T) {
	db := newTestDB(t)
	repo := NewStudentRepository(db)

	classroom := model.Classroom{UserID: "user-1", SchoolName: "Maple", Grade: 3, ClassNumber: 2}
	mustCreate(t, db, &classroom)

	ana := model.Student{ClassroomID: classroom.ID, Name: "Ana"}
	mustCreate(t, db, &ana)

	ana.Name = "Ana R."
	inserts := []model.Student{{ClassroomID: classroom.ID, Name: "Dee"}}
	if err := repo.ApplyRosterDiff(inserts, []model.Student{ana}, nil); err != nil {
		t.Fatalf("ApplyRosterDiff: %v", err)
	}

	students, err := repo.FindByClassroomID(classroom.ID)
	if err != nil {
		t.Fatalf("FindByClassroomID: %v", err)
	}
	if len(students) != 2 {
		t.Fatalf("expected 2 students, got %d", len(students))
	}
	names := map[string]bool{}
	for _, s := range students {
		names[s.Name] = true
	}
	if !names["Ana R."] || !names["Dee"] {
		t.Errorf("unexpected roster after diff: %v", names)
	}
}

package service

import (
	"sort"
	"time"

	"github.com/teacher-kiwi/sociogram/internal/model"
	"gorm.io/gorm"
)

// In-memory repository stubs shared by the service tests.

type stubSurveyRepo struct {
	surveys      map[uint]*model.Survey
	questions    map[uint][]model.SurveyQuestion
	nextID       uint
	tokenUpdates int
	err          error
}

func newStubSurveyRepo() *stubSurveyRepo {
	return &stubSurveyRepo{
		surveys:   make(map[uint]*model.Survey),
		questions: make(map[uint][]model.SurveyQuestion),
		nextID:    1,
	}
}

func (r *stubSurveyRepo) Create(survey *model.Survey) error {
	if r.err != nil {
		return r.err
	}
	survey.ID = r.nextID
	r.nextID++
	for i := range survey.Questions {
		survey.Questions[i].ID = survey.ID*100 + uint(i)
		survey.Questions[i].SurveyID = survey.ID
	}
	r.surveys[survey.ID] = survey
	r.questions[survey.ID] = survey.Questions
	return nil
}

func (r *stubSurveyRepo) FindByID(id uint) (*model.Survey, error) {
	if r.err != nil {
		return nil, r.err
	}
	survey, ok := r.surveys[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return survey, nil
}

func (r *stubSurveyRepo) FindByToken(token string) (*model.Survey, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, survey := range r.surveys {
		if survey.Token != nil && *survey.Token == token {
			return survey, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSurveyRepo) FindAllByClassroom(classroomID uint) ([]model.Survey, error) {
	var out []model.Survey
	for _, survey := range r.surveys {
		if survey.ClassroomID == classroomID {
			out = append(out, *survey)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubSurveyRepo) UpdateToken(surveyID uint, token string, createdAt time.Time) error {
	if r.err != nil {
		return r.err
	}
	survey, ok := r.surveys[surveyID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	survey.Token = &token
	survey.TokenCreatedAt = &createdAt
	r.tokenUpdates++
	return nil
}

func (r *stubSurveyRepo) FindQuestions(surveyID uint) ([]model.SurveyQuestion, error) {
	return r.questions[surveyID], nil
}

type stubStudentRepo struct {
	students map[uint]*model.Student

	inserts   []model.Student
	updates   []model.Student
	deleteIDs []uint
	diffCalls int
	nextID    uint
}

func newStubStudentRepo(students ...model.Student) *stubStudentRepo {
	r := &stubStudentRepo{students: make(map[uint]*model.Student), nextID: 1000}
	for i := range students {
		st := students[i]
		r.students[st.ID] = &st
	}
	return r
}

func (r *stubStudentRepo) FindByID(id uint) (*model.Student, error) {
	st, ok := r.students[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return st, nil
}

func (r *stubStudentRepo) FindByClassroomID(classroomID uint) ([]model.Student, error) {
	var out []model.Student
	for _, st := range r.students {
		if st.ClassroomID == classroomID {
			out = append(out, *st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubStudentRepo) ApplyRosterDiff(inserts, updates []model.Student, deleteIDs []uint) error {
	r.diffCalls++
	r.inserts = append(r.inserts, inserts...)
	r.updates = append(r.updates, updates...)
	r.deleteIDs = append(r.deleteIDs, deleteIDs...)
	for i := range inserts {
		st := inserts[i]
		st.ID = r.nextID
		r.nextID++
		r.students[st.ID] = &st
	}
	for i := range updates {
		st := updates[i]
		r.students[st.ID] = &st
	}
	for _, id := range deleteIDs {
		delete(r.students, id)
	}
	return nil
}

type stubQuestionRepo struct {
	questions map[uint]*model.Question
	nextID    uint
}

func newStubQuestionRepo(questions ...model.Question) *stubQuestionRepo {
	r := &stubQuestionRepo{questions: make(map[uint]*model.Question), nextID: 500}
	for i := range questions {
		q := questions[i]
		r.questions[q.ID] = &q
	}
	return r
}

func (r *stubQuestionRepo) Create(question *model.Question) error {
	question.ID = r.nextID
	r.nextID++
	r.questions[question.ID] = question
	return nil
}

func (r *stubQuestionRepo) CreateBatch(questions []*model.Question) error {
	for _, q := range questions {
		if err := r.Create(q); err != nil {
			return err
		}
	}
	return nil
}

func (r *stubQuestionRepo) FindByIDs(ids []uint) ([]model.Question, error) {
	seen := make(map[uint]bool, len(ids))
	var out []model.Question
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if q, ok := r.questions[id]; ok {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (r *stubQuestionRepo) FindAvailableForUser(userID string) ([]model.Question, error) {
	var out []model.Question
	for _, q := range r.questions {
		if q.IsDefault || (q.UserID != nil && *q.UserID == userID) {
			out = append(out, *q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubQuestionRepo) CountDefaults() (int64, error) {
	var n int64
	for _, q := range r.questions {
		if q.IsDefault {
			n++
		}
	}
	return n, nil
}

type stubClassroomRepo struct {
	classrooms map[uint]*model.Classroom
	nextID     uint
}

func newStubClassroomRepo(classrooms ...model.Classroom) *stubClassroomRepo {
	r := &stubClassroomRepo{classrooms: make(map[uint]*model.Classroom), nextID: 1}
	for i := range classrooms {
		c := classrooms[i]
		r.classrooms[c.ID] = &c
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
	}
	return r
}

func (r *stubClassroomRepo) Create(classroom *model.Classroom) error {
	classroom.ID = r.nextID
	r.nextID++
	for i := range classroom.Students {
		classroom.Students[i].ID = classroom.ID*10 + uint(i) + 1
		classroom.Students[i].ClassroomID = classroom.ID
	}
	r.classrooms[classroom.ID] = classroom
	return nil
}

func (r *stubClassroomRepo) FindByID(id uint) (*model.Classroom, error) {
	classroom, ok := r.classrooms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return classroom, nil
}

func (r *stubClassroomRepo) FindByIDWithStudents(id uint) (*model.Classroom, error) {
	return r.FindByID(id)
}

func (r *stubClassroomRepo) FindAllByUser(userID string) ([]model.Classroom, error) {
	var out []model.Classroom
	for _, c := range r.classrooms {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubClassroomRepo) Update(classroom *model.Classroom) error {
	r.classrooms[classroom.ID] = classroom
	return nil
}

type stubResponseRepo struct {
	submissions [][]model.RelationshipResponse
	stored      []model.RelationshipResponse
	err         error
}

func (r *stubResponseRepo) CreateSubmission(responses []model.RelationshipResponse) error {
	if r.err != nil {
		return r.err
	}
	r.submissions = append(r.submissions, responses)
	r.stored = append(r.stored, responses...)
	return nil
}

func (r *stubResponseRepo) FindBySurveyID(surveyID uint) ([]model.RelationshipResponse, error) {
	var out []model.RelationshipResponse
	for _, resp := range r.stored {
		if resp.SurveyID == surveyID {
			out = append(out, resp)
		}
	}
	return out, nil
}

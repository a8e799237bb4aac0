// Package flow drives a single student's pass through a survey: pick yourself
// from the roster, confirm, answer each question by nominating one peer, then
// submit everything at once. Nothing is persisted until the terminal submit.
//
// It is the client-side counterpart to the /api/v1/survey endpoints. A frontend
// (or a headless client walking the survey) creates a Session from the payloads
// returned by the verify and data endpoints, and the Session enforces the same
// ordering and self-nomination rules before handing the collected answers to
// the responses endpoint in one request.
package flow

import (
	"errors"
	"fmt"
	"time"

	"github.com/teacher-kiwi/sociogram/internal/dto"
	"github.com/teacher-kiwi/sociogram/internal/service"
)

type State int

const (
	StateSelectIdentity State = iota
	StateConfirmIdentity
	StateAnswering
	StateSubmitted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateSelectIdentity:
		return "select_identity"
	case StateConfirmIdentity:
		return "confirm_identity"
	case StateAnswering:
		return "answering"
	case StateSubmitted:
		return "submitted"
	case StateCancelled:
		return "cancelled"
	}
	return "unknown"
}

var (
	ErrBadTransition  = errors.New("operation not valid in current state")
	ErrSessionExpired = errors.New("survey session has expired")
	ErrUnknownStudent = errors.New("student is not in this classroom")
	ErrSelfTarget     = errors.New("respondent cannot nominate themselves")
	ErrNoChoice       = errors.New("no target chosen for the current question")
	ErrNoQuestions    = errors.New("survey has no questions to answer")
)

// Submitter receives the buffered answers when the session completes.
// service.SubmissionService satisfies it.
type Submitter interface {
	Submit(req dto.SubmitResponsesDTO) error
}

// Session is the in-memory state of one student taking one survey. It is not
// safe for concurrent use; each respondent gets their own session.
type Session struct {
	token     string
	students  []dto.StudentDTO
	questions []dto.SurveyQuestionDTO
	submitter Submitter

	state      State
	pendingID  *uint
	respondent uint
	index      int
	answers    map[uint]uint // survey question id -> chosen target id

	deadline time.Time
	now      func() time.Time
}

func NewSession(token string, students []dto.StudentDTO, questions []dto.SurveyQuestionDTO, submitter Submitter) *Session {
	now := time.Now
	return &Session{
		token:     token,
		students:  students,
		questions: questions,
		submitter: submitter,
		state:     StateSelectIdentity,
		answers:   make(map[uint]uint),
		deadline:  now().Add(service.TokenWindow),
		now:       now,
	}
}

func (s *Session) State() State { return s.state }

func (s *Session) expired() bool {
	return !s.now().Before(s.deadline)
}

func (s *Session) inRoster(studentID uint) bool {
	for _, st := range s.students {
		if st.ID == studentID {
			return true
		}
	}
	return false
}

// Select records the student's claimed identity and moves to confirmation.
func (s *Session) Select(studentID uint) error {
	if s.expired() {
		return ErrSessionExpired
	}
	if s.state != StateSelectIdentity {
		return ErrBadTransition
	}
	if !s.inRoster(studentID) {
		return fmt.Errorf("%w: id %d", ErrUnknownStudent, studentID)
	}
	id := studentID
	s.pendingID = &id
	s.state = StateConfirmIdentity
	return nil
}

// Back returns from confirmation to identity selection and clears the
// pending respondent.
func (s *Session) Back() error {
	if s.state != StateConfirmIdentity {
		return ErrBadTransition
	}
	s.pendingID = nil
	s.state = StateSelectIdentity
	return nil
}

// Start confirms the pending identity and begins answering.
func (s *Session) Start() error {
	if s.expired() {
		return ErrSessionExpired
	}
	if s.state != StateConfirmIdentity || s.pendingID == nil {
		return ErrBadTransition
	}
	if len(s.questions) == 0 {
		return ErrNoQuestions
	}
	s.respondent = *s.pendingID
	s.state = StateAnswering
	s.index = 0
	return nil
}

// Current returns the question being answered.
func (s *Session) Current() (dto.SurveyQuestionDTO, error) {
	if s.state != StateAnswering {
		return dto.SurveyQuestionDTO{}, ErrBadTransition
	}
	return s.questions[s.index], nil
}

// Choices lists the selectable targets for the current question: the roster
// minus the respondent themselves.
func (s *Session) Choices() ([]dto.StudentDTO, error) {
	if s.state != StateAnswering {
		return nil, ErrBadTransition
	}
	out := make([]dto.StudentDTO, 0, len(s.students)-1)
	for _, st := range s.students {
		if st.ID == s.respondent {
			continue
		}
		out = append(out, st)
	}
	return out, nil
}

// Choice returns the target already chosen for the current question, if any.
// A non-nil result after Previous shows the restored earlier choice.
func (s *Session) Choice() (*uint, error) {
	if s.state != StateAnswering {
		return nil, ErrBadTransition
	}
	if target, ok := s.answers[s.questions[s.index].ID]; ok {
		t := target
		return &t, nil
	}
	return nil, nil
}

// Choose buffers a nomination for the current question, replacing any
// earlier choice.
func (s *Session) Choose(targetID uint) error {
	if s.expired() {
		return ErrSessionExpired
	}
	if s.state != StateAnswering {
		return ErrBadTransition
	}
	if targetID == s.respondent {
		return ErrSelfTarget
	}
	if !s.inRoster(targetID) {
		return fmt.Errorf("%w: id %d", ErrUnknownStudent, targetID)
	}
	s.answers[s.questions[s.index].ID] = targetID
	return nil
}

// Next advances to the following question, or on the last question submits
// all buffered answers in a single call and terminates the session.
func (s *Session) Next() error {
	if s.expired() {
		return ErrSessionExpired
	}
	if s.state != StateAnswering {
		return ErrBadTransition
	}
	if _, ok := s.answers[s.questions[s.index].ID]; !ok {
		return ErrNoChoice
	}
	if s.index < len(s.questions)-1 {
		s.index++
		return nil
	}
	return s.submit()
}

// Previous steps back one question. The earlier choice for that question
// stays buffered and is reported again by Choice.
func (s *Session) Previous() error {
	if s.state != StateAnswering {
		return ErrBadTransition
	}
	if s.index == 0 {
		return ErrBadTransition
	}
	s.index--
	return nil
}

// Cancel abandons the session. Buffered answers are discarded; nothing was
// persisted.
func (s *Session) Cancel() error {
	if s.state == StateSubmitted || s.state == StateCancelled {
		return ErrBadTransition
	}
	s.answers = make(map[uint]uint)
	s.pendingID = nil
	s.state = StateCancelled
	return nil
}

func (s *Session) submit() error {
	req := dto.SubmitResponsesDTO{
		Token:        s.token,
		RespondentID: s.respondent,
		Responses:    make([]dto.AnswerInputDTO, 0, len(s.answers)),
	}
	for _, q := range s.questions {
		target, ok := s.answers[q.ID]
		if !ok {
			continue
		}
		req.Responses = append(req.Responses, dto.AnswerInputDTO{
			SurveyQuestionID: q.ID,
			TargetIDs:        []uint{target},
		})
	}
	if err := s.submitter.Submit(req); err != nil {
		return err
	}
	s.pendingID = nil
	s.state = StateSubmitted
	return nil
}

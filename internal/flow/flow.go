// Package flow drives one respondent's session through the survey: questions
// one at a time, answers recorded in order, reversible navigation, and a single
// hand-off to the submission pipeline at the end.
package flow

import (
	"context"
	"errors"
	"strings"

	"jobmatch_backend/internal/model"
	"jobmatch_backend/internal/util"

	"github.com/go-playground/validator/v10"
)

type Phase string

const (
	PhaseIdle            Phase = "idle"
	PhaseAsking          Phase = "asking"
	PhaseAwaitingContact Phase = "awaiting_contact"
	PhaseSubmitting      Phase = "submitting"
	PhaseComplete        Phase = "complete"
	PhaseFailed          Phase = "failed"
)

var (
	ErrNoQuestions    = errors.New("question list is empty")
	ErrWrongPhase     = errors.New("operation not allowed in current phase")
	ErrAnswerRequired = errors.New("current question cannot be skipped")
	ErrAnswerMismatch = errors.New("answer value does not match question type")
	ErrSubmitInFlight = errors.New("submission already in progress")
)

// Question is the catalog entry as the flow consumes it. IDs are strings
// because they become the answer-set keys on the wire.
type Question struct {
	ID       string
	Text     string
	Type     string
	Required bool
	Options  []string
}

type Contact struct {
	Name   string
	School string
	Phone  string
	Email  string
}

// Submitter is the submission pipeline from the flow's point of view. It is
// called at most once per Submit attempt and returns the assigned lead ID.
type Submitter interface {
	SubmitLead(ctx context.Context, answers model.AnswerSet, contact Contact, consent bool) (uint, error)
}

// step records whether a traversed question was answered or skipped, so Back
// can undo either exactly.
type step struct {
	answered bool
}

// Flow is single-threaded by design: pointer movement touches only the Gesture,
// and Answer/Back/Skip/Submit are the only state-advancing operations.
type Flow struct {
	phase     Phase
	questions []Question
	current   int
	answers   model.AnswerSet
	history   []step
	submitter Submitter
	leadID    uint
	lastErr   error
	validate  *validator.Validate
}

func New(submitter Submitter) *Flow {
	return &Flow{
		phase:     PhaseIdle,
		submitter: submitter,
		validate:  validator.New(),
	}
}

// Start enters the asking phase. An empty catalog is a load failure, not a
// session with nothing to show.
func (f *Flow) Start(questions []Question) error {
	if f.phase != PhaseIdle {
		return ErrWrongPhase
	}
	if len(questions) == 0 {
		return ErrNoQuestions
	}
	f.questions = questions
	f.current = 0
	f.phase = PhaseAsking
	return nil
}

func (f *Flow) Phase() Phase { return f.phase }

func (f *Flow) CurrentIndex() int { return f.current }

func (f *Flow) Current() (Question, bool) {
	if f.phase != PhaseAsking || f.current >= len(f.questions) {
		return Question{}, false
	}
	return f.questions[f.current], true
}

// Answers returns a copy of the ordered answer sequence collected so far.
func (f *Flow) Answers() model.AnswerSet {
	out := make(model.AnswerSet, len(f.answers))
	copy(out, f.answers)
	return out
}

// LeadID is the identifier assigned by the pipeline once the flow completes.
func (f *Flow) LeadID() uint { return f.leadID }

// Err is the reason of the most recent submit failure, nil otherwise.
func (f *Flow) Err() error { return f.lastErr }

// Answer records a value for the current question and advances. Binary
// questions take booleans, single-choice questions take one of their labels.
func (f *Flow) Answer(value model.AnswerValue) error {
	q, ok := f.Current()
	if !ok {
		return ErrWrongPhase
	}
	if q.Type == model.QuestionTypeBinary && !value.IsBool() {
		return ErrAnswerMismatch
	}
	if q.Type == model.QuestionTypeSingleChoice && value.IsBool() {
		return ErrAnswerMismatch
	}

	f.answers = append(f.answers, model.AnswerRecord{QuestionID: q.ID, Value: value})
	f.advance(step{answered: true})
	return nil
}

// Skip advances past a non-required question without recording anything for it.
func (f *Flow) Skip() error {
	q, ok := f.Current()
	if !ok {
		return ErrWrongPhase
	}
	if q.Required {
		return ErrAnswerRequired
	}
	f.advance(step{answered: false})
	return nil
}

func (f *Flow) advance(st step) {
	f.history = append(f.history, st)
	if f.current+1 >= len(f.questions) {
		f.current++
		f.phase = PhaseAwaitingContact
		return
	}
	f.current++
}

// Back undoes the most recent Answer or Skip. At the first question it does
// nothing.
func (f *Flow) Back() {
	if f.phase != PhaseAsking || f.current == 0 {
		return
	}
	last := f.history[len(f.history)-1]
	f.history = f.history[:len(f.history)-1]
	if last.answered {
		f.answers = f.answers[:len(f.answers)-1]
	}
	f.current--
}

// Submit validates the contact record locally, then hands the collected
// answers to the pipeline. On failure the flow stays retryable and keeps every
// collected answer.
func (f *Flow) Submit(ctx context.Context, contact Contact, consent bool) error {
	switch f.phase {
	case PhaseAwaitingContact, PhaseFailed:
	case PhaseSubmitting:
		return ErrSubmitInFlight
	default:
		return ErrWrongPhase
	}

	if err := f.validateContact(contact, consent); err != nil {
		f.phase = PhaseAwaitingContact
		return err
	}

	f.phase = PhaseSubmitting
	leadID, err := f.submitter.SubmitLead(ctx, f.Answers(), contact, consent)
	if err != nil {
		f.phase = PhaseFailed
		f.lastErr = err
		return err
	}
	f.leadID = leadID
	f.lastErr = nil
	f.phase = PhaseComplete
	return nil
}

// validateContact mirrors the server-side rules so obviously bad input never
// leaves the client.
func (f *Flow) validateContact(contact Contact, consent bool) error {
	name := strings.TrimSpace(contact.Name)
	school := strings.TrimSpace(contact.School)
	phone := strings.TrimSpace(contact.Phone)
	email := strings.TrimSpace(contact.Email)

	if name == "" {
		return util.ErrNameRequired
	}
	if school == "" {
		return util.ErrSchoolRequired
	}
	if phone == "" && email == "" {
		return util.ErrContactRequired
	}
	if email != "" {
		if err := f.validate.Var(email, "email"); err != nil {
			return util.ErrEmailInvalid
		}
	}
	if !consent {
		return util.ErrConsentRequired
	}
	return nil
}

// ReleaseGesture commits a finished drag against the current question. A drag
// that never crossed the decision threshold leaves the flow untouched, as does
// a release on a non-binary question.
func (f *Flow) ReleaseGesture(g *Gesture) error {
	decision := g.Release()
	if decision == DecisionNone {
		return nil
	}
	q, ok := f.Current()
	if !ok || q.Type != model.QuestionTypeBinary {
		return nil
	}
	return f.Answer(model.BoolAnswer(decision == DecisionYes))
}

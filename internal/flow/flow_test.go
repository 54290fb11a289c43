package flow

import (
	"context"
	"errors"
	"testing"

	"jobmatch_backend/internal/model"
	"jobmatch_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubmitter struct {
	leadID   uint
	err      error
	calls    int
	answers  model.AnswerSet
	contact  Contact
	consent  bool
	onSubmit func()
}

func (s *fakeSubmitter) SubmitLead(_ context.Context, answers model.AnswerSet, contact Contact, consent bool) (uint, error) {
	s.calls++
	s.answers = answers
	s.contact = contact
	s.consent = consent
	if s.onSubmit != nil {
		s.onSubmit()
	}
	if s.err != nil {
		return 0, s.err
	}
	return s.leadID, nil
}

func binaryQ(id string) Question {
	return Question{ID: id, Text: id + "?", Type: model.QuestionTypeBinary, Required: true}
}

func choiceQ(id string, options ...string) Question {
	return Question{ID: id, Text: id + "?", Type: model.QuestionTypeSingleChoice, Required: true, Options: options}
}

func optionalQ(id string) Question {
	q := binaryQ(id)
	q.Required = false
	return q
}

func validContact() Contact {
	return Contact{Name: "山田", School: "X大学", Phone: "090-0000-0000"}
}

func TestStartRefusesEmptyCatalog(t *testing.T) {
	f := New(&fakeSubmitter{})
	assert.ErrorIs(t, f.Start(nil), ErrNoQuestions)
	assert.Equal(t, PhaseIdle, f.Phase())
}

func TestAnswerIndexInvariant(t *testing.T) {
	f := New(&fakeSubmitter{})
	require.NoError(t, f.Start([]Question{binaryQ("1"), binaryQ("2"), binaryQ("3")}))

	assert.Len(t, f.Answers(), f.CurrentIndex())

	require.NoError(t, f.Answer(model.BoolAnswer(true)))
	assert.Len(t, f.Answers(), f.CurrentIndex())

	require.NoError(t, f.Answer(model.BoolAnswer(false)))
	assert.Len(t, f.Answers(), f.CurrentIndex())

	require.NoError(t, f.Answer(model.BoolAnswer(true)))
	assert.Equal(t, PhaseAwaitingContact, f.Phase())
	assert.Len(t, f.Answers(), 3)
}

func TestBackIsExactInverseOfAnswer(t *testing.T) {
	f := New(&fakeSubmitter{})
	require.NoError(t, f.Start([]Question{binaryQ("1"), binaryQ("2"), binaryQ("3")}))

	require.NoError(t, f.Answer(model.BoolAnswer(true)))
	require.NoError(t, f.Answer(model.BoolAnswer(false)))

	beforeIndex := f.CurrentIndex()
	beforeAnswers := f.Answers()

	require.NoError(t, f.Answer(model.BoolAnswer(true)))
	f.Back()

	assert.Equal(t, beforeIndex, f.CurrentIndex())
	assert.Equal(t, beforeAnswers, f.Answers())
}

func TestBackAtFirstQuestionIsNoop(t *testing.T) {
	f := New(&fakeSubmitter{})
	require.NoError(t, f.Start([]Question{binaryQ("1"), binaryQ("2")}))

	f.Back()
	assert.Equal(t, 0, f.CurrentIndex())
	assert.Empty(t, f.Answers())
}

func TestSkipRecordsNothing(t *testing.T) {
	f := New(&fakeSubmitter{})
	require.NoError(t, f.Start([]Question{binaryQ("1"), optionalQ("2"), binaryQ("3")}))

	require.NoError(t, f.Answer(model.BoolAnswer(true)))
	require.NoError(t, f.Skip())
	require.NoError(t, f.Answer(model.BoolAnswer(false)))

	assert.Equal(t, PhaseAwaitingContact, f.Phase())
	answers := f.Answers()
	require.Len(t, answers, 2)
	assert.Equal(t, "1", answers[0].QuestionID)
	assert.Equal(t, "3", answers[1].QuestionID)
}

func TestSkipRejectedOnRequiredQuestion(t *testing.T) {
	f := New(&fakeSubmitter{})
	require.NoError(t, f.Start([]Question{binaryQ("1")}))

	assert.ErrorIs(t, f.Skip(), ErrAnswerRequired)
	assert.Equal(t, 0, f.CurrentIndex())
}

func TestBackUndoesSkip(t *testing.T) {
	f := New(&fakeSubmitter{})
	require.NoError(t, f.Start([]Question{optionalQ("1"), binaryQ("2")}))

	require.NoError(t, f.Skip())
	f.Back()

	assert.Equal(t, 0, f.CurrentIndex())
	assert.Empty(t, f.Answers())
}

func TestAnswerKindMustMatchQuestionType(t *testing.T) {
	f := New(&fakeSubmitter{})
	require.NoError(t, f.Start([]Question{binaryQ("1"), choiceQ("2", "A", "B")}))

	assert.ErrorIs(t, f.Answer(model.TextAnswer("A")), ErrAnswerMismatch)
	require.NoError(t, f.Answer(model.BoolAnswer(true)))

	assert.ErrorIs(t, f.Answer(model.BoolAnswer(true)), ErrAnswerMismatch)
	require.NoError(t, f.Answer(model.TextAnswer("B")))
	assert.Equal(t, PhaseAwaitingContact, f.Phase())
}

func TestSubmitHappyPath(t *testing.T) {
	sub := &fakeSubmitter{leadID: 7}
	f := New(sub)
	require.NoError(t, f.Start([]Question{binaryQ("1"), choiceQ("2", "A", "B")}))
	require.NoError(t, f.Answer(model.BoolAnswer(true)))
	require.NoError(t, f.Answer(model.TextAnswer("B")))

	require.NoError(t, f.Submit(context.Background(), validContact(), true))

	assert.Equal(t, PhaseComplete, f.Phase())
	assert.Equal(t, uint(7), f.LeadID())
	assert.Equal(t, 1, sub.calls)
	assert.True(t, sub.consent)
	require.Len(t, sub.answers, 2)
	assert.Equal(t, "1", sub.answers[0].Value.Storage())
	assert.Equal(t, "B", sub.answers[1].Value.Storage())
}

func TestSubmitLocalValidationBeforePipeline(t *testing.T) {
	sub := &fakeSubmitter{}
	f := New(sub)
	require.NoError(t, f.Start([]Question{binaryQ("1")}))
	require.NoError(t, f.Answer(model.BoolAnswer(true)))

	cases := []struct {
		contact Contact
		consent bool
		want    error
	}{
		{Contact{School: "X", Phone: "090"}, true, util.ErrNameRequired},
		{Contact{Name: "山田", Phone: "090"}, true, util.ErrSchoolRequired},
		{Contact{Name: "山田", School: "X"}, true, util.ErrContactRequired},
		{Contact{Name: "山田", School: "X", Email: "not-an-address"}, true, util.ErrEmailInvalid},
		{validContact(), false, util.ErrConsentRequired},
	}
	for _, tc := range cases {
		err := f.Submit(context.Background(), tc.contact, tc.consent)
		assert.ErrorIs(t, err, tc.want)
		assert.Equal(t, PhaseAwaitingContact, f.Phase())
	}
	assert.Zero(t, sub.calls, "pipeline must not see invalid payloads")
}

func TestSubmitFailureKeepsAnswersAndAllowsRetry(t *testing.T) {
	pipelineErr := errors.New("保存中にエラーが発生しました")
	sub := &fakeSubmitter{err: pipelineErr}
	f := New(sub)
	require.NoError(t, f.Start([]Question{binaryQ("1"), binaryQ("2")}))
	require.NoError(t, f.Answer(model.BoolAnswer(true)))
	require.NoError(t, f.Answer(model.BoolAnswer(false)))

	err := f.Submit(context.Background(), validContact(), true)
	assert.ErrorIs(t, err, pipelineErr)
	assert.Equal(t, PhaseFailed, f.Phase())
	assert.ErrorIs(t, f.Err(), pipelineErr)
	assert.Len(t, f.Answers(), 2)

	sub.err = nil
	sub.leadID = 3
	require.NoError(t, f.Submit(context.Background(), validContact(), true))
	assert.Equal(t, PhaseComplete, f.Phase())
	assert.Equal(t, uint(3), f.LeadID())
	assert.NoError(t, f.Err())
}

func TestSubmitWhileSubmittingIsRejected(t *testing.T) {
	sub := &fakeSubmitter{leadID: 1}
	f := New(sub)
	sub.onSubmit = func() {
		// Reentrant submit during an in-flight attempt must be refused.
		assert.ErrorIs(t, f.Submit(context.Background(), validContact(), true), ErrSubmitInFlight)
	}
	require.NoError(t, f.Start([]Question{binaryQ("1")}))
	require.NoError(t, f.Answer(model.BoolAnswer(true)))

	require.NoError(t, f.Submit(context.Background(), validContact(), true))
	assert.Equal(t, 1, sub.calls)
}

func TestGestureAndButtonsConvergeOnSameRule(t *testing.T) {
	sub := &fakeSubmitter{}
	f := New(sub)
	require.NoError(t, f.Start([]Question{binaryQ("1"), binaryQ("2"), binaryQ("3")}))

	// Committed drag answers yes.
	g := drag(140)
	require.NoError(t, f.ReleaseGesture(g))
	assert.Equal(t, 1, f.CurrentIndex())

	// Sub-threshold drag leaves the flow untouched.
	g = drag(60)
	require.NoError(t, f.ReleaseGesture(g))
	assert.Equal(t, 1, f.CurrentIndex())
	assert.Len(t, f.Answers(), 1)

	// Button path produces the identical transition.
	require.NoError(t, f.Answer(model.BoolAnswer(false)))

	answers := f.Answers()
	require.Len(t, answers, 2)
	assert.Equal(t, "1", answers[0].Value.Storage())
	assert.Equal(t, "0", answers[1].Value.Storage())
}

func TestGestureIgnoredOnSingleChoiceQuestion(t *testing.T) {
	f := New(&fakeSubmitter{})
	require.NoError(t, f.Start([]Question{choiceQ("1", "A", "B")}))

	g := drag(300)
	require.NoError(t, f.ReleaseGesture(g))
	assert.Equal(t, 0, f.CurrentIndex())
	assert.Empty(t, f.Answers())
}

package quiz

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

type fakeGateway struct {
	stored       Quiz
	replaceErr   error
	replaceCalls int
	lastReplaced Quiz
}

func (f *fakeGateway) LoadQuiz(_ context.Context) (Quiz, error) {
	return f.stored.Clone(), nil
}

func (f *fakeGateway) ReplaceQuiz(_ context.Context, candidate Quiz) (Quiz, error) {
	f.replaceCalls++
	f.lastReplaced = candidate.Clone()
	if f.replaceErr != nil {
		return Quiz{}, f.replaceErr
	}
	f.stored = Quiz{
		Questions: CloneQuestions(candidate.Questions),
		CreatedAt: f.stored.CreatedAt,
		UpdatedAt: candidate.UpdatedAt,
	}
	return f.stored.Clone(), nil
}

func newTestDraft(q Quiz) *Draft {
	d := NewDraft(q)
	d.now = func() time.Time { return testNow }
	return d
}

func TestNewDraftCopiesInput(t *testing.T) {
	q := validQuiz()
	d := NewDraft(q)
	if err := d.SetQuestionText(0, "changed"); err != nil {
		t.Fatalf("SetQuestionText failed: %v", err)
	}
	if err := d.ToggleCorrect(0, 0); err != nil {
		t.Fatalf("ToggleCorrect failed: %v", err)
	}
	if q.Questions[0].Text != "Capital of France?" || q.Questions[0].Answers[0].IsCorrect {
		t.Fatalf("draft edits leaked into the source quiz: %+v", q.Questions[0])
	}

	snapshot := d.Quiz()
	snapshot.Questions[0].Text = "outside"
	if d.Quiz().Questions[0].Text != "changed" {
		t.Fatalf("Quiz() did not return a copy")
	}
}

func TestAddQuestionAppendsPlaceholder(t *testing.T) {
	d := NewDraft(validQuiz())
	d.AddQuestion()

	got := d.Quiz().Questions
	if len(got) != 3 {
		t.Fatalf("question count = %d, want 3", len(got))
	}
	added := got[2]
	if added.Text != "New question" || len(added.Answers) != 2 {
		t.Fatalf("unexpected placeholder question: %+v", added)
	}
	if !added.Answers[0].IsCorrect || added.Answers[1].IsCorrect {
		t.Fatalf("placeholder should mark only the first answer correct: %+v", added.Answers)
	}
}

func TestRemoveQuestionGuardsLastQuestion(t *testing.T) {
	q := validQuiz()
	q.Questions = q.Questions[:1]
	d := NewDraft(q)

	err := d.RemoveQuestion(0)
	var guardErr *GuardError
	if !errors.As(err, &guardErr) || !errors.Is(err, ErrLastQuestion) {
		t.Fatalf("RemoveQuestion error = %v, want GuardError(ErrLastQuestion)", err)
	}
	if !reflect.DeepEqual(d.Quiz(), q) {
		t.Fatalf("draft changed after rejected removal")
	}
}

func TestRemoveQuestion(t *testing.T) {
	d := NewDraft(validQuiz())
	if err := d.RemoveQuestion(0); err != nil {
		t.Fatalf("RemoveQuestion failed: %v", err)
	}
	got := d.Quiz().Questions
	if len(got) != 1 || got[0].Text != "Primes" {
		t.Fatalf("unexpected questions after removal: %+v", got)
	}
}

func TestRemoveAnswerGuards(t *testing.T) {
	tests := []struct {
		name    string
		qi, ai  int
		wantErr error
	}{
		{name: "minimum answers", qi: 0, ai: 0, wantErr: ErrMinAnswers},
		{name: "minimum answers even for correct", qi: 0, ai: 1, wantErr: ErrMinAnswers},
		{name: "out of range question", qi: 5, ai: 0, wantErr: ErrNoSuchQuestion},
		{name: "out of range answer", qi: 1, ai: 9, wantErr: ErrNoSuchAnswer},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := validQuiz()
			d := NewDraft(q)
			err := d.RemoveAnswer(tc.qi, tc.ai)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("RemoveAnswer(%d, %d) error = %v, want %v", tc.qi, tc.ai, err, tc.wantErr)
			}
			if !reflect.DeepEqual(d.Quiz(), q) {
				t.Fatalf("draft changed after rejected removal")
			}
		})
	}
}

func TestRemoveAnswerGuardsLastCorrect(t *testing.T) {
	q := validQuiz()
	q.Questions[1].Answers[1].IsCorrect = false
	d := NewDraft(q)

	err := d.RemoveAnswer(1, 0)
	var guardErr *GuardError
	if !errors.As(err, &guardErr) || !errors.Is(err, ErrLastCorrect) {
		t.Fatalf("RemoveAnswer error = %v, want GuardError(ErrLastCorrect)", err)
	}
	if guardErr.Question != 1 || guardErr.Answer != 0 {
		t.Fatalf("guard error indices = (%d, %d), want (1, 0)", guardErr.Question, guardErr.Answer)
	}
	if !reflect.DeepEqual(d.Quiz(), q) {
		t.Fatalf("draft changed after rejected removal")
	}
}

func TestRemoveAnswerAllowsCorrectWhenAnotherRemains(t *testing.T) {
	d := NewDraft(validQuiz())
	if err := d.RemoveAnswer(1, 0); err != nil {
		t.Fatalf("RemoveAnswer failed: %v", err)
	}
	answers := d.Quiz().Questions[1].Answers
	want := []Answer{{Text: "3", IsCorrect: true}, {Text: "4"}}
	if !reflect.DeepEqual(answers, want) {
		t.Fatalf("answers = %+v, want %+v", answers, want)
	}
}

func TestAddAnswerAndTextEdits(t *testing.T) {
	d := NewDraft(validQuiz())
	if err := d.AddAnswer(0); err != nil {
		t.Fatalf("AddAnswer failed: %v", err)
	}
	if err := d.SetAnswerText(0, 2, ""); err != nil {
		t.Fatalf("SetAnswerText failed: %v", err)
	}
	if err := d.SetQuestionText(0, "   "); err != nil {
		t.Fatalf("SetQuestionText failed: %v", err)
	}

	question := d.Quiz().Questions[0]
	if len(question.Answers) != 3 || question.Answers[2].IsCorrect {
		t.Fatalf("unexpected answers after AddAnswer: %+v", question.Answers)
	}
	if question.Text != "   " || question.Answers[2].Text != "" {
		t.Fatalf("text edits should be stored verbatim: %+v", question)
	}

	if err := d.AddAnswer(7); !errors.Is(err, ErrNoSuchQuestion) {
		t.Fatalf("AddAnswer(7) error = %v, want ErrNoSuchQuestion", err)
	}
}

func TestToggleCorrectAllowsZeroCorrect(t *testing.T) {
	d := NewDraft(validQuiz())
	if err := d.ToggleCorrect(0, 1); err != nil {
		t.Fatalf("ToggleCorrect failed: %v", err)
	}
	if got := d.Quiz().Questions[0].correctCount(); got != 0 {
		t.Fatalf("correct count = %d, want 0", got)
	}
	if err := d.ToggleCorrect(0, 1); err != nil {
		t.Fatalf("ToggleCorrect failed: %v", err)
	}
	if !d.Quiz().Questions[0].Answers[1].IsCorrect {
		t.Fatalf("second toggle should restore the flag")
	}
}

func TestSaveRejectsInvalidDraftWithoutCallingGateway(t *testing.T) {
	gw := &fakeGateway{}
	d := newTestDraft(validQuiz())
	_ = d.ToggleCorrect(0, 1)
	before := d.Quiz()

	_, err := d.Save(context.Background(), gw)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Save error = %v, want *ValidationError", err)
	}
	if validationErr.First() != "question 1: must have at least one correct answer" {
		t.Fatalf("unexpected message: %q", validationErr.First())
	}
	if gw.replaceCalls != 0 {
		t.Fatalf("gateway called %d times for invalid draft", gw.replaceCalls)
	}
	if !reflect.DeepEqual(d.Quiz(), before) {
		t.Fatalf("draft changed after failed save")
	}
}

func TestSavePersistsWithFreshUpdatedAt(t *testing.T) {
	created := testNow.Add(-time.Hour)
	gw := &fakeGateway{stored: Quiz{CreatedAt: created}}
	d := newTestDraft(validQuiz())
	d.AddQuestion()

	saved, err := d.Save(context.Background(), gw)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if gw.replaceCalls != 1 {
		t.Fatalf("replace calls = %d, want 1", gw.replaceCalls)
	}
	if !gw.lastReplaced.UpdatedAt.Equal(testNow) {
		t.Fatalf("updatedAt sent = %v, want %v", gw.lastReplaced.UpdatedAt, testNow)
	}
	if len(saved.Questions) != 3 || !saved.CreatedAt.Equal(created) {
		t.Fatalf("unexpected saved quiz: %+v", saved)
	}
	if !reflect.DeepEqual(d.Quiz(), saved) {
		t.Fatalf("draft not reset to persisted quiz")
	}
}

func TestSaveKeepsDraftOnGatewayFailure(t *testing.T) {
	storageErr := errors.New("connection refused")
	gw := &fakeGateway{replaceErr: storageErr}
	d := newTestDraft(validQuiz())
	d.AddQuestion()
	before := d.Quiz()

	if _, err := d.Save(context.Background(), gw); !errors.Is(err, storageErr) {
		t.Fatalf("Save error = %v, want wrapped storage error", err)
	}
	if !reflect.DeepEqual(d.Quiz(), before) {
		t.Fatalf("draft changed after failed save")
	}
}

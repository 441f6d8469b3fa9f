package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrLastQuestion = errors.New("at least one question required")
	ErrMinAnswers   = errors.New("minimum two answers")
	ErrLastCorrect  = errors.New("at least one correct answer required")

	ErrNoSuchQuestion = errors.New("no such question")
	ErrNoSuchAnswer   = errors.New("no such answer")
)

// GuardError rejects an edit that would leave the draft in a state further
// editing of the same element cannot repair. Indices are 0-based.
type GuardError struct {
	Question int
	Answer   int
	Err      error
}

func (e *GuardError) Error() string {
	return e.Err.Error()
}

func (e *GuardError) Unwrap() error {
	return e.Err
}

// Draft is a private, editable copy of a quiz. Removals are guarded
// immediately; empty texts and missing correct answers are only rejected by
// Save.
type Draft struct {
	quiz Quiz
	now  func() time.Time
}

func NewDraft(q Quiz) *Draft {
	return &Draft{
		quiz: q.Clone(),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Quiz returns a copy of the current draft.
func (d *Draft) Quiz() Quiz {
	return d.quiz.Clone()
}

func (d *Draft) QuestionCount() int {
	return len(d.quiz.Questions)
}

func (d *Draft) AddQuestion() {
	d.quiz.Questions = append(d.quiz.Questions, newPlaceholderQuestion())
}

// AppendQuestions adds copies of questions at the end of the draft.
func (d *Draft) AppendQuestions(questions ...Question) {
	d.quiz.Questions = append(d.quiz.Questions, CloneQuestions(questions)...)
}

func (d *Draft) RemoveQuestion(qi int) error {
	if err := d.checkQuestion(qi); err != nil {
		return err
	}
	if len(d.quiz.Questions) <= 1 {
		return &GuardError{Question: qi, Answer: -1, Err: ErrLastQuestion}
	}
	d.quiz.Questions = append(d.quiz.Questions[:qi], d.quiz.Questions[qi+1:]...)
	return nil
}

func (d *Draft) AddAnswer(qi int) error {
	if err := d.checkQuestion(qi); err != nil {
		return err
	}
	question := &d.quiz.Questions[qi]
	question.Answers = append(question.Answers, Answer{Text: placeholderAnswer})
	return nil
}

func (d *Draft) RemoveAnswer(qi, ai int) error {
	if err := d.checkAnswer(qi, ai); err != nil {
		return err
	}
	question := &d.quiz.Questions[qi]
	if len(question.Answers) <= 2 {
		return &GuardError{Question: qi, Answer: ai, Err: ErrMinAnswers}
	}

	remainingCorrect := question.correctCount()
	if question.Answers[ai].IsCorrect {
		remainingCorrect--
	}
	if remainingCorrect == 0 {
		return &GuardError{Question: qi, Answer: ai, Err: ErrLastCorrect}
	}

	question.Answers = append(question.Answers[:ai], question.Answers[ai+1:]...)
	return nil
}

func (d *Draft) SetQuestionText(qi int, text string) error {
	if err := d.checkQuestion(qi); err != nil {
		return err
	}
	d.quiz.Questions[qi].Text = text
	return nil
}

func (d *Draft) SetAnswerText(qi, ai int, text string) error {
	if err := d.checkAnswer(qi, ai); err != nil {
		return err
	}
	d.quiz.Questions[qi].Answers[ai].Text = text
	return nil
}

// ToggleCorrect flips the flag unconditionally; a question may have no
// correct answer until the next save.
func (d *Draft) ToggleCorrect(qi, ai int) error {
	if err := d.checkAnswer(qi, ai); err != nil {
		return err
	}
	answer := &d.quiz.Questions[qi].Answers[ai]
	answer.IsCorrect = !answer.IsCorrect
	return nil
}

// Save validates the whole draft and, if it passes, replaces the stored quiz
// through gw. The draft is left untouched on any failure so the user can fix
// it and retry; on success it is reset to what the gateway returned.
func (d *Draft) Save(ctx context.Context, gw Gateway) (Quiz, error) {
	candidate := d.quiz.Clone()
	if err := Validate(candidate); err != nil {
		return Quiz{}, err
	}

	candidate.UpdatedAt = d.now()
	saved, err := gw.ReplaceQuiz(ctx, candidate)
	if err != nil {
		return Quiz{}, fmt.Errorf("save quiz: %w", err)
	}

	d.quiz = saved.Clone()
	return saved, nil
}

func (d *Draft) checkQuestion(qi int) error {
	if qi < 0 || qi >= len(d.quiz.Questions) {
		return fmt.Errorf("%w: %d", ErrNoSuchQuestion, qi+1)
	}
	return nil
}

func (d *Draft) checkAnswer(qi, ai int) error {
	if err := d.checkQuestion(qi); err != nil {
		return err
	}
	if ai < 0 || ai >= len(d.quiz.Questions[qi].Answers) {
		return fmt.Errorf("%w: question %d, answer %d", ErrNoSuchAnswer, qi+1, ai+1)
	}
	return nil
}

package quiz

import "errors"

var (
	ErrNoSelection      = errors.New("select an answer first")
	ErrAttemptCompleted = errors.New("attempt already completed")
	ErrEmptyQuiz        = errors.New(msgNoQuestions)
)

// Attempt walks a user through one pass of a quiz: a cursor over the
// questions, one selection per question, and a final score.
type Attempt struct {
	quiz       Quiz
	selections Selections
	current    int
	completed  bool
	result     Result
}

func NewAttempt(q Quiz) (*Attempt, error) {
	if len(q.Questions) == 0 {
		return nil, ErrEmptyQuiz
	}
	q = q.Clone()
	return &Attempt{
		quiz:       q,
		selections: NewSelections(len(q.Questions)),
	}, nil
}

// Quiz returns a copy of the quiz being attempted.
func (a *Attempt) Quiz() Quiz {
	return a.quiz.Clone()
}

func (a *Attempt) QuestionCount() int {
	return len(a.quiz.Questions)
}

// Current returns the 0-based cursor and the question under it.
func (a *Attempt) Current() (int, Question) {
	return a.current, a.quiz.Questions[a.current]
}

func (a *Attempt) IsLast() bool {
	return a.current == len(a.quiz.Questions)-1
}

func (a *Attempt) Selected() int {
	return a.selections.At(a.current)
}

func (a *Attempt) Select(ai int) error {
	if a.completed {
		return ErrAttemptCompleted
	}
	if ai < 0 || ai >= len(a.quiz.Questions[a.current].Answers) {
		return ErrNoSuchAnswer
	}
	a.selections[a.current] = ai
	return nil
}

// Next moves to the following question, or finishes the attempt when the
// cursor is on the last one. It reports whether the attempt is now complete.
// A question without answers can be passed unanswered and scores as wrong.
func (a *Attempt) Next() (bool, error) {
	if a.completed {
		return true, ErrAttemptCompleted
	}
	if a.Selected() == Unanswered && len(a.quiz.Questions[a.current].Answers) > 0 {
		return false, ErrNoSelection
	}
	if a.IsLast() {
		a.Finish()
		return true, nil
	}
	a.current++
	return false, nil
}

// Prev moves back one question; it is a no-op on the first question.
func (a *Attempt) Prev() {
	if a.completed || a.current == 0 {
		return
	}
	a.current--
}

func (a *Attempt) Finish() Result {
	if !a.completed {
		a.result = Score(a.quiz, a.selections)
		a.completed = true
	}
	return a.result
}

func (a *Attempt) Completed() bool {
	return a.completed
}

func (a *Attempt) Result() Result {
	return a.result
}

// Restart clears all selections and returns to the first question.
func (a *Attempt) Restart() {
	a.selections = NewSelections(len(a.quiz.Questions))
	a.current = 0
	a.completed = false
	a.result = Result{}
}

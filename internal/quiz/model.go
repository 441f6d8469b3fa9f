package quiz

import "time"

const (
	placeholderQuestion = "New question"
	placeholderAnswer   = "New answer"
)

type Answer struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

type Question struct {
	Text    string   `json:"text"`
	Answers []Answer `json:"answers"`
}

// Quiz is the single document served by the quiz service.
type Quiz struct {
	Questions []Question `json:"questions"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// DefaultQuestions is the seed content stored when no quiz exists yet.
func DefaultQuestions() []Question {
	return []Question{
		{
			Text: "Which programming language are you learning?",
			Answers: []Answer{
				{Text: "JavaScript", IsCorrect: true},
				{Text: "Python"},
				{Text: "Java"},
				{Text: "C++"},
			},
		},
	}
}

func DefaultQuiz(now time.Time) Quiz {
	return Quiz{
		Questions: DefaultQuestions(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newPlaceholderQuestion() Question {
	return Question{
		Text: placeholderQuestion,
		Answers: []Answer{
			{Text: "Answer 1", IsCorrect: true},
			{Text: "Answer 2"},
		},
	}
}

// Clone returns a deep copy so callers can mutate it without touching q.
func (q Quiz) Clone() Quiz {
	out := q
	out.Questions = CloneQuestions(q.Questions)
	return out
}

func CloneQuestions(questions []Question) []Question {
	if questions == nil {
		return nil
	}
	out := make([]Question, len(questions))
	for idx, question := range questions {
		out[idx] = question.clone()
	}
	return out
}

func (q Question) clone() Question {
	out := q
	if q.Answers != nil {
		out.Answers = make([]Answer, len(q.Answers))
		copy(out.Answers, q.Answers)
	}
	return out
}

func (q Question) correctCount() int {
	count := 0
	for _, answer := range q.Answers {
		if answer.IsCorrect {
			count++
		}
	}
	return count
}

package quiz

// Unanswered marks a question the user has not picked an answer for.
const Unanswered = -1

// Selections holds the chosen answer index per question for one attempt.
// Missing trailing entries count as unanswered.
type Selections []int

func NewSelections(questionCount int) Selections {
	selections := make(Selections, questionCount)
	for idx := range selections {
		selections[idx] = Unanswered
	}
	return selections
}

func (s Selections) At(qi int) int {
	if qi < 0 || qi >= len(s) {
		return Unanswered
	}
	return s[qi]
}

type Result struct {
	Correct int `json:"correctCount"`
	Total   int `json:"total"`
}

// Percent is Correct/Total*100 rounded half up.
func (r Result) Percent() int {
	if r.Total <= 0 {
		return 0
	}
	return (200*r.Correct + r.Total) / (2 * r.Total)
}

// Score counts the questions whose selected answer is marked correct.
// Selections that point outside a question's answers are treated as wrong.
func Score(q Quiz, selections Selections) Result {
	result := Result{Total: len(q.Questions)}
	for qi, question := range q.Questions {
		ai := selections.At(qi)
		if ai < 0 || ai >= len(question.Answers) {
			continue
		}
		if question.Answers[ai].IsCorrect {
			result.Correct++
		}
	}
	return result
}

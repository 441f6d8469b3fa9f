package quiz

import (
	"html"
	"math/rand"

	"quizdoc/internal/opentdb"
)

// FromTrivia converts OpenTriviaDB items into editable questions. Answers are
// shuffled so the correct one does not always come last.
func FromTrivia(raw []opentdb.RawQuestion) []Question {
	questions := make([]Question, 0, len(raw))
	for _, item := range raw {
		questions = append(questions, triviaQuestion(item))
	}
	return questions
}

func triviaQuestion(raw opentdb.RawQuestion) Question {
	answers := make([]Answer, 0, len(raw.IncorrectAnswers)+1)
	for _, incorrect := range raw.IncorrectAnswers {
		answers = append(answers, Answer{Text: html.UnescapeString(incorrect)})
	}
	answers = append(answers, Answer{
		Text:      html.UnescapeString(raw.CorrectAnswer),
		IsCorrect: true,
	})

	rand.Shuffle(len(answers), func(i, j int) {
		answers[i], answers[j] = answers[j], answers[i]
	})

	return Question{
		Text:    html.UnescapeString(raw.Question),
		Answers: answers,
	}
}

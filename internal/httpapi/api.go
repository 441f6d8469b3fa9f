package httpapi

import "quizdoc/internal/quiz"

type API struct {
	quizzes quiz.Gateway
}

func NewAPI(quizzes quiz.Gateway) *API {
	return &API{quizzes: quizzes}
}

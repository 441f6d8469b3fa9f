package httpapi

import "quizdoc/internal/quiz"

const maxBodyBytes = 1 << 20

type replaceQuizRequest struct {
	Questions []quiz.Question `json:"questions"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Message string `json:"message"`
}

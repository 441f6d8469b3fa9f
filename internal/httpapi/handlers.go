package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"quizdoc/internal/quiz"
)

func (a *API) HandleGetQuiz(w http.ResponseWriter, r *http.Request) {
	if a.quizzes == nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "quiz service unavailable"})
		return
	}

	current, err := a.quizzes.LoadQuiz(r.Context())
	if err != nil {
		log.Printf("load quiz failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, current)
}

// HandleReplaceQuiz swaps the stored questions for the request's. Only an
// empty question list is rejected here; the editor validates the rest before
// it sends anything.
func (a *API) HandleReplaceQuiz(w http.ResponseWriter, r *http.Request) {
	if a.quizzes == nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "quiz service unavailable"})
		return
	}

	defer r.Body.Close()

	var request replaceQuizRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid JSON body"})
		return
	}

	saved, err := a.quizzes.ReplaceQuiz(r.Context(), quiz.Quiz{Questions: request.Questions})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (a *API) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *quiz.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: validationErr.First()})
		return
	}
	log.Printf("replace quiz failed: %v", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Message: err.Error()})
}

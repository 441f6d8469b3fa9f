package quiz

import (
	"context"
	"errors"
)

var ErrQuizNotFound = errors.New("quiz not found")

// Repository persists the singleton quiz document.
type Repository interface {
	// GetQuiz returns ErrQuizNotFound when no document has been stored yet.
	GetQuiz(ctx context.Context) (Quiz, error)
	// CreateQuizIfAbsent stores q only when no document exists and returns
	// whichever document is stored afterwards.
	CreateQuizIfAbsent(ctx context.Context, q Quiz) (Quiz, error)
	// PutQuiz replaces the questions and updatedAt of the stored document,
	// creating it when missing. createdAt of an existing document is kept.
	PutQuiz(ctx context.Context, q Quiz) (Quiz, error)
}

// Gateway is the load/replace contract the editor and player depend on. It is
// served by Service on the backend and by the HTTP client in the terminal UI.
type Gateway interface {
	LoadQuiz(ctx context.Context) (Quiz, error)
	ReplaceQuiz(ctx context.Context, candidate Quiz) (Quiz, error)
}

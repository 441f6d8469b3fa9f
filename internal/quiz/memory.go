package quiz

import (
	"context"
	"sync"
)

// MemoryRepository keeps the quiz in process memory.
type MemoryRepository struct {
	mu     sync.RWMutex
	quiz   Quiz
	stored bool
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (m *MemoryRepository) GetQuiz(_ context.Context) (Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.stored {
		return Quiz{}, ErrQuizNotFound
	}
	return m.quiz.Clone(), nil
}

func (m *MemoryRepository) CreateQuizIfAbsent(_ context.Context, q Quiz) (Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.stored {
		m.quiz = q.Clone()
		m.stored = true
	}
	return m.quiz.Clone(), nil
}

func (m *MemoryRepository) PutQuiz(_ context.Context, q Quiz) (Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	createdAt := q.CreatedAt
	if m.stored {
		createdAt = m.quiz.CreatedAt
	}
	m.quiz = Quiz{
		Questions: CloneQuestions(q.Questions),
		CreatedAt: createdAt,
		UpdatedAt: q.UpdatedAt,
	}
	m.stored = true
	return m.quiz.Clone(), nil
}

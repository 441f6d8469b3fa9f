package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Service is the persistence gateway for the singleton quiz.
type Service struct {
	repo  Repository
	now   func() time.Time
	cache *documentCache
}

type Option func(*Service)

// WithCache keeps the last loaded or saved document in memory. Only safe when
// this process is the sole writer of the repository.
func WithCache() Option {
	return func(s *Service) {
		s.cache = &documentCache{}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadQuiz returns the stored quiz, creating the default one on first use.
func (s *Service) LoadQuiz(ctx context.Context) (Quiz, error) {
	if cached, ok := s.cache.get(); ok {
		return cached, nil
	}

	stored, err := s.repo.GetQuiz(ctx)
	if errors.Is(err, ErrQuizNotFound) {
		stored, err = s.repo.CreateQuizIfAbsent(ctx, DefaultQuiz(s.now()))
	}
	if err != nil {
		return Quiz{}, fmt.Errorf("load quiz: %w", err)
	}

	s.cache.set(stored)
	return stored, nil
}

// ReplaceQuiz overwrites the questions of the stored quiz. An empty question
// list is the only shape rejected here.
func (s *Service) ReplaceQuiz(ctx context.Context, candidate Quiz) (Quiz, error) {
	if len(candidate.Questions) == 0 {
		return Quiz{}, errNoQuestions()
	}

	now := s.now()
	next := Quiz{
		Questions: CloneQuestions(candidate.Questions),
		CreatedAt: now,
		UpdatedAt: now,
	}
	stored, err := s.repo.PutQuiz(ctx, next)
	if err != nil {
		s.cache.clear()
		return Quiz{}, fmt.Errorf("replace quiz: %w", err)
	}

	s.cache.set(stored)
	return stored, nil
}

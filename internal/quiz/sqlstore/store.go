package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quizdoc/internal/db"
	"quizdoc/internal/quiz"
)

// documentID pins the single row that holds the quiz.
const documentID = 1

// Store keeps the quiz document as one row with its questions encoded as JSON.
type Store struct {
	db     *sql.DB
	driver db.Driver
}

// New wraps an open database and makes sure the schema exists.
func New(ctx context.Context, conn *sql.DB, driver db.Driver) (*Store, error) {
	store := &Store{db: conn, driver: driver}
	if err := store.initSchema(ctx); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) GetQuiz(ctx context.Context) (quiz.Quiz, error) {
	return s.getQuiz(ctx, s.db)
}

// CreateQuizIfAbsent relies on the primary key so two concurrent first reads
// cannot both insert a default document.
func (s *Store) CreateQuizIfAbsent(ctx context.Context, q quiz.Quiz) (quiz.Quiz, error) {
	questionsJSON, err := encodeQuestions(q.Questions)
	if err != nil {
		return quiz.Quiz{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return quiz.Quiz{}, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(
		ctx,
		s.rebind(`INSERT INTO quiz_document (id, questions_json, created_at_unix, updated_at_unix)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (id) DO NOTHING`),
		documentID,
		questionsJSON,
		q.CreatedAt.UnixNano(),
		q.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return quiz.Quiz{}, err
	}

	stored, err := s.getQuiz(ctx, tx)
	if err != nil {
		return quiz.Quiz{}, err
	}
	return stored, tx.Commit()
}

// PutQuiz upserts the document. created_at_unix is only written on insert.
func (s *Store) PutQuiz(ctx context.Context, q quiz.Quiz) (quiz.Quiz, error) {
	questionsJSON, err := encodeQuestions(q.Questions)
	if err != nil {
		return quiz.Quiz{}, err
	}

	createdAt := q.CreatedAt
	if createdAt.IsZero() {
		createdAt = q.UpdatedAt
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return quiz.Quiz{}, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(
		ctx,
		s.rebind(`INSERT INTO quiz_document (id, questions_json, created_at_unix, updated_at_unix)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
			questions_json = excluded.questions_json,
			updated_at_unix = excluded.updated_at_unix`),
		documentID,
		questionsJSON,
		createdAt.UnixNano(),
		q.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return quiz.Quiz{}, err
	}

	stored, err := s.getQuiz(ctx, tx)
	if err != nil {
		return quiz.Quiz{}, err
	}
	return stored, tx.Commit()
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Store) getQuiz(ctx context.Context, q queryRower) (quiz.Quiz, error) {
	var (
		questionsJSON string
		createdAtUnix int64
		updatedAtUnix int64
	)
	err := q.QueryRowContext(
		ctx,
		s.rebind(`SELECT questions_json, created_at_unix, updated_at_unix FROM quiz_document WHERE id = ?`),
		documentID,
	).Scan(&questionsJSON, &createdAtUnix, &updatedAtUnix)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return quiz.Quiz{}, quiz.ErrQuizNotFound
		}
		return quiz.Quiz{}, err
	}

	var questions []quiz.Question
	if err := json.Unmarshal([]byte(questionsJSON), &questions); err != nil {
		return quiz.Quiz{}, fmt.Errorf("decode questions: %w", err)
	}

	return quiz.Quiz{
		Questions: questions,
		CreatedAt: time.Unix(0, createdAtUnix).UTC(),
		UpdatedAt: time.Unix(0, updatedAtUnix).UTC(),
	}, nil
}

func (s *Store) rebind(query string) string {
	return db.Rebind(s.driver, query)
}

func encodeQuestions(questions []quiz.Question) (string, error) {
	if questions == nil {
		questions = []quiz.Question{}
	}
	encoded, err := json.Marshal(questions)
	if err != nil {
		return "", fmt.Errorf("encode questions: %w", err)
	}
	return string(encoded), nil
}

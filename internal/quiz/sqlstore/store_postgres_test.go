package sqlstore

import (
	"context"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"quizdoc/internal/db"
	"quizdoc/internal/quiz"
)

// newPostgresStore connects to the database named by DB_DSN and empties the
// quiz table. The test is skipped unless DB_DSN is a postgres URL.
func newPostgresStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("DB_DSN")
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		t.Skip("DB_DSN does not point at postgres")
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, db.DriverPostgres, dsn)
	if err != nil {
		t.Fatalf("db.Open failed: %v", err)
	}
	store, err := New(ctx, conn, db.DriverPostgres)
	if err != nil {
		_ = conn.Close()
		t.Fatalf("New failed: %v", err)
	}
	reset := func() {
		if _, err := store.db.ExecContext(ctx, "DELETE FROM quiz_document"); err != nil {
			t.Fatalf("clear quiz_document: %v", err)
		}
	}
	reset()
	t.Cleanup(func() {
		reset()
		_ = store.Close()
	})
	return store
}

func TestStorePostgresRoundTrip(t *testing.T) {
	store := newPostgresStore(t)
	ctx := context.Background()

	if _, err := store.GetQuiz(ctx); !errors.Is(err, quiz.ErrQuizNotFound) {
		t.Fatalf("GetQuiz error = %v, want ErrQuizNotFound", err)
	}

	createdAt := time.Unix(1700000000, 123).UTC()
	first := quiz.DefaultQuiz(createdAt)
	if _, err := store.CreateQuizIfAbsent(ctx, first); err != nil {
		t.Fatalf("CreateQuizIfAbsent failed: %v", err)
	}
	again, err := store.CreateQuizIfAbsent(ctx, quiz.Quiz{Questions: sampleQuestions(), CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()})
	if err != nil {
		t.Fatalf("second CreateQuizIfAbsent failed: %v", err)
	}
	if !reflect.DeepEqual(again.Questions, first.Questions) {
		t.Fatalf("existing document was overwritten: %+v", again.Questions)
	}

	updatedAt := time.Unix(1700000500, 42).UTC()
	saved, err := store.PutQuiz(ctx, quiz.Quiz{Questions: sampleQuestions(), CreatedAt: updatedAt, UpdatedAt: updatedAt})
	if err != nil {
		t.Fatalf("PutQuiz failed: %v", err)
	}
	if !saved.CreatedAt.Equal(createdAt) {
		t.Fatalf("createdAt changed to %v, want %v", saved.CreatedAt, createdAt)
	}

	loaded, err := store.GetQuiz(ctx)
	if err != nil {
		t.Fatalf("GetQuiz failed: %v", err)
	}
	if !reflect.DeepEqual(loaded.Questions, sampleQuestions()) {
		t.Fatalf("loaded questions = %+v, want %+v", loaded.Questions, sampleQuestions())
	}
	if !loaded.UpdatedAt.Equal(updatedAt) || !loaded.CreatedAt.Equal(createdAt) {
		t.Fatalf("timestamps = %v/%v, want %v/%v", loaded.CreatedAt, loaded.UpdatedAt, createdAt, updatedAt)
	}
}

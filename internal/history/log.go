package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// MaxEntries bounds the history; older attempts fall off the end.
const MaxEntries = 50

const keyPrefix = "quizHistory"

// Log is the attempt history of one client, newest first.
type Log struct {
	store Store
	key   string
}

func NewLog(store Store, clientID string) *Log {
	key := keyPrefix
	if clientID != "" {
		key = keyPrefix + ":" + clientID
	}
	return &Log{store: store, key: key}
}

// List returns the stored records. Missing or unreadable data is an empty
// history.
func (l *Log) List(ctx context.Context) ([]Record, error) {
	raw, err := l.store.Get(ctx, l.key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, nil
	}
	return records, nil
}

// Append stores rec in front of the existing records and drops anything past
// MaxEntries.
func (l *Log) Append(ctx context.Context, rec Record) error {
	records, err := l.List(ctx)
	if err != nil {
		return err
	}

	records = append([]Record{rec}, records...)
	if len(records) > MaxEntries {
		records = records[:MaxEntries]
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := l.store.Put(ctx, l.key, raw); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

func (l *Log) Clear(ctx context.Context) error {
	if err := l.store.Delete(ctx, l.key); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

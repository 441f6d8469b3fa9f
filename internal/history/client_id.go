package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const clientIDKey = "clientID"

// ClientID returns the id this client's history is kept under, generating
// and storing one on first use.
func ClientID(ctx context.Context, store Store) (string, error) {
	raw, err := store.Get(ctx, clientIDKey)
	if err == nil {
		if id, parseErr := uuid.ParseBytes(raw); parseErr == nil {
			return id.String(), nil
		}
	} else if !errors.Is(err, ErrNotFound) {
		return "", fmt.Errorf("read client id: %w", err)
	}

	id := uuid.NewString()
	if err := store.Put(ctx, clientIDKey, []byte(id)); err != nil {
		return "", fmt.Errorf("store client id: %w", err)
	}
	return id, nil
}

package ports

import (
	"context"

	"github.com/wellpath/wellness/internal/core/domain"
)

// SessionStore is the durable mirror of one client's session.
type SessionStore interface {
	// Load returns the stored record; found is false when nothing was saved.
	Load(ctx context.Context) (rec domain.SessionRecord, found bool, err error)
	Save(ctx context.Context, rec domain.SessionRecord) error
	// Clear removes every session key. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}

// SessionStoreProvider hands out the store bound to a session id.
type SessionStoreProvider interface {
	ForSession(sessionID string) SessionStore
}

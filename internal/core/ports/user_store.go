package ports

import (
	"context"

	"github.com/wellpath/wellness/internal/core/domain"
)

// UserStore is the remote table of user records.
type UserStore interface {
	InsertUser(ctx context.Context, user *domain.User) (*domain.User, error)
	// UpdateUser applies a partial update and returns the stored record.
	UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error)
	// GetUserByEmail returns domain.ErrUserNotFound when no record matches.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

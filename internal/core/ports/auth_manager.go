package ports

import (
	"context"

	"github.com/wellpath/wellness/internal/core/domain"
)

// AuthState is a read-only view of the current session.
type AuthState struct {
	User            *domain.SessionUser `json:"user"`
	IsAuthenticated bool                `json:"is_authenticated"`
	LastError       string              `json:"last_error,omitempty"`
}

// AuthManager mediates between UI actions, the user store and the session store.
type AuthManager interface {
	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, name, email, password string) error
	CompleteOnboarding(ctx context.Context) error
	CompleteOnboardingWithProfile(ctx context.Context, profile *domain.OnboardingProfile) error
	Logout(ctx context.Context)
	CurrentState() AuthState
	State() domain.SessionState
}

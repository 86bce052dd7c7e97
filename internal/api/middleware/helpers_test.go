package middleware

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/wellpath/wellness/internal/core/domain"
	"github.com/wellpath/wellness/internal/core/ports"
	"github.com/wellpath/wellness/internal/core/service"
	"github.com/wellpath/wellness/internal/infrastructure/db/memory"
)

var testSecret = []byte("test-secret")

type nopQueue struct{}

func (nopQueue) Enqueue(ports.ProfileSyncJob) bool { return true }

func newRegistry(users *memory.UserStore) *service.SessionRegistry {
	opts := service.AuthOptions{BcryptCost: 4}
	return service.NewSessionRegistry(memory.NewSessionStores(), func(store ports.SessionStore) *service.AuthManager {
		return service.NewAuthManager(users, store, nopQueue{}, opts, zerolog.Nop())
	}, zerolog.Nop())
}

// clientAt returns a session in the requested lifecycle state.
func clientAt(state domain.SessionState) *service.ClientSession {
	users := memory.NewUserStore()
	_, _ = users.InsertUser(context.Background(), &domain.User{
		ID:              "user_1",
		Name:            "Ann",
		Email:           "ann@x.io",
		NeedsOnboarding: state == domain.StateLoggedInNeedsOnboarding,
	})

	cs, err := newRegistry(users).Get(context.Background(), "sid")
	if err != nil {
		panic(err)
	}
	if state != domain.StateLoggedOut {
		if err := cs.Auth.Login(context.Background(), "ann@x.io", "pw"); err != nil {
			panic(err)
		}
	}
	return cs
}

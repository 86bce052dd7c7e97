package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/wellpath/wellness/internal/core/domain"
	"github.com/wellpath/wellness/internal/core/ports"
)

const defaultLoginDelay = 500 * time.Millisecond

// AuthOptions tunes an AuthManager.
type AuthOptions struct {
	// LoginDelay is waited before every login/signup remote call.
	LoginDelay time.Duration
	// VerifyPasswords enables bcrypt checks on login. When false any
	// password is accepted for a known email.
	VerifyPasswords bool
	// PersistProfile sends the onboarding answers along with the
	// completion flag.
	PersistProfile bool
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
}

// DefaultAuthOptions mirrors the production defaults.
func DefaultAuthOptions() AuthOptions {
	return AuthOptions{LoginDelay: defaultLoginDelay, BcryptCost: bcrypt.DefaultCost}
}

// AuthManager owns one client's in-memory session and keeps the durable
// session store in step with it.
type AuthManager struct {
	users    ports.UserStore
	sessions ports.SessionStore
	queue    ports.SyncQueue
	opts     AuthOptions
	log      zerolog.Logger

	newID func() (string, error)
	now   func() time.Time

	// inFlight rejects a second login/signup while one is pending.
	inFlight atomic.Bool

	// mu guards the fields below and serialises store writes with them.
	mu              sync.Mutex
	user            *domain.SessionUser
	isAuthenticated bool
	lastError       string
}

var _ ports.AuthManager = (*AuthManager)(nil)

// NewAuthManager returns a logged-out manager. Call Load to rehydrate it
// from the session store.
func NewAuthManager(
	users ports.UserStore,
	sessions ports.SessionStore,
	queue ports.SyncQueue,
	opts AuthOptions,
	log zerolog.Logger,
) *AuthManager {
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	return &AuthManager{
		users:    users,
		sessions: sessions,
		queue:    queue,
		opts:     opts,
		log:      log,
		newID:    newUserID,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// newUserID returns "user_" followed by a UUIDv7, which is ordered by
// creation time and carries random bits.
func newUserID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return "user_" + id.String(), nil
}

// Load rehydrates the session from the durable store. A missing or unset
// authentication flag leaves the manager logged out.
func (m *AuthManager) Load(ctx context.Context) error {
	rec, found, err := m.sessions.Load(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !found || !rec.IsAuthenticated {
		m.user = nil
		m.isAuthenticated = false
		return nil
	}
	m.user = rec.User()
	m.isAuthenticated = true
	return nil
}

// Login opens a session for the user registered under email.
func (m *AuthManager) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return m.fail(domain.NewAuthError(domain.KindValidation, domain.MsgCredentialsRequired, nil))
	}

	if !m.inFlight.CompareAndSwap(false, true) {
		return domain.NewAuthError(domain.KindInFlight, domain.MsgInFlight, nil)
	}
	defer m.inFlight.Store(false)

	if err := sleepCtx(ctx, m.opts.LoginDelay); err != nil {
		return m.fail(domain.NewAuthError(domain.KindRemote, domain.MsgLoginFailed, err))
	}

	u, err := m.users.GetUserByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return m.fail(domain.NewAuthError(domain.KindNotFound, domain.MsgUserNotFound, nil))
	case err != nil:
		m.log.Error().Err(err).Str("email", email).Msg("user lookup failed")
		return m.fail(domain.NewAuthError(domain.KindRemote, domain.MsgLoginFailed, err))
	case u == nil:
		return m.fail(domain.NewAuthError(domain.KindNotFound, domain.MsgUserNotFound, nil))
	}

	if m.opts.VerifyPasswords {
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return m.fail(domain.NewAuthError(domain.KindInvalidCredentials, domain.MsgInvalidCredentials, nil))
		}
	}

	err = m.establish(ctx, domain.SessionUser{
		ID:              u.ID,
		Name:            u.Name,
		Email:           email,
		NeedsOnboarding: u.NeedsOnboarding,
	})
	if err != nil {
		return err
	}

	m.log.Info().Str("user_id", u.ID).Bool("needs_onboarding", u.NeedsOnboarding).Msg("user logged in")
	return nil
}

// Signup registers a new user and opens a session that needs onboarding.
func (m *AuthManager) Signup(ctx context.Context, name, email, password string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return m.fail(domain.NewAuthError(domain.KindValidation, domain.MsgSignupFieldsMissing, nil))
	}

	if !m.inFlight.CompareAndSwap(false, true) {
		return domain.NewAuthError(domain.KindInFlight, domain.MsgInFlight, nil)
	}
	defer m.inFlight.Store(false)

	if err := sleepCtx(ctx, m.opts.LoginDelay); err != nil {
		return m.fail(domain.NewAuthError(domain.KindRemote, domain.MsgAccountCreation, err))
	}

	id, err := m.newID()
	if err != nil {
		return m.fail(domain.NewAuthError(domain.KindRemote, domain.MsgAccountCreation, err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.opts.BcryptCost)
	if err != nil {
		return m.fail(domain.NewAuthError(domain.KindRemote, domain.MsgAccountCreation, err))
	}

	now := m.now()
	_, err = m.users.InsertUser(ctx, &domain.User{
		ID:              id,
		Name:            name,
		Email:           email,
		PasswordHash:    string(hash),
		NeedsOnboarding: true,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		m.log.Error().Err(err).Str("email", email).Msg("create user failed")
		return m.fail(domain.NewAuthError(domain.KindRemote, domain.MsgAccountCreation, err))
	}

	err = m.establish(ctx, domain.SessionUser{
		ID:              id,
		Name:            name,
		Email:           email,
		NeedsOnboarding: true,
	})
	if err != nil {
		return err
	}

	m.log.Info().Str("user_id", id).Msg("user signed up")
	return nil
}

// CompleteOnboarding clears the onboarding flag. See CompleteOnboardingWithProfile.
func (m *AuthManager) CompleteOnboarding(ctx context.Context) error {
	return m.CompleteOnboardingWithProfile(ctx, nil)
}

// CompleteOnboardingWithProfile clears the onboarding flag locally and
// queues the remote update without waiting for it. It does nothing when no
// session user with an id exists or onboarding is already complete. The
// profile is only forwarded when AuthOptions.PersistProfile is set.
func (m *AuthManager) CompleteOnboardingWithProfile(ctx context.Context, profile *domain.OnboardingProfile) error {
	m.mu.Lock()
	if m.user == nil || m.user.ID == "" || !m.user.NeedsOnboarding {
		m.mu.Unlock()
		return nil
	}

	next := *m.user
	next.NeedsOnboarding = false
	if err := m.sessions.Save(ctx, domain.RecordFor(next)); err != nil {
		m.mu.Unlock()
		return domain.NewAuthError(domain.KindStorage, domain.MsgSessionSave, err)
	}
	m.user = &next
	m.mu.Unlock()

	if !m.opts.PersistProfile {
		profile = nil
	}
	job := ports.ProfileSyncJob{UserID: next.ID, Update: domain.OnboardingComplete(profile)}
	if m.queue == nil || !m.queue.Enqueue(job) {
		m.log.Warn().Str("user_id", next.ID).Msg("onboarding sync not queued; remote record keeps needs_onboarding=true")
	}

	m.log.Info().Str("user_id", next.ID).Msg("onboarding completed")
	return nil
}

// Logout clears the durable and in-memory session. It always succeeds.
func (m *AuthManager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.sessions.Clear(ctx); err != nil {
		m.log.Error().Err(err).Msg("clear session store")
	}
	if m.user != nil {
		m.log.Info().Str("user_id", m.user.ID).Msg("user logged out")
	}
	m.user = nil
	m.isAuthenticated = false
	m.lastError = ""
}

// CurrentState returns a copy of the in-memory session.
func (m *AuthManager) CurrentState() ports.AuthState {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := ports.AuthState{IsAuthenticated: m.isAuthenticated, LastError: m.lastError}
	if m.user != nil {
		u := *m.user
		st.User = &u
	}
	return st
}

// State returns the lifecycle state of the session.
func (m *AuthManager) State() domain.SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return domain.StateOf(m.isAuthenticated, m.user)
}

// establish writes the durable mirror and then the in-memory session.
func (m *AuthManager) establish(ctx context.Context, u domain.SessionUser) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.sessions.Save(ctx, domain.RecordFor(u)); err != nil {
		ae := domain.NewAuthError(domain.KindStorage, domain.MsgSessionSave, err)
		m.lastError = ae.Message
		return ae
	}
	m.user = &u
	m.isAuthenticated = true
	m.lastError = ""
	return nil
}

func (m *AuthManager) fail(ae *domain.AuthError) error {
	m.mu.Lock()
	m.lastError = ae.Message
	m.mu.Unlock()

	m.log.Debug().Str("kind", string(ae.Kind)).Str("reason", ae.Message).Msg("auth request rejected")
	return ae
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

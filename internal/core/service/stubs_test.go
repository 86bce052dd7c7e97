package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/wellpath/wellness/internal/core/domain"
	"github.com/wellpath/wellness/internal/core/ports"
	"github.com/wellpath/wellness/internal/infrastructure/db/memory"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Stub user store: wraps the memory store with failure and blocking hooks
// ---------------------------------------------------------------------------

type stubUserStore struct {
	*memory.UserStore

	getErr    error
	insertErr error
	updateErr error

	// block, when set, holds GetUserByEmail until it is closed.
	block   chan struct{}
	entered chan struct{}

	mu      sync.Mutex
	updates []ports.ProfileSyncJob
	lookups int
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{UserStore: memory.NewUserStore()}
}

func (s *stubUserStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	s.lookups++
	s.mu.Unlock()

	if s.block != nil {
		if s.entered != nil {
			s.entered <- struct{}{}
		}
		<-s.block
	}
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.UserStore.GetUserByEmail(ctx, email)
}

func (s *stubUserStore) InsertUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	if s.insertErr != nil {
		return nil, s.insertErr
	}
	return s.UserStore.InsertUser(ctx, u)
}

func (s *stubUserStore) UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
	s.mu.Lock()
	s.updates = append(s.updates, ports.ProfileSyncJob{UserID: id, Update: upd})
	s.mu.Unlock()

	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.UserStore.UpdateUser(ctx, id, upd)
}

func (s *stubUserStore) lookupCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookups
}

// ---------------------------------------------------------------------------
// Failing session store
// ---------------------------------------------------------------------------

var errStoreDown = errors.New("store down")

type failingSessionStore struct {
	*memory.SessionStore
	saveErr error
	loadErr error
}

func (s *failingSessionStore) Save(ctx context.Context, rec domain.SessionRecord) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	return s.SessionStore.Save(ctx, rec)
}

func (s *failingSessionStore) Load(ctx context.Context) (domain.SessionRecord, bool, error) {
	if s.loadErr != nil {
		return domain.SessionRecord{}, false, s.loadErr
	}
	return s.SessionStore.Load(ctx)
}

// ---------------------------------------------------------------------------
// Recording queue
// ---------------------------------------------------------------------------

type recordingQueue struct {
	mu     sync.Mutex
	jobs   []ports.ProfileSyncJob
	reject bool
}

func (q *recordingQueue) Enqueue(job ports.ProfileSyncJob) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.reject {
		return false
	}
	q.jobs = append(q.jobs, job)
	return true
}

func (q *recordingQueue) snapshot() []ports.ProfileSyncJob {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]ports.ProfileSyncJob(nil), q.jobs...)
}

// syncQueue applies every job immediately through a ProfileSyncer.
type syncQueue struct {
	syncer ports.ProfileSyncer
}

func (q syncQueue) Enqueue(job ports.ProfileSyncJob) bool {
	_ = q.syncer.Sync(context.Background(), job)
	return true
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func testOptions() AuthOptions {
	return AuthOptions{BcryptCost: 4}
}

type harness struct {
	users    *stubUserStore
	sessions *memory.SessionStore
	queue    *recordingQueue
	mgr      *AuthManager
}

func newHarness(opts AuthOptions) *harness {
	h := &harness{
		users:    newStubUserStore(),
		sessions: memory.NewSessionStore(),
		queue:    &recordingQueue{},
	}
	h.mgr = NewAuthManager(h.users, h.sessions, h.queue, opts, discardLogger)
	return h
}

func (h *harness) seedUser(id, name, email string, needsOnboarding bool) {
	_, err := h.users.UserStore.InsertUser(context.Background(), &domain.User{
		ID:              id,
		Name:            name,
		Email:           email,
		NeedsOnboarding: needsOnboarding,
	})
	if err != nil {
		panic(err)
	}
}

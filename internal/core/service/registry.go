package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/wellpath/wellness/internal/core/domain"
	"github.com/wellpath/wellness/internal/core/ports"
)

// ClientSession bundles the per-client state behind one session cookie.
type ClientSession struct {
	ID     string
	Auth   *AuthManager
	Wizard *domain.Wizard
	Tasks  *domain.TaskList

	lastSeen time.Time
}

// ManagerFactory builds an AuthManager bound to a session store.
type ManagerFactory func(store ports.SessionStore) *AuthManager

// SessionRegistry keeps one ClientSession per session id and rehydrates
// auth managers from the durable store on first use.
type SessionRegistry struct {
	provider   ports.SessionStoreProvider
	newManager ManagerFactory
	log        zerolog.Logger
	now        func() time.Time

	mu       sync.Mutex
	sessions map[string]*ClientSession
}

func NewSessionRegistry(provider ports.SessionStoreProvider, newManager ManagerFactory, log zerolog.Logger) *SessionRegistry {
	return &SessionRegistry{
		provider:   provider,
		newManager: newManager,
		log:        log,
		now:        time.Now,
		sessions:   make(map[string]*ClientSession),
	}
}

// Get returns the session for id, creating and loading it when needed.
func (r *SessionRegistry) Get(ctx context.Context, id string) (*ClientSession, error) {
	if cs := r.lookup(id); cs != nil {
		return cs, nil
	}

	mgr := r.newManager(r.provider.ForSession(id))
	if err := mgr.Load(ctx); err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}
	fresh := &ClientSession{
		ID:     id,
		Auth:   mgr,
		Wizard: domain.NewWizard(),
		Tasks:  domain.NewTaskList(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Another request may have loaded the same id meanwhile.
	if cs, ok := r.sessions[id]; ok {
		cs.lastSeen = r.now()
		return cs, nil
	}
	fresh.lastSeen = r.now()
	r.sessions[id] = fresh
	return fresh, nil
}

func (r *SessionRegistry) lookup(id string) *ClientSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	cs, ok := r.sessions[id]
	if !ok {
		return nil
	}
	cs.lastSeen = r.now()
	return cs
}

// Sweep forgets sessions idle for longer than maxIdle and returns how many
// were dropped.
func (r *SessionRegistry) Sweep(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-maxIdle)
	n := 0
	for id, cs := range r.sessions {
		if cs.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			n++
		}
	}
	if n > 0 {
		r.log.Debug().Int("evicted", n).Int("remaining", len(r.sessions)).Msg("idle sessions swept")
	}
	return n
}

// RunSweeper calls Sweep every interval until ctx is cancelled.
func (r *SessionRegistry) RunSweeper(ctx context.Context, interval, maxIdle time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.Sweep(maxIdle)
		}
	}
}

// Len returns the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

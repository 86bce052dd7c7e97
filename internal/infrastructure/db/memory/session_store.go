package memory

import (
	"context"
	"sync"

	"github.com/wellpath/wellness/internal/core/domain"
	"github.com/wellpath/wellness/internal/core/ports"
)

// SessionStores keeps every session's key/value mirror in one map.
type SessionStores struct {
	mu   sync.Mutex
	data map[string]map[string]string
}

func NewSessionStores() *SessionStores {
	return &SessionStores{data: make(map[string]map[string]string)}
}

func (p *SessionStores) ForSession(sessionID string) ports.SessionStore {
	return &SessionStore{parent: p, id: sessionID}
}

// Values returns a copy of the raw keys stored for a session.
func (p *SessionStores) Values(sessionID string) map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make(map[string]string, len(p.data[sessionID]))
	for k, v := range p.data[sessionID] {
		out[k] = v
	}
	return out
}

// SessionStore is one session's view of SessionStores.
type SessionStore struct {
	parent *SessionStores
	id     string
}

// NewSessionStore returns a standalone store for a single session.
func NewSessionStore() *SessionStore {
	return &SessionStore{parent: NewSessionStores(), id: "default"}
}

func (s *SessionStore) Load(_ context.Context) (domain.SessionRecord, bool, error) {
	s.parent.mu.Lock()
	defer s.parent.mu.Unlock()

	vals, ok := s.parent.data[s.id]
	if !ok || len(vals) == 0 {
		return domain.SessionRecord{}, false, nil
	}
	return domain.SessionRecordFromValues(vals), true, nil
}

func (s *SessionStore) Save(_ context.Context, rec domain.SessionRecord) error {
	s.parent.mu.Lock()
	defer s.parent.mu.Unlock()
	s.parent.data[s.id] = rec.Values()
	return nil
}

func (s *SessionStore) Clear(_ context.Context) error {
	s.parent.mu.Lock()
	defer s.parent.mu.Unlock()
	delete(s.parent.data, s.id)
	return nil
}

// Values returns a copy of the raw keys of this session.
func (s *SessionStore) Values() map[string]string {
	return s.parent.Values(s.id)
}

package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wellpath/wellness/internal/core/domain"
	"github.com/wellpath/wellness/internal/core/ports"
)

const defaultSessionTTL = 30 * 24 * time.Hour

// SessionStores hands out Redis-backed session mirrors, one hash per
// session id. Key format: session:<id>
type SessionStores struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStores wraps the client. Hashes expire ttl after the last save.
func NewSessionStores(client *redis.Client, ttl time.Duration) *SessionStores {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStores{client: client, ttl: ttl}
}

func (p *SessionStores) ForSession(sessionID string) ports.SessionStore {
	return &SessionStore{client: p.client, key: "session:" + sessionID, ttl: p.ttl}
}

// SessionStore is the durable mirror of one session.
type SessionStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func (s *SessionStore) Load(ctx context.Context) (domain.SessionRecord, bool, error) {
	vals, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return domain.SessionRecord{}, false, fmt.Errorf("session load: %w", err)
	}
	if len(vals) == 0 {
		return domain.SessionRecord{}, false, nil
	}
	return domain.SessionRecordFromValues(vals), true, nil
}

// Save overwrites every key and refreshes the expiry in one transaction.
func (s *SessionStore) Save(ctx context.Context, rec domain.SessionRecord) error {
	vals := make(map[string]interface{}, len(domain.SessionKeys))
	for k, v := range rec.Values() {
		vals[k] = v
	}
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, s.key, vals)
		pipe.Expire(ctx, s.key, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}

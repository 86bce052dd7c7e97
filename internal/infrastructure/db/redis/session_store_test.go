package redis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wellpath/wellness/internal/core/domain"
)

// unreachableClient points at a closed port so every command fails fast.
func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	c := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestSessionStores_KeyPerSession(t *testing.T) {
	p := NewSessionStores(unreachableClient(t), time.Hour)

	s, ok := p.ForSession("abc").(*SessionStore)
	if !ok {
		t.Fatalf("unexpected store type %T", p.ForSession("abc"))
	}
	if s.key != "session:abc" {
		t.Errorf("expected key session:abc, got %q", s.key)
	}
	if s.ttl != time.Hour {
		t.Errorf("expected ttl 1h, got %v", s.ttl)
	}
}

func TestSessionStores_DefaultTTL(t *testing.T) {
	p := NewSessionStores(unreachableClient(t), 0)
	if p.ttl != defaultSessionTTL {
		t.Errorf("expected default ttl, got %v", p.ttl)
	}
}

func TestSessionStore_ErrorsAreWrapped(t *testing.T) {
	s := NewSessionStores(unreachableClient(t), time.Hour).ForSession("abc")
	ctx := context.Background()

	if _, _, err := s.Load(ctx); err == nil || !strings.HasPrefix(err.Error(), "session load") {
		t.Errorf("expected session load error, got %v", err)
	}
	if err := s.Save(ctx, domain.RecordFor(domain.SessionUser{ID: "user_1", Email: "a@x.io"})); err == nil || !strings.HasPrefix(err.Error(), "session save") {
		t.Errorf("expected session save error, got %v", err)
	}
	if err := s.Clear(ctx); err == nil || !strings.HasPrefix(err.Error(), "session clear") {
		t.Errorf("expected session clear error, got %v", err)
	}
}

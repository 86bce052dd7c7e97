package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/wellpath/wellness/internal/core/ports"
)

const defaultSyncTimeout = 10 * time.Second

type profileSyncService struct {
	users   ports.UserStore
	timeout time.Duration
	log     zerolog.Logger
}

// NewProfileSyncService returns a ProfileSyncer that writes jobs to the user
// store, bounding each call by timeout.
func NewProfileSyncService(users ports.UserStore, timeout time.Duration, log zerolog.Logger) ports.ProfileSyncer {
	if timeout <= 0 {
		timeout = defaultSyncTimeout
	}
	return &profileSyncService{users: users, timeout: timeout, log: log}
}

// Sync applies a single job. An empty update is skipped.
func (s *profileSyncService) Sync(ctx context.Context, job ports.ProfileSyncJob) error {
	if job.Update.IsEmpty() {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.users.UpdateUser(ctx, job.UserID, job.Update); err != nil {
		return fmt.Errorf("sync profile %s: %w", job.UserID, err)
	}

	s.log.Info().Str("user_id", job.UserID).Msg("profile synced")
	return nil
}

package ports

import (
	"context"

	"github.com/wellpath/wellness/internal/core/domain"
)

// ProfileSyncJob is a detached remote update of a user record.
type ProfileSyncJob struct {
	UserID string
	Update domain.UserUpdate
}

// ProfileSyncer applies a sync job against the user store.
type ProfileSyncer interface {
	Sync(ctx context.Context, job ProfileSyncJob) error
}

// SyncQueue accepts sync jobs without blocking the caller. Enqueue reports
// false when the job was dropped.
type SyncQueue interface {
	Enqueue(job ProfileSyncJob) bool
}

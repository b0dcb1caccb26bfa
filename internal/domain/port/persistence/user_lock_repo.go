package persistence

import (
	"context"
	"time"
)

// UserLockRepository manages short-lived advisory locks on users
type UserLockRepository interface {
	// AcquireLock attempts to lock the user. The lock expires after the given duration.
	// The returned owner token identifies this holder to ReleaseLock.
	//
	// Possible errors:
	// - ErrUserLocked: If user is already locked by another request
	// - ErrDatabaseConnection: If database connection fails
	AcquireLock(ctx context.Context, userID uint64, duration time.Duration) (string, error)

	// ReleaseLock releases the lock only while it is still held by owner. A lock that
	// expired and was taken over by another request is left alone.
	ReleaseLock(ctx context.Context, userID uint64, owner string) error

	// CleanupExpiredLocks removes expired locks and reports how many were removed
	CleanupExpiredLocks(ctx context.Context) (int64, error)
}

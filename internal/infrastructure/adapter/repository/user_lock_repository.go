package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/model"
)

// UserLockRepository implements user locking functionality using GORM
type UserLockRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserLockRepository creates a new UserLockRepository instance
func NewUserLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserLockRepository {
	return &UserLockRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// AcquireLock takes the advisory lock for a user and returns its owner token.
// An unexpired lock held by someone else leaves the upsert without an affected row.
func (r *UserLockRepository) AcquireLock(ctx context.Context, userID uint64, duration time.Duration) (string, error) {
	now := r.timeProvider.Now()
	expiresAt := now.Add(duration)
	owner := uuid.NewString()

	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO user_locks (user_id, owner, locked_at, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE
		SET owner = EXCLUDED.owner,
		    locked_at = EXCLUDED.locked_at,
		    expires_at = EXCLUDED.expires_at,
		    updated_at = EXCLUDED.updated_at
		WHERE user_locks.expires_at <= ?`,
		userID, owner, now, expiresAt, now, now,
		now,
	)

	if err := result.Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("User is already locked", map[string]any{
				"user_id": userID,
			})
			return "", errs.ErrUserLocked
		}

		if isContextError(err) {
			r.logger.Warn("Context timeout acquiring lock", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		} else {
			r.logger.Error("Database error acquiring lock", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
		return "", r.errorClassifier.ToDomain(err, errs.ErrNotFound, errs.ErrUserLocked)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("User is already locked", map[string]any{
			"user_id": userID,
		})
		return "", errs.ErrUserLocked
	}

	r.logger.Debug("Lock acquired", map[string]any{
		"user_id":    userID,
		"expires_at": expiresAt,
	})
	return owner, nil
}

// isContextError checks if an error is related to context timeout or cancellation
func isContextError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// ReleaseLock deletes the user's lock if owner still holds it. A missing or
// taken-over lock is not an error.
func (r *UserLockRepository) ReleaseLock(ctx context.Context, userID uint64, owner string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND owner = ?", userID, owner).
		Delete(&model.UserLock{})

	if result.Error != nil {
		// the lock expires on its own
		if isContextError(result.Error) {
			r.logger.Warn("Context timeout when releasing lock, lock will expire automatically", map[string]any{
				"user_id": userID,
				"error":   result.Error.Error(),
			})
			return nil
		}

		r.logger.Error("Failed to release lock", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return r.errorClassifier.ToDomain(result.Error, errs.ErrNotFound, errs.ErrConstraintViolation)
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("No lock found to release - expired or taken over", map[string]any{
			"user_id": userID,
		})
	}
	return nil
}

// CleanupExpiredLocks removes all expired locks from the database
func (r *UserLockRepository) CleanupExpiredLocks(ctx context.Context) (int64, error) {
	now := r.timeProvider.Now()

	result := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&model.UserLock{})
	if result.Error != nil {
		r.logger.Error("Failed to clean up expired locks", map[string]any{
			"error": result.Error.Error(),
		})
		return 0, r.errorClassifier.ToDomain(result.Error, errs.ErrNotFound, errs.ErrConstraintViolation)
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Expired locks cleanup completed", map[string]any{
			"locks_removed": result.RowsAffected,
		})
	}
	return result.RowsAffected, nil
}

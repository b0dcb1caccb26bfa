package persistence

import (
	"context"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
)

// SessionRepository stores per-user, per-game cooldown state
type SessionRepository interface {
	// GetOrCreate returns the session, inserting a never-played row when none exists.
	// Concurrent callers converge on the same row.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	GetOrCreate(ctx context.Context, userID uint64, gameID string) (*entity.MiniGameSession, error)

	// GetForUpdate returns the session with a row lock held for the surrounding transaction
	//
	// Possible errors:
	// - ErrSessionNotFound: If no row exists yet
	// - ErrTransactionConflict: On lock timeout, deadlock or serialization failure
	// - ErrDatabaseConnection: If database connection fails
	GetForUpdate(ctx context.Context, userID uint64, gameID string) (*entity.MiniGameSession, error)

	// Create inserts a new session row
	//
	// Possible errors:
	// - ErrConcurrentPlay: If a row for the same user and game was inserted concurrently
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, session *entity.MiniGameSession) error

	// Update persists cooldown state and statistics
	//
	// Possible errors:
	// - ErrSessionNotFound: If the row does not exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, session *entity.MiniGameSession) error
}

package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
)

// ResultRepository stores append-only mini-game results and ranks players over them
type ResultRepository interface {
	// Create appends a result
	//
	// Possible errors:
	// - ErrConcurrentPlay: If a result with the same attempt ID already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, result *entity.MiniGameResult) error

	// GetByAttemptID finds a previously recorded result by its client attempt key
	//
	// Possible errors:
	// - ErrNotFound: If no result carries the attempt ID
	// - ErrDatabaseConnection: If database connection fails
	GetByAttemptID(ctx context.Context, attemptID string) (*entity.MiniGameResult, error)

	// Leaderboard ranks players of a game by best score over results played at or after since
	Leaderboard(ctx context.Context, gameID string, since time.Time, limit int) ([]entity.LeaderboardEntry, error)

	// UserRank returns the rank of one player in the same ordering as Leaderboard
	//
	// Possible errors:
	// - ErrNotFound: If the user has no result in the window
	UserRank(ctx context.Context, gameID string, since time.Time, userID uint64) (*entity.UserRank, error)
}

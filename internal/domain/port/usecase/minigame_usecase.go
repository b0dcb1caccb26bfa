package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
)

// Eligibility is the answer to "may this user start this game now"
type Eligibility struct {
	CanPlay          bool
	NextAvailable    time.Time
	SecondsRemaining int64
	Session          *entity.MiniGameSession
	// Degraded is set when storage failed and play was allowed by policy
	Degraded bool
}

// RecordRequest carries a finished play as reported by the client
type RecordRequest struct {
	AttemptID     string
	UserID        uint64
	GameID        string
	Score         int64
	PenaltyUnits  int64
	ClientSC      string // client-computed rewards, kept for audit only
	ClientGC      string
	Duration      time.Duration
	ClientVersion string
}

// RecordOutcome is the persisted effect of a recorded play
type RecordOutcome struct {
	ResultID       string
	Reward         entity.Reward
	NewBalance     entity.Balances
	Session        *entity.MiniGameSession
	RewardAdjusted bool // client-reported reward differed from the server computation
	Replayed       bool // the attempt had already been recorded
}

// LeaderboardResult is a ranked page plus the caller's own placing
type LeaderboardResult struct {
	GameID  string
	Period  entity.LeaderboardPeriod
	Entries []entity.LeaderboardEntry
	User    *entity.UserRank
}

// MiniGameUseCase defines the mini-game operations exposed over the API
type MiniGameUseCase interface {
	// ListGames returns the configured catalog
	ListGames() []entity.GameConfig

	// CheckEligibility reports whether the user may play now.
	// Being on cooldown is a normal result, not an error.
	CheckEligibility(ctx context.Context, userID uint64, gameID string) (*Eligibility, error)

	// RecordResult credits a finished play atomically
	RecordResult(ctx context.Context, req RecordRequest) (*RecordOutcome, error)

	// Leaderboard ranks players of a game for a period; userID 0 skips the caller's rank
	Leaderboard(ctx context.Context, gameID string, period entity.LeaderboardPeriod, userID uint64) (*LeaderboardResult, error)
}

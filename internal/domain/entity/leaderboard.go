package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
)

// LeaderboardPeriod is a rolling window over mini-game results
type LeaderboardPeriod string

const (
	PeriodDaily   LeaderboardPeriod = "daily"
	PeriodWeekly  LeaderboardPeriod = "weekly"
	PeriodMonthly LeaderboardPeriod = "monthly"
	PeriodAll     LeaderboardPeriod = "all"
)

// ParseLeaderboardPeriod validates a period name. Empty means weekly.
func ParseLeaderboardPeriod(p string) (LeaderboardPeriod, error) {
	switch LeaderboardPeriod(p) {
	case "":
		return PeriodWeekly, nil
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodAll:
		return LeaderboardPeriod(p), nil
	}
	return "", fmt.Errorf("%w: %s", errs.ErrInvalidPeriod, p)
}

// Since returns the start of the window ending at now
func (p LeaderboardPeriod) Since(now time.Time) time.Time {
	switch p {
	case PeriodDaily:
		return now.Add(-24 * time.Hour)
	case PeriodWeekly:
		return now.AddDate(0, 0, -7)
	case PeriodMonthly:
		return now.AddDate(0, 0, -30)
	default:
		return NeverPlayed
	}
}

// LeaderboardEntry is one ranked player for a game and period
type LeaderboardEntry struct {
	UserID   uint64
	Username string
	Score    int64 // best score in window
	SCEarned int64 // minor units earned in window
	Plays    int64
	Rank     int64
}

// UserRank places a single player within a leaderboard
type UserRank struct {
	LeaderboardEntry
	TotalPlayers int64
}

// Percentile returns the share of players ranked at or below this player, 0-100
func (r UserRank) Percentile() float64 {
	if r.TotalPlayers == 0 || r.Rank == 0 {
		return 0
	}
	return float64(r.TotalPlayers-r.Rank+1) / float64(r.TotalPlayers) * 100
}

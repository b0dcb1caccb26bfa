package minigame

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/usecase"
)

// LeaderboardService ranks players of a game over a rolling period
type LeaderboardService struct {
	catalog      *entity.Catalog
	results      persistence.ResultRepository
	timeProvider coreport.TimeProvider
	size         int
}

// NewLeaderboardService creates a new LeaderboardService
func NewLeaderboardService(
	catalog *entity.Catalog,
	results persistence.ResultRepository,
	timeProvider coreport.TimeProvider,
	size int,
) *LeaderboardService {
	return &LeaderboardService{
		catalog:      catalog,
		results:      results,
		timeProvider: timeProvider,
		size:         size,
	}
}

// Get returns the top entries and, when userID is set, that user's own rank.
// A user without results in the window gets a nil rank rather than an error.
func (s *LeaderboardService) Get(
	ctx context.Context,
	gameID string,
	period entity.LeaderboardPeriod,
	userID uint64,
) (*usecase.LeaderboardResult, error) {
	if _, err := s.catalog.Get(gameID); err != nil {
		return nil, err
	}
	if _, err := entity.ParseLeaderboardPeriod(string(period)); err != nil {
		return nil, err
	}
	if period == "" {
		period = entity.PeriodWeekly
	}

	since := period.Since(s.timeProvider.Now())

	entries, err := s.results.Leaderboard(ctx, gameID, since, s.size)
	if err != nil {
		return nil, err
	}

	out := &usecase.LeaderboardResult{
		GameID:  gameID,
		Period:  period,
		Entries: entries,
	}

	if userID == 0 {
		return out, nil
	}

	rank, err := s.results.UserRank(ctx, gameID, since, userID)
	switch {
	case errors.Is(err, errs.ErrNotFound):
	case err != nil:
		return nil, err
	default:
		out.User = rank
	}

	return out, nil
}

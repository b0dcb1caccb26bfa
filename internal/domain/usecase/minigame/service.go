package minigame

import (
	"context"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/usecase"
)

// Service ties together the components of the mini-game feature
type Service struct {
	catalog     *entity.Catalog
	tracker     *CooldownTracker
	recorder    *ResultRecorder
	leaderboard *LeaderboardService
}

var _ usecase.MiniGameUseCase = (*Service)(nil)

// NewService creates a new mini-game service
func NewService(
	catalog *entity.Catalog,
	uow persistence.UnitOfWork,
	userLockRepo persistence.UserLockRepository,
	limiter coreport.RateLimiter,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	settings Settings,
) *Service {
	settings = settings.withDefaults()

	// Reads outside a transaction use repositories bound to the plain connection.
	background := context.Background()
	sessions := uow.GetSessionRepository(background)
	results := uow.GetResultRepository(background)
	users := uow.GetUserRepository(background)

	return &Service{
		catalog:  catalog,
		tracker:  NewCooldownTracker(catalog, sessions, timeProvider, logger, settings.DegradeOpenOnStorageFailure),
		recorder: NewResultRecorder(
			catalog,
			uow,
			userLockRepo,
			limiter,
			idGenerator,
			timeProvider,
			logger,
			NewResultValidator(),
			NewIdempotencyHandler(results, users, sessions),
			settings,
		),
		leaderboard: NewLeaderboardService(catalog, results, timeProvider, settings.LeaderboardSize),
	}
}

// ListGames returns the configured catalog
func (s *Service) ListGames() []entity.GameConfig {
	return s.catalog.List()
}

// CheckEligibility reports whether the user may start the game now
func (s *Service) CheckEligibility(ctx context.Context, userID uint64, gameID string) (*usecase.Eligibility, error) {
	return s.tracker.CanPlay(ctx, userID, gameID)
}

// RecordResult credits a finished play
func (s *Service) RecordResult(ctx context.Context, req usecase.RecordRequest) (*usecase.RecordOutcome, error) {
	return s.recorder.Record(ctx, req)
}

// Leaderboard ranks players of a game for a period
func (s *Service) Leaderboard(
	ctx context.Context,
	gameID string,
	period entity.LeaderboardPeriod,
	userID uint64,
) (*usecase.LeaderboardResult, error) {
	return s.leaderboard.Get(ctx, gameID, period, userID)
}

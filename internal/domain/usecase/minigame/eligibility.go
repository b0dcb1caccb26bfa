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

// CooldownTracker answers whether a user may start a game
type CooldownTracker struct {
	catalog      *entity.Catalog
	sessions     persistence.SessionRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	degradeOpen  bool
}

// NewCooldownTracker creates a new CooldownTracker
func NewCooldownTracker(
	catalog *entity.Catalog,
	sessions persistence.SessionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	degradeOpenOnStorageFailure bool,
) *CooldownTracker {
	return &CooldownTracker{
		catalog:      catalog,
		sessions:     sessions,
		timeProvider: timeProvider,
		logger:       logger,
		degradeOpen:  degradeOpenOnStorageFailure,
	}
}

// CanPlay looks up or lazily creates the session and compares the clock to its next-available time.
// A storage failure is answered with an eligible, degraded result when degrade-open is enabled.
func (t *CooldownTracker) CanPlay(ctx context.Context, userID uint64, gameID string) (*usecase.Eligibility, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if _, err := t.catalog.Get(gameID); err != nil {
		return nil, err
	}

	session, err := t.sessions.GetOrCreate(ctx, userID, gameID)
	now := t.timeProvider.Now()
	if err != nil {
		if !isStorageFailure(err) {
			return nil, err
		}
		if !t.degradeOpen {
			t.logger.Error("Eligibility lookup failed", map[string]any{
				"user_id": userID,
				"game_id": gameID,
				"policy":  "fail_closed",
				"error":   err.Error(),
			})
			return nil, err
		}
		t.logger.Warn("Eligibility lookup failed, allowing play", map[string]any{
			"user_id": userID,
			"game_id": gameID,
			"policy":  "degrade_open",
			"error":   err.Error(),
		})
		return &usecase.Eligibility{
			CanPlay:       true,
			NextAvailable: now,
			Degraded:      true,
		}, nil
	}

	eligibility := &usecase.Eligibility{
		CanPlay:          session.CanPlayAt(now),
		NextAvailable:    session.NextAvailable,
		SecondsRemaining: session.SecondsRemaining(now),
		Session:          session,
	}

	t.logger.Debug("Eligibility checked", map[string]any{
		"user_id":           userID,
		"game_id":           gameID,
		"can_play":          eligibility.CanPlay,
		"seconds_remaining": eligibility.SecondsRemaining,
	})

	return eligibility, nil
}

// isStorageFailure separates an unreachable store from answers the store gave us
func isStorageFailure(err error) bool {
	return errs.IsStorageError(err) ||
		errs.IsTransientError(err) ||
		errors.Is(err, context.DeadlineExceeded)
}

package minigame

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/persistence"
)

// IdempotencyHandler finds plays that were already recorded under the same attempt ID,
// so a client retrying after a lost response is not told it is on cooldown.
type IdempotencyHandler struct {
	results  persistence.ResultRepository
	users    persistence.UserRepository
	sessions persistence.SessionRepository
}

// Replay is what a repeated attempt is answered with
type Replay struct {
	Result   *entity.MiniGameResult
	Balances entity.Balances
	Session  *entity.MiniGameSession
}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler(
	results persistence.ResultRepository,
	users persistence.UserRepository,
	sessions persistence.SessionRepository,
) *IdempotencyHandler {
	return &IdempotencyHandler{
		results:  results,
		users:    users,
		sessions: sessions,
	}
}

// CheckIdempotency returns the stored play with the user's current balances and cooldown,
// or nil when the attempt has not been recorded yet
func (h *IdempotencyHandler) CheckIdempotency(
	ctx context.Context,
	attemptID string,
	userID uint64,
	gameID string,
) (*Replay, error) {
	if attemptID == "" {
		return nil, nil
	}

	result, err := h.results.GetByAttemptID(ctx, attemptID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up attempt: %w", err)
	}

	// An attempt ID reused by another user or for another game is a client bug, not a replay.
	if result.UserID != userID {
		return nil, fmt.Errorf("%w: attempt id belongs to another user", errs.ErrInvalidRequest)
	}
	if result.GameID != gameID {
		return nil, fmt.Errorf("%w: attempt id was recorded for game %s", errs.ErrInvalidRequest, result.GameID)
	}

	user, err := h.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load balances for replay: %w", err)
	}

	session, err := h.sessions.GetOrCreate(ctx, userID, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session for replay: %w", err)
	}

	return &Replay{
		Result:   result,
		Balances: user.Balances(),
		Session:  session,
	}, nil
}

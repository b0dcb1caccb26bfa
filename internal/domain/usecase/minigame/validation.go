package minigame

import (
	"fmt"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/usecase"
)

// maxAttemptIDLength matches the attempt_id column size
const maxAttemptIDLength = 64

// ResultValidator checks a reported play against the game's plausibility envelope
type ResultValidator struct{}

// NewResultValidator creates a new ResultValidator
func NewResultValidator() *ResultValidator {
	return &ResultValidator{}
}

// Validate validates all fields of a record request
func (v *ResultValidator) Validate(game entity.GameConfig, req usecase.RecordRequest) error {
	if req.UserID == 0 {
		return errs.ErrInvalidUserID
	}

	if len(req.AttemptID) > maxAttemptIDLength {
		return fmt.Errorf("%w: attempt id longer than %d characters", errs.ErrInvalidRequest, maxAttemptIDLength)
	}

	if err := v.validateScore(req); err != nil {
		return err
	}

	if err := v.validateDuration(game, req); err != nil {
		return err
	}

	return v.validateEnvelope(game, req)
}

// validateScore rejects negative scores and penalties
func (v *ResultValidator) validateScore(req usecase.RecordRequest) error {
	if req.Score < 0 {
		return fmt.Errorf("%w: score %d is negative", errs.ErrInvalidScore, req.Score)
	}
	if req.PenaltyUnits < 0 {
		return fmt.Errorf("%w: penalty %d is negative", errs.ErrInvalidScore, req.PenaltyUnits)
	}
	return nil
}

// validateDuration checks the play lasted a positive time no longer than the game allows
func (v *ResultValidator) validateDuration(game entity.GameConfig, req usecase.RecordRequest) error {
	if req.Duration <= 0 {
		return fmt.Errorf("%w: must be positive", errs.ErrInvalidDuration)
	}
	if req.Duration > game.MaxDuration() {
		return fmt.Errorf("%w: %s exceeds %s", errs.ErrInvalidDuration, req.Duration, game.MaxDuration())
	}
	return nil
}

// validateEnvelope caps the score by what the game's scoring rate allows in the reported time
func (v *ResultValidator) validateEnvelope(game entity.GameConfig, req usecase.RecordRequest) error {
	limit := game.MaxScoreFor(req.Duration)
	if req.Score > limit {
		return fmt.Errorf("%w: score %d over %d for %s", errs.ErrScoreOutOfEnvelope, req.Score, limit, req.Duration)
	}
	return nil
}

package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
)

// MiniGameResult is the append-only record of one completed play
type MiniGameResult struct {
	ID           string
	AttemptID    string // client supplied idempotency key, optional
	UserID       uint64
	GameID       string
	Score        int64
	PenaltyUnits int64
	SCEarned     int64
	GCEarned     int64
	Duration     time.Duration
	PlayedAt     time.Time
	Telemetry    map[string]any
}

// NewMiniGameResult validates and builds a result row
func NewMiniGameResult(
	id string,
	userID uint64,
	gameID string,
	score, penaltyUnits int64,
	reward Reward,
	duration time.Duration,
	playedAt time.Time,
) (*MiniGameResult, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if gameID == "" {
		return nil, errs.ErrGameNotFound
	}
	if score < 0 || penaltyUnits < 0 {
		return nil, errs.ErrInvalidScore
	}
	if reward.SC < 0 || reward.GC < 0 {
		return nil, errs.ErrNegativeAmount
	}
	return &MiniGameResult{
		ID:           id,
		UserID:       userID,
		GameID:       gameID,
		Score:        score,
		PenaltyUnits: penaltyUnits,
		SCEarned:     reward.SC,
		GCEarned:     reward.GC,
		Duration:     duration,
		PlayedAt:     playedAt,
		Telemetry:    map[string]any{},
	}, nil
}

// Reward returns the credited amounts
func (r *MiniGameResult) Reward() Reward {
	return Reward{SC: r.SCEarned, GC: r.GCEarned}
}

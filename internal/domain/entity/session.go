package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
)

// NeverPlayed is the sentinel timestamp of a session that has no recorded play.
// Any clock reading is at or after it, so a fresh session is always eligible.
var NeverPlayed = time.Unix(0, 0).UTC()

// MiniGameSession tracks per-user, per-game cooldown state and play statistics
type MiniGameSession struct {
	UserID        uint64
	GameID        string
	LastPlayed    time.Time
	NextAvailable time.Time
	TotalPlays    int64
	BestScore     int64
	TotalSCEarned int64 // minor units
	UpdatedAt     time.Time
}

// NewMiniGameSession creates a session that has never been played
func NewMiniGameSession(userID uint64, gameID string) (*MiniGameSession, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if gameID == "" {
		return nil, errs.ErrGameNotFound
	}
	return &MiniGameSession{
		UserID:        userID,
		GameID:        gameID,
		LastPlayed:    NeverPlayed,
		NextAvailable: NeverPlayed,
		UpdatedAt:     NeverPlayed,
	}, nil
}

// HasPlayed reports whether at least one play has been recorded
func (s *MiniGameSession) HasPlayed() bool {
	return s.TotalPlays > 0
}

// CanPlayAt reports whether a new play may start at now
func (s *MiniGameSession) CanPlayAt(now time.Time) bool {
	return !now.Before(s.NextAvailable)
}

// SecondsRemaining returns the wait until the next play, rounded up to whole seconds
func (s *MiniGameSession) SecondsRemaining(now time.Time) int64 {
	if s.CanPlayAt(now) {
		return 0
	}
	remaining := s.NextAvailable.Sub(now)
	return int64((remaining + time.Second - 1) / time.Second)
}

// RecordPlay applies a completed play to the session
func (s *MiniGameSession) RecordPlay(now time.Time, cooldown time.Duration, score, scEarned int64) {
	s.LastPlayed = now
	s.NextAvailable = now.Add(cooldown)
	s.TotalPlays++
	if score > s.BestScore {
		s.BestScore = score
	}
	s.TotalSCEarned += scEarned
	s.UpdatedAt = now
}

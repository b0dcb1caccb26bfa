package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// SessionRequest asks whether a user may start a game
type SessionRequest struct {
	GameID string `json:"gameId" binding:"required"`
	UserID uint64 `json:"userId" binding:"required"`
}

// SessionResponse reports a user's cooldown state and statistics for a game
type SessionResponse struct {
	GameID           string     `json:"gameId"`
	UserID           uint64     `json:"userId"`
	LastPlayed       *time.Time `json:"lastPlayed"`
	NextAvailable    time.Time  `json:"nextAvailable"`
	TotalPlays       int64      `json:"totalPlays"`
	BestScore        int64      `json:"bestScore"`
	TotalSCEarned    string     `json:"totalScEarned"`
	CanPlay          bool       `json:"canPlay"`
	SecondsRemaining int64      `json:"secondsRemaining"`
	Degraded         bool       `json:"degraded,omitempty"`
}

// Amount is a client-reported money value. Clients send either a JSON
// number (1.5) or a decimal string ("1.50"); both are kept as text.
type Amount string

// UnmarshalJSON accepts a number, a string or null
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a number or a string: %w", err)
	}
	*a = Amount(n.String())
	return nil
}

// String returns the raw amount text
func (a Amount) String() string {
	return string(a)
}

// RecordResultRequest is a finished play reported by the client
type RecordResultRequest struct {
	AttemptID     string  `json:"attemptId" binding:"omitempty,max=64"`
	GameID        string  `json:"gameId" binding:"required"`
	UserID        uint64  `json:"userId" binding:"required"`
	Score         *int64  `json:"score" binding:"required"`
	Penalty       int64   `json:"penalty"`
	SCEarned      Amount  `json:"scEarned"`
	GCEarned      Amount  `json:"gcEarned"`
	Duration      float64 `json:"duration"` // seconds
	ClientVersion string  `json:"clientVersion" binding:"omitempty,max=32"`
}

// PlayDuration converts the reported seconds to a duration
func (r RecordResultRequest) PlayDuration() time.Duration {
	return time.Duration(r.Duration * float64(time.Second))
}

// RecordResultResponse is the credited outcome of a play
type RecordResultResponse struct {
	Success        bool            `json:"success"`
	ResultID       string          `json:"resultId"`
	NewBalance     CurrencyAmounts `json:"newBalance"`
	Reward         CurrencyAmounts `json:"reward"`
	RewardAdjusted bool            `json:"rewardAdjusted"`
	Replayed       bool            `json:"replayed,omitempty"`
	NextAvailable  time.Time       `json:"nextAvailable"`
}

// LeaderboardEntryDTO is one ranked player
type LeaderboardEntryDTO struct {
	Rank     int64  `json:"rank"`
	UserID   uint64 `json:"userId"`
	Username string `json:"username"`
	Score    int64  `json:"score"`
	SCEarned string `json:"scEarned"`
	Plays    int64  `json:"plays"`
}

// UserRankDTO places the requesting player within the leaderboard
type UserRankDTO struct {
	LeaderboardEntryDTO
	TotalPlayers int64   `json:"totalPlayers"`
	Percentile   float64 `json:"percentile"`
}

// LeaderboardResponse is a ranked page for one game and period
type LeaderboardResponse struct {
	GameID      string                `json:"gameId"`
	Period      string                `json:"period"`
	Leaderboard []LeaderboardEntryDTO `json:"leaderboard"`
	UserRank    *UserRankDTO          `json:"userRank,omitempty"`
}

// GameDTO describes one catalog entry
type GameDTO struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	CooldownHours   int    `json:"cooldownHours"`
	DurationSeconds int64  `json:"durationSeconds"`
	SCRate          string `json:"scRate"`
	SCCap           string `json:"scCap"`
	GCRate          string `json:"gcRate"`
	GCCap           string `json:"gcCap"`
}

// GameListResponse wraps the catalog
type GameListResponse struct {
	Games []GameDTO `json:"games"`
}

// HealthResponse reports service health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

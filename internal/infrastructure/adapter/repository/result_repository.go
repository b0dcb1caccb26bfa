package repository

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/model"
)

// rankedPlayers aggregates results per player and ranks them by best score, then SC earned.
// Placeholders: game id, window start.
const rankedPlayers = `
SELECT r.user_id,
       u.username,
       MAX(r.score)     AS score,
       SUM(r.sc_earned) AS sc_earned,
       COUNT(*)         AS plays,
       RANK() OVER (ORDER BY MAX(r.score) DESC, SUM(r.sc_earned) DESC) AS rank,
       COUNT(*) OVER () AS total_players
FROM mini_game_results r
JOIN users u ON u.id = r.user_id
WHERE r.game_id = ? AND r.played_at >= ?
GROUP BY r.user_id, u.username`

type leaderboardRow struct {
	UserID       uint64 `gorm:"column:user_id"`
	Username     string `gorm:"column:username"`
	Score        int64  `gorm:"column:score"`
	SCEarned     int64  `gorm:"column:sc_earned"`
	Plays        int64  `gorm:"column:plays"`
	Rank         int64  `gorm:"column:rank"`
	TotalPlayers int64  `gorm:"column:total_players"`
}

func (row leaderboardRow) entry() entity.LeaderboardEntry {
	return entity.LeaderboardEntry{
		UserID:   row.UserID,
		Username: row.Username,
		Score:    row.Score,
		SCEarned: row.SCEarned,
		Plays:    row.Plays,
		Rank:     row.Rank,
	}
}

// ResultRepository stores append-only mini-game results using GORM
type ResultRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewResultRepository creates a new ResultRepository instance
func NewResultRepository(db *gorm.DB, logger coreport.Logger) *ResultRepository {
	return &ResultRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func resultToModel(r *entity.MiniGameResult) model.MiniGameResult {
	m := model.MiniGameResult{
		ID:           r.ID,
		UserID:       r.UserID,
		GameID:       r.GameID,
		Score:        r.Score,
		PenaltyUnits: r.PenaltyUnits,
		SCEarned:     r.SCEarned,
		GCEarned:     r.GCEarned,
		DurationMs:   r.Duration.Milliseconds(),
		PlayedAt:     r.PlayedAt,
		Telemetry:    datatypes.JSONMap(r.Telemetry),
	}
	if r.AttemptID != "" {
		attemptID := r.AttemptID
		m.AttemptID = &attemptID
	}
	return m
}

func resultToEntity(m *model.MiniGameResult) *entity.MiniGameResult {
	r := &entity.MiniGameResult{
		ID:           m.ID,
		UserID:       m.UserID,
		GameID:       m.GameID,
		Score:        m.Score,
		PenaltyUnits: m.PenaltyUnits,
		SCEarned:     m.SCEarned,
		GCEarned:     m.GCEarned,
		Duration:     time.Duration(m.DurationMs) * time.Millisecond,
		PlayedAt:     m.PlayedAt.UTC(),
		Telemetry:    map[string]any(m.Telemetry),
	}
	if m.AttemptID != nil {
		r.AttemptID = *m.AttemptID
	}
	return r
}

// Create appends a result. A reused attempt id surfaces as ErrConcurrentPlay.
func (r *ResultRepository) Create(ctx context.Context, result *entity.MiniGameResult) error {
	m := resultToModel(result)
	if err := r.db.WithContext(ctx).Omit("User").Create(&m).Error; err != nil {
		mapped := r.errorClassifier.ToDomain(err, errs.ErrNotFound, errs.ErrConcurrentPlay)
		r.logger.Error("Failed to store mini-game result", map[string]any{
			"result_id": result.ID,
			"user_id":   result.UserID,
			"game_id":   result.GameID,
			"error":     err.Error(),
		})
		return mapped
	}
	return nil
}

// GetByAttemptID finds a previously recorded result by its client attempt key
func (r *ResultRepository) GetByAttemptID(ctx context.Context, attemptID string) (*entity.MiniGameResult, error) {
	var m model.MiniGameResult
	err := r.db.WithContext(ctx).Where("attempt_id = ?", attemptID).First(&m).Error
	if err != nil {
		return nil, r.errorClassifier.ToDomain(err, errs.ErrNotFound, errs.ErrConcurrentPlay)
	}
	return resultToEntity(&m), nil
}

// Leaderboard ranks players of a game by best score over results played at or after since
func (r *ResultRepository) Leaderboard(ctx context.Context, gameID string, since time.Time, limit int) ([]entity.LeaderboardEntry, error) {
	var rows []leaderboardRow
	err := r.db.WithContext(ctx).
		Raw(rankedPlayers+"\nORDER BY rank, r.user_id\nLIMIT ?", gameID, since, limit).
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("Failed to load leaderboard", map[string]any{
			"game_id": gameID,
			"since":   since,
			"error":   err.Error(),
		})
		return nil, r.errorClassifier.ToDomain(err, errs.ErrNotFound, errs.ErrConstraintViolation)
	}

	entries := make([]entity.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.entry())
	}
	return entries, nil
}

// UserRank returns one player's placing in the same ordering as Leaderboard
func (r *ResultRepository) UserRank(ctx context.Context, gameID string, since time.Time, userID uint64) (*entity.UserRank, error) {
	var rows []leaderboardRow
	err := r.db.WithContext(ctx).
		Raw("WITH ranked AS ("+rankedPlayers+"\n) SELECT * FROM ranked WHERE user_id = ?", gameID, since, userID).
		Scan(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.ToDomain(err, errs.ErrNotFound, errs.ErrConstraintViolation)
	}
	if len(rows) == 0 {
		return nil, errs.ErrNotFound
	}

	return &entity.UserRank{
		LeaderboardEntry: rows[0].entry(),
		TotalPlayers:     rows[0].TotalPlayers,
	}, nil
}

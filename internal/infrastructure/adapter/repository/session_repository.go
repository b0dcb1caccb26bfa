package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/model"
)

// SessionRepository stores mini-game cooldown rows using GORM
type SessionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewSessionRepository creates a new SessionRepository instance
func NewSessionRepository(db *gorm.DB, logger coreport.Logger) *SessionRepository {
	return &SessionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func sessionToModel(s *entity.MiniGameSession) model.MiniGameSession {
	return model.MiniGameSession{
		UserID:        s.UserID,
		GameID:        s.GameID,
		LastPlayed:    s.LastPlayed,
		NextAvailable: s.NextAvailable,
		TotalPlays:    s.TotalPlays,
		BestScore:     s.BestScore,
		TotalSCEarned: s.TotalSCEarned,
		UpdatedAt:     s.UpdatedAt,
	}
}

func sessionToEntity(m *model.MiniGameSession) *entity.MiniGameSession {
	return &entity.MiniGameSession{
		UserID:        m.UserID,
		GameID:        m.GameID,
		LastPlayed:    m.LastPlayed.UTC(),
		NextAvailable: m.NextAvailable.UTC(),
		TotalPlays:    m.TotalPlays,
		BestScore:     m.BestScore,
		TotalSCEarned: m.TotalSCEarned,
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
}

// mapError reports a missing parent user as ErrUserNotFound and a racing insert as ErrConcurrentPlay
func (r *SessionRepository) mapError(operation string, err error, userID uint64, gameID string) error {
	fields := map[string]any{
		"user_id": userID,
		"game_id": gameID,
		"error":   err.Error(),
	}

	if r.errorClassifier.IsForeignKeyError(err) {
		r.logger.Warn("Session references unknown user", fields)
		return errs.ErrUserNotFound
	}

	mapped := r.errorClassifier.ToDomain(err, errs.ErrSessionNotFound, errs.ErrConcurrentPlay)
	if errs.IsNotFoundError(mapped) || errs.IsTransientError(mapped) {
		r.logger.Debug("Session "+operation+" did not complete", fields)
	} else {
		r.logger.Error("Database error when "+operation+" session", fields)
	}
	return mapped
}

// GetOrCreate returns the session, inserting a never-played row first when none exists
func (r *SessionRepository) GetOrCreate(ctx context.Context, userID uint64, gameID string) (*entity.MiniGameSession, error) {
	fresh, err := entity.NewMiniGameSession(userID, gameID)
	if err != nil {
		return nil, err
	}

	m := sessionToModel(fresh)
	err = r.db.WithContext(ctx).
		Omit("User").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&m).Error
	if err != nil {
		return nil, r.mapError("creating", err, userID, gameID)
	}

	var stored model.MiniGameSession
	err = r.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		First(&stored).Error
	if err != nil {
		return nil, r.mapError("reading", err, userID, gameID)
	}

	return sessionToEntity(&stored), nil
}

// GetForUpdate returns the session with its row locked for the surrounding transaction
func (r *SessionRepository) GetForUpdate(ctx context.Context, userID uint64, gameID string) (*entity.MiniGameSession, error) {
	var m model.MiniGameSession
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		First(&m).Error
	if err != nil {
		return nil, r.mapError("locking", err, userID, gameID)
	}
	return sessionToEntity(&m), nil
}

// Create inserts a new session row
func (r *SessionRepository) Create(ctx context.Context, session *entity.MiniGameSession) error {
	m := sessionToModel(session)
	if err := r.db.WithContext(ctx).Omit("User").Create(&m).Error; err != nil {
		return r.mapError("creating", err, session.UserID, session.GameID)
	}
	return nil
}

// Update persists cooldown state and statistics
func (r *SessionRepository) Update(ctx context.Context, session *entity.MiniGameSession) error {
	result := r.db.WithContext(ctx).Model(&model.MiniGameSession{}).
		Where("user_id = ? AND game_id = ?", session.UserID, session.GameID).
		Updates(map[string]any{
			"last_played":     session.LastPlayed,
			"next_available":  session.NextAvailable,
			"total_plays":     session.TotalPlays,
			"best_score":      session.BestScore,
			"total_sc_earned": session.TotalSCEarned,
			"updated_at":      session.UpdatedAt,
		})
	if result.Error != nil {
		return r.mapError("updating", result.Error, session.UserID, session.GameID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrSessionNotFound
	}
	return nil
}

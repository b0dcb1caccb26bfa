package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/model"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) (*entity.User, error) {
	user, err := entity.RestoreUser(
		userModel.ID,
		userModel.Username,
		userModel.GCBalance,
		userModel.SCBalance,
		userModel.CreatedAt,
		userModel.UpdatedAt,
		userModel.TransactionCount,
	)
	if err != nil {
		r.logger.Error("Failed to restore user entity", map[string]any{
			"user_id": userModel.ID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: failed to restore user entity: %s", errs.ErrInternalServer, err.Error())
	}
	return user, nil
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	mapped := r.errorClassifier.ToDomain(err, errs.ErrUserNotFound, errs.ErrDuplicateUser)

	fields := map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	}
	switch {
	case errs.IsUserNotFoundError(mapped):
		r.logger.Warn("User not found", fields)
	case errs.IsTransientError(mapped):
		r.logger.Warn(fmt.Sprintf("Transaction conflict when %s", operation), fields)
	default:
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	}

	return mapped
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	if err := r.db.WithContext(ctx).First(&userModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting user", err, id)
	}
	return r.modelToEntity(&userModel)
}

// GetByIDForUpdate retrieves a user and locks the row until the surrounding transaction ends
func (r *UserRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&userModel, id).Error
	if err != nil {
		return nil, r.handleDatabaseError("locking user", err, id)
	}

	user, err := r.modelToEntity(&userModel)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("User row locked", map[string]any{
		"user_id":  id,
		"tx_count": user.TransactionCount,
	})
	return user, nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	balances := user.Balances()
	userModel := model.User{
		ID:               user.ID,
		Username:         user.Username,
		GCBalance:        balances.GC,
		SCBalance:        balances.SC,
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
		TransactionCount: user.TransactionCount,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return r.handleDatabaseError("creating user", err, user.ID)
	}

	gc, sc := balances.Formatted()
	r.logger.Info("User created successfully", map[string]any{
		"user_id": user.ID,
		"gc":      gc,
		"sc":      sc,
	})
	return nil
}

// UpdateBalances persists both balances and the transaction counter
func (r *UserRepository) UpdateBalances(ctx context.Context, user *entity.User) error {
	balances := user.Balances()

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"gc_balance":        balances.GC,
			"sc_balance":        balances.SC,
			"updated_at":        user.UpdatedAt,
			"transaction_count": user.TransactionCount,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating balances", result.Error, user.ID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during update", map[string]any{
			"user_id": user.ID,
		})
		return errs.ErrUserNotFound
	}

	gc, sc := balances.Formatted()
	r.logger.Debug("User balances updated", map[string]any{
		"user_id":  user.ID,
		"gc":       gc,
		"sc":       sc,
		"tx_count": user.TransactionCount,
	})
	return nil
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/model"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a ledger entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	m := model.Transaction{
		ID:              transaction.ID,
		Reference:       transaction.Reference,
		UserID:          transaction.UserID,
		Type:            string(transaction.Type),
		Currency:        string(transaction.Currency),
		Amount:          transaction.Amount,
		PreviousBalance: transaction.PreviousBalance,
		NewBalance:      transaction.NewBalance,
		Description:     transaction.Description,
		Status:          string(transaction.Status),
		CreatedAt:       transaction.CreatedAt,
	}
	if transaction.ResultID != "" {
		resultID := transaction.ResultID
		m.ResultID = &resultID
	}
	return m
}

// modelToEntity converts a database model to a ledger entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	tx := &entity.Transaction{
		ID:              m.ID,
		Reference:       m.Reference,
		UserID:          m.UserID,
		Type:            entity.TransactionType(m.Type),
		Currency:        entity.Currency(m.Currency),
		Amount:          m.Amount,
		PreviousBalance: m.PreviousBalance,
		NewBalance:      m.NewBalance,
		Description:     m.Description,
		Status:          entity.TransactionStatus(m.Status),
		CreatedAt:       m.CreatedAt,
	}
	if m.ResultID != nil {
		tx.ResultID = *m.ResultID
	}
	return tx
}

// Create saves a new ledger entry
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := r.entityToModel(transaction)

	if err := r.db.WithContext(ctx).Omit("User").Create(&transactionModel).Error; err != nil {
		mapped := r.errorClassifier.ToDomain(err, errs.ErrNotFound, errs.ErrConstraintViolation)
		r.logger.Error("Failed to create transaction", map[string]any{
			"reference": transaction.Reference,
			"user_id":   transaction.UserID,
			"currency":  transaction.Currency,
			"error":     err.Error(),
		})
		return mapped
	}

	transaction.ID = transactionModel.ID

	r.logger.Debug("Transaction created successfully", map[string]any{
		"reference": transaction.Reference,
		"user_id":   transaction.UserID,
		"currency":  transaction.Currency,
		"amount":    entity.AmountInCentsToString(transaction.Amount),
	})
	return nil
}

// ListByUser returns the most recent entries for a user, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64, limit int) ([]*entity.Transaction, error) {
	var models []model.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		r.logger.Error("Failed to list transactions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, r.errorClassifier.ToDomain(err, errs.ErrNotFound, errs.ErrConstraintViolation)
	}

	out := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		out = append(out, r.modelToEntity(&models[i]))
	}
	return out, nil
}

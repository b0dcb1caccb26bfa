package user

import (
	"context"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
)

const (
	defaultTransactionLimit = 20
	maxTransactionLimit     = 100
)

// ListTransactions returns the newest ledger entries of an existing user.
// A non-positive limit selects the default, larger limits are capped.
func (u *UserUseCase) ListTransactions(ctx context.Context, userID uint64, limit int) ([]*entity.Transaction, error) {
	exists, err := u.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.ErrUserNotFound
	}

	switch {
	case limit <= 0:
		limit = defaultTransactionLimit
	case limit > maxTransactionLimit:
		limit = maxTransactionLimit
	}

	txs, err := u.transactionRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		u.logger.Error("Failed to list transactions", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}

	return txs, nil
}

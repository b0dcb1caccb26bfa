package persistence

import (
	"context"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
)

// TransactionRepository appends and reads ledger entries
type TransactionRepository interface {
	// Create saves a new ledger entry
	//
	// Possible errors:
	// - ErrConstraintViolation: If the reference already exists or the user is missing
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByUser returns the most recent entries for a user, newest first
	ListByUser(ctx context.Context, userID uint64, limit int) ([]*entity.Transaction, error)
}

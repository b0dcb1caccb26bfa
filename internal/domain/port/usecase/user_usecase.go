package usecase

import (
	"context"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
)

// UserUseCase defines methods for user-related business operations
type UserUseCase interface {
	// GetFormattedUserBalance retrieves both balances formatted with 2 decimal places
	GetFormattedUserBalance(ctx context.Context, userID uint64) (*entity.BalanceResponse, error)

	// CreateUser creates a new user with the given starting balances
	CreateUser(ctx context.Context, id uint64, username, initialGC, initialSC string) (*entity.User, error)

	// CreateDefaultUsers seeds the demo players
	CreateDefaultUsers(ctx context.Context) error

	// UserExists checks if a user exists with the given ID
	UserExists(ctx context.Context, userID uint64) (bool, error)

	// ListTransactions returns the newest ledger entries for a user
	ListTransactions(ctx context.Context, userID uint64, limit int) ([]*entity.Transaction, error)
}

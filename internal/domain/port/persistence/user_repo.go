package persistence

import (
	"context"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByIDForUpdate retrieves a user and holds a row lock until the surrounding
	// transaction ends. Must be called on a repository bound to a transaction.
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrTransactionConflict: On lock timeout, deadlock or serialization failure
	// - ErrDatabaseConnection: If database connection fails
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error)

	// Create creates a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: If user with same ID already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// UpdateBalances persists both balances and the transaction counter
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrConstraintViolation: If a balance would become negative
	// - ErrDatabaseConnection: If database connection fails
	UpdateBalances(ctx context.Context, user *entity.User) error
}

package database

import (
	"fmt"

	domainErr "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/repository"
)

// ErrorMapper maps errors raised outside a repository (begin, commit, ping) to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a database error to a domain error, naming the operation that failed
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	switch m.classifier.Classify(err) {
	case repository.LockError:
		return fmt.Errorf("%w: %s: %s", domainErr.ErrTransactionConflict, operation, err.Error())
	case repository.DuplicateKeyError, repository.ForeignKeyError, repository.ConstraintError:
		return fmt.Errorf("%w: %s: %s", domainErr.ErrConstraintViolation, operation, err.Error())
	default:
		return fmt.Errorf("%w: %s: %s", domainErr.ErrDatabaseConnection, operation, err.Error())
	}
}

// IsRetryable reports whether an operation that failed with err may be attempted again
func (m *ErrorMapper) IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if domainErr.IsTransientError(err) {
		return true
	}
	switch m.classifier.Classify(err) {
	case repository.LockError, repository.TransientError, repository.ConnectionError:
		return true
	}
	return false
}

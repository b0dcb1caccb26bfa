package error

import (
	"errors"
	"fmt"
	"time"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidUserID       = 4003
	CodeInvalidScore        = 4004
	CodeScoreOutOfEnvelope  = 4005
	CodeInvalidDuration     = 4006
	CodeInvalidPeriod       = 4007
	CodeAmountOverflow      = 4008
	CodeUserNotFound        = 4040
	CodeGameNotFound        = 4041
	CodeCooldownActive      = 4090
	CodeConcurrentPlay      = 4091
	CodeDuplicateUser       = 4092
	CodeUserLocked          = 4230
	CodeRateLimited         = 4290
	CodeConstraintViolation = 4220

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeStorageUnavailable = 5030
)

// Base error types
var (
	// ErrInvalidAmount is returned when an amount string cannot be parsed
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when an amount is negative where only credits are allowed
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrNegativeBalance is returned when an operation would leave a negative balance
	ErrNegativeBalance = errors.New("balance cannot be negative")

	// ErrAmountOverflow is returned when the amount is too large and would cause overflow
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidCurrency is returned for a currency other than GC or SC
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrGameNotFound is returned for an id that is not in the game catalog
	ErrGameNotFound = errors.New("mini-game not found")

	// ErrInvalidGameConfig is returned when a game definition is unusable
	ErrInvalidGameConfig = errors.New("invalid mini-game configuration")

	// ErrSessionNotFound is returned when no session row exists for a user and game
	ErrSessionNotFound = errors.New("mini-game session not found")

	// ErrInvalidScore is returned for negative scores or penalties
	ErrInvalidScore = errors.New("invalid score")

	// ErrInvalidDuration is returned when the reported play duration is not plausible
	ErrInvalidDuration = errors.New("invalid play duration")

	// ErrScoreOutOfEnvelope is returned when a score exceeds what the play duration allows
	ErrScoreOutOfEnvelope = errors.New("score exceeds the allowed envelope for this game")

	// ErrOnCooldown is returned when a play is recorded before the cooldown expired
	ErrOnCooldown = errors.New("mini-game is on cooldown")

	// ErrConcurrentPlay is returned when another play for the same user and game won the race
	ErrConcurrentPlay = errors.New("concurrent play detected")

	// ErrRateLimited is returned when a user submits too many results in a short window
	ErrRateLimited = errors.New("too many attempts")

	// ErrUserLocked is returned when a user is locked by another operation
	ErrUserLocked = errors.New("user is locked by another operation")

	// ErrTransactionConflict is returned for serialization failures and deadlocks; the operation may be retried
	ErrTransactionConflict = errors.New("transaction conflict")

	// ErrInvalidPeriod is returned for an unknown leaderboard period
	ErrInvalidPeriod = errors.New("invalid leaderboard period")

	// ErrInvalidTransactionReference is returned when a ledger entry has no reference
	ErrInvalidTransactionReference = errors.New("transaction reference cannot be empty")

	// ErrInvalidTransactionType is returned for an unknown ledger entry type
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrBalanceMismatch is returned when a ledger snapshot does not add up
	ErrBalanceMismatch = errors.New("ledger balance snapshot does not match amount")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem reaching the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount), errors.Is(err, ErrInvalidCurrency):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidScore):
		return CodeInvalidScore
	case errors.Is(err, ErrScoreOutOfEnvelope):
		return CodeScoreOutOfEnvelope
	case errors.Is(err, ErrInvalidDuration):
		return CodeInvalidDuration
	case errors.Is(err, ErrInvalidPeriod):
		return CodeInvalidPeriod
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrGameNotFound):
		return CodeGameNotFound
	case errors.Is(err, ErrOnCooldown):
		return CodeCooldownActive
	case errors.Is(err, ErrConcurrentPlay), errors.Is(err, ErrTransactionConflict):
		return CodeConcurrentPlay
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrUserLocked):
		return CodeUserLocked
	case errors.Is(err, ErrRateLimited):
		return CodeRateLimited
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrDatabaseConnection):
		return CodeStorageUnavailable
	default:
		return CodeInternalServer
	}
}

// BalanceError represents an error related to balance operations
type BalanceError struct {
	UserID         uint64
	Currency       string
	Amount         string
	CurrentBalance string
	Err            error
}

// Error implements the error interface for BalanceError
func (e *BalanceError) Error() string {
	return fmt.Sprintf("balance operation failed for user %d (%s balance: %s, amount: %s): %v",
		e.UserID, e.Currency, e.CurrentBalance, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *BalanceError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *BalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "balance_error",
		"user_id":         e.UserID,
		"currency":        e.Currency,
		"amount":          e.Amount,
		"current_balance": e.CurrentBalance,
		"error":           e.Err.Error(),
		"error_code":      ErrorCode(e.Err),
	}
}

// CooldownError carries the remaining wait for a play attempted too early
type CooldownError struct {
	UserID           uint64
	GameID           string
	NextAvailable    time.Time
	SecondsRemaining int64
}

// Error implements the error interface
func (e *CooldownError) Error() string {
	return fmt.Sprintf("mini-game %s is on cooldown for user %d: next play at %s (%ds remaining)",
		e.GameID, e.UserID, e.NextAvailable.UTC().Format(time.RFC3339), e.SecondsRemaining)
}

// Is checks if the target error is ErrOnCooldown
func (e *CooldownError) Is(target error) bool {
	return target == ErrOnCooldown
}

// LogFields returns a map of fields for structured logging
func (e *CooldownError) LogFields() map[string]any {
	return map[string]any{
		"error_type":        "cooldown",
		"user_id":           e.UserID,
		"game_id":           e.GameID,
		"next_available":    e.NextAvailable,
		"seconds_remaining": e.SecondsRemaining,
		"error_code":        CodeCooldownActive,
	}
}

// NewCooldownError creates a cooldown error
func NewCooldownError(userID uint64, gameID string, nextAvailable time.Time, secondsRemaining int64) error {
	return &CooldownError{
		UserID:           userID,
		GameID:           gameID,
		NextAvailable:    nextAvailable,
		SecondsRemaining: secondsRemaining,
	}
}

// RecordError describes a failed attempt to record a mini-game result
type RecordError struct {
	UserID uint64
	GameID string
	Score  int64
	Stage  string
	Err    error
}

// Error implements the error interface for RecordError
func (e *RecordError) Error() string {
	return fmt.Sprintf("recording result for user %d in %s (score %d) failed at %s: %v",
		e.UserID, e.GameID, e.Score, e.Stage, e.Err)
}

// Unwrap returns the underlying error
func (e *RecordError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *RecordError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "record_error",
		"user_id":    e.UserID,
		"game_id":    e.GameID,
		"score":      e.Score,
		"stage":      e.Stage,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
	var cd *CooldownError
	if errors.As(e.Err, &cd) {
		fields["seconds_remaining"] = cd.SecondsRemaining
	}
	return fields
}

// NewRecordError wraps err with the stage of the recording pipeline that produced it
func NewRecordError(userID uint64, gameID string, score int64, stage string, err error) error {
	return &RecordError{
		UserID: userID,
		GameID: gameID,
		Score:  score,
		Stage:  stage,
		Err:    err,
	}
}

// AsCooldownError extracts a CooldownError from an error chain
func AsCooldownError(err error) (*CooldownError, bool) {
	var cd *CooldownError
	if errors.As(err, &cd) {
		return cd, true
	}
	return nil, false
}

// IsCooldownError checks if the error reports an active cooldown
func IsCooldownError(err error) bool {
	return errors.Is(err, ErrOnCooldown)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrGameNotFound) ||
		errors.Is(err, ErrSessionNotFound)
}

// IsUserLockedError checks if the error is related to a locked user
func IsUserLockedError(err error) bool {
	return errors.Is(err, ErrUserLocked)
}

// IsTransientError reports whether the operation may succeed if retried
func IsTransientError(err error) bool {
	return errors.Is(err, ErrTransactionConflict)
}

// IsStorageError reports whether the error came from an unavailable or failing store
func IsStorageError(err error) bool {
	return errors.Is(err, ErrDatabaseConnection) || errors.Is(err, ErrInternalServer)
}

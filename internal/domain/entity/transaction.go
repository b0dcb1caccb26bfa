package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
)

// TransactionType classifies a ledger entry
type TransactionType string

// Transaction types
const (
	TypeMiniGameReward TransactionType = "mini_game_reward"
	TypeBonus          TransactionType = "bonus"
	TypePurchase       TransactionType = "purchase"
	TypeWithdrawal     TransactionType = "withdrawal"
	TypeGameSpin       TransactionType = "game_spin"
)

// TransactionStatus defines possible status values for a ledger entry
type TransactionStatus string

// TransactionStatus constants
const (
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// Transaction is an immutable ledger entry describing one balance mutation
type Transaction struct {
	ID              uint64
	Reference       string // unique external reference
	UserID          uint64
	Type            TransactionType
	Currency        Currency
	Amount          int64 // signed, minor units
	PreviousBalance int64
	NewBalance      int64
	Description     string
	Status          TransactionStatus
	ResultID        string // mini-game result that produced this entry, if any
	CreatedAt       time.Time
}

// NewTransaction creates a completed ledger entry.
// The balance snapshot must satisfy newBalance - previousBalance == amount.
func NewTransaction(
	reference string,
	userID uint64,
	txType TransactionType,
	currency Currency,
	amount, previousBalance, newBalance int64,
	description string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if reference == "" {
		return nil, errs.ErrInvalidTransactionReference
	}
	if !IsValidTransactionType(string(txType)) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, txType)
	}
	if _, err := ParseCurrency(string(currency)); err != nil {
		return nil, err
	}
	if newBalance-previousBalance != amount {
		return nil, fmt.Errorf("%w: %d - %d != %d", errs.ErrBalanceMismatch, newBalance, previousBalance, amount)
	}
	if newBalance < 0 {
		return nil, errs.ErrNegativeBalance
	}

	return &Transaction{
		Reference:       reference,
		UserID:          userID,
		Type:            txType,
		Currency:        currency,
		Amount:          amount,
		PreviousBalance: previousBalance,
		NewBalance:      newBalance,
		Description:     description,
		Status:          StatusCompleted,
		CreatedAt:       timeProvider.Now(),
	}, nil
}

// IsCredit returns true if this entry increased the balance
func (t *Transaction) IsCredit() bool {
	return t.Amount > 0
}

// IsValidTransactionType checks a type against the known ledger types
func IsValidTransactionType(txType string) bool {
	switch TransactionType(txType) {
	case TypeMiniGameReward, TypeBonus, TypePurchase, TypeWithdrawal, TypeGameSpin:
		return true
	}
	return false
}

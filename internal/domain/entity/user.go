package entity

import (
	"math"
	"time"

	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
)

// User is a player holding a Gold Coin and a Sweeps Coin balance
type User struct {
	ID               uint64
	Username         string
	gcBalance        int64 // minor units
	scBalance        int64 // minor units
	CreatedAt        time.Time
	UpdatedAt        time.Time
	TransactionCount uint64
}

// NewUser creates a new user with the given starting balances
func NewUser(id uint64, username string, initialGC, initialSC string, timeProvider coreport.TimeProvider) (*User, error) {
	if id == 0 {
		return nil, errs.ErrInvalidUserID
	}

	gc, err := ValidateAndConvertAmount(initialGC)
	if err != nil {
		return nil, err
	}
	sc, err := ValidateAndConvertAmount(initialSC)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &User{
		ID:        id,
		Username:  username,
		gcBalance: gc,
		scBalance: sc,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RestoreUser rebuilds a user from persisted state.
// Negative stored balances are rejected rather than silently accepted.
func RestoreUser(id uint64, username string, gc, sc int64, createdAt, updatedAt time.Time, txCount uint64) (*User, error) {
	if id == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if gc < 0 || sc < 0 {
		return nil, errs.ErrNegativeBalance
	}
	return &User{
		ID:               id,
		Username:         username,
		gcBalance:        gc,
		scBalance:        sc,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
		TransactionCount: txCount,
	}, nil
}

// Balance returns the balance for a currency in minor units
func (u *User) Balance(currency Currency) int64 {
	if currency == CurrencyGC {
		return u.gcBalance
	}
	return u.scBalance
}

// Balances returns both balances
func (u *User) Balances() Balances {
	return Balances{GC: u.gcBalance, SC: u.scBalance}
}

// GetBalance returns the balance for a currency formatted with two decimal places
func (u *User) GetBalance(currency Currency) string {
	return AmountInCentsToString(u.Balance(currency))
}

// Credit adds a non-negative amount to one balance and returns the balance before and after.
func (u *User) Credit(currency Currency, amount int64, timeProvider coreport.TimeProvider) (previous, next int64, err error) {
	if amount < 0 {
		return 0, 0, errs.ErrNegativeAmount
	}
	if currency != CurrencyGC && currency != CurrencySC {
		return 0, 0, errs.ErrInvalidCurrency
	}

	previous = u.Balance(currency)
	if previous > math.MaxInt64-amount {
		return 0, 0, &errs.BalanceError{
			UserID:         u.ID,
			Currency:       string(currency),
			Amount:         AmountInCentsToString(amount),
			CurrentBalance: AmountInCentsToString(previous),
			Err:            errs.ErrAmountOverflow,
		}
	}

	next = previous + amount
	if currency == CurrencyGC {
		u.gcBalance = next
	} else {
		u.scBalance = next
	}
	u.UpdatedAt = timeProvider.Now()
	u.TransactionCount++
	return previous, next, nil
}

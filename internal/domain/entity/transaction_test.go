package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/minigame-rewards/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid reward entry", func(t *testing.T) {
		tx, err := NewTransaction(
			"ref-1",            // reference
			1,                  // userID
			TypeMiniGameReward, // type
			CurrencySC,         // currency
			100,                // amount
			50,                 // previous balance
			150,                // new balance
			"Dog Catcher reward (score 150)",
			mockTime,
		)

		require.NoError(t, err)
		assert.Equal(t, "ref-1", tx.Reference)
		assert.Equal(t, uint64(1), tx.UserID)
		assert.Equal(t, CurrencySC, tx.Currency)
		assert.Equal(t, int64(100), tx.Amount)
		assert.Equal(t, tx.Amount, tx.NewBalance-tx.PreviousBalance)
		assert.Equal(t, StatusCompleted, tx.Status)
		assert.Equal(t, fixedTime, tx.CreatedAt)
		assert.True(t, tx.IsCredit())
	})

	t.Run("Debit entry", func(t *testing.T) {
		tx, err := NewTransaction("ref-2", 1, TypePurchase, CurrencyGC, -300, 1000, 700, "", mockTime)

		require.NoError(t, err)
		assert.False(t, tx.IsCredit())
	})

	invalid := []struct {
		name    string
		build   func() (*Transaction, error)
		wantErr error
	}{
		{
			name: "Empty reference",
			build: func() (*Transaction, error) {
				return NewTransaction("", 1, TypeBonus, CurrencyGC, 1, 0, 1, "", mockTime)
			},
			wantErr: errs.ErrInvalidTransactionReference,
		},
		{
			name: "Zero user",
			build: func() (*Transaction, error) {
				return NewTransaction("ref", 0, TypeBonus, CurrencyGC, 1, 0, 1, "", mockTime)
			},
			wantErr: errs.ErrInvalidUserID,
		},
		{
			name: "Unknown type",
			build: func() (*Transaction, error) {
				return NewTransaction("ref", 1, TransactionType("refund"), CurrencyGC, 1, 0, 1, "", mockTime)
			},
			wantErr: errs.ErrInvalidTransactionType,
		},
		{
			name: "Unknown currency",
			build: func() (*Transaction, error) {
				return NewTransaction("ref", 1, TypeBonus, Currency("XP"), 1, 0, 1, "", mockTime)
			},
			wantErr: errs.ErrInvalidCurrency,
		},
		{
			name: "Snapshot does not add up",
			build: func() (*Transaction, error) {
				return NewTransaction("ref", 1, TypeBonus, CurrencyGC, 5, 0, 4, "", mockTime)
			},
			wantErr: errs.ErrBalanceMismatch,
		},
		{
			name: "Negative resulting balance",
			build: func() (*Transaction, error) {
				return NewTransaction("ref", 1, TypeWithdrawal, CurrencySC, -10, 5, -5, "", mockTime)
			},
			wantErr: errs.ErrNegativeBalance,
		},
	}

	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			tx, err := tc.build()
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, tx)
		})
	}
}

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType("mini_game_reward"))
	assert.True(t, IsValidTransactionType("game_spin"))
	assert.False(t, IsValidTransactionType(""))
	assert.False(t, IsValidTransactionType("win"))
}

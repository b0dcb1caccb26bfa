package entity

import (
	"testing"
	"time"

	coremocks "github.com/amirhossein-jamali/minigame-rewards/mocks/port/core"
	"github.com/stretchr/testify/assert"
)

func TestUserToBalanceResponse(t *testing.T) {
	t.Run("Converts user to balance response", func(t *testing.T) {
		fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user, err := NewUser(42, "alice", "123.45", "0.75", mockTime)
		assert.NoError(t, err)

		response := UserToBalanceResponse(user)

		assert.Equal(t, uint64(42), response.UserID)
		assert.Equal(t, "123.45", response.GC)
		assert.Equal(t, "0.75", response.SC)
	})

	t.Run("Handles zero balance", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(time.Now()).Once()

		user, err := NewUser(123, "bob", "0.00", "0", mockTime)
		assert.NoError(t, err)

		response := UserToBalanceResponse(user)

		assert.Equal(t, uint64(123), response.UserID)
		assert.Equal(t, "0.00", response.GC)
		assert.Equal(t, "0.00", response.SC)
	})
}

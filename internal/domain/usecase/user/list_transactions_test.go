package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/minigame-rewards/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/minigame-rewards/mocks/port/persistence"
)

func TestListTransactions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "Default limit", limit: 0, wantLimit: 20},
		{name: "Explicit limit", limit: 5, wantLimit: 5},
		{name: "Limit is capped", limit: 1000, wantLimit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := persistencemocks.NewMockUserRepository(t)
			mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
			mockTime := coremocks.NewMockTimeProvider(t)
			mockLogger := coremocks.NewMockLogger(t)

			entries := []*entity.Transaction{{ID: 2, UserID: 7}, {ID: 1, UserID: 7}}
			mockRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(&entity.User{ID: 7}, nil).Once()
			mockTxRepo.EXPECT().ListByUser(mock.Anything, uint64(7), tt.wantLimit).Return(entries, nil).Once()

			userUseCase := NewUserUseCase(mockRepo, mockTxRepo, mockTime, mockLogger)

			got, err := userUseCase.ListTransactions(ctx, 7, tt.limit)

			require.NoError(t, err)
			assert.Equal(t, entries, got)
		})
	}

	t.Run("Unknown user", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockRepo.EXPECT().GetByID(mock.Anything, uint64(9)).Return(nil, errs.ErrUserNotFound).Once()

		userUseCase := NewUserUseCase(mockRepo, mockTxRepo, coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t))

		got, err := userUseCase.ListTransactions(ctx, 9, 10)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, got)
	})

	t.Run("Repository failure is logged", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(&entity.User{ID: 7}, nil).Once()
		mockTxRepo.EXPECT().ListByUser(mock.Anything, uint64(7), 20).Return(nil, errs.ErrDatabaseConnection).Once()
		mockLogger.EXPECT().Error("Failed to list transactions", mock.Anything).Once()

		userUseCase := NewUserUseCase(mockRepo, mockTxRepo, coremocks.NewMockTimeProvider(t), mockLogger)

		_, err := userUseCase.ListTransactions(ctx, 7, 0)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
	"github.com/amirhossein-jamali/minigame-rewards/mocks/port/core"
	"github.com/amirhossein-jamali/minigame-rewards/mocks/port/persistence"
)

func TestUserUseCase_GetFormattedUserBalance(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should return both formatted balances for valid user", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		userID := uint64(123)

		mockUserRepo := new(persistence.MockUserRepository)
		mockTxRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		user, err := entity.RestoreUser(userID, "alice", 12345, 250, fixedTime, fixedTime, 3)
		require.NoError(t, err)

		mockUserRepo.On("GetByID", ctx, userID).Return(user, nil)
		mockLogger.On("Debug", "User balance retrieved", mock.Anything).Return()

		useCase := NewUserUseCase(mockUserRepo, mockTxRepo, mockTimeProvider, mockLogger)

		// Act
		response, err := useCase.GetFormattedUserBalance(ctx, userID)

		// Assert
		assert.NoError(t, err)
		require.NotNil(t, response)
		assert.Equal(t, userID, response.UserID)
		assert.Equal(t, "123.45", response.GC)
		assert.Equal(t, "2.50", response.SC)

		mockUserRepo.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should return error with invalid user ID", func(t *testing.T) {
		ctx := context.Background()

		mockUserRepo := new(persistence.MockUserRepository)
		mockTxRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		useCase := NewUserUseCase(mockUserRepo, mockTxRepo, mockTimeProvider, mockLogger)

		response, err := useCase.GetFormattedUserBalance(ctx, 0)

		assert.Nil(t, response)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)

		// Verify no repository calls were made
		mockUserRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("should return error when user not found", func(t *testing.T) {
		ctx := context.Background()
		userID := uint64(999)

		mockUserRepo := new(persistence.MockUserRepository)
		mockTxRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockUserRepo.On("GetByID", ctx, userID).Return(nil, errs.ErrUserNotFound)
		mockLogger.On("Error", "Failed to get user", mock.Anything).Return()

		useCase := NewUserUseCase(mockUserRepo, mockTxRepo, mockTimeProvider, mockLogger)

		response, err := useCase.GetFormattedUserBalance(ctx, userID)

		assert.Nil(t, response)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)

		mockUserRepo.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should return error on database failure", func(t *testing.T) {
		ctx := context.Background()
		userID := uint64(123)
		dbError := errors.New("database connection error")

		mockUserRepo := new(persistence.MockUserRepository)
		mockTxRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockUserRepo.On("GetByID", ctx, userID).Return(nil, dbError)
		mockLogger.On("Error", "Failed to get user", mock.Anything).Return()

		useCase := NewUserUseCase(mockUserRepo, mockTxRepo, mockTimeProvider, mockLogger)

		response, err := useCase.GetFormattedUserBalance(ctx, userID)

		assert.Nil(t, response)
		assert.Equal(t, dbError, err)

		mockUserRepo.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})
}

func TestUserUseCase_UserExists(t *testing.T) {
	t.Run("should return true when user exists", func(t *testing.T) {
		ctx := context.Background()
		userID := uint64(123)

		mockUserRepo := new(persistence.MockUserRepository)
		mockUserRepo.On("GetByID", ctx, userID).Return(&entity.User{ID: userID}, nil)

		useCase := NewUserUseCase(mockUserRepo, new(persistence.MockTransactionRepository), new(core.MockTimeProvider), new(core.MockLogger))

		exists, err := useCase.UserExists(ctx, userID)

		assert.NoError(t, err)
		assert.True(t, exists)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("should return false when user does not exist", func(t *testing.T) {
		ctx := context.Background()
		userID := uint64(999)

		mockUserRepo := new(persistence.MockUserRepository)
		mockUserRepo.On("GetByID", ctx, userID).Return(nil, errs.ErrUserNotFound)

		useCase := NewUserUseCase(mockUserRepo, new(persistence.MockTransactionRepository), new(core.MockTimeProvider), new(core.MockLogger))

		exists, err := useCase.UserExists(ctx, userID)

		assert.NoError(t, err)
		assert.False(t, exists)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("should return error with invalid user ID", func(t *testing.T) {
		mockUserRepo := new(persistence.MockUserRepository)
		useCase := NewUserUseCase(mockUserRepo, new(persistence.MockTransactionRepository), new(core.MockTimeProvider), new(core.MockLogger))

		exists, err := useCase.UserExists(context.Background(), 0)

		assert.False(t, exists)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		mockUserRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("should return error on database failure", func(t *testing.T) {
		ctx := context.Background()
		userID := uint64(123)
		dbError := errors.New("database connection error")

		mockUserRepo := new(persistence.MockUserRepository)
		mockUserRepo.On("GetByID", ctx, userID).Return(nil, dbError)

		useCase := NewUserUseCase(mockUserRepo, new(persistence.MockTransactionRepository), new(core.MockTimeProvider), new(core.MockLogger))

		exists, err := useCase.UserExists(ctx, userID)

		assert.False(t, exists)
		assert.Equal(t, dbError, err)
		mockUserRepo.AssertExpectations(t)
	})
}

package minigame

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/minigame-rewards/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/minigame-rewards/mocks/port/persistence"
)

func TestCooldownTracker_CanPlay(t *testing.T) {
	ctx := context.Background()

	newTracker := func(t *testing.T, degradeOpen bool) (*CooldownTracker, *persistencemocks.MockSessionRepository, *coremocks.MockLogger) {
		sessions := persistencemocks.NewMockSessionRepository(t)
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Now().Return(fixedNow).Maybe()
		logger := coremocks.NewMockLogger(t)
		logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
		return NewCooldownTracker(testCatalog(t), sessions, clock, logger, degradeOpen), sessions, logger
	}

	t.Run("Never played is eligible", func(t *testing.T) {
		tracker, sessions, _ := newTracker(t, true)
		fresh, err := entity.NewMiniGameSession(1, "dog-catcher")
		require.NoError(t, err)
		sessions.EXPECT().GetOrCreate(ctx, uint64(1), "dog-catcher").Return(fresh, nil).Once()

		got, err := tracker.CanPlay(ctx, 1, "dog-catcher")

		require.NoError(t, err)
		assert.True(t, got.CanPlay)
		assert.Equal(t, int64(0), got.SecondsRemaining)
		assert.False(t, got.Degraded)
		assert.Equal(t, entity.NeverPlayed, got.NextAvailable)
	})

	t.Run("On cooldown reports the remaining wait", func(t *testing.T) {
		tracker, sessions, _ := newTracker(t, true)
		session, err := entity.NewMiniGameSession(1, "dog-catcher")
		require.NoError(t, err)
		session.RecordPlay(fixedNow.Add(-23*time.Hour), 24*time.Hour, 10, 10)
		sessions.EXPECT().GetOrCreate(ctx, uint64(1), "dog-catcher").Return(session, nil).Once()

		got, err := tracker.CanPlay(ctx, 1, "dog-catcher")

		require.NoError(t, err)
		assert.False(t, got.CanPlay)
		assert.Equal(t, int64(3600), got.SecondsRemaining)
		assert.Equal(t, fixedNow.Add(time.Hour), got.NextAvailable)
	})

	t.Run("Eligible exactly when the cooldown ends", func(t *testing.T) {
		tracker, sessions, _ := newTracker(t, true)
		session, err := entity.NewMiniGameSession(1, "dog-catcher")
		require.NoError(t, err)
		session.RecordPlay(fixedNow.Add(-24*time.Hour), 24*time.Hour, 10, 10)
		sessions.EXPECT().GetOrCreate(ctx, uint64(1), "dog-catcher").Return(session, nil).Once()

		got, err := tracker.CanPlay(ctx, 1, "dog-catcher")

		require.NoError(t, err)
		assert.True(t, got.CanPlay)
	})

	t.Run("Storage failure degrades open", func(t *testing.T) {
		tracker, sessions, logger := newTracker(t, true)
		sessions.EXPECT().GetOrCreate(ctx, uint64(1), "dog-catcher").
			Return(nil, fmt.Errorf("%w: connection refused", errs.ErrDatabaseConnection)).Once()
		logger.EXPECT().Warn(mock.Anything, mock.MatchedBy(func(fields map[string]any) bool {
			return fields["policy"] == "degrade_open"
		})).Once()

		got, err := tracker.CanPlay(ctx, 1, "dog-catcher")

		require.NoError(t, err)
		assert.True(t, got.CanPlay)
		assert.True(t, got.Degraded)
		assert.Equal(t, fixedNow, got.NextAvailable)
	})

	t.Run("Storage failure fails closed when degrade open is disabled", func(t *testing.T) {
		tracker, sessions, logger := newTracker(t, false)
		sessions.EXPECT().GetOrCreate(ctx, uint64(1), "dog-catcher").Return(nil, errs.ErrDatabaseConnection).Once()
		logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		got, err := tracker.CanPlay(ctx, 1, "dog-catcher")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Nil(t, got)
	})

	t.Run("Unknown user is not degraded", func(t *testing.T) {
		tracker, sessions, _ := newTracker(t, true)
		sessions.EXPECT().GetOrCreate(ctx, uint64(9), "dog-catcher").Return(nil, errs.ErrUserNotFound).Once()

		got, err := tracker.CanPlay(ctx, 9, "dog-catcher")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, got)
	})

	t.Run("Unknown game", func(t *testing.T) {
		tracker, _, _ := newTracker(t, true)

		got, err := tracker.CanPlay(ctx, 1, "space-invaders")

		assert.ErrorIs(t, err, errs.ErrGameNotFound)
		assert.Nil(t, got)
	})

	t.Run("Invalid user ID", func(t *testing.T) {
		tracker, _, _ := newTracker(t, true)

		got, err := tracker.CanPlay(ctx, 0, "dog-catcher")

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, got)
	})
}

package minigame

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/minigame-rewards/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/minigame-rewards/mocks/port/persistence"
)

func TestLeaderboardService_Get(t *testing.T) {
	ctx := context.Background()
	top := []entity.LeaderboardEntry{
		{UserID: 3, Username: "carol", Score: 290, Rank: 1},
		{UserID: 1, Username: "alice", Score: 150, Rank: 2},
	}

	setup := func(t *testing.T) (*LeaderboardService, *persistencemocks.MockResultRepository) {
		results := persistencemocks.NewMockResultRepository(t)
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Now().Return(fixedNow).Maybe()
		return NewLeaderboardService(testCatalog(t), results, clock, 10), results
	}

	t.Run("Weekly board with the caller's rank", func(t *testing.T) {
		svc, results := setup(t)
		since := fixedNow.AddDate(0, 0, -7)
		rank := &entity.UserRank{LeaderboardEntry: top[1], TotalPlayers: 2}
		results.EXPECT().Leaderboard(ctx, "dog-catcher", since, 10).Return(top, nil).Once()
		results.EXPECT().UserRank(ctx, "dog-catcher", since, uint64(1)).Return(rank, nil).Once()

		got, err := svc.Get(ctx, "dog-catcher", entity.PeriodWeekly, 1)

		require.NoError(t, err)
		assert.Equal(t, top, got.Entries)
		assert.Equal(t, entity.PeriodWeekly, got.Period)
		require.NotNil(t, got.User)
		assert.Equal(t, int64(2), got.User.Rank)
	})

	t.Run("Caller without plays gets no rank", func(t *testing.T) {
		svc, results := setup(t)
		since := fixedNow.Add(-24 * time.Hour)
		results.EXPECT().Leaderboard(ctx, "dog-catcher", since, 10).Return(top, nil).Once()
		results.EXPECT().UserRank(ctx, "dog-catcher", since, uint64(5)).Return(nil, errs.ErrNotFound).Once()

		got, err := svc.Get(ctx, "dog-catcher", entity.PeriodDaily, 5)

		require.NoError(t, err)
		assert.Nil(t, got.User)
		assert.Len(t, got.Entries, 2)
	})

	t.Run("All time board without a caller", func(t *testing.T) {
		svc, results := setup(t)
		results.EXPECT().Leaderboard(ctx, "brick-stacker", entity.NeverPlayed, 10).Return(nil, nil).Once()

		got, err := svc.Get(ctx, "brick-stacker", entity.PeriodAll, 0)

		require.NoError(t, err)
		assert.Empty(t, got.Entries)
	})

	t.Run("Storage error is returned", func(t *testing.T) {
		svc, results := setup(t)
		results.EXPECT().Leaderboard(ctx, "dog-catcher", fixedNow.AddDate(0, 0, -30), 10).
			Return(nil, errs.ErrDatabaseConnection).Once()

		_, err := svc.Get(ctx, "dog-catcher", entity.PeriodMonthly, 0)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("Unknown period", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.Get(ctx, "dog-catcher", entity.LeaderboardPeriod("yearly"), 0)

		assert.ErrorIs(t, err, errs.ErrInvalidPeriod)
	})

	t.Run("Unknown game", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.Get(ctx, "pinball", entity.PeriodWeekly, 0)

		assert.ErrorIs(t, err, errs.ErrGameNotFound)
	})
}

package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/minigame-rewards/mocks/port/persistence"
)

type countingPruner struct{ calls int }

func (p *countingPruner) Prune() int {
	p.calls++
	return 2
}

type stubSampler struct{ err error }

func (s stubSampler) Collect() (database.ConnectionPoolMetrics, error) {
	return database.ConnectionPoolMetrics{InUse: 1, MaxOpenConnections: 10}, s.err
}

func TestScheduler_RegisterRejectsBadSpec(t *testing.T) {
	s := NewScheduler(logger.NewNoopLogger())

	err := s.Register(Job{Name: "broken", Spec: "not a cron", Run: func(context.Context) error { return nil }})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestScheduler_RegisterDuplicate(t *testing.T) {
	s := NewScheduler(logger.NewNoopLogger())
	job := Job{Name: "tick", Spec: "@every 1m", Run: func(context.Context) error { return nil }}

	require.NoError(t, s.Register(job))
	assert.Error(t, s.Register(job))
}

func TestScheduler_EmptySpecDisablesJob(t *testing.T) {
	s := NewScheduler(logger.NewNoopLogger())
	require.NoError(t, s.Register(Job{Name: "off", Spec: "", Run: func(context.Context) error { return nil }}))

	assert.Error(t, s.RunNow(context.Background(), "off"))
}

func TestScheduler_SecondsFieldAccepted(t *testing.T) {
	s := NewScheduler(logger.NewNoopLogger())
	assert.NoError(t, s.Register(Job{Name: "fast", Spec: "*/30 * * * * *", Run: func(context.Context) error { return nil }}))
	assert.NoError(t, s.Register(Job{Name: "slow", Spec: "0 */5 * * *", Run: func(context.Context) error { return nil }}))
}

func TestMaintenanceJobs(t *testing.T) {
	ctx := context.Background()
	locks := persistence.NewMockUserLockRepository(t)
	locks.EXPECT().CleanupExpiredLocks(mock.Anything).Return(int64(3), nil).Once()
	pruner := &countingPruner{}

	s := NewScheduler(logger.NewNoopLogger())
	jobs := MaintenanceJobs(Specs{
		LockCleanup:  "@every 1m",
		LimiterPrune: "@every 5m",
		PoolStats:    "@every 30s",
	}, locks, pruner, stubSampler{}, logger.NewNoopLogger())
	require.Len(t, jobs, 3)

	for _, job := range jobs {
		require.NoError(t, s.Register(job))
	}

	assert.NoError(t, s.RunNow(ctx, JobLockCleanup))
	assert.NoError(t, s.RunNow(ctx, JobLimiterPrune))
	assert.NoError(t, s.RunNow(ctx, JobPoolStats))
	assert.Equal(t, 1, pruner.calls)
}

func TestMaintenanceJobs_ErrorsSurface(t *testing.T) {
	ctx := context.Background()
	locks := persistence.NewMockUserLockRepository(t)
	locks.EXPECT().CleanupExpiredLocks(mock.Anything).Return(int64(0), errors.New("db down")).Once()

	s := NewScheduler(logger.NewNoopLogger())
	for _, job := range MaintenanceJobs(Specs{LockCleanup: "@every 1m", PoolStats: "@every 1m"}, locks, nil, stubSampler{err: errors.New("no pool")}, logger.NewNoopLogger()) {
		require.NoError(t, s.Register(job))
	}

	assert.EqualError(t, s.RunNow(ctx, JobLockCleanup), "db down")
	assert.EqualError(t, s.RunNow(ctx, JobPoolStats), "no pool")
	assert.Error(t, s.RunNow(ctx, JobLimiterPrune))
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler(logger.NewNoopLogger())
	require.NoError(t, s.Register(Job{Name: "tick", Spec: "@every 1h", Run: func(context.Context) error { return nil }}))
	s.Start()
	s.Stop()
}

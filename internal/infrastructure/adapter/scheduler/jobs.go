package scheduler

import (
	"context"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/database"
)

// Job names
const (
	JobLockCleanup  = "lock_cleanup"
	JobLimiterPrune = "limiter_prune"
	JobPoolStats    = "pool_stats"
)

// Specs holds the cron expressions for the maintenance jobs
type Specs struct {
	LockCleanup  string
	LimiterPrune string
	PoolStats    string
}

// Pruner drops idle rate limiter state
type Pruner interface {
	Prune() int
}

// PoolSampler samples connection pool statistics
type PoolSampler interface {
	Collect() (database.ConnectionPoolMetrics, error)
}

// MaintenanceJobs builds the periodic housekeeping jobs. A nil dependency leaves its job out.
func MaintenanceJobs(specs Specs, locks persistence.UserLockRepository, limiter Pruner, pool PoolSampler, logger core.Logger) []Job {
	var jobs []Job

	if locks != nil {
		jobs = append(jobs, Job{
			Name: JobLockCleanup,
			Spec: specs.LockCleanup,
			Run: func(ctx context.Context) error {
				_, err := locks.CleanupExpiredLocks(ctx)
				return err
			},
		})
	}

	if limiter != nil {
		jobs = append(jobs, Job{
			Name: JobLimiterPrune,
			Spec: specs.LimiterPrune,
			Run: func(ctx context.Context) error {
				if removed := limiter.Prune(); removed > 0 {
					logger.Debug("Rate limiter pruned", map[string]any{"keys_removed": removed})
				}
				return nil
			},
		})
	}

	if pool != nil {
		jobs = append(jobs, Job{
			Name: JobPoolStats,
			Spec: specs.PoolStats,
			Run: func(ctx context.Context) error {
				_, err := pool.Collect()
				return err
			},
		})
	}

	return jobs
}

package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes the ORM tags cannot express
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

var advancedIndexes = []struct {
	name string
	sql  string
}{
	{
		// leaderboard window scan: game, then time range, then score
		name: "idx_results_game_played_score",
		sql: `CREATE INDEX IF NOT EXISTS idx_results_game_played_score
			ON mini_game_results (game_id, played_at DESC, score DESC)`,
	},
	{
		name: "idx_results_user_game",
		sql: `CREATE INDEX IF NOT EXISTS idx_results_user_game
			ON mini_game_results (user_id, game_id)`,
	},
	{
		name: "idx_results_played_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_results_played_at_brin
			ON mini_game_results USING BRIN (played_at)
			WITH (pages_per_range = 32)`,
	},
	{
		// newest-first ledger listing per user
		name: "idx_transactions_user_created",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_user_created
			ON transactions (user_id, created_at DESC, id DESC)`,
	},
	{
		name: "idx_transactions_rewards",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_rewards
			ON transactions (user_id, currency)
			WHERE type = 'mini_game_reward'`,
	},
	{
		name: "idx_user_locks_expires_at",
		sql: `CREATE INDEX IF NOT EXISTS idx_user_locks_expires_at
			ON user_locks (expires_at)`,
	},
}

// CreateAdvancedIndexes creates every index that does not exist yet
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	for _, idx := range advancedIndexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", map[string]any{
		"count": len(advancedIndexes),
	})
	return nil
}

// CreatePerformanceTweaks tunes storage parameters. Failures are logged and ignored.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	tweaks := []string{
		// sessions are updated in place on every play
		`ALTER TABLE mini_game_sessions SET (fillfactor = 80)`,
		`ALTER TABLE users SET (fillfactor = 90)`,
		`ALTER TABLE mini_game_results ALTER COLUMN game_id SET STATISTICS 500`,
	}
	for _, stmt := range tweaks {
		if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"statement": stmt,
				"error":     err.Error(),
			})
		}
	}
}

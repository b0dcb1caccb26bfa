package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
)

// BalanceConstraints adds the CHECK constraints that keep balances and rewards non-negative
type BalanceConstraints struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewBalanceConstraints creates a new migration instance
func NewBalanceConstraints(db *gorm.DB, logger coreport.Logger) *BalanceConstraints {
	return &BalanceConstraints{
		db:     db,
		logger: logger,
	}
}

var balanceConstraints = []struct {
	table, name, check string
}{
	{"users", "chk_users_gc_balance_non_negative", "gc_balance >= 0"},
	{"users", "chk_users_sc_balance_non_negative", "sc_balance >= 0"},
	{"mini_game_results", "chk_results_rewards_non_negative", "sc_earned >= 0 AND gc_earned >= 0"},
	{"mini_game_sessions", "chk_sessions_cooldown_order", "next_available >= last_played"},
	{"transactions", "chk_transactions_snapshot", "new_balance - previous_balance = amount"},
}

// Run adds each constraint that is not present yet
func (m *BalanceConstraints) Run(ctx context.Context) error {
	existing, err := m.existingConstraints(ctx)
	if err != nil {
		return err
	}

	for _, c := range balanceConstraints {
		if existing[c.name] {
			continue
		}
		stmt := "ALTER TABLE " + c.table + " ADD CONSTRAINT " + c.name + " CHECK (" + c.check + ")"
		if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			m.logger.Error("Failed to add constraint", map[string]any{
				"constraint": c.name,
				"error":      err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Balance constraints in place", nil)
	return nil
}

func (m *BalanceConstraints) existingConstraints(ctx context.Context) (map[string]bool, error) {
	var names []string
	err := m.db.WithContext(ctx).Raw(`
		SELECT conname
		FROM pg_constraint
		WHERE contype = 'c' AND conname LIKE 'chk\_%'
	`).Scan(&names).Error
	if err != nil {
		m.logger.Error("Failed to read existing constraints", map[string]any{"error": err.Error()})
		return nil, err
	}

	out := make(map[string]bool, len(names))
	for _, n := range names {
		out[n] = true
	}
	return out, nil
}

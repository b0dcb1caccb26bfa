package model

import (
	"time"

	"gorm.io/datatypes"
)

// MiniGameResult is one append-only completed play
type MiniGameResult struct {
	ID           string            `gorm:"primaryKey;size:26"`
	AttemptID    *string           `gorm:"uniqueIndex;size:64"`
	UserID       uint64            `gorm:"not null;index"`
	GameID       string            `gorm:"not null;size:64"`
	Score        int64             `gorm:"not null"`
	PenaltyUnits int64             `gorm:"not null;default:0"`
	SCEarned     int64             `gorm:"column:sc_earned;not null"`
	GCEarned     int64             `gorm:"column:gc_earned;not null"`
	DurationMs   int64             `gorm:"not null"`
	PlayedAt     time.Time         `gorm:"not null"`
	Telemetry    datatypes.JSONMap `gorm:"type:jsonb"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for MiniGameResult
func (MiniGameResult) TableName() string {
	return "mini_game_results"
}

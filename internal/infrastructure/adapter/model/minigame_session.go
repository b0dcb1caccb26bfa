package model

import (
	"time"
)

// MiniGameSession is the cooldown row for one user and game.
// The composite primary key serializes concurrent first plays.
type MiniGameSession struct {
	UserID        uint64    `gorm:"primaryKey;autoIncrement:false"`
	GameID        string    `gorm:"primaryKey;size:64"`
	LastPlayed    time.Time `gorm:"not null"`
	NextAvailable time.Time `gorm:"not null"`
	TotalPlays    int64     `gorm:"not null;default:0"`
	BestScore     int64     `gorm:"not null;default:0"`
	TotalSCEarned int64     `gorm:"column:total_sc_earned;not null;default:0"`
	UpdatedAt     time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for MiniGameSession
func (MiniGameSession) TableName() string {
	return "mini_game_sessions"
}

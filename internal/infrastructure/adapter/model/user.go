package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID               uint64    `gorm:"primaryKey"`
	Username         string    `gorm:"size:64;not null;default:''"`
	GCBalance        int64     `gorm:"column:gc_balance;not null;default:0"` // Gold Coins in minor units
	SCBalance        int64     `gorm:"column:sc_balance;not null;default:0"` // Sweeps Coins in minor units
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
	TransactionCount uint64    `gorm:"default:0"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

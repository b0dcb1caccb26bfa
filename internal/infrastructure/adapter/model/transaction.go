package model

import (
	"time"
)

// Transaction represents the database model for ledger entries
type Transaction struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	Reference       string    `gorm:"uniqueIndex;not null;size:64"`
	UserID          uint64    `gorm:"not null;index"`
	Type            string    `gorm:"not null;size:32"`
	Currency        string    `gorm:"not null;size:2"`
	Amount          int64     `gorm:"not null"`
	PreviousBalance int64     `gorm:"not null"`
	NewBalance      int64     `gorm:"not null"`
	Description     string    `gorm:"size:255"`
	Status          string    `gorm:"not null;size:16"`
	ResultID        *string   `gorm:"size:26;index"`
	CreatedAt       time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

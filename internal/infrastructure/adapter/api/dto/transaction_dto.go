package dto

import "time"

// TransactionDTO is one ledger entry as returned by the API
type TransactionDTO struct {
	ID              uint64    `json:"id"`
	Reference       string    `json:"reference"`
	Type            string    `json:"type"`
	Currency        string    `json:"currency"`
	Amount          string    `json:"amount"`
	PreviousBalance string    `json:"previousBalance"`
	NewBalance      string    `json:"newBalance"`
	Description     string    `json:"description,omitempty"`
	Status          string    `json:"status"`
	ResultID        string    `json:"resultId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// TransactionListResponse wraps a user's newest ledger entries
type TransactionListResponse struct {
	UserID       uint64           `json:"userId"`
	Transactions []TransactionDTO `json:"transactions"`
}

package dto

// BalanceResponse represents the API response for a user's balances
type BalanceResponse struct {
	UserID uint64 `json:"userId"`
	GC     string `json:"gc"`
	SC     string `json:"sc"`
}

// CurrencyAmounts is a pair of formatted SC and GC amounts
type CurrencyAmounts struct {
	SC string `json:"sc"`
	GC string `json:"gc"`
}

package entity

import (
	"fmt"

	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
)

// Currency identifies one of the two platform balances
type Currency string

const (
	// CurrencyGC is Gold Coins, entertainment-only play money
	CurrencyGC Currency = "GC"
	// CurrencySC is Sweeps Coins, redeemable and therefore tightly controlled
	CurrencySC Currency = "SC"
)

// Currencies lists every supported currency in ledger order
var Currencies = []Currency{CurrencySC, CurrencyGC}

// ParseCurrency validates a currency code
func ParseCurrency(code string) (Currency, error) {
	switch Currency(code) {
	case CurrencyGC, CurrencySC:
		return Currency(code), nil
	default:
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidCurrency, code)
	}
}

// Balances holds one amount per currency in minor units
type Balances struct {
	GC int64
	SC int64
}

// Get returns the amount held for the currency
func (b Balances) Get(c Currency) int64 {
	if c == CurrencyGC {
		return b.GC
	}
	return b.SC
}

// IsZero reports whether both amounts are zero
func (b Balances) IsZero() bool {
	return b.GC == 0 && b.SC == 0
}

// Formatted renders both amounts as two-decimal strings
func (b Balances) Formatted() (gc, sc string) {
	return AmountInCentsToString(b.GC), AmountInCentsToString(b.SC)
}

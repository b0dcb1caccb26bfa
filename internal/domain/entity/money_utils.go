package entity

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for coin amounts
const MaxDecimalPlaces = 2

// centsFactor converts between whole coins and minor units
var centsFactor = decimal.NewFromInt(100)

// ValidateAndConvertAmount parses a decimal coin string such as "1.25" into minor units.
// Negative values, more than two decimal places and values that do not fit into int64 are rejected.
func ValidateAndConvertAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, amount)
	}

	if d.IsNegative() {
		return 0, errs.ErrNegativeAmount
	}

	if d.Exponent() < -MaxDecimalPlaces && !d.Equal(d.Truncate(MaxDecimalPlaces)) {
		return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	return DecimalToCents(d)
}

// DecimalToCents truncates a decimal coin value to minor units.
func DecimalToCents(d decimal.Decimal) (int64, error) {
	cents := d.Mul(centsFactor).Truncate(0)
	if cents.GreaterThan(decimal.NewFromInt(math.MaxInt64)) || cents.LessThan(decimal.NewFromInt(math.MinInt64)) {
		return 0, errs.ErrAmountOverflow
	}
	return cents.IntPart(), nil
}

// CentsToDecimal converts minor units into a decimal coin value
func CentsToDecimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -MaxDecimalPlaces)
}

// AmountInCentsToString converts minor units to a string with exactly two decimal places.
// For example 1015 becomes "10.15" and -5 becomes "-0.05".
func AmountInCentsToString(amountInCents int64) string {
	return CentsToDecimal(amountInCents).StringFixed(MaxDecimalPlaces)
}

package entity

import (
	"testing"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestValidateAndConvertAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"100.00", 10000},
			{"0.01", 1},
			{"0.10", 10},
			{"1", 100},
			{"1.5", 150},
			{"1234567.89", 123456789},
			{"0.00", 0},
			{"0", 0},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				cents, err := ValidateAndConvertAmount(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, cents)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			errorType   error
			description string
		}{
			{"", errs.ErrInvalidAmount, "Empty string"},
			{"   ", errs.ErrInvalidAmount, "Whitespace only"},
			{"-1.00", errs.ErrNegativeAmount, "Negative amount"},
			{"1.234", errs.ErrInvalidAmount, "Too many decimal places"},
			{"abc", errs.ErrInvalidAmount, "Non-numeric"},
			{"1,000.00", errs.ErrInvalidAmount, "Comma as thousands separator"},
			{"1.00.00", errs.ErrInvalidAmount, "Multiple decimal points"},
			{"$100", errs.ErrInvalidAmount, "Currency symbol"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ValidateAndConvertAmount(tc.input)
				assert.Error(t, err)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})

	t.Run("Edge cases", func(t *testing.T) {
		// Very large valid number
		cents, err := ValidateAndConvertAmount("9999999999.99")
		assert.NoError(t, err)
		assert.Equal(t, int64(999999999999), cents)

		// Trailing zeros beyond two places are harmless
		cents, err = ValidateAndConvertAmount("1.500")
		assert.NoError(t, err)
		assert.Equal(t, int64(150), cents)

		// Surrounding whitespace is trimmed
		cents, err = ValidateAndConvertAmount(" 2.25 ")
		assert.NoError(t, err)
		assert.Equal(t, int64(225), cents)

		// Does not fit into int64 minor units
		_, err = ValidateAndConvertAmount("92233720368547758.08")
		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
	})
}

func TestAmountInCentsToString(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{10000, "100.00"},
		{1, "0.01"},
		{10, "0.10"},
		{100, "1.00"},
		{150, "1.50"},
		{123456789, "1234567.89"},
		{0, "0.00"},
		{-10000, "-100.00"},
		{-1, "-0.01"},
		{2147483647, "21474836.47"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			result := AmountInCentsToString(tc.cents)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Test conversion round trip: string -> cents -> string
	testCases := []string{
		"0.00",
		"0.01",
		"1.00",
		"10.50",
		"1234.56",
		"9999999.99",
	}

	for _, tc := range testCases {
		t.Run(tc, func(t *testing.T) {
			cents, err := ValidateAndConvertAmount(tc)
			assert.NoError(t, err)

			result := AmountInCentsToString(cents)
			assert.Equal(t, tc, result)
		})
	}
}

func TestDecimalToCents(t *testing.T) {
	testCases := []struct {
		input    string
		expected int64
	}{
		{"1.50", 150},
		{"0.999", 99},
		{"0.004", 0},
		{"150", 15000},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			cents, err := DecimalToCents(decimal.RequireFromString(tc.input))
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, cents)
		})
	}

	t.Run("Overflow", func(t *testing.T) {
		_, err := DecimalToCents(decimal.RequireFromString("1e30"))
		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
	})
}

func TestCentsToDecimal(t *testing.T) {
	assert.True(t, CentsToDecimal(125).Equal(decimal.RequireFromString("1.25")))
	assert.True(t, CentsToDecimal(0).IsZero())
}

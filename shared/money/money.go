// Package money handles the decimal strings prices travel as. Amounts are
// never converted to floating point.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const scale = 2

var (
	ErrInvalidAmount  = errors.New("amount must be a decimal number")
	ErrNegativeAmount = errors.New("amount must not be negative")
)

// Parse reads a non-negative decimal amount such as "299.00".
func Parse(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}

	if amount.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}

	return amount, nil
}

// Format renders an amount with two decimal places.
func Format(amount decimal.Decimal) string {
	return amount.StringFixed(scale)
}

// Total multiplies a nightly price by a number of nights.
func Total(price string, nights int) (string, error) {
	amount, err := Parse(price)
	if err != nil {
		return "", fmt.Errorf("invalid price %q: %w", price, err)
	}

	return Format(amount.Mul(decimal.NewFromInt(int64(nights)))), nil
}

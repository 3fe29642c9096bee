package decimal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when user input cannot be read as an amount.
var ErrInvalidAmount = errors.New("invalid amount")

// Money represents a currency amount entered by a user or produced by a projection
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a plain numeric string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// amountReplacer strips currency glyphs, codes, and digit grouping from user input.
var amountReplacer = strings.NewReplacer(
	",", "",
	"_", "",
	" ", "",
	"\u00a0", "",
	"₹", "",
	"$", "",
	"Rs.", "",
	"Rs", "",
	"INR", "",
)

// ParseAmount reads a user-entered amount such as "₹ 1,00,000" or "2500.50".
func ParseAmount(input string) (Money, error) {
	cleaned := amountReplacer.Replace(strings.TrimSpace(input))
	if cleaned == "" {
		return Money{}, fmt.Errorf("%w: empty input", ErrInvalidAmount)
	}
	m, err := NewMoneyFromString(cleaned)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, input)
	}
	return m, nil
}

// Float returns the amount as a float64 for formula evaluation
func (m Money) Float() float64 {
	return m.Decimal.InexactFloat64()
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Whole rounds to the nearest whole currency unit, halves away from zero
func (m Money) Whole() Money {
	return Money{m.Decimal.Round(0)}
}

// Ceil rounds up to the next whole currency unit
func (m Money) Ceil() Money {
	return Money{m.Decimal.Ceil()}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// String returns the string representation with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the amount for display in the given ISO currency
func (m Money) Format(currency string) string {
	return FormatAmount(m.Decimal, currency)
}

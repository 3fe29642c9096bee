package decimal

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrency is the display currency when none is configured.
const DefaultCurrency = "INR"

// indianPrinter groups digits the en-IN way: 1,00,000 and 1,00,00,000.
var indianPrinter = message.NewPrinter(language.MustParse("en-IN"))

// LookupCurrency returns the go-money currency for code, falling back to DefaultCurrency.
func LookupCurrency(code string) *money.Currency {
	if c := money.GetCurrency(strings.ToUpper(strings.TrimSpace(code))); c != nil {
		return c
	}
	return money.GetCurrency(DefaultCurrency)
}

// FormatAmount renders an amount with its currency glyph. Rupee amounts use
// Indian digit grouping ("₹ 1,00,000") and drop paise for whole values; other
// currencies use go-money's own formatter.
func FormatAmount(amount decimal.Decimal, code string) string {
	cur := LookupCurrency(code)
	if cur.Code != DefaultCurrency {
		minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
		return money.New(minor, cur.Code).Display()
	}

	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	rounded := NewMoneyFromDecimal(amount).Round()
	whole := rounded.Truncate(0)
	text := indianDigits(whole)
	if !rounded.Decimal.Equal(whole) {
		fraction := rounded.Decimal.Sub(whole).StringFixed(2)
		text += strings.TrimPrefix(fraction, "0")
	}
	return sign + cur.Grapheme + " " + text
}

func indianDigits(whole decimal.Decimal) string {
	if whole.LessThanOrEqual(decimal.NewFromInt(math.MaxInt64)) {
		return indianPrinter.Sprintf("%d", whole.IntPart())
	}
	return indianPrinter.Sprintf("%.0f", whole.InexactFloat64())
}

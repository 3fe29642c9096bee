package output

import (
	"fmt"

	"github.com/rpgo/rd-calculator/internal/domain"
	rdmoney "github.com/rpgo/rd-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// GenericDepositHeading is shown above the required-deposit table until a goal is entered.
const GenericDepositHeading = "Required Monthly Deposit (1 to 5 Years)"

// FormatCurrency formats an amount in the result's display currency.
func FormatCurrency(amount decimal.Decimal, currency string) string {
	return rdmoney.NewMoneyFromDecimal(amount).Format(currency)
}

// FormatPercentage formats a rate in percent with 2 decimals.
func FormatPercentage(rate float64) string {
	return decimal.NewFromFloat(rate).StringFixed(2) + "%"
}

// PeriodLabel renders a duration as "1 Year", "2 Years", ...
func PeriodLabel(years int) string {
	if years == 1 {
		return "1 Year"
	}
	return fmt.Sprintf("%d Years", years)
}

// ValueColumn names the value column for the result kind.
func ValueColumn(kind domain.ProjectionKind) string {
	if kind == domain.KindRequiredDeposit {
		return "Monthly Deposit"
	}
	return "Maturity Amount"
}

// Heading returns the title shown above a result table.
func Heading(r *domain.ProjectionResult) string {
	if r.Kind == domain.KindRequiredDeposit {
		if r.IsEmpty() {
			return GenericDepositHeading
		}
		return fmt.Sprintf("Goal of %s: Monthly RD Contribution", FormatCurrency(r.Amount, r.Currency))
	}
	return "Maturity Amount (1 to 5 Years)"
}

// Placeholder is rendered instead of a table when the amount was rejected.
func Placeholder(r *domain.ProjectionResult) string {
	minimum := r.Minimum
	if minimum.IsZero() {
		minimum = decimal.NewFromFloat(domain.DefaultMinimumAmount)
	}
	what := "a monthly deposit"
	if r.Kind == domain.KindRequiredDeposit {
		what = "a target amount"
	}
	return fmt.Sprintf("Enter %s of at least %s to see projections.", what, FormatCurrency(minimum, r.Currency))
}

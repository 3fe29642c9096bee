package calculation

import (
	"math"

	"github.com/rpgo/rd-calculator/internal/domain"
	rdmoney "github.com/rpgo/rd-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ProjectionEngine evaluates maturity and required-deposit projections.
// It holds no state besides its logger, so one engine can serve any number of calls.
type ProjectionEngine struct {
	Logger Logger
}

// NewProjectionEngine creates a projection engine with a no-op logger
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

func (pe *ProjectionEngine) logger() Logger {
	if pe == nil || pe.Logger == nil {
		return NopLogger{}
	}
	return pe.Logger
}

// ProjectMaturity returns the rounded maturity value of a monthly deposit for
// each duration of the horizon. Amounts that are not finite or fall below the
// plan minimum yield an empty result.
func (pe *ProjectionEngine) ProjectMaturity(principal float64, plan *Plan) domain.ProjectionResult {
	result := pe.newResult(domain.KindMaturity, principal, plan)
	if !pe.acceptAmount(principal, plan) {
		return result
	}

	rows := make([]domain.ProjectionRow, 0, domain.MaxDurationYears)
	for years := domain.MinDurationYears; years <= domain.MaxDurationYears; years++ {
		rate := plan.Rates.RateForDuration(years)
		factor := AnnuityFactor(years, rate, plan.Compounding)
		if factor == 0 {
			pe.logger().Debugf("plan %s: degenerate annuity factor at %d year(s), rate %v%%", plan.Name, years, rate)
		}
		if !pe.finite(plan, years, factor, principal*factor) {
			return result
		}
		value := rdmoney.NewMoney(principal * factor).Whole()

		row := domain.ProjectionRow{
			DurationYears:     years,
			Value:             value.Decimal,
			Rounding:          domain.RoundNearest,
			AnnualRatePercent: rate,
			Factor:            factor,
			TotalDeposited:    decimal.Zero,
			InterestEarned:    decimal.Zero,
		}
		if factor > 0 {
			deposited := rdmoney.NewMoney(principal).Mul(installments(years, plan))
			row.TotalDeposited = deposited
			row.InterestEarned = value.Sub(rdmoney.NewMoneyFromDecimal(deposited)).Decimal
		}
		rows = append(rows, row)
	}
	result.Rows = rows
	return result
}

// ProjectRequiredDeposit returns, for each duration, the monthly deposit needed
// to reach target, rounded up so the deposit is never under-quoted.
func (pe *ProjectionEngine) ProjectRequiredDeposit(target float64, plan *Plan) domain.ProjectionResult {
	result := pe.newResult(domain.KindRequiredDeposit, target, plan)
	if !pe.acceptAmount(target, plan) {
		return result
	}

	rows := make([]domain.ProjectionRow, 0, domain.MaxDurationYears)
	for years := domain.MinDurationYears; years <= domain.MaxDurationYears; years++ {
		rate := plan.Rates.RateForDuration(years)
		factor := AnnuityFactor(years, rate, plan.Compounding)

		required := 0.0
		if factor > 0 {
			required = target / factor
		} else {
			pe.logger().Debugf("plan %s: degenerate annuity factor at %d year(s), rate %v%%", plan.Name, years, rate)
		}
		if !pe.finite(plan, years, factor, required) {
			return result
		}
		value := rdmoney.NewMoney(required).Ceil()

		row := domain.ProjectionRow{
			DurationYears:     years,
			Value:             value.Decimal,
			Rounding:          domain.RoundUp,
			AnnualRatePercent: rate,
			Factor:            factor,
			TotalDeposited:    decimal.Zero,
			InterestEarned:    decimal.Zero,
		}
		if factor > 0 {
			deposited := value.Mul(installments(years, plan))
			row.TotalDeposited = deposited
			row.InterestEarned = rdmoney.NewMoney(target).Sub(rdmoney.NewMoneyFromDecimal(deposited)).Decimal
		}
		rows = append(rows, row)
	}
	result.Rows = rows
	return result
}

// finite reports whether a row can be represented; overflowing rows reject the whole result.
func (pe *ProjectionEngine) finite(plan *Plan, years int, factor, value float64) bool {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || math.IsNaN(value) || math.IsInf(value, 0) {
		pe.logger().Debugf("plan %s: projection overflows at %d year(s) (factor %v)", plan.Name, years, factor)
		return false
	}
	return true
}

func (pe *ProjectionEngine) newResult(kind domain.ProjectionKind, amount float64, plan *Plan) domain.ProjectionResult {
	result := domain.ProjectionResult{Kind: kind, Amount: decimal.Zero, Rows: []domain.ProjectionRow{}}
	if plan != nil {
		result.Plan = plan.Name
		result.Compounding = plan.Compounding.Name
		result.Minimum = decimal.NewFromFloat(plan.Minimum())
	}
	if !math.IsNaN(amount) && !math.IsInf(amount, 0) {
		result.Amount = decimal.NewFromFloat(amount)
	}
	return result
}

// acceptAmount applies the minimum-contribution floor.
func (pe *ProjectionEngine) acceptAmount(amount float64, plan *Plan) bool {
	if plan == nil || plan.Rates == nil {
		pe.logger().Warnf("projection requested without a rate plan")
		return false
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		pe.logger().Debugf("plan %s: rejecting non-numeric amount", plan.Name)
		return false
	}
	if amount < plan.Minimum() {
		pe.logger().Debugf("plan %s: amount %v below minimum %v", plan.Name, amount, plan.Minimum())
		return false
	}
	return true
}

func installments(years int, plan *Plan) decimal.Decimal {
	perYear := plan.Compounding.DepositsPerYear
	if perYear <= 0 {
		perYear = domain.DepositsPerYear
	}
	return decimal.NewFromInt(int64(years * perYear))
}

// ProjectMaturity runs a maturity projection with a no-op logger.
func ProjectMaturity(principal float64, plan *Plan) domain.ProjectionResult {
	return NewProjectionEngine().ProjectMaturity(principal, plan)
}

// ProjectRequiredDeposit runs a required-deposit projection with a no-op logger.
func ProjectRequiredDeposit(target float64, plan *Plan) domain.ProjectionResult {
	return NewProjectionEngine().ProjectRequiredDeposit(target, plan)
}

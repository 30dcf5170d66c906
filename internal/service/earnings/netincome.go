package earnings

import (
	"github.com/lavorotracker/paycalc-backend-go/internal/domain/earnings"
	"github.com/lavorotracker/paycalc-backend-go/internal/domain/settings"
	"github.com/shopspring/decimal"
)

// Progressive estimate constants: IRPEF brackets on annualized taxable income
// plus the employee social-contribution share and a local surcharge.
var (
	inpsRate           = decimal.RequireFromString("0.0919")
	localSurchargeRate = decimal.RequireFromString("0.0173")
	twelve             = decimal.NewFromInt(12)
	hundred            = decimal.NewFromInt(100)

	irpefBrackets = []struct {
		upTo decimal.Decimal // annual taxable ceiling; zero means unbounded
		rate decimal.Decimal
	}{
		{decimal.NewFromInt(28000), decimal.RequireFromString("0.23")},
		{decimal.NewFromInt(50000), decimal.RequireFromString("0.35")},
		{decimal.Zero, decimal.RequireFromString("0.43")},
	}
)

// NetEstimator converts a gross monthly figure into a net estimate.
type NetEstimator struct {
	cfg settings.CalcSettings
}

func NewNetEstimator(cfg settings.CalcSettings) *NetEstimator {
	return &NetEstimator{cfg: cfg}
}

// Estimate derives a deduction percentage and applies it to the literal gross.
//
// When the contract-base flag is set, the percentage is derived from the
// contractual monthly base instead of the input figure, so the rate stays
// stable across months of varying actual hours.
func (e *NetEstimator) Estimate(gross decimal.Decimal) earnings.NetIncomeResult {
	figure := gross
	if e.cfg.NetUseContractBase && e.cfg.BaseMonthlyGross.IsPositive() {
		figure = e.cfg.BaseMonthlyGross
	}

	var rate decimal.Decimal
	switch e.cfg.NetMethod {
	case settings.NetFlat:
		rate = e.cfg.NetFlatRate.Div(hundred)
	default:
		rate = progressiveRate(figure)
	}

	deductions := gross.Mul(rate)
	result := earnings.NetIncomeResult{
		Gross:      gross,
		Net:        gross.Sub(deductions),
		Deductions: deductions,
		Method:     string(e.cfg.NetMethod),
	}
	if gross.IsPositive() {
		result.DeductionRate = deductions.Div(gross).Mul(hundred)
	}
	return result
}

// progressiveRate computes the overall monthly deduction fraction for the
// given monthly figure: contributions come off first, the remainder is
// annualized for IRPEF bracket placement, and the annual tax is folded back
// to one month along with the local surcharge.
func progressiveRate(monthly decimal.Decimal) decimal.Decimal {
	if !monthly.IsPositive() {
		return decimal.Zero
	}

	contributions := monthly.Mul(inpsRate)
	taxableMonthly := monthly.Sub(contributions)
	annualTaxable := taxableMonthly.Mul(twelve)

	tax := decimal.Zero
	lower := decimal.Zero
	for _, b := range irpefBrackets {
		upper := b.upTo
		if upper.IsZero() || annualTaxable.LessThan(upper) {
			upper = annualTaxable
		}
		if upper.GreaterThan(lower) {
			tax = tax.Add(upper.Sub(lower).Mul(b.rate))
		}
		if b.upTo.IsZero() || annualTaxable.LessThanOrEqual(b.upTo) {
			break
		}
		lower = b.upTo
	}

	deductions := contributions.
		Add(tax.Div(twelve)).
		Add(taxableMonthly.Mul(localSurchargeRate))

	return deductions.Div(monthly)
}

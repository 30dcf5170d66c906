package earnings

import (
	"testing"

	"github.com/lavorotracker/paycalc-backend-go/internal/domain/settings"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNetEstimator_FlatRate(t *testing.T) {
	t.Parallel()

	cfg := settings.Defaults("user-1")
	cfg.NetMethod = settings.NetFlat
	cfg.NetFlatRate = decimal.RequireFromString("27.0")

	res := NewNetEstimator(cfg).Estimate(decimal.NewFromInt(1000))

	assert.True(t, res.Deductions.Equal(decimal.NewFromInt(270)), "got %s", res.Deductions)
	assert.True(t, res.Net.Equal(decimal.NewFromInt(730)), "got %s", res.Net)
	assert.True(t, res.DeductionRate.Equal(decimal.NewFromInt(27)), "got %s", res.DeductionRate)
	assert.Equal(t, "flat", res.Method)
}

func TestNetEstimator_ProgressiveFirstBracket(t *testing.T) {
	t.Parallel()

	// 2000 gross: 183.80 contributions, 1816.20 taxable, 21794.40 annualized
	// stays in the 23% bracket. Monthly tax 417.726, surcharge 31.42026.
	res := NewNetEstimator(settings.Defaults("user-1")).Estimate(decimal.NewFromInt(2000))

	assert.True(t, res.Deductions.Equal(decimal.RequireFromString("632.94626")), "got %s", res.Deductions)
	assert.True(t, res.Net.Equal(decimal.RequireFromString("1367.05374")), "got %s", res.Net)
	assert.Equal(t, "progressive", res.Method)
}

func TestNetEstimator_ProgressiveBracketCrossing(t *testing.T) {
	t.Parallel()

	// 3000 gross annualizes to 32691.60 taxable: 28000 at 23% plus the
	// remainder at 35%.
	res := NewNetEstimator(settings.Defaults("user-1")).Estimate(decimal.NewFromInt(3000))

	// The derived rate is a non-terminating fraction here, so compare at a
	// cent-safe precision.
	assert.True(t, res.Deductions.Round(5).Equal(decimal.RequireFromString("996.33539")), "got %s", res.Deductions)
}

func TestNetEstimator_ContractBaseStabilizesRate(t *testing.T) {
	t.Parallel()

	cfg := settings.Defaults("user-1")
	cfg.NetUseContractBase = true
	cfg.BaseMonthlyGross = decimal.NewFromInt(2000)

	// The rate is derived from the 2000 contractual base, then applied to the
	// literal 1000 gross: half the deductions of the 2000 estimate.
	res := NewNetEstimator(cfg).Estimate(decimal.NewFromInt(1000))

	assert.True(t, res.Deductions.Equal(decimal.RequireFromString("316.47313")), "got %s", res.Deductions)
	assert.True(t, res.Gross.Equal(decimal.NewFromInt(1000)))
}

func TestNetEstimator_ContractBaseIgnoredWhenZero(t *testing.T) {
	t.Parallel()

	cfg := settings.Defaults("user-1")
	cfg.NetUseContractBase = true
	cfg.BaseMonthlyGross = decimal.Zero

	res := NewNetEstimator(cfg).Estimate(decimal.NewFromInt(2000))
	assert.True(t, res.Deductions.Equal(decimal.RequireFromString("632.94626")), "got %s", res.Deductions)
}

func TestNetEstimator_ZeroGross(t *testing.T) {
	t.Parallel()

	res := NewNetEstimator(settings.Defaults("user-1")).Estimate(decimal.Zero)

	assert.True(t, res.Net.IsZero())
	assert.True(t, res.Deductions.IsZero())
	assert.True(t, res.DeductionRate.IsZero())
}

package settings

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseEnums_DegradeToDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TravelProportionalCCNL, ParseTravelPolicy("proportional_ccnl"))
	assert.Equal(t, TravelFixedRate, ParseTravelPolicy("something_else"))

	assert.Equal(t, TravelWorkRate, ParseSpecialTravelPolicy("work_rate"))
	assert.Equal(t, TravelPercentageBonus, ParseSpecialTravelPolicy(""))

	assert.Equal(t, StandbyTier16, ParseStandbyTier("16h"))
	assert.Equal(t, StandbyTier24, ParseStandbyTier("48h"))

	assert.Equal(t, NetFlat, ParseNetMethod("flat"))
	assert.Equal(t, NetProgressive, ParseNetMethod("regressive"))
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	s := Defaults("user-1")

	assert.Equal(t, "user-1", s.UserID)
	assert.True(t, s.HourlyRate.Equal(decimal.RequireFromString("9.87")))
	assert.True(t, s.DailyRate.Equal(decimal.RequireFromString("78.96")))
	assert.True(t, s.TravelDailyAmount.Equal(decimal.RequireFromString("16.41")))
	assert.Equal(t, 480, s.OvertimeThresholdMinutes)
	assert.Equal(t, TravelFixedRate, s.TravelPolicy)
	assert.Equal(t, StandbyTier24, s.StandbyTier)
	assert.Equal(t, NetProgressive, s.NetMethod)
}

func TestStandbyAmounts_OverrideResolution(t *testing.T) {
	t.Parallel()

	s := Defaults("user-1")

	assert.True(t, s.StandbyWeekday16Amount().Equal(decimal.RequireFromString("4.89")))
	assert.True(t, s.StandbyWeekday24Amount().Equal(decimal.RequireFromString("7.03")))
	assert.True(t, s.StandbyHolidayAmount().Equal(decimal.RequireFromString("10.25")))

	custom := decimal.RequireFromString("9.99")
	s.StandbyWeekday24 = &custom
	assert.True(t, s.StandbyWeekday24Amount().Equal(custom))
}

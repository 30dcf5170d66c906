package earnings

import (
	"github.com/lavorotracker/paycalc-backend-go/internal/domain/settings"
	"github.com/lavorotracker/paycalc-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

// CalcMealAllowance - pure table lookup over the record's meal flags.
// No proration and no day-type dependency.
func CalcMealAllowance(cfg settings.CalcSettings, rec timesheet.WorkRecord) decimal.Decimal {
	total := decimal.Zero
	if rec.LunchVoucher {
		total = total.Add(cfg.MealLunchVoucher)
	}
	if rec.DinnerVoucher {
		total = total.Add(cfg.MealDinnerVoucher)
	}
	if rec.LunchCash {
		total = total.Add(cfg.MealLunchCash)
	}
	if rec.DinnerCash {
		total = total.Add(cfg.MealDinnerCash)
	}
	return total
}

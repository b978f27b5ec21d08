package response_models

import "github.com/shopspring/decimal"

// ReturnCalculation is the projection shown in the public calculator
// and on the pre-investment confirmation screen.
type ReturnCalculation struct {
	DailyProfit   decimal.Decimal `json:"daily_profit"`
	WeeklyProfit  decimal.Decimal `json:"weekly_profit"`
	MonthlyProfit decimal.Decimal `json:"monthly_profit"`
	TotalReturn   decimal.Decimal `json:"total_return"`
	Duration      int             `json:"duration"`
}

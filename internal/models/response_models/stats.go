package response_models

import "github.com/shopspring/decimal"

type PlatformStats struct {
	TotalInvestments decimal.Decimal `json:"total_investments"`
	ActiveInvestors  int64           `json:"active_investors"`
	SuccessRate      decimal.Decimal `json:"success_rate"`
	MaxROI           decimal.Decimal `json:"max_roi"`
}

type UserStats struct {
	TotalInvested     decimal.Decimal `json:"total_invested"`
	ActiveInvestments int64           `json:"active_investments"`
	TotalEarnings     decimal.Decimal `json:"total_earnings"`
	TotalReferrals    int64           `json:"total_referrals"`
}

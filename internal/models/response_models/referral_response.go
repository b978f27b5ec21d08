package response_models

import "github.com/shopspring/decimal"

type ReferralResponse struct {
	ID             string          `json:"id"`
	ReferredID     string          `json:"referred_id"`
	Username       string          `json:"username,omitempty"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	TotalEarned    decimal.Decimal `json:"total_earned"`
	CreatedAt      int64           `json:"created_at"`
}

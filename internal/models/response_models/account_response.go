package response_models

import "github.com/shopspring/decimal"

type LoginResponse struct {
	Token string `json:"token"`
}

type AccountResponse struct {
	ID           string          `json:"id"`
	Username     string          `json:"username"`
	Email        string          `json:"email"`
	Balance      decimal.Decimal `json:"balance"`
	ReferralCode string          `json:"referral_code"`
	KYCStatus    string          `json:"kyc_status"`
	Status       string          `json:"status"`
}

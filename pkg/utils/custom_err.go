package utils

import "errors"

var (
	ErrPlanNotFound        = errors.New("plan not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvestmentNotFound  = errors.New("investment not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrBankNotFound        = errors.New("bank account not found")
	ErrSettingNotFound     = errors.New("setting not found")

	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrAmountOutOfBounds   = errors.New("amount is outside the plan investment bounds")
	ErrInvalidPlanTerms    = errors.New("invalid plan terms")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidState        = errors.New("record state does not allow this operation")

	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrUsernameAlreadyExists = errors.New("username already taken")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidReferralCode   = errors.New("invalid referral code")
	ErrAlreadySubscribed     = errors.New("email already subscribed")

	ErrDatabaseError = errors.New("database error")
)

package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusPending   UserStatus = "pending"
)

type User struct {
	BaseModel
	Username     string          `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string          `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string          `gorm:"size:255;not null" json:"-"`
	Balance      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0.00" json:"balance"`
	ReferralCode string          `gorm:"size:12;uniqueIndex;not null" json:"referral_code"`
	ReferredBy   *uuid.UUID      `gorm:"type:uuid;index" json:"referred_by,omitempty"`
	KYCStatus    string          `gorm:"size:20;default:'unverified'" json:"kyc_status"`
	Status       UserStatus      `gorm:"size:20;default:'active';index" json:"status"`
}

func (User) TableName() string {
	return "users"
}

package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Referral links a referrer to a referred user, one row per pair.
// TotalEarned only ever grows as commission transactions are posted.
type Referral struct {
	BaseModel
	ReferrerID     uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_referrer_referred" json:"referrer_id"`
	ReferredID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_referrer_referred" json:"referred_id"`
	CommissionRate decimal.Decimal `gorm:"type:decimal(5,2);not null;default:10.00" json:"commission_rate"`
	TotalEarned    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0.00" json:"total_earned"`
}

func (Referral) TableName() string {
	return "referrals"
}

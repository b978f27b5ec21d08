package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InvestmentStatus string

const (
	InvestmentStatusActive    InvestmentStatus = "active"
	InvestmentStatusCompleted InvestmentStatus = "completed"
	InvestmentStatusCancelled InvestmentStatus = "cancelled"
)

// Investment snapshots the plan terms (roi, duration, principal return)
// at creation time; later plan edits never affect a running investment.
type Investment struct {
	BaseModel
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	PlanID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"plan_id"`
	Amount          decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"amount"`
	ROI             decimal.Decimal  `gorm:"type:decimal(5,2);not null" json:"roi"`
	DurationDays    int              `gorm:"not null" json:"duration_days"`
	PrincipalReturn bool             `gorm:"not null" json:"principal_return"`
	DailyProfit     decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"daily_profit"`
	TotalReturn     decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"total_return"`
	ProfitDaysPaid  int              `gorm:"not null;default:0" json:"profit_days_paid"`
	StartDate       int64            `gorm:"not null" json:"start_date"`
	EndDate         int64            `gorm:"not null" json:"end_date"`
	LastProfitDate  *int64           `json:"last_profit_date,omitempty"` // accrual watermark
	Status          InvestmentStatus `gorm:"size:20;default:'active';index" json:"status"`
	CancelReason    *string          `gorm:"type:text" json:"cancel_reason,omitempty"`
}

func (Investment) TableName() string {
	return "investments"
}

package db_models

import (
	"github.com/shopspring/decimal"
)

// Plan is an admin-managed investment offering. Plans are never hard
// deleted; Active=false retires a plan while keeping historical
// investments resolvable.
type Plan struct {
	BaseModel
	Name            string              `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description     *string             `gorm:"type:text" json:"description,omitempty"`
	ROI             decimal.Decimal     `gorm:"type:decimal(5,2);not null" json:"roi"` // percent per day
	DurationDays    int                 `gorm:"not null" json:"duration_days"`
	MinInvestment   decimal.Decimal     `gorm:"type:decimal(15,2);not null" json:"min_investment"`
	MaxInvestment   decimal.NullDecimal `gorm:"type:decimal(15,2)" json:"max_investment,omitempty"`
	PrincipalReturn bool                `gorm:"default:true" json:"principal_return"`
	Bonus           bool                `gorm:"default:false" json:"bonus"`
	Active          bool                `gorm:"default:true;index" json:"active"`
}

func (Plan) TableName() string {
	return "plans"
}

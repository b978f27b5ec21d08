package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type TransactionType string

const (
	TxnTypeDeposit            TransactionType = "deposit"
	TxnTypeWithdrawal         TransactionType = "withdrawal"
	TxnTypeInvestment         TransactionType = "investment"
	TxnTypeProfit             TransactionType = "profit"
	TxnTypeReferralCommission TransactionType = "referral_commission"
)

// ReferencePrincipalReturn tags the maturity payout that hands the
// invested principal back. Those rows are profit-typed but are not
// earnings, so profit aggregation excludes them.
const ReferencePrincipalReturn = "principal_return"

type TransactionStatus string

const (
	TxnStatusPending   TransactionStatus = "pending"
	TxnStatusCompleted TransactionStatus = "completed"
	TxnStatusRejected  TransactionStatus = "rejected"
)

// Transaction is a money-movement event. Amounts are always positive;
// direction is implied by the type. Only deposit/withdrawal pass
// through pending; system-derived types are created completed.
type Transaction struct {
	BaseModel
	UserID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	InvestmentID *uuid.UUID        `gorm:"type:uuid;index" json:"investment_id,omitempty"`
	Type         TransactionType   `gorm:"size:30;not null;index" json:"type"`
	Amount       decimal.Decimal   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Status       TransactionStatus `gorm:"size:20;default:'pending';index" json:"status"`

	PaymentMethod string  `gorm:"size:50" json:"payment_method,omitempty"` // opaque tag, e.g. "jazzcash"
	Reference     string  `gorm:"size:191;index" json:"reference,omitempty"`
	AdminNotes    *string `gorm:"type:text" json:"admin_notes,omitempty"`
	ProcessedAt   *int64  `json:"processed_at,omitempty"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"metadata,omitempty"`
}

func (Transaction) TableName() string {
	return "transactions"
}

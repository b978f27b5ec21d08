package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vestora/internal/models/db_models"
	"vestora/internal/models/response_models"
	"vestora/internal/repositories"
	"vestora/pkg/utils"
)

type ReferralServiceInterface interface {
	ListForReferrer(ctx context.Context, referrerID uuid.UUID) ([]response_models.ReferralResponse, error)

	// PostCommission credits the referrer for a referred user's
	// triggering amount. It must run inside the caller's database
	// transaction so the commission posting is atomic with whatever
	// triggered it.
	PostCommission(tx *gorm.DB, referral *db_models.Referral, triggeringAmount decimal.Decimal) (*db_models.Transaction, error)
}

type ReferralService struct {
	referralRepo repositories.IReferralRepository
	userRepo     repositories.IUserRepository
}

func NewReferralService(referralRepo repositories.IReferralRepository, userRepo repositories.IUserRepository) ReferralServiceInterface {
	return &ReferralService{
		referralRepo: referralRepo,
		userRepo:     userRepo,
	}
}

// CommissionAmount computes rate% of the triggering amount, rounded to
// cents.
func CommissionAmount(rate decimal.Decimal, triggeringAmount decimal.Decimal) decimal.Decimal {
	return triggeringAmount.Mul(rate).Div(oneHundred).Round(2)
}

func (s *ReferralService) PostCommission(tx *gorm.DB, referral *db_models.Referral, triggeringAmount decimal.Decimal) (*db_models.Transaction, error) {
	commission := CommissionAmount(referral.CommissionRate, triggeringAmount)
	if !commission.IsPositive() {
		return nil, nil
	}

	var referrer db_models.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&referrer, "id = ?", referral.ReferrerID).Error; err != nil {
		return nil, err
	}

	if err := tx.Model(&referrer).
		Update("balance", referrer.Balance.Add(commission)).Error; err != nil {
		return nil, err
	}

	txn := &db_models.Transaction{
		UserID: referral.ReferrerID,
		Type:   db_models.TxnTypeReferralCommission,
		Amount: commission,
		Status: db_models.TxnStatusCompleted,
	}
	now := utils.NowUnixSeconds()
	txn.ProcessedAt = &now
	if err := tx.Create(txn).Error; err != nil {
		return nil, err
	}

	if err := tx.Model(&db_models.Referral{}).
		Where("id = ?", referral.ID).
		UpdateColumn("total_earned", gorm.Expr("total_earned + ?", commission)).Error; err != nil {
		return nil, err
	}

	return txn, nil
}

func (s *ReferralService) ListForReferrer(ctx context.Context, referrerID uuid.UUID) ([]response_models.ReferralResponse, error) {
	rows, err := s.referralRepo.ListByReferrer(ctx, referrerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ReferralResponse, 0, len(rows))
	for _, row := range rows {
		resp := response_models.ReferralResponse{
			ID:             row.ID.String(),
			ReferredID:     row.ReferredID.String(),
			CommissionRate: row.CommissionRate,
			TotalEarned:    row.TotalEarned,
			CreatedAt:      row.CreatedAt,
		}
		if referred, err := s.userRepo.FindByID(ctx, row.ReferredID); err == nil && referred != nil {
			resp.Username = referred.Username
		}
		out = append(out, resp)
	}
	return out, nil
}

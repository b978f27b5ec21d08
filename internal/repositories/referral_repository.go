package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vestora/internal/models/db_models"
)

type IReferralRepository interface {
	ListByReferrer(ctx context.Context, referrerID uuid.UUID) ([]db_models.Referral, error)
	CountByReferrer(ctx context.Context, referrerID uuid.UUID) (int64, error)
	Create(ctx context.Context, referral *db_models.Referral) error
}

type ReferralRepository struct {
	db *gorm.DB
}

func NewReferralRepository(db *gorm.DB) IReferralRepository {
	return &ReferralRepository{db: db}
}

func (r *ReferralRepository) ListByReferrer(ctx context.Context, referrerID uuid.UUID) ([]db_models.Referral, error) {
	var rows []db_models.Referral
	err := r.db.WithContext(ctx).
		Where("referrer_id = ?", referrerID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReferralRepository) CountByReferrer(ctx context.Context, referrerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Referral{}).
		Where("referrer_id = ?", referrerID).
		Count(&count).Error
	return count, err
}

func (r *ReferralRepository) Create(ctx context.Context, referral *db_models.Referral) error {
	return r.db.WithContext(ctx).Create(referral).Error
}

package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"vestora/internal/models/db_models"
)

type IInvestmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Investment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Investment, error)
	ListDueForAccrual(ctx context.Context, asOf int64) ([]db_models.Investment, error)
	SumActiveAmount(ctx context.Context) (decimal.Decimal, error)
	SumAmountByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	CountActiveByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type InvestmentRepository struct {
	db *gorm.DB
}

func NewInvestmentRepository(db *gorm.DB) IInvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Investment, error) {
	var inv db_models.Investment
	err := r.db.WithContext(ctx).First(&inv, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *InvestmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Investment, error) {
	var rows []db_models.Investment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListDueForAccrual returns active investments whose watermark is
// before the start of asOf's UTC day (or that never accrued).
func (r *InvestmentRepository) ListDueForAccrual(ctx context.Context, asOf int64) ([]db_models.Investment, error) {
	var rows []db_models.Investment
	err := r.db.WithContext(ctx).
		Where("status = ? AND (last_profit_date IS NULL OR last_profit_date < ?)",
			db_models.InvestmentStatusActive, asOf).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *InvestmentRepository) SumActiveAmount(ctx context.Context) (decimal.Decimal, error) {
	return r.sumAmount(ctx, r.db.WithContext(ctx).
		Model(&db_models.Investment{}).
		Where("status = ?", db_models.InvestmentStatusActive))
}

func (r *InvestmentRepository) SumAmountByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	return r.sumAmount(ctx, r.db.WithContext(ctx).
		Model(&db_models.Investment{}).
		Where("user_id = ?", userID))
}

func (r *InvestmentRepository) CountActiveByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Investment{}).
		Where("user_id = ? AND status = ?", userID, db_models.InvestmentStatusActive).
		Count(&count).Error
	return count, err
}

func (r *InvestmentRepository) sumAmount(ctx context.Context, query *gorm.DB) (decimal.Decimal, error) {
	var out struct {
		Total decimal.NullDecimal
	}
	if err := query.Select("COALESCE(SUM(amount), 0) AS total").Scan(&out).Error; err != nil {
		return decimal.Zero, err
	}
	if !out.Total.Valid {
		return decimal.Zero, nil
	}
	return out.Total.Decimal, nil
}

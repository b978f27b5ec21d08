package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"vestora/internal/models/db_models"
)

type IPlanRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Plan, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*db_models.Plan, error)
	ListActive(ctx context.Context) ([]db_models.Plan, error)
	ListAll(ctx context.Context) ([]db_models.Plan, error)
	Create(ctx context.Context, plan *db_models.Plan) error
	Update(ctx context.Context, plan *db_models.Plan) error
	MaxActiveROI(ctx context.Context) (decimal.Decimal, error)
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) IPlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := r.db.WithContext(ctx).First(&plan, "id = ? AND active = TRUE", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) ListActive(ctx context.Context) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	err := r.db.WithContext(ctx).
		Where("active = TRUE").
		Order("min_investment ASC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *PlanRepository) ListAll(ctx context.Context) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *PlanRepository) Create(ctx context.Context, plan *db_models.Plan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *PlanRepository) Update(ctx context.Context, plan *db_models.Plan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *PlanRepository) MaxActiveROI(ctx context.Context) (decimal.Decimal, error) {
	var out struct {
		Max decimal.NullDecimal
	}
	err := r.db.WithContext(ctx).
		Model(&db_models.Plan{}).
		Select("MAX(roi) AS max").
		Where("active = TRUE").
		Scan(&out).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !out.Max.Valid {
		return decimal.Zero, nil
	}
	return out.Max.Decimal, nil
}

package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"vestora/internal/models/db_models"
)

type INewsletterRepository interface {
	FindByEmail(ctx context.Context, email string) (*db_models.Newsletter, error)
	ListActive(ctx context.Context) ([]db_models.Newsletter, error)
	Create(ctx context.Context, sub *db_models.Newsletter) error
	Update(ctx context.Context, sub *db_models.Newsletter) error
}

type NewsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) INewsletterRepository {
	return &NewsletterRepository{db: db}
}

func (r *NewsletterRepository) FindByEmail(ctx context.Context, email string) (*db_models.Newsletter, error) {
	var sub db_models.Newsletter
	err := r.db.WithContext(ctx).First(&sub, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *NewsletterRepository) ListActive(ctx context.Context) ([]db_models.Newsletter, error) {
	var rows []db_models.Newsletter
	err := r.db.WithContext(ctx).
		Where("status = ?", db_models.NewsletterStatusActive).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *NewsletterRepository) Create(ctx context.Context, sub *db_models.Newsletter) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *NewsletterRepository) Update(ctx context.Context, sub *db_models.Newsletter) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

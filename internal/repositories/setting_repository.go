package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vestora/internal/models/db_models"
)

type ISettingRepository interface {
	Get(ctx context.Context, key string) (*db_models.Setting, error)
	Upsert(ctx context.Context, key string, value string) error
}

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) ISettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) Get(ctx context.Context, key string) (*db_models.Setting, error) {
	var setting db_models.Setting
	err := r.db.WithContext(ctx).First(&setting, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (r *SettingRepository) Upsert(ctx context.Context, key string, value string) error {
	setting := db_models.Setting{Key: key, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&setting).Error
}

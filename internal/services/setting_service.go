package services

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"vestora/internal/models/db_models"
	"vestora/internal/repositories"
	"vestora/pkg/utils"
)

type SettingServiceInterface interface {
	Get(ctx context.Context, key string) (*db_models.Setting, error)
	Update(ctx context.Context, key string, value string) error
	SeedDefaults(ctx context.Context)
}

type SettingService struct {
	settingRepo repositories.ISettingRepository
}

func NewSettingService(settingRepo repositories.ISettingRepository) SettingServiceInterface {
	return &SettingService{settingRepo: settingRepo}
}

func (s *SettingService) Get(ctx context.Context, key string) (*db_models.Setting, error) {
	setting, err := s.settingRepo.Get(ctx, key)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if setting == nil {
		return nil, utils.ErrSettingNotFound
	}
	return setting, nil
}

func (s *SettingService) Update(ctx context.Context, key string, value string) error {
	// Numeric settings must parse as decimals before they are stored.
	if key == db_models.SettingSuccessRate || key == db_models.SettingReferralRate {
		if _, err := decimal.NewFromString(value); err != nil {
			return utils.ErrInvalidPlanTerms
		}
	}
	if err := s.settingRepo.Upsert(ctx, key, value); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// SeedDefaults writes missing well-known settings at startup.
func (s *SettingService) SeedDefaults(ctx context.Context) {
	defaults := map[string]string{
		db_models.SettingSuccessRate:  "98.00",
		db_models.SettingReferralRate: "10.00",
	}
	for key, value := range defaults {
		existing, err := s.settingRepo.Get(ctx, key)
		if err != nil {
			log.Printf("failed to read setting %s: %v", key, err)
			continue
		}
		if existing != nil {
			continue
		}
		if err := s.settingRepo.Upsert(ctx, key, value); err != nil {
			log.Printf("failed to seed setting %s: %v", key, err)
		}
	}
}

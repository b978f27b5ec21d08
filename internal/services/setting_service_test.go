package services

import (
	"context"
	"errors"
	"testing"

	"vestora/internal/models/db_models"
	"vestora/pkg/utils"
)

func TestSettingSeedDefaults(t *testing.T) {
	repo := newFakeSettingRepo()
	svc := NewSettingService(repo)

	svc.SeedDefaults(context.Background())

	rate, err := svc.Get(context.Background(), db_models.SettingSuccessRate)
	if err != nil {
		t.Fatalf("get success_rate: %v", err)
	}
	if rate.Value != "98.00" {
		t.Errorf("success_rate = %s, want 98.00", rate.Value)
	}

	referral, err := svc.Get(context.Background(), db_models.SettingReferralRate)
	if err != nil {
		t.Fatalf("get referral_rate: %v", err)
	}
	if referral.Value != "10.00" {
		t.Errorf("referral_rate = %s, want 10.00", referral.Value)
	}
}

func TestSettingSeedDoesNotOverwrite(t *testing.T) {
	repo := newFakeSettingRepo()
	_ = repo.Upsert(context.Background(), db_models.SettingSuccessRate, "95.00")
	svc := NewSettingService(repo)

	svc.SeedDefaults(context.Background())

	rate, err := svc.Get(context.Background(), db_models.SettingSuccessRate)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rate.Value != "95.00" {
		t.Errorf("seed overwrote an operator-set value: got %s", rate.Value)
	}
}

func TestSettingUpdateRejectsNonNumericRates(t *testing.T) {
	svc := NewSettingService(newFakeSettingRepo())

	if err := svc.Update(context.Background(), db_models.SettingSuccessRate, "lots"); err == nil {
		t.Error("expected an error for a non-numeric rate")
	}
	if err := svc.Update(context.Background(), db_models.SettingSuccessRate, "97.25"); err != nil {
		t.Errorf("valid rate rejected: %v", err)
	}
}

func TestSettingGetUnknown(t *testing.T) {
	svc := NewSettingService(newFakeSettingRepo())

	_, err := svc.Get(context.Background(), "no_such_key")
	if !errors.Is(err, utils.ErrSettingNotFound) {
		t.Errorf("got %v, want ErrSettingNotFound", err)
	}
}

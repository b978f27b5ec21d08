package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"vestora/internal/models/db_models"
)

func TestCommissionAmount(t *testing.T) {
	tests := []struct {
		name   string
		rate   string
		amount string
		want   string
	}{
		{name: "ten percent of 500", rate: "10", amount: "500", want: "50"},
		{name: "rounds to cents", rate: "10", amount: "333.33", want: "33.33"},
		{name: "fractional rate", rate: "7.5", amount: "1000", want: "75"},
		{name: "small amount", rate: "10", amount: "0.01", want: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CommissionAmount(dec(tt.rate), dec(tt.amount))
			if !got.Equal(dec(tt.want)) {
				t.Errorf("commission = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestListForReferrer(t *testing.T) {
	referrer := &db_models.User{Username: "alice", Email: "alice@example.com", ReferralCode: "AAAA2222"}
	referred := &db_models.User{Username: "bob", Email: "bob@example.com", ReferralCode: "BBBB3333"}
	userRepo := newFakeUserRepo(referrer, referred)

	referralRepo := &fakeReferralRepo{}
	_ = referralRepo.Create(context.Background(), &db_models.Referral{
		ReferrerID:     referrer.ID,
		ReferredID:     referred.ID,
		CommissionRate: dec("10"),
		TotalEarned:    dec("50"),
	})

	svc := NewReferralService(referralRepo, userRepo)

	out, err := svc.ListForReferrer(context.Background(), referrer.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 referral, got %d", len(out))
	}
	if out[0].Username != "bob" {
		t.Errorf("username = %q, want bob", out[0].Username)
	}
	if !out[0].TotalEarned.Equal(dec("50")) {
		t.Errorf("total earned = %s, want 50", out[0].TotalEarned)
	}
}

func TestListForReferrerEmpty(t *testing.T) {
	svc := NewReferralService(&fakeReferralRepo{}, newFakeUserRepo())

	out, err := svc.ListForReferrer(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected no referrals, got %d", len(out))
	}
}

package services

import (
	"context"
	"errors"
	"testing"

	"vestora/internal/models/request_models"
	"vestora/pkg/utils"
)

func strptr(s string) *string { return &s }

func TestPlanCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		request request_models.PlanRequest
		wantErr error
	}{
		{
			name: "valid plan",
			request: request_models.PlanRequest{
				Name: "Starter", ROI: "3.0", DurationDays: 30,
				MinInvestment: "100", MaxInvestment: strptr("10000"),
			},
			wantErr: nil,
		},
		{
			name: "valid without max",
			request: request_models.PlanRequest{
				Name: "Whale", ROI: "1.0", DurationDays: 365,
				MinInvestment: "50000",
			},
			wantErr: nil,
		},
		{
			name: "zero roi",
			request: request_models.PlanRequest{
				Name: "Bad", ROI: "0", DurationDays: 30, MinInvestment: "100",
			},
			wantErr: utils.ErrInvalidPlanTerms,
		},
		{
			name: "negative roi",
			request: request_models.PlanRequest{
				Name: "Bad", ROI: "-1", DurationDays: 30, MinInvestment: "100",
			},
			wantErr: utils.ErrInvalidPlanTerms,
		},
		{
			name: "zero duration",
			request: request_models.PlanRequest{
				Name: "Bad", ROI: "3.0", DurationDays: 0, MinInvestment: "100",
			},
			wantErr: utils.ErrInvalidPlanTerms,
		},
		{
			name: "max below min",
			request: request_models.PlanRequest{
				Name: "Bad", ROI: "3.0", DurationDays: 30,
				MinInvestment: "1000", MaxInvestment: strptr("500"),
			},
			wantErr: utils.ErrInvalidPlanTerms,
		},
		{
			name: "unparseable roi",
			request: request_models.PlanRequest{
				Name: "Bad", ROI: "three", DurationDays: 30, MinInvestment: "100",
			},
			wantErr: utils.ErrInvalidPlanTerms,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPlanService(newFakePlanRepo())
			plan, err := svc.Create(context.Background(), tt.request)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && !plan.Active {
				t.Error("new plan should be active")
			}
		})
	}
}

func TestPlanDeactivate(t *testing.T) {
	repo := newFakePlanRepo()
	svc := NewPlanService(repo)

	plan, err := svc.Create(context.Background(), request_models.PlanRequest{
		Name: "Starter", ROI: "3.0", DurationDays: 30, MinInvestment: "100",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deactivated, err := svc.Deactivate(context.Background(), plan.ID)
	if err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if deactivated.Active {
		t.Error("plan still active after deactivation")
	}

	// Retired plans disappear from the public read path but stay
	// reachable by id for admins.
	if _, err := svc.Get(context.Background(), plan.ID); !errors.Is(err, utils.ErrPlanNotFound) {
		t.Errorf("public get after deactivation: got %v, want ErrPlanNotFound", err)
	}

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected deactivated plan in admin listing, got %d plans", len(all))
	}
}

func TestPlanUpdate(t *testing.T) {
	repo := newFakePlanRepo()
	svc := NewPlanService(repo)

	plan, err := svc.Create(context.Background(), request_models.PlanRequest{
		Name: "Starter", ROI: "3.0", DurationDays: 30, MinInvestment: "100",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), plan.ID, request_models.PlanRequest{
		Name: "Starter Plus", ROI: "3.5", DurationDays: 45, MinInvestment: "200",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Starter Plus" {
		t.Errorf("name = %q, want Starter Plus", updated.Name)
	}
	if !updated.ROI.Equal(dec("3.5")) {
		t.Errorf("roi = %s, want 3.5", updated.ROI)
	}
	if updated.DurationDays != 45 {
		t.Errorf("duration = %d, want 45", updated.DurationDays)
	}
}

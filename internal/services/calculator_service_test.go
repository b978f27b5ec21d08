package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"vestora/internal/models/db_models"
	"vestora/pkg/utils"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testPlan() *db_models.Plan {
	return &db_models.Plan{
		Name:          "Starter",
		ROI:           dec("3.0"),
		DurationDays:  30,
		MinInvestment: dec("100"),
		MaxInvestment: decimal.NullDecimal{Decimal: dec("10000"), Valid: true},
		Active:        true,
	}
}

func TestComputeReturns(t *testing.T) {
	tests := []struct {
		name         string
		amount       string
		roi          string
		durationDays int
		wantDaily    string
		wantWeekly   string
		wantMonthly  string
		wantTotal    string
	}{
		{
			name:         "1000 at 3 percent over 30 days",
			amount:       "1000",
			roi:          "3.0",
			durationDays: 30,
			wantDaily:    "30",
			wantWeekly:   "210",
			wantMonthly:  "900",
			wantTotal:    "1900",
		},
		{
			name:         "rounding to cents",
			amount:       "333.33",
			roi:          "1.5",
			durationDays: 10,
			wantDaily:    "5.00",
			wantWeekly:   "35.00",
			wantMonthly:  "150.00",
			wantTotal:    "383.33",
		},
		{
			name:         "single day plan",
			amount:       "500",
			roi:          "2.0",
			durationDays: 1,
			wantDaily:    "10",
			wantWeekly:   "70",
			wantMonthly:  "300",
			wantTotal:    "510",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeReturns(dec(tt.amount), dec(tt.roi), tt.durationDays)

			if !got.DailyProfit.Equal(dec(tt.wantDaily)) {
				t.Errorf("daily profit = %s, want %s", got.DailyProfit, tt.wantDaily)
			}
			if !got.WeeklyProfit.Equal(dec(tt.wantWeekly)) {
				t.Errorf("weekly profit = %s, want %s", got.WeeklyProfit, tt.wantWeekly)
			}
			if !got.MonthlyProfit.Equal(dec(tt.wantMonthly)) {
				t.Errorf("monthly profit = %s, want %s", got.MonthlyProfit, tt.wantMonthly)
			}
			if !got.TotalReturn.Equal(dec(tt.wantTotal)) {
				t.Errorf("total return = %s, want %s", got.TotalReturn, tt.wantTotal)
			}
			if got.Duration != tt.durationDays {
				t.Errorf("duration = %d, want %d", got.Duration, tt.durationDays)
			}
		})
	}
}

func TestValidateInvestmentAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr error
	}{
		{name: "within bounds", amount: "1000", wantErr: nil},
		{name: "exactly min", amount: "100", wantErr: nil},
		{name: "exactly max", amount: "10000", wantErr: nil},
		{name: "zero", amount: "0", wantErr: utils.ErrInvalidAmount},
		{name: "negative", amount: "-50", wantErr: utils.ErrInvalidAmount},
		{name: "below min", amount: "99.99", wantErr: utils.ErrAmountOutOfBounds},
		{name: "above max", amount: "10000.01", wantErr: utils.ErrAmountOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInvestmentAmount(dec(tt.amount), testPlan())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateInvestmentAmountNoMax(t *testing.T) {
	plan := testPlan()
	plan.MaxInvestment = decimal.NullDecimal{}

	if err := ValidateInvestmentAmount(dec("1000000"), plan); err != nil {
		t.Errorf("unbounded plan rejected large amount: %v", err)
	}
}

func TestCalculate(t *testing.T) {
	plan := testPlan()
	repo := newFakePlanRepo(plan)
	svc := NewCalculatorService(repo)

	result, err := svc.Calculate(context.Background(), dec("1000"), plan.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.DailyProfit.Equal(dec("30")) {
		t.Errorf("daily profit = %s, want 30", result.DailyProfit)
	}
}

func TestCalculateUnknownPlan(t *testing.T) {
	svc := NewCalculatorService(newFakePlanRepo())

	_, err := svc.Calculate(context.Background(), dec("1000"), uuid.New())
	if !errors.Is(err, utils.ErrPlanNotFound) {
		t.Errorf("got %v, want ErrPlanNotFound", err)
	}
}

func TestCalculateInactivePlan(t *testing.T) {
	plan := testPlan()
	plan.Active = false
	svc := NewCalculatorService(newFakePlanRepo(plan))

	_, err := svc.Calculate(context.Background(), dec("1000"), plan.ID)
	if !errors.Is(err, utils.ErrPlanNotFound) {
		t.Errorf("got %v, want ErrPlanNotFound", err)
	}
}

package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"vestora/internal/models/db_models"
	"vestora/internal/models/response_models"
	"vestora/internal/repositories"
	"vestora/pkg/utils"
)

var (
	seven      = decimal.NewFromInt(7)
	thirty     = decimal.NewFromInt(30)
	oneHundred = decimal.NewFromInt(100)
)

type CalculatorServiceInterface interface {
	Calculate(ctx context.Context, amount decimal.Decimal, planID uuid.UUID) (*response_models.ReturnCalculation, error)
}

type CalculatorService struct {
	planRepo repositories.IPlanRepository
}

func NewCalculatorService(planRepo repositories.IPlanRepository) CalculatorServiceInterface {
	return &CalculatorService{planRepo: planRepo}
}

// Calculate projects returns for an amount against an active plan.
// Pure lookup plus arithmetic; safe to call on every keystroke of the
// public calculator.
func (s *CalculatorService) Calculate(ctx context.Context, amount decimal.Decimal, planID uuid.UUID) (*response_models.ReturnCalculation, error) {
	plan, err := s.planRepo.FindActiveByID(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	if err := ValidateInvestmentAmount(amount, plan); err != nil {
		return nil, err
	}

	result := ComputeReturns(amount, plan.ROI, plan.DurationDays)
	return &result, nil
}

// ValidateInvestmentAmount enforces amount > 0 and the plan's min/max
// bounds. Out-of-bounds amounts are rejected, never clamped.
func ValidateInvestmentAmount(amount decimal.Decimal, plan *db_models.Plan) error {
	if !amount.IsPositive() {
		return utils.ErrInvalidAmount
	}
	if amount.LessThan(plan.MinInvestment) {
		return utils.ErrAmountOutOfBounds
	}
	if plan.MaxInvestment.Valid && amount.GreaterThan(plan.MaxInvestment.Decimal) {
		return utils.ErrAmountOutOfBounds
	}
	return nil
}

// ComputeReturns derives the projection from the principal and the
// plan terms. dailyProfit = amount * roi/100 rounded to cents; weekly
// and monthly are 7x and 30x the daily figure; totalReturn includes
// the principal.
func ComputeReturns(amount decimal.Decimal, roi decimal.Decimal, durationDays int) response_models.ReturnCalculation {
	daily := amount.Mul(roi).Div(oneHundred).Round(2)
	return response_models.ReturnCalculation{
		DailyProfit:   daily,
		WeeklyProfit:  daily.Mul(seven),
		MonthlyProfit: daily.Mul(thirty),
		TotalReturn:   daily.Mul(decimal.NewFromInt(int64(durationDays))).Add(amount),
		Duration:      durationDays,
	}
}

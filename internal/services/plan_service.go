package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"vestora/internal/models/db_models"
	"vestora/internal/models/request_models"
	"vestora/internal/repositories"
	"vestora/pkg/utils"
)

type PlanServiceInterface interface {
	ListActive(ctx context.Context) ([]db_models.Plan, error)
	ListAll(ctx context.Context) ([]db_models.Plan, error)
	Get(ctx context.Context, id uuid.UUID) (*db_models.Plan, error)
	Create(ctx context.Context, request request_models.PlanRequest) (*db_models.Plan, error)
	Update(ctx context.Context, id uuid.UUID, request request_models.PlanRequest) (*db_models.Plan, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*db_models.Plan, error)
}

type PlanService struct {
	planRepo repositories.IPlanRepository
}

func NewPlanService(planRepo repositories.IPlanRepository) PlanServiceInterface {
	return &PlanService{planRepo: planRepo}
}

func (s *PlanService) ListActive(ctx context.Context) ([]db_models.Plan, error) {
	plans, err := s.planRepo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plans, nil
}

func (s *PlanService) ListAll(ctx context.Context) ([]db_models.Plan, error) {
	plans, err := s.planRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plans, nil
}

func (s *PlanService) Get(ctx context.Context, id uuid.UUID) (*db_models.Plan, error) {
	plan, err := s.planRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}
	return plan, nil
}

func (s *PlanService) Create(ctx context.Context, request request_models.PlanRequest) (*db_models.Plan, error) {
	plan, err := planFromRequest(request)
	if err != nil {
		return nil, err
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plan, nil
}

// Update edits a plan's terms. Running investments are unaffected:
// they operate on the terms snapshotted at creation time.
func (s *PlanService) Update(ctx context.Context, id uuid.UUID, request request_models.PlanRequest) (*db_models.Plan, error) {
	existing, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrPlanNotFound
	}

	updated, err := planFromRequest(request)
	if err != nil {
		return nil, err
	}

	existing.Name = updated.Name
	existing.Description = updated.Description
	existing.ROI = updated.ROI
	existing.DurationDays = updated.DurationDays
	existing.MinInvestment = updated.MinInvestment
	existing.MaxInvestment = updated.MaxInvestment
	existing.PrincipalReturn = updated.PrincipalReturn
	existing.Bonus = updated.Bonus

	if err := s.planRepo.Update(ctx, existing); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return existing, nil
}

// Deactivate soft-retires a plan. Historical investments keep their
// plan reference, so plans are never hard-deleted.
func (s *PlanService) Deactivate(ctx context.Context, id uuid.UUID) (*db_models.Plan, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	plan.Active = false
	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plan, nil
}

func planFromRequest(request request_models.PlanRequest) (*db_models.Plan, error) {
	roi, err := decimal.NewFromString(request.ROI)
	if err != nil || !roi.IsPositive() {
		return nil, utils.ErrInvalidPlanTerms
	}
	if request.DurationDays <= 0 {
		return nil, utils.ErrInvalidPlanTerms
	}

	minInvestment, err := decimal.NewFromString(request.MinInvestment)
	if err != nil || !minInvestment.IsPositive() {
		return nil, utils.ErrInvalidPlanTerms
	}

	var maxInvestment decimal.NullDecimal
	if request.MaxInvestment != nil {
		parsed, err := decimal.NewFromString(*request.MaxInvestment)
		if err != nil {
			return nil, utils.ErrInvalidPlanTerms
		}
		if parsed.LessThan(minInvestment) {
			return nil, utils.ErrInvalidPlanTerms
		}
		maxInvestment = decimal.NullDecimal{Decimal: parsed, Valid: true}
	}

	return &db_models.Plan{
		Name:            request.Name,
		Description:     request.Description,
		ROI:             roi,
		DurationDays:    request.DurationDays,
		MinInvestment:   minInvestment,
		MaxInvestment:   maxInvestment,
		PrincipalReturn: request.PrincipalReturn,
		Bonus:           request.Bonus,
		Active:          true,
	}, nil
}

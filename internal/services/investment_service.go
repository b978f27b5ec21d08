package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vestora/internal/models/db_models"
	"vestora/internal/repositories"
	"vestora/pkg/utils"
)

type InvestmentServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, planID uuid.UUID, amount decimal.Decimal) (*db_models.Investment, error)
	Accrue(ctx context.Context, investmentID uuid.UUID, now time.Time) (*db_models.Transaction, error)
	AccrueDue(ctx context.Context, now time.Time) (int, error)
	Cancel(ctx context.Context, investmentID uuid.UUID, reason string) (*db_models.Investment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Investment, error)
}

type InvestmentService struct {
	db              *gorm.DB
	planRepo        repositories.IPlanRepository
	investmentRepo  repositories.IInvestmentRepository
	referralService ReferralServiceInterface
}

func NewInvestmentService(
	db *gorm.DB,
	planRepo repositories.IPlanRepository,
	investmentRepo repositories.IInvestmentRepository,
	referralService ReferralServiceInterface,
) InvestmentServiceInterface {
	return &InvestmentService{
		db:              db,
		planRepo:        planRepo,
		investmentRepo:  investmentRepo,
		referralService: referralService,
	}
}

// Create funds an investment from the user's internal balance and
// snapshots the plan terms onto the investment row. The balance debit,
// the investment row, the ledger entry and any referral commission are
// committed atomically.
func (s *InvestmentService) Create(ctx context.Context, userID uuid.UUID, planID uuid.UUID, amount decimal.Decimal) (*db_models.Investment, error) {
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

	projection := ComputeReturns(amount, plan.ROI, plan.DurationDays)
	now := time.Now()

	investment := &db_models.Investment{
		UserID:          userID,
		PlanID:          plan.ID,
		Amount:          amount,
		ROI:             plan.ROI,
		DurationDays:    plan.DurationDays,
		PrincipalReturn: plan.PrincipalReturn,
		DailyProfit:     projection.DailyProfit,
		TotalReturn:     projection.TotalReturn,
		StartDate:       now.Unix(),
		EndDate:         now.AddDate(0, 0, plan.DurationDays).Unix(),
		Status:          db_models.InvestmentStatusActive,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user db_models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrUserNotFound
			}
			return err
		}

		if user.Balance.LessThan(amount) {
			return utils.ErrInsufficientBalance
		}

		if err := tx.Model(&user).
			Update("balance", user.Balance.Sub(amount)).Error; err != nil {
			return err
		}

		if err := tx.Create(investment).Error; err != nil {
			return err
		}

		processedAt := now.Unix()
		ledger := &db_models.Transaction{
			UserID:       userID,
			InvestmentID: &investment.ID,
			Type:         db_models.TxnTypeInvestment,
			Amount:       amount,
			Status:       db_models.TxnStatusCompleted,
			ProcessedAt:  &processedAt,
		}
		if err := tx.Create(ledger).Error; err != nil {
			return err
		}

		// Commission policy: a referred user's investment triggers the
		// referrer payout.
		var referral db_models.Referral
		err := tx.First(&referral, "referred_id = ?", userID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if _, err := s.referralService.PostCommission(tx, &referral, amount); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, asServiceError(err)
	}

	return investment, nil
}

// accrualOutcome is the effect one accrual tick would have on an
// investment, decided before any row is written.
type accrualOutcome struct {
	alreadyPaid     bool
	matured         bool
	profitDaysPaid  int
	principalCredit decimal.Decimal
}

// planAccrual decides what a single accrual at `now` does to an
// investment: nothing when today's profit is already posted, one
// day of profit otherwise, plus completion (and the principal, when
// the snapshot had principal_return) once the paid day count reaches
// the snapshot duration or now passes end_date. Terminal statuses
// are rejected outright.
func planAccrual(inv *db_models.Investment, now time.Time) (accrualOutcome, error) {
	if inv.Status != db_models.InvestmentStatusActive {
		return accrualOutcome{}, utils.ErrInvalidState
	}
	if inv.LastProfitDate != nil && utils.SameUTCDay(*inv.LastProfitDate, now.Unix()) {
		return accrualOutcome{alreadyPaid: true}, nil
	}

	out := accrualOutcome{profitDaysPaid: inv.ProfitDaysPaid + 1}
	out.matured = out.profitDaysPaid >= inv.DurationDays || now.Unix() >= inv.EndDate
	if out.matured && inv.PrincipalReturn {
		out.principalCredit = inv.Amount
	}
	return out, nil
}

// Accrue posts one day of profit to an active investment. Idempotent
// per UTC calendar day via the last_profit_date watermark: a repeated
// call on the same day is a no-op returning (nil, nil).
func (s *InvestmentService) Accrue(ctx context.Context, investmentID uuid.UUID, now time.Time) (*db_models.Transaction, error) {
	var profitTxn *db_models.Transaction

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inv db_models.Investment
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&inv, "id = ?", investmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrInvestmentNotFound
			}
			return err
		}

		outcome, err := planAccrual(&inv, now)
		if err != nil {
			return err
		}
		if outcome.alreadyPaid {
			return nil
		}

		var user db_models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&user, "id = ?", inv.UserID).Error; err != nil {
			return err
		}

		newBalance := user.Balance.Add(inv.DailyProfit)

		processedAt := now.Unix()
		profitTxn = &db_models.Transaction{
			UserID:       inv.UserID,
			InvestmentID: &inv.ID,
			Type:         db_models.TxnTypeProfit,
			Amount:       inv.DailyProfit,
			Status:       db_models.TxnStatusCompleted,
			ProcessedAt:  &processedAt,
		}
		if err := tx.Create(profitTxn).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"profit_days_paid": outcome.profitDaysPaid,
			"last_profit_date": now.Unix(),
		}

		if outcome.matured {
			updates["status"] = db_models.InvestmentStatusCompleted
		}
		if outcome.principalCredit.IsPositive() {
			newBalance = newBalance.Add(outcome.principalCredit)
			principalTxn := &db_models.Transaction{
				UserID:       inv.UserID,
				InvestmentID: &inv.ID,
				Type:         db_models.TxnTypeProfit,
				Amount:       outcome.principalCredit,
				Status:       db_models.TxnStatusCompleted,
				Reference:    db_models.ReferencePrincipalReturn,
				ProcessedAt:  &processedAt,
				Metadata:     datatypes.JSON([]byte(`{"principal_return": true}`)),
			}
			if err := tx.Create(principalTxn).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&user).Update("balance", newBalance).Error; err != nil {
			return err
		}

		if err := tx.Model(&inv).Updates(updates).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, asServiceError(err)
	}

	return profitTxn, nil
}

// AccrueDue sweeps every active investment whose watermark predates
// today and accrues it. Failures on individual investments are logged
// and skipped so one bad row cannot stall the whole sweep.
func (s *InvestmentService) AccrueDue(ctx context.Context, now time.Time) (int, error) {
	due, err := s.investmentRepo.ListDueForAccrual(ctx, utils.StartOfUTCDay(now.Unix()))
	if err != nil {
		return 0, utils.ErrDatabaseError
	}

	processed := 0
	for i := range due {
		if _, err := s.Accrue(ctx, due[i].ID, now); err != nil {
			log.Printf("accrual failed for investment %s: %v", due[i].ID, err)
			continue
		}
		processed++
	}
	return processed, nil
}

// Cancel is an admin action on an active investment. The transition is
// status-guarded so a concurrent completion or second cancel loses;
// already-posted profit transactions stand.
func (s *InvestmentService) Cancel(ctx context.Context, investmentID uuid.UUID, reason string) (*db_models.Investment, error) {
	res := s.db.WithContext(ctx).
		Model(&db_models.Investment{}).
		Where("id = ? AND status = ?", investmentID, db_models.InvestmentStatusActive).
		Updates(map[string]interface{}{
			"status":        db_models.InvestmentStatusCancelled,
			"cancel_reason": reason,
		})
	if res.Error != nil {
		return nil, utils.ErrDatabaseError
	}
	if res.RowsAffected == 0 {
		inv, err := s.investmentRepo.FindByID(ctx, investmentID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if inv == nil {
			return nil, utils.ErrInvestmentNotFound
		}
		return nil, utils.ErrInvalidState
	}

	inv, err := s.investmentRepo.FindByID(ctx, investmentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return inv, nil
}

func (s *InvestmentService) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Investment, error) {
	rows, err := s.investmentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return rows, nil
}

// asServiceError passes through sentinel errors and masks storage
// failures as ErrDatabaseError.
func asServiceError(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{
		utils.ErrPlanNotFound,
		utils.ErrUserNotFound,
		utils.ErrInvestmentNotFound,
		utils.ErrTransactionNotFound,
		utils.ErrInvalidAmount,
		utils.ErrAmountOutOfBounds,
		utils.ErrInsufficientBalance,
		utils.ErrInvalidState,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return utils.ErrDatabaseError
}

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

type StatsServiceInterface interface {
	GetPlatformStats(ctx context.Context) (*response_models.PlatformStats, error)
	GetUserStats(ctx context.Context, userID uuid.UUID) (*response_models.UserStats, error)
}

type StatsService struct {
	investmentRepo  repositories.IInvestmentRepository
	transactionRepo repositories.ITransactionRepository
	referralRepo    repositories.IReferralRepository
	userRepo        repositories.IUserRepository
	planRepo        repositories.IPlanRepository
	settingRepo     repositories.ISettingRepository
}

func NewStatsService(
	investmentRepo repositories.IInvestmentRepository,
	transactionRepo repositories.ITransactionRepository,
	referralRepo repositories.IReferralRepository,
	userRepo repositories.IUserRepository,
	planRepo repositories.IPlanRepository,
	settingRepo repositories.ISettingRepository,
) StatsServiceInterface {
	return &StatsService{
		investmentRepo:  investmentRepo,
		transactionRepo: transactionRepo,
		referralRepo:    referralRepo,
		userRepo:        userRepo,
		planRepo:        planRepo,
		settingRepo:     settingRepo,
	}
}

// GetPlatformStats folds platform-wide numbers on demand. The success
// rate is a configured marketing figure, not derived from the ledger.
func (s *StatsService) GetPlatformStats(ctx context.Context) (*response_models.PlatformStats, error) {
	totalInvestments, err := s.investmentRepo.SumActiveAmount(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	activeInvestors, err := s.userRepo.CountActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	maxROI, err := s.planRepo.MaxActiveROI(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.PlatformStats{
		TotalInvestments: totalInvestments,
		ActiveInvestors:  activeInvestors,
		SuccessRate:      s.successRate(ctx),
		MaxROI:           maxROI,
	}, nil
}

// GetUserStats returns a zeroed struct for brand-new users rather than
// erroring on empty result sets.
func (s *StatsService) GetUserStats(ctx context.Context, userID uuid.UUID) (*response_models.UserStats, error) {
	totalInvested, err := s.investmentRepo.SumAmountByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	activeInvestments, err := s.investmentRepo.CountActiveByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalEarnings, err := s.transactionRepo.SumCompletedByUserAndType(ctx, userID, db_models.TxnTypeProfit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalReferrals, err := s.referralRepo.CountByReferrer(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.UserStats{
		TotalInvested:     totalInvested,
		ActiveInvestments: activeInvestments,
		TotalEarnings:     totalEarnings,
		TotalReferrals:    totalReferrals,
	}, nil
}

func (s *StatsService) successRate(ctx context.Context) decimal.Decimal {
	fallback := decimal.NewFromFloat(98.00)
	setting, err := s.settingRepo.Get(ctx, db_models.SettingSuccessRate)
	if err != nil || setting == nil {
		return fallback
	}
	rate, err := decimal.NewFromString(setting.Value)
	if err != nil {
		return fallback
	}
	return rate
}

package services

import (
	"context"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"vestora/internal/models/db_models"
	"vestora/internal/models/request_models"
	"vestora/internal/models/response_models"
	"vestora/internal/repositories"
	"vestora/pkg/utils"
)

const referralCodeLength = 8

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, error)
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	AdminLogin(ctx context.Context, request request_models.AdminLoginRequest) (string, error)
	GetUser(ctx context.Context, id uuid.UUID) (*response_models.AccountResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, request request_models.UpdateUserRequest) (*db_models.User, error)
}

type AccountService struct {
	userRepo    repositories.IUserRepository
	settingRepo repositories.ISettingRepository
}

func NewAccountService(
	userRepo repositories.IUserRepository,
	settingRepo repositories.ISettingRepository,
) AccountServiceInterface {
	return &AccountService{
		userRepo:    userRepo,
		settingRepo: settingRepo,
	}
}

// Register creates a user with a fresh referral code. When a valid
// referral code is presented the new user is linked to its owner and a
// Referral row is opened at the configured commission rate.
func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, error) {
	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	existing, err = a.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrUsernameAlreadyExists
	}

	var referrer *db_models.User
	if request.ReferralCode != "" {
		referrer, err = a.userRepo.FindByReferralCode(ctx, request.ReferralCode)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if referrer == nil {
			return nil, utils.ErrInvalidReferralCode
		}
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	code, err := a.freshReferralCode(ctx)
	if err != nil {
		return nil, err
	}

	newUser := &db_models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Balance:      decimal.Zero,
		ReferralCode: code,
		Status:       db_models.UserStatusActive,
	}

	// The user and its Referral row commit together: a user with
	// referred_by set but no Referral row would silently never earn
	// its referrer a commission.
	var referral *db_models.Referral
	if referrer != nil {
		newUser.ReferredBy = &referrer.ID
		referral = &db_models.Referral{
			ReferrerID:     referrer.ID,
			CommissionRate: a.commissionRate(ctx),
		}
	}

	if err := a.userRepo.CreateWithReferral(ctx, newUser, referral); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return newUser, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, "user")
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

// AdminLogin verifies the externally configured admin credentials
// (ADMIN_EMAIL plus a bcrypt ADMIN_PASSWORD_HASH). Nothing about the
// admin identity lives in source or in the users table.
func (a *AccountService) AdminLogin(ctx context.Context, request request_models.AdminLoginRequest) (string, error) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminEmail == "" || adminHash == "" {
		log.Println("admin credentials are not configured")
		return "", utils.ErrInvalidCredentials
	}

	if request.Email != adminEmail {
		return "", utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(adminHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(uuid.Nil, "admin")
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

func (a *AccountService) GetUser(ctx context.Context, id uuid.UUID) (*response_models.AccountResponse, error) {
	user, err := a.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	return &response_models.AccountResponse{
		ID:           user.ID.String(),
		Username:     user.Username,
		Email:        user.Email,
		Balance:      user.Balance,
		ReferralCode: user.ReferralCode,
		KYCStatus:    user.KYCStatus,
		Status:       string(user.Status),
	}, nil
}

// UpdateUser lets an admin flip account status or KYC state. Ledger
// history is never touched; deactivation is a status flip only.
func (a *AccountService) UpdateUser(ctx context.Context, id uuid.UUID, request request_models.UpdateUserRequest) (*db_models.User, error) {
	user, err := a.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	if request.KYCStatus != nil {
		user.KYCStatus = *request.KYCStatus
	}
	if request.Status != nil {
		user.Status = db_models.UserStatus(*request.Status)
	}

	if err := a.userRepo.Update(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return user, nil
}

func (a *AccountService) freshReferralCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		code, err := utils.GenerateReferralCode(referralCodeLength)
		if err != nil {
			return "", utils.ErrDatabaseError
		}
		taken, err := a.userRepo.FindByReferralCode(ctx, code)
		if err != nil {
			return "", utils.ErrDatabaseError
		}
		if taken == nil {
			return code, nil
		}
	}
	return "", utils.ErrDatabaseError
}

func (a *AccountService) commissionRate(ctx context.Context) decimal.Decimal {
	fallback := decimal.NewFromFloat(10.00)
	setting, err := a.settingRepo.Get(ctx, db_models.SettingReferralRate)
	if err != nil || setting == nil {
		return fallback
	}
	rate, err := decimal.NewFromString(setting.Value)
	if err != nil || !rate.IsPositive() {
		return fallback
	}
	return rate
}

package services

import (
	"context"

	"github.com/google/uuid"

	"vestora/internal/models/db_models"
	"vestora/internal/models/request_models"
	"vestora/internal/repositories"
	"vestora/pkg/utils"
)

type BankServiceInterface interface {
	ListActive(ctx context.Context) ([]db_models.BankAccount, error)
	ListAll(ctx context.Context) ([]db_models.BankAccount, error)
	Create(ctx context.Context, request request_models.BankAccountRequest) (*db_models.BankAccount, error)
	Update(ctx context.Context, id uuid.UUID, request request_models.BankAccountRequest) (*db_models.BankAccount, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*db_models.BankAccount, error)
}

type BankService struct {
	bankRepo repositories.IBankRepository
}

func NewBankService(bankRepo repositories.IBankRepository) BankServiceInterface {
	return &BankService{bankRepo: bankRepo}
}

func (s *BankService) ListActive(ctx context.Context) ([]db_models.BankAccount, error) {
	rows, err := s.bankRepo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return rows, nil
}

func (s *BankService) ListAll(ctx context.Context) ([]db_models.BankAccount, error) {
	rows, err := s.bankRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return rows, nil
}

func (s *BankService) Create(ctx context.Context, request request_models.BankAccountRequest) (*db_models.BankAccount, error) {
	bank := &db_models.BankAccount{
		BankName:      request.BankName,
		AccountTitle:  request.AccountTitle,
		AccountNumber: request.AccountNumber,
		Active:        true,
	}
	if request.Active != nil {
		bank.Active = *request.Active
	}

	if err := s.bankRepo.Create(ctx, bank); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return bank, nil
}

func (s *BankService) Update(ctx context.Context, id uuid.UUID, request request_models.BankAccountRequest) (*db_models.BankAccount, error) {
	bank, err := s.bankRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if bank == nil {
		return nil, utils.ErrBankNotFound
	}

	bank.BankName = request.BankName
	bank.AccountTitle = request.AccountTitle
	bank.AccountNumber = request.AccountNumber
	if request.Active != nil {
		bank.Active = *request.Active
	}

	if err := s.bankRepo.Update(ctx, bank); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return bank, nil
}

func (s *BankService) Deactivate(ctx context.Context, id uuid.UUID) (*db_models.BankAccount, error) {
	bank, err := s.bankRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if bank == nil {
		return nil, utils.ErrBankNotFound
	}

	bank.Active = false
	if err := s.bankRepo.Update(ctx, bank); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return bank, nil
}

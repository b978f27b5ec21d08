package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vestora/internal/models/db_models"
)

type IBankRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.BankAccount, error)
	ListActive(ctx context.Context) ([]db_models.BankAccount, error)
	ListAll(ctx context.Context) ([]db_models.BankAccount, error)
	Create(ctx context.Context, bank *db_models.BankAccount) error
	Update(ctx context.Context, bank *db_models.BankAccount) error
}

type BankRepository struct {
	db *gorm.DB
}

func NewBankRepository(db *gorm.DB) IBankRepository {
	return &BankRepository{db: db}
}

func (r *BankRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.BankAccount, error) {
	var bank db_models.BankAccount
	err := r.db.WithContext(ctx).First(&bank, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bank, nil
}

func (r *BankRepository) ListActive(ctx context.Context) ([]db_models.BankAccount, error) {
	var rows []db_models.BankAccount
	err := r.db.WithContext(ctx).Where("active = TRUE").Order("bank_name ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BankRepository) ListAll(ctx context.Context) ([]db_models.BankAccount, error) {
	var rows []db_models.BankAccount
	err := r.db.WithContext(ctx).Order("bank_name ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BankRepository) Create(ctx context.Context, bank *db_models.BankAccount) error {
	return r.db.WithContext(ctx).Create(bank).Error
}

func (r *BankRepository) Update(ctx context.Context, bank *db_models.BankAccount) error {
	return r.db.WithContext(ctx).Save(bank).Error
}

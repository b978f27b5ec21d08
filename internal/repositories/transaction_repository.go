package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"vestora/internal/models/db_models"
)

type ITransactionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Transaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Transaction, error)
	ListPendingByType(ctx context.Context, txnType db_models.TransactionType) ([]db_models.Transaction, error)
	SumCompletedByUserAndType(ctx context.Context, userID uuid.UUID, txnType db_models.TransactionType) (decimal.Decimal, error)
}

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) ITransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := r.db.WithContext(ctx).First(&txn, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Transaction, error) {
	var rows []db_models.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *TransactionRepository) ListPendingByType(ctx context.Context, txnType db_models.TransactionType) ([]db_models.Transaction, error) {
	var rows []db_models.Transaction
	err := r.db.WithContext(ctx).
		Where("type = ? AND status = ?", txnType, db_models.TxnStatusPending).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *TransactionRepository) SumCompletedByUserAndType(ctx context.Context, userID uuid.UUID, txnType db_models.TransactionType) (decimal.Decimal, error) {
	var out struct {
		Total decimal.NullDecimal
	}
	err := r.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND type = ? AND status = ? AND reference <> ?",
			userID, txnType, db_models.TxnStatusCompleted, db_models.ReferencePrincipalReturn).
		Scan(&out).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !out.Total.Valid {
		return decimal.Zero, nil
	}
	return out.Total.Decimal, nil
}

package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vestora/internal/models/db_models"
	"vestora/internal/repositories"
	"vestora/pkg/utils"
)

type TransactionServiceInterface interface {
	CreateRequest(ctx context.Context, userID uuid.UUID, txnType db_models.TransactionType, amount decimal.Decimal, paymentMethod string, reference string) (*db_models.Transaction, error)
	Approve(ctx context.Context, transactionID uuid.UUID, adminNotes string) (*db_models.Transaction, error)
	Reject(ctx context.Context, transactionID uuid.UUID, adminNotes string) (*db_models.Transaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Transaction, error)
	ListPendingByType(ctx context.Context, txnType db_models.TransactionType) ([]db_models.Transaction, error)
}

type TransactionService struct {
	db              *gorm.DB
	transactionRepo repositories.ITransactionRepository
	userRepo        repositories.IUserRepository
}

func NewTransactionService(
	db *gorm.DB,
	transactionRepo repositories.ITransactionRepository,
	userRepo repositories.IUserRepository,
) TransactionServiceInterface {
	return &TransactionService{
		db:              db,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
	}
}

// CreateRequest opens a pending deposit or withdrawal. Only these two
// types go through the pending queue; investment, profit and
// referral-commission entries are system-derived and written completed
// by their owning services, never through here.
func (s *TransactionService) CreateRequest(ctx context.Context, userID uuid.UUID, txnType db_models.TransactionType, amount decimal.Decimal, paymentMethod string, reference string) (*db_models.Transaction, error) {
	if txnType != db_models.TxnTypeDeposit && txnType != db_models.TxnTypeWithdrawal {
		return nil, utils.ErrInvalidState
	}
	if !amount.IsPositive() {
		return nil, utils.ErrInvalidAmount
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	// Withdrawals are sanity-checked here and re-validated at approval
	// time, since the balance may move in between.
	if txnType == db_models.TxnTypeWithdrawal && user.Balance.LessThan(amount) {
		return nil, utils.ErrInsufficientBalance
	}

	txn := &db_models.Transaction{
		UserID:        userID,
		Type:          txnType,
		Amount:        amount,
		Status:        db_models.TxnStatusPending,
		PaymentMethod: paymentMethod,
		Reference:     reference,
	}
	if err := s.db.WithContext(ctx).Create(txn).Error; err != nil {
		return nil, utils.ErrDatabaseError
	}
	return txn, nil
}

// reviewOutcome decides what approving (or rejecting) a transaction
// does to the holder's balance. Only pending deposits and withdrawals
// are reviewable; a withdrawal's balance is re-validated here, at
// review time, not just at request time. Rejection never moves money.
func reviewOutcome(txn *db_models.Transaction, balance decimal.Decimal, approve bool) (decimal.Decimal, error) {
	if txn.Type != db_models.TxnTypeDeposit && txn.Type != db_models.TxnTypeWithdrawal {
		return balance, utils.ErrInvalidState
	}
	if txn.Status != db_models.TxnStatusPending {
		return balance, utils.ErrInvalidState
	}
	if !approve {
		return balance, nil
	}
	if txn.Type == db_models.TxnTypeDeposit {
		return balance.Add(txn.Amount), nil
	}
	if balance.LessThan(txn.Amount) {
		return balance, utils.ErrInsufficientBalance
	}
	return balance.Sub(txn.Amount), nil
}

// Approve completes a pending deposit or withdrawal and applies its
// balance effect. The status flip is a conditional update on
// status='pending': of two concurrent approvals exactly one wins and
// the other observes ErrInvalidState.
func (s *TransactionService) Approve(ctx context.Context, transactionID uuid.UUID, adminNotes string) (*db_models.Transaction, error) {
	var approved *db_models.Transaction

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txn db_models.Transaction
		if err := tx.First(&txn, "id = ?", transactionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrTransactionNotFound
			}
			return err
		}

		var user db_models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&user, "id = ?", txn.UserID).Error; err != nil {
			return err
		}

		newBalance, err := reviewOutcome(&txn, user.Balance, true)
		if err != nil {
			return err
		}

		processedAt := utils.NowUnixSeconds()
		res := tx.Model(&db_models.Transaction{}).
			Where("id = ? AND status = ?", transactionID, db_models.TxnStatusPending).
			Updates(map[string]interface{}{
				"status":       db_models.TxnStatusCompleted,
				"admin_notes":  adminNotes,
				"processed_at": processedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrInvalidState
		}

		if err := tx.Model(&user).Update("balance", newBalance).Error; err != nil {
			return err
		}

		txn.Status = db_models.TxnStatusCompleted
		txn.AdminNotes = &adminNotes
		txn.ProcessedAt = &processedAt
		approved = &txn
		return nil
	})
	if err != nil {
		return nil, asServiceError(err)
	}

	return approved, nil
}

// Reject closes a pending deposit or withdrawal with no balance
// effect. One-shot, same guard as Approve.
func (s *TransactionService) Reject(ctx context.Context, transactionID uuid.UUID, adminNotes string) (*db_models.Transaction, error) {
	var rejected *db_models.Transaction

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txn db_models.Transaction
		if err := tx.First(&txn, "id = ?", transactionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrTransactionNotFound
			}
			return err
		}

		if _, err := reviewOutcome(&txn, decimal.Zero, false); err != nil {
			return err
		}

		processedAt := utils.NowUnixSeconds()
		res := tx.Model(&db_models.Transaction{}).
			Where("id = ? AND status = ?", transactionID, db_models.TxnStatusPending).
			Updates(map[string]interface{}{
				"status":       db_models.TxnStatusRejected,
				"admin_notes":  adminNotes,
				"processed_at": processedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrInvalidState
		}

		txn.Status = db_models.TxnStatusRejected
		txn.AdminNotes = &adminNotes
		txn.ProcessedAt = &processedAt
		rejected = &txn
		return nil
	})
	if err != nil {
		return nil, asServiceError(err)
	}

	return rejected, nil
}

func (s *TransactionService) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Transaction, error) {
	rows, err := s.transactionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return rows, nil
}

func (s *TransactionService) ListPendingByType(ctx context.Context, txnType db_models.TransactionType) ([]db_models.Transaction, error) {
	rows, err := s.transactionRepo.ListPendingByType(ctx, txnType)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return rows, nil
}

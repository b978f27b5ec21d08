package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vestora/internal/models/db_models"
)

type IUserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	FindByUsername(ctx context.Context, username string) (*db_models.User, error)
	FindByReferralCode(ctx context.Context, code string) (*db_models.User, error)
	Create(ctx context.Context, user *db_models.User) error
	CreateWithReferral(ctx context.Context, user *db_models.User, referral *db_models.Referral) error
	Update(ctx context.Context, user *db_models.User) error
	CountActive(ctx context.Context) (int64, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByReferralCode(ctx context.Context, code string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "referral_code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// CreateWithReferral writes the user and, when the signup carried a
// valid referral code, its Referral row in one transaction. Either
// both rows land or neither does.
func (r *UserRepository) CreateWithReferral(ctx context.Context, user *db_models.User, referral *db_models.Referral) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if referral == nil {
			return nil
		}
		referral.ReferredID = user.ID
		return tx.Create(referral).Error
	})
}

func (r *UserRepository) Update(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *UserRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("status = ?", db_models.UserStatusActive).
		Count(&count).Error
	return count, err
}

package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"thumbforge/internal/models/db_models"
)

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)

	// AddCredits applies an unconditional atomic increment.
	AddCredits(ctx context.Context, id uuid.UUID, n int64) error

	// TryDeductCredits decrements only when the balance covers n, in a single
	// conditional update. Returns false when the balance was insufficient.
	TryDeductCredits(ctx context.Context, id uuid.UUID, n int64) (bool, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (a *accountRepository) AddCredits(ctx context.Context, id uuid.UUID, n int64) error {
	return a.db.WithContext(ctx).Model(&db_models.Account{}).
		Where("id = ?", id).
		UpdateColumn("credits", gorm.Expr("credits + ?", n)).Error
}

func (a *accountRepository) TryDeductCredits(ctx context.Context, id uuid.UUID, n int64) (bool, error) {
	res := a.db.WithContext(ctx).Model(&db_models.Account{}).
		Where("id = ? AND credits >= ?", id, n).
		UpdateColumn("credits", gorm.Expr("credits - ?", n))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"thumbforge/internal/models/db_models"
	"thumbforge/internal/models/request_models"
	"thumbforge/internal/models/response_models"
	"thumbforge/internal/repositories"
	"thumbforge/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.AccountResponse, error)
	AdjustCredits(ctx context.Context, accountID uuid.UUID, request request_models.CreditsRequest) (int64, error)
}

type AccountService struct {
	accountRepo   repositories.AccountRepository
	signupCredits int64
	logger        *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, signupCredits int64, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo:   accountRepo,
		signupCredits: signupCredits,
		logger:        logger,
	}
}

// CreateAccount seeds the starting balance so new users can try generation
// before paying.
func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:             request.DisplayName,
		Email:            request.Email,
		PasswordHash:     hashedPassword,
		Role:             "user",
		Credits:          a.signupCredits,
		SubscriptionTier: db_models.TierFree,
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}

func (a *AccountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return &response_models.AccountResponse{
		ID:               account.ID,
		Name:             account.Name,
		Email:            account.Email,
		Credits:          account.Credits,
		SubscriptionTier: string(account.SubscriptionTier),
	}, nil
}

// AdjustCredits is the administrative add/deduct operation. Deduct fails
// closed when the balance cannot cover the amount.
func (a *AccountService) AdjustCredits(ctx context.Context, accountID uuid.UUID, request request_models.CreditsRequest) (int64, error) {
	switch request.Action {
	case "add":
		if err := a.accountRepo.AddCredits(ctx, accountID, request.Credits); err != nil {
			return 0, utils.ErrDatabaseError
		}
	case "deduct":
		ok, err := a.accountRepo.TryDeductCredits(ctx, accountID, request.Credits)
		if err != nil {
			return 0, utils.ErrDatabaseError
		}
		if !ok {
			return 0, utils.ErrInsufficientCredits
		}
	default:
		return 0, utils.ErrInvalidGenerationParams
	}

	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil || account == nil {
		return 0, utils.ErrDatabaseError
	}
	a.logger.Info("credits adjusted",
		zap.String("account_id", accountID.String()),
		zap.String("action", request.Action),
		zap.Int64("amount", request.Credits))
	return account.Credits, nil
}

package services

import (
	"context"
	"errors"
	"testing"

	"thumbforge/internal/models/db_models"
	"thumbforge/internal/models/request_models"
	"thumbforge/internal/repositories"
	"thumbforge/pkg/utils"
)

const testSignupCredits int64 = 3

func newAccountFixture(t *testing.T) (AccountServiceInterface, repositories.AccountRepository) {
	t.Helper()

	db := newTestDB(t)
	repo := repositories.NewAccountRepository(db)
	return NewAccountService(repo, testSignupCredits, nopLogger()), repo
}

func TestCreateAccountSeedsTrialCredits(t *testing.T) {
	svc, repo := newAccountFixture(t)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Creator",
		Email:       "creator@example.com",
		Password:    "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	account, err := repo.FindByEmail(context.Background(), "creator@example.com")
	if err != nil || account == nil {
		t.Fatalf("find account: %v", err)
	}
	if account.Credits != testSignupCredits {
		t.Fatalf("credits = %d, want %d", account.Credits, testSignupCredits)
	}
	if account.SubscriptionTier != db_models.TierFree || account.Role != "user" {
		t.Fatalf("tier=%s role=%s, want free/user", account.SubscriptionTier, account.Role)
	}
	if account.PasswordHash == "hunter2hunter2" {
		t.Fatal("password stored in clear")
	}
	if err := utils.ComparePasswords(account.PasswordHash, "hunter2hunter2"); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	svc, _ := newAccountFixture(t)

	req := request_models.SignUpRequest{DisplayName: "A", Email: "dup@example.com", Password: "hunter2hunter2"}
	if err := svc.CreateAccount(context.Background(), req); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	if err := svc.CreateAccount(context.Background(), req); !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Fatalf("err = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newAccountFixture(t)

	signup := request_models.SignUpRequest{DisplayName: "A", Email: "login@example.com", Password: "hunter2hunter2"}
	if err := svc.CreateAccount(context.Background(), signup); err != nil {
		t.Fatalf("signup: %v", err)
	}

	token, err := svc.Login(context.Background(), request_models.LoginRequest{Email: "login@example.com", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	_, err = svc.Login(context.Background(), request_models.LoginRequest{Email: "login@example.com", Password: "wrong"})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	_, err = svc.Login(context.Background(), request_models.LoginRequest{Email: "nobody@example.com", Password: "hunter2hunter2"})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials for unknown email", err)
	}
}

func TestAdjustCredits(t *testing.T) {
	svc, repo := newAccountFixture(t)

	if err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "A", Email: "credits@example.com", Password: "hunter2hunter2",
	}); err != nil {
		t.Fatalf("signup: %v", err)
	}
	account, _ := repo.FindByEmail(context.Background(), "credits@example.com")

	balance, err := svc.AdjustCredits(context.Background(), account.ID, request_models.CreditsRequest{Action: "add", Credits: 5})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if balance != testSignupCredits+5 {
		t.Fatalf("balance = %d, want %d", balance, testSignupCredits+5)
	}

	balance, err = svc.AdjustCredits(context.Background(), account.ID, request_models.CreditsRequest{Action: "deduct", Credits: 2})
	if err != nil {
		t.Fatalf("deduct: %v", err)
	}
	if balance != testSignupCredits+3 {
		t.Fatalf("balance = %d, want %d", balance, testSignupCredits+3)
	}

	// Deduct fails closed when the balance cannot cover the amount.
	_, err = svc.AdjustCredits(context.Background(), account.ID, request_models.CreditsRequest{Action: "deduct", Credits: 100})
	if !errors.Is(err, utils.ErrInsufficientCredits) {
		t.Fatalf("err = %v, want ErrInsufficientCredits", err)
	}
	reloaded, _ := repo.FindById(context.Background(), account.ID)
	if reloaded.Credits != testSignupCredits+3 {
		t.Fatalf("balance = %d, want unchanged %d", reloaded.Credits, testSignupCredits+3)
	}
}

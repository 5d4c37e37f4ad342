package services

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"thumbforge/internal/models/db_models"
	"thumbforge/pkg/payment"
	"thumbforge/pkg/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// A single connection keeps every session on the same in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&db_models.Account{},
		&db_models.Plan{},
		&db_models.Order{},
		&db_models.Payment{},
		&db_models.Generation{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedAccount(t *testing.T, db *gorm.DB, credits int64) *db_models.Account {
	t.Helper()

	account := &db_models.Account{
		Name:             "Test User",
		Email:            uuid.NewString() + "@example.com",
		PasswordHash:     "x",
		Role:             "user",
		Credits:          credits,
		SubscriptionTier: db_models.TierFree,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return account
}

func seedPlans(t *testing.T, db *gorm.DB) {
	t.Helper()

	plans := []db_models.Plan{
		{Code: "basic", Name: "Basic", Credits: 40, PriceMinor: 49900, Currency: "INR", IsActive: true},
		{Code: "pro", Name: "Pro", Credits: 100, PriceMinor: 99900, Currency: "INR", IsActive: true},
		{Code: db_models.PlanCustom, Name: "Pay as you go", Credits: 0, PriceMinor: 1500, Currency: "INR", IsActive: true},
	}
	for i := range plans {
		if err := db.Create(&plans[i]).Error; err != nil {
			t.Fatalf("seed plan %s: %v", plans[i].Code, err)
		}
	}
}

func accountCredits(t *testing.T, db *gorm.DB, id uuid.UUID) int64 {
	t.Helper()

	var account db_models.Account
	if err := db.First(&account, "id = ?", id).Error; err != nil {
		t.Fatalf("reload account: %v", err)
	}
	return account.Credits
}

// fakeImageClient stands in for the image model.
type fakeImageClient struct {
	mu            sync.Mutex
	generateCalls int
	generateErr   error
	enhanceErr    error
	enhanced      string
	lastPrompt    string
}

func (f *fakeImageClient) GenerateImage(ctx context.Context, prompt string, refs []utils.ReferenceImage) (*utils.GeneratedImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.generateCalls++
	f.lastPrompt = prompt
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	return &utils.GeneratedImage{MIMEType: "image/png", Data: []byte("fake-png")}, nil
}

func (f *fakeImageClient) EnhancePrompt(ctx context.Context, prompt string) (string, error) {
	if f.enhanceErr != nil {
		return "", f.enhanceErr
	}
	if f.enhanced != "" {
		return f.enhanced, nil
	}
	return prompt, nil
}

func (f *fakeImageClient) Close() error { return nil }

func (f *fakeImageClient) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.generateCalls
}

type fakeUploader struct {
	mu        sync.Mutex
	uploads   int
	uploadErr error
}

func (f *fakeUploader) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.uploads++
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return "https://cdn.example.com/thumbnails/" + uuid.NewString() + ".png", nil
}

// fakeProvider is a scriptable payment gateway.
type fakeProvider struct {
	name string

	mu       sync.Mutex
	state    payment.OrderState
	fetchErr error

	webhookOrderID string
	webhookErr     error
	checkoutErr    error

	fetchCalls  int
	createCalls int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) CreateOrder(ctx context.Context, req payment.CreateOrder) (*payment.ProviderOrder, error) {
	f.mu.Lock()
	f.createCalls++
	f.mu.Unlock()
	return &payment.ProviderOrder{
		OrderID:       "order_" + req.ReceiptID,
		CheckoutToken: "tok_" + req.ReceiptID,
	}, nil
}

func (f *fakeProvider) FetchOrderState(ctx context.Context, providerOrderID string) (*payment.OrderState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fetchCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	state := f.state
	return &state, nil
}

func (f *fakeProvider) VerifyWebhook(req payment.WebhookRequest) (string, error) {
	if f.webhookErr != nil {
		return "", f.webhookErr
	}
	return f.webhookOrderID, nil
}

func (f *fakeProvider) VerifyCheckoutSignature(orderID, paymentID, signature string) error {
	return f.checkoutErr
}

func nopLogger() *zap.Logger { return zap.NewNop() }

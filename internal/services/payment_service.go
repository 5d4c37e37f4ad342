package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"thumbforge/internal/models/db_models"
	"thumbforge/internal/models/request_models"
	"thumbforge/internal/models/response_models"
	"thumbforge/internal/repositories"
	"thumbforge/pkg/payment"
	"thumbforge/pkg/utils"
)

// maxPayAsYouGoCredits bounds a single custom checkout.
const maxPayAsYouGoCredits int64 = 1000

type PaymentServiceInterface interface {
	CreateOrder(ctx context.Context, accountID uuid.UUID, providerName string, req request_models.CreateOrderRequest) (*response_models.CreateOrderResponse, error)
	VerifyPayment(ctx context.Context, providerName string, req request_models.VerifyPaymentRequest) (*response_models.SettlementResponse, error)
	HandleWebhook(ctx context.Context, providerName string, wh payment.WebhookRequest) (*response_models.SettlementResponse, error)
}

type PaymentService struct {
	db          *gorm.DB
	planRepo    repositories.IPlanRepository
	accountRepo repositories.AccountRepository
	providers   map[string]payment.Provider
	logger      *zap.Logger
}

func NewPaymentService(
	db *gorm.DB,
	planRepo repositories.IPlanRepository,
	accountRepo repositories.AccountRepository,
	providers []payment.Provider,
	logger *zap.Logger,
) PaymentServiceInterface {
	byName := make(map[string]payment.Provider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}
	return &PaymentService{
		db:          db,
		planRepo:    planRepo,
		accountRepo: accountRepo,
		providers:   byName,
		logger:      logger,
	}
}

// CreateOrder resolves the plan, creates the provider-side order, then writes
// the pending Order row that settlement later reconciles against.
func (s *PaymentService) CreateOrder(ctx context.Context, accountID uuid.UUID, providerName string, req request_models.CreateOrderRequest) (*response_models.CreateOrderResponse, error) {
	provider, ok := s.providers[providerName]
	if !ok {
		return nil, utils.ErrUnknownProvider
	}

	account, err := s.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	planCode := req.PlanCode
	if req.IsPayAsYouGo {
		planCode = db_models.PlanCustom
	}
	plan, err := s.planRepo.GetActivePlanByCode(ctx, planCode)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	credits := plan.Credits
	amount := plan.PriceMinor
	if plan.Code == db_models.PlanCustom {
		if req.Credits < 1 || req.Credits > maxPayAsYouGoCredits {
			return nil, utils.ErrPlanNotFound
		}
		credits = req.Credits
		amount = req.Credits * plan.PriceMinor
	}

	providerOrder, err := provider.CreateOrder(ctx, payment.CreateOrder{
		ReceiptID:     uuid.NewString(),
		AccountID:     accountID.String(),
		AmountMinor:   amount,
		Currency:      plan.Currency,
		CustomerEmail: account.Email,
		CustomerPhone: "9999999999",
	})
	if err != nil {
		s.logger.Error("provider order creation failed",
			zap.String("provider", providerName), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrPaymentProvider, err)
	}

	order := &db_models.Order{
		AccountID:       accountID,
		PlanCode:        plan.Code,
		Credits:         credits,
		AmountMinor:     amount,
		Currency:        plan.Currency,
		Provider:        providerName,
		ProviderOrderID: providerOrder.OrderID,
		Status:          db_models.OrderStatusPending,
	}
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CreateOrderResponse{
		OrderID:       providerOrder.OrderID,
		AmountMinor:   amount,
		Currency:      plan.Currency,
		Provider:      providerName,
		CheckoutToken: providerOrder.CheckoutToken,
	}, nil
}

// VerifyPayment is the client-return trigger. For the signature-based provider
// the returned checkout signature is validated before anything else.
func (s *PaymentService) VerifyPayment(ctx context.Context, providerName string, req request_models.VerifyPaymentRequest) (*response_models.SettlementResponse, error) {
	provider, ok := s.providers[providerName]
	if !ok {
		return nil, utils.ErrUnknownProvider
	}
	if req.Signature != "" || req.PaymentID != "" {
		if err := provider.VerifyCheckoutSignature(req.OrderID, req.PaymentID, req.Signature); err != nil {
			return nil, err
		}
	}
	return s.reconcile(ctx, provider, req.OrderID)
}

// HandleWebhook is the asynchronous trigger; deliveries are at-least-once and
// may race the client verify. Signature verification happens before any
// database access.
func (s *PaymentService) HandleWebhook(ctx context.Context, providerName string, wh payment.WebhookRequest) (*response_models.SettlementResponse, error) {
	provider, ok := s.providers[providerName]
	if !ok {
		return nil, utils.ErrUnknownProvider
	}

	providerOrderID, err := provider.VerifyWebhook(wh)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidSignature) {
			return nil, err
		}
		// Authentic but unparseable/unrelated event: nothing to reconcile.
		s.logger.Warn("webhook ignored", zap.String("provider", providerName), zap.Error(err))
		return &response_models.SettlementResponse{Status: response_models.SettlementPending}, nil
	}
	return s.reconcile(ctx, provider, providerOrderID)
}

// reconcile transitions an order to a terminal state exactly once, no matter
// how many triggers observe it or in what order. Only the caller whose
// conditional update flips pending -> completed grants credits and writes the
// Payment row; everyone else sees the already-settled result.
func (s *PaymentService) reconcile(ctx context.Context, provider payment.Provider, providerOrderID string) (*response_models.SettlementResponse, error) {
	var order db_models.Order
	err := s.db.WithContext(ctx).First(&order, "provider_order_id = ?", providerOrderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrOrderNotFound
		}
		return nil, utils.ErrDatabaseError
	}

	// Both terminal states short-circuit: completed never re-credits, and
	// failed never resurrects, even if the provider later reports a capture.
	if order.Status != db_models.OrderStatusPending {
		return s.settledResponse(&order), nil
	}

	state, err := provider.FetchOrderState(ctx, providerOrderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPaymentProvider, err)
	}

	switch state.Status {
	case payment.StatusPending:
		return &response_models.SettlementResponse{
			Status:  response_models.SettlementPending,
			Message: "Payment not confirmed yet",
		}, nil

	case payment.StatusFailed:
		// Terminal on the provider side; losing this race to a concurrent
		// success is fine, the conditional update just affects zero rows.
		res := s.db.WithContext(ctx).Model(&db_models.Order{}).
			Where("provider_order_id = ? AND status = ?", providerOrderID, db_models.OrderStatusPending).
			Update("status", db_models.OrderStatusFailed)
		if res.Error != nil {
			return nil, utils.ErrDatabaseError
		}
		return &response_models.SettlementResponse{
			Status:  response_models.SettlementFailed,
			Message: fmt.Sprintf("Payment failed. Contact support with order id %s", providerOrderID),
		}, nil

	case payment.StatusSuccess:
		won := false
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&db_models.Order{}).
				Where("provider_order_id = ? AND status = ?", providerOrderID, db_models.OrderStatusPending).
				Updates(map[string]interface{}{
					"status":              db_models.OrderStatusCompleted,
					"provider_payment_id": state.PaymentID,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return nil // another trigger reached a terminal state first
			}
			won = true

			if err := tx.Model(&db_models.Account{}).
				Where("id = ?", order.AccountID).
				UpdateColumn("credits", gorm.Expr("credits + ?", order.Credits)).Error; err != nil {
				return err
			}
			if order.PlanCode != db_models.PlanCustom {
				if err := tx.Model(&db_models.Account{}).
					Where("id = ?", order.AccountID).
					Update("subscription_tier", order.PlanCode).Error; err != nil {
					return err
				}
			}
			return tx.Create(&db_models.Payment{
				OrderID:           order.ID,
				AccountID:         order.AccountID,
				AmountMinor:       order.AmountMinor,
				Currency:          order.Currency,
				ProviderPaymentID: state.PaymentID,
				Status:            "captured",
			}).Error
		})
		if err != nil {
			s.logger.Error("settlement transaction failed",
				zap.String("provider_order_id", providerOrderID), zap.Error(err))
			return nil, utils.ErrDatabaseError
		}

		if won {
			s.logger.Info("order settled",
				zap.String("provider_order_id", providerOrderID),
				zap.Int64("credits", order.Credits))
			return &response_models.SettlementResponse{
				Status:  response_models.SettlementSuccess,
				Credits: order.Credits,
			}, nil
		}

		// Lost the race: report whichever terminal state actually won. A
		// concurrent trigger may have marked the order failed, in which case
		// claiming success would tell the user about credits never granted.
		var settled db_models.Order
		if err := s.db.WithContext(ctx).First(&settled, "provider_order_id = ?", providerOrderID).Error; err != nil {
			return nil, utils.ErrDatabaseError
		}
		return s.settledResponse(&settled), nil

	default:
		return nil, fmt.Errorf("%w: unknown provider status %q", utils.ErrPaymentProvider, state.Status)
	}
}

// settledResponse reports an order already in a terminal state.
func (s *PaymentService) settledResponse(order *db_models.Order) *response_models.SettlementResponse {
	if order.Status == db_models.OrderStatusCompleted {
		return &response_models.SettlementResponse{
			Status:  response_models.SettlementSuccess,
			Credits: order.Credits,
			Message: "Payment already settled",
		}
	}
	return &response_models.SettlementResponse{
		Status:  response_models.SettlementFailed,
		Message: fmt.Sprintf("Payment failed. Contact support with order id %s", order.ProviderOrderID),
	}
}

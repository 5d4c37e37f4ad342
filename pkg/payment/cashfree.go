package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	cashfree_pg "github.com/cashfree/cashfree-pg/v4"

	"thumbforge/pkg/utils"
)

const ProviderCashfree = "cashfree"

const cashfreeAPIVersion = "2023-08-01"

// CashfreeProvider is the session-based provider: checkout opens against a
// payment session id and webhooks are signed over timestamp+body.
type CashfreeProvider struct {
	returnURL string
}

// NewCashfreeProvider configures the SDK's package-level credentials once at
// startup; they are read-only afterwards.
func NewCashfreeProvider(clientID, clientSecret, environment, returnURL string) (*CashfreeProvider, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("missing cashfree credentials")
	}

	cashfree_pg.XClientId = &clientID
	cashfree_pg.XClientSecret = &clientSecret
	if strings.EqualFold(environment, "production") {
		cashfree_pg.XEnvironment = cashfree_pg.PRODUCTION
	} else {
		cashfree_pg.XEnvironment = cashfree_pg.SANDBOX
	}

	return &CashfreeProvider{returnURL: returnURL}, nil
}

func (p *CashfreeProvider) Name() string { return ProviderCashfree }

func (p *CashfreeProvider) CreateOrder(ctx context.Context, req CreateOrder) (*ProviderOrder, error) {
	version := cashfreeAPIVersion
	amount := float64(req.AmountMinor) / 100

	request := cashfree_pg.CreateOrderRequest{
		OrderId:       &req.ReceiptID,
		OrderAmount:   amount,
		OrderCurrency: req.Currency,
		CustomerDetails: cashfree_pg.CustomerDetails{
			CustomerId:    req.AccountID,
			CustomerPhone: req.CustomerPhone,
		},
	}
	if req.CustomerEmail != "" {
		request.CustomerDetails.CustomerEmail = &req.CustomerEmail
	}
	if p.returnURL != "" {
		request.OrderMeta = &cashfree_pg.OrderMeta{ReturnUrl: &p.returnURL}
	}

	resp, _, err := cashfree_pg.PGCreateOrder(&version, &request, nil, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("cashfree create order: %w", err)
	}
	if resp.OrderId == nil || resp.PaymentSessionId == nil {
		return nil, fmt.Errorf("cashfree create order: incomplete response")
	}

	return &ProviderOrder{OrderID: *resp.OrderId, CheckoutToken: *resp.PaymentSessionId}, nil
}

func (p *CashfreeProvider) FetchOrderState(ctx context.Context, providerOrderID string) (*OrderState, error) {
	version := cashfreeAPIVersion

	order, _, err := cashfree_pg.PGFetchOrder(&version, providerOrderID, nil, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("cashfree fetch order: %w", err)
	}

	status := ""
	if order.OrderStatus != nil {
		status = *order.OrderStatus
	}

	switch status {
	case "PAID":
		return &OrderState{Status: StatusSuccess, PaymentID: p.fetchPaymentID(providerOrderID)}, nil
	case "EXPIRED", "TERMINATED":
		return &OrderState{Status: StatusFailed}, nil
	default: // ACTIVE and anything unknown stays pending
		return &OrderState{Status: StatusPending}, nil
	}
}

func (p *CashfreeProvider) fetchPaymentID(providerOrderID string) string {
	version := cashfreeAPIVersion
	payments, _, err := cashfree_pg.PGOrderFetchPayments(&version, providerOrderID, nil, nil, nil)
	if err != nil {
		return ""
	}
	for _, pay := range payments {
		if pay.PaymentStatus != nil && *pay.PaymentStatus == "SUCCESS" && pay.CfPaymentId != nil {
			return *pay.CfPaymentId
		}
	}
	return ""
}

// cashfree webhooks carry x-webhook-signature and x-webhook-timestamp headers;
// the SDK recomputes the HMAC over timestamp+body.
func (p *CashfreeProvider) VerifyWebhook(req WebhookRequest) (string, error) {
	if _, err := cashfree_pg.PGVerifyWebhookSignature(req.Signature, string(req.Body), req.Timestamp); err != nil {
		return "", utils.ErrInvalidSignature
	}

	var event struct {
		Data struct {
			Order struct {
				OrderID string `json:"order_id"`
			} `json:"order"`
		} `json:"data"`
	}
	if err := json.Unmarshal(req.Body, &event); err != nil {
		return "", fmt.Errorf("cashfree webhook payload: %w", err)
	}
	if event.Data.Order.OrderID == "" {
		return "", fmt.Errorf("cashfree webhook payload: no order id")
	}
	return event.Data.Order.OrderID, nil
}

// Session-based checkout has no client-side signature; the authoritative
// status fetch is the verification.
func (p *CashfreeProvider) VerifyCheckoutSignature(orderID, paymentID, signature string) error {
	return nil
}

package payment

import (
	"context"
	"encoding/json"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	rzputils "github.com/razorpay/razorpay-go/utils"

	"thumbforge/pkg/utils"
)

const ProviderRazorpay = "razorpay"

// RazorpayProvider is the signature-based provider: the paying client returns
// with an HMAC over order_id|payment_id, and webhooks are signed over the raw
// body.
type RazorpayProvider struct {
	client        *razorpay.Client
	keySecret     string
	webhookSecret string
}

func NewRazorpayProvider(keyID, keySecret, webhookSecret string) (*RazorpayProvider, error) {
	if keyID == "" || keySecret == "" {
		return nil, fmt.Errorf("missing razorpay credentials")
	}
	return &RazorpayProvider{
		client:        razorpay.NewClient(keyID, keySecret),
		keySecret:     keySecret,
		webhookSecret: webhookSecret,
	}, nil
}

func (p *RazorpayProvider) Name() string { return ProviderRazorpay }

func (p *RazorpayProvider) CreateOrder(ctx context.Context, req CreateOrder) (*ProviderOrder, error) {
	data := map[string]interface{}{
		"amount":   req.AmountMinor,
		"currency": req.Currency,
		"receipt":  req.ReceiptID,
		"notes": map[string]interface{}{
			"account_id": req.AccountID,
		},
	}

	order, err := p.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay create order: %w", err)
	}

	id, _ := order["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("razorpay create order: no id in response")
	}

	// Razorpay checkout only needs the order id on the client side.
	return &ProviderOrder{OrderID: id, CheckoutToken: id}, nil
}

func (p *RazorpayProvider) FetchOrderState(ctx context.Context, providerOrderID string) (*OrderState, error) {
	payments, err := p.client.Order.Payments(providerOrderID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay fetch payments: %w", err)
	}

	items, _ := payments["items"].([]interface{})
	state := &OrderState{Status: StatusPending}
	for _, item := range items {
		entity, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		status, _ := entity["status"].(string)
		id, _ := entity["id"].(string)
		switch status {
		case "captured":
			return &OrderState{Status: StatusSuccess, PaymentID: id}, nil
		case "failed":
			state = &OrderState{Status: StatusFailed, PaymentID: id}
		}
	}
	return state, nil
}

// razorpayEvent is the slice of the webhook payload we act on.
type razorpayEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

func (p *RazorpayProvider) VerifyWebhook(req WebhookRequest) (string, error) {
	if !rzputils.VerifyWebhookSignature(string(req.Body), req.Signature, p.webhookSecret) {
		return "", utils.ErrInvalidSignature
	}

	var event razorpayEvent
	if err := json.Unmarshal(req.Body, &event); err != nil {
		return "", fmt.Errorf("razorpay webhook payload: %w", err)
	}
	if event.Payload.Payment.Entity.OrderID == "" {
		return "", fmt.Errorf("razorpay webhook payload: no order id")
	}
	return event.Payload.Payment.Entity.OrderID, nil
}

func (p *RazorpayProvider) VerifyCheckoutSignature(orderID, paymentID, signature string) error {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	if !rzputils.VerifyPaymentSignature(params, signature, p.keySecret) {
		return utils.ErrInvalidSignature
	}
	return nil
}

package payment

import "context"

// Status is the provider-side judgement of an order, normalized across
// providers.
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusPending Status = "PENDING"
	StatusFailed  Status = "FAILED"
)

type CreateOrder struct {
	ReceiptID     string // our order uuid, handed to the provider for traceability
	AccountID     string
	AmountMinor   int64
	Currency      string
	CustomerEmail string
	CustomerPhone string
}

type ProviderOrder struct {
	OrderID       string // provider-issued id, unique per provider
	CheckoutToken string // what the client needs to open hosted checkout
}

type OrderState struct {
	Status    Status
	PaymentID string // set once the provider reports a payment
}

// WebhookRequest carries the raw delivery; Timestamp is only meaningful for
// providers that sign over it.
type WebhookRequest struct {
	Body      []byte
	Signature string
	Timestamp string
}

// Provider abstracts a payment gateway: create an order, report its
// authoritative state, verify callback authenticity. Implementations are
// constructed once at startup and shared across requests.
type Provider interface {
	Name() string
	CreateOrder(ctx context.Context, req CreateOrder) (*ProviderOrder, error)
	FetchOrderState(ctx context.Context, providerOrderID string) (*OrderState, error)

	// VerifyWebhook authenticates a delivery before anything else happens and
	// returns the provider order id the event refers to.
	VerifyWebhook(req WebhookRequest) (string, error)

	// VerifyCheckoutSignature validates the fields the paying client brings
	// back from hosted checkout. Providers without a client-side signature
	// return nil.
	VerifyCheckoutSignature(orderID, paymentID, signature string) error
}

package response_models

// CreateOrderResponse is returned to the client so it can open the provider's
// checkout. CheckoutToken is the Razorpay order id or the Cashfree payment
// session id, depending on the provider.
type CreateOrderResponse struct {
	OrderID       string `json:"order_id"`
	AmountMinor   int64  `json:"amount"`
	Currency      string `json:"currency"`
	Provider      string `json:"provider"`
	CheckoutToken string `json:"checkout_token"`
}

type SettlementStatus string

const (
	SettlementSuccess SettlementStatus = "SUCCESS"
	SettlementPending SettlementStatus = "PENDING"
	SettlementFailed  SettlementStatus = "FAILED"
)

type SettlementResponse struct {
	Status  SettlementStatus `json:"status"`
	Credits int64            `json:"credits,omitempty"`
	Message string           `json:"message,omitempty"`
}

package request_models

// CreateOrderRequest starts a checkout: either a named plan or a pay-as-you-go
// credit quantity.
type CreateOrderRequest struct {
	PlanCode     string `json:"plan_code"`
	IsPayAsYouGo bool   `json:"is_pay_as_you_go"`
	Credits      int64  `json:"credits"`
}

// VerifyPaymentRequest is the client-initiated verify call. The signature
// fields are only present for the signature-based provider.
type VerifyPaymentRequest struct {
	OrderID   string `json:"order_id" binding:"required"`
	PaymentID string `json:"payment_id"`
	Signature string `json:"signature"`
}

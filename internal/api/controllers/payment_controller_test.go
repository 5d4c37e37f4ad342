package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"thumbforge/internal/models/request_models"
	"thumbforge/internal/models/response_models"
	"thumbforge/pkg/payment"
	"thumbforge/pkg/utils"
)

type stubPaymentService struct {
	webhookErr error
	lastBody   string
	lastSig    string
}

func (s *stubPaymentService) CreateOrder(ctx context.Context, accountID uuid.UUID, providerName string, req request_models.CreateOrderRequest) (*response_models.CreateOrderResponse, error) {
	return nil, utils.ErrUnknownProvider
}

func (s *stubPaymentService) VerifyPayment(ctx context.Context, providerName string, req request_models.VerifyPaymentRequest) (*response_models.SettlementResponse, error) {
	return &response_models.SettlementResponse{Status: response_models.SettlementSuccess}, nil
}

func (s *stubPaymentService) HandleWebhook(ctx context.Context, providerName string, wh payment.WebhookRequest) (*response_models.SettlementResponse, error) {
	s.lastBody = string(wh.Body)
	s.lastSig = wh.Signature
	if s.webhookErr != nil {
		return nil, s.webhookErr
	}
	return &response_models.SettlementResponse{Status: response_models.SettlementSuccess}, nil
}

func webhookRequest(t *testing.T, stub *stubPaymentService, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	controller := NewPaymentController(stub)
	r.POST("/api/v1/webhooks/:provider", controller.HandleWebhook)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/razorpay", strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookEndpointAcksValidEvent(t *testing.T) {
	stub := &stubPaymentService{}
	w := webhookRequest(t, stub, `{"event":"payment.captured"}`, map[string]string{
		"X-Razorpay-Signature": "sig123",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"received":true`) {
		t.Fatalf("body = %s, want received ack", w.Body.String())
	}
	if stub.lastSig != "sig123" || stub.lastBody != `{"event":"payment.captured"}` {
		t.Fatalf("service got sig=%q body=%q", stub.lastSig, stub.lastBody)
	}
}

func TestWebhookEndpointAcksUnknownOrder(t *testing.T) {
	stub := &stubPaymentService{webhookErr: utils.ErrOrderNotFound}
	w := webhookRequest(t, stub, `{}`, nil)

	// Unknown orders are acked so the provider stops redelivering.
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestWebhookEndpointRejectsBadSignature(t *testing.T) {
	stub := &stubPaymentService{webhookErr: utils.ErrInvalidSignature}
	w := webhookRequest(t, stub, `{}`, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestWebhookEndpointRetriesOnInternalError(t *testing.T) {
	stub := &stubPaymentService{webhookErr: utils.ErrDatabaseError}
	w := webhookRequest(t, stub, `{}`, nil)

	// Non-2xx tells the provider to redeliver later.
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"thumbforge/internal/models/request_models"
	"thumbforge/internal/services"
	"thumbforge/pkg/payment"
	"thumbforge/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// CreateOrder godoc
// @Summary Create a checkout order with the given provider
// @Tags Payments
// @Accept json
// @Produce json
// @Param provider path string true "Payment provider" Enums(razorpay, cashfree)
// @Param request body request_models.CreateOrderRequest true "Create Order Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/{provider}/create-order [post]
func (p *PaymentController) CreateOrder(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var request request_models.CreateOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	order, err := p.paymentService.CreateOrder(c.Request.Context(), accountID, c.Param("provider"), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, order, "Order created")
}

// VerifyPayment godoc
// @Summary Verify a payment after returning from hosted checkout
// @Tags Payments
// @Accept json
// @Produce json
// @Param provider path string true "Payment provider" Enums(razorpay, cashfree)
// @Param request body request_models.VerifyPaymentRequest true "Verify Payment Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/{provider}/verify [post]
func (p *PaymentController) VerifyPayment(c *gin.Context) {
	if _, ok := currentAccountID(c); !ok {
		return
	}

	var request request_models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := p.paymentService.VerifyPayment(c.Request.Context(), c.Param("provider"), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "")
}

// HandleWebhook godoc
// @Summary Provider webhook receiver
// @Tags Payments
// @Accept json
// @Produce json
// @Param provider path string true "Payment provider" Enums(razorpay, cashfree)
// @Success 200 {object} map[string]bool
// @Router /webhooks/{provider} [post]
func (p *PaymentController) HandleWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	wh := payment.WebhookRequest{
		Body:      body,
		Signature: webhookSignature(c),
		Timestamp: c.GetHeader("x-webhook-timestamp"),
	}

	_, err = p.paymentService.HandleWebhook(c.Request.Context(), c.Param("provider"), wh)
	switch {
	case err == nil, errors.Is(err, utils.ErrOrderNotFound):
		// Unknown orders are acked so the provider stops redelivering; the
		// event may belong to another system sharing the gateway account.
		c.JSON(http.StatusOK, gin.H{"received": true})
	case errors.Is(err, utils.ErrInvalidSignature):
		utils.RespondError(c, http.StatusBadRequest, "Invalid signature")
	case errors.Is(err, utils.ErrUnknownProvider):
		utils.RespondError(c, http.StatusNotFound, "Unknown provider")
	default:
		// Transient failure: let the provider redeliver.
		utils.RespondError(c, http.StatusInternalServerError, "Failed to process event")
	}
}

func webhookSignature(c *gin.Context) string {
	if sig := c.GetHeader("X-Razorpay-Signature"); sig != "" {
		return sig
	}
	return c.GetHeader("x-webhook-signature")
}

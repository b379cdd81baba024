package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trustcheck/services/payment"
	"trustcheck/utils"
)

// PaymentHandler exposes the payment pass-through endpoints.
type PaymentHandler struct {
	Service        payment.Service
	PublishableKey string
}

func NewPaymentHandler(svc payment.Service, publishableKey string) *PaymentHandler {
	return &PaymentHandler{Service: svc, PublishableKey: publishableKey}
}

// CreatePaymentIntentHandler handles POST /api/create-payment-intent. The
// amount is forwarded to the payment provider as-is and the client secret is
// relayed verbatim; confirmation happens client-side.
func (h *PaymentHandler) CreatePaymentIntentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input struct {
		Amount int64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("payment intent input unreadable", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": utils.MsgPaymentFailure})
		return
	}

	secret, err := h.Service.CreateIntent(c.Request.Context(), input.Amount)
	if err != nil {
		logger.Error("payment intent creation failed", zap.Int64("amount", input.Amount), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": utils.MsgPaymentFailure})
		return
	}

	c.JSON(http.StatusOK, secret)
}

// PaymentConfigHandler handles GET /api/payment-config, giving the frontend
// the publishable key it needs to confirm payments.
func (h *PaymentHandler) PaymentConfigHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"publishableKey": h.PublishableKey})
}

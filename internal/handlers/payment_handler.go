package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tugfund/funding-orchestrator/internal/service"
	"github.com/tugfund/funding-orchestrator/internal/telemetry"
)

type PaymentHandler struct {
	orchestrator *service.Orchestrator
}

func NewPaymentHandler(orchestrator *service.Orchestrator) *PaymentHandler {
	return &PaymentHandler{orchestrator: orchestrator}
}

type createIntentRequest struct {
	Amount     float64 `json:"amount"`
	Side       string  `json:"side"`
	CustomerID string  `json:"customerId"`
}

// CreatePaymentIntent hands the client opaque credentials for processor-side
// confirmation. No ledger mutation happens on this route.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req createIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	credentials, err := h.orchestrator.CreatePaymentIntent(c.Request.Context(), service.CreateIntentInput{
		Amount:     req.Amount,
		Side:       req.Side,
		CustomerID: req.CustomerID,
	})
	if err != nil {
		telemetry.Logger.Error("Error creating payment intent",
			zap.String("side", req.Side),
			zap.Error(err),
		)
		respondServiceError(c, err)

		return
	}

	c.JSON(http.StatusOK, credentials)
}

type chargeSavedRequest struct {
	Amount     float64 `json:"amount"`
	Side       string  `json:"side"`
	CustomerID string  `json:"customerId"`
}

// PayWithSavedMethod charges the customer's default instrument off-session and
// returns the updated totals.
func (h *PaymentHandler) PayWithSavedMethod(c *gin.Context) {
	var req chargeSavedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	totals, err := h.orchestrator.ChargeSavedMethod(c.Request.Context(), service.ChargeSavedInput{
		Amount:     req.Amount,
		Side:       req.Side,
		CustomerID: req.CustomerID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, totals)
}

type recordPaymentRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
	Side            string `json:"side"`
}

// RecordPayment reconciles a client-confirmed intent into the ledger.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req recordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	totals, err := h.orchestrator.RecordPayment(c.Request.Context(), service.RecordPaymentInput{
		PaymentIntentID: req.PaymentIntentID,
		Side:            req.Side,
	})
	if err != nil {
		telemetry.Logger.Error("Error recording payment",
			zap.String("payment_intent_id", req.PaymentIntentID),
			zap.Error(err),
		)
		respondServiceError(c, err)

		return
	}

	c.JSON(http.StatusOK, totals)
}

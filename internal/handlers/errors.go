package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v74"

	"github.com/tugfund/funding-orchestrator/internal/service"
)

// respondServiceError maps orchestration errors onto the HTTP taxonomy:
// validation 400, missing saved instrument 404, processor-state conflicts 409,
// processor outages 502.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidSide):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid side"})
	case errors.Is(err, service.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
	case errors.Is(err, service.ErrMissingCustomerID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing customer id"})
	case errors.Is(err, service.ErrMissingPaymentIntentID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing payment intent id"})
	case errors.Is(err, service.ErrNoSavedPaymentMethod):
		c.JSON(http.StatusNotFound, gin.H{"error": "No saved payment method"})
	case errors.Is(err, service.ErrPaymentNotCompleted):
		c.JSON(http.StatusConflict, gin.H{"error": "Payment not completed"})
	case errors.Is(err, service.ErrPaymentSideMismatch):
		c.JSON(http.StatusConflict, gin.H{"error": "Payment side mismatch"})
	case errors.Is(err, service.ErrPaymentRequiresAction):
		c.JSON(http.StatusConflict, gin.H{"error": "Payment requires action"})
	default:
		var declined *service.ProcessorDeclinedError
		if errors.As(err, &declined) {
			c.JSON(http.StatusConflict, gin.H{"error": declined.Message})
			return
		}

		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
			c.JSON(http.StatusBadGateway, gin.H{"error": stripeErr.Msg})
			return
		}

		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment processor unavailable"})
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tugfund/funding-orchestrator/internal/service"
)

type FundingHandler struct {
	orchestrator *service.Orchestrator
}

func NewFundingHandler(orchestrator *service.Orchestrator) *FundingHandler {
	return &FundingHandler{orchestrator: orchestrator}
}

// GetTotals returns the current two-sided ledger snapshot.
func (h *FundingHandler) GetTotals(c *gin.Context) {
	totals, err := h.orchestrator.Totals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read totals"})
		return
	}

	c.JSON(http.StatusOK, totals)
}

// GetSavedMethod reports the customer's default instrument, if any. A customer
// without one is a normal state and answers hasSavedMethod=false.
func (h *FundingHandler) GetSavedMethod(c *gin.Context) {
	customerID := c.Query("customerId")

	view, err := h.orchestrator.SavedMethod(c.Request.Context(), customerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tugfund/funding-orchestrator/internal/handlers"
	"github.com/tugfund/funding-orchestrator/internal/service"
	"github.com/tugfund/funding-orchestrator/internal/telemetry"
)

func NewRouter(orchestrator *service.Orchestrator) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(telemetry.TracingMiddleware())

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "funding-orchestrator"})
	})

	paymentHandler := handlers.NewPaymentHandler(orchestrator)
	fundingHandler := handlers.NewFundingHandler(orchestrator)

	api := r.Group("/api")
	api.POST("/create-payment-intent", paymentHandler.CreatePaymentIntent)
	api.POST("/pay-with-saved-method", paymentHandler.PayWithSavedMethod)
	api.POST("/record-payment", paymentHandler.RecordPayment)
	api.GET("/saved-payment", fundingHandler.GetSavedMethod)
	api.GET("/totals", fundingHandler.GetTotals)

	return r
}

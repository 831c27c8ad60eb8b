package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tugfund/funding-orchestrator/internal/api"
	"github.com/tugfund/funding-orchestrator/internal/config"
	"github.com/tugfund/funding-orchestrator/internal/events"
	"github.com/tugfund/funding-orchestrator/internal/interfaces"
	"github.com/tugfund/funding-orchestrator/internal/ledger"
	"github.com/tugfund/funding-orchestrator/internal/processor"
	"github.com/tugfund/funding-orchestrator/internal/service"
	"github.com/tugfund/funding-orchestrator/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize telemetry
	if err := telemetry.InitTelemetry("funding-orchestrator"); err != nil {
		panic(fmt.Sprintf("Failed to initialize telemetry: %v", err))
	}
	defer telemetry.Shutdown(context.Background())

	telemetry.Logger.Info("Starting Funding Orchestrator")

	if cfg.StripeSecretKey == "" {
		telemetry.Logger.Fatal("Missing STRIPE_SECRET_KEY")
	}

	// Payment processor client
	stripeProcessor := processor.NewStripe(cfg.StripeSecretKey)

	// Totals ledger: Redis-backed when configured, in-process otherwise
	var totalsLedger interfaces.TotalsLedger
	if cfg.RedisURL != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr: cfg.RedisURL,
		})
		totalsLedger = ledger.NewRedis(redisClient)

		telemetry.Logger.Info("Using Redis totals ledger", zap.String("addr", cfg.RedisURL))
	} else {
		totalsLedger = ledger.NewMemory()

		telemetry.Logger.Info("Using in-memory totals ledger; totals reset on restart")
	}

	// Optional Kafka publisher for payment recorded events
	var publisher interfaces.EventPublisher
	if cfg.KafkaBrokers != "" {
		kafkaPublisher := events.NewKafkaPublisher(cfg.KafkaBrokers)
		defer kafkaPublisher.Close()

		publisher = kafkaPublisher
	}

	// Initialize orchestrator service
	orchestrator := service.NewOrchestrator(stripeProcessor, totalsLedger, publisher, cfg.Currency)

	// Setup Gin router
	r := api.NewRouter(orchestrator)

	// Setup HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		telemetry.Logger.Info("Funding Orchestrator starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			telemetry.Logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	telemetry.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		telemetry.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	telemetry.Logger.Info("Server exited")
}

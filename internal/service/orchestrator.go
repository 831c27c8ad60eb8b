package service

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/tugfund/funding-orchestrator/internal/interfaces"
	"github.com/tugfund/funding-orchestrator/internal/models"
	"github.com/tugfund/funding-orchestrator/internal/telemetry"
)

// Orchestrator drives the payment intent lifecycle against the processor and
// commits confirmed amounts to the totals ledger.
type Orchestrator struct {
	processor interfaces.PaymentProcessor
	ledger    interfaces.TotalsLedger
	publisher interfaces.EventPublisher
	currency  string
}

func NewOrchestrator(
	processor interfaces.PaymentProcessor,
	ledger interfaces.TotalsLedger,
	publisher interfaces.EventPublisher,
	currency string,
) *Orchestrator {
	return &Orchestrator{
		processor: processor,
		ledger:    ledger,
		publisher: publisher,
		currency:  currency,
	}
}

// Totals returns the current ledger snapshot.
func (o *Orchestrator) Totals(ctx context.Context) (models.Totals, error) {
	return o.ledger.Read(ctx)
}

// resolveCustomer returns a usable processor customer id. An unusable
// candidate (deleted, malformed, unknown) is discarded and a fresh customer is
// created; this branch never surfaces an error to the caller.
func (o *Orchestrator) resolveCustomer(ctx context.Context, candidate string) (string, error) {
	if candidate != "" {
		customer, err := o.processor.GetCustomer(ctx, candidate)
		if err == nil && customer != nil && !customer.Deleted {
			return customer.ID, nil
		}

		telemetry.Logger.Warn("Discarding unusable customer candidate",
			zap.String("customer_id", candidate),
			zap.Error(err),
		)
	}

	customer, err := o.processor.CreateCustomer(ctx)
	if err != nil {
		return "", err
	}

	return customer.ID, nil
}

// normalizeAmount validates a client-supplied amount and rounds it to integer
// minor currency units. Amounts are int64 everywhere past this boundary.
func normalizeAmount(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, ErrInvalidAmount
	}

	if amount < float64(models.MinimumChargeAmount) {
		return 0, ErrInvalidAmount
	}

	return int64(math.Round(amount)), nil
}

// recordConfirmed bumps the domain counters and publishes the recorded event.
// Publish failures are logged and dropped; the ledger is already updated.
func (o *Orchestrator) recordConfirmed(ctx context.Context, intentID string, side models.Side, amount int64, totals models.Totals) {
	telemetry.PaymentsRecorded.WithLabelValues(string(side)).Inc()
	telemetry.AmountRecorded.WithLabelValues(string(side)).Add(float64(amount))

	if o.publisher == nil {
		return
	}

	event := models.PaymentRecordedEvent{
		PaymentIntentID: intentID,
		Side:            side,
		Amount:          amount,
		Totals:          totals,
		RecordedAt:      time.Now(),
	}

	if err := o.publisher.PublishPaymentRecorded(ctx, event); err != nil {
		telemetry.Logger.Warn("Failed to publish payment recorded event",
			zap.String("payment_intent_id", intentID),
			zap.String("side", string(side)),
			zap.Error(err),
		)
	}
}

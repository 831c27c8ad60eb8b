package service

import (
	"context"

	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"

	"github.com/tugfund/funding-orchestrator/internal/models"
	"github.com/tugfund/funding-orchestrator/internal/telemetry"
)

type RecordPaymentInput struct {
	PaymentIntentID string
	Side            string
}

// RecordPayment turns a client-confirmed charge into a ledger credit. The
// client's claimed status and side are never trusted: the canonical intent is
// always re-fetched from the processor, and only a succeeded status whose
// metadata agrees with the requested side is committed.
//
// Repeated calls with the same succeeded intent id credit the ledger again;
// there is no processed-intent store. At-least-once on purpose.
func (o *Orchestrator) RecordPayment(ctx context.Context, in RecordPaymentInput) (models.Totals, error) {
	if in.PaymentIntentID == "" {
		return models.Totals{}, ErrMissingPaymentIntentID
	}

	side, ok := models.ParseSide(in.Side)
	if !ok {
		return models.Totals{}, ErrInvalidSide
	}

	intent, err := o.processor.GetPaymentIntent(ctx, in.PaymentIntentID)
	if err != nil {
		return models.Totals{}, err
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return models.Totals{}, ErrPaymentNotCompleted
	}

	if meta := intent.Metadata["side"]; meta != "" && meta != string(side) {
		return models.Totals{}, ErrPaymentSideMismatch
	}

	// The money has already moved, so failing to save the instrument for
	// future off-session charges must not block recording.
	if intent.Customer != nil && intent.PaymentMethod != nil {
		if err := o.processor.SetDefaultPaymentMethod(ctx, intent.Customer.ID, intent.PaymentMethod.ID); err != nil {
			telemetry.Logger.Warn("Failed to persist default payment method",
				zap.String("customer_id", intent.Customer.ID),
				zap.String("payment_method_id", intent.PaymentMethod.ID),
				zap.Error(err),
			)
		}
	}

	totals, err := o.ledger.Add(ctx, side, intent.Amount)
	if err != nil {
		return models.Totals{}, err
	}

	o.recordConfirmed(ctx, intent.ID, side, intent.Amount, totals)

	return totals, nil
}

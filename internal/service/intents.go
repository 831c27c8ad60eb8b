package service

import (
	"context"

	"github.com/stripe/stripe-go/v74"

	"github.com/tugfund/funding-orchestrator/internal/models"
	"github.com/tugfund/funding-orchestrator/internal/telemetry"
)

type CreateIntentInput struct {
	Amount     float64
	Side       string
	CustomerID string
}

// CreatePaymentIntent creates a new charge intent flagged for future
// off-session reuse and mints an ephemeral key scoped to the customer. The
// caller forwards the returned credentials to the client-side confirmation
// flow; the ledger is never touched here.
func (o *Orchestrator) CreatePaymentIntent(ctx context.Context, in CreateIntentInput) (models.IntentCredentials, error) {
	side, ok := models.ParseSide(in.Side)
	if !ok {
		return models.IntentCredentials{}, ErrInvalidSide
	}

	amount, err := normalizeAmount(in.Amount)
	if err != nil {
		return models.IntentCredentials{}, err
	}

	customerID, err := o.resolveCustomer(ctx, in.CustomerID)
	if err != nil {
		return models.IntentCredentials{}, err
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(o.currency),
		Customer: stripe.String(customerID),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		SetupFutureUsage: stripe.String(string(stripe.PaymentIntentSetupFutureUsageOffSession)),
	}
	params.AddMetadata("side", string(side))

	intent, err := o.processor.CreatePaymentIntent(ctx, params)
	if err != nil {
		return models.IntentCredentials{}, err
	}

	key, err := o.processor.CreateEphemeralKey(ctx, customerID)
	if err != nil {
		return models.IntentCredentials{}, err
	}

	telemetry.PaymentIntentsCreated.WithLabelValues(string(side)).Inc()

	return models.IntentCredentials{
		ClientSecret: intent.ClientSecret,
		CustomerID:   customerID,
		EphemeralKey: key.Secret,
	}, nil
}

package service

import (
	"context"

	"github.com/stripe/stripe-go/v74"

	"github.com/tugfund/funding-orchestrator/internal/models"
)

type ChargeSavedInput struct {
	Amount     float64
	Side       string
	CustomerID string
}

// ChargeSavedMethod executes an immediate off-session charge against the
// customer's default instrument and, on processor-confirmed success, commits
// the amount to the ledger. Anything short of a succeeded status leaves the
// ledger untouched.
func (o *Orchestrator) ChargeSavedMethod(ctx context.Context, in ChargeSavedInput) (models.Totals, error) {
	if in.CustomerID == "" {
		return models.Totals{}, ErrMissingCustomerID
	}

	side, ok := models.ParseSide(in.Side)
	if !ok {
		return models.Totals{}, ErrInvalidSide
	}

	amount, err := normalizeAmount(in.Amount)
	if err != nil {
		return models.Totals{}, err
	}

	customer, err := o.processor.GetCustomer(ctx, in.CustomerID)
	if err != nil || customer == nil || customer.Deleted ||
		customer.InvoiceSettings == nil || customer.InvoiceSettings.DefaultPaymentMethod == nil {
		return models.Totals{}, ErrNoSavedPaymentMethod
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(amount),
		Currency:      stripe.String(o.currency),
		Customer:      stripe.String(customer.ID),
		PaymentMethod: stripe.String(customer.InvoiceSettings.DefaultPaymentMethod.ID),
		Confirm:       stripe.Bool(true),
		OffSession:    stripe.Bool(true),
	}
	params.AddMetadata("side", string(side))

	intent, err := o.processor.CreatePaymentIntent(ctx, params)
	if err != nil {
		if stripeErr, ok := err.(*stripe.Error); ok {
			return models.Totals{}, &ProcessorDeclinedError{Message: stripeErr.Msg}
		}

		return models.Totals{}, &ProcessorDeclinedError{Message: err.Error()}
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return models.Totals{}, ErrPaymentRequiresAction
	}

	totals, err := o.ledger.Add(ctx, side, intent.Amount)
	if err != nil {
		return models.Totals{}, err
	}

	o.recordConfirmed(ctx, intent.ID, side, intent.Amount, totals)

	return totals, nil
}

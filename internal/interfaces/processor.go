package interfaces

import (
	"context"

	"github.com/stripe/stripe-go/v74"
)

// PaymentProcessor defines the contract for the upstream payment processor.
// The processor owns customers, payment intents and payment methods; the
// orchestrator only ever reads intent status, never writes it.
type PaymentProcessor interface {
	GetCustomer(ctx context.Context, id string) (*stripe.Customer, error)
	CreateCustomer(ctx context.Context) (*stripe.Customer, error)
	SetDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error

	CreatePaymentIntent(ctx context.Context, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	GetPaymentIntent(ctx context.Context, id string) (*stripe.PaymentIntent, error)

	GetPaymentMethod(ctx context.Context, id string) (*stripe.PaymentMethod, error)
	CreateEphemeralKey(ctx context.Context, customerID string) (*stripe.EphemeralKey, error)
}

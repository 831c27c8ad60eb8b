package processor

import (
	"context"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
)

// EphemeralKeyAPIVersion is the processor API version ephemeral keys are
// pinned to; the mobile/web payment sheet must be built against the same one.
const EphemeralKeyAPIVersion = "2024-06-20"

// Stripe adapts the stripe-go client to the PaymentProcessor contract.
type Stripe struct {
	api *client.API
}

func NewStripe(secretKey string) *Stripe {
	var api client.API
	api.Init(secretKey, nil)

	return &Stripe{api: &api}
}

func (s *Stripe) GetCustomer(ctx context.Context, id string) (*stripe.Customer, error) {
	params := &stripe.CustomerParams{}
	params.Context = ctx

	return s.api.Customers.Get(id, params)
}

func (s *Stripe) CreateCustomer(ctx context.Context) (*stripe.Customer, error) {
	params := &stripe.CustomerParams{}
	params.Context = ctx

	return s.api.Customers.New(params)
}

func (s *Stripe) SetDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	params := &stripe.CustomerParams{
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(paymentMethodID),
		},
	}
	params.Context = ctx

	_, err := s.api.Customers.Update(customerID, params)

	return err
}

func (s *Stripe) CreatePaymentIntent(ctx context.Context, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	params.Context = ctx

	return s.api.PaymentIntents.New(params)
}

func (s *Stripe) GetPaymentIntent(ctx context.Context, id string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	return s.api.PaymentIntents.Get(id, params)
}

func (s *Stripe) GetPaymentMethod(ctx context.Context, id string) (*stripe.PaymentMethod, error) {
	params := &stripe.PaymentMethodParams{}
	params.Context = ctx

	return s.api.PaymentMethods.Get(id, params)
}

func (s *Stripe) CreateEphemeralKey(ctx context.Context, customerID string) (*stripe.EphemeralKey, error) {
	params := &stripe.EphemeralKeyParams{
		Customer:      stripe.String(customerID),
		StripeVersion: stripe.String(EphemeralKeyAPIVersion),
	}
	params.Context = ctx

	return s.api.EphemeralKeys.New(params)
}

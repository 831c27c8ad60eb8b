package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74"

	"github.com/tugfund/funding-orchestrator/internal/ledger"
	"github.com/tugfund/funding-orchestrator/internal/models"
)

// fakeProcessor implements interfaces.PaymentProcessor against in-memory maps.
type fakeProcessor struct {
	customers      map[string]*stripe.Customer
	intents        map[string]*stripe.PaymentIntent
	paymentMethods map[string]*stripe.PaymentMethod

	createIntentFn   func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	setDefaultErr    error
	ephemeralKeyErr  error
	createdCustomers int
	intentCalls      int
	setDefaultCalls  [][2]string
}

func newFakeProcessor() *fakeProcessor {
	return &fakeProcessor{
		customers:      make(map[string]*stripe.Customer),
		intents:        make(map[string]*stripe.PaymentIntent),
		paymentMethods: make(map[string]*stripe.PaymentMethod),
	}
}

func (f *fakeProcessor) GetCustomer(ctx context.Context, id string) (*stripe.Customer, error) {
	if c, ok := f.customers[id]; ok {
		return c, nil
	}

	return nil, &stripe.Error{Code: stripe.ErrorCodeResourceMissing, Msg: "No such customer: " + id}
}

func (f *fakeProcessor) CreateCustomer(ctx context.Context) (*stripe.Customer, error) {
	f.createdCustomers++
	c := &stripe.Customer{ID: fmt.Sprintf("cus_new_%d", f.createdCustomers)}
	f.customers[c.ID] = c

	return c, nil
}

func (f *fakeProcessor) SetDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	f.setDefaultCalls = append(f.setDefaultCalls, [2]string{customerID, paymentMethodID})

	return f.setDefaultErr
}

func (f *fakeProcessor) CreatePaymentIntent(ctx context.Context, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	f.intentCalls++

	if f.createIntentFn != nil {
		return f.createIntentFn(params)
	}

	return &stripe.PaymentIntent{
		ID:           "pi_test",
		Amount:       *params.Amount,
		Status:       stripe.PaymentIntentStatusSucceeded,
		ClientSecret: "pi_test_secret",
		Metadata:     params.Metadata,
	}, nil
}

func (f *fakeProcessor) GetPaymentIntent(ctx context.Context, id string) (*stripe.PaymentIntent, error) {
	if pi, ok := f.intents[id]; ok {
		return pi, nil
	}

	return nil, &stripe.Error{Code: stripe.ErrorCodeResourceMissing, Msg: "No such payment_intent: " + id}
}

func (f *fakeProcessor) GetPaymentMethod(ctx context.Context, id string) (*stripe.PaymentMethod, error) {
	if pm, ok := f.paymentMethods[id]; ok {
		return pm, nil
	}

	return nil, &stripe.Error{Code: stripe.ErrorCodeResourceMissing, Msg: "No such payment_method: " + id}
}

func (f *fakeProcessor) CreateEphemeralKey(ctx context.Context, customerID string) (*stripe.EphemeralKey, error) {
	if f.ephemeralKeyErr != nil {
		return nil, f.ephemeralKeyErr
	}

	return &stripe.EphemeralKey{Secret: "ek_test_secret"}, nil
}

// customerWithDefaultCard seeds a customer whose default instrument is a card.
func (f *fakeProcessor) customerWithDefaultCard(customerID, pmID string) {
	pm := &stripe.PaymentMethod{
		ID:   pmID,
		Type: stripe.PaymentMethodTypeCard,
		Card: &stripe.PaymentMethodCard{Brand: stripe.PaymentMethodCardBrandVisa, Last4: "4242"},
	}
	f.paymentMethods[pmID] = pm
	f.customers[customerID] = &stripe.Customer{
		ID:              customerID,
		InvoiceSettings: &stripe.CustomerInvoiceSettings{DefaultPaymentMethod: pm},
	}
}

func newTestOrchestrator(f *fakeProcessor) (*Orchestrator, *ledger.Memory) {
	totals := ledger.NewMemory()

	return NewOrchestrator(f, totals, nil, "usd"), totals
}

func requireTotalsUnchanged(t *testing.T, l *ledger.Memory, before models.Totals) {
	t.Helper()

	after, err := l.Read(context.Background())
	require.NoError(t, err)
	require.Equal(t, before, after)
}

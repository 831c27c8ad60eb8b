package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74"
)

func TestChargeSavedMethodValidation(t *testing.T) {
	tests := []struct {
		name    string
		in      ChargeSavedInput
		wantErr error
	}{
		{"missing customer id", ChargeSavedInput{Amount: 500, Side: "left"}, ErrMissingCustomerID},
		{"invalid side", ChargeSavedInput{Amount: 500, Side: "up", CustomerID: "cus_1"}, ErrInvalidSide},
		{"amount below minimum", ChargeSavedInput{Amount: 99, Side: "left", CustomerID: "cus_1"}, ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeProcessor()
			f.customerWithDefaultCard("cus_1", "pm_card")
			o, _ := newTestOrchestrator(f)

			_, err := o.ChargeSavedMethod(context.Background(), tt.in)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, f.intentCalls)
		})
	}
}

func TestChargeSavedMethodWithoutDefaultInstrument(t *testing.T) {
	tests := []struct {
		name string
		seed func(f *fakeProcessor)
	}{
		{"unknown customer", func(f *fakeProcessor) {}},
		{"deleted customer", func(f *fakeProcessor) {
			f.customers["cus_1"] = &stripe.Customer{ID: "cus_1", Deleted: true}
		}},
		{"no default instrument", func(f *fakeProcessor) {
			f.customers["cus_1"] = &stripe.Customer{ID: "cus_1", InvoiceSettings: &stripe.CustomerInvoiceSettings{}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeProcessor()
			tt.seed(f)
			o, _ := newTestOrchestrator(f)

			_, err := o.ChargeSavedMethod(context.Background(), ChargeSavedInput{
				Amount:     500,
				Side:       "left",
				CustomerID: "cus_1",
			})
			require.ErrorIs(t, err, ErrNoSavedPaymentMethod)
			assert.Zero(t, f.intentCalls)
		})
	}
}

func TestChargeSavedMethodConfirmsOffSession(t *testing.T) {
	f := newFakeProcessor()
	f.customerWithDefaultCard("cus_1", "pm_card")

	var got *stripe.PaymentIntentParams

	f.createIntentFn = func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
		got = params
		return &stripe.PaymentIntent{
			ID:     "pi_saved",
			Amount: *params.Amount,
			Status: stripe.PaymentIntentStatusSucceeded,
		}, nil
	}

	o, totals := newTestOrchestrator(f)

	result, err := o.ChargeSavedMethod(context.Background(), ChargeSavedInput{
		Amount:     700,
		Side:       "right",
		CustomerID: "cus_1",
	})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "cus_1", *got.Customer)
	assert.Equal(t, "pm_card", *got.PaymentMethod)
	assert.True(t, *got.Confirm)
	assert.True(t, *got.OffSession)
	assert.Equal(t, "right", got.Metadata["side"])

	assert.Equal(t, int64(700), result.Right)
	assert.Equal(t, int64(0), result.Left)

	snapshot, err := totals.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, result, snapshot)
}

func TestChargeSavedMethodNonSucceededStatusIsNotRecorded(t *testing.T) {
	f := newFakeProcessor()
	f.customerWithDefaultCard("cus_1", "pm_card")
	f.createIntentFn = func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
		return &stripe.PaymentIntent{
			ID:     "pi_sca",
			Amount: *params.Amount,
			Status: stripe.PaymentIntentStatusRequiresAction,
		}, nil
	}

	o, totals := newTestOrchestrator(f)

	before, err := totals.Read(context.Background())
	require.NoError(t, err)

	_, err = o.ChargeSavedMethod(context.Background(), ChargeSavedInput{
		Amount:     500,
		Side:       "left",
		CustomerID: "cus_1",
	})
	require.ErrorIs(t, err, ErrPaymentRequiresAction)

	requireTotalsUnchanged(t, totals, before)
}

func TestChargeSavedMethodDeclineCarriesProcessorMessage(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"stripe decline", &stripe.Error{Msg: "Your card was declined."}, "Your card was declined."},
		{"transport failure", errors.New("connection reset"), "connection reset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeProcessor()
			f.customerWithDefaultCard("cus_1", "pm_card")
			f.createIntentFn = func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
				return nil, tt.err
			}

			o, totals := newTestOrchestrator(f)

			before, err := totals.Read(context.Background())
			require.NoError(t, err)

			_, err = o.ChargeSavedMethod(context.Background(), ChargeSavedInput{
				Amount:     500,
				Side:       "left",
				CustomerID: "cus_1",
			})

			var declined *ProcessorDeclinedError
			require.ErrorAs(t, err, &declined)
			assert.Equal(t, tt.wantMsg, declined.Message)

			requireTotalsUnchanged(t, totals, before)
		})
	}
}

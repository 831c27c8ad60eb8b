package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74"
)

func TestSavedMethodRequiresCustomerID(t *testing.T) {
	o, _ := newTestOrchestrator(newFakeProcessor())

	_, err := o.SavedMethod(context.Background(), "")
	require.ErrorIs(t, err, ErrMissingCustomerID)
}

func TestSavedMethodAbsenceIsNotAnError(t *testing.T) {
	tests := []struct {
		name string
		seed func(f *fakeProcessor)
	}{
		{"unknown customer", func(f *fakeProcessor) {}},
		{"deleted customer", func(f *fakeProcessor) {
			f.customers["cus_1"] = &stripe.Customer{ID: "cus_1", Deleted: true}
		}},
		{"no invoice settings", func(f *fakeProcessor) {
			f.customers["cus_1"] = &stripe.Customer{ID: "cus_1"}
		}},
		{"no default instrument", func(f *fakeProcessor) {
			f.customers["cus_1"] = &stripe.Customer{ID: "cus_1", InvoiceSettings: &stripe.CustomerInvoiceSettings{}}
		}},
		{"default instrument is not a card", func(f *fakeProcessor) {
			pm := &stripe.PaymentMethod{ID: "pm_sepa", Type: stripe.PaymentMethodTypeSEPADebit}
			f.paymentMethods["pm_sepa"] = pm
			f.customers["cus_1"] = &stripe.Customer{
				ID:              "cus_1",
				InvoiceSettings: &stripe.CustomerInvoiceSettings{DefaultPaymentMethod: pm},
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeProcessor()
			tt.seed(f)
			o, _ := newTestOrchestrator(f)

			view, err := o.SavedMethod(context.Background(), "cus_1")
			require.NoError(t, err)
			assert.False(t, view.HasSavedMethod)
			assert.Empty(t, view.Brand)
			assert.Empty(t, view.Last4)
		})
	}
}

func TestSavedMethodReportsCardDetails(t *testing.T) {
	f := newFakeProcessor()
	f.customerWithDefaultCard("cus_1", "pm_card")
	o, _ := newTestOrchestrator(f)

	view, err := o.SavedMethod(context.Background(), "cus_1")
	require.NoError(t, err)

	assert.True(t, view.HasSavedMethod)
	assert.Equal(t, "visa", view.Brand)
	assert.Equal(t, "4242", view.Last4)
}

package service

import (
	"context"

	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"

	"github.com/tugfund/funding-orchestrator/internal/models"
	"github.com/tugfund/funding-orchestrator/internal/telemetry"
)

// SavedMethod reports whether the customer has a reusable card-like default
// instrument, with its display metadata. Absence is a normal state, not an
// error: an unknown or deleted customer simply has no saved method.
func (o *Orchestrator) SavedMethod(ctx context.Context, customerID string) (models.SavedMethodView, error) {
	if customerID == "" {
		return models.SavedMethodView{}, ErrMissingCustomerID
	}

	customer, err := o.processor.GetCustomer(ctx, customerID)
	if err != nil {
		telemetry.Logger.Debug("Customer lookup failed, reporting no saved method",
			zap.String("customer_id", customerID),
			zap.Error(err),
		)

		return models.SavedMethodView{}, nil
	}

	if customer == nil || customer.Deleted || customer.InvoiceSettings == nil || customer.InvoiceSettings.DefaultPaymentMethod == nil {
		return models.SavedMethodView{}, nil
	}

	pm, err := o.processor.GetPaymentMethod(ctx, customer.InvoiceSettings.DefaultPaymentMethod.ID)
	if err != nil {
		return models.SavedMethodView{}, err
	}

	if pm.Type != stripe.PaymentMethodTypeCard || pm.Card == nil {
		return models.SavedMethodView{}, nil
	}

	return models.SavedMethodView{
		HasSavedMethod: true,
		Brand:          string(pm.Card.Brand),
		Last4:          pm.Card.Last4,
	}, nil
}

package service

import "errors"

var (
	ErrInvalidSide            = errors.New("invalid side")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrMissingCustomerID      = errors.New("missing customer id")
	ErrMissingPaymentIntentID = errors.New("missing payment intent id")
	ErrNoSavedPaymentMethod   = errors.New("no saved payment method")
	ErrPaymentNotCompleted    = errors.New("payment not completed")
	ErrPaymentSideMismatch    = errors.New("payment side mismatch")
	ErrPaymentRequiresAction  = errors.New("payment requires action")
)

// ProcessorDeclinedError carries the processor's own message for a declined or
// otherwise failed off-session charge. Nothing was recorded to the ledger.
type ProcessorDeclinedError struct {
	Message string
}

func (e *ProcessorDeclinedError) Error() string {
	return e.Message
}

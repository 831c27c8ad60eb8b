package models

import "time"

// Side is one of the two funding targets a payment is attributed to.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// ParseSide validates a client-supplied side value.
func ParseSide(s string) (Side, bool) {
	switch Side(s) {
	case SideLeft, SideRight:
		return Side(s), true
	}
	return "", false
}

// MinimumChargeAmount is the smallest accepted charge, in minor currency units.
const MinimumChargeAmount int64 = 100

// Totals is the two-sided aggregate of confirmed amounts, in minor currency units.
// LastUpdated is a unix millisecond timestamp.
type Totals struct {
	Left        int64 `json:"left"`
	Right       int64 `json:"right"`
	LastUpdated int64 `json:"lastUpdated"`
}

// SavedMethodView is a read-only projection of a customer's default payment
// instrument, computed on demand and never stored.
type SavedMethodView struct {
	HasSavedMethod bool   `json:"hasSavedMethod"`
	Brand          string `json:"brand,omitempty"`
	Last4          string `json:"last4,omitempty"`
}

// IntentCredentials are the opaque strings a client needs to drive
// processor-side confirmation of a freshly created payment intent.
type IntentCredentials struct {
	ClientSecret string `json:"clientSecret"`
	CustomerID   string `json:"customerId"`
	EphemeralKey string `json:"ephemeralKey"`
}

// PaymentRecordedEvent is published after a confirmed amount lands in the ledger.
type PaymentRecordedEvent struct {
	PaymentIntentID string    `json:"payment_intent_id,omitempty"`
	Side            Side      `json:"side"`
	Amount          int64     `json:"amount"`
	Totals          Totals    `json:"totals"`
	RecordedAt      time.Time `json:"recorded_at"`
}

package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PaymentIntentsCreated counts intents handed to clients for confirmation,
	// labeled by side. Creation never implies a ledger credit.
	PaymentIntentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "funding_payment_intents_created_total",
		Help: "Payment intents created, by side.",
	}, []string{"side"})

	// PaymentsRecorded counts processor-confirmed payments committed to the ledger.
	PaymentsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "funding_payments_recorded_total",
		Help: "Confirmed payments recorded to the ledger, by side.",
	}, []string{"side"})

	// AmountRecorded accumulates recorded minor currency units per side.
	AmountRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "funding_amount_recorded_minor_units_total",
		Help: "Total recorded amount in minor currency units, by side.",
	}, []string{"side"})
)

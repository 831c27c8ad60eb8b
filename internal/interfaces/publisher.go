package interfaces

import (
	"context"

	"github.com/tugfund/funding-orchestrator/internal/models"
)

// EventPublisher emits payment-recorded events for downstream consumers.
// Publishing is best-effort; a failure never blocks ledger recording.
type EventPublisher interface {
	PublishPaymentRecorded(ctx context.Context, event models.PaymentRecordedEvent) error
	Close() error
}

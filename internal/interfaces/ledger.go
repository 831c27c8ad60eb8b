package interfaces

import (
	"context"

	"github.com/tugfund/funding-orchestrator/internal/models"
)

// TotalsLedger defines the contract for the shared two-sided aggregate.
// Add must be an atomic read-modify-write; callers only invoke it after a
// processor-confirmed succeeded status.
type TotalsLedger interface {
	Read(ctx context.Context) (models.Totals, error)
	Add(ctx context.Context, side models.Side, amount int64) (models.Totals, error)
}

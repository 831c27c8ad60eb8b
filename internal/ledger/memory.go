package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tugfund/funding-orchestrator/internal/models"
)

// Memory is the in-process totals ledger. It lives for the lifetime of the
// process and is intentionally not durable.
type Memory struct {
	mu     sync.Mutex
	totals models.Totals
}

func NewMemory() *Memory {
	return &Memory{
		totals: models.Totals{LastUpdated: time.Now().UnixMilli()},
	}
}

func (m *Memory) Read(ctx context.Context) (models.Totals, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.totals, nil
}

// Add increments the named side under the lock, so concurrent callers never
// lose an update. LastUpdated strictly increases on every mutation.
func (m *Memory) Add(ctx context.Context, side models.Side, amount int64) (models.Totals, error) {
	if amount < 0 {
		return models.Totals{}, fmt.Errorf("negative amount %d", amount)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	switch side {
	case models.SideLeft:
		m.totals.Left += amount
	case models.SideRight:
		m.totals.Right += amount
	default:
		return models.Totals{}, fmt.Errorf("unknown side %q", side)
	}

	now := time.Now().UnixMilli()
	if now <= m.totals.LastUpdated {
		now = m.totals.LastUpdated + 1
	}
	m.totals.LastUpdated = now

	return m.totals, nil
}

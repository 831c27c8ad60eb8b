package ledger

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tugfund/funding-orchestrator/internal/models"
)

const totalsKey = "funding:totals"

// Redis keeps the totals in an externally owned hash, using HINCRBY so the
// read-modify-write happens inside the store. Survives process restarts and
// can be shared by multiple instances.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Read(ctx context.Context) (models.Totals, error) {
	fields, err := r.client.HMGet(ctx, totalsKey, "left", "right", "lastUpdated").Result()
	if err != nil {
		return models.Totals{}, fmt.Errorf("read totals: %w", err)
	}

	return models.Totals{
		Left:        parseField(fields[0]),
		Right:       parseField(fields[1]),
		LastUpdated: parseField(fields[2]),
	}, nil
}

func (r *Redis) Add(ctx context.Context, side models.Side, amount int64) (models.Totals, error) {
	if amount < 0 {
		return models.Totals{}, fmt.Errorf("negative amount %d", amount)
	}

	if side != models.SideLeft && side != models.SideRight {
		return models.Totals{}, fmt.Errorf("unknown side %q", side)
	}

	now := time.Now().UnixMilli()

	pipe := r.client.TxPipeline()
	pipe.HIncrBy(ctx, totalsKey, string(side), amount)
	pipe.HSet(ctx, totalsKey, "lastUpdated", now)
	left := pipe.HGet(ctx, totalsKey, "left")
	right := pipe.HGet(ctx, totalsKey, "right")

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return models.Totals{}, fmt.Errorf("add to totals: %w", err)
	}

	return models.Totals{
		Left:        parseResult(left),
		Right:       parseResult(right),
		LastUpdated: now,
	}, nil
}

func parseField(v interface{}) int64 {
	s, ok := v.(string)
	if !ok {
		return 0
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}

	return n
}

func parseResult(cmd *redis.StringCmd) int64 {
	n, err := strconv.ParseInt(cmd.Val(), 10, 64)
	if err != nil {
		return 0
	}

	return n
}

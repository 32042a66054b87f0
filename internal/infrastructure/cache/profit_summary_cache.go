package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mobiledger/backend/internal/domain/report"
)

const profitSummaryKeyPrefix = "report:profit_summary:"

// RedisProfitSummaryCache caches dashboard profit summaries in Redis.
// Keys are scoped per tenant and period; invalidation drops every period
// for the tenant since any new transaction can touch any open period.
type RedisProfitSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisProfitSummaryCache creates a cache with the given entry TTL
func NewRedisProfitSummaryCache(client *redis.Client, ttl time.Duration) *RedisProfitSummaryCache {
	return &RedisProfitSummaryCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached summary or redis.Nil-wrapped error on a miss
func (c *RedisProfitSummaryCache) Get(ctx context.Context, tenantID uuid.UUID, periodStart, periodEnd time.Time) (*report.ProfitSummary, error) {
	data, err := c.client.Get(ctx, c.key(tenantID, periodStart, periodEnd)).Bytes()
	if err != nil {
		return nil, err
	}

	var summary report.ProfitSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to decode cached profit summary: %w", err)
	}
	return &summary, nil
}

// Set stores a summary under its own period bounds
func (c *RedisProfitSummaryCache) Set(ctx context.Context, tenantID uuid.UUID, summary *report.ProfitSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode profit summary: %w", err)
	}
	return c.client.Set(ctx, c.key(tenantID, summary.PeriodStart, summary.PeriodEnd), data, c.ttl).Err()
}

// Invalidate drops every cached period for the tenant
func (c *RedisProfitSummaryCache) Invalidate(ctx context.Context, tenantID uuid.UUID) error {
	pattern := profitSummaryKeyPrefix + tenantID.String() + ":*"

	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	keys := make([]string, 0, 16)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *RedisProfitSummaryCache) key(tenantID uuid.UUID, periodStart, periodEnd time.Time) string {
	return fmt.Sprintf("%s%s:%s:%s",
		profitSummaryKeyPrefix,
		tenantID.String(),
		periodStart.UTC().Format("20060102"),
		periodEnd.UTC().Format("20060102"),
	)
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jobtrail/jobtrail-api/internal/core/domain"
)

const cacheTTL = 30 * time.Second

// JobCache stores a per-owner snapshot of the job listing as JSON.
// Key format: jobs:<owner_id>. Entries are short-lived and invalidated
// on every mutation, so a stale read window is bounded by cacheTTL even
// if an invalidation is lost.
type JobCache struct {
	client *redis.Client
}

// NewJobCache creates a JobCache wrapping the given Redis client.
func NewJobCache(client *redis.Client) *JobCache {
	return &JobCache{client: client}
}

// Get returns the cached listing for ownerID. The second return value
// reports whether the cache held an entry.
func (c *JobCache) Get(ctx context.Context, ownerID string) ([]*domain.Job, bool, error) {
	raw, err := c.client.Get(ctx, c.key(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("job cache get: %w", err)
	}

	var jobs []*domain.Job
	if err := json.Unmarshal(raw, &jobs); err != nil {
		// A corrupt entry is treated as a miss and will be overwritten.
		return nil, false, nil
	}
	return jobs, true, nil
}

// Set stores the listing for ownerID (expires after cacheTTL).
func (c *JobCache) Set(ctx context.Context, ownerID string, jobs []*domain.Job) error {
	raw, err := json.Marshal(jobs)
	if err != nil {
		return fmt.Errorf("job cache marshal: %w", err)
	}
	return c.client.Set(ctx, c.key(ownerID), raw, cacheTTL).Err()
}

// Invalidate drops the cached listing for ownerID.
func (c *JobCache) Invalidate(ctx context.Context, ownerID string) error {
	return c.client.Del(ctx, c.key(ownerID)).Err()
}

func (c *JobCache) key(ownerID string) string {
	return fmt.Sprintf("jobs:%s", ownerID)
}

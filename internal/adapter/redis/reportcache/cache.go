// Package reportcache keeps rendered reports in Redis, keyed by subject.
package reportcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/inkblot-backend/internal/report"
)

// Store is implemented by Cache and Noop.
type Store interface {
	Get(ctx context.Context, subjectID uuid.UUID) (*report.Report, bool, error)
	Set(ctx context.Context, subjectID uuid.UUID, r report.Report) error
	Invalidate(ctx context.Context, subjectID uuid.UUID) error
}

var (
	_ Store = (*Cache)(nil)
	_ Store = Noop{}
)

// Cache is a Redis-backed report cache. Entries expire after ttl; a zero
// ttl keeps them until invalidated.
type Cache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// New creates a report cache on top of client.
func New(client *redis.Client, prefix string, ttl time.Duration) *Cache {
	return &Cache{client: client, prefix: prefix, ttl: ttl}
}

func (c *Cache) key(subjectID uuid.UUID) string {
	return c.prefix + subjectID.String()
}

// Get returns the cached report of a subject. ok is false on a miss.
func (c *Cache) Get(ctx context.Context, subjectID uuid.UUID) (r *report.Report, ok bool, err error) {
	data, err := c.client.Get(ctx, c.key(subjectID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("report cache get: %w", err)
	}

	var out report.Report
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, false, fmt.Errorf("report cache decode: %w", err)
	}
	return &out, true, nil
}

// Set stores the report of a subject.
func (c *Cache) Set(ctx context.Context, subjectID uuid.UUID, r report.Report) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("report cache encode: %w", err)
	}
	if err := c.client.Set(ctx, c.key(subjectID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("report cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached report of a subject.
func (c *Cache) Invalidate(ctx context.Context, subjectID uuid.UUID) error {
	if err := c.client.Del(ctx, c.key(subjectID)).Err(); err != nil {
		return fmt.Errorf("report cache invalidate: %w", err)
	}
	return nil
}

// Noop is used when no Redis address is configured. Every lookup misses.
type Noop struct{}

func (Noop) Get(context.Context, uuid.UUID) (*report.Report, bool, error) { return nil, false, nil }
func (Noop) Set(context.Context, uuid.UUID, report.Report) error          { return nil }
func (Noop) Invalidate(context.Context, uuid.UUID) error                  { return nil }
